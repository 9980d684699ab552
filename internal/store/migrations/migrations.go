package migrations

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"

	"github.com/feral-file/ff-ledger/internal/logger"
)

//go:embed sql/*.sql
var files embed.FS

// Direction selects which way a migration run moves the schema
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// driverURL rewrites a postgres:// connection URL to the pgx/v5 migrate driver scheme
func driverURL(databaseURL string) (string, error) {
	for _, scheme := range []string{"postgres://", "postgresql://", "pgx5://"} {
		if strings.HasPrefix(databaseURL, scheme) {
			return "pgx5://" + strings.TrimPrefix(databaseURL, scheme), nil
		}
	}
	return "", fmt.Errorf("unsupported database url scheme: %q", databaseURL)
}

// New returns a migrator over the embedded schema files.
// The caller must Close it.
func New(databaseURL string) (*migrate.Migrate, error) {
	target, err := driverURL(databaseURL)
	if err != nil {
		return nil, err
	}

	src, err := iofs.New(files, "sql")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, target)
	if err != nil {
		return nil, fmt.Errorf("failed to init migrate: %w", err)
	}
	return m, nil
}

// Run applies every pending migration in the given direction and reports whether the schema changed
func Run(databaseURL string, direction Direction) (bool, error) {
	m, err := New(databaseURL)
	if err != nil {
		return false, err
	}
	defer closeMigrator(m)

	switch direction {
	case DirectionUp:
		err = m.Up()
	case DirectionDown:
		err = m.Down()
	default:
		return false, fmt.Errorf("unknown migration direction: %s", direction)
	}

	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return false, nil
		}
		return false, fmt.Errorf("failed to migrate %s: %w", direction, err)
	}
	return true, nil
}

// Version returns the current schema version and whether the last run left it dirty.
// A database without any applied migration reports version 0.
func Version(databaseURL string) (uint, bool, error) {
	m, err := New(databaseURL)
	if err != nil {
		return 0, false, err
	}
	defer closeMigrator(m)

	version, dirty, err := m.Version()
	if err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, dirty, nil
}

func closeMigrator(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		logger.Warn("failed to close migration source", zap.Error(srcErr))
	}
	if dbErr != nil {
		logger.Warn("failed to close migration database", zap.Error(dbErr))
	}
}
