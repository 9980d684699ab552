// Package pgtest provides a migrated PostgreSQL database for integration tests.
package pgtest

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/feral-file/ff-ledger/internal/store/migrations"
)

// Database is a migrated test database
type Database struct {
	DB        *gorm.DB
	container *postgres.PostgresContainer
}

// Start connects to the database named by the TEST_DB_* environment variables,
// or starts a PostgreSQL container when TEST_DB_HOST is unset, and applies the schema migrations.
func Start(ctx context.Context) (*Database, error) {
	var databaseURL string
	var container *postgres.PostgresContainer

	if dbHost := os.Getenv("TEST_DB_HOST"); dbHost != "" {
		databaseURL = externalURL(dbHost)
		fmt.Printf("Using external database: %s\n", dbHost)
	} else {
		var err error
		container, err = postgres.Run(ctx,
			"postgres:18-alpine",
			postgres.WithDatabase("test_db"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to start PostgreSQL container: %w", err)
		}

		databaseURL, err = container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			terminate(ctx, container)
			return nil, fmt.Errorf("failed to get connection string: %w", err)
		}

		fmt.Printf("Started PostgreSQL container\n")
	}

	if _, err := migrations.Run(databaseURL, migrations.DirectionUp); err != nil {
		terminate(ctx, container)
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	db, err := gorm.Open(pgdriver.Open(databaseURL), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		terminate(ctx, container)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Database{DB: db, container: container}, nil
}

// Close releases the connection and terminates the container, if one was started
func (d *Database) Close(ctx context.Context) {
	if sqlDB, err := d.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	terminate(ctx, d.container)
}

func externalURL(host string) string {
	port := envOrDefault("TEST_DB_PORT", "5432")
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(envOrDefault("TEST_DB_USER", "postgres"), envOrDefault("TEST_DB_PASSWORD", "postgres")),
		Host:     host + ":" + port,
		Path:     "/" + envOrDefault("TEST_DB_NAME", "test_db"),
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func terminate(ctx context.Context, container *postgres.PostgresContainer) {
	if container == nil {
		return
	}
	if err := container.Terminate(ctx); err != nil {
		fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
	}
}
