package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/feral-file/ff-ledger/internal/config"
	"github.com/feral-file/ff-ledger/internal/logger"
	"github.com/feral-file/ff-ledger/internal/store/migrations"
)

type options struct {
	Config    string `long:"config" env:"FF_LEDGER_MIGRATE_CONFIG" description:"Path to configuration file"`
	EnvPath   string `long:"env" default:"config/" description:"Path to environment files"`
	Direction string `long:"direction" default:"up" choice:"up" choice:"down" description:"Migration direction"`
}

func main() {
	opts := options{}
	if _, err := flags.Parse(&opts); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(2)
	}

	config.ChdirRepoRoot()
	cfg, err := config.LoadMigrateConfig(opts.Config, opts.EnvPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "ff-ledger-migrate",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	direction := migrations.Direction(opts.Direction)
	changed, err := migrations.Run(cfg.Database.URL(), direction)
	if err != nil {
		logger.Fatal("Migration run failed", zap.Error(err), zap.String("direction", opts.Direction))
	}

	version, dirty, err := migrations.Version(cfg.Database.URL())
	if err != nil {
		logger.Fatal("Failed to read schema version", zap.Error(err))
	}

	logger.Info("Migrations finished",
		zap.String("direction", opts.Direction),
		zap.Bool("changed", changed),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
	)
}
