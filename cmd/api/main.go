package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-ledger/internal/adapter"
	"github.com/feral-file/ff-ledger/internal/api/middleware"
	"github.com/feral-file/ff-ledger/internal/api/server"
	"github.com/feral-file/ff-ledger/internal/config"
	"github.com/feral-file/ff-ledger/internal/ledger"
	"github.com/feral-file/ff-ledger/internal/logger"
	"github.com/feral-file/ff-ledger/internal/metrics"
	"github.com/feral-file/ff-ledger/internal/ratelimit"
	"github.com/feral-file/ff-ledger/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "ff-ledger-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Feral File Ledger API")

	// Connect to database
	db, err := store.Open(ctx, cfg.Database.DSN(), time.Minute)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database",
			zap.Error(err),
			zap.String("host", cfg.Database.Host),
			zap.String("dbname", cfg.Database.DBName),
		)
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store and adapters
	dataStore := store.NewPGStore(db)
	clock := adapter.NewClock()
	ids := adapter.NewIDGenerator()
	ledgerMetrics := metrics.NewLedger()

	// Initialize ledger services
	wallets := ledger.NewWalletLedger(dataStore)
	tokens := ledger.NewTokenRegistry(dataStore)
	transactions := ledger.NewTransactionService(dataStore, dataStore, wallets, tokens, ids, clock, ledgerMetrics)
	blocks := ledger.NewBlockService(
		ledger.BlockConfig{
			MaxTransactions: cfg.Block.MaxTransactions,
			ConflictRetries: cfg.Block.ConflictRetries,
		},
		dataStore, dataStore, dataStore, transactions, ids, clock, ledgerMetrics,
	)
	maintenance := ledger.NewMaintenanceService(dataStore)

	// Initialize rate limiter
	var limiter ratelimit.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		var redisClient adapter.RedisClient
		if cfg.RateLimit.RedisAddr != "" {
			redisClient = adapter.NewRedisClient(cfg.RateLimit.RedisAddr, cfg.RateLimit.RedisPassword, cfg.RateLimit.RedisDB)
		}
		limiter, err = ratelimit.NewLimiter(ratelimit.Config{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
			KeyPrefix:         cfg.RateLimit.RedisKeyPrefix,
		}, redisClient, clock)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create rate limiter", zap.Error(err))
		}
	} else {
		logger.WarnCtx(ctx, "Rate limiting disabled")
	}

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	srv := server.New(serverConfig, server.Services{
		Transactions: transactions,
		Blocks:       blocks,
		Wallets:      wallets,
		Tokens:       tokens,
		Maintenance:  maintenance,
	}, limiter)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("API server stopped")
}
