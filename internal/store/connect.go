package store

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-ledger/internal/logger"
)

// Open connects to PostgreSQL and waits for the server to answer, retrying with
// exponential backoff for up to maxElapsed.
func Open(ctx context.Context, dsn string, maxElapsed time.Duration) (*gorm.DB, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 10 * time.Second
	b.MaxElapsedTime = maxElapsed

	var db *gorm.DB
	operation := func() error {
		conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err != nil {
			logger.WarnCtx(ctx, "Failed to connect to database, retrying", zap.Error(err))
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		sqlDB, err := conn.DB()
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to get database instance: %w", err))
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			_ = sqlDB.Close()
			logger.WarnCtx(ctx, "Database not ready, retrying", zap.Error(err))
			return fmt.Errorf("failed to ping database: %w", err)
		}

		db = conn
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, err
	}

	return db, nil
}
