package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/feral-file/ff-ledger/internal/adapter"
	"github.com/feral-file/ff-ledger/internal/logger"
)

const (
	defaultKeyPrefix           = "ff:ledger:api:"
	defaultHealthCheckInterval = 10 * time.Second
	// maxLocalKeys bounds the in-memory limiter table; it is reset when exceeded
	maxLocalKeys = 10000
)

// ErrLimiterClosed is returned by Allow after Close
var ErrLimiterClosed = errors.New("rate limiter is closed")

// Config holds the limiter settings
type Config struct {
	RequestsPerSecond   int
	Burst               int
	KeyPrefix           string
	HealthCheckInterval time.Duration
}

// Decision is the outcome of one admission check
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
	Remaining  int
}

// Limiter admits requests per client key
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit_limiter.go -package=mocks -mock_names=Limiter=MockRateLimiter
type Limiter interface {
	// Allow consumes one request for key and reports whether it is admitted
	Allow(ctx context.Context, key string) (Decision, error)
	// Close stops the health monitor and releases the Redis connection
	Close() error
}

type limiter struct {
	cfg         Config
	redis       adapter.RedisClient
	distributed adapter.RedisRateLimiter
	clock       adapter.Clock

	mu    sync.Mutex
	local map[string]*rate.Limiter

	redisAvailable atomic.Bool
	closed         atomic.Bool
	closeOnce      sync.Once
	done           chan struct{}
}

// NewLimiter creates a limiter. With a nil Redis client every decision is made in memory;
// otherwise Redis is used while it is reachable and the in-memory limiter covers outages.
func NewLimiter(cfg Config, rc adapter.RedisClient, clock adapter.Clock) (Limiter, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	l := &limiter{
		cfg:   cfg,
		redis: rc,
		clock: clock,
		local: make(map[string]*rate.Limiter),
		done:  make(chan struct{}),
	}

	if rc == nil {
		logger.Info("Rate limiter initialized without redis",
			zap.Int("requests_per_second", cfg.RequestsPerSecond),
			zap.Int("burst", cfg.Burst),
		)
		return l, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rc.Ping(ctx); err != nil {
		logger.Warn("Redis unavailable, will use local fallback", zap.Error(err))
	} else {
		l.redisAvailable.Store(true)
	}
	l.distributed = rc.NewRateLimiter()

	go l.monitorRedisHealth()

	logger.Info("Rate limiter initialized",
		zap.Int("requests_per_second", cfg.RequestsPerSecond),
		zap.Int("burst", cfg.Burst),
		zap.Bool("redis_available", l.redisAvailable.Load()),
	)

	return l, nil
}

func (l *limiter) Allow(ctx context.Context, key string) (Decision, error) {
	if l.closed.Load() {
		return Decision{}, ErrLimiterClosed
	}

	if l.distributed != nil && l.redisAvailable.Load() {
		res, err := l.distributed.Allow(ctx, l.cfg.KeyPrefix+key, redis_rate.Limit{
			Rate:   l.cfg.RequestsPerSecond,
			Burst:  l.cfg.Burst,
			Period: time.Second,
		})
		if err == nil {
			return Decision{
				Allowed:    res.Allowed > 0,
				RetryAfter: max(res.RetryAfter, 0),
				Remaining:  res.Remaining,
			}, nil
		}
		if ctx.Err() != nil {
			return Decision{}, ctx.Err()
		}

		l.redisAvailable.Store(false)
		logger.WarnCtx(ctx, "Redis rate limiter error, falling back to local", zap.Error(err))
	}

	return l.allowLocal(key), nil
}

// allowLocal decides with the in-memory token bucket of key
func (l *limiter) allowLocal(key string) Decision {
	l.mu.Lock()
	lim, ok := l.local[key]
	if !ok {
		if len(l.local) >= maxLocalKeys {
			l.local = make(map[string]*rate.Limiter)
		}
		lim = rate.NewLimiter(rate.Limit(l.cfg.RequestsPerSecond), l.cfg.Burst)
		l.local[key] = lim
	}
	l.mu.Unlock()

	now := l.clock.Now()
	reservation := lim.ReserveN(now, 1)
	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)
		return Decision{Allowed: false, RetryAfter: delay}
	}

	return Decision{Allowed: true, Remaining: int(lim.TokensAt(now))}
}

// monitorRedisHealth periodically pings Redis and updates availability
func (l *limiter) monitorRedisHealth() {
	ticker := l.clock.NewTicker(l.cfg.HealthCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := l.redis.Ping(ctx)
		cancel()

		available := err == nil
		if wasAvailable := l.redisAvailable.Swap(available); !wasAvailable && available {
			logger.Info("Redis connection restored")
		}
	}
}

func (l *limiter) Close() error {
	var err error
	l.closeOnce.Do(func() {
		l.closed.Store(true)
		close(l.done)

		if l.redis != nil {
			if closeErr := l.redis.Close(); closeErr != nil {
				logger.Warn("Error closing Redis connection", zap.Error(closeErr))
				err = closeErr
			}
		}
	})
	return err
}

// validateConfig validates and sets defaults for the configuration
func validateConfig(cfg *Config) error {
	if cfg.RequestsPerSecond <= 0 {
		return fmt.Errorf("requests_per_second must be positive")
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerSecond
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = defaultKeyPrefix
	}
	if cfg.HealthCheckInterval <= 0 {
		cfg.HealthCheckInterval = defaultHealthCheckInterval
	}
	return nil
}
