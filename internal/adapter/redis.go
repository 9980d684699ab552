package adapter

import (
	"context"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
)

// RedisClient is the subset of the Redis client the API rate limiter uses
//
//go:generate mockgen -source=redis.go -destination=../mocks/redis.go -package=mocks -mock_names=RedisClient=MockRedisClient,RedisRateLimiter=MockRedisRateLimiter
type RedisClient interface {
	// Ping checks if Redis is reachable
	Ping(ctx context.Context) error
	// NewRateLimiter returns a GCRA limiter backed by this client
	NewRateLimiter() RedisRateLimiter
	Close() error
}

// RedisRateLimiter admits or rejects requests against a shared limit
type RedisRateLimiter interface {
	// Allow consumes one token for key when available
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

type realRedisClient struct {
	client *redis.Client
}

// NewRedisClient creates a new Redis client
func NewRedisClient(addr, password string, db int) RedisClient {
	return &realRedisClient{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func (r *realRedisClient) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *realRedisClient) NewRateLimiter() RedisRateLimiter {
	return redis_rate.NewLimiter(r.client)
}

func (r *realRedisClient) Close() error {
	return r.client.Close()
}
