// Package cache provides ResultCache adapters: a Redis-backed cache for
// shared deployments and an in-process cache for single-instance use.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen/calc-service/internal/domain"
)

// Redis is a ResultCache backed by a Redis server.
// It also implements ports.HealthChecker so readiness reflects the
// connection state.
type Redis struct {
	client *redis.Client
	prefix string
}

// RedisConfig contains configuration for the Redis cache adapter.
type RedisConfig struct {
	// Addr is the host:port of the Redis server.
	Addr string

	// Prefix namespaces keys, e.g. "calc:".
	Prefix string
}

// NewRedis creates a Redis cache adapter.
// Connection establishment is lazy; use Check to verify reachability.
func NewRedis(cfg RedisConfig) *Redis {
	return &Redis{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr}),
		prefix: cfg.Prefix,
	}
}

// Get retrieves a cached display string.
func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	display, err := r.client.Get(ctx, r.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.NewNotFoundError("calculation", key)
		}

		return "", domain.NewUnavailableError("redis", err.Error())
	}

	return display, nil
}

// Set stores a display string under the key with a TTL.
func (r *Redis) Set(ctx context.Context, key, display string, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.prefix+key, display, ttl).Err(); err != nil {
		return domain.NewUnavailableError("redis", err.Error())
	}

	return nil
}

// Name implements ports.HealthChecker.
func (r *Redis) Name() string {
	return "redis"
}

// Check implements ports.HealthChecker by pinging the server.
func (r *Redis) Check(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}

	return nil
}

// Close releases the underlying connection pool.
func (r *Redis) Close() error {
	return r.client.Close()
}
