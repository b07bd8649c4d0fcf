// internal/common/cache/redis.go
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ui-registry-scraper/internal/common/config"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "scraper:demo:"

// RedisCache stores raw demo payload bodies keyed by component name.
type RedisCache struct {
	Client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed payload cache
func NewRedis(cfg config.CacheConfig) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     2,
	})

	return NewWithClient(rdb, config.GetDuration(cfg.TTL))
}

// NewWithClient wraps an existing client.
func NewWithClient(rdb *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: rdb, ttl: ttl}
}

// Ping tests the Redis connection
func (c *RedisCache) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	if c.Client != nil {
		return c.Client.Close()
	}
	return nil
}

// Get returns the cached body for component. A miss is (nil, false, nil).
func (c *RedisCache) Get(ctx context.Context, component string) ([]byte, bool, error) {
	data, err := c.Client.Get(ctx, Key(component)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores body for component with the configured TTL.
func (c *RedisCache) Set(ctx context.Context, component string, body []byte) error {
	return c.Client.Set(ctx, Key(component), body, c.ttl).Err()
}

// Key returns the Redis key for a component's demo payload.
func Key(component string) string {
	return keyPrefix + component
}
