package cache

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores entries in Redis. Expiry is delegated to Redis TTLs.
type RedisCache struct {
	client *redis.Client
}

// RedisConfig configures a RedisCache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int

	// DialTimeout bounds connection setup (default 2s).
	DialTimeout time.Duration
}

// NewRedisCache connects to Redis and verifies the connection with PING.
// Transient network failures are retried with backoff.
func NewRedisCache(ctx context.Context, cfg RedisConfig) (Cache, error) {
	if cfg.DialTimeout == 0 {
		cfg.DialTimeout = 2 * time.Second
	}
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	err := RetryWithBackoff(ctx, func() error {
		return classify(client.Ping(ctx).Err())
	})
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: redis %s: %v", ErrUnavailable, cfg.Addr, err)
	}
	return &RedisCache{client: client}, nil
}

// Get retrieves a value from Redis.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	err := RetryWithBackoff(ctx, func() error {
		var err error
		data, err = c.client.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			data = nil
			return nil
		}
		return classify(err)
	})
	if err != nil {
		return nil, false, err
	}
	return data, data != nil, nil
}

// Set stores a value in Redis. A zero ttl keeps the key until evicted.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return RetryWithBackoff(ctx, func() error {
		return classify(c.client.Set(ctx, key, data, ttl).Err())
	})
}

// Delete removes a key from Redis.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return RetryWithBackoff(ctx, func() error {
		return classify(c.client.Del(ctx, key).Err())
	})
}

// Close closes the underlying connection pool.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// classify marks network errors as retryable.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return Retryable(err)
	}
	return err
}

// Ensure RedisCache implements Cache.
var _ Cache = (*RedisCache)(nil)
