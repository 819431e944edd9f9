package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/payrecon/pkg/cache"
	"github.com/amirasaad/payrecon/pkg/config"
	"github.com/redis/go-redis/v9"
)

// RedisCache implements DeliveryCache using Redis so every replica sees the
// same deliveries.
type RedisCache struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

var _ cache.DeliveryCache = (*RedisCache)(nil)

// NewRedisCache connects to cfg.URL and verifies the connection.
func NewRedisCache(cfg *config.Redis, logger *slog.Logger) (*RedisCache, error) {
	if cfg == nil || cfg.URL == "" {
		return nil, errors.New("redis cache: url is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("redis cache: invalid URL: %w", err)
	}
	if cfg.PoolSize > 0 {
		opt.PoolSize = cfg.PoolSize
	}
	if cfg.DialTimeout > 0 {
		opt.DialTimeout = cfg.DialTimeout
	}
	if cfg.ReadTimeout > 0 {
		opt.ReadTimeout = cfg.ReadTimeout
	}
	if cfg.WriteTimeout > 0 {
		opt.WriteTimeout = cfg.WriteTimeout
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis cache: ping: %w", err)
	}
	return NewRedisCacheWithClient(client, cfg.KeyPrefix, logger), nil
}

// NewRedisCacheWithClient wraps an existing client.
func NewRedisCacheWithClient(client *redis.Client, prefix string, logger *slog.Logger) *RedisCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisCache{
		client: client,
		prefix: prefix + ":webhook:delivery:",
		logger: logger.With("cache", "redis"),
	}
}

func (r *RedisCache) key(key string) string {
	return r.prefix + key
}

func (r *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		r.logger.Debug("Redis cache miss", "key", key)
		return "", false, nil
	}
	if err != nil {
		r.logger.Error("Redis cache get error", "key", key, "error", err)
		return "", false, err
	}
	r.logger.Debug("Redis cache hit", "key", key, "outcome", val)
	return val, true, nil
}

func (r *RedisCache) Set(ctx context.Context, key, outcome string, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.key(key), outcome, ttl).Err(); err != nil {
		r.logger.Error("Redis cache set error", "key", key, "error", err)
		return err
	}
	r.logger.Debug("Redis cache set", "key", key, "outcome", outcome, "ttl", ttl)
	return nil
}

// Close releases the connection pool.
func (r *RedisCache) Close() error {
	return r.client.Close()
}
