package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Pmanetas/M-S-Algorithms--sub001/pkg/config"
	"github.com/Pmanetas/M-S-Algorithms--sub001/pkg/logger"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Custom error types
var (
	ErrCacheNotFound = errors.New("cache: key not found")
	ErrCacheDisabled = errors.New("cache: disabled")
)

const keyPrefix = "portal:"

// RedisClient is an optional response cache. A nil *RedisClient is a
// valid, fully disabled cache: every method no-ops, so callers never
// need to branch on whether Redis is configured.
type RedisClient struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisClient connects to Redis per config. Returns (nil, nil) when
// the cache is disabled in config, and (nil, err-logged-as-nil) when
// Redis is configured but unreachable — the portal keeps serving from
// the file store either way.
func NewRedisClient(cfg *config.Config, log *logger.Logger) *RedisClient {
	if !cfg.Redis.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unreachable, response cache disabled",
			zap.String("addr", client.Options().Addr),
			zap.Error(err))
		client.Close()
		return nil
	}

	log.Info("redis response cache enabled",
		zap.String("addr", client.Options().Addr))
	return &RedisClient{client: client, logger: log}
}

// Get fetches a cached value.
func (r *RedisClient) Get(ctx context.Context, key string) ([]byte, error) {
	if r == nil {
		return nil, ErrCacheDisabled
	}
	val, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheNotFound
	}
	return val, err
}

// Set stores a value with a TTL.
func (r *RedisClient) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if r == nil {
		return ErrCacheDisabled
	}
	return r.client.Set(ctx, keyPrefix+key, value, ttl).Err()
}

// Delete drops the given keys.
func (r *RedisClient) Delete(ctx context.Context, keys ...string) error {
	if r == nil {
		return ErrCacheDisabled
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = keyPrefix + k
	}
	return r.client.Del(ctx, prefixed...).Err()
}

// Close releases the underlying connection.
func (r *RedisClient) Close() error {
	if r == nil {
		return nil
	}
	return r.client.Close()
}
