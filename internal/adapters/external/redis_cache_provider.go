package external

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"auraweather.app/internal/config"
	"auraweather.app/pkg/errors"
)

// RedisCacheProvider implements the CacheProvider port using Redis
type RedisCacheProvider struct {
	client *redis.Client
}

// NewRedisCacheProvider creates a new Redis cache provider
func NewRedisCacheProvider(cfg *config.RedisConfig) (*RedisCacheProvider, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  time.Duration(cfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.NewTransportError("failed to connect to Redis", err)
	}

	return &RedisCacheProvider{client: client}, nil
}

// Get retrieves a value from Redis cache
func (r *RedisCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NewNotFoundError("cache miss")
		}
		return nil, errors.NewTransportError("redis get operation failed", err)
	}

	return []byte(val), nil
}

// Set stores a value in Redis cache with TTL
func (r *RedisCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}

	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.NewTransportError("redis set operation failed", err)
	}

	return nil
}

// Delete removes a value from Redis cache
func (r *RedisCacheProvider) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return errors.NewTransportError("redis delete operation failed", err)
	}

	return nil
}

// Close releases the underlying Redis connection
func (r *RedisCacheProvider) Close() error {
	return r.client.Close()
}
