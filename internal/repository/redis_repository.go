package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/config"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/store"
)

// RedisRepository stores records as plain Redis strings under keyPrefix+key
type RedisRepository struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisRepository connects to Redis and verifies the connection
func NewRedisRepository(cfg config.RedisConfig) (*RedisRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisRepositoryWithClient(client, cfg.KeyPrefix), nil
}

// NewRedisRepositoryWithClient wraps an existing client
func NewRedisRepositoryWithClient(client *redis.Client, keyPrefix string) *RedisRepository {
	return &RedisRepository{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (r *RedisRepository) redisKey(key string) string {
	return r.keyPrefix + key
}

// GetRecord implements store.RecordRepository
func (r *RedisRepository) GetRecord(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, r.redisKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, store.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("Redis get error: %w", err)
	}
	return data, nil
}

// PutRecord implements store.RecordRepository. Records never expire.
func (r *RedisRepository) PutRecord(ctx context.Context, key string, data []byte) error {
	if err := r.client.Set(ctx, r.redisKey(key), data, 0).Err(); err != nil {
		return fmt.Errorf("Redis set error: %w", err)
	}
	return nil
}

// HealthCheck checks Redis connection health
func (r *RedisRepository) HealthCheck(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (r *RedisRepository) Close() error {
	return r.client.Close()
}
