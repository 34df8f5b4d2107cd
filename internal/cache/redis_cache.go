package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/learnmate/coordinator/internal/utils"
)

type redisCache struct {
	client *redis.Client
	logger utils.Logger
}

// NewRedisCache wraps a Redis client in the Service interface. Used when
// REDIS_URL is configured so cached pages and question sets survive
// restarts and are shared between processes.
func NewRedisCache(client *redis.Client, logger utils.Logger) Service {
	return &redisCache{
		client: client,
		logger: logger,
	}
}

func (r *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

func (r *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		r.logger.LogError(err, "Redis get failed", "key", key)
		return err
	}
	return json.Unmarshal(data, dest)
}

func (r *redisCache) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
