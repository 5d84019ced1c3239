package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
)

type redisRepository struct {
	client *goredis.Client
}

func NewCacheRepository(ctx context.Context, addr string) (port.CacheRepository, error) {
	client := goredis.NewClient(&goredis.Options{Addr: addr})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &redisRepository{client: client}, nil
}

func (r *redisRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *redisRepository) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, key).Bytes()

	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, domain.NotFound("cache miss")
		}

		return nil, err
	}

	return value, nil
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
