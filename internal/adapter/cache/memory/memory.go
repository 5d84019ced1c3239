package memory

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
)

type memoryRepository struct {
	cache *gocache.Cache
}

func NewCacheRepository() port.CacheRepository {
	return &memoryRepository{
		cache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (m *memoryRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.cache.Set(key, value, ttl)
	return nil
}

func (m *memoryRepository) Get(ctx context.Context, key string) ([]byte, error) {
	value, found := m.cache.Get(key)

	if !found {
		return nil, domain.NotFound("cache miss")
	}

	return value.([]byte), nil
}

func (m *memoryRepository) Delete(ctx context.Context, key string) error {
	m.cache.Delete(key)
	return nil
}
