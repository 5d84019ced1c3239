package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"todoapi/internal/core/domain"
)

func TestMemoryCacheRepository(t *testing.T) {
	ctx := context.Background()
	cache := NewCacheRepository()

	t.Run("should round trip a value", func(t *testing.T) {
		assert.NoError(t, cache.Set(ctx, "key", []byte("value"), time.Minute))

		value, err := cache.Get(ctx, "key")

		assert.NoError(t, err)
		assert.Equal(t, []byte("value"), value)
	})

	t.Run("should miss on unknown keys", func(t *testing.T) {
		_, err := cache.Get(ctx, "unknown")

		assert.Error(t, err)
		assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	})

	t.Run("should expire entries", func(t *testing.T) {
		assert.NoError(t, cache.Set(ctx, "short", []byte("value"), 10*time.Millisecond))

		time.Sleep(20 * time.Millisecond)

		_, err := cache.Get(ctx, "short")

		assert.Error(t, err)
	})

	t.Run("should delete entries", func(t *testing.T) {
		assert.NoError(t, cache.Set(ctx, "gone", []byte("value"), time.Minute))
		assert.NoError(t, cache.Delete(ctx, "gone"))

		_, err := cache.Get(ctx, "gone")

		assert.Error(t, err)
	})
}
