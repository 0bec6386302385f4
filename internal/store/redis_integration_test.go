//go:build integration

package store_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/serroba/shortlink/internal/shortener"
	"github.com/serroba/shortlink/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getRedisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

func TestRedisCacheIntegration(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr: getRedisAddr(),
	})
	defer client.Close()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	cache := store.NewRedisCache(client, time.Hour)

	t.Run("put and get", func(t *testing.T) {
		code := shortener.Code("itcode1")

		err := cache.Put(ctx, code, "https://example.com")
		require.NoError(t, err)

		got, err := cache.Get(ctx, code)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", got)

		// Cleanup
		client.Del(ctx, "url:"+string(code))
	})

	t.Run("put sets a ttl", func(t *testing.T) {
		code := shortener.Code("itcode2")

		err := cache.Put(ctx, code, "https://example.com")
		require.NoError(t, err)

		ttl, err := client.TTL(ctx, "url:"+string(code)).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))

		client.Del(ctx, "url:"+string(code))
	})

	t.Run("put refreshes the entry", func(t *testing.T) {
		code := shortener.Code("itcode3")
		_ = cache.Put(ctx, code, "https://old.example")

		err := cache.Put(ctx, code, "https://new.example")
		require.NoError(t, err)

		got, _ := cache.Get(ctx, code)
		assert.Equal(t, "https://new.example", got)

		client.Del(ctx, "url:"+string(code))
	})

	t.Run("get on a missing key returns ErrNotFound", func(t *testing.T) {
		got, err := cache.Get(ctx, "nonexistent")

		assert.Empty(t, got)
		assert.ErrorIs(t, err, shortener.ErrNotFound)
	})

	t.Run("invalidate removes the entry", func(t *testing.T) {
		code := shortener.Code("itcode4")
		require.NoError(t, cache.Put(ctx, code, "https://example.com"))

		require.NoError(t, cache.Invalidate(ctx, code))

		_, err := cache.Get(ctx, code)
		assert.ErrorIs(t, err, shortener.ErrNotFound)
	})

	t.Run("stats reports occupancy and ttl", func(t *testing.T) {
		code := shortener.Code("itcode5")
		require.NoError(t, cache.Put(ctx, code, "https://example.com"))

		stats, err := cache.Stats(ctx)
		require.NoError(t, err)
		assert.True(t, stats.Enabled)
		assert.GreaterOrEqual(t, stats.TotalCachedURLs, int64(1))
		assert.EqualValues(t, 3600, stats.TTLSeconds)

		client.Del(ctx, "url:"+string(code))
	})
}
