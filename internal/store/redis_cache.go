package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/serroba/shortlink/internal/shortener"
)

// cacheOpTimeout bounds every Redis call so a slow cache backend degrades
// to a miss instead of stalling a redirect.
const cacheOpTimeout = time.Second

// RedisCache is a Redis implementation of shortener.Cache. Entries map
// "url:<code>" to the long URL with a TTL; the store remains the source of
// truth and entries may be stale until they expire or are invalidated.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache creates a new Redis-backed redirect cache.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: client,
		prefix: "url:",
		ttl:    ttl,
	}
}

func (r *RedisCache) Get(ctx context.Context, code shortener.Code) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()

	longURL, err := r.client.Get(ctx, r.prefix+string(code)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", shortener.ErrNotFound
		}

		return "", err
	}

	return longURL, nil
}

// Put sets or refreshes the entry with the configured TTL.
func (r *RedisCache) Put(ctx context.Context, code shortener.Code, longURL string) error {
	ctx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()

	return r.client.Set(ctx, r.prefix+string(code), longURL, r.ttl).Err()
}

func (r *RedisCache) Invalidate(ctx context.Context, code shortener.Code) error {
	ctx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()

	return r.client.Del(ctx, r.prefix+string(code)).Err()
}

// Stats reports DBSize for the whole logical database. That overcounts when
// other keyspaces share the database, which is acceptable for monitoring.
func (r *RedisCache) Stats(ctx context.Context) (shortener.CacheStats, error) {
	ctx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()

	size, err := r.client.DBSize(ctx).Result()
	if err != nil {
		return shortener.CacheStats{}, err
	}

	return shortener.CacheStats{
		Enabled:         true,
		TotalCachedURLs: size,
		TTLSeconds:      int64(r.ttl / time.Second),
	}, nil
}

// Compile-time check.
var _ shortener.Cache = (*RedisCache)(nil)
