// Package container wires the application together with samber/do. Each
// Package function registers the providers for one concern; binaries pick
// the packages they need.
package container

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/serroba/shortlink/internal/clicks"
	"github.com/serroba/shortlink/internal/shortener"
	"github.com/serroba/shortlink/internal/store"
	"go.uber.org/zap"
)

// LoggerPackage provides the zap logger.
func LoggerPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*zap.Logger, error) {
		options := do.MustInvoke[*Options](i)

		if options.LogFormat == "json" {
			return zap.NewProduction()
		}

		return zap.NewDevelopment()
	})
}

// RedisPackage provides the shared Redis client.
func RedisPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*redis.Client, error) {
		options := do.MustInvoke[*Options](i)

		return redis.NewClient(&redis.Options{
			Addr: options.RedisAddr,
		}), nil
	})
}

// PostgresPackage provides the pgx connection pool.
func PostgresPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*pgxpool.Pool, error) {
		options := do.MustInvoke[*Options](i)

		pool, err := pgxpool.New(context.Background(), options.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("creating postgres pool: %w", err)
		}

		return pool, nil
	})
}

// RepositoryPackage provides the mapping repository and the redirect cache.
func RepositoryPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (shortener.Repository, error) {
		pool := do.MustInvoke[*pgxpool.Pool](i)

		return store.NewPostgresStore(pool), nil
	})

	do.Provide(injector, func(i *do.Injector) (shortener.Cache, error) {
		options := do.MustInvoke[*Options](i)
		client := do.MustInvoke[*redis.Client](i)

		ttl := time.Duration(options.CacheTTL) * time.Second

		return store.NewRedisCache(client, ttl), nil
	})
}

// invokePostgresPool resolves the pool when PostgresPackage is registered.
func invokePostgresPool(i *do.Injector) (*pgxpool.Pool, error) {
	return do.Invoke[*pgxpool.Pool](i)
}

// ClicksPackage provides the asynchronous click-count recorder.
func ClicksPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*clicks.Recorder, error) {
		options := do.MustInvoke[*Options](i)
		repo := do.MustInvoke[shortener.Repository](i)
		logger := do.MustInvoke[*zap.Logger](i)

		return clicks.NewRecorder(repo, options.ClickQueueSize, logger), nil
	})
}

// ShortenerPackage provides the code generator and the orchestrating service.
func ShortenerPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*shortener.Generator, error) {
		repo := do.MustInvoke[shortener.Repository](i)
		logger := do.MustInvoke[*zap.Logger](i)

		return shortener.NewGenerator(repo, logger), nil
	})

	do.Provide(injector, func(i *do.Injector) (*shortener.Service, error) {
		repo := do.MustInvoke[shortener.Repository](i)
		cache := do.MustInvoke[shortener.Cache](i)
		generator := do.MustInvoke[*shortener.Generator](i)
		recorder := do.MustInvoke[*clicks.Recorder](i)
		logger := do.MustInvoke[*zap.Logger](i)

		return shortener.NewService(repo, cache, generator, recorder, logger), nil
	})
}
