package shortener

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// saveAttempts bounds retries when a save loses the code-uniqueness race
// against a concurrent shorten of the same derived code.
const saveAttempts = 3

// Service orchestrates the generator, the cache, and the store into the
// public shorten/resolve operations. The store is the source of truth; the
// cache is a best-effort optimization and its failures never propagate.
type Service struct {
	repo      Repository
	cache     Cache
	generator *Generator
	clicks    ClickRecorder
	now       Clock
	logger    *zap.Logger
}

// NewService creates a new shortener service.
func NewService(
	repo Repository,
	cache Cache,
	generator *Generator,
	clicks ClickRecorder,
	logger *zap.Logger,
) *Service {
	return &Service{
		repo:      repo,
		cache:     cache,
		generator: generator,
		clicks:    clicks,
		now:       time.Now,
		logger:    logger,
	}
}

// WithClock replaces the service clock. Intended for tests.
func (s *Service) WithClock(now Clock) *Service {
	s.now = now

	return s
}

// Shorten validates the URL, generates a unique code, persists the mapping,
// and populates the cache. A failed cache write is logged but does not fail
// the operation.
func (s *Service) Shorten(ctx context.Context, longURL string) (*Mapping, error) {
	trimmed := strings.TrimSpace(longURL)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: url cannot be blank", ErrInvalidInput)
	}

	var mapping *Mapping

	for attempt := 0; attempt < saveAttempts; attempt++ {
		code, err := s.generator.Generate(ctx, trimmed)
		if err != nil {
			return nil, err
		}

		candidate := &Mapping{
			Code:       code,
			LongURL:    trimmed,
			CreatedAt:  s.now(),
			ClickCount: 0,
			IsActive:   true,
		}

		err = s.repo.Save(ctx, candidate)
		if err == nil {
			mapping = candidate

			break
		}

		// Two concurrent requests can both observe the code as free; the
		// store's unique index is the final arbiter. Probe again.
		if errors.Is(err, ErrCodeTaken) {
			s.logger.Warn("save lost uniqueness race, regenerating",
				zap.String("code", string(code)),
				zap.Int("attempt", attempt+1),
			)

			continue
		}

		return nil, fmt.Errorf("saving mapping: %w", err)
	}

	if mapping == nil {
		return nil, fmt.Errorf("%w: save kept losing uniqueness races", ErrGenerationExhausted)
	}

	if err := s.cache.Put(ctx, mapping.Code, mapping.LongURL); err != nil {
		s.logger.Warn("failed to cache mapping",
			zap.String("code", string(mapping.Code)),
			zap.Error(err),
		)
	}

	s.logger.Info("created short url",
		zap.String("code", string(mapping.Code)),
	)

	return mapping, nil
}

// Resolve returns the long URL for a code, consulting the cache first and
// falling back to the store on a miss. A cache hit is trusted until its TTL
// expires; deactivation is only observed on the store path or after an
// explicit InvalidateCache. Every successful resolve schedules an
// asynchronous click-count increment.
func (s *Service) Resolve(ctx context.Context, code Code) (string, error) {
	if strings.TrimSpace(string(code)) == "" {
		return "", fmt.Errorf("%w: code cannot be blank", ErrInvalidInput)
	}

	longURL, err := s.cache.Get(ctx, code)
	if err == nil {
		s.clicks.Record(code)

		return longURL, nil
	}

	if !errors.Is(err, ErrNotFound) {
		// Cache backend failure degrades to a miss.
		s.logger.Warn("cache lookup failed, falling back to store",
			zap.String("code", string(code)),
			zap.Error(err),
		)
	}

	mapping, err := s.repo.FindActiveByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, code)
		}

		return "", fmt.Errorf("looking up mapping: %w", err)
	}

	if err := s.cache.Put(ctx, code, mapping.LongURL); err != nil {
		s.logger.Warn("failed to repopulate cache",
			zap.String("code", string(code)),
			zap.Error(err),
		)
	}

	s.clicks.Record(code)

	return mapping.LongURL, nil
}

// InvalidateCache removes the cache entry for a code. The store is untouched.
func (s *Service) InvalidateCache(ctx context.Context, code Code) error {
	if strings.TrimSpace(string(code)) == "" {
		return fmt.Errorf("%w: code cannot be blank", ErrInvalidInput)
	}

	if err := s.cache.Invalidate(ctx, code); err != nil {
		return fmt.Errorf("invalidating cache: %w", err)
	}

	s.logger.Info("invalidated cache entry", zap.String("code", string(code)))

	return nil
}

// CacheStats reports cache occupancy for monitoring. When the cache backend
// is unreachable it returns disabled stats instead of an error.
func (s *Service) CacheStats(ctx context.Context) CacheStats {
	stats, err := s.cache.Stats(ctx)
	if err != nil {
		s.logger.Error("failed to get cache stats", zap.Error(err))

		return CacheStats{Enabled: false}
	}

	return stats
}
