package shortener

import (
	"context"
	"time"
)

// Repository defines the interface for durable mapping storage.
// The repository is the source of truth: its errors always propagate.
type Repository interface {
	// Save persists a new mapping, assigning its ID. Returns ErrCodeTaken
	// when the code already exists.
	Save(ctx context.Context, mapping *Mapping) error

	// FindActiveByCode returns the mapping for a code that is active and
	// not expired, or ErrNotFound.
	FindActiveByCode(ctx context.Context, code Code) (*Mapping, error)

	// FindByCode returns the mapping regardless of its state, or ErrNotFound.
	FindByCode(ctx context.Context, code Code) (*Mapping, error)

	// ExistsByCode reports whether any mapping, active or not, uses the code.
	ExistsByCode(ctx context.Context, code Code) (bool, error)

	// IncrementClickCount atomically adds one to the mapping's click count
	// and returns the updated count.
	IncrementClickCount(ctx context.Context, code Code) (int64, error)
}

// Cache defines the interface for the redirect cache backend.
// Implementations are best-effort side-stores; callers treat any error as a
// miss or no-op and fall back to the Repository.
type Cache interface {
	// Get returns the cached long URL for a code, or ErrNotFound on a miss.
	Get(ctx context.Context, code Code) (string, error)

	// Put sets or refreshes the code's entry with the configured TTL.
	Put(ctx context.Context, code Code, longURL string) error

	// Invalidate removes the code's entry.
	Invalidate(ctx context.Context, code Code) error

	// Stats reports approximate cache occupancy and configuration.
	Stats(ctx context.Context) (CacheStats, error)
}

// ClickRecorder accepts click-count increments for asynchronous processing.
type ClickRecorder interface {
	// Record enqueues an increment for the code without blocking.
	Record(code Code)
}

// ClickRecorderFunc adapts a function to the ClickRecorder interface.
type ClickRecorderFunc func(code Code)

func (f ClickRecorderFunc) Record(code Code) { f(code) }

// Clock returns the current time. It exists so tests can control expiry.
type Clock func() time.Time
