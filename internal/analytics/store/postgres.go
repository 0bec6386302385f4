package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serroba/shortlink/internal/analytics"
)

// Postgres persists analytics events to dedicated event tables.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a new PostgreSQL-backed analytics store.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) SaveURLCreated(ctx context.Context, event *analytics.URLCreatedEvent) error {
	query := `
		INSERT INTO url_created_events (event_id, code, original_url, created_at, client_ip, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (event_id) DO NOTHING
	`

	_, err := p.pool.Exec(ctx, query,
		event.EventID,
		event.Code,
		event.OriginalURL,
		event.CreatedAt,
		event.ClientIP,
		event.UserAgent,
	)

	return err
}

func (p *Postgres) SaveURLAccessed(ctx context.Context, event *analytics.URLAccessedEvent) error {
	query := `
		INSERT INTO url_accessed_events (event_id, code, accessed_at, client_ip, user_agent, referrer)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (event_id) DO NOTHING
	`

	_, err := p.pool.Exec(ctx, query,
		event.EventID,
		event.Code,
		event.AccessedAt,
		event.ClientIP,
		event.UserAgent,
		event.Referrer,
	)

	return err
}

// Compile-time check.
var _ analytics.Store = (*Postgres)(nil)
