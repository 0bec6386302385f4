package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serroba/shortlink/internal/shortener"
)

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

// PostgresStore is a PostgreSQL implementation of shortener.Repository.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL-backed mapping store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (p *PostgresStore) Save(ctx context.Context, mapping *shortener.Mapping) error {
	query := `
		INSERT INTO url_mappings (code, long_url, created_at, expires_at, click_count, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := p.pool.QueryRow(ctx, query,
		string(mapping.Code),
		mapping.LongURL,
		mapping.CreatedAt,
		mapping.ExpiresAt,
		mapping.ClickCount,
		mapping.IsActive,
	).Scan(&mapping.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return shortener.ErrCodeTaken
		}

		return err
	}

	return nil
}

func (p *PostgresStore) FindActiveByCode(ctx context.Context, code shortener.Code) (*shortener.Mapping, error) {
	query := `
		SELECT id, code, long_url, created_at, expires_at, click_count, is_active
		FROM url_mappings
		WHERE code = $1
		  AND is_active
		  AND (expires_at IS NULL OR expires_at > now())
	`

	return p.queryOne(ctx, query, code)
}

func (p *PostgresStore) FindByCode(ctx context.Context, code shortener.Code) (*shortener.Mapping, error) {
	query := `
		SELECT id, code, long_url, created_at, expires_at, click_count, is_active
		FROM url_mappings
		WHERE code = $1
	`

	return p.queryOne(ctx, query, code)
}

func (p *PostgresStore) ExistsByCode(ctx context.Context, code shortener.Code) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM url_mappings WHERE code = $1)`

	var exists bool

	if err := p.pool.QueryRow(ctx, query, string(code)).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

// IncrementClickCount adds one to the click count in a single statement so
// concurrent increments never read a stale snapshot.
func (p *PostgresStore) IncrementClickCount(ctx context.Context, code shortener.Code) (int64, error) {
	query := `
		UPDATE url_mappings
		SET click_count = click_count + 1
		WHERE code = $1
		RETURNING click_count
	`

	var count int64

	err := p.pool.QueryRow(ctx, query, string(code)).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, shortener.ErrNotFound
		}

		return 0, err
	}

	return count, nil
}

func (p *PostgresStore) queryOne(ctx context.Context, query string, code shortener.Code) (*shortener.Mapping, error) {
	var mapping shortener.Mapping

	err := p.pool.QueryRow(ctx, query, string(code)).Scan(
		&mapping.ID,
		&mapping.Code,
		&mapping.LongURL,
		&mapping.CreatedAt,
		&mapping.ExpiresAt,
		&mapping.ClickCount,
		&mapping.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shortener.ErrNotFound
		}

		return nil, err
	}

	return &mapping, nil
}

// Compile-time check.
var _ shortener.Repository = (*PostgresStore)(nil)
