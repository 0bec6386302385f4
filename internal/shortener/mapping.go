package shortener

import "time"

// Code represents a short URL code.
type Code string

// Mapping represents a persisted short-code to long-URL mapping.
type Mapping struct {
	ID         int64
	Code       Code
	LongURL    string
	CreatedAt  time.Time
	ExpiresAt  *time.Time
	ClickCount int64
	IsActive   bool
}

// Expired reports whether the mapping has an expiry in the past.
func (m *Mapping) Expired(now time.Time) bool {
	return m.ExpiresAt != nil && now.After(*m.ExpiresAt)
}

// Accessible reports whether the mapping may be resolved: active and not expired.
func (m *Mapping) Accessible(now time.Time) bool {
	return m.IsActive && !m.Expired(now)
}

// CacheStats describes the state of the redirect cache for monitoring.
// TotalCachedURLs counts keys across the whole logical cache database,
// so it is an upper bound rather than an exact shortener-key count.
type CacheStats struct {
	Enabled         bool
	TotalCachedURLs int64
	TTLSeconds      int64
}
