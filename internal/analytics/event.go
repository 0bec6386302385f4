package analytics

import (
	"time"

	"github.com/google/uuid"
	"github.com/serroba/shortlink/internal/shortener"
)

// Topics for shortener analytics events.
const (
	TopicURLCreated  = "url.created"
	TopicURLAccessed = "url.accessed"
)

// URLCreatedEvent is emitted when a URL is shortened.
type URLCreatedEvent struct {
	EventID     string    `json:"eventId"`
	Code        string    `json:"code"`
	OriginalURL string    `json:"originalUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	ClientIP    string    `json:"clientIp"`
	UserAgent   string    `json:"userAgent"`
}

// NewURLCreatedEvent builds a created event from a persisted mapping.
func NewURLCreatedEvent(mapping *shortener.Mapping, clientIP, userAgent string) *URLCreatedEvent {
	return &URLCreatedEvent{
		EventID:     uuid.NewString(),
		Code:        string(mapping.Code),
		OriginalURL: mapping.LongURL,
		CreatedAt:   mapping.CreatedAt,
		ClientIP:    clientIP,
		UserAgent:   userAgent,
	}
}

// URLAccessedEvent is emitted when a short URL is resolved for a redirect.
type URLAccessedEvent struct {
	EventID    string    `json:"eventId"`
	Code       string    `json:"code"`
	AccessedAt time.Time `json:"accessedAt"`
	ClientIP   string    `json:"clientIp"`
	UserAgent  string    `json:"userAgent"`
	Referrer   string    `json:"referrer"`
}

// NewURLAccessedEvent builds an accessed event for a resolved code.
func NewURLAccessedEvent(code string, accessedAt time.Time, clientIP, userAgent, referrer string) *URLAccessedEvent {
	return &URLAccessedEvent{
		EventID:    uuid.NewString(),
		Code:       code,
		AccessedAt: accessedAt,
		ClientIP:   clientIP,
		UserAgent:  userAgent,
		Referrer:   referrer,
	}
}
