package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/serroba/shortlink/internal/analytics"
	"github.com/serroba/shortlink/internal/analytics/store"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNoop(t *testing.T) {
	s := store.NewNoop(zap.NewNop())

	err := s.SaveURLCreated(context.Background(), &analytics.URLCreatedEvent{
		EventID:     "evt-1",
		Code:        "K3f9Qz",
		OriginalURL: "https://example.com",
		CreatedAt:   time.Now(),
	})
	require.NoError(t, err)

	err = s.SaveURLAccessed(context.Background(), &analytics.URLAccessedEvent{
		EventID:    "evt-2",
		Code:       "K3f9Qz",
		AccessedAt: time.Now(),
	})
	require.NoError(t, err)
}
