package messaging_test

import (
	"context"
	"errors"
	"testing"

	"github.com/serroba/shortlink/internal/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockRunnable struct {
	started     bool
	shutdown    bool
	startErr    error
	shutdownErr error
}

func (m *mockRunnable) Start(_ context.Context) error {
	if m.startErr != nil {
		return m.startErr
	}

	m.started = true

	return nil
}

func (m *mockRunnable) Shutdown() error {
	m.shutdown = true

	return m.shutdownErr
}

func TestConsumerGroup_Start(t *testing.T) {
	t.Run("starts all consumers", func(t *testing.T) {
		group := messaging.NewConsumerGroup(newMockSubscriber(), zap.NewNop())

		first := &mockRunnable{}
		second := &mockRunnable{}
		group.Add(first)
		group.Add(second)

		err := group.Start(context.Background())

		require.NoError(t, err)
		assert.True(t, first.started)
		assert.True(t, second.started)
	})

	t.Run("stops started consumers when a later one fails", func(t *testing.T) {
		group := messaging.NewConsumerGroup(newMockSubscriber(), zap.NewNop())

		first := &mockRunnable{}
		failing := &mockRunnable{startErr: errors.New("start error")}
		group.Add(first)
		group.Add(failing)

		err := group.Start(context.Background())

		require.Error(t, err)
		assert.True(t, first.shutdown)
	})
}

func TestConsumerGroup_Shutdown(t *testing.T) {
	t.Run("shuts down all consumers and the subscriber", func(t *testing.T) {
		sub := newMockSubscriber()
		group := messaging.NewConsumerGroup(sub, zap.NewNop())

		first := &mockRunnable{}
		second := &mockRunnable{}
		group.Add(first)
		group.Add(second)

		require.NoError(t, group.Start(context.Background()))
		require.NoError(t, group.Shutdown())

		assert.True(t, first.shutdown)
		assert.True(t, second.shutdown)
		assert.True(t, sub.closed)
	})

	t.Run("returns the first shutdown error", func(t *testing.T) {
		group := messaging.NewConsumerGroup(newMockSubscriber(), zap.NewNop())

		shutdownErr := errors.New("shutdown error")
		group.Add(&mockRunnable{shutdownErr: shutdownErr})
		group.Add(&mockRunnable{})

		err := group.Shutdown()

		assert.ErrorIs(t, err, shutdownErr)
	})
}
