package store

import (
	"context"
	"sync"
	"time"

	"github.com/serroba/shortlink/internal/shortener"
)

// MemoryStore is an in-memory implementation of shortener.Repository,
// used by tests and local development.
type MemoryStore struct {
	mu       sync.RWMutex
	mappings map[shortener.Code]*shortener.Mapping
	nextID   int64
	now      func() time.Time
}

// NewMemoryStore creates a new in-memory mapping store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		mappings: make(map[shortener.Code]*shortener.Mapping),
		now:      time.Now,
	}
}

func (m *MemoryStore) Save(_ context.Context, mapping *shortener.Mapping) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.mappings[mapping.Code]; ok {
		return shortener.ErrCodeTaken
	}

	m.nextID++
	mapping.ID = m.nextID

	clone := *mapping
	m.mappings[mapping.Code] = &clone

	return nil
}

func (m *MemoryStore) FindActiveByCode(_ context.Context, code shortener.Code) (*shortener.Mapping, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	mapping, ok := m.mappings[code]
	if !ok || !mapping.Accessible(m.now()) {
		return nil, shortener.ErrNotFound
	}

	clone := *mapping

	return &clone, nil
}

func (m *MemoryStore) FindByCode(_ context.Context, code shortener.Code) (*shortener.Mapping, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	mapping, ok := m.mappings[code]
	if !ok {
		return nil, shortener.ErrNotFound
	}

	clone := *mapping

	return &clone, nil
}

func (m *MemoryStore) ExistsByCode(_ context.Context, code shortener.Code) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.mappings[code]

	return ok, nil
}

func (m *MemoryStore) IncrementClickCount(_ context.Context, code shortener.Code) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	mapping, ok := m.mappings[code]
	if !ok {
		return 0, shortener.ErrNotFound
	}

	mapping.ClickCount++

	return mapping.ClickCount, nil
}

// Deactivate marks a mapping inactive. The shortener core never calls this;
// it stands in for the external expiry-sweep collaborator in tests.
func (m *MemoryStore) Deactivate(code shortener.Code) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if mapping, ok := m.mappings[code]; ok {
		mapping.IsActive = false
	}
}

// Compile-time check.
var _ shortener.Repository = (*MemoryStore)(nil)
