package store

import (
	"context"
	"sync"
)

// memorySecureStore keeps aliases in process memory. The key is lost on
// exit, so every run starts with a fresh device key.
type memorySecureStore struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemorySecureStore returns an empty in-memory [SecureStore].
func NewMemorySecureStore() SecureStore {
	return &memorySecureStore{items: make(map[string]string)}
}

func (m *memorySecureStore) GetItem(ctx context.Context, alias string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.items[alias]
	return value, ok, nil
}

func (m *memorySecureStore) SetItem(ctx context.Context, alias, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[alias] = value
	return nil
}

func (m *memorySecureStore) Close() error {
	return nil
}
