package store

import (
	"context"
	"slices"

	"github.com/patrickmn/go-cache"
)

// memoryKV is an in-process [KVEngine] for tests and ephemeral sessions.
// Entries never expire; go-cache provides the locking.
type memoryKV struct {
	cache *cache.Cache
}

// NewMemoryKV returns an empty in-memory [KVEngine].
func NewMemoryKV() KVEngine {
	return &memoryKV{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (m *memoryKV) GetString(ctx context.Context, key string) (string, bool, error) {
	obj, found := m.cache.Get(key)
	if !found {
		return "", false, nil
	}
	return obj.(string), true, nil
}

func (m *memoryKV) Set(ctx context.Context, key, value string) error {
	m.cache.Set(key, value, cache.NoExpiration)
	return nil
}

func (m *memoryKV) Delete(ctx context.Context, key string) error {
	m.cache.Delete(key)
	return nil
}

func (m *memoryKV) AllKeys(ctx context.Context) ([]string, error) {
	items := m.cache.Items()
	keys := make([]string, 0, len(items))
	for key := range items {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys, nil
}

func (m *memoryKV) ClearAll(ctx context.Context) error {
	m.cache.Flush()
	return nil
}

func (m *memoryKV) Close() error {
	return nil
}
