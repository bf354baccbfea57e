package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KVEngine is the embedded key-value engine behind the namespaced cache.
//
// Implementations must be safe for concurrent use and must give
// read-your-writes consistency for a single caller: a Set followed by a
// GetString of the same key observes the written value.
type KVEngine interface {
	// GetString returns the value stored under key. ok is false when the key
	// does not exist; that is not an error.
	GetString(ctx context.Context, key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// AllKeys returns every stored key in ascending order.
	AllKeys(ctx context.Context) ([]string, error)
	// ClearAll removes every key.
	ClearAll(ctx context.Context) error
	// Close releases the underlying resources.
	Close() error
}

// SecureStore is the hardware- or OS-backed store that keeps the device key.
// The key manager is its only caller.
type SecureStore interface {
	// GetItem returns the value stored under alias; ok is false if absent.
	GetItem(ctx context.Context, alias string) (value string, ok bool, err error)
	// SetItem stores value under alias.
	SetItem(ctx context.Context, alias, value string) error
	// Close releases the underlying resources.
	Close() error
}
