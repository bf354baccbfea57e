package cache

import "errors"

var (
	// ErrCorrupted is returned by reads of an entry that exists but cannot be
	// decrypted or decoded. Callers should drop it and re-fetch the value
	// from its source. Decrypt failures also match crypto.ErrDecrypt.
	ErrCorrupted = errors.New("cache entry corrupted")

	// ErrInvalidKey is returned for logical keys that name no registered
	// resource, belong to a different owner, or for an unusable namespace.
	ErrInvalidKey = errors.New("invalid cache key")
)
