package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// HashService produces one-way digests of identities and credentials.
//
// It is used to derive per-user namespace segments (so raw identities never
// reach storage keys) and to fingerprint external-API credentials. Digests
// are deterministic: the same input and salt always yield the same value,
// otherwise a user's cached data would be split across namespaces.
// Digests cannot be reversed.
type HashService interface {
	// Hash returns the lowercase hex SHA-256 digest of input || salt.
	// The first optional salt argument replaces the configured default salt.
	// Returns ErrInvalidInput for an empty input.
	Hash(input string, salt ...string) (string, error)

	// Verify recomputes the digest of input (and salt) and compares it with
	// expected in constant time.
	Verify(input, expected string, salt ...string) (bool, error)
}

// KeyManager owns the single device-wide symmetric key.
type KeyManager interface {
	// GetOrCreateKey returns the 32-byte device key. The first call loads it
	// from the secure key store or, if absent, generates and persists a new
	// one; later calls are served from memory. Returns ErrKeyUnavailable if
	// the secure key store cannot be used.
	GetOrCreateKey(ctx context.Context) ([]byte, error)

	// Fingerprint returns a short, non-secret tag identifying the current
	// device key. Stores use it to notice that the key has been replaced.
	Fingerprint(ctx context.Context) (string, error)
}

// EncryptionEngine is a stateless AES-256-CBC cipher producing JSON
// envelopes of the form {"iv":"<hex>","ciphertext":"<hex>"}.
type EncryptionEngine interface {
	// Encrypt pads plaintext with PKCS#7 and encrypts it under key with a
	// fresh random IV. Every call yields a new envelope.
	Encrypt(key []byte, plaintext string) (string, error)

	// Decrypt parses envelope, decrypts it under key and strips the padding.
	// Wrong keys, tampered or malformed envelopes yield an error matching
	// ErrDecrypt. There is no MAC: a tampered ciphertext that still unpads
	// to valid UTF-8 goes undetected.
	Decrypt(key []byte, envelope string) (string, error)
}
