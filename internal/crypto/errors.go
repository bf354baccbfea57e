package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned for empty identities, malformed keys and
	// other programmer errors. It is never worth retrying.
	ErrInvalidInput = errors.New("invalid input")

	// ErrKeyUnavailable is returned when the device key cannot be loaded or
	// created. Callers must abort the sensitive operation; there is no
	// plaintext fallback.
	ErrKeyUnavailable = errors.New("device key unavailable")

	// ErrDecrypt is returned when a stored value cannot be decrypted. Callers
	// should treat the value as corrupted and re-fetch it from its source.
	ErrDecrypt = errors.New("decryption failed")

	// ErrPadding is returned when the decrypted block does not end with
	// valid PKCS#7 padding, which is what a wrong key or tampered ciphertext
	// usually produces. It matches ErrDecrypt.
	ErrPadding = fmt.Errorf("%w: invalid padding", ErrDecrypt)

	// ErrInvalidEnvelope is returned when the stored envelope is not exactly
	// {"iv":"<hex>","ciphertext":"<hex>"}. It matches ErrDecrypt.
	ErrInvalidEnvelope = fmt.Errorf("%w: invalid envelope", ErrDecrypt)
)
