package crypto

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/hkdf"

	"github.com/MKhiriev/go-pantry-keeper/internal/logger"
	"github.com/MKhiriev/go-pantry-keeper/internal/store"
)

const (
	fingerprintInfo = "pantry/key-version/v1"
	fingerprintSize = 8
)

// keyManager is the private implementation of [KeyManager]. The cached key
// is never handed out directly; callers receive copies.
type keyManager struct {
	secure store.SecureStore
	alias  string
	logger *logger.Logger

	mu  sync.Mutex
	key []byte
}

// NewKeyManager returns a [KeyManager] that keeps the device key in secure
// under alias.
func NewKeyManager(secure store.SecureStore, alias string, log *logger.Logger) KeyManager {
	return &keyManager{
		secure: secure,
		alias:  alias,
		logger: log,
	}
}

// GetOrCreateKey implements [KeyManager].
//
// The whole load-or-create sequence runs under the mutex, so concurrent
// first calls persist exactly one key. A stored value that does not decode
// to KeySize bytes is reported as ErrKeyUnavailable and left in place.
func (k *keyManager) GetOrCreateKey(ctx context.Context) ([]byte, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.key != nil {
		return clone(k.key), nil
	}

	stored, ok, err := k.secure.GetItem(ctx, k.alias)
	if err != nil {
		k.logger.Err(err).Str("func", "keyManager.GetOrCreateKey").Msg("secure store read failed")
		return nil, fmt.Errorf("%w: %v", ErrKeyUnavailable, err)
	}

	if ok {
		key, err := decodeKey(stored)
		if err != nil {
			k.logger.Error().Str("func", "keyManager.GetOrCreateKey").Msg("stored device key is malformed")
			return nil, err
		}
		k.key = key
		return clone(k.key), nil
	}

	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("%w: generate key: %v", ErrKeyUnavailable, err)
	}

	if err := k.secure.SetItem(ctx, k.alias, hex.EncodeToString(key)); err != nil {
		Zero(key)
		k.logger.Err(err).Str("func", "keyManager.GetOrCreateKey").Msg("secure store write failed")
		return nil, fmt.Errorf("%w: %v", ErrKeyUnavailable, err)
	}
	k.logger.Info().Str("func", "keyManager.GetOrCreateKey").Msg("generated new device key")

	k.key = key
	return clone(k.key), nil
}

// Fingerprint implements [KeyManager]. The tag is HKDF-SHA256 output, so it
// reveals nothing about the key itself.
func (k *keyManager) Fingerprint(ctx context.Context) (string, error) {
	key, err := k.GetOrCreateKey(ctx)
	if err != nil {
		return "", err
	}
	defer Zero(key)

	tag := make([]byte, fingerprintSize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, key, nil, []byte(fingerprintInfo)), tag); err != nil {
		return "", fmt.Errorf("derive fingerprint: %w", err)
	}

	return hex.EncodeToString(tag), nil
}

func decodeKey(stored string) ([]byte, error) {
	if len(stored) != hex.EncodedLen(KeySize) {
		return nil, fmt.Errorf("%w: stored key has length %d", ErrKeyUnavailable, len(stored))
	}
	key, err := decodeLowerHex(stored)
	if err != nil {
		return nil, fmt.Errorf("%w: stored key is not hex", ErrKeyUnavailable)
	}
	return key, nil
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}
