// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"hash"
	"sync"
)

// hasherPool is a package-level pool of reusable SHA-256 hash instances.
// Namespace derivation hashes the user identity on every per-user store
// lookup, so the hashers are recycled instead of allocated each time.
var hasherPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// hashService is the private implementation of [HashService].
type hashService struct {
	defaultSalt string
}

// NewHashService constructs a [HashService] that appends defaultSalt to every
// input hashed without an explicit salt. An empty defaultSalt means no salt.
func NewHashService(defaultSalt string) HashService {
	return &hashService{defaultSalt: defaultSalt}
}

// Hash implements [HashService].
//
// Behavior:
//   - Rejects an empty input with ErrInvalidInput, so an absent identity
//     can never map onto a shared "empty" namespace
//   - Retrieves a hash.Hash instance from the pool, writes input then salt
//   - Returns the lowercase hex digest
func (h *hashService) Hash(input string, salt ...string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%w: empty hash input", ErrInvalidInput)
	}

	s := h.defaultSalt
	if len(salt) > 0 {
		s = salt[0]
	}

	hasher := hasherPool.Get().(hash.Hash)
	hasher.Reset()

	hasher.Write([]byte(input))
	hasher.Write([]byte(s))
	sum := hasher.Sum(nil)

	hasher.Reset()
	hasherPool.Put(hasher)

	return hex.EncodeToString(sum), nil
}

// Verify implements [HashService]. The comparison is constant-time with
// respect to the digest contents.
func (h *hashService) Verify(input, expected string, salt ...string) (bool, error) {
	digest, err := h.Hash(input, salt...)
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare([]byte(digest), []byte(expected)) == 1, nil
}
