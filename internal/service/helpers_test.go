package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pantry-keeper/internal/cache"
	"github.com/MKhiriev/go-pantry-keeper/internal/crypto"
	"github.com/MKhiriev/go-pantry-keeper/internal/logger"
	"github.com/MKhiriev/go-pantry-keeper/internal/store"
)

// testEnv is a cache backed by in-memory engines and the real cipher.
type testEnv struct {
	kv     store.KVEngine
	secure store.SecureStore
	hasher crypto.HashService
	cache  *cache.NamespacedStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ns, err := cache.NewNamespace("pantry", ":")
	require.NoError(t, err)

	env := &testEnv{
		kv:     store.NewMemoryKV(),
		secure: store.NewMemorySecureStore(),
		hasher: crypto.NewHashService(""),
	}
	env.cache = cache.NewNamespacedStore(
		env.kv,
		crypto.NewKeyManager(env.secure, "pantry.device.key", logger.Nop()),
		crypto.NewEncryptionEngine(),
		env.hasher,
		ns,
		logger.Nop(),
	)
	return env
}

func signedToken(t *testing.T, subject string, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{Subject: subject}
	if !expiresAt.IsZero() {
		claims.ExpiresAt = jwt.NewNumericDate(expiresAt)
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return token
}
