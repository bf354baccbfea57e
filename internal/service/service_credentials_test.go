package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pantry-keeper/internal/crypto"
	"github.com/MKhiriev/go-pantry-keeper/internal/logger"
	"github.com/MKhiriev/go-pantry-keeper/internal/mock"
	"github.com/MKhiriev/go-pantry-keeper/models"
)

func TestCredentialService_SaveLoad(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := NewCredentialService(env.cache, env.hasher, logger.Nop())

	creds := models.APICredentials{Provider: "foodfacts", APIKey: "k-123"}
	fingerprint, err := svc.Save(ctx, "user-1", creds)
	require.NoError(t, err)

	expected, _ := env.hasher.Hash("k-123")
	assert.Equal(t, expected, fingerprint)

	got, ok, err := svc.Load(ctx, "user-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, creds, got)

	// stored encrypted
	keys, _ := env.kv.AllKeys(ctx)
	for _, k := range keys {
		raw, _, _ := env.kv.GetString(ctx, k)
		assert.NotContains(t, raw, "k-123")
	}

	_, ok, err = svc.Load(ctx, "user-2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCredentialService_Matches(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCredentialService(env.cache, env.hasher, logger.Nop())

	fp, err := svc.Fingerprint("k-123")
	require.NoError(t, err)

	ok, err := svc.Matches("k-123", fp)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Matches("k-124", fp)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCredentialService_Validation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := NewCredentialService(env.cache, env.hasher, logger.Nop())

	_, err := svc.Save(ctx, "user-1", models.APICredentials{Provider: "x"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Save(ctx, "", models.APICredentials{APIKey: "k"})
	assert.ErrorIs(t, err, ErrMissingUser)

	_, _, err = svc.Load(ctx, "anon")
	assert.ErrorIs(t, err, ErrMissingUser)
}

func TestCredentialService_HashFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	hasher := mock.NewMockHashService(ctrl)
	hasher.EXPECT().Hash("").Return("", crypto.ErrInvalidInput)

	svc := NewCredentialService(newTestEnv(t).cache, hasher, logger.Nop())

	_, err := svc.Fingerprint("")
	assert.ErrorIs(t, err, crypto.ErrInvalidInput)
}

func TestCredentialService_SaveLogsNoSecrets(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	var buf bytes.Buffer
	svc := NewCredentialService(env.cache, env.hasher, &logger.Logger{Logger: zerolog.New(&buf)})

	fingerprint, err := svc.Save(ctx, "user-1", models.APICredentials{Provider: "foodfacts", APIKey: "k-123"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "foodfacts")
	assert.NotContains(t, out, "k-123")
	assert.NotContains(t, out, fingerprint)
}
