package cache

import (
	"context"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pantry-keeper/internal/crypto"
	"github.com/MKhiriev/go-pantry-keeper/internal/logger"
	"github.com/MKhiriev/go-pantry-keeper/internal/mock"
	"github.com/MKhiriev/go-pantry-keeper/internal/store"
	"github.com/MKhiriev/go-pantry-keeper/models"
)

const testAlias = "pantry.device.key"

type fixture struct {
	kv     store.KVEngine
	secure store.SecureStore
	store  *NamespacedStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	kv := store.NewMemoryKV()
	secure := store.NewMemorySecureStore()
	ns, err := NewNamespace("pantry", ":")
	require.NoError(t, err)

	s := NewNamespacedStore(
		kv,
		crypto.NewKeyManager(secure, testAlias, logger.Nop()),
		crypto.NewEncryptionEngine(),
		crypto.NewHashService(""),
		ns,
		logger.Nop(),
	)
	return &fixture{kv: kv, secure: secure, store: s}
}

func TestPadKey_Idempotent(t *testing.T) {
	f := newFixture(t)
	u, err := f.store.ForUser("user-1")
	require.NoError(t, err)

	for _, view := range []*NamespacedStore{f.store, u} {
		for _, logical := range []string{"barcode", "product:0123", "current_user", "unregistered"} {
			once := view.PadKey(logical)
			twice := view.PadKey(once.String())
			assert.Equal(t, once, twice, logical)
			assert.Equal(t, once.String(), view.PadKeyString(once.String()))
		}
	}
}

func TestPadKey_Format(t *testing.T) {
	f := newFixture(t)
	u, err := f.store.ForUser("user-1")
	require.NoError(t, err)

	hash, _ := crypto.NewHashService("").Hash("user-1")

	assert.Equal(t, "pantry:anon:barcode", f.store.PadKeyString("barcode"))
	assert.Equal(t, "pantry:"+hash+":barcode", u.PadKeyString("barcode"))
	assert.Equal(t, "pantry:current_user", u.PadKeyString("current_user"))
	assert.NotContains(t, u.PadKeyString("barcode"), "user-1")
}

func TestNamespaceIsolation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	users := []string{"alice", "bob", "carol@example.com", "42", "43"}
	seen := make(map[string]string)
	for _, id := range users {
		view, err := f.store.ForUser(id)
		require.NoError(t, err)

		padded := view.PadKeyString("tasks")
		if other, dup := seen[padded]; dup {
			t.Fatalf("%s and %s share key %s", id, other, padded)
		}
		seen[padded] = id

		require.NoError(t, view.SetItem(ctx, "tasks", "tasks of "+id))
	}

	for _, id := range users {
		view, _ := f.store.ForUser(id)
		v, ok, err := view.GetItem(ctx, "tasks")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "tasks of "+id, v)
	}
}

func TestForUser_RejectsEmptyAndSentinel(t *testing.T) {
	f := newFixture(t)

	_, err := f.store.ForUser("")
	assert.ErrorIs(t, err, ErrInvalidKey)
	_, err = f.store.ForUser(AnonymousOwner)
	assert.ErrorIs(t, err, ErrInvalidKey)

	for _, blank := range []string{" ", "  ", "\t", " \n "} {
		_, err = f.store.ForUser(blank)
		assert.ErrorIs(t, err, ErrInvalidKey, "user id %q", blank)
	}
}

func TestSetGetItem_PlainAndSensitive(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u, _ := f.store.ForUser("user-1")

	require.NoError(t, u.SetItem(ctx, "households", `[{"id":"h1"}]`))
	require.NoError(t, u.SetItem(ctx, "session", `{"access_token":"secret"}`))

	raw, ok, err := f.kv.GetString(ctx, u.PadKeyString("households"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"h1"}]`, raw)

	raw, ok, err = f.kv.GetString(ctx, u.PadKeyString("session"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotContains(t, raw, "secret")
	assert.True(t, strings.HasPrefix(raw, `{"iv":"`))

	v, ok, err := u.GetItem(ctx, "session")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"access_token":"secret"}`, v)
}

func TestGetItem_AbsentIsNotAnError(t *testing.T) {
	f := newFixture(t)

	v, ok, err := f.store.GetItem(context.Background(), "session")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestGetItem_CorruptedIsDistinguishable(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.kv.Set(ctx, f.store.PadKeyString("credentials"), "not an envelope"))

	_, ok, err := f.store.GetItem(ctx, "credentials")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrCorrupted)
	assert.ErrorIs(t, err, crypto.ErrDecrypt)
}

func TestGetItem_KeyReplacedIsCorrupted(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.store.SetItem(ctx, "session", "token"))

	// a fresh key store: same cache, different device key
	other := NewNamespacedStore(
		f.kv,
		crypto.NewKeyManager(store.NewMemorySecureStore(), testAlias, logger.Nop()),
		crypto.NewEncryptionEngine(),
		crypto.NewHashService(""),
		f.store.ns,
		logger.Nop(),
	)

	_, _, err := other.GetItem(ctx, "session")
	assert.ErrorIs(t, err, ErrCorrupted)
}

func TestSensitive_KeyUnavailableIsFatal(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	keys := mock.NewMockKeyManager(ctrl)
	keys.EXPECT().GetOrCreateKey(gomock.Any()).Return(nil, crypto.ErrKeyUnavailable).Times(2)

	kv := store.NewMemoryKV()
	s := NewNamespacedStore(kv, keys, crypto.NewEncryptionEngine(), crypto.NewHashService(""),
		Namespace{Slug: "pantry", Separator: ":"}, logger.Nop())

	err := s.SetItem(ctx, "credentials", "api-key")
	assert.ErrorIs(t, err, crypto.ErrKeyUnavailable)

	// nothing was written in plaintext
	keysList, _ := kv.AllKeys(ctx)
	assert.Empty(t, keysList)

	require.NoError(t, kv.Set(ctx, "pantry:anon:credentials", `{"iv":"00","ciphertext":"00"}`))
	_, _, err = s.GetItem(ctx, "credentials")
	assert.ErrorIs(t, err, crypto.ErrKeyUnavailable)
	assert.NotErrorIs(t, err, ErrCorrupted)

	// plain resources never touch the key manager
	require.NoError(t, s.SetItem(ctx, "tasks", "[]"))
}

func TestSetItem_EngineFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	kv := mock.NewMockKVEngine(ctrl)
	kv.EXPECT().Set(ctx, "pantry:anon:tasks", "[]").Return(store.ErrKVUnavailable)
	kv.EXPECT().GetString(ctx, "pantry:anon:tasks").Return("", false, errors.New("io"))

	s := NewNamespacedStore(kv, mock.NewMockKeyManager(ctrl), mock.NewMockEncryptionEngine(ctrl),
		mock.NewMockHashService(ctrl), Namespace{Slug: "pantry", Separator: ":"}, logger.Nop())

	assert.ErrorIs(t, s.SetItem(ctx, "tasks", "[]"), store.ErrKVUnavailable)
	_, _, err := s.GetItem(ctx, "tasks")
	assert.Error(t, err)
}

func TestResolve_RejectsForeignKeys(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice, _ := f.store.ForUser("alice")
	bob, _ := f.store.ForUser("bob")

	err := bob.SetItem(ctx, alice.PadKeyString("tasks"), "hijack")
	assert.ErrorIs(t, err, ErrInvalidKey)

	err = f.store.SetItem(ctx, "unregistered", "x")
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, _, err = f.store.GetItem(ctx, "pantry:barcode")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestRemoveItem_DeletesLegacyVariants(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u, _ := f.store.ForUser("user-1")

	require.NoError(t, u.SetItem(ctx, "barcode", `["A1"]`))
	require.NoError(t, f.kv.Set(ctx, "barcode", `["legacy"]`))
	require.NoError(t, f.kv.Set(ctx, "pantry:barcode", `["legacy"]`))
	require.NoError(t, f.kv.Set(ctx, "pantry:anon:barcode", `["anon"]`))

	require.NoError(t, u.RemoveItem(ctx, "barcode"))

	keys, err := f.kv.AllKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"pantry:anon:barcode"}, keys)

	// removing a missing key is fine
	assert.NoError(t, u.RemoveItem(ctx, "barcode"))
}

func TestGetKeys_StripsPrefix(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u, _ := f.store.ForUser("user-1")
	other, _ := f.store.ForUser("user-2")

	require.NoError(t, u.SetItem(ctx, "tasks", "[]"))
	require.NoError(t, u.SetItem(ctx, u.Key(ResourceProduct, "0123"), "{}"))
	require.NoError(t, other.SetItem(ctx, "tasks", "[]"))
	require.NoError(t, u.SetItem(ctx, "current_user", "x"))
	require.NoError(t, f.kv.Set(ctx, "otherapp:anon:tasks", "[]"))
	_, err := u.EnsureKeyVersion(ctx)
	require.NoError(t, err)

	keys, err := u.GetKeys(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"tasks", "product:0123", "current_user"}, keys)
}

func TestResetToDefaults(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u, _ := f.store.ForUser("user-1")

	require.NoError(t, u.SetItem(ctx, "session", "token"))
	require.NoError(t, u.SetItem(ctx, "households", "[]"))
	require.NoError(t, f.store.SetItem(ctx, "current_user", u.Owner()))
	require.NoError(t, f.kv.Set(ctx, "otherapp:x", "keep"))
	_, err := f.store.EnsureKeyVersion(ctx)
	require.NoError(t, err)

	require.NoError(t, u.ResetToDefaults(ctx))

	keys, err := f.kv.AllKeys(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"otherapp:x",
		"pantry:__key_version",
		"pantry:current_user",
		"pantry:anon:preferences",
	}, keys)

	marker, ok, err := f.store.GetItem(ctx, "current_user")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, AnonymousOwner, marker)

	var prefs models.Preferences
	ok, err = f.store.GetJSON(ctx, "preferences", &prefs)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.DefaultPreferences(), prefs)
}

func TestSetGetJSON(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u, _ := f.store.ForUser("user-1")

	profile := models.Profile{ID: "user-1", Email: "a@example.com"}
	require.NoError(t, u.SetJSON(ctx, "user", profile))

	var got models.Profile
	ok, err := u.GetJSON(ctx, "user", &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, profile, got)

	ok, err = u.GetJSON(ctx, "tasks", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, u.SetItem(ctx, "tasks", "{not json"))
	_, err = u.GetJSON(ctx, "tasks", &got)
	assert.ErrorIs(t, err, ErrCorrupted)
}

func TestEnsureKeyVersion(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u, _ := f.store.ForUser("user-1")

	// first run records the fingerprint without purging
	purged, err := f.store.EnsureKeyVersion(ctx)
	require.NoError(t, err)
	assert.Zero(t, purged)

	require.NoError(t, u.SetItem(ctx, "session", "token"))
	require.NoError(t, u.SetItem(ctx, "credentials", "api"))
	require.NoError(t, u.SetItem(ctx, "tasks", "[]"))

	purged, err = u.EnsureKeyVersion(ctx)
	require.NoError(t, err)
	assert.Zero(t, purged)

	// the key store is wiped and a new key is put in place
	freshSecure := store.NewMemorySecureStore()
	require.NoError(t, freshSecure.SetItem(ctx, testAlias, hex.EncodeToString(make([]byte, crypto.KeySize))))
	replaced := NewNamespacedStore(
		f.kv,
		crypto.NewKeyManager(freshSecure, testAlias, logger.Nop()),
		crypto.NewEncryptionEngine(),
		crypto.NewHashService(""),
		f.store.ns,
		logger.Nop(),
	)

	purged, err = replaced.EnsureKeyVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, purged)

	ru, _ := replaced.ForUser("user-1")
	_, ok, err := ru.GetItem(ctx, "session")
	require.NoError(t, err)
	assert.False(t, ok)

	v, ok, err := ru.GetItem(ctx, "tasks")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", v)

	purged, err = replaced.EnsureKeyVersion(ctx)
	require.NoError(t, err)
	assert.Zero(t, purged)
}

func TestEnsureKeyVersion_KeyUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	keys := mock.NewMockKeyManager(ctrl)
	keys.EXPECT().Fingerprint(gomock.Any()).Return("", crypto.ErrKeyUnavailable)

	s := NewNamespacedStore(store.NewMemoryKV(), keys, crypto.NewEncryptionEngine(),
		crypto.NewHashService(""), Namespace{Slug: "pantry", Separator: ":"}, logger.Nop())

	_, err := s.EnsureKeyVersion(context.Background())
	assert.ErrorIs(t, err, crypto.ErrKeyUnavailable)
}

func TestForOwner(t *testing.T) {
	f := newFixture(t)
	u, _ := f.store.ForUser("user-1")

	same, err := f.store.ForOwner(u.Owner())
	require.NoError(t, err)
	assert.Equal(t, u.PadKeyString("tasks"), same.PadKeyString("tasks"))

	anon, err := f.store.ForOwner(AnonymousOwner)
	require.NoError(t, err)
	assert.Equal(t, AnonymousOwner, anon.Owner())

	_, err = f.store.ForOwner("user-1")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestRemoveItem_RejectsForeignOwner(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice, _ := f.store.ForUser("alice")
	bob, _ := f.store.ForUser("bob")

	require.NoError(t, alice.SetItem(ctx, "barcode", `["A1"]`))
	require.NoError(t, alice.SetItem(ctx, "session", "token"))

	assert.ErrorIs(t, bob.RemoveItem(ctx, alice.PadKeyString("barcode")), ErrInvalidKey)
	assert.ErrorIs(t, bob.RemoveItem(ctx, alice.PadKeyString("session")), ErrInvalidKey)
	assert.ErrorIs(t, f.store.RemoveItem(ctx, alice.PadKeyString("barcode")), ErrInvalidKey)

	v, ok, err := alice.GetItem(ctx, "barcode")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["A1"]`, v)
	_, ok, err = alice.GetItem(ctx, "session")
	require.NoError(t, err)
	assert.True(t, ok)

	// own padded keys, ownerless legacy keys and global keys are allowed
	assert.NoError(t, alice.RemoveItem(ctx, alice.PadKeyString("barcode")))
	assert.NoError(t, bob.RemoveItem(ctx, "pantry:barcode"))
	assert.NoError(t, bob.RemoveItem(ctx, "pantry:current_user"))
}
