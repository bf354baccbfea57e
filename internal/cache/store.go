// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pantry-keeper/internal/crypto"
	"github.com/MKhiriev/go-pantry-keeper/internal/logger"
	"github.com/MKhiriev/go-pantry-keeper/internal/store"
	"github.com/MKhiriev/go-pantry-keeper/models"
)

// NamespacedStore is a view of the KV engine scoped to one owner: a hashed
// user identity or the anonymous sentinel. Entries of sensitive resources
// are encrypted with the device key; the rest are stored as given.
//
// Views are cheap and share the engine; the engine provides the locking.
type NamespacedStore struct {
	kv     store.KVEngine
	keys   crypto.KeyManager
	cipher crypto.EncryptionEngine
	hasher crypto.HashService
	ns     Namespace
	owner  string
	logger *logger.Logger
}

// NewNamespacedStore returns the anonymous view of kv under ns.
func NewNamespacedStore(
	kv store.KVEngine,
	keys crypto.KeyManager,
	cipher crypto.EncryptionEngine,
	hasher crypto.HashService,
	ns Namespace,
	log *logger.Logger,
) *NamespacedStore {
	return &NamespacedStore{
		kv:     kv,
		keys:   keys,
		cipher: cipher,
		hasher: hasher,
		ns:     ns,
		owner:  AnonymousOwner,
		logger: log,
	}
}

// ForUser returns the view of userID. The owner segment is the hash of the
// identity; the raw identity never reaches a storage key.
func (s *NamespacedStore) ForUser(userID string) (*NamespacedStore, error) {
	if strings.TrimSpace(userID) == "" || userID == AnonymousOwner {
		return nil, fmt.Errorf("%w: empty user id", ErrInvalidKey)
	}

	segment, err := s.hasher.Hash(userID)
	if err != nil {
		return nil, fmt.Errorf("hash user id: %w", err)
	}

	view := *s
	view.owner = segment
	return &view, nil
}

// ForOwner returns the view of an already hashed owner segment, such as
// the one recorded in the current-user marker.
func (s *NamespacedStore) ForOwner(segment string) (*NamespacedStore, error) {
	if !isOwnerSegment(segment) {
		return nil, fmt.Errorf("%w: malformed owner segment", ErrInvalidKey)
	}

	view := *s
	view.owner = segment
	return &view, nil
}

// Anonymous returns the anonymous view.
func (s *NamespacedStore) Anonymous() *NamespacedStore {
	view := *s
	view.owner = AnonymousOwner
	return &view
}

// Owner returns the owner segment of the view.
func (s *NamespacedStore) Owner() string {
	return s.owner
}

// Key builds the logical key of resource r, optionally narrowed by ids:
// "barcode", "product:0123456789012".
func (s *NamespacedStore) Key(r Resource, ids ...string) string {
	name := string(r)
	if class, ok := registry[r]; ok {
		name = class.StorageName
	}
	return strings.Join(append([]string{name}, ids...), s.ns.Separator)
}

// PadKey qualifies a logical key with the namespace and, unless the
// resource is global, the owner segment. Already qualified keys are
// returned unchanged.
func (s *NamespacedStore) PadKey(logicalKey string) NamespaceKey {
	if key, ok := s.ns.Parse(logicalKey); ok {
		return key
	}

	key := NamespaceKey{Namespace: s.ns, Owner: s.owner, Name: logicalKey}
	if r, ok := key.Resource(); ok && registry[r].Global {
		key.Owner = ""
	}
	return key
}

// PadKeyString is PadKey(logicalKey).String().
func (s *NamespacedStore) PadKeyString(logicalKey string) string {
	return s.PadKey(logicalKey).String()
}

// resolve pads logicalKey and checks that it names a registered resource
// this view may access.
func (s *NamespacedStore) resolve(logicalKey string) (NamespaceKey, ResourceClass, error) {
	key := s.PadKey(logicalKey)

	r, ok := key.Resource()
	if !ok {
		return NamespaceKey{}, ResourceClass{}, fmt.Errorf("%w: unknown resource in %q", ErrInvalidKey, key.Name)
	}
	class := registry[r]

	switch {
	case class.Global && !key.Global():
		return NamespaceKey{}, ResourceClass{}, fmt.Errorf("%w: %q is a global resource", ErrInvalidKey, key.Name)
	case !class.Global && key.Owner != s.owner:
		return NamespaceKey{}, ResourceClass{}, fmt.Errorf("%w: key belongs to another owner", ErrInvalidKey)
	}

	return key, class, nil
}

// SetItem stores value under logicalKey, encrypting it first when the
// resource is sensitive.
func (s *NamespacedStore) SetItem(ctx context.Context, logicalKey, value string) error {
	key, class, err := s.resolve(logicalKey)
	if err != nil {
		return err
	}

	if class.Sensitive {
		value, err = s.seal(ctx, value)
		if err != nil {
			return err
		}
	}

	if err := s.kv.Set(ctx, key.String(), value); err != nil {
		return fmt.Errorf("set %q: %w", key.Name, err)
	}
	return nil
}

// GetItem returns the value under logicalKey. A missing entry is
// ("", false, nil). An entry that fails to decrypt is reported as
// ErrCorrupted, so callers can tell it apart from a miss.
// crypto.ErrKeyUnavailable is returned as is.
func (s *NamespacedStore) GetItem(ctx context.Context, logicalKey string) (string, bool, error) {
	key, class, err := s.resolve(logicalKey)
	if err != nil {
		return "", false, err
	}

	raw, ok, err := s.kv.GetString(ctx, key.String())
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key.Name, err)
	}
	if !ok {
		return "", false, nil
	}

	if !class.Sensitive {
		return raw, true, nil
	}

	value, err := s.open(ctx, raw)
	if err != nil {
		if errors.Is(err, crypto.ErrDecrypt) {
			s.logger.Warn().
				Str("func", "NamespacedStore.GetItem").
				Str("resource", key.Name).
				Msg("stored entry cannot be decrypted")
			return "", false, fmt.Errorf("%w: %q: %w", ErrCorrupted, key.Name, err)
		}
		return "", false, err
	}

	return value, true, nil
}

// RemoveItem deletes logicalKey. Legacy copies written without the owner
// segment or without any prefix are deleted as well. A key qualified with
// another owner's segment is rejected with ErrInvalidKey.
func (s *NamespacedStore) RemoveItem(ctx context.Context, logicalKey string) error {
	key := s.PadKey(logicalKey)
	if key.Owner != "" && key.Owner != s.owner {
		return fmt.Errorf("%w: key belongs to another owner", ErrInvalidKey)
	}

	variants := []string{key.String(), key.Name}
	if !key.Global() {
		variants = append(variants, NamespaceKey{Namespace: s.ns, Name: key.Name}.String())
	}

	for _, variant := range variants {
		if err := s.kv.Delete(ctx, variant); err != nil {
			return fmt.Errorf("remove %q: %w", key.Name, err)
		}
	}
	return nil
}

// GetKeys lists the logical keys visible to this view: its own entries
// and the global ones, with the namespace stripped. Keys of other owners
// and other applications are skipped.
func (s *NamespacedStore) GetKeys(ctx context.Context) ([]string, error) {
	all, err := s.kv.AllKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}

	keys := make([]string, 0, len(all))
	for _, raw := range all {
		key, ok := s.ns.Parse(raw)
		if !ok {
			continue
		}
		if !key.Global() && key.Owner != s.owner {
			continue
		}
		if r, ok := key.Resource(); ok && registry[r].internal {
			continue
		}
		keys = append(keys, key.Name)
	}
	return keys, nil
}

// ResetToDefaults deletes every entry of the application, for all owners,
// then seeds the anonymous current-user marker and default preferences.
// The key-version record survives because it describes the key store, not
// the cached data.
func (s *NamespacedStore) ResetToDefaults(ctx context.Context) error {
	all, err := s.kv.AllKeys(ctx)
	if err != nil {
		return fmt.Errorf("list keys: %w", err)
	}

	versionKey := s.globalKey(resourceKeyVersion)
	for _, raw := range all {
		if _, ok := s.ns.Parse(raw); !ok || raw == versionKey {
			continue
		}
		if err := s.kv.Delete(ctx, raw); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
	}

	anon := s.Anonymous()
	if err := anon.SetItem(ctx, anon.Key(ResourceCurrentUser), AnonymousOwner); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	if err := anon.SetJSON(ctx, anon.Key(ResourcePreferences), models.DefaultPreferences()); err != nil {
		return fmt.Errorf("reset: %w", err)
	}

	s.logger.Info().Str("func", "NamespacedStore.ResetToDefaults").Msg("cache reset to defaults")
	return nil
}

// SetJSON stores the JSON encoding of v under logicalKey.
func (s *NamespacedStore) SetJSON(ctx context.Context, logicalKey string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", logicalKey, err)
	}
	return s.SetItem(ctx, logicalKey, string(data))
}

// GetJSON decodes the value under logicalKey into dst. It reports false
// and leaves dst untouched when the entry is missing.
func (s *NamespacedStore) GetJSON(ctx context.Context, logicalKey string, dst any) (bool, error) {
	raw, ok, err := s.GetItem(ctx, logicalKey)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("%w: %q: %v", ErrCorrupted, logicalKey, err)
	}
	return true, nil
}

// EnsureKeyVersion compares the fingerprint of the current device key with
// the one recorded next to the cache. When they differ the key store was
// reset independently of the cache, and every sensitive entry is purged
// because it can no longer be decrypted. It returns the number of purged
// entries.
func (s *NamespacedStore) EnsureKeyVersion(ctx context.Context) (int, error) {
	fingerprint, err := s.keys.Fingerprint(ctx)
	if err != nil {
		return 0, err
	}

	versionKey := s.globalKey(resourceKeyVersion)
	recorded, ok, err := s.kv.GetString(ctx, versionKey)
	if err != nil {
		return 0, fmt.Errorf("read key version: %w", err)
	}
	if ok && recorded == fingerprint {
		return 0, nil
	}

	purged := 0
	if ok {
		purged, err = s.purgeSensitive(ctx)
		if err != nil {
			return purged, err
		}
		s.logger.Warn().
			Str("func", "NamespacedStore.EnsureKeyVersion").
			Int("purged", purged).
			Msg("device key changed, sensitive entries purged")
	}

	if err := s.kv.Set(ctx, versionKey, fingerprint); err != nil {
		return purged, fmt.Errorf("record key version: %w", err)
	}
	return purged, nil
}

func (s *NamespacedStore) purgeSensitive(ctx context.Context) (int, error) {
	all, err := s.kv.AllKeys(ctx)
	if err != nil {
		return 0, fmt.Errorf("list keys: %w", err)
	}

	purged := 0
	for _, raw := range all {
		key, ok := s.ns.Parse(raw)
		if !ok {
			continue
		}
		if r, ok := key.Resource(); !ok || !registry[r].Sensitive {
			continue
		}
		if err := s.kv.Delete(ctx, raw); err != nil {
			return purged, fmt.Errorf("purge %q: %w", key.Name, err)
		}
		purged++
	}
	return purged, nil
}

func (s *NamespacedStore) globalKey(r Resource) string {
	return NamespaceKey{Namespace: s.ns, Name: registry[r].StorageName}.String()
}

func (s *NamespacedStore) seal(ctx context.Context, plaintext string) (string, error) {
	key, err := s.keys.GetOrCreateKey(ctx)
	if err != nil {
		return "", err
	}
	defer crypto.Zero(key)

	return s.cipher.Encrypt(key, plaintext)
}

func (s *NamespacedStore) open(ctx context.Context, envelope string) (string, error) {
	key, err := s.keys.GetOrCreateKey(ctx)
	if err != nil {
		return "", err
	}
	defer crypto.Zero(key)

	return s.cipher.Decrypt(key, envelope)
}
