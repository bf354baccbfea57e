package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pantry-keeper/internal/config"
	"github.com/MKhiriev/go-pantry-keeper/internal/logger"
)

// ClientStorages groups the storage backends of the cache engine into a
// single value that can be passed around the service layer.
type ClientStorages struct {
	// KV is the embedded key-value engine behind the namespaced store.
	KV KVEngine
	// SecureStore keeps the device encryption key.
	SecureStore SecureStore
}

// NewClientStorages opens both backends selected by cfg. If the second one
// fails, the first is closed before returning.
func NewClientStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating new storages...")

	kv, err := NewKVEngine(ctx, cfg.KV, log)
	if err != nil {
		return nil, fmt.Errorf("kv engine: %w", err)
	}

	secure, err := NewSecureStore(cfg.KeyStore, log)
	if err != nil {
		_ = kv.Close()
		return nil, fmt.Errorf("secure store: %w", err)
	}

	return &ClientStorages{
		KV:          kv,
		SecureStore: secure,
	}, nil
}

// NewKVEngine returns the KV engine for cfg.Driver.
func NewKVEngine(ctx context.Context, cfg config.KV, log *logger.Logger) (KVEngine, error) {
	switch cfg.Driver {
	case config.KVDriverSQLite:
		return NewSQLiteKV(ctx, cfg.DSN, log)
	case config.KVDriverLevelDB:
		return NewLevelDBKV(cfg.DSN, log)
	case config.KVDriverMemory:
		return NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// NewSecureStore returns the secure key store for cfg.Driver.
func NewSecureStore(cfg config.KeyStore, log *logger.Logger) (SecureStore, error) {
	switch cfg.Driver {
	case config.KeyStoreDriverBolt:
		return NewBoltSecureStore(cfg.Path, log)
	case config.KeyStoreDriverMemory:
		return NewMemorySecureStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// Close closes both backends and reports every failure.
func (s *ClientStorages) Close() error {
	return errors.Join(s.KV.Close(), s.SecureStore.Close())
}
