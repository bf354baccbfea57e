package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/MKhiriev/go-pantry-keeper/internal/logger"
)

var deviceKeysBucket = []byte("device_keys")

// boltSecureStore keeps aliases in a single bbolt bucket inside a 0600 file
// owned by the current user. It stands in for the OS keychain on platforms
// where none is reachable from Go.
type boltSecureStore struct {
	db     *bbolt.DB
	logger *logger.Logger
}

// NewBoltSecureStore opens (or creates) the bbolt key file at path.
func NewBoltSecureStore(path string, log *logger.Logger) (SecureStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		log.Err(err).Str("func", "NewBoltSecureStore").Msg("error creating key store dir")
		return nil, fmt.Errorf("%w: %v", ErrSecureStoreUnavailable, err)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		log.Err(err).Str("func", "NewBoltSecureStore").Msg("error opening key store")
		return nil, fmt.Errorf("%w: %v", ErrSecureStoreUnavailable, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(deviceKeysBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: failed to create bucket: %v", ErrSecureStoreUnavailable, err)
	}

	return &boltSecureStore{db: db, logger: log}, nil
}

func (b *boltSecureStore) GetItem(ctx context.Context, alias string) (string, bool, error) {
	var (
		value string
		found bool
	)
	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(deviceKeysBucket)
		if bucket == nil {
			return errors.New("bucket not found")
		}
		// bbolt values are only valid inside the transaction
		if raw := bucket.Get([]byte(alias)); raw != nil {
			value = string(raw)
			found = true
		}
		return nil
	})
	if err != nil {
		b.logger.Err(err).Str("func", "boltSecureStore.GetItem").Msg("failed to read alias")
		return "", false, fmt.Errorf("%w: %v", ErrSecureStoreUnavailable, err)
	}

	return value, found, nil
}

func (b *boltSecureStore) SetItem(ctx context.Context, alias, value string) error {
	err := b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(deviceKeysBucket)
		if bucket == nil {
			return errors.New("bucket not found")
		}
		return bucket.Put([]byte(alias), []byte(value))
	})
	if err != nil {
		b.logger.Err(err).Str("func", "boltSecureStore.SetItem").Msg("failed to write alias")
		return fmt.Errorf("%w: %v", ErrSecureStoreUnavailable, err)
	}

	return nil
}

func (b *boltSecureStore) Close() error {
	return b.db.Close()
}
