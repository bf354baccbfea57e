package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/MKhiriev/go-pantry-keeper/internal/logger"
)

// levelDBKV is the LevelDB-backed [KVEngine]. leveldb.DB is safe for
// concurrent use.
type levelDBKV struct {
	db     *leveldb.DB
	logger *logger.Logger
}

// NewLevelDBKV opens (or creates) the LevelDB database in directory path.
func NewLevelDBKV(path string, log *logger.Logger) (KVEngine, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKVUnavailable, err)
	}

	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		log.Err(err).Str("func", "NewLevelDBKV").Msg("error opening leveldb")
		return nil, fmt.Errorf("%w: %v", ErrKVUnavailable, err)
	}
	log.Debug().Str("func", "NewLevelDBKV").Msg("opened leveldb successfully")

	return &levelDBKV{db: db, logger: log}, nil
}

func (l *levelDBKV) GetString(ctx context.Context, key string) (string, bool, error) {
	value, err := l.db.Get([]byte(key), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, l.wrap("levelDBKV.GetString", err)
	}

	return string(value), true, nil
}

func (l *levelDBKV) Set(ctx context.Context, key, value string) error {
	if err := l.db.Put([]byte(key), []byte(value), nil); err != nil {
		return l.wrap("levelDBKV.Set", err)
	}
	return nil
}

func (l *levelDBKV) Delete(ctx context.Context, key string) error {
	if err := l.db.Delete([]byte(key), nil); err != nil {
		return l.wrap("levelDBKV.Delete", err)
	}
	return nil
}

func (l *levelDBKV) AllKeys(ctx context.Context) ([]string, error) {
	iter := l.db.NewIterator(nil, nil)
	defer iter.Release()

	keys := make([]string, 0)
	for iter.Next() {
		// iter.Key() is only valid until the next call to Next.
		keys = append(keys, string(iter.Key()))
	}
	if err := iter.Error(); err != nil {
		return nil, l.wrap("levelDBKV.AllKeys", err)
	}

	return keys, nil
}

func (l *levelDBKV) ClearAll(ctx context.Context) error {
	iter := l.db.NewIterator(nil, nil)
	batch := new(leveldb.Batch)
	for iter.Next() {
		batch.Delete(append([]byte(nil), iter.Key()...))
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		return l.wrap("levelDBKV.ClearAll", err)
	}

	if err := l.db.Write(batch, nil); err != nil {
		return l.wrap("levelDBKV.ClearAll", err)
	}
	return nil
}

func (l *levelDBKV) Close() error {
	return l.db.Close()
}

func (l *levelDBKV) wrap(fn string, err error) error {
	l.logger.Err(err).Str("func", fn).Msg("leveldb operation failed")
	if errors.Is(err, leveldb.ErrClosed) {
		return fmt.Errorf("%w: %v", ErrKVUnavailable, err)
	}
	return fmt.Errorf("%s: %w", fn, err)
}
