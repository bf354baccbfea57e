// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// hexDigits are the characters a hashed namespace segment may consist of.
const hexDigits = "0123456789abcdef"

// resolvePaths fills storage locations that were left empty with files
// inside App.DataDir.
func (cfg *StructuredConfig) resolvePaths() {
	if cfg.Storage.KV.DSN == "" {
		switch cfg.Storage.KV.Driver {
		case KVDriverSQLite:
			cfg.Storage.KV.DSN = filepath.Join(cfg.App.DataDir, "cache.db")
		case KVDriverLevelDB:
			cfg.Storage.KV.DSN = filepath.Join(cfg.App.DataDir, "cache.ldb")
		}
	}

	if cfg.Storage.KeyStore.Path == "" && cfg.Storage.KeyStore.Driver == KeyStoreDriverBolt {
		cfg.Storage.KeyStore.Path = filepath.Join(cfg.App.DataDir, "keystore.db")
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// engine invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of
// the sentinel errors from errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Slug == "" || cfg.App.Separator == "" {
		return fmt.Errorf("%w: slug and separator are required", ErrInvalidAppConfigs)
	}
	if strings.Contains(cfg.App.Slug, cfg.App.Separator) {
		return fmt.Errorf("%w: separator %q occurs in slug %q", ErrInvalidAppConfigs, cfg.App.Separator, cfg.App.Slug)
	}
	if strings.ContainsAny(cfg.App.Separator, hexDigits) {
		return fmt.Errorf("%w: separator %q contains hex digits", ErrInvalidAppConfigs, cfg.App.Separator)
	}

	switch cfg.Storage.KV.Driver {
	case KVDriverSQLite, KVDriverLevelDB:
		if cfg.Storage.KV.DSN == "" {
			return fmt.Errorf("%w: kv dsn is required for driver %q", ErrInvalidStorageConfigs, cfg.Storage.KV.Driver)
		}
	case KVDriverMemory:
	default:
		return fmt.Errorf("%w: unknown kv driver %q", ErrInvalidStorageConfigs, cfg.Storage.KV.Driver)
	}

	switch cfg.Storage.KeyStore.Driver {
	case KeyStoreDriverBolt:
		if cfg.Storage.KeyStore.Path == "" {
			return fmt.Errorf("%w: keystore path is required", ErrInvalidStorageConfigs)
		}
	case KeyStoreDriverMemory:
	default:
		return fmt.Errorf("%w: unknown keystore driver %q", ErrInvalidStorageConfigs, cfg.Storage.KeyStore.Driver)
	}
	if cfg.Storage.KeyStore.Alias == "" {
		return fmt.Errorf("%w: keystore alias is required", ErrInvalidStorageConfigs)
	}

	if cfg.Workers.ExpiryCheckInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
