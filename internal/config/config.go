// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Supported embedded KV engine drivers.
const (
	KVDriverSQLite  = "sqlite"
	KVDriverLevelDB = "leveldb"
	KVDriverMemory  = "memory"
)

// Supported secure key store drivers.
const (
	KeyStoreDriverBolt   = "bolt"
	KeyStoreDriverMemory = "memory"
)

// StructuredConfig is the top-level configuration container for the
// go-pantry-keeper cache engine. It aggregates all sub-configurations and is
// populated by merging built-in defaults, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds namespace and hashing settings as well as the application
	// version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the embedded KV engine and the secure
	// key store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Args holds the positional command-line arguments left after flag
	// parsing. Not loaded from the environment or JSON.
	Args []string
}

// App holds application-level configuration values that control key
// namespacing and identity hashing.
type App struct {
	// Slug is the application prefix of every storage key (e.g. "pantry").
	// Env: APP_SLUG
	Slug string `env:"SLUG"`

	// Separator joins namespace segments. It must not occur inside Slug and
	// must not contain hex digits, so hashed segments can never contain it.
	// Env: APP_SEPARATOR
	Separator string `env:"SEPARATOR"`

	// HashSalt is the default salt appended to identities before hashing
	// them into namespace segments. Changing it moves every user to a new
	// namespace.
	// Env: APP_HASH_SALT
	HashSalt string `env:"HASH_SALT"`

	// StrictReducer makes the session container return unhandled-action
	// errors instead of logging them and keeping the previous state.
	// Env: APP_STRICT_REDUCER
	StrictReducer bool `env:"STRICT_REDUCER"`

	// DataDir is the directory that holds the KV database, the key store
	// and the log file when no explicit paths are configured.
	// Env: APP_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends used by the
// engine.
type Storage struct {
	// KV holds the embedded KV engine settings.
	KV KV `envPrefix:"KV_"`

	// KeyStore holds the secure key store settings.
	KeyStore KeyStore `envPrefix:"KEYSTORE_"`
}

// KV holds settings for the embedded key-value engine backing the
// namespaced store.
type KV struct {
	// Driver selects the engine: "sqlite", "leveldb" or "memory".
	// Env: STORAGE_KV_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the SQLite file path or the LevelDB directory. Derived from
	// App.DataDir when empty.
	// Env: STORAGE_KV_DSN
	DSN string `env:"DSN"`
}

// KeyStore holds settings for the secure store that keeps the device key.
type KeyStore struct {
	// Driver selects the store: "bolt" or "memory".
	// Env: STORAGE_KEYSTORE_DRIVER
	Driver string `env:"DRIVER"`

	// Path is the bbolt database file. Derived from App.DataDir when empty.
	// Env: STORAGE_KEYSTORE_PATH
	Path string `env:"PATH"`

	// Alias is the name under which the device key is stored.
	// Env: STORAGE_KEYSTORE_ALIAS
	Alias string `env:"ALIAS"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// ExpiryCheckInterval defines how often the session expiry watcher
	// inspects the current session. Zero disables the watcher.
	// Env: WORKERS_EXPIRY_CHECK_INTERVAL
	ExpiryCheckInterval time.Duration `env:"EXPIRY_CHECK_INTERVAL"`
}

// DefaultConfig returns the built-in defaults every other source is merged
// on top of.
func DefaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Slug:      "pantry",
			Separator: ":",
			DataDir:   ".pantry",
		},
		Storage: Storage{
			KV:       KV{Driver: KVDriverSQLite},
			KeyStore: KeyStore{Driver: KeyStoreDriverBolt, Alias: "pantry.device.key"},
		},
		Workers: Workers{ExpiryCheckInterval: time.Minute},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
