package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses all configuration flags from args (usually os.Args[1:])
// and returns them as a partially populated *StructuredConfig. Positional
// arguments following the flags are stored in [StructuredConfig.Args].
//
// Flags:
//
//	-slug application namespace slug
//	-sep namespace separator
//	-hash-salt default salt for identity hashing
//	-strict fail on unhandled session actions
//	-data-dir directory for the databases and the log file
//	-kv-driver KV engine driver (sqlite, leveldb, memory)
//	-kv-dsn KV engine DSN / directory
//	-keystore-driver secure key store driver (bolt, memory)
//	-keystore-path secure key store file
//	-key-alias device key alias
//	-expiry-interval session expiry check interval (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		slug, separator, hashSalt, dataDir     string
		kvDriver, kvDSN                        string
		keyStoreDriver, keyStorePath, keyAlias string
		jsonConfigPath                         string
		strict                                 bool
		expiryInterval                         time.Duration
	)

	fs := flag.NewFlagSet("pantry", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&slug, "slug", "", "Application namespace slug")
	fs.StringVar(&separator, "sep", "", "Namespace separator")
	fs.StringVar(&hashSalt, "hash-salt", "", "Default salt for identity hashing")
	fs.BoolVar(&strict, "strict", false, "Fail on unhandled session actions")
	fs.StringVar(&dataDir, "data-dir", "", "Data directory")
	fs.StringVar(&kvDriver, "kv-driver", "", "KV engine driver (sqlite, leveldb, memory)")
	fs.StringVar(&kvDSN, "kv-dsn", "", "KV engine DSN")
	fs.StringVar(&keyStoreDriver, "keystore-driver", "", "Secure key store driver (bolt, memory)")
	fs.StringVar(&keyStorePath, "keystore-path", "", "Secure key store path")
	fs.StringVar(&keyAlias, "key-alias", "", "Device key alias")
	fs.DurationVar(&expiryInterval, "expiry-interval", 0, "Session expiry check interval (e.g., 30s, 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Slug:          slug,
			Separator:     separator,
			HashSalt:      hashSalt,
			StrictReducer: strict,
			DataDir:       dataDir,
		},
		Storage: Storage{
			KV: KV{
				Driver: kvDriver,
				DSN:    kvDSN,
			},
			KeyStore: KeyStore{
				Driver: keyStoreDriver,
				Path:   keyStorePath,
				Alias:  keyAlias,
			},
		},
		Workers: Workers{
			ExpiryCheckInterval: expiryInterval,
		},
		JSONFilePath: jsonConfigPath,
		Args:         fs.Args(),
	}, nil
}
