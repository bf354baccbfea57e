package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Slug          string `json:"slug"`
		Separator     string `json:"separator"`
		HashSalt      string `json:"hash_salt"`
		StrictReducer bool   `json:"strict_reducer"`
		DataDir       string `json:"data_dir"`
		Version       string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		KV struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"kv,omitempty"`

		KeyStore struct {
			Driver string `json:"driver"`
			Path   string `json:"path"`
			Alias  string `json:"alias"`
		} `json:"keystore,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		ExpiryCheckInterval Duration `json:"expiry_check_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Slug:          jsonCfg.App.Slug,
			Separator:     jsonCfg.App.Separator,
			HashSalt:      jsonCfg.App.HashSalt,
			StrictReducer: jsonCfg.App.StrictReducer,
			DataDir:       jsonCfg.App.DataDir,
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			KV: KV{
				Driver: jsonCfg.Storage.KV.Driver,
				DSN:    jsonCfg.Storage.KV.DSN,
			},
			KeyStore: KeyStore{
				Driver: jsonCfg.Storage.KeyStore.Driver,
				Path:   jsonCfg.Storage.KeyStore.Path,
				Alias:  jsonCfg.Storage.KeyStore.Alias,
			},
		},
		Workers: Workers{
			ExpiryCheckInterval: time.Duration(jsonCfg.Workers.ExpiryCheckInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
