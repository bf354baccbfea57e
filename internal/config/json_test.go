package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {
			"slug": "pantry",
			"separator": "|",
			"hash_salt": "pepper",
			"strict_reducer": true,
			"data_dir": "/var/lib/pantry",
			"version": "2.0.0"
		},
		"storage": {
			"kv": { "driver": "sqlite", "dsn": "/var/lib/pantry/cache.db" },
			"keystore": { "driver": "bolt", "path": "/var/lib/pantry/keys.db", "alias": "device" }
		},
		"workers": {
			"expiry_check_interval": "2m"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "pantry", cfg.App.Slug)
	assert.Equal(t, "|", cfg.App.Separator)
	assert.Equal(t, "pepper", cfg.App.HashSalt)
	assert.True(t, cfg.App.StrictReducer)
	assert.Equal(t, "/var/lib/pantry", cfg.App.DataDir)
	assert.Equal(t, "2.0.0", cfg.App.Version)

	assert.Equal(t, "sqlite", cfg.Storage.KV.Driver)
	assert.Equal(t, "/var/lib/pantry/cache.db", cfg.Storage.KV.DSN)
	assert.Equal(t, "bolt", cfg.Storage.KeyStore.Driver)
	assert.Equal(t, "/var/lib/pantry/keys.db", cfg.Storage.KeyStore.Path)
	assert.Equal(t, "device", cfg.Storage.KeyStore.Alias)

	assert.Equal(t, 2*time.Minute, cfg.Workers.ExpiryCheckInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"string", `"90s"`, 90 * time.Second, false},
		{"number of nanoseconds", `1000000000`, time.Second, false},
		{"invalid string", `"soon"`, 0, true},
		{"invalid json", `{`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(3 * time.Minute))
	require.NoError(t, err)
	assert.Equal(t, `"3m0s"`, string(data))
}
