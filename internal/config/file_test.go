// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseFile_JSON(t *testing.T) {
	path := writeTempFile(t, "config.json", `{
		"adapter": {"request_timeout": "15s", "strict_status": true},
		"storage": {"db": {"dsn": "file.db"}},
		"log": {"file": "file.log", "level": "error"}
	}`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.True(t, cfg.Adapter.StrictStatus)
	assert.Equal(t, "file.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "file.log", cfg.Log.File)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Empty(t, cfg.ConfigFilePath)
}

func TestParseFile_YAML(t *testing.T) {
	path := writeTempFile(t, "config.yaml", `
adapter:
  request_timeout: 2m
storage:
  db:
    dsn: yaml.db
log:
  level: info
`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, 2*time.Minute, cfg.Adapter.RequestTimeout)
	assert.False(t, cfg.Adapter.StrictStatus)
	assert.Equal(t, "yaml.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := parseFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a config file")
}

func TestParseFile_BrokenJSON(t *testing.T) {
	path := writeTempFile(t, "config.json", `{"storage":`)

	_, err := parseFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", in: `"1h30m"`, want: 90 * time.Minute},
		{name: "nanoseconds", in: `1000`, want: time.Microsecond},
		{name: "bad string", in: `"later"`, wantErr: true},
		{name: "bool", in: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.in), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(3 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"3s"`, string(b))
}
