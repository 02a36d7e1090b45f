package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meshnode.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseConfigFile(t *testing.T) {
	path := writeConfig(t, `
state_dir: /var/lib/meshnode
settings: sqlite
log_level: debug
auto_start: true
interactive: false
scan_duration: 5s
reset_mode: reexec
`)

	cfg, err := parseConfig([]string{"-config", path}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.ConfigFile)
	assert.Equal(t, "/var/lib/meshnode", cfg.StateDir)
	assert.Equal(t, SettingsSQLite, cfg.Settings)
	assert.True(t, cfg.AutoStart)
	assert.False(t, cfg.Interactive)
	assert.Equal(t, 5*time.Second, cfg.ScanDuration)
	assert.Equal(t, ResetReexec, cfg.ResetMode)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestParseConfigFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, `
settings: sqlite
log_level: debug
interactive: false
`)

	cfg, err := parseConfig([]string{"-config", path, "-settings", "memory", "-interactive=true"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, SettingsMemory, cfg.Settings)
	assert.True(t, cfg.Interactive)
	// Not given on the command line, so the file wins over the flag default.
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown settings", []string{"-settings", "etcd"}},
		{"unknown reset mode", []string{"-reset-mode", "halt"}},
		{"bad log level", []string{"-log-level", "loud"}},
		{"zero scan duration", []string{"-scan-duration", "0s"}},
		{"missing config file", []string{"-config", "/nonexistent/meshnode.yaml"}},
		{"unknown flag", []string{"-bogus"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseConfig(tt.args, io.Discard)
			assert.Error(t, err)
		})
	}
}

func TestParseConfigMalformedFile(t *testing.T) {
	path := writeConfig(t, "settings: [file")
	_, err := parseConfig([]string{"-config", path}, io.Discard)
	assert.ErrorContains(t, err, "parse config file")
}
