package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshnode/meshnode-go/pkg/instance"
	"github.com/meshnode/meshnode-go/pkg/log"
	"github.com/meshnode/meshnode-go/pkg/mle"
	"github.com/meshnode/meshnode-go/pkg/settings"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func startTestNode(t *testing.T, cfg Config) *node {
	t.Helper()
	n, err := newNode(cfg, testLogger())
	require.NoError(t, err)
	require.NoError(t, n.Start())
	return n
}

func TestNodeSimulatedResetRestarts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Settings = SettingsMemory
	cfg.AutoStart = true

	n := startTestNode(t, cfg)
	defer n.Stop()

	var rebooted *instance.Instance
	n.onReboot = func(inst *instance.Instance) { rebooted = inst }

	n.Lock()
	before := n.Instance().ID()
	assert.Equal(t, mle.RoleDetached, n.Instance().Role())
	n.Instance().Reset()
	after := n.Instance()
	n.Unlock()

	require.NotNil(t, rebooted)
	assert.Same(t, rebooted, after)
	assert.NotEqual(t, before, after.ID())
	assert.True(t, after.IsInitialized())
	assert.Equal(t, mle.RoleDetached, after.Role())
}

func TestNodeSettingsSurviveReset(t *testing.T) {
	for _, backend := range []string{SettingsFile, SettingsSQLite} {
		t.Run(backend, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Settings = backend
			cfg.StateDir = t.TempDir()

			n := startTestNode(t, cfg)
			defer n.Stop()

			n.Lock()
			defer n.Unlock()

			roles, ok := n.Instance().Roles().(*mle.RoleManager)
			require.True(t, ok)
			require.NoError(t, roles.Store(mle.NetworkInfo{
				NetworkName: "home",
				Channel:     15,
				PanID:       0x1234,
			}))

			n.Instance().Reset()

			roles, ok = n.Instance().Roles().(*mle.RoleManager)
			require.True(t, ok)
			info, ok := roles.NetworkInfo()
			require.True(t, ok)
			assert.Equal(t, "home", info.NetworkName)
			assert.Equal(t, uint16(0x1234), info.PanID)
		})
	}
}

func TestNodeFactoryResetClearsSettings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StateDir = t.TempDir()

	n := startTestNode(t, cfg)
	defer n.Stop()

	n.Lock()
	defer n.Unlock()

	require.NoError(t, settings.Save(n.Instance().Settings().(settings.Store), settings.KeyAutoStart, true))
	n.Instance().FactoryReset()

	assert.False(t, n.Instance().Protocol().AutoStart())
	assert.Equal(t, mle.RoleDisabled, n.Instance().Role())
}

func TestNodeWritesTrace(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Settings = SettingsMemory
	cfg.Trace = filepath.Join(t.TempDir(), "node"+log.FileExtension)

	n := startTestNode(t, cfg)
	n.Stop()

	info, err := os.Stat(cfg.Trace)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	r, err := log.NewReader(cfg.Trace)
	require.NoError(t, err)
	defer r.Close()

	ev, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, log.LayerInstance, ev.Layer)
}

func TestOpenSettingsPaths(t *testing.T) {
	dir := t.TempDir()

	store, err := openSettings(Config{Settings: SettingsFile, StateDir: dir})
	require.NoError(t, err)
	fs, ok := store.(*settings.FileStore)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "settings.cbor"), fs.Path())

	store, err = openSettings(Config{Settings: SettingsSQLite, StateDir: dir})
	require.NoError(t, err)
	assert.IsType(t, &settings.SQLiteStore{}, store)

	_, err = openSettings(Config{Settings: "etcd"})
	assert.Error(t, err)
}
