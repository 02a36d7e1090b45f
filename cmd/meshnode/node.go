package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/meshnode/meshnode-go/pkg/instance"
	"github.com/meshnode/meshnode-go/pkg/log"
	"github.com/meshnode/meshnode-go/pkg/platform"
	"github.com/meshnode/meshnode-go/pkg/settings"
)

// node owns the instance and everything that outlives a simulated reboot:
// the settings store, the trace file and the lock serializing access.
type node struct {
	mu sync.Mutex

	logger  *slog.Logger
	instCfg instance.Config
	closers []io.Closer

	inst     *instance.Instance
	onReboot func(inst *instance.Instance)
}

func newNode(cfg Config, logger *slog.Logger) (*node, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	n := &node{logger: logger}

	store, err := openSettings(cfg)
	if err != nil {
		return nil, err
	}
	if c, ok := store.(io.Closer); ok {
		n.closers = append(n.closers, c)
	}

	var events log.Logger
	if cfg.Trace != "" {
		fl, err := log.NewFileLogger(cfg.Trace)
		if err != nil {
			n.close()
			return nil, fmt.Errorf("open trace file: %w", err)
		}
		n.closers = append(n.closers, fl)
		events = fl
		if level <= slog.LevelDebug {
			events = log.NewMultiLogger(fl, log.NewSlogAdapter(logger))
		}
	}

	var reset instance.ResetHook
	switch cfg.ResetMode {
	case ResetReexec:
		reset = platform.ProcessReset(logger)
	default:
		reset = platform.NewRecorder(n.reboot)
	}

	n.instCfg = instance.Config{
		Settings:    store,
		Platform:    reset,
		AutoStart:   cfg.AutoStart,
		Logger:      logger,
		LogLevel:    level,
		EventLogger: events,
	}
	return n, nil
}

func openSettings(cfg Config) (settings.Store, error) {
	switch cfg.Settings {
	case SettingsMemory:
		return settings.NewMemoryStore(), nil
	case SettingsFile:
		return settings.NewFileStore(filepath.Join(cfg.StateDir, "settings.cbor")), nil
	case SettingsSQLite:
		return settings.NewSQLiteStore(filepath.Join(cfg.StateDir, "settings.db")), nil
	default:
		return nil, fmt.Errorf("unknown settings backend: %s", cfg.Settings)
	}
}

// Start creates the instance and runs bring-up.
func (n *node) Start() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	inst, err := startInstance(n.instCfg)
	if err != nil {
		return err
	}
	n.inst = inst
	n.logger.Info("instance started", "id", inst.ID(), "role", inst.Role().String())
	return nil
}

// Lock and Unlock serialize access to the instance.
func (n *node) Lock()   { n.mu.Lock() }
func (n *node) Unlock() { n.mu.Unlock() }

// Instance returns the current instance. Callers must hold the lock.
func (n *node) Instance() *instance.Instance {
	return n.inst
}

// reboot simulates a platform reset: tear down and bring up again over the
// same settings. It runs inside Reset, so the lock is already held.
func (n *node) reboot() {
	n.logger.Info("platform reset: restarting instance")
	n.inst.Finalize()

	inst, err := startInstance(n.instCfg)
	if err != nil {
		n.logger.Error("restart after reset failed", "error", err)
		return
	}
	n.inst = inst
	if n.onReboot != nil {
		n.onReboot(inst)
	}
}

// Stop finalizes the instance and releases the settings store and trace.
func (n *node) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.inst != nil {
		n.inst.Finalize()
	}
	n.close()
}

func (n *node) close() {
	for _, c := range n.closers {
		if err := c.Close(); err != nil {
			n.logger.Warn("close failed", "error", err)
		}
	}
	n.closers = nil
}
