package mle

import (
	"fmt"
	"log/slog"

	"github.com/meshnode/meshnode-go/pkg/log"
	"github.com/meshnode/meshnode-go/pkg/netif"
	"github.com/meshnode/meshnode-go/pkg/settings"
)

// Config configures a RoleManager.
type Config struct {
	// Settings is the store network info is restored from. Required.
	Settings settings.Store

	// Notifier receives FlagRole and FlagNetworkRestored. May be nil.
	Notifier netif.Signaler

	// Logger is the optional logger for debug output.
	Logger *slog.Logger

	// Tracer records role transitions. May be nil.
	Tracer *log.Tracer
}

// RoleManager holds the current role and the restored network info.
// It is not safe for concurrent use.
type RoleManager struct {
	settings settings.Store
	notifier netif.Signaler
	logger   *slog.Logger
	tracer   *log.Tracer

	role     Role
	info     NetworkInfo
	restored bool
	keys     Keys
}

// NewRoleManager creates a role manager in RoleDisabled.
func NewRoleManager(cfg Config) *RoleManager {
	return &RoleManager{
		settings: cfg.Settings,
		notifier: cfg.Notifier,
		logger:   cfg.Logger,
		tracer:   cfg.Tracer,
		role:     RoleDisabled,
	}
}

// Restore loads network info from settings and derives the keys for it.
// It returns settings.ErrNotFound when the device has never joined a network.
// The current role is not changed.
func (m *RoleManager) Restore() error {
	var info NetworkInfo
	if err := settings.Load(m.settings, settings.KeyNetworkInfo, &info); err != nil {
		return err
	}
	if err := info.Validate(); err != nil {
		return err
	}

	keys, err := DeriveKeys(info.NetworkKey, info.KeySequence)
	if err != nil {
		return fmt.Errorf("derive keys: %w", err)
	}

	m.info = info
	m.keys = keys
	m.restored = true

	m.debugLog("Restore: network info restored",
		"networkName", info.NetworkName,
		"channel", info.Channel,
		"previousRole", info.Role.String())

	m.signal(netif.FlagNetworkRestored)
	return nil
}

// Store persists network info and makes it the current restored info.
func (m *RoleManager) Store(info NetworkInfo) error {
	if err := info.Validate(); err != nil {
		return err
	}
	if err := settings.Save(m.settings, settings.KeyNetworkInfo, info); err != nil {
		return err
	}
	keys, err := DeriveKeys(info.NetworkKey, info.KeySequence)
	if err != nil {
		return fmt.Errorf("derive keys: %w", err)
	}
	m.info = info
	m.keys = keys
	m.restored = true
	return nil
}

// NetworkInfo returns the restored network info, if any.
func (m *RoleManager) NetworkInfo() (NetworkInfo, bool) {
	return m.info, m.restored
}

// Keys returns the keys derived for the restored network info.
func (m *RoleManager) Keys() Keys {
	return m.keys
}

// Role returns the current role.
func (m *RoleManager) Role() Role {
	return m.role
}

// SetRole changes the current role and signals FlagRole if it differs.
func (m *RoleManager) SetRole(role Role) {
	if role == m.role {
		return
	}
	old := m.role
	m.role = role

	m.debugLog("SetRole: role changed", "from", old.String(), "to", role.String())
	m.tracer.StateChange(log.LayerNetif, log.StateEntityRole, old.String(), role.String(), "")
	m.signal(netif.FlagRole)
}

func (m *RoleManager) signal(flags netif.Flags) {
	if m.notifier != nil {
		m.notifier.Signal(flags)
	}
}

func (m *RoleManager) debugLog(msg string, args ...any) {
	if m.logger != nil {
		m.logger.Debug(msg, args...)
	}
}
