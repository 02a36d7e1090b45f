// Package mesh provides the enable/disable switch of the mesh protocol and
// its persisted auto-start flag.
//
// Enabling the protocol requires the IP interface to be up and moves the
// role to detached; disabling it moves the role back to disabled. Attaching
// to a partition is outside this package.
package mesh

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/meshnode/meshnode-go/pkg/log"
	"github.com/meshnode/meshnode-go/pkg/mle"
	"github.com/meshnode/meshnode-go/pkg/netif"
	"github.com/meshnode/meshnode-go/pkg/settings"
)

// ErrInvalidState is returned when the protocol is enabled while the IP
// interface is down.
var ErrInvalidState = errors.New("ip interface is down")

// LinkState reports whether the IP interface is up.
type LinkState interface {
	IsEnabled() bool
}

// RoleSetter receives role transitions caused by enable/disable.
type RoleSetter interface {
	SetRole(role mle.Role)
}

// Config configures a Protocol.
type Config struct {
	// IP is the interface that must be up before start. Required.
	IP LinkState

	// Roles receives role transitions. May be nil.
	Roles RoleSetter

	// Settings stores the auto-start flag. May be nil, in which case
	// auto-start is never persisted.
	Settings settings.Store

	// Notifier receives FlagProtocolEnabled. May be nil.
	Notifier netif.Signaler

	// Start is called before the protocol is marked enabled; a failure
	// aborts the start.
	Start func() error

	// Logger is the optional logger for debug output.
	Logger *slog.Logger

	// Tracer records transitions. May be nil.
	Tracer *log.Tracer
}

// Protocol is the mesh protocol switch of an instance.
// It is not safe for concurrent use.
type Protocol struct {
	config  Config
	enabled bool
}

// NewProtocol creates a disabled protocol.
func NewProtocol(cfg Config) *Protocol {
	return &Protocol{config: cfg}
}

// IsEnabled reports whether the protocol is running.
func (p *Protocol) IsEnabled() bool {
	return p.enabled
}

// SetEnabled starts or stops the protocol. It is a no-op if the protocol
// is already in the requested state.
func (p *Protocol) SetEnabled(enabled bool) error {
	if enabled == p.enabled {
		return nil
	}

	if enabled {
		if !p.config.IP.IsEnabled() {
			return ErrInvalidState
		}
		if p.config.Start != nil {
			if err := p.config.Start(); err != nil {
				p.config.Tracer.Error(log.LayerNetif, "protocol start", err)
				return fmt.Errorf("protocol start: %w", err)
			}
		}
		p.enabled = true
		p.transition("DISABLED", "ENABLED")
		p.setRole(mle.RoleDetached)
		return nil
	}

	p.enabled = false
	p.transition("ENABLED", "DISABLED")
	p.setRole(mle.RoleDisabled)
	return nil
}

// AutoStart reports whether the persisted auto-start flag is set.
// A missing or unreadable flag reads as false.
func (p *Protocol) AutoStart() bool {
	if p.config.Settings == nil {
		return false
	}
	var auto bool
	if err := settings.Load(p.config.Settings, settings.KeyAutoStart, &auto); err != nil {
		return false
	}
	return auto
}

// SetAutoStart persists the auto-start flag.
func (p *Protocol) SetAutoStart(auto bool) error {
	if p.config.Settings == nil {
		return settings.ErrNotInitialized
	}
	return settings.Save(p.config.Settings, settings.KeyAutoStart, auto)
}

func (p *Protocol) setRole(role mle.Role) {
	if p.config.Roles != nil {
		p.config.Roles.SetRole(role)
	}
}

func (p *Protocol) transition(from, to string) {
	if p.config.Logger != nil {
		p.config.Logger.Debug("mesh: protocol state changed", "from", from, "to", to)
	}
	p.config.Tracer.StateChange(log.LayerNetif, log.StateEntityProtocol, from, to, "")
	if p.config.Notifier != nil {
		p.config.Notifier.Signal(netif.FlagProtocolEnabled)
	}
}
