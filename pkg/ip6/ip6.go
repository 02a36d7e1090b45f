// Package ip6 provides the enable/disable switch of the IPv6 interface.
package ip6

import (
	"fmt"
	"log/slog"

	"github.com/meshnode/meshnode-go/pkg/log"
	"github.com/meshnode/meshnode-go/pkg/netif"
)

// Config configures an Interface.
type Config struct {
	// Notifier receives FlagIP6Enabled on every transition. May be nil.
	Notifier netif.Signaler

	// BringUp is called before the interface is marked up, e.g. to
	// configure a host TUN device. A failure keeps the interface down.
	BringUp func() error

	// BringDown is called after the interface is marked down. Errors are
	// reported but the interface stays down.
	BringDown func() error

	// Logger is the optional logger for debug output.
	Logger *slog.Logger

	// Tracer records transitions. May be nil.
	Tracer *log.Tracer
}

// Interface is the IPv6 interface of an instance.
// It is not safe for concurrent use.
type Interface struct {
	config  Config
	enabled bool
}

// NewInterface creates a disabled interface.
func NewInterface(cfg Config) *Interface {
	return &Interface{config: cfg}
}

// IsEnabled reports whether the interface is up.
func (i *Interface) IsEnabled() bool {
	return i.enabled
}

// SetEnabled brings the interface up or down. It is a no-op if the
// interface is already in the requested state.
func (i *Interface) SetEnabled(enabled bool) error {
	if enabled == i.enabled {
		return nil
	}

	if enabled {
		if i.config.BringUp != nil {
			if err := i.config.BringUp(); err != nil {
				i.config.Tracer.Error(log.LayerNetif, "ip6 up", err)
				return fmt.Errorf("ip6 up: %w", err)
			}
		}
		i.enabled = true
		i.transition("DOWN", "UP")
		return nil
	}

	i.enabled = false
	i.transition("UP", "DOWN")
	if i.config.BringDown != nil {
		if err := i.config.BringDown(); err != nil {
			i.config.Tracer.Error(log.LayerNetif, "ip6 down", err)
			return fmt.Errorf("ip6 down: %w", err)
		}
	}
	return nil
}

func (i *Interface) transition(from, to string) {
	if i.config.Logger != nil {
		i.config.Logger.Debug("ip6: interface state changed", "from", from, "to", to)
	}
	i.config.Tracer.StateChange(log.LayerNetif, log.StateEntityIP6, from, to, "")
	if i.config.Notifier != nil {
		i.config.Notifier.Signal(netif.FlagIP6Enabled)
	}
}
