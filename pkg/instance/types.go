package instance

import (
	"log/slog"

	"github.com/meshnode/meshnode-go/pkg/log"
	"github.com/meshnode/meshnode-go/pkg/mle"
	"github.com/meshnode/meshnode-go/pkg/msgpool"
	"github.com/meshnode/meshnode-go/pkg/netif"
)

const (
	// MaxStateChangedCallbacks is the number of state-changed callback
	// slots per instance.
	MaxStateChangedCallbacks = 3

	// RequiredSize is the number of bytes a caller-supplied region must
	// provide in multi-instance mode.
	RequiredSize = msgpool.RegionSize
)

// The notifier must be able to hold every slot of the instance table.
var _ [netif.MaxCallbacks - MaxStateChangedCallbacks]struct{}

// Re-exported notification types.
type (
	// Flags is a bitmask of state changes.
	Flags = netif.Flags

	// StateChangedHandler is called with accumulated change flags and the
	// context supplied at registration.
	StateChangedHandler = netif.StateChangedHandler

	// StateChangedFunc is the function form of a handler.
	StateChangedFunc = netif.StateChangedFunc

	// FuncHandler adapts a StateChangedFunc to StateChangedHandler.
	FuncHandler = netif.FuncHandler

	// Role is a network role.
	Role = mle.Role
)

// HandlerFunc wraps fn in a handler with its own identity. Keep the result
// to remove the registration later.
func HandlerFunc(fn StateChangedFunc) *FuncHandler {
	return netif.HandlerFunc(fn)
}

// ActiveScanResult describes one network found by an active scan.
type ActiveScanResult struct {
	ExtAddress    [8]byte
	NetworkName   string
	ExtendedPanID [8]byte
	PanID         uint16
	Channel       uint8
	RSSI          int8
	LQI           uint8
	Version       uint8
	Joinable      bool

	// Host and Port locate the border agent that answered, when known.
	Host string
	Port uint16
}

// EnergyScanResult is the energy measured on one channel.
type EnergyScanResult struct {
	Channel uint8
	MaxRSSI int8
}

// ActiveScanFunc receives active scan results. A nil result marks the end
// of the scan.
type ActiveScanFunc func(result *ActiveScanResult, context any)

// EnergyScanFunc receives energy scan results. A nil result marks the end
// of the scan.
type EnergyScanFunc func(result *EnergyScanResult, context any)

// Settings is the persistent settings gateway.
type Settings interface {
	Init() error
	Wipe() error
}

// RoleManager restores and reports the network role.
type RoleManager interface {
	Restore() error
	Role() mle.Role
}

// IP6 is the IP interface enable switch.
type IP6 interface {
	SetEnabled(enabled bool) error
	IsEnabled() bool
}

// Protocol is the mesh protocol enable switch.
type Protocol interface {
	SetEnabled(enabled bool) error
	AutoStart() bool
}

// Notifier is the network interface's state-change fan-out.
type Notifier interface {
	RegisterCallback(cb *netif.Callback) error
	RemoveCallback(cb *netif.Callback)
}

// ResetHook is the platform reboot primitive.
type ResetHook interface {
	Reset()
}

// Config configures an Instance.
type Config struct {
	// Collaborators. Nil fields get reference implementations.
	Settings Settings
	Roles    RoleManager
	IP6      IP6
	Protocol Protocol
	Notifier Notifier
	Platform ResetHook

	// AutoStart brings up the IP interface and the protocol after
	// construction. The protocol's persisted auto-start flag has the same
	// effect.
	AutoStart bool

	// Logger is the optional logger. Records are filtered by the
	// instance's log level on top of the handler's own level.
	Logger *slog.Logger

	// LogLevel is the initial instance log level (default Info).
	LogLevel slog.Level

	// EventLogger receives trace events. May be nil.
	EventLogger log.Logger
}

// DefaultConfig returns a configuration that uses the reference
// collaborators with an in-memory settings store.
func DefaultConfig() Config {
	return Config{LogLevel: slog.LevelInfo}
}
