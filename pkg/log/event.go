package log

import "time"

// Event represents a trace event captured by an instance or one of its
// subsystems. CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// InstanceID identifies the instance that produced the event (UUID).
	InstanceID string `cbor:"2,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Type-specific payload (one of these will be set).
	StateChange *StateChangeEvent `cbor:"5,keyasint,omitempty"`
	Callback    *CallbackEvent    `cbor:"6,keyasint,omitempty"`
	Scan        *ScanEvent        `cbor:"7,keyasint,omitempty"`
	Error       *ErrorEventData   `cbor:"8,keyasint,omitempty"`
}

// Layer indicates which part of the stack captured the event.
type Layer uint8

const (
	// LayerInstance is the lifecycle core.
	LayerInstance Layer = 0
	// LayerSettings is the persistent settings store.
	LayerSettings Layer = 1
	// LayerNetif is the network interface (IP6, protocol, roles, notifier).
	LayerNetif Layer = 2
	// LayerScan is the scan machinery.
	LayerScan Layer = 3
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerInstance:
		return "INSTANCE"
	case LayerSettings:
		return "SETTINGS"
	case LayerNetif:
		return "NETIF"
	case LayerScan:
		return "SCAN"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryState indicates a state change.
	CategoryState Category = 0
	// CategoryCallback indicates a state-changed callback registry event.
	CategoryCallback Category = 1
	// CategoryScan indicates a scan result dispatch.
	CategoryScan Category = 2
	// CategoryError indicates an error event.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryState:
		return "STATE"
	case CategoryCallback:
		return "CALLBACK"
	case CategoryScan:
		return "SCAN"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// StateChangeEvent captures lifecycle and interface state transitions.
type StateChangeEvent struct {
	// Entity being changed.
	Entity StateEntity `cbor:"1,keyasint"`

	// OldState is the previous state (may be empty).
	OldState string `cbor:"2,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"3,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"4,keyasint,omitempty"`
}

// StateEntity indicates what entity changed state.
type StateEntity uint8

const (
	// StateEntityInstance indicates an instance lifecycle change.
	StateEntityInstance StateEntity = 0
	// StateEntityIP6 indicates an IP interface up/down change.
	StateEntityIP6 StateEntity = 1
	// StateEntityProtocol indicates a mesh protocol enable/disable change.
	StateEntityProtocol StateEntity = 2
	// StateEntityRole indicates a network role change.
	StateEntityRole StateEntity = 3
	// StateEntitySettings indicates a settings store change (init, wipe).
	StateEntitySettings StateEntity = 4
)

// String returns the state entity name.
func (s StateEntity) String() string {
	switch s {
	case StateEntityInstance:
		return "INSTANCE"
	case StateEntityIP6:
		return "IP6"
	case StateEntityProtocol:
		return "PROTOCOL"
	case StateEntityRole:
		return "ROLE"
	case StateEntitySettings:
		return "SETTINGS"
	default:
		return "UNKNOWN"
	}
}

// CallbackEvent captures registry operations on state-changed callback slots.
type CallbackEvent struct {
	// Action performed on the slot.
	Action CallbackAction `cbor:"1,keyasint"`

	// Slot is the slot index (-1 when no slot was involved).
	Slot int `cbor:"2,keyasint"`

	// Flags carries the delivered change flags (notify only).
	Flags uint32 `cbor:"3,keyasint,omitempty"`
}

// CallbackAction indicates what happened to a callback slot.
type CallbackAction uint8

const (
	// CallbackRegistered indicates a slot was bound.
	CallbackRegistered CallbackAction = 0
	// CallbackRemoved indicates a slot was freed.
	CallbackRemoved CallbackAction = 1
	// CallbackRejected indicates registration failed because the table is full.
	CallbackRejected CallbackAction = 2
	// CallbackNotified indicates change flags were delivered.
	CallbackNotified CallbackAction = 3
)

// String returns the callback action name.
func (a CallbackAction) String() string {
	switch a {
	case CallbackRegistered:
		return "REGISTERED"
	case CallbackRemoved:
		return "REMOVED"
	case CallbackRejected:
		return "REJECTED"
	case CallbackNotified:
		return "NOTIFIED"
	default:
		return "UNKNOWN"
	}
}

// ScanEvent captures the dispatch of a single scan result.
type ScanEvent struct {
	// Kind of scan.
	Kind ScanKind `cbor:"1,keyasint"`

	// Channel the result refers to.
	Channel uint8 `cbor:"2,keyasint,omitempty"`

	// NetworkName of a discovered network (active scan only).
	NetworkName string `cbor:"3,keyasint,omitempty"`

	// RSSI in dBm (max RSSI for energy scans).
	RSSI int8 `cbor:"4,keyasint,omitempty"`

	// Done marks the end-of-scan notification.
	Done bool `cbor:"5,keyasint,omitempty"`

	// Delivered is false when no subscriber was registered.
	Delivered bool `cbor:"6,keyasint,omitempty"`
}

// ScanKind distinguishes the two scan types.
type ScanKind uint8

const (
	// ScanActive indicates an active (discovery) scan.
	ScanActive ScanKind = 0
	// ScanEnergy indicates an energy scan.
	ScanEnergy ScanKind = 1
)

// String returns the scan kind name.
func (k ScanKind) String() string {
	switch k {
	case ScanActive:
		return "ACTIVE"
	case ScanEnergy:
		return "ENERGY"
	default:
		return "UNKNOWN"
	}
}

// ErrorEventData captures errors at any layer.
type ErrorEventData struct {
	// Layer where the error occurred.
	Layer Layer `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"3,keyasint,omitempty"`
}
