package netif

import (
	"errors"
	"log/slog"

	"github.com/meshnode/meshnode-go/pkg/log"
)

// MaxCallbacks is the number of callback slots a Notifier can fan out to.
const MaxCallbacks = 8

// Notifier errors.
var (
	ErrAlready = errors.New("callback already registered")
	ErrNoBufs  = errors.New("no free notifier slot")
)

// Signaler is implemented by anything that accepts change flags.
type Signaler interface {
	Signal(flags Flags)
}

// Config configures a Notifier.
type Config struct {
	// Logger is the optional logger for debug output.
	Logger *slog.Logger

	// Tracer records deliveries. May be nil.
	Tracer *log.Tracer
}

// Notifier fans state-change flags out to registered callback slots.
// It is not safe for concurrent use.
type Notifier struct {
	slots    [MaxCallbacks]*Callback
	pending  Flags
	flushing bool

	logger *slog.Logger
	tracer *log.Tracer
}

// NewNotifier creates an empty notifier.
func NewNotifier(cfg Config) *Notifier {
	return &Notifier{logger: cfg.Logger, tracer: cfg.Tracer}
}

// RegisterCallback adds a slot to the fan-out.
func (n *Notifier) RegisterCallback(cb *Callback) error {
	free := -1
	for i, s := range n.slots {
		if s == cb {
			return ErrAlready
		}
		if s == nil && free < 0 {
			free = i
		}
	}
	if free < 0 {
		return ErrNoBufs
	}
	n.slots[free] = cb
	return nil
}

// RemoveCallback drops a slot from the fan-out. Unknown slots are ignored.
func (n *Notifier) RemoveCallback(cb *Callback) {
	for i, s := range n.slots {
		if s == cb {
			n.slots[i] = nil
			return
		}
	}
}

// Registered returns the number of slots in the fan-out.
func (n *Notifier) Registered() int {
	count := 0
	for _, s := range n.slots {
		if s != nil {
			count++
		}
	}
	return count
}

// Signal records flags and delivers them to every registered slot.
func (n *Notifier) Signal(flags Flags) {
	if flags == 0 {
		return
	}
	n.pending |= flags
	if n.flushing {
		return
	}

	n.flushing = true
	defer func() { n.flushing = false }()

	for n.pending != 0 {
		current := n.pending
		n.pending = 0

		n.debugLog("Signal: delivering", "flags", current.String())

		for i := range n.slots {
			if cb := n.slots[i]; cb != nil {
				cb.Invoke(current)
				n.tracer.Callback(log.LayerNetif, log.CallbackNotified, i, uint32(current))
			}
		}
	}
}

func (n *Notifier) debugLog(msg string, args ...any) {
	if n.logger != nil {
		n.logger.Debug(msg, args...)
	}
}

var _ Signaler = (*Notifier)(nil)
