package log

import "time"

// Tracer stamps events with a timestamp and instance ID before handing them
// to a Logger. A nil *Tracer discards everything, so components can trace
// unconditionally.
type Tracer struct {
	logger     Logger
	instanceID string
	now        func() time.Time
}

// NewTracer returns a Tracer for the given instance, or nil if logger is nil.
func NewTracer(logger Logger, instanceID string) *Tracer {
	if logger == nil {
		return nil
	}
	return &Tracer{logger: logger, instanceID: instanceID, now: time.Now}
}

// InstanceID returns the ID stamped on every event.
func (t *Tracer) InstanceID() string {
	if t == nil {
		return ""
	}
	return t.instanceID
}

// StateChange records a state transition.
func (t *Tracer) StateChange(layer Layer, entity StateEntity, oldState, newState, reason string) {
	if t == nil {
		return
	}
	t.emit(Event{
		Layer:    layer,
		Category: CategoryState,
		StateChange: &StateChangeEvent{
			Entity:   entity,
			OldState: oldState,
			NewState: newState,
			Reason:   reason,
		},
	})
}

// Callback records a callback registry action.
func (t *Tracer) Callback(layer Layer, action CallbackAction, slot int, flags uint32) {
	if t == nil {
		return
	}
	t.emit(Event{
		Layer:    layer,
		Category: CategoryCallback,
		Callback: &CallbackEvent{Action: action, Slot: slot, Flags: flags},
	})
}

// Scan records a scan result dispatch.
func (t *Tracer) Scan(scan ScanEvent) {
	if t == nil {
		return
	}
	t.emit(Event{
		Layer:    LayerScan,
		Category: CategoryScan,
		Scan:     &scan,
	})
}

// Error records a failure. A nil err is ignored.
func (t *Tracer) Error(layer Layer, context string, err error) {
	if t == nil || err == nil {
		return
	}
	t.emit(Event{
		Layer:    layer,
		Category: CategoryError,
		Error: &ErrorEventData{
			Layer:   layer,
			Message: err.Error(),
			Context: context,
		},
	})
}

func (t *Tracer) emit(event Event) {
	event.Timestamp = t.now()
	event.InstanceID = t.instanceID
	t.logger.Log(event)
}
