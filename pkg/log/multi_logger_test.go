package log

import "testing"

type recordingLogger struct {
	events []Event
}

func (r *recordingLogger) Log(event Event) {
	r.events = append(r.events, event)
}

func TestMultiLoggerCallsAll(t *testing.T) {
	a, b := &recordingLogger{}, &recordingLogger{}
	multi := NewMultiLogger(a, nil, b)

	multi.Log(Event{InstanceID: "x"})

	for i, r := range []*recordingLogger{a, b} {
		if len(r.events) != 1 || r.events[0].InstanceID != "x" {
			t.Errorf("logger %d got %v", i, r.events)
		}
	}
}

func TestMultiLoggerEmpty(t *testing.T) {
	NewMultiLogger().Log(Event{})
	NoopLogger{}.Log(Event{})
}
