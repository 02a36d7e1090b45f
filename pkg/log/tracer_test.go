package log

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilTracerIsSafe(t *testing.T) {
	var tr *Tracer
	tr.StateChange(LayerInstance, StateEntityInstance, "a", "b", "")
	tr.Callback(LayerInstance, CallbackRegistered, 0, 0)
	tr.Scan(ScanEvent{})
	tr.Error(LayerInstance, "ctx", errors.New("boom"))
	assert.Equal(t, "", tr.InstanceID())

	assert.Nil(t, NewTracer(nil, "id"))
}

func TestTracerStampsEvents(t *testing.T) {
	rec := &recordingLogger{}
	tr := NewTracer(rec, "inst-42")
	fixed := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	tr.now = func() time.Time { return fixed }

	tr.StateChange(LayerNetif, StateEntityIP6, "DOWN", "UP", "")
	tr.Callback(LayerInstance, CallbackRemoved, 1, 0)
	tr.Scan(ScanEvent{Kind: ScanActive, Done: true})
	tr.Error(LayerSettings, "wipe", errors.New("io"))
	tr.Error(LayerSettings, "wipe", nil)

	require.Len(t, rec.events, 4)
	for _, ev := range rec.events {
		assert.Equal(t, "inst-42", ev.InstanceID)
		assert.True(t, ev.Timestamp.Equal(fixed))
	}
	assert.Equal(t, CategoryState, rec.events[0].Category)
	assert.Equal(t, CallbackRemoved, rec.events[1].Callback.Action)
	assert.True(t, rec.events[2].Scan.Done)
	assert.Equal(t, "io", rec.events[3].Error.Message)
}
