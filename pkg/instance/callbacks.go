package instance

import (
	"github.com/meshnode/meshnode-go/pkg/log"
	"github.com/meshnode/meshnode-go/pkg/netif"
)

// RegisterStateChangedCallback binds handler and context to the first free
// slot and adds the slot to the notifier's fan-out. Registering a pair that
// is already bound is a no-op. It returns ErrInvalidArgs for a nil or
// uncomparable handler and ErrNoBufs when every slot is taken.
func (inst *Instance) RegisterStateChangedCallback(handler StateChangedHandler, context any) error {
	if !netif.ValidHandler(handler) {
		return ErrInvalidArgs
	}

	free := -1
	for i := range inst.callbacks {
		cb := &inst.callbacks[i]
		if cb.IsServing(handler, context) {
			return nil
		}
		if free < 0 && cb.IsFree() {
			free = i
		}
	}

	if free < 0 {
		inst.tracer.Callback(log.LayerInstance, log.CallbackRejected, -1, 0)
		inst.debugLog("RegisterStateChangedCallback: table full")
		return ErrNoBufs
	}

	cb := &inst.callbacks[free]
	cb.Set(handler, context)
	if err := inst.notifier.RegisterCallback(cb); err != nil {
		cb.Free()
		inst.tracer.Error(log.LayerInstance, "register state-changed callback", err)
		return err
	}

	inst.tracer.Callback(log.LayerInstance, log.CallbackRegistered, free, 0)
	inst.debugLog("RegisterStateChangedCallback: bound", "slot", free)
	return nil
}

// RemoveStateChangedCallback unbinds the slot serving handler and context.
// It does nothing if no slot matches.
func (inst *Instance) RemoveStateChangedCallback(handler StateChangedHandler, context any) {
	for i := range inst.callbacks {
		cb := &inst.callbacks[i]
		if !cb.IsServing(handler, context) {
			continue
		}
		inst.notifier.RemoveCallback(cb)
		cb.Free()
		inst.tracer.Callback(log.LayerInstance, log.CallbackRemoved, i, 0)
		inst.debugLog("RemoveStateChangedCallback: freed", "slot", i)
		return
	}
}

// StateChangedCallbacks returns the number of bound slots.
func (inst *Instance) StateChangedCallbacks() int {
	n := 0
	for i := range inst.callbacks {
		if !inst.callbacks[i].IsFree() {
			n++
		}
	}
	return n
}
