package instance

import "github.com/meshnode/meshnode-go/pkg/log"

// RegisterActiveScanCallback sets the active scan subscriber, replacing any
// previous one. A nil fn removes the subscriber.
func (inst *Instance) RegisterActiveScanCallback(fn ActiveScanFunc, context any) {
	inst.activeScanFn = fn
	inst.activeScanCtx = context
}

// InvokeActiveScanCallback delivers result to the current active scan
// subscriber, if any. A nil result marks the end of the scan.
func (inst *Instance) InvokeActiveScanCallback(result *ActiveScanResult) {
	ev := log.ScanEvent{Kind: log.ScanActive, Done: result == nil, Delivered: inst.activeScanFn != nil}
	if result != nil {
		ev.Channel = result.Channel
		ev.NetworkName = result.NetworkName
		ev.RSSI = result.RSSI
	}
	inst.tracer.Scan(ev)

	if inst.activeScanFn != nil {
		inst.activeScanFn(result, inst.activeScanCtx)
	}
}

// RegisterEnergyScanCallback sets the energy scan subscriber, replacing any
// previous one. A nil fn removes the subscriber.
func (inst *Instance) RegisterEnergyScanCallback(fn EnergyScanFunc, context any) {
	inst.energyScanFn = fn
	inst.energyScanCtx = context
}

// InvokeEnergyScanCallback delivers result to the current energy scan
// subscriber, if any. A nil result marks the end of the scan.
func (inst *Instance) InvokeEnergyScanCallback(result *EnergyScanResult) {
	ev := log.ScanEvent{Kind: log.ScanEnergy, Done: result == nil, Delivered: inst.energyScanFn != nil}
	if result != nil {
		ev.Channel = result.Channel
		ev.RSSI = result.MaxRSSI
	}
	inst.tracer.Scan(ev)

	if inst.energyScanFn != nil {
		inst.energyScanFn(result, inst.energyScanCtx)
	}
}
