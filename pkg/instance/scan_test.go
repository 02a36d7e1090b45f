package instance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshnode/meshnode-go/pkg/log"
)

type activeCall struct {
	result  *ActiveScanResult
	context any
}

type energyCall struct {
	result  *EnergyScanResult
	context any
}

func TestActiveScanDispatch(t *testing.T) {
	inst := newInstance(t, DefaultConfig())

	// No subscriber: nothing happens.
	assert.NotPanics(t, func() { inst.InvokeActiveScanCallback(&ActiveScanResult{Channel: 11}) })

	var first, second []activeCall
	inst.RegisterActiveScanCallback(func(r *ActiveScanResult, ctx any) {
		first = append(first, activeCall{r, ctx})
	}, "first")
	inst.RegisterActiveScanCallback(func(r *ActiveScanResult, ctx any) {
		second = append(second, activeCall{r, ctx})
	}, "second")

	res := &ActiveScanResult{NetworkName: "home", Channel: 15, RSSI: -60}
	inst.InvokeActiveScanCallback(res)
	inst.InvokeActiveScanCallback(nil)

	assert.Empty(t, first, "overwritten subscriber receives nothing")
	require.Len(t, second, 2)
	assert.Same(t, res, second[0].result)
	assert.Equal(t, "second", second[0].context)
	assert.Nil(t, second[1].result, "nil marks end of scan")

	inst.RegisterActiveScanCallback(nil, nil)
	inst.InvokeActiveScanCallback(res)
	assert.Len(t, second, 2)
}

func TestEnergyScanDispatch(t *testing.T) {
	inst := newInstance(t, DefaultConfig())
	assert.NotPanics(t, func() { inst.InvokeEnergyScanCallback(nil) })

	var calls []energyCall
	ctx := &struct{ id int }{id: 7}
	inst.RegisterEnergyScanCallback(func(r *EnergyScanResult, c any) {
		calls = append(calls, energyCall{r, c})
	}, ctx)

	inst.InvokeEnergyScanCallback(&EnergyScanResult{Channel: 11, MaxRSSI: -90})
	inst.InvokeEnergyScanCallback(&EnergyScanResult{Channel: 12, MaxRSSI: -72})
	inst.InvokeEnergyScanCallback(nil)

	require.Len(t, calls, 3)
	assert.Equal(t, uint8(12), calls[1].result.Channel)
	assert.Same(t, ctx, calls[2].context)
	assert.Nil(t, calls[2].result)
}

func TestScanKindsAreIndependent(t *testing.T) {
	inst := newInstance(t, DefaultConfig())

	var active, energy int
	inst.RegisterActiveScanCallback(func(*ActiveScanResult, any) { active++ }, nil)
	inst.RegisterEnergyScanCallback(func(*EnergyScanResult, any) { energy++ }, nil)

	inst.InvokeEnergyScanCallback(nil)
	inst.RegisterActiveScanCallback(nil, nil)
	inst.InvokeEnergyScanCallback(nil)

	assert.Equal(t, 0, active)
	assert.Equal(t, 2, energy)
}

func TestScanTrace(t *testing.T) {
	events := &eventRecorder{}
	cfg := DefaultConfig()
	cfg.EventLogger = events
	inst := newInstance(t, cfg)

	inst.InvokeActiveScanCallback(&ActiveScanResult{NetworkName: "home", Channel: 20})
	inst.RegisterEnergyScanCallback(func(*EnergyScanResult, any) {}, nil)
	inst.InvokeEnergyScanCallback(nil)

	scans := events.byCategory(log.CategoryScan)
	require.Len(t, scans, 2)
	assert.Equal(t, log.ScanActive, scans[0].Scan.Kind)
	assert.Equal(t, "home", scans[0].Scan.NetworkName)
	assert.False(t, scans[0].Scan.Delivered)
	assert.Equal(t, log.ScanEnergy, scans[1].Scan.Kind)
	assert.True(t, scans[1].Scan.Done)
	assert.True(t, scans[1].Scan.Delivered)
}
