package scan

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshnode/meshnode-go/pkg/instance"
)

type energyRecorder struct {
	results []*instance.EnergyScanResult
}

func (r *energyRecorder) InvokeEnergyScanCallback(res *instance.EnergyScanResult) {
	r.results = append(r.results, res)
}

func TestChannelMask(t *testing.T) {
	assert.Len(t, AllChannels.Channels(), 16)
	assert.Equal(t, []uint8{11, 26}, (ChannelMask(1<<11) | ChannelMask(1<<26)).Channels())
	assert.Equal(t, "11,15", (ChannelMask(1<<11) | ChannelMask(1<<15)).String())

	assert.NoError(t, AllChannels.Validate())
	assert.ErrorIs(t, ChannelMask(0).Validate(), ErrInvalidChannelMask)
	assert.ErrorIs(t, ChannelMask(1<<10).Validate(), ErrInvalidChannelMask)
}

func TestEnergyScan(t *testing.T) {
	rec := &energyRecorder{}
	sampler := SamplerFunc(func(_ context.Context, ch uint8) (int8, error) {
		if ch == 13 {
			return 0, errors.New("radio busy")
		}
		return -100 + int8(ch), nil
	})
	s := NewEnergyScanner(rec, sampler, EnergyConfig{})

	mask := ChannelMask(1<<11 | 1<<12 | 1<<13 | 1<<14)
	require.NoError(t, s.Scan(context.Background(), mask))

	require.Len(t, rec.results, 4)
	assert.Equal(t, instance.EnergyScanResult{Channel: 11, MaxRSSI: -89}, *rec.results[0])
	assert.Equal(t, uint8(12), rec.results[1].Channel)
	assert.Equal(t, uint8(14), rec.results[2].Channel, "failed channel skipped")
	assert.Nil(t, rec.results[3])
}

func TestEnergyScanInvalidMask(t *testing.T) {
	rec := &energyRecorder{}
	s := NewEnergyScanner(rec, NewNoiseSampler(-95, 5, 1), EnergyConfig{})

	assert.ErrorIs(t, s.Scan(context.Background(), 0), ErrInvalidChannelMask)
	assert.Empty(t, rec.results)
}

func TestEnergyScanCancelled(t *testing.T) {
	rec := &energyRecorder{}
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	sampler := SamplerFunc(func(context.Context, uint8) (int8, error) {
		calls++
		cancel()
		return -90, nil
	})
	s := NewEnergyScanner(rec, sampler, EnergyConfig{})

	err := s.Scan(ctx, AllChannels)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
	require.Len(t, rec.results, 2)
	assert.Nil(t, rec.results[1])
}

func TestNoiseSampler(t *testing.T) {
	n := NewNoiseSampler(-95, 10, 42)
	for ch := uint8(11); ch <= 26; ch++ {
		rssi, err := n.Sample(context.Background(), ch)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, rssi, int8(-95))
		assert.LessOrEqual(t, rssi, int8(-85))
	}

	flat := NewNoiseSampler(-80, 0, 1)
	rssi, err := flat.Sample(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, int8(-80), rssi)
}
