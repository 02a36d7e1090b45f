package scan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/bits"
	"math/rand/v2"
	"strings"

	"github.com/meshnode/meshnode-go/pkg/instance"
	"github.com/meshnode/meshnode-go/pkg/mle"
)

// ChannelMask selects radio channels; bit n is channel n.
type ChannelMask uint32

// AllChannels selects every supported channel.
const AllChannels ChannelMask = ((1 << (mle.MaxChannel + 1)) - 1) &^ ((1 << mle.MinChannel) - 1)

// ErrInvalidChannelMask is returned for masks selecting unsupported channels.
var ErrInvalidChannelMask = errors.New("invalid channel mask")

// Channels returns the selected channels in ascending order.
func (m ChannelMask) Channels() []uint8 {
	out := make([]uint8, 0, bits.OnesCount32(uint32(m)))
	for ch := uint8(mle.MinChannel); ch <= mle.MaxChannel; ch++ {
		if m&(1<<ch) != 0 {
			out = append(out, ch)
		}
	}
	return out
}

// Validate checks that the mask is non-empty and within AllChannels.
func (m ChannelMask) Validate() error {
	if m == 0 || m&^AllChannels != 0 {
		return fmt.Errorf("%w: 0x%08x", ErrInvalidChannelMask, uint32(m))
	}
	return nil
}

// String lists the selected channels, e.g. "11,15,26".
func (m ChannelMask) String() string {
	chans := m.Channels()
	parts := make([]string, len(chans))
	for i, ch := range chans {
		parts[i] = fmt.Sprint(ch)
	}
	return strings.Join(parts, ",")
}

// Sampler measures the maximum RSSI on a channel.
type Sampler interface {
	Sample(ctx context.Context, channel uint8) (int8, error)
}

// SamplerFunc adapts a function to Sampler.
type SamplerFunc func(ctx context.Context, channel uint8) (int8, error)

// Sample calls f.
func (f SamplerFunc) Sample(ctx context.Context, channel uint8) (int8, error) {
	return f(ctx, channel)
}

// NoiseSampler simulates a noise floor with random jitter, for hosts
// without a radio.
type NoiseSampler struct {
	Floor  int8
	Jitter int8
	rng    *rand.Rand
}

// NewNoiseSampler creates a NoiseSampler with a deterministic seed.
func NewNoiseSampler(floor, jitter int8, seed uint64) *NoiseSampler {
	return &NoiseSampler{Floor: floor, Jitter: jitter, rng: rand.New(rand.NewPCG(seed, seed))}
}

// Sample returns Floor plus a value in [0, Jitter].
func (n *NoiseSampler) Sample(ctx context.Context, _ uint8) (int8, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if n.Jitter <= 0 {
		return n.Floor, nil
	}
	return n.Floor + int8(n.rng.IntN(int(n.Jitter)+1)), nil
}

// EnergyTarget receives energy scan results.
type EnergyTarget interface {
	InvokeEnergyScanCallback(result *instance.EnergyScanResult)
}

// EnergyConfig configures an EnergyScanner.
type EnergyConfig struct {
	// Dispatch marshals results onto the instance's context.
	Dispatch Dispatch

	// Logger is the optional logger for debug output.
	Logger *slog.Logger
}

// EnergyScanner measures channel energy through a Sampler.
type EnergyScanner struct {
	config  EnergyConfig
	target  EnergyTarget
	sampler Sampler
}

// NewEnergyScanner creates a scanner delivering results to target.
func NewEnergyScanner(target EnergyTarget, sampler Sampler, cfg EnergyConfig) *EnergyScanner {
	return &EnergyScanner{config: cfg, target: target, sampler: sampler}
}

// Scan samples each channel in mask and delivers one result per channel,
// then a nil result. Channels whose sample fails are skipped. The scan
// stops early when ctx is done; the nil result is still delivered.
func (s *EnergyScanner) Scan(ctx context.Context, mask ChannelMask) error {
	if err := mask.Validate(); err != nil {
		return err
	}

	var scanErr error
	for _, ch := range mask.Channels() {
		if err := ctx.Err(); err != nil {
			scanErr = err
			break
		}
		rssi, err := s.sampler.Sample(ctx, ch)
		if err != nil {
			s.debugLog("Scan: sample failed", "channel", ch, "error", err)
			continue
		}
		res := &instance.EnergyScanResult{Channel: ch, MaxRSSI: rssi}
		s.config.Dispatch.run(func() { s.target.InvokeEnergyScanCallback(res) })
	}

	s.config.Dispatch.run(func() { s.target.InvokeEnergyScanCallback(nil) })
	return scanErr
}

func (s *EnergyScanner) debugLog(msg string, args ...any) {
	if s.config.Logger != nil {
		s.config.Logger.Debug(msg, args...)
	}
}
