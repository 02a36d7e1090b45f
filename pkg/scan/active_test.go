package scan

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/enbility/zeroconf/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshnode/meshnode-go/pkg/instance"
)

type activeRecorder struct {
	mu      sync.Mutex
	results []*instance.ActiveScanResult
}

func (r *activeRecorder) InvokeActiveScanCallback(res *instance.ActiveScanResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, res)
}

// fakeBrowse sends the given entries, then blocks until ctx is done.
func fakeBrowse(list ...*zeroconf.ServiceEntry) browseFunc {
	return func(ctx context.Context, service, domain string,
		entries, removed chan *zeroconf.ServiceEntry, _ ...zeroconf.ClientOption) error {
		for _, e := range list {
			select {
			case entries <- e:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		<-ctx.Done()
		close(entries)
		close(removed)
		return ctx.Err()
	}
}

func agent(instanceName string, txt ...string) *zeroconf.ServiceEntry {
	e := &zeroconf.ServiceEntry{HostName: instanceName + ".local.", Port: 49191, Text: txt}
	e.Instance = instanceName
	return e
}

func TestMDNSActiveScan(t *testing.T) {
	rec := &activeRecorder{}
	var dispatched int
	s := NewMDNSActiveScanner(rec, MDNSConfig{
		Duration: 50 * time.Millisecond,
		Dispatch: func(fn func()) { dispatched++; fn() },
	})
	s.browse = fakeBrowse(
		agent("ba-1", "nn=home", "ch=15", "xp=dead00beef00cafe"),
		agent("ba-1", "nn=home", "ch=15", "xp=dead00beef00cafe"), // second interface
		agent("ba-2", "ch=20"),                                   // no network name
		agent("ba-3", "nn=office", "ch=25"),
	)

	require.NoError(t, s.Scan(context.Background()))

	require.Len(t, rec.results, 3)
	assert.Equal(t, "home", rec.results[0].NetworkName)
	assert.Equal(t, "ba-1.local.", rec.results[0].Host)
	assert.Equal(t, uint16(49191), rec.results[0].Port)
	assert.Equal(t, "office", rec.results[1].NetworkName)
	assert.Nil(t, rec.results[2], "scan ends with nil")
	assert.Equal(t, 3, dispatched, "every delivery goes through Dispatch")
}

func TestMDNSActiveScanCancelled(t *testing.T) {
	rec := &activeRecorder{}
	s := NewMDNSActiveScanner(rec, MDNSConfig{Duration: time.Hour})
	s.browse = fakeBrowse()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, s.Scan(ctx))
	require.Len(t, rec.results, 1)
	assert.Nil(t, rec.results[0])
}

func TestMDNSActiveScanBrowseError(t *testing.T) {
	boom := errors.New("no multicast interface")
	rec := &activeRecorder{}
	s := NewMDNSActiveScanner(rec, MDNSConfig{Duration: time.Second})
	s.browse = func(context.Context, string, string, chan *zeroconf.ServiceEntry, chan *zeroconf.ServiceEntry, ...zeroconf.ClientOption) error {
		return boom
	}

	assert.ErrorIs(t, s.Scan(context.Background()), boom)
	require.Len(t, rec.results, 1)
	assert.Nil(t, rec.results[0])
}

func TestMDNSDefaultDuration(t *testing.T) {
	s := NewMDNSActiveScanner(&activeRecorder{}, MDNSConfig{})
	assert.Equal(t, DefaultActiveScanDuration, s.config.Duration)
}
