package scan

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"time"

	"github.com/enbility/zeroconf/v3"

	"github.com/meshnode/meshnode-go/pkg/instance"
)

const (
	// ServiceTypeBorderAgent is the DNS-SD service type border agents
	// advertise.
	ServiceTypeBorderAgent = "_meshcop._udp"

	// Domain is the mDNS domain.
	Domain = "local."

	// DefaultActiveScanDuration bounds an active scan when no duration is
	// configured.
	DefaultActiveScanDuration = 3 * time.Second
)

// ActiveTarget receives active scan results.
type ActiveTarget interface {
	InvokeActiveScanCallback(result *instance.ActiveScanResult)
}

// browseFunc browses for service until ctx is done, like zeroconf.Browse.
type browseFunc func(ctx context.Context, service, domain string,
	entries, removed chan *zeroconf.ServiceEntry, opts ...zeroconf.ClientOption) error

func zeroconfBrowse(ctx context.Context, service, domain string,
	entries, removed chan *zeroconf.ServiceEntry, opts ...zeroconf.ClientOption) error {
	return zeroconf.Browse(ctx, service, domain, entries, removed, opts...)
}

// MDNSConfig configures an MDNSActiveScanner.
type MDNSConfig struct {
	// Interface restricts browsing to one network interface (empty for all).
	Interface string

	// Duration bounds each scan (default DefaultActiveScanDuration).
	Duration time.Duration

	// Dispatch marshals results onto the instance's context.
	Dispatch Dispatch

	// Logger is the optional logger for debug output.
	Logger *slog.Logger
}

// MDNSActiveScanner discovers networks by browsing for border agents.
type MDNSActiveScanner struct {
	config MDNSConfig
	target ActiveTarget
	browse browseFunc
}

// NewMDNSActiveScanner creates a scanner delivering results to target.
func NewMDNSActiveScanner(target ActiveTarget, cfg MDNSConfig) *MDNSActiveScanner {
	if cfg.Duration <= 0 {
		cfg.Duration = DefaultActiveScanDuration
	}
	return &MDNSActiveScanner{
		config: cfg,
		target: target,
		browse: zeroconfBrowse,
	}
}

// Scan browses for the configured duration or until ctx is done, delivers
// one result per distinct network found and then a nil result. It returns
// the browse error, if any; expiry of the scan duration is not an error.
func (s *MDNSActiveScanner) Scan(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.Duration)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry)
	removed := make(chan *zeroconf.ServiceEntry)

	browseErr := make(chan error, 1)
	go func() {
		browseErr <- s.browse(ctx, ServiceTypeBorderAgent, Domain, entries, removed, s.browserOptions()...)
	}()

	seen := make(map[string]bool)
	ctxDone := ctx.Done()
	var err error

	// Keep draining after the deadline so the browser can shut down.
	for done := false; !done; {
		select {
		case entry, ok := <-entries:
			if !ok {
				entries = nil
				continue
			}
			if ctxDone != nil {
				s.handleEntry(entry, seen)
			}

		case _, ok := <-removed:
			if !ok {
				removed = nil
			}

		case err = <-browseErr:
			done = true

		case <-ctxDone:
			ctxDone = nil
		}
	}

	s.config.Dispatch.run(func() { s.target.InvokeActiveScanCallback(nil) })

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (s *MDNSActiveScanner) handleEntry(entry *zeroconf.ServiceEntry, seen map[string]bool) {
	res, err := ResultFromTXT(ParseTXT(entry.Text))
	if err != nil {
		s.debugLog("Scan: skipping advertisement", "instance", entry.Instance, "error", err)
		return
	}
	res.Host = entry.HostName
	res.Port = uint16(entry.Port)

	// Multiple interfaces report the same agent; deliver it once.
	if seen[entry.Instance] {
		return
	}
	seen[entry.Instance] = true

	s.debugLog("Scan: found network", "networkName", res.NetworkName, "host", res.Host, "port", res.Port)
	s.config.Dispatch.run(func() { s.target.InvokeActiveScanCallback(res) })
}

func (s *MDNSActiveScanner) browserOptions() []zeroconf.ClientOption {
	var opts []zeroconf.ClientOption
	if s.config.Interface != "" {
		iface, err := net.InterfaceByName(s.config.Interface)
		if err == nil {
			opts = append(opts, zeroconf.SelectIfaces([]net.Interface{*iface}))
		}
	}
	return opts
}

func (s *MDNSActiveScanner) debugLog(msg string, args ...any) {
	if s.config.Logger != nil {
		s.config.Logger.Debug(msg, args...)
	}
}
