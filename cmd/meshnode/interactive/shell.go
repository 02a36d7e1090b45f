// Package interactive provides the interactive command-line interface
// for meshnode.
package interactive

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/chzyer/readline"

	"github.com/meshnode/meshnode-go/pkg/instance"
	"github.com/meshnode/meshnode-go/pkg/mesh"
	"github.com/meshnode/meshnode-go/pkg/mle"
	"github.com/meshnode/meshnode-go/pkg/scan"
)

// Config wires the shell to a running node.
type Config struct {
	// Instance returns the current instance. It is only called with Lock
	// held, and may return a different instance after a reset.
	Instance func() *instance.Instance

	// Lock serializes access to the instance.
	Lock sync.Locker

	// Interface restricts mDNS scans to one network interface.
	Interface string

	// ScanDuration bounds active scans.
	ScanDuration time.Duration

	// Sampler measures channel energy. Defaults to a simulated noise floor.
	Sampler scan.Sampler

	// Logger is passed to the scanners.
	Logger *slog.Logger
}

// Shell handles interactive mode for meshnode.
type Shell struct {
	cfg    Config
	out    io.Writer
	rl     *readline.Instance
	active *scan.MDNSActiveScanner
	energy *scan.EnergyScanner

	notifier *instance.FuncHandler
	notifyOn bool

	scans sync.WaitGroup
}

// NewTerminal creates the readline terminal a shell reads from. Loggers
// should write to its Stdout so output does not clobber the prompt.
func NewTerminal() (*readline.Instance, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "meshnode> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return rl, nil
}

// New creates a shell reading commands from rl.
func New(rl *readline.Instance, cfg Config) *Shell {
	s := newShell(cfg, rl.Stdout())
	s.rl = rl
	return s
}

func newShell(cfg Config, out io.Writer) *Shell {
	if cfg.Sampler == nil {
		cfg.Sampler = scan.NewNoiseSampler(-100, 20, uint64(time.Now().UnixNano()))
	}
	s := &Shell{cfg: cfg, out: out}
	s.notifier = instance.HandlerFunc(s.printStateChanged)

	dispatch := scan.Dispatch(func(fn func()) {
		cfg.Lock.Lock()
		defer cfg.Lock.Unlock()
		fn()
	})
	target := currentInstance{cfg.Instance}
	s.active = scan.NewMDNSActiveScanner(target, scan.MDNSConfig{
		Interface: cfg.Interface,
		Duration:  cfg.ScanDuration,
		Dispatch:  dispatch,
		Logger:    cfg.Logger,
	})
	s.energy = scan.NewEnergyScanner(target, cfg.Sampler, scan.EnergyConfig{
		Dispatch: dispatch,
		Logger:   cfg.Logger,
	})
	return s
}

// currentInstance forwards scan results to whichever instance is current
// when the result is dispatched.
type currentInstance struct {
	get func() *instance.Instance
}

func (c currentInstance) InvokeActiveScanCallback(result *instance.ActiveScanResult) {
	c.get().InvokeActiveScanCallback(result)
}

func (c currentInstance) InvokeEnergyScanCallback(result *instance.EnergyScanResult) {
	c.get().InvokeEnergyScanCallback(result)
}

// Run starts the interactive command loop. The terminal is left open.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.scans.Wait()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}

		if s.Execute(ctx, line) {
			cancel()
			return
		}
	}
}

// Wait blocks until every scan started by the shell has finished.
func (s *Shell) Wait() {
	s.scans.Wait()
}

// Reattach re-registers shell callbacks on a new instance after a reset.
// The caller holds the lock.
func (s *Shell) Reattach(inst *instance.Instance) {
	if s.notifyOn {
		if err := inst.RegisterStateChangedCallback(s.notifier, s); err != nil {
			fmt.Fprintf(s.out, "notify: %v\n", err)
			s.notifyOn = false
		}
	}
	fmt.Fprintf(s.out, "Instance %s restarted (role %s)\n", short(inst.ID()), inst.Role())
}

// Execute runs one command line and reports whether the shell should exit.
func (s *Shell) Execute(ctx context.Context, line string) (quit bool) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Exiting...")
		return true
	case "help", "?":
		s.printHelp()
		return false
	}

	s.cfg.Lock.Lock()
	defer s.cfg.Lock.Unlock()
	inst := s.cfg.Instance()

	switch cmd {
	case "state", "status":
		s.cmdState(inst)
	case "ifconfig":
		s.cmdIfconfig(inst, args)
	case "thread", "mesh":
		s.cmdThread(inst, args)
	case "dataset":
		s.cmdDataset(inst, args)
	case "autostart":
		s.cmdAutoStart(inst, args)
	case "scan":
		s.cmdScan(ctx, inst)
	case "energy":
		s.cmdEnergy(ctx, inst, args)
	case "notify":
		s.cmdNotify(inst, args)
	case "loglevel":
		s.cmdLogLevel(inst, args)
	case "reset":
		fmt.Fprintln(s.out, "Resetting...")
		inst.Reset()
	case "factoryreset":
		fmt.Fprintln(s.out, "Factory reset...")
		inst.FactoryReset()
	case "erase":
		if err := inst.ErasePersistentInfo(); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			return false
		}
		fmt.Fprintln(s.out, "Persistent info erased")
	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
meshnode commands:
  Status:
    state                      - Show instance state
    dataset                    - Show stored network info
    loglevel [level]           - Show or set the instance log level
    notify on|off              - Print state changes as they happen

  Control:
    ifconfig up|down           - Enable or disable the IP interface
    thread start|stop          - Enable or disable the mesh protocol
    autostart on|off           - Persist the auto-start flag
    dataset set <name> <ch> <panid> <xpanid> <key>
                               - Store network info (hex ids and key)

  Scanning:
    scan                       - Browse for border agents
    energy [mask]              - Measure channel energy (hex mask)

  Lifecycle:
    reset                      - Reset the platform
    factoryreset               - Wipe settings and reset
    erase                      - Erase settings (role must be disabled)
    quit                       - Exit`)
}

func (s *Shell) cmdState(inst *instance.Instance) {
	fmt.Fprintf(s.out, "Instance:     %s\n", inst.ID())
	fmt.Fprintf(s.out, "Initialized:  %t\n", inst.IsInitialized())
	fmt.Fprintf(s.out, "Role:         %s\n", inst.Role())
	fmt.Fprintf(s.out, "IP6:          %s\n", upDown(inst.IP6().IsEnabled()))
	if p, ok := inst.Protocol().(*mesh.Protocol); ok {
		fmt.Fprintf(s.out, "Protocol:     %s\n", upDown(p.IsEnabled()))
	}
	fmt.Fprintf(s.out, "Auto-start:   %t\n", inst.Protocol().AutoStart())
	fmt.Fprintf(s.out, "Callbacks:    %d/%d\n", inst.StateChangedCallbacks(), instance.MaxStateChangedCallbacks)
	pool := inst.MessagePool()
	fmt.Fprintf(s.out, "Buffers:      %d/%d free\n", pool.FreeCount(), pool.Capacity())
}

func (s *Shell) cmdIfconfig(inst *instance.Instance, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, upDown(inst.IP6().IsEnabled()))
		return
	}
	var err error
	switch args[0] {
	case "up":
		err = inst.IP6().SetEnabled(true)
	case "down":
		err = inst.IP6().SetEnabled(false)
	default:
		fmt.Fprintln(s.out, "Usage: ifconfig up|down")
		return
	}
	s.done(err)
}

func (s *Shell) cmdThread(inst *instance.Instance, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: thread start|stop")
		return
	}
	var err error
	switch args[0] {
	case "start":
		err = inst.Protocol().SetEnabled(true)
	case "stop":
		err = inst.Protocol().SetEnabled(false)
	default:
		fmt.Fprintln(s.out, "Usage: thread start|stop")
		return
	}
	s.done(err)
}

func (s *Shell) cmdDataset(inst *instance.Instance, args []string) {
	roles, ok := inst.Roles().(*mle.RoleManager)
	if !ok {
		fmt.Fprintln(s.out, "Dataset not available")
		return
	}

	if len(args) == 0 || args[0] == "show" {
		info, ok := roles.NetworkInfo()
		if !ok {
			fmt.Fprintln(s.out, "No network info stored")
			return
		}
		fmt.Fprintf(s.out, "Network Name: %s\n", info.NetworkName)
		fmt.Fprintf(s.out, "Channel:      %d\n", info.Channel)
		fmt.Fprintf(s.out, "PAN ID:       0x%04x\n", info.PanID)
		fmt.Fprintf(s.out, "Ext PAN ID:   %s\n", hex.EncodeToString(info.ExtendedPanID[:]))
		fmt.Fprintf(s.out, "Key Sequence: %d\n", info.KeySequence)
		return
	}

	if args[0] != "set" || len(args) != 6 {
		fmt.Fprintln(s.out, "Usage: dataset set <name> <channel> <panid> <xpanid> <key>")
		return
	}
	info, err := parseDataset(args[1:])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	s.done(roles.Store(info))
}

func parseDataset(args []string) (mle.NetworkInfo, error) {
	info := mle.NetworkInfo{NetworkName: args[0], Role: mle.RoleDisabled}

	ch, err := strconv.ParseUint(args[1], 10, 8)
	if err != nil {
		return info, fmt.Errorf("invalid channel %q", args[1])
	}
	info.Channel = uint8(ch)

	pan, err := strconv.ParseUint(strings.TrimPrefix(args[2], "0x"), 16, 16)
	if err != nil {
		return info, fmt.Errorf("invalid PAN ID %q", args[2])
	}
	info.PanID = uint16(pan)

	if err := decodeHex(args[3], info.ExtendedPanID[:]); err != nil {
		return info, fmt.Errorf("invalid extended PAN ID: %w", err)
	}
	if err := decodeHex(args[4], info.NetworkKey[:]); err != nil {
		return info, fmt.Errorf("invalid network key: %w", err)
	}
	return info, info.Validate()
}

func decodeHex(s string, dst []byte) error {
	b, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	if len(b) != len(dst) {
		return fmt.Errorf("want %d bytes, got %d", len(dst), len(b))
	}
	copy(dst, b)
	return nil
}

func (s *Shell) cmdAutoStart(inst *instance.Instance, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, inst.Protocol().AutoStart())
		return
	}
	p, ok := inst.Protocol().(*mesh.Protocol)
	if !ok {
		fmt.Fprintln(s.out, "Auto-start not available")
		return
	}
	switch args[0] {
	case "on", "true":
		s.done(p.SetAutoStart(true))
	case "off", "false":
		s.done(p.SetAutoStart(false))
	default:
		fmt.Fprintln(s.out, "Usage: autostart on|off")
	}
}

func (s *Shell) cmdScan(ctx context.Context, inst *instance.Instance) {
	inst.RegisterActiveScanCallback(s.printActiveResult, nil)
	fmt.Fprintln(s.out, "Scanning...")

	s.scans.Add(1)
	go func() {
		defer s.scans.Done()
		if err := s.active.Scan(ctx); err != nil {
			s.report("scan", err)
		}
	}()
}

func (s *Shell) cmdEnergy(ctx context.Context, inst *instance.Instance, args []string) {
	mask := scan.AllChannels
	if len(args) > 0 {
		v, err := strconv.ParseUint(strings.TrimPrefix(args[0], "0x"), 16, 32)
		if err != nil {
			fmt.Fprintf(s.out, "Error: invalid channel mask %q\n", args[0])
			return
		}
		mask = scan.ChannelMask(v)
	}
	if err := mask.Validate(); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	inst.RegisterEnergyScanCallback(s.printEnergyResult, nil)
	fmt.Fprintf(s.out, "Energy scan on %s...\n", mask)

	s.scans.Add(1)
	go func() {
		defer s.scans.Done()
		if err := s.energy.Scan(ctx, mask); err != nil {
			s.report("energy", err)
		}
	}()
}

func (s *Shell) cmdNotify(inst *instance.Instance, args []string) {
	if len(args) != 1 {
		fmt.Fprintf(s.out, "notify: %s\n", onOff(s.notifyOn))
		return
	}
	switch args[0] {
	case "on":
		if err := inst.RegisterStateChangedCallback(s.notifier, s); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			return
		}
		s.notifyOn = true
	case "off":
		inst.RemoveStateChangedCallback(s.notifier, s)
		s.notifyOn = false
	default:
		fmt.Fprintln(s.out, "Usage: notify on|off")
		return
	}
	fmt.Fprintln(s.out, "Done")
}

func (s *Shell) cmdLogLevel(inst *instance.Instance, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, inst.LogLevel())
		return
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(args[0])); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	inst.SetLogLevel(level)
	fmt.Fprintln(s.out, "Done")
}

func (s *Shell) printStateChanged(flags instance.Flags, _ any) {
	fmt.Fprintf(s.out, "[state] %s\n", flags)
}

func (s *Shell) printActiveResult(result *instance.ActiveScanResult, _ any) {
	if result == nil {
		fmt.Fprintln(s.out, "Scan done")
		return
	}
	fmt.Fprintf(s.out, "| %-16s | %s | 0x%04x | %2d | %s:%d |\n",
		result.NetworkName, hex.EncodeToString(result.ExtendedPanID[:]),
		result.PanID, result.Channel, result.Host, result.Port)
}

func (s *Shell) printEnergyResult(result *instance.EnergyScanResult, _ any) {
	if result == nil {
		fmt.Fprintln(s.out, "Energy scan done")
		return
	}
	fmt.Fprintf(s.out, "| %2d | %4d dBm |\n", result.Channel, result.MaxRSSI)
}

// report prints a scan error unless the scan was cancelled.
func (s *Shell) report(what string, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	s.cfg.Lock.Lock()
	defer s.cfg.Lock.Unlock()
	fmt.Fprintf(s.out, "%s: %v\n", what, err)
}

func (s *Shell) done(err error) {
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "Done")
}

func upDown(b bool) string {
	if b {
		return "up"
	}
	return "down"
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func short(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
