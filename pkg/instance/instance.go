package instance

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/meshnode/meshnode-go/pkg/log"
	"github.com/meshnode/meshnode-go/pkg/mle"
	"github.com/meshnode/meshnode-go/pkg/msgpool"
	"github.com/meshnode/meshnode-go/pkg/netif"
	"github.com/meshnode/meshnode-go/pkg/settings"
)

// Instance is one meshnode stack instance.
type Instance struct {
	initialized bool
	id          string
	autoStart   bool

	region []byte
	pool   msgpool.Pool

	callbacks [MaxStateChangedCallbacks]netif.Callback

	activeScanFn  ActiveScanFunc
	activeScanCtx any
	energyScanFn  EnergyScanFunc
	energyScanCtx any

	settings Settings
	roles    RoleManager
	ip6      IP6
	protocol Protocol
	notifier Notifier
	platform ResetHook

	level  *slog.LevelVar
	logger *slog.Logger
	tracer *log.Tracer
}

// construct builds a fresh, uninitialized instance bound to region.
// region must hold at least RequiredSize bytes.
func (inst *Instance) construct(region []byte, cfg Config) {
	*inst = Instance{
		id:        uuid.NewString(),
		autoStart: cfg.AutoStart,
		region:    region,
		level:     new(slog.LevelVar),
	}
	inst.level.Set(cfg.LogLevel)

	if cfg.Logger != nil {
		inst.logger = slog.New(&levelHandler{level: inst.level, handler: cfg.Logger.Handler()}).
			With("instance", inst.id)
	}
	inst.tracer = log.NewTracer(cfg.EventLogger, inst.id)

	if err := inst.pool.Init(region); err != nil {
		// Unreachable through InitSingle/Init, which size the region.
		panic(err)
	}

	c := resolve(cfg, inst.logger, inst.tracer)
	inst.settings = c.settings
	inst.roles = c.roles
	inst.ip6 = c.ip6
	inst.protocol = c.protocol
	inst.notifier = c.notifier
	inst.platform = c.platform
}

// afterInit runs the bring-up sequence. Failures are logged and traced but
// never abort bring-up.
func (inst *Instance) afterInit() {
	inst.initialized = true
	inst.tracer.StateChange(log.LayerInstance, log.StateEntityInstance, "UNINITIALIZED", "INITIALIZED", "")
	inst.debugLog("afterInit: initialized", "regionSize", len(inst.region))

	if err := inst.settings.Init(); err != nil {
		inst.warn("settings init failed", err)
	} else {
		inst.tracer.StateChange(log.LayerSettings, log.StateEntitySettings, "", "READY", "init")
	}

	if err := inst.roles.Restore(); err != nil {
		if errors.Is(err, settings.ErrNotFound) {
			inst.debugLog("afterInit: no network info to restore")
		} else {
			inst.warn("role restore failed", err)
		}
	}

	if !inst.autoStart && !inst.protocol.AutoStart() {
		return
	}

	inst.debugLog("afterInit: auto-start")
	if err := inst.ip6.SetEnabled(true); err != nil {
		inst.warn("auto-start: ip6 enable failed", err)
		return
	}
	if err := inst.protocol.SetEnabled(true); err != nil {
		inst.warn("auto-start: protocol enable failed, rolling back ip6", err)
		if err := inst.ip6.SetEnabled(false); err != nil {
			inst.warn("auto-start: ip6 rollback failed", err)
		}
	}
}

// Finalize tears the instance down. It is a no-op on an uninitialized
// instance. The protocol is disabled before the IP interface; errors from
// either are ignored.
func (inst *Instance) Finalize() {
	if !inst.initialized {
		return
	}

	_ = inst.protocol.SetEnabled(false)
	_ = inst.ip6.SetEnabled(false)

	inst.initialized = false
	inst.tracer.StateChange(log.LayerInstance, log.StateEntityInstance, "INITIALIZED", "UNINITIALIZED", "finalize")
	inst.debugLog("Finalize: done")

	inst.releaseRegion()
}

// Reset requests a platform reboot. The instance state is left alone.
func (inst *Instance) Reset() {
	inst.debugLog("Reset: requesting platform reset")
	inst.platform.Reset()
}

// FactoryReset wipes all persisted settings and then requests a platform
// reboot.
func (inst *Instance) FactoryReset() {
	if err := inst.settings.Wipe(); err != nil {
		inst.warn("factory reset: wipe failed", err)
	} else {
		inst.tracer.StateChange(log.LayerSettings, log.StateEntitySettings, "", "WIPED", "factory reset")
		inst.signal(netif.FlagSettingsWiped)
	}
	inst.Reset()
}

// ErasePersistentInfo wipes all persisted settings. It fails with
// ErrInvalidState unless the role is mle.RoleDisabled.
func (inst *Instance) ErasePersistentInfo() error {
	if role := inst.roles.Role(); role != mle.RoleDisabled {
		inst.debugLog("ErasePersistentInfo: rejected", "role", role.String())
		return ErrInvalidState
	}
	if err := inst.settings.Wipe(); err != nil {
		inst.tracer.Error(log.LayerSettings, "erase persistent info", err)
		return fmt.Errorf("erase persistent info: %w", err)
	}
	inst.tracer.StateChange(log.LayerSettings, log.StateEntitySettings, "", "WIPED", "erase")
	inst.signal(netif.FlagSettingsWiped)
	return nil
}

// IsInitialized reports whether bring-up has run and Finalize has not.
func (inst *Instance) IsInitialized() bool {
	return inst.initialized
}

// ID returns the instance ID stamped on logs and trace events.
func (inst *Instance) ID() string {
	return inst.id
}

// Role returns the current network role.
func (inst *Instance) Role() mle.Role {
	if inst.roles == nil {
		return mle.RoleDisabled
	}
	return inst.roles.Role()
}

// MessagePool returns the message pool carved from the instance region.
func (inst *Instance) MessagePool() *msgpool.Pool {
	return &inst.pool
}

// Settings returns the settings collaborator.
func (inst *Instance) Settings() Settings {
	return inst.settings
}

// Roles returns the role manager collaborator.
func (inst *Instance) Roles() RoleManager {
	return inst.roles
}

// IP6 returns the IP interface collaborator.
func (inst *Instance) IP6() IP6 {
	return inst.ip6
}

// Protocol returns the mesh protocol collaborator.
func (inst *Instance) Protocol() Protocol {
	return inst.protocol
}

// LogLevel returns the current instance log level.
func (inst *Instance) LogLevel() slog.Level {
	if inst.level == nil {
		return slog.LevelInfo
	}
	return inst.level.Level()
}

// SetLogLevel changes the instance log level at runtime.
func (inst *Instance) SetLogLevel(level slog.Level) {
	if inst.level == nil {
		return
	}
	inst.level.Set(level)
}

// signal forwards flags to the notifier if it accepts them.
func (inst *Instance) signal(flags netif.Flags) {
	if s, ok := inst.notifier.(netif.Signaler); ok {
		s.Signal(flags)
	}
}

func (inst *Instance) warn(msg string, err error) {
	if inst.logger != nil {
		inst.logger.Warn(msg, "error", err)
	}
	inst.tracer.Error(log.LayerInstance, msg, err)
}

func (inst *Instance) debugLog(msg string, args ...any) {
	if inst.logger != nil {
		inst.logger.Debug(msg, args...)
	}
}
