package instance

import (
	"log/slog"

	"github.com/meshnode/meshnode-go/pkg/ip6"
	"github.com/meshnode/meshnode-go/pkg/log"
	"github.com/meshnode/meshnode-go/pkg/mesh"
	"github.com/meshnode/meshnode-go/pkg/mle"
	"github.com/meshnode/meshnode-go/pkg/netif"
	"github.com/meshnode/meshnode-go/pkg/platform"
	"github.com/meshnode/meshnode-go/pkg/settings"
)

// collaborators holds the resolved collaborator set of an instance.
type collaborators struct {
	settings Settings
	roles    RoleManager
	ip6      IP6
	protocol Protocol
	notifier Notifier
	platform ResetHook
}

// resolve fills nil collaborators with reference implementations. The
// reference components signal the notifier when it accepts flags and share
// the settings store when it is a full settings.Store.
func resolve(cfg Config, logger *slog.Logger, tracer *log.Tracer) collaborators {
	c := collaborators{
		settings: cfg.Settings,
		roles:    cfg.Roles,
		ip6:      cfg.IP6,
		protocol: cfg.Protocol,
		notifier: cfg.Notifier,
		platform: cfg.Platform,
	}

	if c.notifier == nil {
		c.notifier = netif.NewNotifier(netif.Config{Logger: logger, Tracer: tracer})
	}
	signaler, _ := c.notifier.(netif.Signaler)

	if c.settings == nil {
		c.settings = settings.NewMemoryStore()
	}
	store, ok := c.settings.(settings.Store)
	if !ok {
		// Never initialized: reference components read it as empty-and-failing.
		store = settings.NewMemoryStore()
	}

	if c.roles == nil {
		c.roles = mle.NewRoleManager(mle.Config{
			Settings: store,
			Notifier: signaler,
			Logger:   logger,
			Tracer:   tracer,
		})
	}

	if c.ip6 == nil {
		c.ip6 = ip6.NewInterface(ip6.Config{
			Notifier: signaler,
			Logger:   logger,
			Tracer:   tracer,
		})
	}

	if c.protocol == nil {
		roles, _ := c.roles.(mesh.RoleSetter)
		c.protocol = mesh.NewProtocol(mesh.Config{
			IP:       c.ip6,
			Roles:    roles,
			Settings: store,
			Notifier: signaler,
			Logger:   logger,
			Tracer:   tracer,
		})
	}

	if c.platform == nil {
		c.platform = platform.NewRecorder(nil)
	}

	return c
}
