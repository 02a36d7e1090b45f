package mesh

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshnode/meshnode-go/pkg/ip6"
	"github.com/meshnode/meshnode-go/pkg/mle"
	"github.com/meshnode/meshnode-go/pkg/netif"
	"github.com/meshnode/meshnode-go/pkg/settings"
)

type fixture struct {
	ip       *ip6.Interface
	roles    *mle.RoleManager
	store    *settings.MemoryStore
	notifier *netif.Notifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := settings.NewMemoryStore()
	require.NoError(t, store.Init())
	n := netif.NewNotifier(netif.Config{})
	return &fixture{
		ip:       ip6.NewInterface(ip6.Config{Notifier: n}),
		roles:    mle.NewRoleManager(mle.Config{Settings: store, Notifier: n}),
		store:    store,
		notifier: n,
	}
}

func (f *fixture) protocol(start func() error) *Protocol {
	return NewProtocol(Config{
		IP:       f.ip,
		Roles:    f.roles,
		Settings: f.store,
		Notifier: f.notifier,
		Start:    start,
	})
}

func TestEnableRequiresIP(t *testing.T) {
	f := newFixture(t)
	p := f.protocol(nil)

	assert.ErrorIs(t, p.SetEnabled(true), ErrInvalidState)
	assert.False(t, p.IsEnabled())
	assert.Equal(t, mle.RoleDisabled, f.roles.Role())
}

func TestEnableDisableMovesRole(t *testing.T) {
	f := newFixture(t)
	p := f.protocol(nil)
	require.NoError(t, f.ip.SetEnabled(true))

	require.NoError(t, p.SetEnabled(true))
	assert.True(t, p.IsEnabled())
	assert.Equal(t, mle.RoleDetached, f.roles.Role())

	require.NoError(t, p.SetEnabled(true), "enable is idempotent")

	require.NoError(t, p.SetEnabled(false))
	assert.False(t, p.IsEnabled())
	assert.Equal(t, mle.RoleDisabled, f.roles.Role())
}

func TestStartHookFailure(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("radio not ready")
	p := f.protocol(func() error { return boom })
	require.NoError(t, f.ip.SetEnabled(true))

	err := p.SetEnabled(true)

	assert.ErrorIs(t, err, boom)
	assert.False(t, p.IsEnabled())
	assert.Equal(t, mle.RoleDisabled, f.roles.Role())
}

func TestEnableSignalsNotifier(t *testing.T) {
	f := newFixture(t)
	p := f.protocol(nil)
	require.NoError(t, f.ip.SetEnabled(true))

	var got netif.Flags
	var slot netif.Callback
	slot.Set(netif.HandlerFunc(func(flags netif.Flags, _ any) { got |= flags }), nil)
	require.NoError(t, f.notifier.RegisterCallback(&slot))

	require.NoError(t, p.SetEnabled(true))

	assert.True(t, got.Has(netif.FlagProtocolEnabled|netif.FlagRole))
}

func TestAutoStartPersistence(t *testing.T) {
	f := newFixture(t)
	p := f.protocol(nil)

	assert.False(t, p.AutoStart(), "unset flag reads false")

	require.NoError(t, p.SetAutoStart(true))
	assert.True(t, p.AutoStart())
	assert.True(t, f.protocol(nil).AutoStart(), "flag is read from settings")

	require.NoError(t, f.store.Wipe())
	assert.False(t, p.AutoStart())
}

func TestAutoStartWithoutSettings(t *testing.T) {
	p := NewProtocol(Config{IP: ip6.NewInterface(ip6.Config{})})
	assert.False(t, p.AutoStart())
	assert.Error(t, p.SetAutoStart(true))
}
