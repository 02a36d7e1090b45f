package instance

import (
	"errors"
	"sync"
	"testing"

	"github.com/meshnode/meshnode-go/pkg/instance/mocks"
	"github.com/meshnode/meshnode-go/pkg/log"
	"github.com/meshnode/meshnode-go/pkg/mle"
)

var errBoom = errors.New("boom")

// collaboratorMocks bundles one mock per collaborator.
type collaboratorMocks struct {
	settings *mocks.MockSettings
	roles    *mocks.MockRoleManager
	ip6      *mocks.MockIP6
	protocol *mocks.MockProtocol
	notifier *mocks.MockNotifier
	platform *mocks.MockResetHook
}

func newCollaboratorMocks(t *testing.T) *collaboratorMocks {
	t.Helper()
	return &collaboratorMocks{
		settings: mocks.NewMockSettings(t),
		roles:    mocks.NewMockRoleManager(t),
		ip6:      mocks.NewMockIP6(t),
		protocol: mocks.NewMockProtocol(t),
		notifier: mocks.NewMockNotifier(t),
		platform: mocks.NewMockResetHook(t),
	}
}

func (m *collaboratorMocks) config() Config {
	return Config{
		Settings: m.settings,
		Roles:    m.roles,
		IP6:      m.ip6,
		Protocol: m.protocol,
		Notifier: m.notifier,
		Platform: m.platform,
	}
}

// expectQuietBringUp sets up a bring-up without auto-start.
func (m *collaboratorMocks) expectQuietBringUp() {
	m.settings.EXPECT().Init().Return(nil).Once()
	m.roles.EXPECT().Restore().Return(nil).Once()
	m.protocol.EXPECT().AutoStart().Return(false).Once()
}

// newInstance constructs a heap instance over a fresh region and runs
// bring-up, independent of the storage strategy in the build.
func newInstance(t *testing.T, cfg Config) *Instance {
	t.Helper()
	inst := new(Instance)
	inst.construct(make([]byte, RequiredSize), cfg)
	inst.afterInit()
	return inst
}

// newMockedInstance returns an initialized instance over mocks with a quiet
// bring-up already consumed.
func newMockedInstance(t *testing.T) (*Instance, *collaboratorMocks) {
	t.Helper()
	m := newCollaboratorMocks(t)
	m.expectQuietBringUp()
	return newInstance(t, m.config()), m
}

// eventRecorder is a log.Logger that keeps every event.
type eventRecorder struct {
	mu     sync.Mutex
	events []log.Event
}

func (r *eventRecorder) Log(event log.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *eventRecorder) byCategory(c log.Category) []log.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []log.Event
	for _, e := range r.events {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

// validNetworkInfo returns network info that passes validation.
func validNetworkInfo() mle.NetworkInfo {
	return mle.NetworkInfo{
		Role:          mle.RoleRouter,
		NetworkName:   "meshnode-test",
		ExtendedPanID: [8]byte{0xde, 0xad, 0x00, 0xbe, 0xef, 0x00, 0xca, 0xfe},
		PanID:         0x1234,
		Channel:       15,
		NetworkKey:    [16]byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff},
	}
}
