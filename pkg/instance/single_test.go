//go:build !multiinstance

package instance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitSingle(t *testing.T) {
	t.Cleanup(func() { Get().Finalize() })

	assert.Same(t, Get(), Get())
	assert.False(t, Get().IsInitialized(), "Get does not run bring-up")

	m := newCollaboratorMocks(t)
	m.expectQuietBringUp()
	inst := InitSingle(m.config())

	require.NotNil(t, inst)
	assert.True(t, inst.IsInitialized())
	assert.Same(t, Get(), inst)

	// Idempotent: no second bring-up, config ignored.
	id := inst.ID()
	again := InitSingle(DefaultConfig())
	assert.Same(t, inst, again)
	assert.Equal(t, id, again.ID())

	m.protocol.EXPECT().SetEnabled(false).Return(nil).Once()
	m.ip6.EXPECT().SetEnabled(false).Return(nil).Once()
	inst.Finalize()
	assert.False(t, Get().IsInitialized())
}

func TestInitSingleAfterFinalizeReconstructs(t *testing.T) {
	t.Cleanup(func() { Get().Finalize() })

	first := InitSingle(DefaultConfig())
	a := &observer{}
	require.NoError(t, first.RegisterStateChangedCallback(observe, a))
	firstID := first.ID()
	first.Finalize()

	second := InitSingle(DefaultConfig())

	assert.Same(t, first, second, "same static cell")
	assert.True(t, second.IsInitialized())
	assert.NotEqual(t, firstID, second.ID())
	assert.Equal(t, 0, second.StateChangedCallbacks(), "fresh construction clears the table")
}

func TestSingleRegionBacksPool(t *testing.T) {
	t.Cleanup(func() { Get().Finalize() })

	inst := InitSingle(DefaultConfig())
	buf, err := inst.MessagePool().Alloc()
	require.NoError(t, err)

	assert.Same(t, &singleRegion[0], &buf[0])
}
