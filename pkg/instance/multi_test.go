//go:build multiinstance

package instance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitSizeNegotiation(t *testing.T) {
	t.Run("nil size", func(t *testing.T) {
		inst, err := TryInit(make([]byte, RequiredSize), nil, DefaultConfig())
		assert.Nil(t, inst)
		assert.ErrorIs(t, err, ErrInvalidArgs)
	})

	t.Run("size too small reports required size", func(t *testing.T) {
		size := 0
		inst := Init(nil, &size, DefaultConfig())
		assert.Nil(t, inst)
		assert.Equal(t, RequiredSize, size)

		size = RequiredSize - 1
		_, err := TryInit(make([]byte, RequiredSize-1), &size, DefaultConfig())
		assert.ErrorIs(t, err, ErrBufferTooSmall)
		assert.Equal(t, RequiredSize, size)
	})

	t.Run("nil buffer leaves size untouched", func(t *testing.T) {
		size := RequiredSize + 100
		inst, err := TryInit(nil, &size, DefaultConfig())
		assert.Nil(t, inst)
		assert.ErrorIs(t, err, ErrInvalidArgs)
		assert.Equal(t, RequiredSize+100, size)
	})

	t.Run("short buffer behind a large size", func(t *testing.T) {
		size := RequiredSize
		_, err := TryInit(make([]byte, 16), &size, DefaultConfig())
		assert.ErrorIs(t, err, ErrBufferTooSmall)
	})

	t.Run("negotiate then retry", func(t *testing.T) {
		size := 0
		require.Nil(t, Init(nil, &size, DefaultConfig()))

		buf := make([]byte, size)
		inst := Init(buf, &size, DefaultConfig())
		require.NotNil(t, inst)
		t.Cleanup(inst.Finalize)
		assert.True(t, inst.IsInitialized())
	})
}

func TestInitSameRegionReturnsExisting(t *testing.T) {
	buf := make([]byte, RequiredSize)
	size := len(buf)

	m := newCollaboratorMocks(t)
	m.expectQuietBringUp()
	first := Init(buf, &size, m.config())
	require.NotNil(t, first)

	second := Init(buf, &size, DefaultConfig())
	assert.Same(t, first, second)

	m.protocol.EXPECT().SetEnabled(false).Return(nil).Once()
	m.ip6.EXPECT().SetEnabled(false).Return(nil).Once()
	first.Finalize()

	third := Init(buf, &size, DefaultConfig())
	require.NotNil(t, third)
	t.Cleanup(third.Finalize)
	assert.NotSame(t, first, third, "finalized region is constructed afresh")
	assert.True(t, third.IsInitialized())
}

func TestInstancesAreIndependent(t *testing.T) {
	size := RequiredSize
	bufA, bufB := make([]byte, RequiredSize), make([]byte, RequiredSize)

	a := Init(bufA, &size, DefaultConfig())
	b := Init(bufB, &size, DefaultConfig())
	require.NotNil(t, a)
	require.NotNil(t, b)
	t.Cleanup(a.Finalize)
	t.Cleanup(b.Finalize)

	assert.NotSame(t, a, b)
	assert.NotEqual(t, a.ID(), b.ID())

	oa := &observer{}
	require.NoError(t, a.RegisterStateChangedCallback(observe, oa))
	require.NoError(t, b.IP6().SetEnabled(true))
	assert.Empty(t, oa.flags, "b's notifications do not reach a")

	bufA2, err := a.MessagePool().Alloc()
	require.NoError(t, err)
	assert.Same(t, &bufA[0], &bufA2[0])
}
