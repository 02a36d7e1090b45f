//go:build multiinstance

package interactive

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshnode/meshnode-go/pkg/instance"
)

func startInstance(t *testing.T, cfg instance.Config) *instance.Instance {
	t.Helper()
	size := instance.RequiredSize
	inst, err := instance.TryInit(make([]byte, size), &size, cfg)
	require.NoError(t, err)
	t.Cleanup(inst.Finalize)
	return inst
}
