//go:build !multiinstance

package interactive

import (
	"testing"

	"github.com/meshnode/meshnode-go/pkg/instance"
)

func startInstance(t *testing.T, cfg instance.Config) *instance.Instance {
	t.Helper()
	inst := instance.InitSingle(cfg)
	t.Cleanup(inst.Finalize)
	return inst
}
