//go:build multiinstance

package main

import (
	"github.com/meshnode/meshnode-go/pkg/instance"
)

// startInstance negotiates the region size, allocates it and brings up an
// instance in it.
func startInstance(cfg instance.Config) (*instance.Instance, error) {
	size := 0
	if _, err := instance.TryInit(nil, &size, cfg); err != nil && size == 0 {
		return nil, err
	}
	return instance.TryInit(make([]byte, size), &size, cfg)
}
