//go:build !multiinstance

package main

import "github.com/meshnode/meshnode-go/pkg/instance"

// startInstance brings up the process-wide instance.
func startInstance(cfg instance.Config) (*instance.Instance, error) {
	return instance.InitSingle(cfg), nil
}
