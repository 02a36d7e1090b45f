//go:build unix

package platform

import (
	"os"
	"syscall"
)

// Reexec replaces the current process image with the same executable and
// arguments. It only returns on failure.
func Reexec() error {
	exe, err := os.Executable()
	if err != nil {
		return err
	}
	return syscall.Exec(exe, os.Args, os.Environ())
}
