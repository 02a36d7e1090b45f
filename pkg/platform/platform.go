// Package platform adapts host facilities to the reset hook an instance
// calls on Reset and FactoryReset.
package platform

import (
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
)

// ErrReexecUnsupported is returned by Reexec on platforms without exec(2).
var ErrReexecUnsupported = errors.New("re-exec not supported on this platform")

// ResetFunc adapts a plain function to the reset hook interface.
type ResetFunc func()

// Reset calls f.
func (f ResetFunc) Reset() {
	f()
}

// Recorder is a reset hook that counts resets and optionally runs a
// follow-up action, e.g. re-initializing the stack in a simulation.
type Recorder struct {
	count atomic.Int64
	hook  func()
}

// NewRecorder creates a Recorder. hook may be nil.
func NewRecorder(hook func()) *Recorder {
	return &Recorder{hook: hook}
}

// Reset records the reset and runs the hook.
func (r *Recorder) Reset() {
	r.count.Add(1)
	if r.hook != nil {
		r.hook()
	}
}

// Count returns the number of resets recorded.
func (r *Recorder) Count() int {
	return int(r.count.Load())
}

// ProcessReset returns a reset hook that replaces the running process with
// a fresh copy of itself. If re-exec fails the error is logged and the
// process exits with status 1.
func ProcessReset(logger *slog.Logger) ResetFunc {
	return func() {
		err := Reexec()
		if logger != nil {
			logger.Error("platform reset failed", "error", err)
		}
		os.Exit(1)
	}
}
