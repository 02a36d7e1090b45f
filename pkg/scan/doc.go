// Package scan produces active and energy scan results and delivers them
// through an instance's scan dispatcher.
//
// Scanners may do blocking work on their own goroutines, but every result
// is handed to the instance through the configured Dispatch function, so
// the instance is only ever touched from the caller's execution context.
// Each scan ends with a nil result, also when it is cancelled.
package scan

// Dispatch runs fn in the instance's execution context. A nil Dispatch
// calls fn directly.
type Dispatch func(fn func())

func (d Dispatch) run(fn func()) {
	if d == nil {
		fn()
		return
	}
	d(fn)
}
