package instance

import "errors"

// Instance errors.
var (
	// ErrNoBufs is returned when every state-changed callback slot is bound.
	ErrNoBufs = errors.New("no free callback slot")

	// ErrInvalidState is returned when an operation is not allowed in the
	// current network role.
	ErrInvalidState = errors.New("invalid state")

	// ErrBufferTooSmall is returned by TryInit when the region is smaller
	// than RequiredSize.
	ErrBufferTooSmall = errors.New("buffer too small")

	// ErrInvalidArgs is returned for missing buffers, size pointers or
	// callbacks.
	ErrInvalidArgs = errors.New("invalid arguments")
)
