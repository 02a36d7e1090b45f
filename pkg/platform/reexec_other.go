//go:build !unix

package platform

// Reexec is not available on this platform.
func Reexec() error {
	return ErrReexecUnsupported
}
