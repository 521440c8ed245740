//go:build !(darwin || freebsd || linux || netbsd)

package dynamic

import (
	"errors"

	"github.com/gogpu/egl"
)

const defaultMode = 0

// Backend is unavailable on this platform.
type Backend struct{}

// DefaultLibraries returns nil on platforms without dlopen.
func DefaultLibraries() []string { return nil }

// Open always fails on platforms without dlopen.
func Open(path string, opts ...Option) (*Backend, error) {
	return nil, &egl.LibraryError{Path: path, Err: errors.ErrUnsupported}
}

// OpenDefault always fails on platforms without dlopen.
func OpenDefault(opts ...Option) (*Backend, error) {
	return nil, &egl.LibraryError{Path: "libEGL", Err: errors.ErrUnsupported}
}

// Version reports the zero version.
func (*Backend) Version() egl.Version { return egl.Version{} }

// Close does nothing.
func (*Backend) Close() error { return nil }

// Path returns "".
func (*Backend) Path() string { return "" }
