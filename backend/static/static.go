//go:build static && cgo && ((linux && !android) || freebsd || openbsd)

package static

/*
#cgo linux pkg-config: egl
#cgo freebsd openbsd LDFLAGS: -lEGL
#cgo freebsd CFLAGS: -I/usr/local/include
#cgo freebsd LDFLAGS: -L/usr/local/lib
#cgo openbsd CFLAGS: -I/usr/X11R6/include
#cgo openbsd LDFLAGS: -L/usr/X11R6/lib
#cgo CFLAGS: -DEGL_NO_X11

#include <EGL/egl.h>

#if !defined(EGL_VERSION_1_5)
#error "EGL 1.5 headers are required"
#endif
*/
import "C"

import "github.com/gogpu/egl"

func init() {
	egl.RegisterLoader(egl.BackendStatic, func() (egl.Backend, error) {
		return Backend{}, nil
	})
}

// Backend is the link-time EGL backend. The zero value is ready to use and
// safe for concurrent use.
type Backend struct{}

// New returns the link-time backend.
func New() Backend { return Backend{} }

// Available reports whether the link-time backend was compiled in.
func Available() bool { return true }

// Version reports EGL 1.5: all entry points are linked.
func (Backend) Version() egl.Version { return egl.Version15 }

var _ egl.Backend = Backend{}
