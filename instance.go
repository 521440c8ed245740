package egl

import (
	"fmt"
	"runtime"
	"slices"
	"strings"
	"unsafe"
)

// Instance exposes the EGL API over a Backend, translating native sentinels
// and the error register into Go results.
//
// An Instance holds nothing but its backend: displays, configs and
// contexts are never cached. It is safe for concurrent use when the
// backend is.
//
// EGL keeps the error register and the current context per OS thread.
// Every Instance method locks the calling goroutine to its thread for the
// duration of the native call and of the error query that follows a
// failure. Callers that make a context current must hold
// runtime.LockOSThread themselves for as long as the binding is used.
type Instance struct {
	b       Backend
	version Version
}

// NewInstance returns an Instance calling through b.
func NewInstance(b Backend) *Instance {
	return &Instance{b: b, version: b.Version()}
}

// Backend returns the backend the Instance calls through.
func (i *Instance) Backend() Backend { return i.b }

// Version reports the highest EGL version whose entry points the backend
// binds. This is not the version a display reports from Initialize.
func (i *Instance) Version() Version { return i.version }

// supported rejects entry points introduced after the bound version.
func (i *Instance) supported(fn string) error {
	if since, ok := entrySince[fn]; ok && !i.version.AtLeast(since) {
		return &CallError{Func: fn, Err: ErrUnsupported}
	}
	return nil
}

// check runs call on a locked OS thread. When call reports failure the
// error register is read before any other native call on that thread.
func (i *Instance) check(fn string, call func() bool) error {
	if err := i.supported(fn); err != nil {
		return err
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	if call() {
		return nil
	}
	return i.lastError(fn)
}

func (i *Instance) lastError(fn string) error {
	code := i.b.GetError()
	err := registerError(code)
	Logger().Debug("egl: native call failed", "func", fn, "code", fmt.Sprintf("0x%04X", int32(code)))
	return &CallError{Func: fn, Err: err}
}

// registerError translates the register value read after a failed call.
func registerError(code Int) error {
	if code == Success {
		return ErrNoErrorReported
	}
	e, err := ErrorFromNative(code)
	if err != nil {
		return err
	}
	return e
}

func invalid(fn string, err error) error { return &CallError{Func: fn, Err: err} }

// GetError reads and clears the calling thread's error register and
// returns nil when it holds EGL_SUCCESS.
//
// Failed calls made through an Instance drain the register themselves, so
// GetError reports nil right after them. The caller must be locked to the
// OS thread whose register it wants to read.
func (i *Instance) GetError() error {
	code := i.b.GetError()
	if code == Success {
		return nil
	}
	e, err := ErrorFromNative(code)
	if err != nil {
		return err
	}
	return e
}

// GetProcAddress returns the address of a client API or extension
// function. ok is false when the implementation does not know name.
func (i *Instance) GetProcAddress(name string) (addr unsafe.Pointer, ok bool) {
	cname := cString(name)
	addr = i.b.GetProcAddress(&cname[0])
	runtime.KeepAlive(cname)
	return addr, addr != nil
}

// ProcAddrFunc adapts GetProcAddress to the loader signature of GL binding
// packages such as go-gl. Unknown names yield nil.
func (i *Instance) ProcAddrFunc() func(name string) unsafe.Pointer {
	return func(name string) unsafe.Pointer {
		addr, _ := i.GetProcAddress(name)
		return addr
	}
}

// QueryString returns the EGL string name (Vendor, VersionString,
// Extensions or ClientAPIs) of dpy. With NoDisplay and Extensions it
// returns the client extensions (EGL 1.5 or EGL_EXT_client_extensions).
func (i *Instance) QueryString(dpy Display, name Int) (string, error) {
	var s *byte
	err := i.check("eglQueryString", func() bool {
		s = i.b.QueryString(dpy.ptr, name)
		return s != nil
	})
	if err != nil {
		return "", err
	}
	return goString(s), nil
}

func (i *Instance) queryList(dpy Display, name Int) ([]string, error) {
	s, err := i.QueryString(dpy, name)
	if err != nil {
		return nil, err
	}
	return strings.Fields(s), nil
}

// Extensions returns the display extensions of dpy.
func (i *Instance) Extensions(dpy Display) ([]string, error) {
	return i.queryList(dpy, Extensions)
}

// ClientExtensions returns the client extensions, queried without a
// display.
func (i *Instance) ClientExtensions() ([]string, error) {
	return i.queryList(NoDisplay, Extensions)
}

// HasExtension reports whether dpy (or the client, for NoDisplay) exposes
// the named extension.
func (i *Instance) HasExtension(dpy Display, name string) (bool, error) {
	exts, err := i.queryList(dpy, Extensions)
	if err != nil {
		return false, err
	}
	return slices.Contains(exts, name), nil
}

// ClientAPIs returns the client APIs supported by dpy, e.g. "OpenGL_ES".
func (i *Instance) ClientAPIs(dpy Display) ([]string, error) {
	return i.queryList(dpy, ClientAPIs)
}

// BindAPI sets the current rendering API of the calling thread.
func (i *Instance) BindAPI(api Enum) error {
	return i.check("eglBindAPI", func() bool {
		return i.b.BindAPI(api) != False
	})
}

// QueryAPI returns the current rendering API of the calling thread.
// Before EGL 1.2 OpenGL ES is the only API, and QueryAPI reports it.
func (i *Instance) QueryAPI() Enum {
	if i.supported("eglQueryAPI") != nil {
		return OpenGLESAPI
	}
	return i.b.QueryAPI()
}

// WaitGL completes GL execution prior to subsequent native rendering.
func (i *Instance) WaitGL() error {
	return i.check("eglWaitGL", func() bool {
		return i.b.WaitGL() != False
	})
}

// WaitNative completes native rendering on engine prior to subsequent
// client API rendering.
func (i *Instance) WaitNative(engine Int) error {
	return i.check("eglWaitNative", func() bool {
		return i.b.WaitNative(engine) != False
	})
}

// WaitClient completes client API execution prior to subsequent native
// rendering.
func (i *Instance) WaitClient() error {
	return i.check("eglWaitClient", func() bool {
		return i.b.WaitClient() != False
	})
}
