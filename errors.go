package egl

import (
	"errors"
	"fmt"
)

// Error is a named EGL error condition. Its value is the native error code
// reported by eglGetError.
type Error Int

// EGL error conditions.
const (
	ErrNotInitialized    Error = NotInitialized
	ErrBadAccess         Error = BadAccess
	ErrBadAlloc          Error = BadAlloc
	ErrBadAttribute      Error = BadAttribute
	ErrBadConfig         Error = BadConfig
	ErrBadContext        Error = BadContext
	ErrBadCurrentSurface Error = BadCurrentSurface
	ErrBadDisplay        Error = BadDisplay
	ErrBadMatch          Error = BadMatch
	ErrBadNativePixmap   Error = BadNativePixmap
	ErrBadNativeWindow   Error = BadNativeWindow
	ErrBadParameter      Error = BadParameter
	ErrBadSurface        Error = BadSurface
	ErrContextLost       Error = ContextLost
)

var errorInfo = map[Error]struct {
	name, msg string
}{
	ErrNotInitialized: {"EGL_NOT_INITIALIZED",
		"EGL is not initialized, or could not be initialized, for the specified EGL display connection"},
	ErrBadAccess: {"EGL_BAD_ACCESS",
		"EGL cannot access a requested resource (for example a context is bound in another thread)"},
	ErrBadAlloc: {"EGL_BAD_ALLOC",
		"EGL failed to allocate resources for the requested operation"},
	ErrBadAttribute: {"EGL_BAD_ATTRIBUTE",
		"an unrecognized attribute or attribute value was passed in the attribute list"},
	ErrBadConfig: {"EGL_BAD_CONFIG",
		"an EGLConfig argument does not name a valid EGL frame buffer configuration"},
	ErrBadContext: {"EGL_BAD_CONTEXT",
		"an EGLContext argument does not name a valid EGL rendering context"},
	ErrBadCurrentSurface: {"EGL_BAD_CURRENT_SURFACE",
		"the current surface of the calling thread is a window, pixel buffer or pixmap that is no longer valid"},
	ErrBadDisplay: {"EGL_BAD_DISPLAY",
		"an EGLDisplay argument does not name a valid EGL display connection"},
	ErrBadMatch: {"EGL_BAD_MATCH",
		"arguments are inconsistent (for example, a valid context requires buffers not supplied by a valid surface)"},
	ErrBadNativePixmap: {"EGL_BAD_NATIVE_PIXMAP",
		"a NativePixmapType argument does not refer to a valid native pixmap"},
	ErrBadNativeWindow: {"EGL_BAD_NATIVE_WINDOW",
		"a NativeWindowType argument does not refer to a valid native window"},
	ErrBadParameter: {"EGL_BAD_PARAMETER",
		"one or more argument values are invalid"},
	ErrBadSurface: {"EGL_BAD_SURFACE",
		"an EGLSurface argument does not name a valid surface (window, pixel buffer or pixmap) configured for GL rendering"},
	ErrContextLost: {"EGL_CONTEXT_LOST",
		"a power management event has occurred; the application must destroy all contexts and reinitialise client API state and objects to continue rendering"},
}

// Error returns the fixed explanation of the condition.
func (e Error) Error() string {
	if info, ok := errorInfo[e]; ok {
		return "egl: " + info.msg
	}
	return fmt.Sprintf("egl: unknown error 0x%04X", int32(e))
}

// String returns the EGL token name, e.g. "EGL_BAD_MATCH".
func (e Error) String() string {
	if info, ok := errorInfo[e]; ok {
		return info.name
	}
	return fmt.Sprintf("Error(0x%04X)", int32(e))
}

// Native returns the native error code of e.
func (e Error) Native() Int { return Int(e) }

// ErrorFromNative translates a native error code into its named condition.
// Codes outside the EGL specification, Success included, are reported as
// *UnknownErrorCodeError.
func ErrorFromNative(code Int) (Error, error) {
	e := Error(code)
	if _, ok := errorInfo[e]; !ok {
		return 0, &UnknownErrorCodeError{Code: code}
	}
	return e, nil
}

// AllErrors returns every named condition in native code order.
func AllErrors() []Error {
	return []Error{
		ErrNotInitialized, ErrBadAccess, ErrBadAlloc, ErrBadAttribute,
		ErrBadConfig, ErrBadContext, ErrBadCurrentSurface, ErrBadDisplay,
		ErrBadMatch, ErrBadNativePixmap, ErrBadNativeWindow, ErrBadParameter,
		ErrBadSurface, ErrContextLost,
	}
}

// UnknownErrorCodeError is returned when the driver reports an error code
// the EGL specification does not define. It indicates a driver defect.
type UnknownErrorCodeError struct {
	Code Int
}

func (e *UnknownErrorCodeError) Error() string {
	return fmt.Sprintf("egl: driver reported undefined error code 0x%04X", int32(e.Code))
}

// Layer errors, detected without consulting the driver's error register.
var (
	// ErrMalformedAttribList is returned, before any native call, when an
	// attribute list does not end with its terminator. It also matches
	// ErrBadParameter under errors.Is.
	ErrMalformedAttribList error = malformedAttribListError{}

	// ErrNoErrorReported is returned when a native call signalled failure
	// but the error register still held EGL_SUCCESS.
	ErrNoErrorReported = errors.New("egl: call failed without reporting an error")

	// ErrUnsupported is returned when the entry point belongs to an EGL
	// version above the one the backend was loaded for.
	ErrUnsupported = errors.New("egl: entry point not bound by backend")

	// ErrBackendNotAvailable is returned when a requested backend is not
	// registered.
	ErrBackendNotAvailable = errors.New("egl: backend not available")
)

type malformedAttribListError struct{}

func (malformedAttribListError) Error() string {
	return "egl: attribute list is not terminated by EGL_NONE"
}

func (malformedAttribListError) Is(target error) bool {
	return target == ErrBadParameter
}

// CallError reports the native entry point that failed and the condition
// read from the error register right after it.
type CallError struct {
	Func string
	Err  error
}

func (e *CallError) Error() string { return e.Func + ": " + e.Err.Error() }

func (e *CallError) Unwrap() error { return e.Err }

// SymbolError is returned by load-time backends when an entry point cannot
// be resolved in the loaded library.
type SymbolError struct {
	Symbol string
	Err    error
}

func (e *SymbolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("egl: symbol %s not found: %v", e.Symbol, e.Err)
	}
	return fmt.Sprintf("egl: symbol %s not found", e.Symbol)
}

func (e *SymbolError) Unwrap() error { return e.Err }

// LibraryError is returned by load-time backends when the EGL library
// cannot be opened.
type LibraryError struct {
	Path string
	Err  error
}

func (e *LibraryError) Error() string {
	return fmt.Sprintf("egl: cannot load %s: %v", e.Path, e.Err)
}

func (e *LibraryError) Unwrap() error { return e.Err }
