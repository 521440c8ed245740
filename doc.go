// Package egl binds the Khronos EGL API, versions 1.0 to 1.5.
//
// The binding is thin: every operation forwards to a native EGL
// implementation and turns its boolean and null-handle results, together
// with the per-thread error register, into Go values and errors.
//
// # Backends
//
// Native entry points are reached through a [Backend]. Two are provided:
//
//   - backend/static links against libEGL at build time with cgo
//     (go build -tags static).
//   - backend/dynamic loads libEGL at run time with purego and needs
//     neither cgo nor EGL development files.
//
// Backends register themselves on import; [DefaultBackend] opens the best
// one available:
//
//	import _ "github.com/gogpu/egl/backend/dynamic"
//
//	b, err := egl.DefaultBackend()
//	if err != nil {
//		log.Fatal(err)
//	}
//	inst := egl.NewInstance(b)
//
// # Instance
//
// [Instance] exposes the EGL API over a backend:
//
//	dpy, ok := inst.GetDisplay(egl.DefaultDisplay)
//	if !ok {
//		log.Fatal("no EGL display")
//	}
//	v, err := inst.Initialize(dpy)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer inst.Terminate(dpy)
//
//	cfg, ok, err := inst.ChooseFirstConfig(dpy, egl.Ints(
//		egl.RedSize, 8, egl.GreenSize, 8, egl.BlueSize, 8,
//		egl.SurfaceType, egl.PbufferBit,
//	))
//
// Attribute lists come in two widths: [IntList] for the EGL 1.0 to 1.4
// entry points and [AttribList] for the EGL 1.5 ones. Lists must end with
// their terminator; [Ints] and [Attribs] append it. Unterminated lists are
// rejected with [ErrMalformedAttribList] before reaching the driver.
//
// # Errors
//
// A failed native call returns a *[CallError] naming the entry point and
// wrapping the condition read from the error register, one of the [Error]
// constants:
//
//	if errors.Is(err, egl.ErrBadMatch) {
//		...
//	}
//
// # Threads
//
// EGL keeps the error register and the current context per OS thread.
// Instance locks the calling goroutine to its thread around each call, but
// code that makes a context current must lock the thread itself with
// runtime.LockOSThread.
//
// # Logging
//
// The package is silent by default. See [SetLogger].
package egl
