package egl

import "unsafe"

// GetDisplay returns the display for a native display. ok is false when
// the implementation has none; eglGetDisplay sets no error in that case.
func (i *Instance) GetDisplay(id NativeDisplayType) (dpy Display, ok bool) {
	dpy = Display{i.b.GetDisplay(id)}
	return dpy, !dpy.IsNil()
}

// GetPlatformDisplay returns the display for a native display of the given
// platform (e.g. PlatformWaylandKHR, PlatformSurfacelessMESA).
func (i *Instance) GetPlatformDisplay(platform Enum, native unsafe.Pointer, attribs AttribList) (Display, error) {
	const fn = "eglGetPlatformDisplay"
	if err := attribs.Validate(); err != nil {
		return NoDisplay, invalid(fn, err)
	}
	var p unsafe.Pointer
	err := i.check(fn, func() bool {
		p = i.b.GetPlatformDisplay(platform, native, attribs.ptr())
		return p != nil
	})
	if err != nil {
		return NoDisplay, err
	}
	return Display{p}, nil
}

// Initialize initializes dpy and returns the EGL version it implements.
// Initializing an initialized display is allowed and only returns the
// version.
func (i *Instance) Initialize(dpy Display) (Version, error) {
	var major, minor Int
	err := i.check("eglInitialize", func() bool {
		return i.b.Initialize(dpy.ptr, &major, &minor) != False
	})
	if err != nil {
		return Version{}, err
	}
	return Version{Major: int(major), Minor: int(minor)}, nil
}

// Terminate releases the resources of dpy. Contexts and surfaces of dpy
// become invalid; those current to some thread are released when they
// stop being current.
func (i *Instance) Terminate(dpy Display) error {
	return i.check("eglTerminate", func() bool {
		return i.b.Terminate(dpy.ptr) != False
	})
}

// ReleaseThread returns the calling thread's EGL state to its initial
// values and releases the current context.
func (i *Instance) ReleaseThread() error {
	return i.check("eglReleaseThread", func() bool {
		return i.b.ReleaseThread() != False
	})
}
