package egl

import "unsafe"

// CreateContext creates a rendering context for the current rendering API
// (see BindAPI). Pass NoContext as share for no sharing; the native null
// context is then passed to the driver.
func (i *Instance) CreateContext(dpy Display, cfg Config, share Context, attribs IntList) (Context, error) {
	const fn = "eglCreateContext"
	if err := attribs.Validate(); err != nil {
		return NoContext, invalid(fn, err)
	}
	var p unsafe.Pointer
	err := i.check(fn, func() bool {
		p = i.b.CreateContext(dpy.ptr, cfg.ptr, share.ptr, attribs.ptr())
		return p != nil
	})
	if err != nil {
		return NoContext, err
	}
	return Context{p}, nil
}

// DestroyContext destroys ctx. A context current to some thread is
// destroyed when it stops being current.
func (i *Instance) DestroyContext(dpy Display, ctx Context) error {
	return i.check("eglDestroyContext", func() bool {
		return i.b.DestroyContext(dpy.ptr, ctx.ptr) != False
	})
}

// QueryContext returns the value of attribute for ctx.
func (i *Instance) QueryContext(dpy Display, ctx Context, attribute Int) (Int, error) {
	var v Int
	err := i.check("eglQueryContext", func() bool {
		return i.b.QueryContext(dpy.ptr, ctx.ptr, attribute, &v) != False
	})
	if err != nil {
		return 0, err
	}
	return v, nil
}

// MakeCurrent binds ctx to the calling OS thread with draw and read
// surfaces. Pass NoSurface, NoSurface, NoContext to release the current
// context.
//
// The binding belongs to the OS thread, not the goroutine: call
// runtime.LockOSThread before MakeCurrent and keep it locked while the
// context is in use.
func (i *Instance) MakeCurrent(dpy Display, draw, read Surface, ctx Context) error {
	return i.check("eglMakeCurrent", func() bool {
		return i.b.MakeCurrent(dpy.ptr, draw.ptr, read.ptr, ctx.ptr) != False
	})
}

// GetCurrentContext returns the context current to the calling thread.
// ok is false when there is none or the backend predates EGL 1.4.
func (i *Instance) GetCurrentContext() (ctx Context, ok bool) {
	if i.supported("eglGetCurrentContext") != nil {
		return NoContext, false
	}
	ctx = Context{i.b.GetCurrentContext()}
	return ctx, !ctx.IsNil()
}

// GetCurrentDisplay returns the display of the current context.
func (i *Instance) GetCurrentDisplay() (dpy Display, ok bool) {
	dpy = Display{i.b.GetCurrentDisplay()}
	return dpy, !dpy.IsNil()
}

// GetCurrentSurface returns the Draw or Read surface bound to the current
// context.
func (i *Instance) GetCurrentSurface(readdraw Int) (s Surface, ok bool) {
	s = Surface{i.b.GetCurrentSurface(readdraw)}
	return s, !s.IsNil()
}
