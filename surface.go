package egl

import "unsafe"

func (i *Instance) surface(fn string, create func() unsafe.Pointer) (Surface, error) {
	var p unsafe.Pointer
	err := i.check(fn, func() bool {
		p = create()
		return p != nil
	})
	if err != nil {
		return NoSurface, err
	}
	return Surface{p}, nil
}

// CreateWindowSurface creates an on-screen surface for win. A nil attribs
// passes no attribute list.
//
// The caller must guarantee that win is a live native window of the
// platform dpy was obtained for. A window of another platform is
// undefined behavior in the driver and is not detected here.
func (i *Instance) CreateWindowSurface(dpy Display, cfg Config, win NativeWindowType, attribs IntList) (Surface, error) {
	const fn = "eglCreateWindowSurface"
	var list *Int
	if attribs != nil {
		if err := attribs.Validate(); err != nil {
			return NoSurface, invalid(fn, err)
		}
		list = attribs.ptr()
	}
	return i.surface(fn, func() unsafe.Pointer {
		return i.b.CreateWindowSurface(dpy.ptr, cfg.ptr, win, list)
	})
}

// CreatePixmapSurface creates an off-screen surface rendering into pixmap.
//
// The caller must guarantee that pixmap is a live native pixmap of the
// platform dpy was obtained for. A pixmap of another platform is
// undefined behavior in the driver and is not detected here.
func (i *Instance) CreatePixmapSurface(dpy Display, cfg Config, pixmap NativePixmapType, attribs IntList) (Surface, error) {
	const fn = "eglCreatePixmapSurface"
	if err := attribs.Validate(); err != nil {
		return NoSurface, invalid(fn, err)
	}
	return i.surface(fn, func() unsafe.Pointer {
		return i.b.CreatePixmapSurface(dpy.ptr, cfg.ptr, pixmap, attribs.ptr())
	})
}

// CreatePbufferSurface creates an off-screen pixel buffer surface. Its size
// is set with the Width and Height attributes.
func (i *Instance) CreatePbufferSurface(dpy Display, cfg Config, attribs IntList) (Surface, error) {
	const fn = "eglCreatePbufferSurface"
	if err := attribs.Validate(); err != nil {
		return NoSurface, invalid(fn, err)
	}
	return i.surface(fn, func() unsafe.Pointer {
		return i.b.CreatePbufferSurface(dpy.ptr, cfg.ptr, attribs.ptr())
	})
}

// CreatePbufferFromClientBuffer creates a pixel buffer surface bound to a
// client API buffer of type buftype (e.g. OpenVGImage).
func (i *Instance) CreatePbufferFromClientBuffer(dpy Display, buftype Enum, buffer ClientBuffer, cfg Config, attribs IntList) (Surface, error) {
	const fn = "eglCreatePbufferFromClientBuffer"
	if err := attribs.Validate(); err != nil {
		return NoSurface, invalid(fn, err)
	}
	return i.surface(fn, func() unsafe.Pointer {
		return i.b.CreatePbufferFromClientBuffer(dpy.ptr, buftype, buffer.ptr, cfg.ptr, attribs.ptr())
	})
}

// CreatePlatformWindowSurface creates an on-screen surface for a native
// window of dpy's platform, passed as a pointer (e.g. a wl_egl_window*).
func (i *Instance) CreatePlatformWindowSurface(dpy Display, cfg Config, nativeWindow unsafe.Pointer, attribs AttribList) (Surface, error) {
	const fn = "eglCreatePlatformWindowSurface"
	if err := attribs.Validate(); err != nil {
		return NoSurface, invalid(fn, err)
	}
	return i.surface(fn, func() unsafe.Pointer {
		return i.b.CreatePlatformWindowSurface(dpy.ptr, cfg.ptr, nativeWindow, attribs.ptr())
	})
}

// CreatePlatformPixmapSurface creates an off-screen surface for a native
// pixmap of dpy's platform, passed as a pointer.
func (i *Instance) CreatePlatformPixmapSurface(dpy Display, cfg Config, nativePixmap unsafe.Pointer, attribs AttribList) (Surface, error) {
	const fn = "eglCreatePlatformPixmapSurface"
	if err := attribs.Validate(); err != nil {
		return NoSurface, invalid(fn, err)
	}
	return i.surface(fn, func() unsafe.Pointer {
		return i.b.CreatePlatformPixmapSurface(dpy.ptr, cfg.ptr, nativePixmap, attribs.ptr())
	})
}

// DestroySurface destroys s. A surface current to some thread is
// destroyed when it stops being current.
func (i *Instance) DestroySurface(dpy Display, s Surface) error {
	return i.check("eglDestroySurface", func() bool {
		return i.b.DestroySurface(dpy.ptr, s.ptr) != False
	})
}

// QuerySurface returns the value of attribute for s.
func (i *Instance) QuerySurface(dpy Display, s Surface, attribute Int) (Int, error) {
	var v Int
	err := i.check("eglQuerySurface", func() bool {
		return i.b.QuerySurface(dpy.ptr, s.ptr, attribute, &v) != False
	})
	if err != nil {
		return 0, err
	}
	return v, nil
}

// SurfaceAttrib sets attribute of s to value.
func (i *Instance) SurfaceAttrib(dpy Display, s Surface, attribute, value Int) error {
	return i.check("eglSurfaceAttrib", func() bool {
		return i.b.SurfaceAttrib(dpy.ptr, s.ptr, attribute, value) != False
	})
}

// SwapBuffers posts the color buffer of s to its native window.
func (i *Instance) SwapBuffers(dpy Display, s Surface) error {
	return i.check("eglSwapBuffers", func() bool {
		return i.b.SwapBuffers(dpy.ptr, s.ptr) != False
	})
}

// SwapInterval sets the minimum number of video frames between buffer
// swaps for the current draw surface.
func (i *Instance) SwapInterval(dpy Display, interval Int) error {
	return i.check("eglSwapInterval", func() bool {
		return i.b.SwapInterval(dpy.ptr, interval) != False
	})
}

// CopyBuffers copies the color buffer of s to a native pixmap.
//
// The caller must guarantee that target is a native pixmap of dpy's
// platform.
func (i *Instance) CopyBuffers(dpy Display, s Surface, target NativePixmapType) error {
	return i.check("eglCopyBuffers", func() bool {
		return i.b.CopyBuffers(dpy.ptr, s.ptr, target) != False
	})
}

// BindTexImage binds the color buffer of pbuffer s as a texture of the
// current GL context. buffer must be BackBuffer.
func (i *Instance) BindTexImage(dpy Display, s Surface, buffer Int) error {
	return i.check("eglBindTexImage", func() bool {
		return i.b.BindTexImage(dpy.ptr, s.ptr, buffer) != False
	})
}

// ReleaseTexImage releases a color buffer bound with BindTexImage.
func (i *Instance) ReleaseTexImage(dpy Display, s Surface, buffer Int) error {
	return i.check("eglReleaseTexImage", func() bool {
		return i.b.ReleaseTexImage(dpy.ptr, s.ptr, buffer) != False
	})
}
