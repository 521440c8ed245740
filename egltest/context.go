package egltest

import (
	"unsafe"

	"github.com/gogpu/egl"
)

// CreateContext creates a context for the current API. The requested
// client version must be supported by the config's renderable type.
func (d *Driver) CreateContext(dpy, config, shareContext unsafe.Pointer, attribList *egl.Int) unsafe.Pointer {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglCreateContext") {
		return nil
	}
	d.lastShare = shareContext
	list := readIntList(attribList)
	d.lastInts["eglCreateContext"] = list
	disp := d.initialized(dpy)
	if disp == nil {
		return nil
	}
	cfg := d.owned(disp, config, kindConfig, egl.BadConfig)
	if cfg == nil {
		return nil
	}
	if shareContext != nil && d.owned(disp, shareContext, kindContext, egl.BadContext) == nil {
		return nil
	}
	major, minor := egl.Int(1), egl.Int(0)
	for i := 0; i+1 < len(list) && list[i] != egl.None; i += 2 {
		switch list[i] {
		case egl.ContextMajorVersion:
			major = list[i+1]
		case egl.ContextMinorVersion:
			minor = list[i+1]
		case egl.ContextOpenGLProfileMask, egl.ContextOpenGLDebug,
			egl.ContextOpenGLForwardCompatible, egl.ContextOpenGLRobustAccess,
			egl.ContextOpenGLResetNotificationStrategy:
		default:
			d.setError(egl.BadAttribute)
			return nil
		}
	}
	var need egl.Int
	switch {
	case d.api == egl.OpenGLAPI:
		need = egl.OpenGLBit
	case major >= 3:
		need = egl.OpenGLES3Bit
	case major == 2:
		need = egl.OpenGLES2Bit
	default:
		need = egl.OpenGLESBit
	}
	if cfg.attrs[egl.RenderableType]&need == 0 {
		d.setError(egl.BadMatch)
		return nil
	}
	ctx := d.newObject(kindContext, disp)
	ctx.config = cfg
	ctx.attrs[egl.ContextClientType] = egl.Int(d.api)
	ctx.attrs[egl.ContextClientVersion] = major
	ctx.attrs[egl.ContextMinorVersion] = minor
	ctx.attrs[egl.ConfigID] = cfg.attrs[egl.ConfigID]
	ctx.attrs[egl.RenderBuffer] = egl.BackBuffer
	return handle(ctx)
}

// DestroyContext destroys ctx.
func (d *Driver) DestroyContext(dpy, ctx unsafe.Pointer) egl.Boolean {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglDestroyContext") {
		return egl.False
	}
	disp := d.initialized(dpy)
	if disp == nil {
		return egl.False
	}
	c := d.owned(disp, ctx, kindContext, egl.BadContext)
	if c == nil {
		return egl.False
	}
	d.free(c)
	if d.current.ctx == c {
		d.current = current{}
	}
	return egl.True
}

// QueryContext returns ConfigID, ContextClientType, ContextClientVersion
// or RenderBuffer of ctx.
func (d *Driver) QueryContext(dpy, ctx unsafe.Pointer, attribute egl.Int, value *egl.Int) egl.Boolean {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglQueryContext") {
		return egl.False
	}
	disp := d.initialized(dpy)
	if disp == nil {
		return egl.False
	}
	c := d.owned(disp, ctx, kindContext, egl.BadContext)
	if c == nil {
		return egl.False
	}
	switch attribute {
	case egl.ConfigID, egl.ContextClientType, egl.ContextClientVersion, egl.RenderBuffer:
		*value = c.attrs[attribute]
		return egl.True
	}
	d.setError(egl.BadAttribute)
	return egl.False
}

// MakeCurrent binds ctx with draw and read. Surfaceless binding is
// allowed (EGL_KHR_surfaceless_context).
func (d *Driver) MakeCurrent(dpy, draw, read, ctx unsafe.Pointer) egl.Boolean {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglMakeCurrent") {
		return egl.False
	}
	if ctx == nil {
		if draw != nil || read != nil {
			d.setError(egl.BadMatch)
			return egl.False
		}
		d.current = current{}
		return egl.True
	}
	disp := d.initialized(dpy)
	if disp == nil {
		return egl.False
	}
	c := d.owned(disp, ctx, kindContext, egl.BadContext)
	if c == nil {
		return egl.False
	}
	if (draw == nil) != (read == nil) {
		d.setError(egl.BadMatch)
		return egl.False
	}
	var ds, rs *object
	if draw != nil {
		if ds = d.owned(disp, draw, kindSurface, egl.BadSurface); ds == nil {
			return egl.False
		}
		if rs = d.owned(disp, read, kindSurface, egl.BadSurface); rs == nil {
			return egl.False
		}
		if ds.config.attrs[egl.ConfigID] != c.config.attrs[egl.ConfigID] {
			d.setError(egl.BadMatch)
			return egl.False
		}
	}
	d.current = current{dpy: disp, draw: ds, read: rs, ctx: c}
	return egl.True
}

// GetCurrentContext returns the current context or null.
func (d *Driver) GetCurrentContext() unsafe.Pointer {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.enter("eglGetCurrentContext")
	return handle(d.current.ctx)
}

// GetCurrentDisplay returns the display of the current context or null.
func (d *Driver) GetCurrentDisplay() unsafe.Pointer {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.enter("eglGetCurrentDisplay")
	return handle(d.current.dpy)
}

// GetCurrentSurface returns the current Draw or Read surface or null.
func (d *Driver) GetCurrentSurface(readdraw egl.Int) unsafe.Pointer {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.enter("eglGetCurrentSurface")
	switch readdraw {
	case egl.Draw:
		return handle(d.current.draw)
	case egl.Read:
		return handle(d.current.read)
	}
	d.setError(egl.BadParameter)
	return nil
}
