package egltest

import (
	"unsafe"

	"github.com/gogpu/egl"
)

// createSurface validates the config and list shared by every surface
// constructor. The caller holds d.mu.
func (d *Driver) createSurface(dpy, config unsafe.Pointer, typ egl.Int, list map[egl.Int]egl.Int) unsafe.Pointer {
	disp := d.initialized(dpy)
	if disp == nil {
		return nil
	}
	cfg := d.owned(disp, config, kindConfig, egl.BadConfig)
	if cfg == nil {
		return nil
	}
	if cfg.attrs[egl.SurfaceType]&typ == 0 {
		d.setError(egl.BadMatch)
		return nil
	}
	s := d.newObject(kindSurface, disp)
	s.config = cfg
	s.surface = typ
	s.attrs[egl.ConfigID] = cfg.attrs[egl.ConfigID]
	s.attrs[egl.SwapBehavior] = egl.BufferDestroyed
	s.attrs[egl.RenderBuffer] = egl.BackBuffer
	s.attrs[egl.TextureFormat] = egl.NoTexture
	s.attrs[egl.TextureTarget] = egl.NoTexture
	s.attrs[egl.Width] = 0
	s.attrs[egl.Height] = 0
	if typ == egl.WindowBit {
		s.attrs[egl.Width] = 640
		s.attrs[egl.Height] = 480
	}
	for k, v := range list {
		s.attrs[k] = v
	}
	return handle(s)
}

var surfaceKeys = map[egl.Int]bool{
	egl.Width: true, egl.Height: true, egl.LargestPbuffer: true,
	egl.TextureFormat: true, egl.TextureTarget: true, egl.MipmapTexture: true,
	egl.RenderBuffer: true, egl.Colorspace: true, egl.AlphaFormat: true,
	egl.GLColorspace: true,
}

func pairs(list []int64, none int64) (map[egl.Int]egl.Int, bool) {
	m := make(map[egl.Int]egl.Int)
	for i := 0; i+1 < len(list) && list[i] != none; i += 2 {
		k := egl.Int(list[i])
		if !surfaceKeys[k] {
			return nil, false
		}
		m[k] = egl.Int(list[i+1])
	}
	return m, true
}

func intPairs(l egl.IntList) (map[egl.Int]egl.Int, bool) {
	wide := make([]int64, len(l))
	for i, v := range l {
		wide[i] = int64(v)
	}
	return pairs(wide, egl.None)
}

func attribPairs(l egl.AttribList) (map[egl.Int]egl.Int, bool) {
	wide := make([]int64, len(l))
	for i, v := range l {
		wide[i] = int64(v)
	}
	return pairs(wide, int64(egl.AttribNone))
}

// CreateWindowSurface creates a 640x480 window surface. win must be
// non-zero; a null attribute list is accepted.
func (d *Driver) CreateWindowSurface(dpy, config unsafe.Pointer, win egl.NativeWindowType, attribList *egl.Int) unsafe.Pointer {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglCreateWindowSurface") {
		return nil
	}
	list := readIntList(attribList)
	d.lastInts["eglCreateWindowSurface"] = list
	if win == 0 {
		d.setError(egl.BadNativeWindow)
		return nil
	}
	attrs, ok := intPairs(list)
	if !ok {
		d.setError(egl.BadAttribute)
		return nil
	}
	return d.createSurface(dpy, config, egl.WindowBit, attrs)
}

// CreatePixmapSurface creates a pixmap surface. pixmap must be non-zero.
func (d *Driver) CreatePixmapSurface(dpy, config unsafe.Pointer, pixmap egl.NativePixmapType, attribList *egl.Int) unsafe.Pointer {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglCreatePixmapSurface") {
		return nil
	}
	list := readIntList(attribList)
	d.lastInts["eglCreatePixmapSurface"] = list
	if pixmap == 0 {
		d.setError(egl.BadNativePixmap)
		return nil
	}
	attrs, ok := intPairs(list)
	if !ok {
		d.setError(egl.BadAttribute)
		return nil
	}
	return d.createSurface(dpy, config, egl.PixmapBit, attrs)
}

// CreatePbufferSurface creates a pbuffer of the requested Width and Height.
func (d *Driver) CreatePbufferSurface(dpy, config unsafe.Pointer, attribList *egl.Int) unsafe.Pointer {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglCreatePbufferSurface") {
		return nil
	}
	list := readIntList(attribList)
	d.lastInts["eglCreatePbufferSurface"] = list
	attrs, ok := intPairs(list)
	if !ok {
		d.setError(egl.BadAttribute)
		return nil
	}
	if attrs[egl.Width] < 0 || attrs[egl.Height] < 0 {
		d.setError(egl.BadParameter)
		return nil
	}
	return d.createSurface(dpy, config, egl.PbufferBit, attrs)
}

// CreatePbufferFromClientBuffer only knows OpenVG images, which the driver
// cannot provide, so it always fails.
func (d *Driver) CreatePbufferFromClientBuffer(dpy unsafe.Pointer, buftype egl.Enum, buffer, config unsafe.Pointer, attribList *egl.Int) unsafe.Pointer {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglCreatePbufferFromClientBuffer") {
		return nil
	}
	d.lastInts["eglCreatePbufferFromClientBuffer"] = readIntList(attribList)
	if d.initialized(dpy) == nil {
		return nil
	}
	if buftype != egl.OpenVGImage {
		d.setError(egl.BadParameter)
		return nil
	}
	d.setError(egl.BadAccess)
	return nil
}

// CreatePlatformWindowSurface creates a window surface for a non-null
// native window pointer.
func (d *Driver) CreatePlatformWindowSurface(dpy, config, nativeWindow unsafe.Pointer, attribList *egl.Attrib) unsafe.Pointer {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglCreatePlatformWindowSurface") {
		return nil
	}
	list := readAttribList(attribList)
	d.lastAttribs["eglCreatePlatformWindowSurface"] = list
	if nativeWindow == nil {
		d.setError(egl.BadNativeWindow)
		return nil
	}
	attrs, ok := attribPairs(list)
	if !ok {
		d.setError(egl.BadAttribute)
		return nil
	}
	return d.createSurface(dpy, config, egl.WindowBit, attrs)
}

// CreatePlatformPixmapSurface creates a pixmap surface for a non-null
// native pixmap pointer.
func (d *Driver) CreatePlatformPixmapSurface(dpy, config, nativePixmap unsafe.Pointer, attribList *egl.Attrib) unsafe.Pointer {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglCreatePlatformPixmapSurface") {
		return nil
	}
	list := readAttribList(attribList)
	d.lastAttribs["eglCreatePlatformPixmapSurface"] = list
	if nativePixmap == nil {
		d.setError(egl.BadNativePixmap)
		return nil
	}
	attrs, ok := attribPairs(list)
	if !ok {
		d.setError(egl.BadAttribute)
		return nil
	}
	return d.createSurface(dpy, config, egl.PixmapBit, attrs)
}

// surfaceOf resolves a surface of an initialized display. The caller holds
// d.mu.
func (d *Driver) surfaceOf(dpy, surface unsafe.Pointer) *object {
	disp := d.initialized(dpy)
	if disp == nil {
		return nil
	}
	return d.owned(disp, surface, kindSurface, egl.BadSurface)
}

// DestroySurface destroys surface.
func (d *Driver) DestroySurface(dpy, surface unsafe.Pointer) egl.Boolean {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglDestroySurface") {
		return egl.False
	}
	s := d.surfaceOf(dpy, surface)
	if s == nil {
		return egl.False
	}
	d.free(s)
	return egl.True
}

// QuerySurface returns a surface attribute.
func (d *Driver) QuerySurface(dpy, surface unsafe.Pointer, attribute egl.Int, value *egl.Int) egl.Boolean {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglQuerySurface") {
		return egl.False
	}
	s := d.surfaceOf(dpy, surface)
	if s == nil {
		return egl.False
	}
	v, ok := s.attrs[attribute]
	if !ok {
		d.setError(egl.BadAttribute)
		return egl.False
	}
	*value = v
	return egl.True
}

// SurfaceAttrib sets SwapBehavior, MipmapLevel or MultisampleResolve.
func (d *Driver) SurfaceAttrib(dpy, surface unsafe.Pointer, attribute, value egl.Int) egl.Boolean {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglSurfaceAttrib") {
		return egl.False
	}
	s := d.surfaceOf(dpy, surface)
	if s == nil {
		return egl.False
	}
	switch attribute {
	case egl.SwapBehavior:
		if value != egl.BufferPreserved && value != egl.BufferDestroyed {
			d.setError(egl.BadParameter)
			return egl.False
		}
	case egl.MipmapLevel, egl.MultisampleResolve:
	default:
		d.setError(egl.BadAttribute)
		return egl.False
	}
	s.attrs[attribute] = value
	return egl.True
}

// SwapBuffers succeeds for any valid surface; only window surfaces are
// counted as posted.
func (d *Driver) SwapBuffers(dpy, surface unsafe.Pointer) egl.Boolean {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglSwapBuffers") {
		return egl.False
	}
	s := d.surfaceOf(dpy, surface)
	if s == nil {
		return egl.False
	}
	if s.surface == egl.WindowBit {
		s.attrs[swapCount]++
	}
	return egl.True
}

// swapCount is a private surface attribute key counting posted frames.
const swapCount egl.Int = -0x1000

// Swaps returns how many frames were posted to the window surface s.
func (d *Driver) Swaps(s unsafe.Pointer) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	o := d.lookup(s, kindSurface)
	if o == nil {
		return 0
	}
	return int(o.attrs[swapCount])
}

// SwapInterval requires a current context and clamps to the config's
// interval range.
func (d *Driver) SwapInterval(dpy unsafe.Pointer, interval egl.Int) egl.Boolean {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglSwapInterval") {
		return egl.False
	}
	disp := d.initialized(dpy)
	if disp == nil {
		return egl.False
	}
	if d.current.ctx == nil {
		d.setError(egl.BadContext)
		return egl.False
	}
	cfg := d.current.ctx.config.attrs
	disp.display.interval = max(cfg[egl.MinSwapInterval], min(interval, cfg[egl.MaxSwapInterval]))
	return egl.True
}

// CopyBuffers requires a non-zero target pixmap.
func (d *Driver) CopyBuffers(dpy, surface unsafe.Pointer, target egl.NativePixmapType) egl.Boolean {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglCopyBuffers") {
		return egl.False
	}
	if d.surfaceOf(dpy, surface) == nil {
		return egl.False
	}
	if target == 0 {
		d.setError(egl.BadNativePixmap)
		return egl.False
	}
	return egl.True
}

func (d *Driver) texImage(fn string, dpy, surface unsafe.Pointer, buffer egl.Int) egl.Boolean {
	if d.enter(fn) {
		return egl.False
	}
	s := d.surfaceOf(dpy, surface)
	if s == nil {
		return egl.False
	}
	if buffer != egl.BackBuffer {
		d.setError(egl.BadParameter)
		return egl.False
	}
	if s.surface != egl.PbufferBit || s.attrs[egl.TextureFormat] == egl.NoTexture {
		d.setError(egl.BadMatch)
		return egl.False
	}
	return egl.True
}

// BindTexImage requires a pbuffer created with a TextureFormat.
func (d *Driver) BindTexImage(dpy, surface unsafe.Pointer, buffer egl.Int) egl.Boolean {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.texImage("eglBindTexImage", dpy, surface, buffer)
}

// ReleaseTexImage mirrors BindTexImage.
func (d *Driver) ReleaseTexImage(dpy, surface unsafe.Pointer, buffer egl.Int) egl.Boolean {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.texImage("eglReleaseTexImage", dpy, surface, buffer)
}
