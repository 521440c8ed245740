package egltest

import (
	"unsafe"

	"github.com/gogpu/egl"
)

// DisplayHandle returns the raw handle of the driver's display.
func (d *Driver) DisplayHandle() unsafe.Pointer { return handle(d.dpy) }

// GetDisplay maps EGL_DEFAULT_DISPLAY to the driver's display. Any other
// native display is unknown and yields a null display without an error.
func (d *Driver) GetDisplay(displayID egl.NativeDisplayType) unsafe.Pointer {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglGetDisplay") {
		return nil
	}
	d.lastNativeID = displayID
	if displayID != egl.DefaultDisplay {
		return nil
	}
	return handle(d.dpy)
}

// GetPlatformDisplay accepts the surfaceless and device platforms.
func (d *Driver) GetPlatformDisplay(platform egl.Enum, nativeDisplay unsafe.Pointer, attribList *egl.Attrib) unsafe.Pointer {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglGetPlatformDisplay") {
		return nil
	}
	d.lastAttribs["eglGetPlatformDisplay"] = readAttribList(attribList)
	switch platform {
	case egl.PlatformSurfacelessMESA, egl.PlatformDeviceEXT:
		return handle(d.dpy)
	}
	d.setError(egl.BadParameter)
	return nil
}

// Initialize marks dpy initialized and reports the display version.
func (d *Driver) Initialize(dpy unsafe.Pointer, major, minor *egl.Int) egl.Boolean {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglInitialize") {
		return egl.False
	}
	o := d.lookup(dpy, kindDisplay)
	if o == nil {
		d.setError(egl.BadDisplay)
		return egl.False
	}
	o.display.initialized = true
	if major != nil {
		*major = egl.Int(d.displayVersion.Major)
	}
	if minor != nil {
		*minor = egl.Int(d.displayVersion.Minor)
	}
	return egl.True
}

// Terminate marks dpy uninitialized and destroys its contexts, surfaces,
// syncs and images.
func (d *Driver) Terminate(dpy unsafe.Pointer) egl.Boolean {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglTerminate") {
		return egl.False
	}
	o := d.lookup(dpy, kindDisplay)
	if o == nil {
		d.setError(egl.BadDisplay)
		return egl.False
	}
	o.display.initialized = false
	for _, obj := range d.objects {
		if obj.owner == o && obj.kind != kindConfig {
			d.free(obj)
		}
	}
	if d.current.dpy == o {
		d.current = current{}
	}
	return egl.True
}

// QueryString answers Vendor, VersionString, Extensions and ClientAPIs.
// With a null display only Extensions is accepted and returns the client
// extensions.
func (d *Driver) QueryString(dpy unsafe.Pointer, name egl.Int) *byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglQueryString") {
		return nil
	}
	if dpy == nil {
		if name != egl.Extensions {
			d.setError(egl.BadDisplay)
			return nil
		}
		return cstr(d.clientExts)
	}
	if d.initialized(dpy) == nil {
		return nil
	}
	switch name {
	case egl.Vendor:
		return cstr(d.vendor)
	case egl.VersionString:
		return cstr(d.displayVersion.String() + " egltest")
	case egl.Extensions:
		return cstr(d.displayExts)
	case egl.ClientAPIs:
		return cstr("OpenGL OpenGL_ES")
	}
	d.setError(egl.BadParameter)
	return nil
}

// cstr returns a NUL-terminated copy of s. The copy is never freed,
// matching the static lifetime of EGL strings.
func cstr(s string) *byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return &b[0]
}

var procAddrs [64]byte

// GetProcAddress resolves the names configured with WithProcs to non-null
// addresses that must never be called.
func (d *Driver) GetProcAddress(procname *byte) unsafe.Pointer {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglGetProcAddress") {
		return nil
	}
	name := goString(procname)
	if !d.procs[name] {
		return nil
	}
	var h uint8
	for i := 0; i < len(name); i++ {
		h = h*31 + name[i]
	}
	return unsafe.Pointer(&procAddrs[h%uint8(len(procAddrs))])
}

// BindAPI sets the current API. OpenVG is not supported.
func (d *Driver) BindAPI(api egl.Enum) egl.Boolean {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglBindAPI") {
		return egl.False
	}
	switch api {
	case egl.OpenGLESAPI, egl.OpenGLAPI:
		d.api = api
		return egl.True
	}
	d.setError(egl.BadParameter)
	return egl.False
}

// QueryAPI returns the current API.
func (d *Driver) QueryAPI() egl.Enum {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.enter("eglQueryAPI")
	return d.api
}

// ReleaseThread resets the API and releases the current context.
func (d *Driver) ReleaseThread() egl.Boolean {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglReleaseThread") {
		return egl.False
	}
	d.api = egl.OpenGLESAPI
	d.current = current{}
	return egl.True
}

// WaitGL always succeeds.
func (d *Driver) WaitGL() egl.Boolean {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglWaitGL") {
		return egl.False
	}
	return egl.True
}

// WaitClient always succeeds.
func (d *Driver) WaitClient() egl.Boolean {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglWaitClient") {
		return egl.False
	}
	return egl.True
}

// WaitNative accepts only CoreNativeEngine.
func (d *Driver) WaitNative(engine egl.Int) egl.Boolean {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglWaitNative") {
		return egl.False
	}
	if engine != egl.CoreNativeEngine {
		d.setError(egl.BadParameter)
		return egl.False
	}
	return egl.True
}
