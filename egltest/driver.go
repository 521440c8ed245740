// Package egltest provides an in-memory EGL driver for tests.
//
// A Driver implements egl.Backend without any native library. It keeps a
// single error register, enumerates a configurable set of configs, and
// records every call so tests can check what reached the driver:
//
//	d := egltest.New()
//	inst := egl.NewInstance(d)
//	dpy, _ := inst.GetDisplay(egl.DefaultDisplay)
//	inst.Initialize(dpy)
//	...
//	if d.Calls("eglChooseConfig") != 0 { ... }
//
// Handles returned by the driver point at driver-owned Go memory and are
// only meaningful to the Driver that created them.
package egltest

import (
	"sync"
	"unsafe"

	"github.com/gogpu/egl"
)

// Driver is an in-memory egl.Backend. The zero value is not usable; call
// New.
type Driver struct {
	mu sync.Mutex

	version        egl.Version
	displayVersion egl.Version
	vendor         string
	clientExts     string
	displayExts    string
	configSpecs    []ConfigSpec
	procs          map[string]bool

	errCode egl.Int
	calls   map[string]int
	fail    map[string]egl.Int

	lastShare    unsafe.Pointer
	lastInts     map[string]egl.IntList
	lastAttribs  map[string]egl.AttribList
	lastNativeID egl.NativeDisplayType

	objects map[unsafe.Pointer]*object
	dpy     *object
	api     egl.Enum
	current current

	holdFences bool
}

type current struct {
	dpy, draw, read, ctx *object
}

// Option configures New.
type Option func(*Driver)

// WithVersion sets the EGL version the driver reports as bound through
// Backend.Version. The default is 1.5.
func WithVersion(v egl.Version) Option {
	return func(d *Driver) { d.version = v }
}

// WithDisplayVersion sets the version eglInitialize reports. The default
// is 1.5.
func WithDisplayVersion(v egl.Version) Option {
	return func(d *Driver) { d.displayVersion = v }
}

// WithConfigs replaces the default configs.
func WithConfigs(specs ...ConfigSpec) Option {
	return func(d *Driver) { d.configSpecs = specs }
}

// WithExtensions sets the display and client extension strings.
func WithExtensions(display, client string) Option {
	return func(d *Driver) {
		d.displayExts = display
		d.clientExts = client
	}
}

// WithProcs sets the function names eglGetProcAddress resolves.
func WithProcs(names ...string) Option {
	return func(d *Driver) {
		d.procs = make(map[string]bool, len(names))
		for _, n := range names {
			d.procs[n] = true
		}
	}
}

// New returns a Driver with one default display and DefaultConfigs.
func New(opts ...Option) *Driver {
	d := &Driver{
		version:        egl.Version15,
		displayVersion: egl.Version15,
		vendor:         "egltest",
		clientExts:     "EGL_EXT_client_extensions EGL_EXT_platform_base EGL_MESA_platform_surfaceless",
		displayExts:    "EGL_KHR_surfaceless_context EGL_KHR_create_context EGL_KHR_fence_sync",
		configSpecs:    DefaultConfigs(),
		calls:          make(map[string]int),
		fail:           make(map[string]egl.Int),
		lastInts:       make(map[string]egl.IntList),
		lastAttribs:    make(map[string]egl.AttribList),
		objects:        make(map[unsafe.Pointer]*object),
		errCode:        egl.Success,
		api:            egl.OpenGLESAPI,
	}
	WithProcs("glClear", "glClearColor", "glReadPixels", "glGetString", "glFinish")(d)
	for _, opt := range opts {
		opt(d)
	}
	d.dpy = d.newObject(kindDisplay, nil)
	d.dpy.display = &displayState{}
	for i, spec := range d.configSpecs {
		cfg := d.newObject(kindConfig, d.dpy)
		cfg.attrs = spec.withID(egl.Int(i + 1))
		d.dpy.display.configs = append(d.dpy.display.configs, cfg)
	}
	return d
}

// Version reports the version configured with WithVersion.
func (d *Driver) Version() egl.Version { return d.version }

// FailNext makes the next call to the named entry point (e.g.
// "eglCreateContext") return its failure sentinel and load code into the
// error register. A code of egl.Success fails without reporting an error.
func (d *Driver) FailNext(fn string, code egl.Int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fail[fn] = code
}

// SetError loads code into the error register, as if a call had failed.
func (d *Driver) SetError(code egl.Int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.errCode = code
}

// Calls returns how many times the named entry point was called.
func (d *Driver) Calls(fn string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls[fn]
}

// TotalCalls returns the number of calls to all entry points.
func (d *Driver) TotalCalls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, c := range d.calls {
		n += c
	}
	return n
}

// LastShareContext returns the share context passed to the last
// eglCreateContext call.
func (d *Driver) LastShareContext() unsafe.Pointer {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastShare
}

// LastIntList returns the attribute list, terminator included, passed to
// the last call of the named legacy entry point. A null list yields nil.
func (d *Driver) LastIntList(fn string) egl.IntList {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastInts[fn]
}

// LastAttribList returns the attribute list passed to the last call of the
// named EGL 1.5 entry point.
func (d *Driver) LastAttribList(fn string) egl.AttribList {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastAttribs[fn]
}

// Live returns the number of live contexts, surfaces, syncs and images.
func (d *Driver) Live() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, o := range d.objects {
		switch o.kind {
		case kindContext, kindSurface, kindSync, kindImage:
			n++
		}
	}
	return n
}

// enter records a call to fn. It reports true when a failure was injected
// for fn; the register is then already loaded. The caller holds d.mu.
func (d *Driver) enter(fn string) bool {
	d.calls[fn]++
	if code, ok := d.fail[fn]; ok {
		delete(d.fail, fn)
		d.errCode = code
		return true
	}
	return false
}

// setError loads the register. The caller holds d.mu.
func (d *Driver) setError(code egl.Int) { d.errCode = code }

// GetError returns and clears the error register.
func (d *Driver) GetError() egl.Int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls["eglGetError"]++
	code := d.errCode
	d.errCode = egl.Success
	return code
}

// maxListLen bounds the scan for a terminator in recorded lists.
const maxListLen = 256

func readIntList(p *egl.Int) egl.IntList {
	if p == nil {
		return nil
	}
	var l egl.IntList
	for i := 0; i < maxListLen; i++ {
		v := *(*egl.Int)(unsafe.Add(unsafe.Pointer(p), uintptr(i)*unsafe.Sizeof(*p)))
		l = append(l, v)
		if v == egl.None {
			break
		}
	}
	return l
}

func readAttribList(p *egl.Attrib) egl.AttribList {
	if p == nil {
		return nil
	}
	var l egl.AttribList
	for i := 0; i < maxListLen; i++ {
		v := *(*egl.Attrib)(unsafe.Add(unsafe.Pointer(p), uintptr(i)*unsafe.Sizeof(*p)))
		l = append(l, v)
		if v == egl.AttribNone {
			break
		}
	}
	return l
}

func goString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

var _ egl.Backend = (*Driver)(nil)
