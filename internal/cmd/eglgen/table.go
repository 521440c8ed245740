package main

// param is one argument of a native entry point. kind selects the Go type
// and the cgo conversion (see kinds).
type param struct {
	name, kind string
}

// entry is one native EGL function, named without its egl prefix.
type entry struct {
	name   string
	since  string // "10" for EGL 1.0, ..., "15" for EGL 1.5
	params []param
	result string
	// fail is the expression over the result r that signals failure, or
	// empty when the return value carries no failure sentinel.
	fail string
}

func p(name, kind string) param { return param{name, kind} }

const (
	failFalse = "r == egl.False"
	failNil   = "r == nil"
	failZero  = "r == 0"
)

// entries is the single source for the Backend interface and every
// implementation generated from it. Keep it in EGL header order per version.
var entries = []entry{
	// EGL 1.0
	{"ChooseConfig", "10", []param{p("dpy", "display"), p("attribList", "intptr"), p("configs", "configptr"), p("configSize", "int"), p("numConfig", "intptr")}, "boolean", failFalse},
	{"CopyBuffers", "10", []param{p("dpy", "display"), p("surface", "surface"), p("target", "nativepixmap")}, "boolean", failFalse},
	{"CreateContext", "10", []param{p("dpy", "display"), p("config", "config"), p("shareContext", "context"), p("attribList", "intptr")}, "handle", failNil},
	{"CreatePbufferSurface", "10", []param{p("dpy", "display"), p("config", "config"), p("attribList", "intptr")}, "handle", failNil},
	{"CreatePixmapSurface", "10", []param{p("dpy", "display"), p("config", "config"), p("pixmap", "nativepixmap"), p("attribList", "intptr")}, "handle", failNil},
	{"CreateWindowSurface", "10", []param{p("dpy", "display"), p("config", "config"), p("win", "nativewindow"), p("attribList", "intptr")}, "handle", failNil},
	{"DestroyContext", "10", []param{p("dpy", "display"), p("ctx", "context")}, "boolean", failFalse},
	{"DestroySurface", "10", []param{p("dpy", "display"), p("surface", "surface")}, "boolean", failFalse},
	{"GetConfigAttrib", "10", []param{p("dpy", "display"), p("config", "config"), p("attribute", "int"), p("value", "intptr")}, "boolean", failFalse},
	{"GetConfigs", "10", []param{p("dpy", "display"), p("configs", "configptr"), p("configSize", "int"), p("numConfig", "intptr")}, "boolean", failFalse},
	{"GetCurrentDisplay", "10", nil, "handle", ""},
	{"GetCurrentSurface", "10", []param{p("readdraw", "int")}, "handle", ""},
	{"GetDisplay", "10", []param{p("displayID", "nativedisplay")}, "handle", failNil},
	{"GetError", "10", nil, "int", ""},
	{"GetProcAddress", "10", []param{p("procname", "cstring")}, "proc", failNil},
	{"Initialize", "10", []param{p("dpy", "display"), p("major", "intptr"), p("minor", "intptr")}, "boolean", failFalse},
	{"MakeCurrent", "10", []param{p("dpy", "display"), p("draw", "surface"), p("read", "surface"), p("ctx", "context")}, "boolean", failFalse},
	{"QueryContext", "10", []param{p("dpy", "display"), p("ctx", "context"), p("attribute", "int"), p("value", "intptr")}, "boolean", failFalse},
	{"QueryString", "10", []param{p("dpy", "display"), p("name", "int")}, "cstring", failNil},
	{"QuerySurface", "10", []param{p("dpy", "display"), p("surface", "surface"), p("attribute", "int"), p("value", "intptr")}, "boolean", failFalse},
	{"SwapBuffers", "10", []param{p("dpy", "display"), p("surface", "surface")}, "boolean", failFalse},
	{"Terminate", "10", []param{p("dpy", "display")}, "boolean", failFalse},
	{"WaitGL", "10", nil, "boolean", failFalse},
	{"WaitNative", "10", []param{p("engine", "int")}, "boolean", failFalse},

	// EGL 1.1
	{"BindTexImage", "11", []param{p("dpy", "display"), p("surface", "surface"), p("buffer", "int")}, "boolean", failFalse},
	{"ReleaseTexImage", "11", []param{p("dpy", "display"), p("surface", "surface"), p("buffer", "int")}, "boolean", failFalse},
	{"SurfaceAttrib", "11", []param{p("dpy", "display"), p("surface", "surface"), p("attribute", "int"), p("value", "int")}, "boolean", failFalse},
	{"SwapInterval", "11", []param{p("dpy", "display"), p("interval", "int")}, "boolean", failFalse},

	// EGL 1.2
	{"BindAPI", "12", []param{p("api", "enum")}, "boolean", failFalse},
	{"QueryAPI", "12", nil, "enum", ""},
	{"CreatePbufferFromClientBuffer", "12", []param{p("dpy", "display"), p("buftype", "enum"), p("buffer", "clientbuffer"), p("config", "config"), p("attribList", "intptr")}, "handle", failNil},
	{"ReleaseThread", "12", nil, "boolean", failFalse},
	{"WaitClient", "12", nil, "boolean", failFalse},

	// EGL 1.4
	{"GetCurrentContext", "14", nil, "handle", ""},

	// EGL 1.5
	{"CreateSync", "15", []param{p("dpy", "display"), p("typ", "enum"), p("attribList", "attribptr")}, "handle", failNil},
	{"DestroySync", "15", []param{p("dpy", "display"), p("sync", "sync")}, "boolean", failFalse},
	{"ClientWaitSync", "15", []param{p("dpy", "display"), p("sync", "sync"), p("flags", "int"), p("timeout", "time")}, "int", failZero},
	{"GetSyncAttrib", "15", []param{p("dpy", "display"), p("sync", "sync"), p("attribute", "int"), p("value", "attribptr")}, "boolean", failFalse},
	{"CreateImage", "15", []param{p("dpy", "display"), p("ctx", "context"), p("target", "enum"), p("buffer", "clientbuffer"), p("attribList", "attribptr")}, "handle", failNil},
	{"DestroyImage", "15", []param{p("dpy", "display"), p("image", "image")}, "boolean", failFalse},
	{"GetPlatformDisplay", "15", []param{p("platform", "enum"), p("nativeDisplay", "voidptr"), p("attribList", "attribptr")}, "handle", failNil},
	{"CreatePlatformWindowSurface", "15", []param{p("dpy", "display"), p("config", "config"), p("nativeWindow", "voidptr"), p("attribList", "attribptr")}, "handle", failNil},
	{"CreatePlatformPixmapSurface", "15", []param{p("dpy", "display"), p("config", "config"), p("nativePixmap", "voidptr"), p("attribList", "attribptr")}, "handle", failNil},
	{"WaitSync", "15", []param{p("dpy", "display"), p("sync", "sync"), p("flags", "int")}, "boolean", failFalse},
}

// kind maps a table kind to its Go type (qualified for use outside package
// egl) and the format of its cgo conversion.
type kind struct {
	goType string
	cConv  string
}

var kinds = map[string]kind{
	"display":       {"unsafe.Pointer", "C.EGLDisplay(%s)"},
	"config":        {"unsafe.Pointer", "C.EGLConfig(%s)"},
	"context":       {"unsafe.Pointer", "C.EGLContext(%s)"},
	"surface":       {"unsafe.Pointer", "C.EGLSurface(%s)"},
	"sync":          {"unsafe.Pointer", "C.EGLSync(%s)"},
	"image":         {"unsafe.Pointer", "C.EGLImage(%s)"},
	"clientbuffer":  {"unsafe.Pointer", "C.EGLClientBuffer(%s)"},
	"voidptr":       {"unsafe.Pointer", "%s"},
	"nativedisplay": {"egl.NativeDisplayType", "C.EGLNativeDisplayType(%s)"},
	"nativewindow":  {"egl.NativeWindowType", "C.EGLNativeWindowType(%s)"},
	"nativepixmap":  {"egl.NativePixmapType", "C.EGLNativePixmapType(%s)"},
	"int":           {"egl.Int", "C.EGLint(%s)"},
	"enum":          {"egl.Enum", "C.EGLenum(%s)"},
	"time":          {"egl.Time", "C.EGLTime(%s)"},
	"intptr":        {"*egl.Int", "(*C.EGLint)(unsafe.Pointer(%s))"},
	"attribptr":     {"*egl.Attrib", "(*C.EGLAttrib)(unsafe.Pointer(%s))"},
	"configptr":     {"*unsafe.Pointer", "(*C.EGLConfig)(unsafe.Pointer(%s))"},
	"cstring":       {"*byte", "(*C.char)(unsafe.Pointer(%s))"},
}

// results maps a result kind to its Go type and the conversion applied to
// the value returned by cgo.
var results = map[string]kind{
	"boolean": {"egl.Boolean", "egl.Boolean(%s)"},
	"handle":  {"unsafe.Pointer", "unsafe.Pointer(%s)"},
	"int":     {"egl.Int", "egl.Int(%s)"},
	"enum":    {"egl.Enum", "egl.Enum(%s)"},
	"cstring": {"*byte", "(*byte)(unsafe.Pointer(%s))"},
	"proc":    {"unsafe.Pointer", "unsafe.Pointer(%s)"},
}
