//go:build conformance && linux && !cgo

// The conformance tests compare the purego backend with the goffi EGL
// loader of gogpu/wgpu on the machine's real driver. Both load the same
// libEGL, so handles and strings must agree exactly.
//
//	CGO_ENABLED=0 go test -tags conformance ./backend/dynamic

package dynamic_test

import (
	"errors"
	"runtime"
	"testing"

	wegl "github.com/gogpu/wgpu/hal/gles/egl"

	"github.com/gogpu/egl"
	"github.com/gogpu/egl/backend/dynamic"
)

// setup returns both bindings with the same display initialized. The test
// goroutine stays locked to its thread so both read the same register.
func setup(t *testing.T) (*egl.Instance, egl.Display, wegl.EGLDisplay) {
	t.Helper()
	runtime.LockOSThread()
	t.Cleanup(runtime.UnlockOSThread)

	if err := wegl.Init(); err != nil {
		t.Skipf("reference loader: %v", err)
	}
	b, err := dynamic.OpenDefault()
	if err != nil {
		t.Skipf("OpenDefault() = %v", err)
	}
	t.Cleanup(func() { _ = b.Close() })
	inst := egl.NewInstance(b)

	var (
		dpy egl.Display
		ref wegl.EGLDisplay
	)
	if wegl.HasSurfacelessSupport() {
		ref = wegl.GetPlatformDisplay(wegl.PlatformSurfacelessMesa, 0, nil)
		dpy, err = inst.GetPlatformDisplay(egl.PlatformSurfacelessMESA, nil, egl.Attribs())
		if err != nil {
			t.Fatalf("GetPlatformDisplay(surfaceless) = %v", err)
		}
	} else {
		ref = wegl.GetDisplay(wegl.DefaultDisplay)
		var ok bool
		if dpy, ok = inst.GetDisplay(egl.DefaultDisplay); !ok {
			t.Skip("no default display")
		}
	}
	if uintptr(dpy.Ptr()) != uintptr(ref) {
		t.Fatalf("display = %p, reference %#x", dpy.Ptr(), uintptr(ref))
	}

	var major, minor wegl.EGLInt
	if wegl.Initialize(ref, &major, &minor) == wegl.False {
		t.Skipf("reference eglInitialize failed: %#x", wegl.GetError())
	}
	v, err := inst.Initialize(dpy)
	if err != nil {
		t.Fatalf("Initialize() = %v", err)
	}
	if v.Major != int(major) || v.Minor != int(minor) {
		t.Errorf("Initialize() = %v, reference %d.%d", v, major, minor)
	}
	t.Cleanup(func() { _ = inst.Terminate(dpy) })
	return inst, dpy, ref
}

func TestClientExtensions(t *testing.T) {
	inst, _, _ := setup(t)
	got, err := inst.QueryString(egl.NoDisplay, egl.Extensions)
	if err != nil {
		t.Fatalf("QueryString(NoDisplay, Extensions) = %v", err)
	}
	if want := wegl.QueryClientExtensions(); got != want {
		t.Errorf("client extensions = %q, reference %q", got, want)
	}
	ok, err := inst.HasExtension(egl.NoDisplay, "EGL_MESA_platform_surfaceless")
	if err != nil || ok != wegl.HasSurfacelessSupport() {
		t.Errorf("HasExtension(surfaceless) = %v, %v, reference %v", ok, err, wegl.HasSurfacelessSupport())
	}
}

func TestDisplayStrings(t *testing.T) {
	inst, dpy, ref := setup(t)
	for _, name := range []egl.Int{egl.Vendor, egl.VersionString, egl.Extensions, egl.ClientAPIs} {
		got, err := inst.QueryString(dpy, name)
		if err != nil {
			t.Errorf("QueryString(%#x) = %v", name, err)
			continue
		}
		if want := wegl.QueryString(ref, wegl.EGLInt(name)); got != want {
			t.Errorf("QueryString(%#x) = %q, reference %q", name, got, want)
		}
	}
}

func TestChooseConfig(t *testing.T) {
	inst, dpy, ref := setup(t)
	kv := []egl.Int{
		egl.SurfaceType, egl.PbufferBit,
		egl.RenderableType, egl.OpenGLES2Bit,
		egl.RedSize, 8, egl.GreenSize, 8, egl.BlueSize, 8,
	}

	configs, err := inst.ChooseConfigs(dpy, egl.Ints(kv...))
	if err != nil {
		t.Fatalf("ChooseConfigs() = %v", err)
	}

	refAttribs := make([]wegl.EGLInt, 0, len(kv)+1)
	for _, v := range kv {
		refAttribs = append(refAttribs, wegl.EGLInt(v))
	}
	refAttribs = append(refAttribs, wegl.None)
	refConfigs := make([]wegl.EGLConfig, max(len(configs), 1))
	var n wegl.EGLInt
	if wegl.ChooseConfig(ref, &refAttribs[0], &refConfigs[0], wegl.EGLInt(len(refConfigs)), &n) == wegl.False {
		t.Fatalf("reference eglChooseConfig failed: %#x", wegl.GetError())
	}
	if int(n) != len(configs) {
		t.Fatalf("ChooseConfigs() = %d configs, reference %d", len(configs), n)
	}

	attrs := []egl.Int{egl.ConfigID, egl.BufferSize, egl.DepthSize, egl.StencilSize, egl.Samples, egl.SurfaceType, egl.RenderableType}
	for i, cfg := range configs {
		if uintptr(cfg.Ptr()) != uintptr(refConfigs[i]) {
			t.Errorf("config %d = %p, reference %#x", i, cfg.Ptr(), uintptr(refConfigs[i]))
			continue
		}
		for _, a := range attrs {
			got, err := inst.GetConfigAttrib(dpy, cfg, a)
			var want wegl.EGLInt
			wegl.GetConfigAttrib(ref, refConfigs[i], wegl.EGLInt(a), &want)
			if err != nil || got != egl.Int(want) {
				t.Errorf("config %d attribute %#x = %d, %v, reference %d", i, a, got, err, want)
			}
		}
	}
}

func TestErrorRegister(t *testing.T) {
	inst, dpy, ref := setup(t)
	cfg, ok, err := inst.ChooseFirstConfig(dpy, egl.Ints(egl.SurfaceType, egl.PbufferBit))
	if err != nil || !ok {
		t.Skipf("no pbuffer config: %v", err)
	}

	var v wegl.EGLInt
	if wegl.GetConfigAttrib(ref, wegl.EGLConfig(uintptr(cfg.Ptr())), wegl.Vendor, &v) != wegl.False {
		t.Skip("driver accepts EGL_VENDOR as a config attribute")
	}
	want := wegl.GetError()

	_, err = inst.GetConfigAttrib(dpy, cfg, egl.Vendor)
	var e egl.Error
	if !errors.As(err, &e) || e.Native() != egl.Int(want) {
		t.Errorf("GetConfigAttrib(Vendor) = %v, reference code %#x", err, want)
	}
	if err := inst.GetError(); err != nil {
		t.Errorf("GetError() after drained failure = %v", err)
	}
	if code := wegl.GetError(); code != wegl.Success {
		t.Errorf("reference register after drain = %#x, want EGL_SUCCESS", code)
	}
}

func TestProcAddress(t *testing.T) {
	inst, _, _ := setup(t)
	for _, name := range []string{"glClear", "glReadPixels", "eglCreateImageKHR"} {
		got, _ := inst.GetProcAddress(name)
		if want := wegl.GetProcAddress(name); uintptr(got) != want {
			t.Errorf("GetProcAddress(%s) = %p, reference %#x", name, got, want)
		}
	}
}
