package egl_test

import (
	"errors"
	"slices"
	"sync"
	"testing"
	"unsafe"

	"github.com/gogpu/egl"
	"github.com/gogpu/egl/egltest"
)

// newInstance returns an Instance over a fresh driver and its initialized
// default display.
func newInstance(t *testing.T, opts ...egltest.Option) (*egltest.Driver, *egl.Instance, egl.Display) {
	t.Helper()
	d := egltest.New(opts...)
	inst := egl.NewInstance(d)
	dpy, ok := inst.GetDisplay(egl.DefaultDisplay)
	if !ok {
		t.Fatal("GetDisplay(DefaultDisplay) ok = false")
	}
	if _, err := inst.Initialize(dpy); err != nil {
		t.Fatalf("Initialize() = %v", err)
	}
	return d, inst, dpy
}

// firstConfig returns the best config matching kv, or the best RGB888
// config when kv is empty.
func firstConfig(t *testing.T, inst *egl.Instance, dpy egl.Display, kv ...egl.Int) egl.Config {
	t.Helper()
	if len(kv) == 0 {
		kv = []egl.Int{egl.RedSize, 8, egl.GreenSize, 8, egl.BlueSize, 8}
	}
	cfg, ok, err := inst.ChooseFirstConfig(dpy, egl.Ints(kv...))
	if err != nil || !ok {
		t.Fatalf("ChooseFirstConfig() = %v, %v, %v", cfg, ok, err)
	}
	return cfg
}

func configID(t *testing.T, inst *egl.Instance, dpy egl.Display, cfg egl.Config) egl.Int {
	t.Helper()
	id, err := inst.GetConfigAttrib(dpy, cfg, egl.ConfigID)
	if err != nil {
		t.Fatalf("GetConfigAttrib(ConfigID) = %v", err)
	}
	return id
}

func TestChooseConfigScenario(t *testing.T) {
	_, inst, dpy := newInstance(t)
	attribs := egl.Ints(egl.RedSize, 8, egl.GreenSize, 8, egl.BlueSize, 8)

	n, err := inst.MatchingConfigCount(dpy, attribs)
	if err != nil || n != 2 {
		t.Fatalf("MatchingConfigCount() = %d, %v, want 2, nil", n, err)
	}

	configs := make([]egl.Config, 8)
	n, err = inst.ChooseConfig(dpy, attribs, configs)
	if err != nil || n != 2 {
		t.Fatalf("ChooseConfig() = %d, %v, want 2, nil", n, err)
	}
	if got := configID(t, inst, dpy, configs[0]); got != 1 {
		t.Errorf("best config ID = %d, want 1", got)
	}
	if got := configID(t, inst, dpy, configs[1]); got != 4 {
		t.Errorf("second config ID = %d, want 4", got)
	}
	if !configs[2].IsNil() {
		t.Errorf("configs[2] = %v, want untouched", configs[2])
	}

	all, err := inst.ChooseConfigs(dpy, attribs)
	if err != nil || len(all) != 2 || all[0] != configs[0] {
		t.Errorf("ChooseConfigs() = %v, %v, want %v", all, err, configs[:2])
	}
}

func TestChooseConfigEmptyBuffer(t *testing.T) {
	_, inst, dpy := newInstance(t)
	n, err := inst.ChooseConfig(dpy, egl.Ints(), nil)
	if err != nil || n != 0 {
		t.Errorf("ChooseConfig(nil buffer) = %d, %v, want 0, nil", n, err)
	}
}

func TestChooseFirstConfigNoMatch(t *testing.T) {
	_, inst, dpy := newInstance(t)
	cfg, ok, err := inst.ChooseFirstConfig(dpy, egl.Ints(egl.Samples, 16))
	if err != nil || ok || !cfg.IsNil() {
		t.Errorf("ChooseFirstConfig() = %v, %v, %v, want NoConfig, false, nil", cfg, ok, err)
	}
}

func TestChooseConfigBadAttribute(t *testing.T) {
	_, inst, dpy := newInstance(t)
	_, err := inst.MatchingConfigCount(dpy, egl.Ints(egl.Width, 8))
	if !errors.Is(err, egl.ErrBadAttribute) {
		t.Errorf("MatchingConfigCount(Width) = %v, want %v", err, egl.ErrBadAttribute)
	}
}

func TestAllConfigs(t *testing.T) {
	_, inst, dpy := newInstance(t)
	n, err := inst.GetConfigCount(dpy)
	if err != nil || n != 4 {
		t.Fatalf("GetConfigCount() = %d, %v, want 4", n, err)
	}
	all, err := inst.AllConfigs(dpy)
	if err != nil || len(all) != 4 {
		t.Fatalf("AllConfigs() = %v, %v", all, err)
	}
	for j, cfg := range all {
		if got := configID(t, inst, dpy, cfg); got != egl.Int(j+1) {
			t.Errorf("config %d ID = %d, want %d", j, got, j+1)
		}
	}
	two := make([]egl.Config, 2)
	if n, err := inst.GetConfigs(dpy, two); err != nil || n != 2 {
		t.Errorf("GetConfigs(len 2) = %d, %v, want 2", n, err)
	}
}

func TestMalformedListNeverReachesDriver(t *testing.T) {
	d, inst, dpy := newInstance(t)
	cfg := firstConfig(t, inst, dpy)
	before := d.TotalCalls()

	unterminated := egl.IntList{egl.RedSize, 8}
	tests := []struct {
		fn   string
		call func() error
	}{
		{"eglChooseConfig", func() error {
			_, err := inst.ChooseConfig(dpy, unterminated, make([]egl.Config, 1))
			return err
		}},
		{"eglChooseConfig", func() error {
			_, err := inst.MatchingConfigCount(dpy, nil)
			return err
		}},
		{"eglCreateContext", func() error {
			_, err := inst.CreateContext(dpy, cfg, egl.NoContext, unterminated)
			return err
		}},
		{"eglCreatePbufferSurface", func() error {
			_, err := inst.CreatePbufferSurface(dpy, cfg, egl.IntList{})
			return err
		}},
		{"eglCreateWindowSurface", func() error {
			_, err := inst.CreateWindowSurface(dpy, cfg, 1, unterminated)
			return err
		}},
		{"eglCreateSync", func() error {
			_, err := inst.CreateSync(dpy, egl.SyncFence, egl.AttribList{egl.AttribNone, 0})
			return err
		}},
		{"eglGetPlatformDisplay", func() error {
			_, err := inst.GetPlatformDisplay(egl.PlatformSurfacelessMESA, nil, nil)
			return err
		}},
	}
	for _, tt := range tests {
		err := tt.call()
		if !errors.Is(err, egl.ErrMalformedAttribList) || !errors.Is(err, egl.ErrBadParameter) {
			t.Errorf("%s: error = %v, want ErrMalformedAttribList matching ErrBadParameter", tt.fn, err)
		}
		var ce *egl.CallError
		if !errors.As(err, &ce) || ce.Func != tt.fn {
			t.Errorf("%s: error = %#v, want *CallError naming it", tt.fn, err)
		}
	}
	if got := d.TotalCalls(); got != before {
		t.Errorf("driver calls = %d, want %d", got, before)
	}
}

func TestCreateContextNoShare(t *testing.T) {
	d, inst, dpy := newInstance(t)
	cfg := firstConfig(t, inst, dpy)

	ctx, err := inst.CreateContext(dpy, cfg, egl.NoContext, egl.Ints(egl.ContextClientVersion, 2))
	if err != nil || ctx.IsNil() {
		t.Fatalf("CreateContext() = %v, %v", ctx, err)
	}
	if p := d.LastShareContext(); p != nil {
		t.Errorf("share context passed = %p, want nil", p)
	}
	got := d.LastIntList("eglCreateContext")
	if !slices.Equal(got, egl.Ints(egl.ContextClientVersion, 2)) {
		t.Errorf("attribute list passed = %v", got)
	}

	shared, err := inst.CreateContext(dpy, cfg, ctx, egl.Ints(egl.ContextClientVersion, 2))
	if err != nil {
		t.Fatalf("CreateContext(shared) = %v", err)
	}
	if p := d.LastShareContext(); p != ctx.Ptr() {
		t.Errorf("share context passed = %p, want %p", p, ctx.Ptr())
	}
	if v, err := inst.QueryContext(dpy, shared, egl.ContextClientVersion); err != nil || v != 2 {
		t.Errorf("QueryContext(ContextClientVersion) = %d, %v, want 2", v, err)
	}
	if v, err := inst.QueryContext(dpy, shared, egl.ConfigID); err != nil || v != 1 {
		t.Errorf("QueryContext(ConfigID) = %d, %v, want 1", v, err)
	}
}

func TestSingleDrainErrorRegister(t *testing.T) {
	d, inst, dpy := newInstance(t)

	ctx, err := inst.CreateContext(dpy, egl.NoConfig, egl.NoContext, egl.Ints())
	if !errors.Is(err, egl.ErrBadConfig) {
		t.Fatalf("CreateContext(NoConfig) = %v, want %v", err, egl.ErrBadConfig)
	}
	if ctx != egl.NoContext {
		t.Errorf("CreateContext() context = %v, want NoContext", ctx)
	}
	if n := d.Calls("eglGetError"); n != 1 {
		t.Errorf("eglGetError calls after failure = %d, want 1", n)
	}
	if err := inst.GetError(); err != nil {
		t.Errorf("GetError() after failure = %v, want nil", err)
	}
	if n := d.Calls("eglGetError"); n != 2 {
		t.Errorf("eglGetError calls = %d, want 2", n)
	}
}

func TestGetError(t *testing.T) {
	d, inst, _ := newInstance(t)
	d.SetError(egl.BadSurface)
	if err := inst.GetError(); err != egl.ErrBadSurface {
		t.Errorf("GetError() = %v, want %v", err, egl.ErrBadSurface)
	}
	if err := inst.GetError(); err != nil {
		t.Errorf("second GetError() = %v, want nil", err)
	}
	d.SetError(0x4242)
	var ue *egl.UnknownErrorCodeError
	if err := inst.GetError(); !errors.As(err, &ue) {
		t.Errorf("GetError() = %v, want *UnknownErrorCodeError", err)
	}
}

func TestInjectedFailures(t *testing.T) {
	d, inst, dpy := newInstance(t)
	cfg := firstConfig(t, inst, dpy)

	d.FailNext("eglCreateContext", egl.BadAlloc)
	ctx, err := inst.CreateContext(dpy, cfg, egl.NoContext, egl.Ints())
	if !ctx.IsNil() || !errors.Is(err, egl.ErrBadAlloc) {
		t.Errorf("CreateContext() = %v, %v, want NoContext, %v", ctx, err, egl.ErrBadAlloc)
	}

	d.FailNext("eglCreatePbufferSurface", egl.Success)
	s, err := inst.CreatePbufferSurface(dpy, cfg, egl.Ints())
	if !s.IsNil() || !errors.Is(err, egl.ErrNoErrorReported) {
		t.Errorf("CreatePbufferSurface() = %v, %v, want NoSurface, %v", s, err, egl.ErrNoErrorReported)
	}

	d.FailNext("eglInitialize", egl.ContextLost)
	if _, err := inst.Initialize(dpy); !errors.Is(err, egl.ErrContextLost) {
		t.Errorf("Initialize() = %v, want %v", err, egl.ErrContextLost)
	}
}

func TestUnsupportedVersion(t *testing.T) {
	d, inst, dpy := newInstance(t, egltest.WithVersion(egl.Version14))
	if got := inst.Version(); got != egl.Version14 {
		t.Errorf("Version() = %v, want 1.4", got)
	}

	_, err := inst.CreateSync(dpy, egl.SyncFence, egl.Attribs())
	if !errors.Is(err, egl.ErrUnsupported) {
		t.Errorf("CreateSync() = %v, want %v", err, egl.ErrUnsupported)
	}
	_, err = inst.GetPlatformDisplay(egl.PlatformSurfacelessMESA, nil, egl.Attribs())
	if !errors.Is(err, egl.ErrUnsupported) {
		t.Errorf("GetPlatformDisplay() = %v, want %v", err, egl.ErrUnsupported)
	}
	if n := d.Calls("eglCreateSync") + d.Calls("eglGetPlatformDisplay"); n != 0 {
		t.Errorf("unsupported entry points called %d times", n)
	}
	if _, ok := inst.GetCurrentContext(); ok {
		t.Error("GetCurrentContext() ok = true with nothing current")
	}
	if n := d.Calls("eglGetCurrentContext"); n != 1 {
		t.Errorf("eglGetCurrentContext calls = %d, want 1", n)
	}
}

func TestDisplay(t *testing.T) {
	d := egltest.New(egltest.WithDisplayVersion(egl.Version14))
	inst := egl.NewInstance(d)

	var native byte
	if dpy, ok := inst.GetDisplay(unsafe.Pointer(&native)); ok || !dpy.IsNil() {
		t.Errorf("GetDisplay(unknown) = %v, %v, want NoDisplay, false", dpy, ok)
	}
	if err := inst.GetError(); err != nil {
		t.Errorf("GetError() after GetDisplay(unknown) = %v, want nil", err)
	}

	dpy, ok := inst.GetDisplay(egl.DefaultDisplay)
	if !ok || dpy.Ptr() != d.DisplayHandle() {
		t.Fatalf("GetDisplay(DefaultDisplay) = %v, %v", dpy, ok)
	}
	if _, err := inst.Extensions(dpy); !errors.Is(err, egl.ErrNotInitialized) {
		t.Errorf("Extensions() before Initialize = %v, want %v", err, egl.ErrNotInitialized)
	}
	v, err := inst.Initialize(dpy)
	if err != nil || v != egl.Version14 {
		t.Errorf("Initialize() = %v, %v, want 1.4", v, err)
	}
	if err := inst.Terminate(dpy); err != nil {
		t.Errorf("Terminate() = %v", err)
	}
	if _, err := inst.Initialize(egl.NoDisplay); !errors.Is(err, egl.ErrBadDisplay) {
		t.Errorf("Initialize(NoDisplay) = %v, want %v", err, egl.ErrBadDisplay)
	}
}

func TestGetPlatformDisplay(t *testing.T) {
	d := egltest.New()
	inst := egl.NewInstance(d)

	dpy, err := inst.GetPlatformDisplay(egl.PlatformSurfacelessMESA, nil, egl.Attribs())
	if err != nil || dpy.Ptr() != d.DisplayHandle() {
		t.Errorf("GetPlatformDisplay(surfaceless) = %v, %v", dpy, err)
	}
	if got := d.LastAttribList("eglGetPlatformDisplay"); !slices.Equal(got, egl.Attribs()) {
		t.Errorf("attribute list passed = %v", got)
	}
	_, err = inst.GetPlatformDisplay(egl.PlatformX11KHR, nil, egl.Attribs())
	if !errors.Is(err, egl.ErrBadParameter) {
		t.Errorf("GetPlatformDisplay(x11) = %v, want %v", err, egl.ErrBadParameter)
	}
}

func TestQueryString(t *testing.T) {
	_, inst, dpy := newInstance(t)

	if s, err := inst.QueryString(dpy, egl.Vendor); err != nil || s != "egltest" {
		t.Errorf("QueryString(Vendor) = %q, %v", s, err)
	}
	if s, err := inst.QueryString(dpy, egl.VersionString); err != nil || s != "1.5 egltest" {
		t.Errorf("QueryString(VersionString) = %q, %v", s, err)
	}
	if _, err := inst.QueryString(dpy, egl.Width); !errors.Is(err, egl.ErrBadParameter) {
		t.Errorf("QueryString(Width) = %v, want %v", err, egl.ErrBadParameter)
	}

	apis, err := inst.ClientAPIs(dpy)
	if err != nil || !slices.Equal(apis, []string{"OpenGL", "OpenGL_ES"}) {
		t.Errorf("ClientAPIs() = %v, %v", apis, err)
	}
	client, err := inst.ClientExtensions()
	if err != nil || !slices.Contains(client, "EGL_MESA_platform_surfaceless") {
		t.Errorf("ClientExtensions() = %v, %v", client, err)
	}
	if ok, err := inst.HasExtension(dpy, "EGL_KHR_surfaceless_context"); err != nil || !ok {
		t.Errorf("HasExtension(surfaceless_context) = %v, %v, want true", ok, err)
	}
	if ok, _ := inst.HasExtension(dpy, "EGL_KHR_surfaceless"); ok {
		t.Error("HasExtension() matched a prefix")
	}
}

func TestBindAPI(t *testing.T) {
	_, inst, _ := newInstance(t)
	if got := inst.QueryAPI(); got != egl.OpenGLESAPI {
		t.Errorf("QueryAPI() = %#x, want OpenGLESAPI", got)
	}
	if err := inst.BindAPI(egl.OpenVGAPI); !errors.Is(err, egl.ErrBadParameter) {
		t.Errorf("BindAPI(OpenVG) = %v, want %v", err, egl.ErrBadParameter)
	}
	if err := inst.BindAPI(egl.OpenGLAPI); err != nil {
		t.Fatalf("BindAPI(OpenGL) = %v", err)
	}
	if got := inst.QueryAPI(); got != egl.OpenGLAPI {
		t.Errorf("QueryAPI() = %#x, want OpenGLAPI", got)
	}
	if err := inst.ReleaseThread(); err != nil {
		t.Errorf("ReleaseThread() = %v", err)
	}
	if got := inst.QueryAPI(); got != egl.OpenGLESAPI {
		t.Errorf("QueryAPI() after ReleaseThread = %#x, want OpenGLESAPI", got)
	}
}

func TestWaits(t *testing.T) {
	_, inst, _ := newInstance(t)
	if err := inst.WaitGL(); err != nil {
		t.Errorf("WaitGL() = %v", err)
	}
	if err := inst.WaitClient(); err != nil {
		t.Errorf("WaitClient() = %v", err)
	}
	if err := inst.WaitNative(egl.CoreNativeEngine); err != nil {
		t.Errorf("WaitNative(CoreNativeEngine) = %v", err)
	}
	if err := inst.WaitNative(0); !errors.Is(err, egl.ErrBadParameter) {
		t.Errorf("WaitNative(0) = %v, want %v", err, egl.ErrBadParameter)
	}
}

func TestMakeCurrent(t *testing.T) {
	d, inst, dpy := newInstance(t)
	cfg := firstConfig(t, inst, dpy)
	ctx, err := inst.CreateContext(dpy, cfg, egl.NoContext, egl.Ints(egl.ContextClientVersion, 2))
	if err != nil {
		t.Fatal(err)
	}
	pb, err := inst.CreatePbufferSurface(dpy, cfg, egl.Ints(egl.Width, 16, egl.Height, 16))
	if err != nil {
		t.Fatal(err)
	}
	if err := inst.MakeCurrent(dpy, pb, pb, ctx); err != nil {
		t.Fatalf("MakeCurrent() = %v", err)
	}
	if got, ok := inst.GetCurrentContext(); !ok || got != ctx {
		t.Errorf("GetCurrentContext() = %v, %v, want %v", got, ok, ctx)
	}
	if got, ok := inst.GetCurrentDisplay(); !ok || got != dpy {
		t.Errorf("GetCurrentDisplay() = %v, %v, want %v", got, ok, dpy)
	}
	if got, ok := inst.GetCurrentSurface(egl.Draw); !ok || got != pb {
		t.Errorf("GetCurrentSurface(Draw) = %v, %v, want %v", got, ok, pb)
	}

	if err := inst.MakeCurrent(dpy, egl.NoSurface, egl.NoSurface, egl.NoContext); err != nil {
		t.Fatalf("MakeCurrent(release) = %v", err)
	}
	if _, ok := inst.GetCurrentContext(); ok {
		t.Error("GetCurrentContext() ok = true after release")
	}
	if err := inst.MakeCurrent(dpy, pb, egl.NoSurface, ctx); !errors.Is(err, egl.ErrBadMatch) {
		t.Errorf("MakeCurrent(draw only) = %v, want %v", err, egl.ErrBadMatch)
	}

	if err := inst.DestroyContext(dpy, ctx); err != nil {
		t.Errorf("DestroyContext() = %v", err)
	}
	if err := inst.DestroyContext(dpy, ctx); !errors.Is(err, egl.ErrBadContext) {
		t.Errorf("DestroyContext() twice = %v, want %v", err, egl.ErrBadContext)
	}
	if err := inst.DestroySurface(dpy, pb); err != nil {
		t.Errorf("DestroySurface() = %v", err)
	}
	if n := d.Live(); n != 0 {
		t.Errorf("live objects = %d, want 0", n)
	}
}

func TestCreateContextConfigMismatch(t *testing.T) {
	_, inst, dpy := newInstance(t)
	// Config 3 supports GLES 1 and 2 only.
	cfg := firstConfig(t, inst, dpy, egl.ConfigID, 3)
	_, err := inst.CreateContext(dpy, cfg, egl.NoContext, egl.Ints(egl.ContextMajorVersion, 3))
	if !errors.Is(err, egl.ErrBadMatch) {
		t.Errorf("CreateContext(GLES 3 on GLES 2 config) = %v, want %v", err, egl.ErrBadMatch)
	}
}

func TestProcAddrFunc(t *testing.T) {
	_, inst, _ := newInstance(t)
	if p, ok := inst.GetProcAddress("glClear"); !ok || p == nil {
		t.Errorf("GetProcAddress(glClear) = %p, %v", p, ok)
	}
	if p, ok := inst.GetProcAddress("glNotAFunction"); ok || p != nil {
		t.Errorf("GetProcAddress(unknown) = %p, %v, want nil, false", p, ok)
	}
	load := inst.ProcAddrFunc()
	if load("glReadPixels") == nil {
		t.Error("ProcAddrFunc()(glReadPixels) = nil")
	}
	if load("") != nil {
		t.Error("ProcAddrFunc()(\"\") != nil")
	}
}

func TestTerminateReleasesObjects(t *testing.T) {
	d, inst, dpy := newInstance(t)
	cfg := firstConfig(t, inst, dpy)
	for range 3 {
		if _, err := inst.CreateContext(dpy, cfg, egl.NoContext, egl.Ints()); err != nil {
			t.Fatal(err)
		}
	}
	if n := d.Live(); n != 3 {
		t.Fatalf("live objects = %d, want 3", n)
	}
	if err := inst.Terminate(dpy); err != nil {
		t.Fatal(err)
	}
	if n := d.Live(); n != 0 {
		t.Errorf("live objects after Terminate = %d, want 0", n)
	}
}

func TestInstanceConcurrentUse(t *testing.T) {
	d, inst, dpy := newInstance(t)
	cfg := firstConfig(t, inst, dpy)

	const goroutines = 16
	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if v, err := inst.GetConfigAttrib(dpy, cfg, egl.DepthSize); err != nil || v != 24 {
				t.Errorf("GetConfigAttrib(DepthSize) = %d, %v, want 24", v, err)
			}
		}()
	}
	wg.Wait()
	if n := d.Calls("eglGetConfigAttrib"); n != goroutines {
		t.Errorf("eglGetConfigAttrib calls = %d, want %d", n, goroutines)
	}
}
