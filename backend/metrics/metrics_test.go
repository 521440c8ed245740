package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/gogpu/egl"
	"github.com/gogpu/egl/egltest"
)

func wrap(t *testing.T, d *egltest.Driver) (*Backend, *egl.Instance, egl.Display) {
	t.Helper()
	b, err := Wrap(d, prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("Wrap() = %v", err)
	}
	inst := egl.NewInstance(b)
	dpy, ok := inst.GetDisplay(egl.DefaultDisplay)
	if !ok {
		t.Fatal("GetDisplay() ok = false")
	}
	if _, err := inst.Initialize(dpy); err != nil {
		t.Fatalf("Initialize() = %v", err)
	}
	return b, inst, dpy
}

func TestCallsCounted(t *testing.T) {
	d := egltest.New()
	b, inst, dpy := wrap(t, d)

	for range 3 {
		if _, err := inst.GetConfigCount(dpy); err != nil {
			t.Fatal(err)
		}
	}
	if got := testutil.ToFloat64(b.calls.WithLabelValues("eglGetConfigs")); got != 3 {
		t.Errorf("calls{eglGetConfigs} = %v, want 3", got)
	}
	if got := testutil.ToFloat64(b.failures.WithLabelValues("eglGetConfigs")); got != 0 {
		t.Errorf("failures{eglGetConfigs} = %v, want 0", got)
	}
	if got := testutil.ToFloat64(b.calls.WithLabelValues("eglInitialize")); got != 1 {
		t.Errorf("calls{eglInitialize} = %v, want 1", got)
	}
	if n := testutil.CollectAndCount(b.duration); n != 3 {
		t.Errorf("duration series = %d, want 3 (GetDisplay, Initialize, GetConfigs)", n)
	}
}

func TestFailureDoesNotReadRegister(t *testing.T) {
	d := egltest.New()
	b, inst, dpy := wrap(t, d)

	_, err := inst.CreateContext(dpy, egl.NoConfig, egl.NoContext, egl.Ints())
	if !errors.Is(err, egl.ErrBadConfig) {
		t.Fatalf("CreateContext(NoConfig) = %v, want %v", err, egl.ErrBadConfig)
	}
	if got := testutil.ToFloat64(b.failures.WithLabelValues("eglCreateContext")); got != 1 {
		t.Errorf("failures{eglCreateContext} = %v, want 1", got)
	}
	// Only the Instance drains the register.
	if n := d.Calls("eglGetError"); n != 1 {
		t.Errorf("driver eglGetError calls = %d, want 1", n)
	}
	if got := testutil.ToFloat64(b.calls.WithLabelValues("eglGetError")); got != 1 {
		t.Errorf("calls{eglGetError} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(b.failures.WithLabelValues("eglGetError")); got != 0 {
		t.Errorf("failures{eglGetError} = %v, want 0", got)
	}
}

func TestFailureSentinels(t *testing.T) {
	d := egltest.New()
	b, inst, dpy := wrap(t, d)

	d.FailNext("eglQueryString", egl.BadAlloc)
	if _, err := inst.QueryString(dpy, egl.Vendor); err == nil {
		t.Fatal("QueryString() = nil error")
	}
	d.FailNext("eglWaitGL", egl.BadAlloc)
	_ = inst.WaitGL()
	_ = inst.WaitGL()

	tests := []struct {
		fn       string
		failures float64
	}{
		{"eglQueryString", 1},
		{"eglWaitGL", 1},
	}
	for _, tt := range tests {
		if got := testutil.ToFloat64(b.failures.WithLabelValues(tt.fn)); got != tt.failures {
			t.Errorf("failures{%s} = %v, want %v", tt.fn, got, tt.failures)
		}
	}
	if got := testutil.ToFloat64(b.calls.WithLabelValues("eglWaitGL")); got != 2 {
		t.Errorf("calls{eglWaitGL} = %v, want 2", got)
	}
}

func TestClientWaitSyncStatus(t *testing.T) {
	d := egltest.New()
	b, inst, dpy := wrap(t, d)
	cfg, _, err := inst.ChooseFirstConfig(dpy, egl.Ints())
	if err != nil {
		t.Fatal(err)
	}
	ctx, err := inst.CreateContext(dpy, cfg, egl.NoContext, egl.Ints())
	if err != nil {
		t.Fatal(err)
	}
	if err := inst.MakeCurrent(dpy, egl.NoSurface, egl.NoSurface, ctx); err != nil {
		t.Fatal(err)
	}
	d.HoldFences(true)
	s, err := inst.CreateSync(dpy, egl.SyncFence, egl.Attribs())
	if err != nil {
		t.Fatal(err)
	}
	// TimeoutExpired is a status, not a failure.
	if status, err := inst.ClientWaitSync(dpy, s, 0, 0); err != nil || status != egl.TimeoutExpired {
		t.Fatalf("ClientWaitSync() = %#x, %v", status, err)
	}
	if got := testutil.ToFloat64(b.failures.WithLabelValues("eglClientWaitSync")); got != 0 {
		t.Errorf("failures{eglClientWaitSync} = %v, want 0", got)
	}
}

func TestWrapSharesRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	b1, err := Wrap(egltest.New(), reg)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := Wrap(egltest.New(), reg)
	if err != nil {
		t.Fatalf("second Wrap() = %v", err)
	}
	if b1.calls != b2.calls || b1.failures != b2.failures || b1.duration != b2.duration {
		t.Error("second Wrap() did not share the registered collectors")
	}
}

func TestWrapConflictingCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{
		Name: CallsTotal,
		Help: "Something else.",
	}))
	if _, err := Wrap(egltest.New(), reg); err == nil {
		t.Error("Wrap() = nil error with a conflicting collector")
	}
}

func TestUnwrap(t *testing.T) {
	d := egltest.New(egltest.WithVersion(egl.Version13))
	b, err := Wrap(d, prometheus.NewRegistry())
	if err != nil {
		t.Fatal(err)
	}
	if b.Unwrap() != egl.Backend(d) {
		t.Error("Unwrap() did not return the wrapped backend")
	}
	if b.Version() != egl.Version13 {
		t.Errorf("Version() = %v, want 1.3", b.Version())
	}
}
