//go:build static && cgo && ((linux && !android) || freebsd || openbsd)

package static_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/egl"
	"github.com/gogpu/egl/backend/static"
)

func TestRegistered(t *testing.T) {
	if !static.Available() {
		t.Fatal("Available() = false with the static tag")
	}
	if !slices.Contains(egl.Loaders(), egl.BackendStatic) {
		t.Errorf("Loaders() = %v, want %q", egl.Loaders(), egl.BackendStatic)
	}
	b, err := egl.DefaultBackend()
	if err != nil {
		t.Fatalf("DefaultBackend() = %v", err)
	}
	if _, ok := b.(static.Backend); !ok {
		t.Errorf("DefaultBackend() = %T, want static.Backend", b)
	}
}

// display returns an initialized display or skips when the machine has no
// usable EGL driver.
func display(t *testing.T, inst *egl.Instance) egl.Display {
	t.Helper()
	dpy, ok := inst.GetDisplay(egl.DefaultDisplay)
	if !ok {
		t.Skip("no default EGL display")
	}
	if _, err := inst.Initialize(dpy); err != nil {
		t.Skipf("Initialize() = %v", err)
	}
	t.Cleanup(func() {
		_ = inst.Terminate(dpy)
		_ = inst.ReleaseThread()
	})
	return dpy
}

func TestDriver(t *testing.T) {
	inst := egl.NewInstance(static.New())
	if got := inst.Version(); got != egl.Version15 {
		t.Errorf("Version() = %v, want 1.5", got)
	}
	dpy := display(t, inst)

	vendor, err := inst.QueryString(dpy, egl.Vendor)
	if err != nil || vendor == "" {
		t.Errorf("QueryString(Vendor) = %q, %v", vendor, err)
	}
	n, err := inst.GetConfigCount(dpy)
	if err != nil {
		t.Fatalf("GetConfigCount() = %v", err)
	}
	all, err := inst.AllConfigs(dpy)
	if err != nil || len(all) != n {
		t.Errorf("AllConfigs() = %d configs, %v, want %d", len(all), err, n)
	}

	// A config attribute is never a string name.
	if len(all) > 0 {
		_, err := inst.GetConfigAttrib(dpy, all[0], egl.Vendor)
		if !errors.Is(err, egl.ErrBadAttribute) {
			t.Errorf("GetConfigAttrib(Vendor) = %v, want %v", err, egl.ErrBadAttribute)
		}
		if err := inst.GetError(); err != nil {
			t.Errorf("GetError() after drained failure = %v, want nil", err)
		}
	}
}

func TestMalformedListStaysLocal(t *testing.T) {
	inst := egl.NewInstance(static.New())
	dpy := display(t, inst)
	_, err := inst.MatchingConfigCount(dpy, egl.IntList{egl.RedSize, 8})
	if !errors.Is(err, egl.ErrMalformedAttribList) {
		t.Errorf("MatchingConfigCount(unterminated) = %v, want %v", err, egl.ErrMalformedAttribList)
	}
}
