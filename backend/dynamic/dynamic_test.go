//go:build darwin || freebsd || linux || netbsd

package dynamic

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/gogpu/egl"
)

// fakeLibrary resolves every symbol to a distinct non-zero address that is
// never called, except the names in missing.
type fakeLibrary struct {
	missing map[string]error
	lookups []string
	closed  int
}

func (l *fakeLibrary) lookup(name string) (uintptr, error) {
	l.lookups = append(l.lookups, name)
	if err, ok := l.missing[name]; ok {
		return 0, err
	}
	return uintptr(0x1000 + 0x10*len(l.lookups)), nil
}

func (l *fakeLibrary) close() error {
	l.closed++
	return nil
}

func TestBindAll(t *testing.T) {
	lib := &fakeLibrary{}
	b, err := bind(lib, "libEGL.so.1", newConfig(nil))
	if err != nil {
		t.Fatalf("bind() = %v", err)
	}
	if got := len(lib.lookups); got != len(egl.EntryPoints()) {
		t.Errorf("lookups = %d, want %d", got, len(egl.EntryPoints()))
	}
	if lib.closed != 0 {
		t.Errorf("library closed %d times after successful bind", lib.closed)
	}
	if b.Version() != egl.Version15 || b.Path() != "libEGL.so.1" {
		t.Errorf("Backend = %v %q, want 1.5 libEGL.so.1", b.Version(), b.Path())
	}
	if b.fn.eglWaitSync == nil || b.fn.eglChooseConfig == nil {
		t.Error("entry points left unbound")
	}

	if err := b.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
	if err := b.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
	if lib.closed != 1 {
		t.Errorf("library closed %d times, want 1", lib.closed)
	}
}

func TestBindMatchesEntryPoints(t *testing.T) {
	var f funcs
	syms := f.symbols()
	eps := egl.EntryPoints()
	if len(syms) != len(eps) {
		t.Fatalf("symbols() = %d entries, want %d", len(syms), len(eps))
	}
	for i, s := range syms {
		if s.name != eps[i].Name || s.since != eps[i].Since {
			t.Errorf("symbol %d = %s %v, want %s %v", i, s.name, s.since, eps[i].Name, eps[i].Since)
		}
	}
}

func TestBindMissingSymbol(t *testing.T) {
	cause := errors.New("undefined symbol")
	lib := &fakeLibrary{missing: map[string]error{"eglCreateSync": cause}}

	b, err := bind(lib, "libEGL.so.1", newConfig(nil))
	if b != nil {
		t.Error("bind() returned a backend despite a missing symbol")
	}
	var se *egl.SymbolError
	if !errors.As(err, &se) || se.Symbol != "eglCreateSync" || !errors.Is(err, cause) {
		t.Errorf("bind() = %v, want *egl.SymbolError for eglCreateSync", err)
	}
	if lib.closed != 1 {
		t.Errorf("library closed %d times, want 1", lib.closed)
	}
	if last := lib.lookups[len(lib.lookups)-1]; last != "eglCreateSync" {
		t.Errorf("lookups continued past the missing symbol to %s", last)
	}
}

func TestBindNullAddress(t *testing.T) {
	lib := &fakeLibrary{missing: map[string]error{"eglGetError": nil}}
	_, err := bind(lib, "libEGL.so.1", newConfig(nil))
	var se *egl.SymbolError
	if !errors.As(err, &se) || se.Symbol != "eglGetError" {
		t.Errorf("bind() = %v, want *egl.SymbolError for eglGetError", err)
	}
	if lib.closed != 1 {
		t.Errorf("library closed %d times, want 1", lib.closed)
	}
}

func TestBindVersionLimited(t *testing.T) {
	// A 1.4 driver has no EGL 1.5 symbols.
	missing := map[string]error{}
	for _, ep := range egl.EntryPoints() {
		if ep.Since == egl.Version15 {
			missing[ep.Name] = errors.New("undefined symbol")
		}
	}
	lib := &fakeLibrary{missing: missing}

	if _, err := bind(lib, "libEGL.so.1", newConfig(nil)); err == nil {
		t.Fatal("bind() at 1.5 succeeded without EGL 1.5 symbols")
	}

	lib = &fakeLibrary{missing: missing}
	b, err := bind(lib, "libEGL.so.1", newConfig([]Option{WithVersion(egl.Version14)}))
	if err != nil {
		t.Fatalf("bind() at 1.4 = %v", err)
	}
	for name := range missing {
		if slices.Contains(lib.lookups, name) {
			t.Errorf("%s looked up at 1.4", name)
		}
	}
	if b.fn.eglCreateSync != nil {
		t.Error("eglCreateSync bound at 1.4")
	}
	if b.fn.eglGetCurrentContext == nil {
		t.Error("eglGetCurrentContext not bound at 1.4")
	}
	if b.Version() != egl.Version14 {
		t.Errorf("Version() = %v, want 1.4", b.Version())
	}
}

func TestOpenBadVersion(t *testing.T) {
	for _, v := range []egl.Version{{Major: 0, Minor: 9}, {Major: 1, Minor: 6}, {Major: 2, Minor: 0}} {
		if _, err := Open("libEGL.so.1", WithVersion(v)); err == nil {
			t.Errorf("Open(WithVersion(%v)) = nil, want error", v)
		}
	}
}

func TestOpenMissingLibrary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "libEGL-missing.so")
	_, err := Open(path)
	var le *egl.LibraryError
	if !errors.As(err, &le) || le.Path != path {
		t.Errorf("Open(%q) = %v, want *egl.LibraryError", path, err)
	}
}

func TestOpenNotALibrary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "libEGL.so")
	if err := os.WriteFile(path, []byte("not an ELF file"), 0o644); err != nil {
		t.Fatal(err)
	}
	var le *egl.LibraryError
	if _, err := Open(path); !errors.As(err, &le) {
		t.Errorf("Open(garbage) = %v, want *egl.LibraryError", err)
	}
}

func TestOptions(t *testing.T) {
	cfg := newConfig(nil)
	if cfg.version != egl.Version15 || cfg.mode != defaultMode {
		t.Errorf("newConfig() = %+v, want 1.5 and default mode", cfg)
	}
	cfg = newConfig([]Option{WithVersion(egl.Version12), WithMode(1)})
	if cfg.version != egl.Version12 || cfg.mode != 1 {
		t.Errorf("newConfig(opts) = %+v", cfg)
	}
}

func TestRegistered(t *testing.T) {
	if !slices.Contains(egl.Loaders(), egl.BackendDynamic) {
		t.Errorf("Loaders() = %v, want %q", egl.Loaders(), egl.BackendDynamic)
	}
}
