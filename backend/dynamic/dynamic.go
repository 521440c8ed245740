//go:build darwin || freebsd || linux || netbsd

package dynamic

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"

	"github.com/gogpu/egl"
)

const defaultMode = purego.RTLD_NOW | purego.RTLD_LOCAL

func init() {
	egl.RegisterLoader(egl.BackendDynamic, func() (egl.Backend, error) {
		b, err := OpenDefault()
		if err != nil {
			return nil, err
		}
		return b, nil
	})
}

// DefaultLibraries lists the library names OpenDefault tries, in order.
func DefaultLibraries() []string {
	if runtime.GOOS == "darwin" {
		return []string{"libEGL.dylib"}
	}
	return []string{"libEGL.so.1", "libEGL.so"}
}

// Backend is the load-time EGL backend.
type Backend struct {
	lib     library
	path    string
	version egl.Version
	fn      funcs
}

// symbol ties a native symbol name to the funcs field bound to it.
type symbol struct {
	name  string
	since egl.Version
	fptr  any
}

// library is an opened shared object.
type library interface {
	lookup(name string) (uintptr, error)
	close() error
}

type dlLibrary uintptr

func (h dlLibrary) lookup(name string) (uintptr, error) { return purego.Dlsym(uintptr(h), name) }

func (h dlLibrary) close() error { return purego.Dlclose(uintptr(h)) }

// Open loads the EGL library at path and binds its entry points.
//
// It returns an *egl.LibraryError when the library cannot be opened and an
// *egl.SymbolError when an entry point of the requested version is
// missing; in both cases nothing stays loaded.
func Open(path string, opts ...Option) (*Backend, error) {
	cfg := newConfig(opts)
	if err := checkVersion(cfg.version); err != nil {
		return nil, err
	}
	h, err := purego.Dlopen(path, cfg.mode)
	if err != nil {
		return nil, &egl.LibraryError{Path: path, Err: err}
	}
	return bind(dlLibrary(h), path, cfg)
}

// OpenDefault opens the first library of DefaultLibraries that loads.
func OpenDefault(opts ...Option) (*Backend, error) {
	var errs []error
	for _, name := range DefaultLibraries() {
		b, err := Open(name, opts...)
		if err == nil {
			return b, nil
		}
		// A library that loads but lacks symbols is not retried under
		// another name.
		var symErr *egl.SymbolError
		if errors.As(err, &symErr) {
			return nil, err
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

func checkVersion(v egl.Version) error {
	if !v.AtLeast(egl.Version10) || !egl.Version15.AtLeast(v) {
		return fmt.Errorf("dynamic: unsupported EGL version %s", v)
	}
	return nil
}

// bind resolves every symbol up to cfg.version, then binds them. No
// function is bound unless all symbols resolve.
func bind(lib library, path string, cfg config) (*Backend, error) {
	b := &Backend{lib: lib, path: path, version: cfg.version}
	syms := b.fn.symbols()
	addrs := make([]uintptr, len(syms))
	for i, s := range syms {
		if !cfg.version.AtLeast(s.since) {
			continue
		}
		addr, err := lib.lookup(s.name)
		if err == nil && addr == 0 {
			err = errors.New("null address")
		}
		if err != nil {
			if cerr := lib.close(); cerr != nil {
				egl.Logger().Warn("egl: close after failed load", "path", path, "error", cerr)
			}
			return nil, &egl.SymbolError{Symbol: s.name, Err: err}
		}
		addrs[i] = addr
	}
	n := 0
	for i, s := range syms {
		if addrs[i] != 0 {
			purego.RegisterFunc(s.fptr, addrs[i])
			n++
		}
	}
	egl.Logger().Info("egl: library loaded", "path", path, "version", cfg.version, "symbols", n)
	return b, nil
}

// Version reports the EGL version whose entry points were bound.
func (b *Backend) Version() egl.Version { return b.version }

// Path returns the path the library was opened with.
func (b *Backend) Path() string { return b.path }

// Close unloads the library. The Backend must not be used afterwards.
func (b *Backend) Close() error {
	if b.lib == nil {
		return nil
	}
	err := b.lib.close()
	b.lib = nil
	return err
}

var _ egl.Backend = (*Backend)(nil)
