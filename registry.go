package egl

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/gogpu/gpucontext"
)

// Loader opens a Backend. Backend packages register a Loader from init.
//
// Every call opens a new backend owned by the caller. Backends that hold
// native resources, such as the dynamic backend's library handle,
// implement io.Closer and should be closed when no longer used.
type Loader func() (Backend, error)

// priority orders the known loaders, best first: the link-time backend
// needs no library lookup.
var priority = []string{BackendStatic, BackendDynamic}

// loaders holds registered backend loaders.
var loaders = gpucontext.NewRegistry[Loader](gpucontext.WithPriority(priority...))

// RegisterLoader registers a loader under name, replacing any previous one.
// It is typically called from init in backend packages.
func RegisterLoader(name string, l Loader) {
	loaders.Register(name, func() Loader { return l })
}

// UnregisterLoader removes a loader. This is useful for testing.
func UnregisterLoader(name string) {
	loaders.Unregister(name)
}

// Loaders returns the names of registered loaders, sorted.
func Loaders() []string {
	names := loaders.Available()
	sort.Strings(names)
	return names
}

// OpenBackend opens the backend registered under name. The caller owns the
// returned backend (see Loader).
func OpenBackend(name string) (Backend, error) {
	if !loaders.Has(name) {
		return nil, fmt.Errorf("%w: %q", ErrBackendNotAvailable, name)
	}
	b, err := loaders.Get(name)()
	if err != nil {
		return nil, fmt.Errorf("egl: open %s backend: %w", name, err)
	}
	Logger().Info("egl: backend opened", "backend", name, "version", b.Version())
	return b, nil
}

// DefaultBackend opens the best available backend. Loaders are tried in
// priority order; a loader that fails is skipped. The caller owns the
// returned backend (see Loader).
func DefaultBackend() (Backend, error) {
	var errs []error
	for _, name := range selectionOrder() {
		b, err := OpenBackend(name)
		if err == nil {
			return b, nil
		}
		Logger().Warn("egl: backend unavailable", "backend", name, "error", err)
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil, ErrBackendNotAvailable
	}
	return nil, fmt.Errorf("%w: %w", ErrBackendNotAvailable, errors.Join(errs...))
}

// selectionOrder lists registered loaders, best first: the priority list,
// then any other loader by name.
func selectionOrder() []string {
	order := make([]string, 0, loaders.Count())
	for _, name := range priority {
		if loaders.Has(name) {
			order = append(order, name)
		}
	}
	for _, name := range Loaders() {
		if !slices.Contains(priority, name) {
			order = append(order, name)
		}
	}
	return order
}
