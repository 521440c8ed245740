package egl

//go:generate go run ./internal/cmd/eglgen

// Backend names registered with the loader registry.
const (
	BackendStatic  = "static"
	BackendDynamic = "dynamic"
)

// EntryPoint describes one native EGL function.
type EntryPoint struct {
	Name  string
	Since Version
}

// EntryPoints returns every bound native function in declaration order.
func EntryPoints() []EntryPoint {
	eps := make([]EntryPoint, len(entryPointTable))
	copy(eps, entryPointTable[:])
	return eps
}

var entrySince = func() map[string]Version {
	m := make(map[string]Version, len(entryPointTable))
	for _, ep := range entryPointTable {
		m[ep.Name] = ep.Since
	}
	return m
}()
