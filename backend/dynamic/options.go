package dynamic

import "github.com/gogpu/egl"

// Option configures Open.
type Option func(*config)

type config struct {
	version egl.Version
	mode    int
}

func newConfig(opts []Option) config {
	cfg := config{version: egl.Version15, mode: defaultMode}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithVersion limits symbol resolution to the entry points of EGL v and
// earlier. The default is EGL 1.5.
func WithVersion(v egl.Version) Option {
	return func(c *config) { c.version = v }
}

// WithMode sets the dlopen flags. The default is RTLD_NOW|RTLD_LOCAL.
func WithMode(mode int) Option {
	return func(c *config) { c.mode = mode }
}
