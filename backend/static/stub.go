//go:build !(static && cgo && ((linux && !android) || freebsd || openbsd))

package static

// Available reports whether the link-time backend was compiled in. Build
// with cgo and -tags static to enable it.
func Available() bool { return false }
