// Package static provides the link-time EGL backend.
//
// Every Backend method is a direct cgo call to the symbol bound by the
// system linker, so there is no symbol lookup at run time and no per-call
// indirection beyond cgo itself.
//
// # Build Tags
//
// The backend requires cgo and the "static" build tag:
//
//	go build -tags static ./...
//
// The EGL development files are located with pkg-config on Linux
// (pkg-config egl) and linked with -lEGL on FreeBSD and OpenBSD. The build
// fails when the headers or the library are missing, or when the headers
// predate EGL 1.5.
//
// Without the tag a stub is compiled, Available reports false and no loader
// is registered.
//
// # Registration
//
// Importing the package registers the "static" loader, which the registry
// prefers over "dynamic":
//
//	import _ "github.com/gogpu/egl/backend/static"
//
//	b, err := egl.DefaultBackend()
package static
