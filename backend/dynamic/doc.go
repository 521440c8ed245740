// Package dynamic provides the load-time EGL backend.
//
// Open loads an EGL shared library with dlopen and resolves every entry
// point up to the requested EGL version with dlsym, then binds one typed Go
// function per symbol with purego. No EGL headers or libraries are needed
// at build time and cgo is optional.
//
// Construction is atomic: every symbol is looked up before any function is
// bound, and a missing symbol closes the library and returns an
// *egl.SymbolError naming it.
//
// # Usage
//
//	b, err := dynamic.Open("libEGL.so.1")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//	inst := egl.NewInstance(b)
//
// Drivers that only implement EGL 1.4 can be loaded by limiting the
// resolved entry points:
//
//	b, err := dynamic.Open("libEGL.so.1", dynamic.WithVersion(egl.Version14))
//
// # Registration
//
// Importing the package registers the "dynamic" loader, which opens the
// platform's default library name (see OpenDefault).
//
// # Thread Safety
//
// A Backend is read-only after Open and safe for concurrent use until
// Close.
package dynamic
