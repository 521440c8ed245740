package main

const header = `// Code generated by eglgen. DO NOT EDIT.
`

const backendTmpl = header + `
package egl

import "unsafe"

// A Backend resolves the native EGL entry points. The link-time backend
// (package backend/static) calls symbols bound by the system linker; the
// load-time backend (package backend/dynamic) calls through function
// pointers looked up in a shared library opened at run time.
//
// Methods take and return the raw ABI values, one per native entry point,
// and report failure only through the native sentinel (EGL_FALSE, a null
// handle or a null string). They never read the error register; that is
// left to Instance. Attribute list pointers must point at a terminated
// list.
//
// Version reports the highest EGL version whose entry points are bound.
// Calling an entry point introduced after that version is undefined for
// the backend; Instance rejects such calls with ErrUnsupported.
//
// A Backend must be safe for concurrent use once constructed.
type Backend interface {
{{- range .}}
{{- if .Sep}}
{{end}}
{{- if .Header}}
	// {{.Header}}
{{- end}}
	{{.Name}}({{.LocalParams}}) {{.LocalResult}}
{{- end}}

	Version() Version
}

var entryPointTable = [...]EntryPoint{
{{- range .}}
	{"{{.Symbol}}", {{.Since}}},
{{- end}}
}
`

const staticTmpl = header + `
//go:build static && cgo && ((linux && !android) || freebsd || openbsd)

package static

/*
#include <EGL/egl.h>
*/
import "C"

import (
	"unsafe"

	"github.com/gogpu/egl"
)
{{range .}}
func (Backend) {{.Name}}({{.Params}}) {{.Result}} {
	return {{printf .CResult (printf "C.%s(%s)" .Symbol .CArgs)}}
}
{{end}}`

const dynamicTmpl = header + `
//go:build darwin || freebsd || linux || netbsd

package dynamic

import (
	"unsafe"

	"github.com/gogpu/egl"
)

// funcs holds one bound Go function per native entry point. Entries above
// the loaded version stay nil.
type funcs struct {
{{- range .}}
	{{.Symbol}} func({{.Types}}) {{.Result}}
{{- end}}
}

func (f *funcs) symbols() []symbol {
	return []symbol{
{{- range .}}
		{"{{.Symbol}}", egl.{{.Since}}, &f.{{.Symbol}}},
{{- end}}
	}
}
{{range .}}
func (b *Backend) {{.Name}}({{.Params}}) {{.Result}} {
	return b.fn.{{.Symbol}}({{.Args}})
}
{{end}}`

const metricsTmpl = header + `
package metrics

import (
	"time"
	"unsafe"

	"github.com/gogpu/egl"
)
{{range .}}
func (b *Backend) {{.Name}}({{.Params}}) {{.Result}} {
	start := time.Now()
	r := b.next.{{.Name}}({{.Args}})
	b.observe("{{.Symbol}}", start, {{.Fail}})
	return r
}
{{end}}`
