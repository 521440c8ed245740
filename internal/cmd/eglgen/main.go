// Command eglgen generates the Backend interface, the link-time and
// load-time backends and the metrics decorator from the entry point table.
//
// Run from the module root:
//
//	go generate .
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// view is an entry with every fragment the templates need precomputed.
type view struct {
	Name   string // Go method name
	Symbol string // C symbol name
	Since  string // e.g. "Version15"
	Header string // version group comment, set on the first entry of a group
	Sep    bool   // blank line before Header

	Params      string // named params, types qualified with egl.
	LocalParams string // named params for use inside package egl
	Types       string // unnamed param types, qualified
	Args        string // argument names
	CArgs       string // arguments converted for cgo

	Result      string
	LocalResult string
	CResult     string // format applied to the cgo call expression
	Fail        string
}

type target struct {
	path string
	tmpl string
}

var targets = []target{
	{"backend_gen.go", backendTmpl},
	{"backend/static/static_gen.go", staticTmpl},
	{"backend/dynamic/dynamic_gen.go", dynamicTmpl},
	{"backend/metrics/metrics_gen.go", metricsTmpl},
}

func main() {
	root := flag.String("root", ".", "module root directory")
	flag.Parse()

	views, err := buildViews(entries)
	if err != nil {
		log.Fatal(err)
	}
	for _, t := range targets {
		src, err := render(t.tmpl, views)
		if err != nil {
			log.Fatalf("%s: %v", t.path, err)
		}
		if err := os.WriteFile(filepath.Join(*root, t.path), src, 0o644); err != nil {
			log.Fatal(err)
		}
	}
}

func buildViews(es []entry) ([]view, error) {
	views := make([]view, 0, len(es))
	prev := ""
	for _, e := range es {
		res, ok := results[e.result]
		if !ok {
			return nil, fmt.Errorf("egl%s: unknown result kind %q", e.name, e.result)
		}
		v := view{
			Name:        e.name,
			Symbol:      "egl" + e.name,
			Since:       "Version" + e.since,
			Result:      res.goType,
			LocalResult: local(res.goType),
			CResult:     res.cConv,
			Fail:        e.fail,
		}
		if v.Fail == "" {
			v.Fail = "false"
		}
		if e.since != prev {
			v.Header = fmt.Sprintf("EGL %c.%c", e.since[0], e.since[1])
			v.Sep = prev != ""
			prev = e.since
		}

		var params, locals, types, args, cargs []string
		for _, p := range e.params {
			k, ok := kinds[p.kind]
			if !ok {
				return nil, fmt.Errorf("egl%s: unknown kind %q", e.name, p.kind)
			}
			params = append(params, p.name+" "+k.goType)
			locals = append(locals, p.name+" "+local(k.goType))
			types = append(types, k.goType)
			args = append(args, p.name)
			cargs = append(cargs, fmt.Sprintf(k.cConv, p.name))
		}
		v.Params = strings.Join(params, ", ")
		v.LocalParams = strings.Join(locals, ", ")
		v.Types = strings.Join(types, ", ")
		v.Args = strings.Join(args, ", ")
		v.CArgs = strings.Join(cargs, ", ")
		views = append(views, v)
	}
	return views, nil
}

func local(goType string) string { return strings.ReplaceAll(goType, "egl.", "") }

func render(text string, views []view) ([]byte, error) {
	tmpl, err := template.New("").Parse(text)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, views); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gofmt: %w\n%s", err, buf.Bytes())
	}
	return src, nil
}
