//go:build darwin || freebsd || linux || netbsd

// Command eglinfo prints the properties of an EGL display: vendor, version,
// client APIs, extensions and the frame buffer configurations.
//
//	eglinfo --platform surfaceless -v
//	eglinfo --lib /usr/lib/libEGL_mesa.so.0 --metrics
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	flag "github.com/spf13/pflag"

	"github.com/gogpu/egl"
	"github.com/gogpu/egl/backend/dynamic"
	"github.com/gogpu/egl/backend/metrics"
	_ "github.com/gogpu/egl/backend/static"
)

type options struct {
	backend  string
	lib      string
	platform string
	version  string
	verbose  bool
	metrics  bool
}

func main() {
	var o options
	flag.StringVar(&o.backend, "backend", "", "backend name ("+strings.Join(egl.Loaders(), ", ")+"); empty picks the best available")
	flag.StringVar(&o.lib, "lib", "", "EGL library path, loaded with the dynamic backend")
	flag.StringVar(&o.platform, "platform", "default", "display platform (default, surfaceless, device)")
	flag.StringVar(&o.version, "egl", "1.5", "highest EGL version to bind when loading --lib")
	flag.BoolVarP(&o.verbose, "verbose", "v", false, "print extensions and every config attribute")
	flag.BoolVar(&o.metrics, "metrics", false, "dump native call metrics on exit")
	flag.Parse()

	if o.verbose {
		egl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if err := run(os.Stdout, o); err != nil {
		log.Fatalf("eglinfo: %v", err)
	}
}

func run(w io.Writer, o options) error {
	b, err := openBackend(o)
	if err != nil {
		return err
	}
	defer release(b)
	var reg *prometheus.Registry
	if o.metrics {
		reg = prometheus.NewRegistry()
		if b, err = metrics.Wrap(b, reg); err != nil {
			return err
		}
		defer func() {
			if err := dumpMetrics(w, reg); err != nil {
				log.Printf("eglinfo: metrics: %v", err)
			}
		}()
	}

	inst := egl.NewInstance(b)
	if exts, err := inst.ClientExtensions(); err == nil {
		printList(w, "Client extensions", exts, o.verbose)
	}

	dpy, err := openDisplay(inst, o.platform)
	if err != nil {
		return err
	}
	v, err := inst.Initialize(dpy)
	if err != nil {
		return err
	}
	defer func() { _ = inst.Terminate(dpy) }()

	fmt.Fprintf(w, "Backend: %T (EGL %s)\n", unwrap(b), b.Version())
	fmt.Fprintf(w, "EGL version: %s\n", v)
	for _, q := range []struct {
		label string
		name  egl.Int
	}{
		{"EGL vendor string", egl.Vendor},
		{"EGL version string", egl.VersionString},
		{"EGL client APIs", egl.ClientAPIs},
	} {
		s, err := inst.QueryString(dpy, q.name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s: %s\n", q.label, s)
	}
	exts, err := inst.Extensions(dpy)
	if err != nil {
		return err
	}
	printList(w, "Display extensions", exts, o.verbose)

	configs, err := inst.AllConfigs(dpy)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Configurations: %d\n", len(configs))
	return printConfigs(w, inst, dpy, configs, o.verbose)
}

func openBackend(o options) (egl.Backend, error) {
	if o.lib != "" {
		v, err := parseVersion(o.version)
		if err != nil {
			return nil, err
		}
		return dynamic.Open(o.lib, dynamic.WithVersion(v))
	}
	if o.backend != "" {
		return egl.OpenBackend(o.backend)
	}
	return egl.DefaultBackend()
}

func parseVersion(s string) (egl.Version, error) {
	var v egl.Version
	if _, err := fmt.Sscanf(s, "%d.%d", &v.Major, &v.Minor); err != nil {
		return v, fmt.Errorf("invalid EGL version %q: %w", s, err)
	}
	return v, nil
}

func openDisplay(inst *egl.Instance, platform string) (egl.Display, error) {
	switch platform {
	case "default":
		dpy, ok := inst.GetDisplay(egl.DefaultDisplay)
		if !ok {
			return egl.NoDisplay, errors.New("no default display")
		}
		return dpy, nil
	case "surfaceless":
		return inst.GetPlatformDisplay(egl.PlatformSurfacelessMESA, nil, egl.Attribs())
	case "device":
		return inst.GetPlatformDisplay(egl.PlatformDeviceEXT, nil, egl.Attribs())
	}
	return egl.NoDisplay, fmt.Errorf("unknown platform %q", platform)
}

func unwrap(b egl.Backend) egl.Backend {
	if m, ok := b.(*metrics.Backend); ok {
		return m.Unwrap()
	}
	return b
}

func printList(w io.Writer, label string, items []string, verbose bool) {
	fmt.Fprintf(w, "%s: %d\n", label, len(items))
	if !verbose {
		return
	}
	for _, s := range items {
		fmt.Fprintf(w, "    %s\n", s)
	}
}

// configColumns are the attributes printed per config; verbose adds the rest.
var configColumns = []struct {
	name string
	attr egl.Int
}{
	{"id", egl.ConfigID},
	{"r", egl.RedSize},
	{"g", egl.GreenSize},
	{"b", egl.BlueSize},
	{"a", egl.AlphaSize},
	{"depth", egl.DepthSize},
	{"stencil", egl.StencilSize},
	{"samples", egl.Samples},
	{"surface", egl.SurfaceType},
	{"renderable", egl.RenderableType},
}

var verboseColumns = []struct {
	name string
	attr egl.Int
}{
	{"caveat", egl.ConfigCaveat},
	{"level", egl.Level},
	{"visual", egl.NativeVisualID},
	{"conformant", egl.Conformant},
	{"minswap", egl.MinSwapInterval},
	{"maxswap", egl.MaxSwapInterval},
}

func printConfigs(w io.Writer, inst *egl.Instance, dpy egl.Display, configs []egl.Config, verbose bool) error {
	cols := configColumns
	if verbose {
		cols = append(cols[:len(cols):len(cols)], verboseColumns...)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', tabwriter.AlignRight)
	for _, c := range cols {
		fmt.Fprintf(tw, "%s\t", c.name)
	}
	fmt.Fprintln(tw)
	for _, cfg := range configs {
		for _, c := range cols {
			v, err := inst.GetConfigAttrib(dpy, cfg, c.attr)
			if err != nil {
				return err
			}
			switch c.attr {
			case egl.SurfaceType:
				fmt.Fprintf(tw, "%s\t", surfaceBits(v))
			case egl.RenderableType:
				fmt.Fprintf(tw, "%s\t", apiBits(v))
			default:
				fmt.Fprintf(tw, "%d\t", v)
			}
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func bits(v egl.Int, names []string, values []egl.Int) string {
	var out []string
	for i, b := range values {
		if v&b != 0 {
			out = append(out, names[i])
		}
	}
	if len(out) == 0 {
		return "-"
	}
	return strings.Join(out, ",")
}

func surfaceBits(v egl.Int) string {
	return bits(v, []string{"win", "pb", "pix"}, []egl.Int{egl.WindowBit, egl.PbufferBit, egl.PixmapBit})
}

func apiBits(v egl.Int) string {
	return bits(v,
		[]string{"es", "es2", "es3", "gl", "vg"},
		[]egl.Int{egl.OpenGLESBit, egl.OpenGLES2Bit, egl.OpenGLES3Bit, egl.OpenGLBit, egl.OpenVGBit})
}

func dumpMetrics(w io.Writer, reg *prometheus.Registry) error {
	mfs, err := reg.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}

// release closes b when it holds native resources.
func release(b egl.Backend) {
	if c, ok := b.(io.Closer); ok {
		if err := c.Close(); err != nil {
			log.Printf("eglinfo: close backend: %v", err)
		}
	}
}
