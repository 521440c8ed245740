//go:build cgo && (freebsd || linux || netbsd)

// Command eglsnap renders a cleared frame into an offscreen pbuffer with
// OpenGL ES 2 and writes it to an image file.
//
//	eglsnap --size 256x256 --color 0.2,0.4,0.8,1 -o frame.png
//
// The output format follows the file extension: .png, .bmp or .tif/.tiff.
// EGL and GL calls run on the main OS thread.
package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unsafe"

	"github.com/faiface/mainthread"
	gl "github.com/go-gl/gl/v3.1/gles2"
	flag "github.com/spf13/pflag"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/egl"
	"github.com/gogpu/egl/backend/dynamic"
	_ "github.com/gogpu/egl/backend/static"
)

type options struct {
	lib      string
	platform string
	size     string
	color    []float64
	output   string
}

func main() {
	var o options
	flag.StringVar(&o.lib, "lib", "", "EGL library path; empty uses the registered backends")
	flag.StringVar(&o.platform, "platform", "surfaceless", "display platform (default, surfaceless)")
	flag.StringVar(&o.size, "size", "256x256", "pbuffer size as WxH")
	flag.Float64SliceVar(&o.color, "color", []float64{0.2, 0.4, 0.8, 1}, "clear colour as r,g,b,a in [0,1]")
	flag.StringVarP(&o.output, "output", "o", "snap.png", "output file")
	flag.Parse()

	mainthread.Run(func() {
		if err := run(o); err != nil {
			log.Fatalf("eglsnap: %v", err)
		}
	})
}

func run(o options) error {
	var w, h int
	if _, err := fmt.Sscanf(o.size, "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
		return fmt.Errorf("invalid size %q", o.size)
	}
	if len(o.color) != 4 {
		return fmt.Errorf("--color needs 4 components, got %d", len(o.color))
	}
	encode, err := encoderFor(o.output)
	if err != nil {
		return err
	}

	var img *image.RGBA
	err = mainthread.CallErr(func() error {
		var err error
		img, err = render(o, w, h)
		return err
	})
	if err != nil {
		return err
	}

	f, err := os.Create(o.output)
	if err != nil {
		return err
	}
	if err := encode(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("eglsnap: wrote %s (%dx%d)", o.output, w, h)
	return nil
}

func openBackend(lib string) (egl.Backend, error) {
	if lib != "" {
		b, err := dynamic.Open(lib)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
	return egl.DefaultBackend()
}

// render draws one frame into a w x h pbuffer and reads it back.
func render(o options, w, h int) (*image.RGBA, error) {
	b, err := openBackend(o.lib)
	if err != nil {
		return nil, err
	}
	defer release(b)
	inst := egl.NewInstance(b)

	var dpy egl.Display
	switch o.platform {
	case "surfaceless":
		dpy, err = inst.GetPlatformDisplay(egl.PlatformSurfacelessMESA, nil, egl.Attribs())
	case "default":
		var ok bool
		if dpy, ok = inst.GetDisplay(egl.DefaultDisplay); !ok {
			err = fmt.Errorf("no default display")
		}
	default:
		err = fmt.Errorf("unknown platform %q", o.platform)
	}
	if err != nil {
		return nil, err
	}
	if _, err := inst.Initialize(dpy); err != nil {
		return nil, err
	}
	defer func() { _ = inst.Terminate(dpy) }()

	if err := inst.BindAPI(egl.OpenGLESAPI); err != nil {
		return nil, err
	}
	cfg, ok, err := inst.ChooseFirstConfig(dpy, egl.Ints(
		egl.SurfaceType, egl.PbufferBit,
		egl.RenderableType, egl.OpenGLES2Bit,
		egl.RedSize, 8, egl.GreenSize, 8, egl.BlueSize, 8, egl.AlphaSize, 8,
	))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no RGBA8888 pbuffer config for OpenGL ES 2")
	}
	surf, err := inst.CreatePbufferSurface(dpy, cfg, egl.Ints(egl.Width, egl.Int(w), egl.Height, egl.Int(h)))
	if err != nil {
		return nil, err
	}
	defer func() { _ = inst.DestroySurface(dpy, surf) }()

	ctx, err := inst.CreateContext(dpy, cfg, egl.NoContext, egl.Ints(egl.ContextClientVersion, 2))
	if err != nil {
		return nil, err
	}
	defer func() { _ = inst.DestroyContext(dpy, ctx) }()

	if err := inst.MakeCurrent(dpy, surf, surf, ctx); err != nil {
		return nil, err
	}
	defer func() { _ = inst.MakeCurrent(dpy, egl.NoSurface, egl.NoSurface, egl.NoContext) }()

	if err := gl.InitWithProcAddrFunc(inst.ProcAddrFunc()); err != nil {
		return nil, fmt.Errorf("load GL: %w", err)
	}
	log.Printf("eglsnap: %s on %s", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))

	c := o.color
	gl.Viewport(0, 0, int32(w), int32(h))
	gl.ClearColor(float32(c[0]), float32(c[1]), float32(c[2]), float32(c[3]))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Finish()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	flipRows(img)
	return img, nil
}

// flipRows converts GL's bottom-up rows to image order.
func flipRows(img *image.RGBA) {
	h := img.Rect.Dy()
	tmp := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bot := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(tmp, top)
		copy(top, bot)
		copy(bot, tmp)
	}
}

func encoderFor(path string) (func(io.Writer, image.Image) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, m image.Image) error {
			return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	}
	return nil, fmt.Errorf("unsupported output format %q", filepath.Ext(path))
}

// release closes b when it holds native resources.
func release(b egl.Backend) {
	if c, ok := b.(io.Closer); ok {
		if err := c.Close(); err != nil {
			log.Printf("eglsnap: close backend: %v", err)
		}
	}
}
