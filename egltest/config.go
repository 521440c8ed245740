package egltest

import (
	"maps"
	"sort"
	"unsafe"

	"github.com/gogpu/egl"
)

// ConfigSpec lists the attributes of one config. ConfigID is assigned by
// the driver from the config's position.
type ConfigSpec map[egl.Int]egl.Int

func (s ConfigSpec) withID(id egl.Int) map[egl.Int]egl.Int {
	m := maps.Clone(map[egl.Int]egl.Int(s))
	if m == nil {
		m = make(map[egl.Int]egl.Int)
	}
	m[egl.ConfigID] = id
	return m
}

// DefaultConfigs returns the configs a New driver enumerates:
//
//  1. RGBA8888, depth 24, stencil 8, window and pbuffer, GLES 1-3 and GL
//  2. RGB888, no depth, pbuffer and pixmap, GLES 1-2
//  3. RGB565, depth 16, window and pbuffer, GLES 1-2
//  4. RGBA8888, depth 24, 4x multisampled, window, GLES 1-3
func DefaultConfigs() []ConfigSpec {
	const (
		es   = egl.OpenGLESBit | egl.OpenGLES2Bit
		es3  = es | egl.OpenGLES3Bit
		full = es3 | egl.OpenGLBit
	)
	base := func(r, g, b, a, depth, stencil egl.Int, surface, renderable egl.Int) ConfigSpec {
		return ConfigSpec{
			egl.RedSize:           r,
			egl.GreenSize:         g,
			egl.BlueSize:          b,
			egl.AlphaSize:         a,
			egl.BufferSize:        r + g + b + a,
			egl.DepthSize:         depth,
			egl.StencilSize:       stencil,
			egl.SurfaceType:       surface,
			egl.RenderableType:    renderable,
			egl.Conformant:        renderable,
			egl.ColorBufferType:   egl.RGBBuffer,
			egl.ConfigCaveat:      egl.None,
			egl.Level:             0,
			egl.MinSwapInterval:   0,
			egl.MaxSwapInterval:   1,
			egl.MaxPbufferWidth:   4096,
			egl.MaxPbufferHeight:  4096,
			egl.MaxPbufferPixels:  4096 * 4096,
			egl.NativeRenderable:  egl.Int(egl.False),
			egl.TransparentType:   egl.None,
			egl.BindToTextureRGB:  egl.Int(egl.True),
			egl.BindToTextureRGBA: egl.Int(egl.True),
			egl.Samples:           0,
			egl.SampleBuffers:     0,
		}
	}
	msaa := base(8, 8, 8, 8, 24, 8, egl.WindowBit, es3)
	msaa[egl.Samples] = 4
	msaa[egl.SampleBuffers] = 1
	return []ConfigSpec{
		base(8, 8, 8, 8, 24, 8, egl.WindowBit|egl.PbufferBit, full),
		base(8, 8, 8, 0, 0, 0, egl.PbufferBit|egl.PixmapBit, es),
		base(5, 6, 5, 0, 16, 0, egl.WindowBit|egl.PbufferBit, es),
		msaa,
	}
}

type matchRule int

const (
	atLeast matchRule = iota + 1
	exact
	mask
	ignored
)

var configRules = map[egl.Int]matchRule{
	egl.BufferSize:            atLeast,
	egl.RedSize:               atLeast,
	egl.GreenSize:             atLeast,
	egl.BlueSize:              atLeast,
	egl.LuminanceSize:         atLeast,
	egl.AlphaSize:             atLeast,
	egl.AlphaMaskSize:         atLeast,
	egl.DepthSize:             atLeast,
	egl.StencilSize:           atLeast,
	egl.Samples:               atLeast,
	egl.SampleBuffers:         atLeast,
	egl.BindToTextureRGB:      exact,
	egl.BindToTextureRGBA:     exact,
	egl.ColorBufferType:       exact,
	egl.ConfigCaveat:          exact,
	egl.ConfigID:              exact,
	egl.Level:                 exact,
	egl.NativeRenderable:      exact,
	egl.NativeVisualType:      exact,
	egl.TransparentType:       exact,
	egl.TransparentRedValue:   exact,
	egl.TransparentGreenValue: exact,
	egl.TransparentBlueValue:  exact,
	egl.MaxSwapInterval:       exact,
	egl.MinSwapInterval:       exact,
	egl.SurfaceType:           mask,
	egl.RenderableType:        mask,
	egl.Conformant:            mask,
	egl.MaxPbufferWidth:       ignored,
	egl.MaxPbufferHeight:      ignored,
	egl.MaxPbufferPixels:      ignored,
	egl.NativeVisualID:        ignored,
}

// parseCriteria reads a ChooseConfig list. It reports BadAttribute for keys
// that are not config attributes.
func parseCriteria(list egl.IntList) (map[egl.Int]egl.Int, egl.Int) {
	crit := map[egl.Int]egl.Int{
		egl.SurfaceType:    egl.WindowBit,
		egl.RenderableType: egl.OpenGLESBit,
	}
	for i := 0; i+1 < len(list) && list[i] != egl.None; i += 2 {
		if _, ok := configRules[list[i]]; !ok {
			return nil, egl.BadAttribute
		}
		crit[list[i]] = list[i+1]
	}
	return crit, 0
}

func matches(cfg map[egl.Int]egl.Int, crit map[egl.Int]egl.Int) bool {
	for key, want := range crit {
		if want == egl.DontCare {
			continue
		}
		have := cfg[key]
		switch configRules[key] {
		case atLeast:
			if have < want {
				return false
			}
		case exact:
			if have != want {
				return false
			}
		case mask:
			if have&want != want {
				return false
			}
		}
	}
	return true
}

func caveatRank(v egl.Int) int {
	switch v {
	case egl.SlowConfig:
		return 1
	case egl.NonConformantConfig:
		return 2
	}
	return 0
}

// sortConfigs orders matches the way EGL does for the attributes the
// driver models: caveat, then more requested color bits, then smaller
// buffer, sample, depth and stencil sizes, then ConfigID.
func sortConfigs(cfgs []*object, crit map[egl.Int]egl.Int) {
	colorBits := func(o *object) egl.Int {
		var n egl.Int
		for _, k := range []egl.Int{egl.RedSize, egl.GreenSize, egl.BlueSize, egl.AlphaSize} {
			if w, ok := crit[k]; ok && w != 0 && w != egl.DontCare {
				n += o.attrs[k]
			}
		}
		return n
	}
	sort.SliceStable(cfgs, func(i, j int) bool {
		a, b := cfgs[i], cfgs[j]
		if ra, rb := caveatRank(a.attrs[egl.ConfigCaveat]), caveatRank(b.attrs[egl.ConfigCaveat]); ra != rb {
			return ra < rb
		}
		if ca, cb := colorBits(a), colorBits(b); ca != cb {
			return ca > cb
		}
		for _, k := range []egl.Int{egl.BufferSize, egl.SampleBuffers, egl.Samples, egl.DepthSize, egl.StencilSize} {
			if a.attrs[k] != b.attrs[k] {
				return a.attrs[k] < b.attrs[k]
			}
		}
		return a.attrs[egl.ConfigID] < b.attrs[egl.ConfigID]
	})
}

func writeConfigs(found []*object, configs *unsafe.Pointer, size egl.Int, num *egl.Int) {
	if configs == nil {
		*num = egl.Int(len(found))
		return
	}
	n := min(int(size), len(found))
	out := unsafe.Slice(configs, max(n, 0))
	for i := range out {
		out[i] = handle(found[i])
	}
	*num = egl.Int(max(n, 0))
}

// ChooseConfig returns configs of dpy matching attribList.
func (d *Driver) ChooseConfig(dpy unsafe.Pointer, attribList *egl.Int, configs *unsafe.Pointer, configSize egl.Int, numConfig *egl.Int) egl.Boolean {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglChooseConfig") {
		return egl.False
	}
	list := readIntList(attribList)
	d.lastInts["eglChooseConfig"] = list
	disp := d.initialized(dpy)
	if disp == nil {
		return egl.False
	}
	if numConfig == nil {
		d.setError(egl.BadParameter)
		return egl.False
	}
	crit, bad := parseCriteria(list)
	if bad != 0 {
		d.setError(bad)
		return egl.False
	}
	var found []*object
	for _, cfg := range disp.display.configs {
		if matches(cfg.attrs, crit) {
			found = append(found, cfg)
		}
	}
	sortConfigs(found, crit)
	writeConfigs(found, configs, configSize, numConfig)
	return egl.True
}

// GetConfigs returns all configs of dpy.
func (d *Driver) GetConfigs(dpy unsafe.Pointer, configs *unsafe.Pointer, configSize egl.Int, numConfig *egl.Int) egl.Boolean {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglGetConfigs") {
		return egl.False
	}
	disp := d.initialized(dpy)
	if disp == nil {
		return egl.False
	}
	if numConfig == nil {
		d.setError(egl.BadParameter)
		return egl.False
	}
	writeConfigs(disp.display.configs, configs, configSize, numConfig)
	return egl.True
}

// GetConfigAttrib returns one attribute of config.
func (d *Driver) GetConfigAttrib(dpy, config unsafe.Pointer, attribute egl.Int, value *egl.Int) egl.Boolean {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglGetConfigAttrib") {
		return egl.False
	}
	disp := d.initialized(dpy)
	if disp == nil {
		return egl.False
	}
	cfg := d.owned(disp, config, kindConfig, egl.BadConfig)
	if cfg == nil {
		return egl.False
	}
	v, ok := cfg.attrs[attribute]
	if !ok {
		if _, known := configRules[attribute]; !known {
			d.setError(egl.BadAttribute)
			return egl.False
		}
	}
	*value = v
	return egl.True
}
