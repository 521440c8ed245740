package egl

import (
	"math"
	"unsafe"
)

// bufferSize clamps a caller buffer length to the EGLint range.
func bufferSize(n int) Int { return Int(min(n, math.MaxInt32)) }

// MatchingConfigCount returns the number of configs of dpy matching
// attribs.
func (i *Instance) MatchingConfigCount(dpy Display, attribs IntList) (int, error) {
	const fn = "eglChooseConfig"
	if err := attribs.Validate(); err != nil {
		return 0, invalid(fn, err)
	}
	var n Int
	err := i.check(fn, func() bool {
		return i.b.ChooseConfig(dpy.ptr, attribs.ptr(), nil, 0, &n) != False
	})
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// ChooseConfig fills configs with up to len(configs) configs of dpy
// matching attribs, best match first, and returns how many were written.
func (i *Instance) ChooseConfig(dpy Display, attribs IntList, configs []Config) (int, error) {
	const fn = "eglChooseConfig"
	if err := attribs.Validate(); err != nil {
		return 0, invalid(fn, err)
	}
	// A null array would make the driver report the total count, so an
	// empty buffer still passes a (zero-sized) array.
	raw := make([]unsafe.Pointer, max(len(configs), 1))
	var n Int
	err := i.check(fn, func() bool {
		return i.b.ChooseConfig(dpy.ptr, attribs.ptr(), &raw[0], bufferSize(len(configs)), &n) != False
	})
	if err != nil {
		return 0, err
	}
	return copyConfigs(configs, raw, n), nil
}

// ChooseFirstConfig returns the best config of dpy matching attribs. ok is
// false when no config matches.
func (i *Instance) ChooseFirstConfig(dpy Display, attribs IntList) (cfg Config, ok bool, err error) {
	var buf [1]Config
	n, err := i.ChooseConfig(dpy, attribs, buf[:])
	if err != nil || n == 0 {
		return NoConfig, false, err
	}
	return buf[0], true, nil
}

// ChooseConfigs returns every config of dpy matching attribs, best match
// first.
func (i *Instance) ChooseConfigs(dpy Display, attribs IntList) ([]Config, error) {
	n, err := i.MatchingConfigCount(dpy, attribs)
	if err != nil || n == 0 {
		return nil, err
	}
	configs := make([]Config, n)
	n, err = i.ChooseConfig(dpy, attribs, configs)
	if err != nil {
		return nil, err
	}
	return configs[:n], nil
}

// GetConfigCount returns the number of configs of dpy.
func (i *Instance) GetConfigCount(dpy Display) (int, error) {
	var n Int
	err := i.check("eglGetConfigs", func() bool {
		return i.b.GetConfigs(dpy.ptr, nil, 0, &n) != False
	})
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// GetConfigs fills configs with up to len(configs) configs of dpy and
// returns how many were written.
func (i *Instance) GetConfigs(dpy Display, configs []Config) (int, error) {
	raw := make([]unsafe.Pointer, max(len(configs), 1))
	var n Int
	err := i.check("eglGetConfigs", func() bool {
		return i.b.GetConfigs(dpy.ptr, &raw[0], bufferSize(len(configs)), &n) != False
	})
	if err != nil {
		return 0, err
	}
	return copyConfigs(configs, raw, n), nil
}

// AllConfigs returns every config of dpy.
func (i *Instance) AllConfigs(dpy Display) ([]Config, error) {
	n, err := i.GetConfigCount(dpy)
	if err != nil || n == 0 {
		return nil, err
	}
	configs := make([]Config, n)
	n, err = i.GetConfigs(dpy, configs)
	if err != nil {
		return nil, err
	}
	return configs[:n], nil
}

func copyConfigs(dst []Config, raw []unsafe.Pointer, n Int) int {
	k := min(int(n), len(dst))
	for j := range k {
		dst[j] = Config{raw[j]}
	}
	return k
}

// GetConfigAttrib returns the value of attribute for cfg.
func (i *Instance) GetConfigAttrib(dpy Display, cfg Config, attribute Int) (Int, error) {
	var v Int
	err := i.check("eglGetConfigAttrib", func() bool {
		return i.b.GetConfigAttrib(dpy.ptr, cfg.ptr, attribute, &v) != False
	})
	if err != nil {
		return 0, err
	}
	return v, nil
}
