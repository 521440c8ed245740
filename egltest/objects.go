package egltest

import (
	"sync"
	"unsafe"

	"github.com/gogpu/egl"
)

type kind int

const (
	kindDisplay kind = iota + 1
	kindConfig
	kindContext
	kindSurface
	kindSync
	kindImage
)

// object backs every handle the driver returns. Handles are the object's
// address; the objects map keeps it alive.
type object struct {
	kind  kind
	owner *object // display of configs, contexts, surfaces, syncs and images

	display *displayState
	attrs   map[egl.Int]egl.Int
	config  *object
	surface egl.Int // WindowBit, PixmapBit or PbufferBit for surfaces
	sync    *syncState
}

type displayState struct {
	initialized bool
	configs     []*object
	interval    egl.Int
}

type syncState struct {
	typ      egl.Enum
	signaled chan struct{}
	once     sync.Once
}

func (s *syncState) signal() { s.once.Do(func() { close(s.signaled) }) }

func (s *syncState) isSignaled() bool {
	select {
	case <-s.signaled:
		return true
	default:
		return false
	}
}

func (d *Driver) newObject(k kind, owner *object) *object {
	o := &object{kind: k, owner: owner, attrs: make(map[egl.Int]egl.Int)}
	d.objects[unsafe.Pointer(o)] = o
	return o
}

func (d *Driver) free(o *object) { delete(d.objects, unsafe.Pointer(o)) }

func handle(o *object) unsafe.Pointer {
	if o == nil {
		return nil
	}
	return unsafe.Pointer(o)
}

func (d *Driver) lookup(p unsafe.Pointer, k kind) *object {
	o, ok := d.objects[p]
	if !ok || o.kind != k {
		return nil
	}
	return o
}

// initialized resolves an initialized display, loading the register on
// failure.
func (d *Driver) initialized(p unsafe.Pointer) *object {
	o := d.lookup(p, kindDisplay)
	switch {
	case o == nil:
		d.setError(egl.BadDisplay)
		return nil
	case !o.display.initialized:
		d.setError(egl.NotInitialized)
		return nil
	}
	return o
}

// owned resolves a handle of kind k belonging to dpy, loading bad on
// failure.
func (d *Driver) owned(dpy *object, p unsafe.Pointer, k kind, bad egl.Int) *object {
	o := d.lookup(p, k)
	if o == nil || o.owner != dpy {
		d.setError(bad)
		return nil
	}
	return o
}
