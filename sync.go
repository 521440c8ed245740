package egl

import (
	"time"
	"unsafe"
)

// CreateSync creates a sync object of type typ (SyncFence or SyncCLEvent).
func (i *Instance) CreateSync(dpy Display, typ Enum, attribs AttribList) (Sync, error) {
	const fn = "eglCreateSync"
	if err := attribs.Validate(); err != nil {
		return NoSync, invalid(fn, err)
	}
	var p unsafe.Pointer
	err := i.check(fn, func() bool {
		p = i.b.CreateSync(dpy.ptr, typ, attribs.ptr())
		return p != nil
	})
	if err != nil {
		return NoSync, err
	}
	return Sync{p}, nil
}

// DestroySync destroys s. s must have been created on dpy.
func (i *Instance) DestroySync(dpy Display, s Sync) error {
	return i.check("eglDestroySync", func() bool {
		return i.b.DestroySync(dpy.ptr, s.ptr) != False
	})
}

// ClientWaitSync blocks the calling thread until s is signaled or timeout
// nanoseconds pass, and returns ConditionSatisfied or TimeoutExpired.
// A Forever timeout waits indefinitely. The wait cannot be cancelled.
// s must have been created on dpy.
func (i *Instance) ClientWaitSync(dpy Display, s Sync, flags Int, timeout Time) (Int, error) {
	var status Int
	err := i.check("eglClientWaitSync", func() bool {
		status = i.b.ClientWaitSync(dpy.ptr, s.ptr, flags, timeout)
		return status != Int(False)
	})
	if err != nil {
		return 0, err
	}
	return status, nil
}

// Timeout converts d to a ClientWaitSync timeout. Negative durations map
// to zero.
func Timeout(d time.Duration) Time {
	if d < 0 {
		return 0
	}
	return Time(d.Nanoseconds())
}

// GetSyncAttrib returns the value of attribute (SyncType, SyncStatus or
// SyncCondition) for s.
func (i *Instance) GetSyncAttrib(dpy Display, s Sync, attribute Int) (Attrib, error) {
	var v Attrib
	err := i.check("eglGetSyncAttrib", func() bool {
		return i.b.GetSyncAttrib(dpy.ptr, s.ptr, attribute, &v) != False
	})
	if err != nil {
		return 0, err
	}
	return v, nil
}

// WaitSync makes the server wait for s before executing further client API
// commands. It returns without blocking the calling thread.
func (i *Instance) WaitSync(dpy Display, s Sync, flags Int) error {
	return i.check("eglWaitSync", func() bool {
		return i.b.WaitSync(dpy.ptr, s.ptr, flags) != False
	})
}

// CreateImage creates an image from buffer, a client API resource of kind
// target (e.g. GLTexture2D) belonging to ctx.
func (i *Instance) CreateImage(dpy Display, ctx Context, target Enum, buffer ClientBuffer, attribs AttribList) (Image, error) {
	const fn = "eglCreateImage"
	if err := attribs.Validate(); err != nil {
		return NoImage, invalid(fn, err)
	}
	var p unsafe.Pointer
	err := i.check(fn, func() bool {
		p = i.b.CreateImage(dpy.ptr, ctx.ptr, target, buffer.ptr, attribs.ptr())
		return p != nil
	})
	if err != nil {
		return NoImage, err
	}
	return Image{p}, nil
}

// DestroyImage destroys img.
func (i *Instance) DestroyImage(dpy Display, img Image) error {
	return i.check("eglDestroyImage", func() bool {
		return i.b.DestroyImage(dpy.ptr, img.ptr) != False
	})
}
