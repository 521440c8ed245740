package egltest

import (
	"math"
	"time"
	"unsafe"

	"github.com/gogpu/egl"
)

// HoldFences makes fence syncs created from now on start unsignaled until
// Signal is called. By default a fence is signaled when it is created, since
// the driver executes no commands.
func (d *Driver) HoldFences(hold bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.holdFences = hold
}

// Signal signals s, waking every ClientWaitSync blocked on it. Signalling
// twice is a no-op.
func (d *Driver) Signal(s egl.Sync) {
	d.mu.Lock()
	o := d.lookup(s.Ptr(), kindSync)
	d.mu.Unlock()
	if o != nil {
		o.sync.signal()
	}
}

// CreateSync creates a fence or an OpenCL event sync. Fences need a current
// context; CL event syncs need an EGL_CL_EVENT_HANDLE attribute and stay
// unsignaled until Signal.
func (d *Driver) CreateSync(dpy unsafe.Pointer, typ egl.Enum, attribList *egl.Attrib) unsafe.Pointer {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglCreateSync") {
		return nil
	}
	list := readAttribList(attribList)
	d.lastAttribs["eglCreateSync"] = list
	disp := d.initialized(dpy)
	if disp == nil {
		return nil
	}
	var haveEvent bool
	for i := 0; i+1 < len(list) && list[i] != egl.AttribNone; i += 2 {
		if typ != egl.SyncCLEvent || list[i] != egl.CLEventHandle {
			d.setError(egl.BadAttribute)
			return nil
		}
		haveEvent = true
	}
	st := &syncState{typ: typ, signaled: make(chan struct{})}
	switch typ {
	case egl.SyncFence:
		if d.current.ctx == nil || d.current.dpy != disp {
			d.setError(egl.BadMatch)
			return nil
		}
		if !d.holdFences {
			st.signal()
		}
	case egl.SyncCLEvent:
		if !haveEvent {
			d.setError(egl.BadAttribute)
			return nil
		}
	default:
		d.setError(egl.BadParameter)
		return nil
	}
	o := d.newObject(kindSync, disp)
	o.sync = st
	return handle(o)
}

// syncOf resolves a sync of an initialized display. Invalid syncs report
// BadParameter. The caller holds d.mu.
func (d *Driver) syncOf(dpy, s unsafe.Pointer) *object {
	disp := d.initialized(dpy)
	if disp == nil {
		return nil
	}
	return d.owned(disp, s, kindSync, egl.BadParameter)
}

// DestroySync destroys a sync. Waiters blocked on it are released as if it
// had been signaled.
func (d *Driver) DestroySync(dpy, sync unsafe.Pointer) egl.Boolean {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglDestroySync") {
		return egl.False
	}
	o := d.syncOf(dpy, sync)
	if o == nil {
		return egl.False
	}
	o.sync.signal()
	d.free(o)
	return egl.True
}

// ClientWaitSync blocks until the sync is signaled or timeout nanoseconds
// pass. The driver lock is not held while waiting.
func (d *Driver) ClientWaitSync(dpy, sync unsafe.Pointer, flags egl.Int, timeout egl.Time) egl.Int {
	d.mu.Lock()
	if d.enter("eglClientWaitSync") {
		d.mu.Unlock()
		return egl.Int(egl.False)
	}
	o := d.syncOf(dpy, sync)
	if o == nil {
		d.mu.Unlock()
		return egl.Int(egl.False)
	}
	if flags&^egl.SyncFlushCommandsBit != 0 {
		d.setError(egl.BadParameter)
		d.mu.Unlock()
		return egl.Int(egl.False)
	}
	signaled := o.sync.signaled
	d.mu.Unlock()

	switch {
	case timeout == 0:
		select {
		case <-signaled:
			return egl.ConditionSatisfied
		default:
			return egl.TimeoutExpired
		}
	case timeout == egl.Forever || timeout > math.MaxInt64:
		<-signaled
		return egl.ConditionSatisfied
	}
	t := time.NewTimer(time.Duration(timeout))
	defer t.Stop()
	select {
	case <-signaled:
		return egl.ConditionSatisfied
	case <-t.C:
		return egl.TimeoutExpired
	}
}

// GetSyncAttrib reports SyncType, SyncStatus and SyncCondition.
func (d *Driver) GetSyncAttrib(dpy, sync unsafe.Pointer, attribute egl.Int, value *egl.Attrib) egl.Boolean {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglGetSyncAttrib") {
		return egl.False
	}
	o := d.syncOf(dpy, sync)
	if o == nil {
		return egl.False
	}
	switch attribute {
	case egl.SyncType:
		*value = egl.Attrib(o.sync.typ)
	case egl.SyncStatus:
		*value = egl.Unsignaled
		if o.sync.isSignaled() {
			*value = egl.Signaled
		}
	case egl.SyncCondition:
		*value = egl.SyncPriorCommandsComplete
		if o.sync.typ == egl.SyncCLEvent {
			*value = egl.SyncCLEventComplete
		}
	default:
		d.setError(egl.BadAttribute)
		return egl.False
	}
	return egl.True
}

// WaitSync needs a current context and zero flags. The driver has no
// server-side queue, so it returns at once.
func (d *Driver) WaitSync(dpy, sync unsafe.Pointer, flags egl.Int) egl.Boolean {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglWaitSync") {
		return egl.False
	}
	if d.syncOf(dpy, sync) == nil {
		return egl.False
	}
	if flags != 0 {
		d.setError(egl.BadParameter)
		return egl.False
	}
	if d.current.ctx == nil {
		d.setError(egl.BadMatch)
		return egl.False
	}
	return egl.True
}

var imageTargets = map[egl.Enum]bool{
	egl.GLTexture2D:               true,
	egl.GLTexture3D:               true,
	egl.GLTextureCubeMapPositiveX: true,
	egl.GLTextureCubeMapNegativeX: true,
	egl.GLTextureCubeMapPositiveY: true,
	egl.GLTextureCubeMapNegativeY: true,
	egl.GLTextureCubeMapPositiveZ: true,
	egl.GLTextureCubeMapNegativeZ: true,
	egl.GLRenderbuffer:            true,
}

// CreateImage creates an image from a GL texture or renderbuffer name of
// ctx. The name is passed through buffer and must be non-zero.
func (d *Driver) CreateImage(dpy, ctx unsafe.Pointer, target egl.Enum, buffer unsafe.Pointer, attribList *egl.Attrib) unsafe.Pointer {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglCreateImage") {
		return nil
	}
	list := readAttribList(attribList)
	d.lastAttribs["eglCreateImage"] = list
	disp := d.initialized(dpy)
	if disp == nil {
		return nil
	}
	if !imageTargets[target] {
		d.setError(egl.BadParameter)
		return nil
	}
	c := d.owned(disp, ctx, kindContext, egl.BadContext)
	if c == nil {
		return nil
	}
	if buffer == nil {
		d.setError(egl.BadParameter)
		return nil
	}
	img := d.newObject(kindImage, disp)
	for i := 0; i+1 < len(list) && list[i] != egl.AttribNone; i += 2 {
		switch list[i] {
		case egl.GLTextureLevel, egl.GLTextureZOffset, egl.ImagePreserved:
			img.attrs[egl.Int(list[i])] = egl.Int(list[i+1])
		default:
			d.free(img)
			d.setError(egl.BadParameter)
			return nil
		}
	}
	img.config = c.config
	return handle(img)
}

// DestroyImage destroys image.
func (d *Driver) DestroyImage(dpy, image unsafe.Pointer) egl.Boolean {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enter("eglDestroyImage") {
		return egl.False
	}
	disp := d.initialized(dpy)
	if disp == nil {
		return egl.False
	}
	o := d.owned(disp, image, kindImage, egl.BadParameter)
	if o == nil {
		return egl.False
	}
	d.free(o)
	return egl.True
}
