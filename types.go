package egl

import (
	"fmt"
	"unsafe"
)

// Scalar types of the EGL ABI.
type (
	// Boolean is EGLBoolean (unsigned int): True or False.
	Boolean uint32

	// Int is EGLint, a 32-bit signed integer.
	Int int32

	// Enum is EGLenum (unsigned int).
	Enum uint32

	// Attrib is EGLAttrib (intptr_t), the pointer-width attribute type
	// introduced by EGL 1.5.
	Attrib int

	// Time is EGLTime, an unsigned 64-bit nanosecond count.
	Time uint64
)

// Native window-system types, using the EGL_NO_X11 unix ABI: the display is a
// pointer (wl_display*, gbm_device*, Display*) while windows and pixmaps are
// pointer-sized integers.
type (
	NativeDisplayType = unsafe.Pointer
	NativeWindowType  = uintptr
	NativePixmapType  = uintptr
)

// Display is an EGL display connection.
//
// Handles denote driver-side objects; they are plain values and are never
// freed implicitly. Destruction is an explicit Instance call.
type Display struct{ ptr unsafe.Pointer }

// DisplayFromPtr wraps a raw EGLDisplay. The caller guarantees p was obtained
// from the EGL implementation the handle will be used with.
func DisplayFromPtr(p unsafe.Pointer) Display { return Display{ptr: p} }

// Ptr returns the raw EGLDisplay.
func (d Display) Ptr() unsafe.Pointer { return d.ptr }

// IsNil reports whether d is EGL_NO_DISPLAY.
func (d Display) IsNil() bool { return d.ptr == nil }

func (d Display) String() string { return fmt.Sprintf("Display(%p)", d.ptr) }

// Config is an EGL frame buffer configuration. Configs are owned by their
// display and are never destroyed separately.
type Config struct{ ptr unsafe.Pointer }

// ConfigFromPtr wraps a raw EGLConfig.
func ConfigFromPtr(p unsafe.Pointer) Config { return Config{ptr: p} }

// Ptr returns the raw EGLConfig.
func (c Config) Ptr() unsafe.Pointer { return c.ptr }

// IsNil reports whether c is EGL_NO_CONFIG_KHR.
func (c Config) IsNil() bool { return c.ptr == nil }

func (c Config) String() string { return fmt.Sprintf("Config(%p)", c.ptr) }

// Context is an EGL rendering context.
type Context struct{ ptr unsafe.Pointer }

// ContextFromPtr wraps a raw EGLContext.
func ContextFromPtr(p unsafe.Pointer) Context { return Context{ptr: p} }

// Ptr returns the raw EGLContext.
func (c Context) Ptr() unsafe.Pointer { return c.ptr }

// IsNil reports whether c is EGL_NO_CONTEXT.
func (c Context) IsNil() bool { return c.ptr == nil }

func (c Context) String() string { return fmt.Sprintf("Context(%p)", c.ptr) }

// Surface is an EGL window, pbuffer or pixmap surface.
type Surface struct{ ptr unsafe.Pointer }

// SurfaceFromPtr wraps a raw EGLSurface.
func SurfaceFromPtr(p unsafe.Pointer) Surface { return Surface{ptr: p} }

// Ptr returns the raw EGLSurface.
func (s Surface) Ptr() unsafe.Pointer { return s.ptr }

// IsNil reports whether s is EGL_NO_SURFACE.
func (s Surface) IsNil() bool { return s.ptr == nil }

func (s Surface) String() string { return fmt.Sprintf("Surface(%p)", s.ptr) }

// Sync is an EGL 1.5 sync object.
type Sync struct{ ptr unsafe.Pointer }

// SyncFromPtr wraps a raw EGLSync.
func SyncFromPtr(p unsafe.Pointer) Sync { return Sync{ptr: p} }

// Ptr returns the raw EGLSync.
func (s Sync) Ptr() unsafe.Pointer { return s.ptr }

// IsNil reports whether s is EGL_NO_SYNC.
func (s Sync) IsNil() bool { return s.ptr == nil }

func (s Sync) String() string { return fmt.Sprintf("Sync(%p)", s.ptr) }

// Image is an EGL 1.5 image.
type Image struct{ ptr unsafe.Pointer }

// ImageFromPtr wraps a raw EGLImage.
func ImageFromPtr(p unsafe.Pointer) Image { return Image{ptr: p} }

// Ptr returns the raw EGLImage.
func (i Image) Ptr() unsafe.Pointer { return i.ptr }

// IsNil reports whether i is EGL_NO_IMAGE.
func (i Image) IsNil() bool { return i.ptr == nil }

func (i Image) String() string { return fmt.Sprintf("Image(%p)", i.ptr) }

// ClientBuffer is an EGLClientBuffer: a client API object (VGImage, GL
// texture name, AHardwareBuffer, ...) passed through to the driver.
type ClientBuffer struct{ ptr unsafe.Pointer }

// ClientBufferFromPtr wraps a raw EGLClientBuffer.
func ClientBufferFromPtr(p unsafe.Pointer) ClientBuffer { return ClientBuffer{ptr: p} }

// Ptr returns the raw EGLClientBuffer.
func (b ClientBuffer) Ptr() unsafe.Pointer { return b.ptr }

// IsNil reports whether b is a null client buffer.
func (b ClientBuffer) IsNil() bool { return b.ptr == nil }

// Null handle sentinels.
var (
	NoDisplay Display
	NoConfig  Config
	NoContext Context
	NoSurface Surface
	NoSync    Sync
	NoImage   Image
)

// DefaultDisplay is EGL_DEFAULT_DISPLAY.
var DefaultDisplay NativeDisplayType

// Version is an EGL major.minor version.
type Version struct {
	Major, Minor int
}

// Known EGL versions.
var (
	Version10 = Version{1, 0}
	Version11 = Version{1, 1}
	Version12 = Version{1, 2}
	Version13 = Version{1, 3}
	Version14 = Version{1, 4}
	Version15 = Version{1, 5}
)

// AtLeast reports whether v >= o.
func (v Version) AtLeast(o Version) bool {
	if v.Major != o.Major {
		return v.Major > o.Major
	}
	return v.Minor >= o.Minor
}

func (v Version) String() string { return fmt.Sprintf("%d.%d", v.Major, v.Minor) }
