package egl

// Boolean values.
const (
	False Boolean = 0
	True  Boolean = 1
)

// None terminates an IntList.
const None = 0x3038

// AttribNone terminates an AttribList.
const AttribNone Attrib = 0x3038

// Forever is EGL_FOREVER, the infinite ClientWaitSync timeout.
const Forever Time = 0xFFFFFFFFFFFFFFFF

// EGL 1.0 tokens.
const (
	Success           = 0x3000
	NotInitialized    = 0x3001
	BadAccess         = 0x3002
	BadAlloc          = 0x3003
	BadAttribute      = 0x3004
	BadConfig         = 0x3005
	BadContext        = 0x3006
	BadCurrentSurface = 0x3007
	BadDisplay        = 0x3008
	BadMatch          = 0x3009
	BadNativePixmap   = 0x300A
	BadNativeWindow   = 0x300B
	BadParameter      = 0x300C
	BadSurface        = 0x300D

	BufferSize            = 0x3020
	AlphaSize             = 0x3021
	BlueSize              = 0x3022
	GreenSize             = 0x3023
	RedSize               = 0x3024
	DepthSize             = 0x3025
	StencilSize           = 0x3026
	ConfigCaveat          = 0x3027
	ConfigID              = 0x3028
	Level                 = 0x3029
	MaxPbufferHeight      = 0x302A
	MaxPbufferPixels      = 0x302B
	MaxPbufferWidth       = 0x302C
	NativeRenderable      = 0x302D
	NativeVisualID        = 0x302E
	NativeVisualType      = 0x302F
	Samples               = 0x3031
	SampleBuffers         = 0x3032
	SurfaceType           = 0x3033
	TransparentType       = 0x3034
	TransparentBlueValue  = 0x3035
	TransparentGreenValue = 0x3036
	TransparentRedValue   = 0x3037

	SlowConfig          = 0x3050
	NonConformantConfig = 0x3051
	TransparentRGB      = 0x3052
	Vendor              = 0x3053
	VersionString       = 0x3054
	Extensions          = 0x3055
	Height              = 0x3056
	Width               = 0x3057
	LargestPbuffer      = 0x3058
	Draw                = 0x3059
	Read                = 0x305A
	CoreNativeEngine    = 0x305B

	DontCare = -1

	PbufferBit = 0x0001
	PixmapBit  = 0x0002
	WindowBit  = 0x0004
)

// EGL 1.1 tokens.
const (
	ContextLost = 0x300E

	BindToTextureRGB  = 0x3039
	BindToTextureRGBA = 0x303A
	MinSwapInterval   = 0x303B
	MaxSwapInterval   = 0x303C

	NoTexture     = 0x305C
	TextureRGB    = 0x305D
	TextureRGBA   = 0x305E
	Texture2D     = 0x305F
	TextureFormat = 0x3080
	TextureTarget = 0x3081
	MipmapTexture = 0x3082
	MipmapLevel   = 0x3083
	BackBuffer    = 0x3084
)

// EGL 1.2 tokens.
const (
	LuminanceSize        = 0x303D
	AlphaMaskSize        = 0x303E
	ColorBufferType      = 0x303F
	RenderableType       = 0x3040
	SingleBuffer         = 0x3085
	RenderBuffer         = 0x3086
	Colorspace           = 0x3087
	AlphaFormat          = 0x3088
	ColorspaceSRGB       = 0x3089
	ColorspaceLinear     = 0x308A
	AlphaFormatNonpre    = 0x308B
	AlphaFormatPre       = 0x308C
	ClientAPIs           = 0x308D
	RGBBuffer            = 0x308E
	LuminanceBuffer      = 0x308F
	HorizontalResolution = 0x3090
	VerticalResolution   = 0x3091
	PixelAspectRatio     = 0x3092
	SwapBehavior         = 0x3093
	BufferPreserved      = 0x3094
	BufferDestroyed      = 0x3095
	OpenVGImage          = 0x3096
	ContextClientType    = 0x3097

	DisplayScaling = 10000
	Unknown        = -1

	OpenGLESBit = 0x0001
	OpenVGBit   = 0x0002

	OpenGLESAPI Enum = 0x30A0
	OpenVGAPI   Enum = 0x30A1
)

// EGL 1.3 tokens.
const (
	MatchNativePixmap    = 0x3041
	Conformant           = 0x3042
	ContextClientVersion = 0x3098

	OpenGLES2Bit = 0x0004

	VGColorspace          = 0x3087
	VGAlphaFormat         = 0x3088
	VGColorspaceSRGB      = 0x3089
	VGColorspaceLinear    = 0x308A
	VGAlphaFormatNonpre   = 0x308B
	VGAlphaFormatPre      = 0x308C
	VGColorspaceLinearBit = 0x0020
	VGAlphaFormatPreBit   = 0x0040
)

// EGL 1.4 tokens.
const (
	MultisampleResolve        = 0x3099
	MultisampleResolveDefault = 0x309A
	MultisampleResolveBox     = 0x309B

	OpenGLBit                = 0x0008
	MultisampleResolveBoxBit = 0x0200
	SwapBehaviorPreservedBit = 0x0400

	OpenGLAPI Enum = 0x30A2
)

// EGL 1.5 tokens.
const (
	ContextMajorVersion                    = 0x3098
	ContextMinorVersion                    = 0x30FB
	ContextOpenGLProfileMask               = 0x30FD
	ContextOpenGLResetNotificationStrategy = 0x31BD
	NoResetNotification                    = 0x31BE
	LoseContextOnReset                     = 0x31BF
	ContextOpenGLCoreProfileBit            = 0x0001
	ContextOpenGLCompatibilityProfileBit   = 0x0002
	ContextOpenGLDebug                     = 0x31B0
	ContextOpenGLForwardCompatible         = 0x31B1
	ContextOpenGLRobustAccess              = 0x31B2
	OpenGLES3Bit                           = 0x0040

	CLEventHandle             = 0x309C
	SyncCLEvent               = 0x30FE
	SyncCLEventComplete       = 0x30FF
	SyncPriorCommandsComplete = 0x30F0
	SyncType                  = 0x30F7
	SyncStatus                = 0x30F1
	SyncCondition             = 0x30F8
	Signaled                  = 0x30F2
	Unsignaled                = 0x30F3
	SyncFlushCommandsBit      = 0x0001
	TimeoutExpired            = 0x30F5
	ConditionSatisfied        = 0x30F6
	SyncFence                 = 0x30F9

	GLColorspace       = 0x309D
	GLColorspaceSRGB   = 0x3089
	GLColorspaceLinear = 0x308A

	GLTexture2D               = 0x30B1
	GLTexture3D               = 0x30B2
	GLTextureCubeMapPositiveX = 0x30B3
	GLTextureCubeMapNegativeX = 0x30B4
	GLTextureCubeMapPositiveY = 0x30B5
	GLTextureCubeMapNegativeY = 0x30B6
	GLTextureCubeMapPositiveZ = 0x30B7
	GLTextureCubeMapNegativeZ = 0x30B8
	GLRenderbuffer            = 0x30B9
	GLTextureLevel            = 0x30BC
	GLTextureZOffset          = 0x30BD
	ImagePreserved            = 0x30D2
)

// Platform tokens from the EGL_KHR_platform_*, EGL_EXT_platform_device and
// EGL_MESA_platform_surfaceless extensions, for use with GetPlatformDisplay.
const (
	PlatformAndroidKHR      Enum = 0x3141
	PlatformDeviceEXT       Enum = 0x313F
	PlatformGBMKHR          Enum = 0x31D7
	PlatformWaylandKHR      Enum = 0x31D8
	PlatformX11KHR          Enum = 0x31D5
	PlatformSurfacelessMESA Enum = 0x31DD

	PlatformX11ScreenKHR = 0x31D6
)
