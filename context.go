package softgl

import (
	"math/bits"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/softgl/gl"
	"github.com/gogpu/softgl/gpu"
)

// maxSourceUnits is the highest unit index expressible as a combiner source
// (gl.TEXTURE0..gl.TEXTURE31).
const maxSourceUnits = 32

// executionMode describes what the context is currently doing. Mutating
// entry points behave differently per mode: in modeRecording they are
// captured instead of executed, in modeDrawing they fail with
// gl.INVALID_OPERATION.
type executionMode uint8

const (
	modeIdle executionMode = iota
	modeRecording
	modeDrawing
)

// texCoordPointer describes a client texture coordinate array registered
// with TexCoordPointer. The data is consumed by the (external) vertex
// pipeline; this subsystem only validates and stores it.
type texCoordPointer struct {
	size     int
	dataType gl.Enum
	stride   int
	data     []byte
}

// Context is a software GL context restricted to the fixed-function texture
// subsystem. It validates client calls, tracks texture objects and units,
// and lazily synchronizes compiled state to its rasterizer.
//
// A Context is single-threaded: all methods must be called from one
// goroutine and run to completion before returning.
type Context struct {
	rasterizer gpu.Rasterizer
	info       gpu.DeviceInfo

	// log2MaxTextureSize bounds the legal mipmap level range.
	log2MaxTextureSize uint32

	err gl.Enum

	nameAlloc         nameAllocator
	allocatedTextures map[uint32]Texture
	defaultTexture2D  *Texture2D

	units           []textureUnit
	activeUnitIndex int
	activeUnit      *textureUnit

	clientActiveUnit int
	texCoordPointers []texCoordPointer
	currentTexCoords []f32.Vec4

	samplerConfigDirty  bool
	texCoordConfigDirty bool

	inDraw bool

	listAlloc       nameAllocator
	lists           map[uint32]*displayList
	currentList     *displayList
	currentListName uint32
	listExecute     bool
	listNesting     int

	matrixMode gl.Enum
	modelView  Mat4
	projection Mat4

	packAlignment   int
	unpackAlignment int
	packRowLength   int
	unpackRowLength int
}

// ContextOption configures a Context during creation.
type ContextOption func(*contextOptions)

type contextOptions struct {
	rasterizer gpu.Rasterizer
}

// WithRasterizer sets the rasterizer backend for the Context instead of the
// registry default. Use this for dependency injection of custom backends.
func WithRasterizer(r gpu.Rasterizer) ContextOption {
	return func(o *contextOptions) {
		o.rasterizer = r
	}
}

// NewContext creates a context bound to a rasterizer backend. Without
// WithRasterizer, the best registered backend is used (import the softpipe
// package for the reference CPU backend); gpu.ErrNoRasterizer is returned
// when none is available.
func NewContext(opts ...ContextOption) (*Context, error) {
	var o contextOptions
	for _, opt := range opts {
		opt(&o)
	}

	r := o.rasterizer
	if r == nil {
		var err error
		r, err = gpu.Default()
		if err != nil {
			return nil, err
		}
	}

	info := r.Info()
	numUnits := info.NumTextureUnits
	if numUnits > maxSourceUnits {
		numUnits = maxSourceUnits
	}
	Logger().Info("softgl: context created",
		"backend", info.VendorName,
		"textureUnits", numUnits,
		"maxTextureSize", info.MaxTextureSize)

	ctx := &Context{
		rasterizer:         r,
		info:               info,
		log2MaxTextureSize: uint32(bits.Len(uint(info.MaxTextureSize)) - 1),
		allocatedTextures:  make(map[uint32]Texture),
		defaultTexture2D:   NewTexture2D(),
		units:              make([]textureUnit, numUnits),
		texCoordPointers:   make([]texCoordPointer, numUnits),
		currentTexCoords:   make([]f32.Vec4, numUnits),
		lists:              make(map[uint32]*displayList),
		matrixMode:         gl.MODELVIEW,
		modelView:          Identity(),
		projection:         Identity(),
		packAlignment:      4,
		unpackAlignment:    4,
	}
	for i := range ctx.units {
		ctx.units[i] = defaultTextureUnit(ctx.defaultTexture2D)
		ctx.currentTexCoords[i] = f32.Vec4{0, 0, 0, 1}
	}
	ctx.activeUnit = &ctx.units[0]
	return ctx, nil
}

// DeviceInfo returns the capabilities of the backing rasterizer.
func (c *Context) DeviceInfo() gpu.DeviceInfo { return c.info }

// GetError returns the first error recorded since the previous call and
// clears it. At most one error is pending at a time; subsequent failures
// before a GetError call are dropped, matching the GL error model.
func (c *Context) GetError() gl.Enum {
	err := c.err
	c.err = gl.NO_ERROR
	return err
}

// recordError notes a validation failure. Only the first error since the
// last GetError is kept.
func (c *Context) recordError(err gl.Enum) {
	if c.err == gl.NO_ERROR {
		c.err = err
	}
}

// mode reports the current execution mode.
func (c *Context) mode() executionMode {
	switch {
	case c.currentList != nil:
		return modeRecording
	case c.inDraw:
		return modeDrawing
	}
	return modeIdle
}

// MatrixMode selects which matrix stack subsequent matrix calls target.
// Only gl.MODELVIEW and gl.PROJECTION are tracked here.
func (c *Context) MatrixMode(mode gl.Enum) {
	if c.deferToList(cmdMatrixMode{mode: mode}) {
		return
	}
	if mode != gl.MODELVIEW && mode != gl.PROJECTION {
		c.recordError(gl.INVALID_ENUM)
		return
	}
	c.matrixMode = mode
}

// LoadIdentity replaces the current matrix with the identity matrix.
func (c *Context) LoadIdentity() {
	if c.deferToList(cmdLoadMatrix{matrix: Identity()}) {
		return
	}
	*c.currentMatrix() = Identity()
}

// LoadMatrix replaces the current matrix.
func (c *Context) LoadMatrix(m Mat4) {
	if c.deferToList(cmdLoadMatrix{matrix: m}) {
		return
	}
	*c.currentMatrix() = m
}

// MultMatrix multiplies the current matrix by m.
func (c *Context) MultMatrix(m Mat4) {
	if c.deferToList(cmdMultMatrix{matrix: m}) {
		return
	}
	cur := c.currentMatrix()
	*cur = cur.Multiply(m)
}

// ModelViewMatrix returns the current model-view matrix.
func (c *Context) ModelViewMatrix() Mat4 { return c.modelView }

func (c *Context) currentMatrix() *Mat4 {
	if c.matrixMode == gl.PROJECTION {
		return &c.projection
	}
	return &c.modelView
}

// Begin enters draw state. The vertex pipeline is outside this subsystem;
// Begin exists so that the "no texture state changes mid-draw" rule is
// enforced and testable.
func (c *Context) Begin(primitive gl.Enum) {
	if c.deferToList(cmdBegin{primitive: primitive}) {
		return
	}
	if c.inDraw {
		c.recordError(gl.INVALID_OPERATION)
		return
	}
	if primitive > gl.POLYGON {
		c.recordError(gl.INVALID_ENUM)
		return
	}
	c.inDraw = true
}

// End leaves draw state.
func (c *Context) End() {
	if c.deferToList(cmdEnd{}) {
		return
	}
	if !c.inDraw {
		c.recordError(gl.INVALID_OPERATION)
		return
	}
	c.inDraw = false
}

// Enable turns on a per-unit texture capability: gl.TEXTURE_2D or one of
// gl.TEXTURE_GEN_S..gl.TEXTURE_GEN_Q. Other capabilities belong to other
// subsystems and are rejected.
func (c *Context) Enable(capability gl.Enum) {
	c.setCapability(capability, true)
}

// Disable turns off a per-unit texture capability.
func (c *Context) Disable(capability gl.Enum) {
	c.setCapability(capability, false)
}

func (c *Context) setCapability(capability gl.Enum, enabled bool) {
	if c.deferToList(cmdSetCapability{capability: capability, enabled: enabled}) {
		return
	}
	if c.inDraw {
		c.recordError(gl.INVALID_OPERATION)
		return
	}

	switch capability {
	case gl.TEXTURE_2D:
		c.activeUnit.texture2DEnabled = enabled
		c.samplerConfigDirty = true
	case gl.TEXTURE_GEN_S, gl.TEXTURE_GEN_T, gl.TEXTURE_GEN_R, gl.TEXTURE_GEN_Q:
		c.activeUnit.texCoordGeneration[capability-gl.TEXTURE_GEN_S].enabled = enabled
		c.texCoordConfigDirty = true
	default:
		c.recordError(gl.INVALID_ENUM)
	}
}

// IsEnabled reports whether a per-unit texture capability is enabled.
func (c *Context) IsEnabled(capability gl.Enum) bool {
	switch capability {
	case gl.TEXTURE_2D:
		return c.activeUnit.texture2DEnabled
	case gl.TEXTURE_GEN_S, gl.TEXTURE_GEN_T, gl.TEXTURE_GEN_R, gl.TEXTURE_GEN_Q:
		return c.activeUnit.texCoordGeneration[capability-gl.TEXTURE_GEN_S].enabled
	}
	c.recordError(gl.INVALID_ENUM)
	return false
}

// PixelStorei sets pixel pack/unpack state consumed by image transfers.
func (c *Context) PixelStorei(pname gl.Enum, param int32) {
	switch pname {
	case gl.PACK_ALIGNMENT, gl.UNPACK_ALIGNMENT:
		switch param {
		case 1, 2, 4, 8:
		default:
			c.recordError(gl.INVALID_VALUE)
			return
		}
		if pname == gl.PACK_ALIGNMENT {
			c.packAlignment = int(param)
		} else {
			c.unpackAlignment = int(param)
		}
	case gl.PACK_ROW_LENGTH, gl.UNPACK_ROW_LENGTH:
		if param < 0 {
			c.recordError(gl.INVALID_VALUE)
			return
		}
		if pname == gl.PACK_ROW_LENGTH {
			c.packRowLength = int(param)
		} else {
			c.unpackRowLength = int(param)
		}
	default:
		c.recordError(gl.INVALID_ENUM)
	}
}
