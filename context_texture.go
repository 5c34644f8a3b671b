package softgl

import (
	"golang.org/x/image/math/f32"

	"github.com/gogpu/softgl/gl"
)

// ActiveTexture selects the texture unit targeted by subsequent
// fixed-function texture state calls.
func (c *Context) ActiveTexture(texture gl.Enum) {
	if texture < gl.TEXTURE0 || texture >= gl.TEXTURE0+gl.Enum(len(c.units)) {
		c.recordError(gl.INVALID_ENUM)
		return
	}
	c.activeUnitIndex = int(texture - gl.TEXTURE0)
	c.activeUnit = &c.units[c.activeUnitIndex]
}

// ClientActiveTexture selects the texture unit targeted by client vertex
// array calls (TexCoordPointer). This axis is independent of ActiveTexture.
func (c *Context) ClientActiveTexture(texture gl.Enum) {
	if texture < gl.TEXTURE0 || texture >= gl.TEXTURE0+gl.Enum(len(c.units)) {
		c.recordError(gl.INVALID_ENUM)
		return
	}
	c.clientActiveUnit = int(texture - gl.TEXTURE0)
}

// GenTextures returns n fresh texture names, each registered but not yet
// materialized: the name maps to no object until first bound.
func (c *Context) GenTextures(n int) []uint32 {
	if n < 0 {
		c.recordError(gl.INVALID_VALUE)
		return nil
	}
	if c.inDraw {
		c.recordError(gl.INVALID_OPERATION)
		return nil
	}

	names := c.nameAlloc.allocate(n)
	for _, name := range names {
		c.allocatedTextures[name] = nil
	}
	return names
}

// BindTexture binds a texture name to the given target on the active unit.
//
// Name 0 resolves to the default texture. A non-zero name without a
// registered object is implicitly created and registered, per OpenGL 1.x
// semantics; later GL versions require names from GenTextures, which is a
// documented future extension point, not current behavior.
func (c *Context) BindTexture(target gl.Enum, name uint32) {
	if c.inDraw {
		c.recordError(gl.INVALID_OPERATION)
		return
	}
	switch target {
	case gl.TEXTURE_1D, gl.TEXTURE_2D, gl.TEXTURE_3D,
		gl.TEXTURE_1D_ARRAY, gl.TEXTURE_2D_ARRAY, gl.TEXTURE_CUBE_MAP:
	default:
		c.recordError(gl.INVALID_ENUM)
		return
	}
	if target != gl.TEXTURE_2D {
		Logger().Debug("softgl: only TEXTURE_2D binding is supported", "target", uint32(target))
		return
	}

	var texture2D *Texture2D
	if name == 0 {
		texture2D = c.defaultTexture2D
	} else {
		if obj, ok := c.allocatedTextures[name]; ok && obj != nil {
			// The object must have been created with the same target.
			t2d, ok := obj.(*Texture2D)
			if !ok {
				c.recordError(gl.INVALID_OPERATION)
				return
			}
			texture2D = t2d
		}
		if texture2D == nil {
			texture2D = NewTexture2D()
			c.allocatedTextures[name] = texture2D
		}
	}

	c.activeUnit.texture2D = texture2D
	c.samplerConfigDirty = true
}

// DeleteTextures frees the given texture names. Name 0, unknown names and
// names that were generated but never bound are skipped. Every unit bound
// to a deleted object — not only the active one — reverts to the default
// texture.
func (c *Context) DeleteTextures(names []uint32) {
	if c.inDraw {
		c.recordError(gl.INVALID_OPERATION)
		return
	}

	for _, name := range names {
		if name == 0 {
			continue
		}
		obj, ok := c.allocatedTextures[name]
		if !ok || obj == nil {
			continue
		}

		c.nameAlloc.release(name)

		if t2d, ok := obj.(*Texture2D); ok {
			for i := range c.units {
				if c.units[i].texture2D == t2d {
					c.units[i].texture2D = c.defaultTexture2D
				}
			}
		}

		delete(c.allocatedTextures, name)
	}
}

// IsTexture reports whether name refers to a materialized texture object.
// Names that were generated but never bound are not textures yet.
func (c *Context) IsTexture(name uint32) bool {
	if c.inDraw {
		c.recordError(gl.INVALID_OPERATION)
		return false
	}
	if name == 0 {
		return false
	}
	obj, ok := c.allocatedTextures[name]
	return ok && obj != nil
}

// TexParameterf sets a scalar sampler parameter on the texture bound to the
// active unit. Supported names: TEXTURE_MIN_FILTER, TEXTURE_MAG_FILTER,
// TEXTURE_WRAP_S, TEXTURE_WRAP_T.
func (c *Context) TexParameterf(target, pname gl.Enum, param float32) {
	if c.deferToList(cmdTexParameterf{target: target, pname: pname, param: param}) {
		return
	}
	if c.inDraw {
		c.recordError(gl.INVALID_OPERATION)
		return
	}
	if target != gl.TEXTURE_2D {
		c.recordError(gl.INVALID_ENUM)
		return
	}

	texture2D := c.activeUnit.texture2D
	value := gl.Enum(param)

	switch pname {
	case gl.TEXTURE_MIN_FILTER:
		switch value {
		case gl.NEAREST, gl.LINEAR,
			gl.NEAREST_MIPMAP_NEAREST, gl.LINEAR_MIPMAP_NEAREST,
			gl.NEAREST_MIPMAP_LINEAR, gl.LINEAR_MIPMAP_LINEAR:
			texture2D.sampler.minFilter = value
		default:
			c.recordError(gl.INVALID_ENUM)
			return
		}
	case gl.TEXTURE_MAG_FILTER:
		switch value {
		case gl.NEAREST, gl.LINEAR:
			texture2D.sampler.magFilter = value
		default:
			c.recordError(gl.INVALID_ENUM)
			return
		}
	case gl.TEXTURE_WRAP_S:
		if !isLegalWrapMode(value) {
			c.recordError(gl.INVALID_ENUM)
			return
		}
		texture2D.sampler.wrapS = value
	case gl.TEXTURE_WRAP_T:
		if !isLegalWrapMode(value) {
			c.recordError(gl.INVALID_ENUM)
			return
		}
		texture2D.sampler.wrapT = value
	default:
		c.recordError(gl.INVALID_ENUM)
		return
	}

	c.samplerConfigDirty = true
}

// TexParameteri is TexParameterf for integer-typed parameters.
func (c *Context) TexParameteri(target, pname gl.Enum, param int32) {
	c.TexParameterf(target, pname, float32(param))
}

// TexParameterfv sets a vector sampler parameter. The only supported name
// is TEXTURE_BORDER_COLOR.
func (c *Context) TexParameterfv(target, pname gl.Enum, params f32.Vec4) {
	if c.deferToList(cmdTexParameterfv{target: target, pname: pname, params: params}) {
		return
	}
	if c.inDraw {
		c.recordError(gl.INVALID_OPERATION)
		return
	}
	if target != gl.TEXTURE_2D {
		c.recordError(gl.INVALID_ENUM)
		return
	}
	if pname != gl.TEXTURE_BORDER_COLOR {
		c.recordError(gl.INVALID_ENUM)
		return
	}

	c.activeUnit.texture2D.sampler.borderColor = params
	c.samplerConfigDirty = true
}

// GetTexLevelParameter queries a per-level texture property. Supported
// names: TEXTURE_WIDTH, TEXTURE_HEIGHT. Queries are never recorded into
// display lists.
func (c *Context) GetTexLevelParameter(target gl.Enum, level int32, pname gl.Enum) int32 {
	if c.inDraw {
		c.recordError(gl.INVALID_OPERATION)
		return 0
	}
	if target != gl.TEXTURE_2D {
		c.recordError(gl.INVALID_ENUM)
		return 0
	}
	if pname != gl.TEXTURE_WIDTH && pname != gl.TEXTURE_HEIGHT {
		c.recordError(gl.INVALID_ENUM)
		return 0
	}
	if level < 0 || uint32(level) > c.log2MaxTextureSize {
		c.recordError(gl.INVALID_VALUE)
		return 0
	}

	texture2D := c.activeUnit.texture2D
	if pname == gl.TEXTURE_WIDTH {
		return int32(texture2D.WidthAtLevel(uint32(level)))
	}
	return int32(texture2D.HeightAtLevel(uint32(level)))
}

func isLegalWrapMode(value gl.Enum) bool {
	switch value {
	case gl.CLAMP, gl.CLAMP_TO_BORDER, gl.CLAMP_TO_EDGE, gl.MIRRORED_REPEAT, gl.REPEAT:
		return true
	}
	return false
}
