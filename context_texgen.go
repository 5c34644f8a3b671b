package softgl

import (
	"golang.org/x/image/math/f32"

	"github.com/gogpu/softgl/gl"
)

// checkTexGenMode enforces the per-coordinate legality of a generation
// mode: R and Q cannot use SPHERE_MAP, and Q can use neither REFLECTION_MAP
// nor NORMAL_MAP. These rules apply at configuration time, not at use time.
func checkTexGenMode(coord, mode gl.Enum) gl.Enum {
	switch mode {
	case gl.EYE_LINEAR, gl.OBJECT_LINEAR, gl.SPHERE_MAP, gl.NORMAL_MAP, gl.REFLECTION_MAP:
	default:
		return gl.INVALID_ENUM
	}
	if (coord == gl.R || coord == gl.Q) && mode == gl.SPHERE_MAP {
		return gl.INVALID_ENUM
	}
	if coord == gl.Q && (mode == gl.REFLECTION_MAP || mode == gl.NORMAL_MAP) {
		return gl.INVALID_ENUM
	}
	return gl.NO_ERROR
}

// TexGeni sets the generation mode for one texture coordinate on the
// active unit.
func (c *Context) TexGeni(coord, pname gl.Enum, param int32) {
	if c.deferToList(cmdTexGeni{coord: coord, pname: pname, param: param}) {
		return
	}
	if c.inDraw {
		c.recordError(gl.INVALID_OPERATION)
		return
	}

	if coord < gl.S || coord > gl.Q {
		c.recordError(gl.INVALID_ENUM)
		return
	}
	if pname != gl.TEXTURE_GEN_MODE {
		c.recordError(gl.INVALID_ENUM)
		return
	}
	mode := gl.Enum(param)
	if errCode := checkTexGenMode(coord, mode); errCode != gl.NO_ERROR {
		c.recordError(errCode)
		return
	}

	c.activeUnit.texCoordGeneration[coord-gl.S].generationMode = mode
	c.texCoordConfigDirty = true
}

// TexGenfv sets a vector texture generation parameter for one coordinate.
//
// EYE_PLANE coefficients are transformed by the inverse of the model-view
// matrix current at this call and stored in eye coordinates; later
// model-view changes do not retroactively affect them. A singular
// model-view matrix leaves the coefficients untransformed.
func (c *Context) TexGenfv(coord, pname gl.Enum, params f32.Vec4) {
	if c.deferToList(cmdTexGenfv{coord: coord, pname: pname, params: params}) {
		return
	}
	if c.inDraw {
		c.recordError(gl.INVALID_OPERATION)
		return
	}

	if coord < gl.S || coord > gl.Q {
		c.recordError(gl.INVALID_ENUM)
		return
	}

	switch pname {
	case gl.TEXTURE_GEN_MODE:
		mode := gl.Enum(params[0])
		if errCode := checkTexGenMode(coord, mode); errCode != gl.NO_ERROR {
			c.recordError(errCode)
			return
		}
		c.activeUnit.texCoordGeneration[coord-gl.S].generationMode = mode

	case gl.OBJECT_PLANE:
		c.activeUnit.texCoordGeneration[coord-gl.S].objectPlaneCoefficients = params

	case gl.EYE_PLANE:
		inverseModelView, ok := c.modelView.Inverse()
		if !ok {
			Logger().Debug("softgl: singular model-view matrix, storing eye plane untransformed")
		}
		c.activeUnit.texCoordGeneration[coord-gl.S].eyePlaneCoefficients =
			inverseModelView.TransformVec4(params)

	default:
		c.recordError(gl.INVALID_ENUM)
		return
	}

	c.texCoordConfigDirty = true
}

// GetTexGeniv returns the generation mode for one coordinate. Queries are
// never recorded into display lists.
func (c *Context) GetTexGeniv(coord, pname gl.Enum) int32 {
	if coord < gl.S || coord > gl.Q {
		c.recordError(gl.INVALID_ENUM)
		return 0
	}
	if pname != gl.TEXTURE_GEN_MODE {
		c.recordError(gl.INVALID_ENUM)
		return 0
	}
	return int32(c.activeUnit.texCoordGeneration[coord-gl.S].generationMode)
}

// GetTexGenfv returns a vector generation parameter for one coordinate.
//
// For EYE_PLANE the returned values are those maintained in eye
// coordinates: they equal the values passed to TexGenfv only if the
// model-view matrix was identity at that time.
func (c *Context) GetTexGenfv(coord, pname gl.Enum) f32.Vec4 {
	if coord < gl.S || coord > gl.Q {
		c.recordError(gl.INVALID_ENUM)
		return f32.Vec4{}
	}

	gen := &c.activeUnit.texCoordGeneration[coord-gl.S]
	switch pname {
	case gl.TEXTURE_GEN_MODE:
		return f32.Vec4{float32(gen.generationMode), 0, 0, 0}
	case gl.OBJECT_PLANE:
		return gen.objectPlaneCoefficients
	case gl.EYE_PLANE:
		return gen.eyePlaneCoefficients
	}
	c.recordError(gl.INVALID_ENUM)
	return f32.Vec4{}
}
