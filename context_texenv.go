package softgl

import "github.com/gogpu/softgl/gl"

// TexEnvf sets a fixed-function texture environment parameter on the
// active unit. Every parameter has its own closed legal-value set; a value
// outside it records gl.INVALID_ENUM (or gl.INVALID_VALUE for the numeric
// scale factors) and leaves the parameter unchanged.
//
// Symbolic values arrive through the float parameter, as in the C API; they
// are compared after conversion to gl.Enum.
func (c *Context) TexEnvf(target, pname gl.Enum, param float32) {
	if c.deferToList(cmdTexEnvf{target: target, pname: pname, param: param}) {
		return
	}
	if c.inDraw {
		c.recordError(gl.INVALID_OPERATION)
		return
	}

	if target != gl.TEXTURE_ENV && target != gl.TEXTURE_FILTER_CONTROL {
		c.recordError(gl.INVALID_ENUM)
		return
	}
	if target == gl.TEXTURE_FILTER_CONTROL && pname != gl.TEXTURE_LOD_BIAS {
		c.recordError(gl.INVALID_ENUM)
		return
	}

	if target == gl.TEXTURE_FILTER_CONTROL {
		// pname can only be TEXTURE_LOD_BIAS here.
		c.activeUnit.levelOfDetailBias = param
		c.samplerConfigDirty = true
		return
	}

	unit := c.activeUnit
	value := gl.Enum(param)

	switch pname {
	case gl.ALPHA_SCALE:
		if param != 1 && param != 2 && param != 4 {
			c.recordError(gl.INVALID_VALUE)
			return
		}
		unit.alphaScale = param

	case gl.RGB_SCALE:
		if param != 1 && param != 2 && param != 4 {
			c.recordError(gl.INVALID_VALUE)
			return
		}
		unit.rgbScale = param

	case gl.COMBINE_ALPHA:
		switch value {
		case gl.ADD, gl.ADD_SIGNED, gl.INTERPOLATE, gl.MODULATE, gl.REPLACE, gl.SUBTRACT:
			unit.alphaCombinator = value
		default:
			c.recordError(gl.INVALID_ENUM)
			return
		}

	case gl.COMBINE_RGB:
		switch value {
		case gl.ADD, gl.ADD_SIGNED, gl.DOT3_RGB, gl.DOT3_RGBA,
			gl.INTERPOLATE, gl.MODULATE, gl.REPLACE, gl.SUBTRACT:
			unit.rgbCombinator = value
		default:
			c.recordError(gl.INVALID_ENUM)
			return
		}

	case gl.OPERAND0_ALPHA, gl.OPERAND1_ALPHA, gl.OPERAND2_ALPHA:
		switch value {
		case gl.ONE_MINUS_SRC_ALPHA, gl.SRC_ALPHA:
			unit.alphaOperand[pname-gl.OPERAND0_ALPHA] = value
		default:
			c.recordError(gl.INVALID_ENUM)
			return
		}

	case gl.OPERAND0_RGB, gl.OPERAND1_RGB, gl.OPERAND2_RGB:
		switch value {
		case gl.ONE_MINUS_SRC_ALPHA, gl.ONE_MINUS_SRC_COLOR, gl.SRC_ALPHA, gl.SRC_COLOR:
			unit.rgbOperand[pname-gl.OPERAND0_RGB] = value
		default:
			c.recordError(gl.INVALID_ENUM)
			return
		}

	case gl.SRC0_ALPHA, gl.SRC1_ALPHA, gl.SRC2_ALPHA:
		if !isLegalCombinerSource(value) {
			c.recordError(gl.INVALID_ENUM)
			return
		}
		unit.alphaSource[pname-gl.SRC0_ALPHA] = value

	case gl.SRC0_RGB, gl.SRC1_RGB, gl.SRC2_RGB:
		if !isLegalCombinerSource(value) {
			c.recordError(gl.INVALID_ENUM)
			return
		}
		unit.rgbSource[pname-gl.SRC0_RGB] = value

	case gl.TEXTURE_ENV_MODE:
		switch value {
		case gl.ADD, gl.BLEND, gl.COMBINE, gl.DECAL, gl.MODULATE, gl.REPLACE:
			unit.envMode = value
		default:
			c.recordError(gl.INVALID_ENUM)
			return
		}

	default:
		c.recordError(gl.INVALID_ENUM)
		return
	}

	c.samplerConfigDirty = true
}

// TexEnvi is TexEnvf for integer-typed parameters.
func (c *Context) TexEnvi(target, pname gl.Enum, param int32) {
	c.TexEnvf(target, pname, float32(param))
}

// isLegalCombinerSource accepts the symbolic sources plus the
// gl.TEXTURE0..gl.TEXTURE31 range naming another unit's output.
func isLegalCombinerSource(value gl.Enum) bool {
	switch value {
	case gl.CONSTANT, gl.PREVIOUS, gl.PRIMARY_COLOR, gl.TEXTURE:
		return true
	}
	return value >= gl.TEXTURE0 && value <= gl.TEXTURE31
}
