package softgl

import (
	"golang.org/x/image/math/f32"

	"github.com/gogpu/softgl/gl"
)

// TexCoord4f sets the current texture coordinate of unit 0. The coordinate
// is consumed by the (external) vertex pipeline at the next vertex.
func (c *Context) TexCoord4f(s, t, r, q float32) {
	if c.deferToList(cmdTexCoord4f{coords: f32.Vec4{s, t, r, q}}) {
		return
	}
	c.currentTexCoords[0] = f32.Vec4{s, t, r, q}
}

// MultiTexCoord4f sets the current texture coordinate of the unit named by
// target (gl.TEXTURE0 + i).
func (c *Context) MultiTexCoord4f(target gl.Enum, s, t, r, q float32) {
	if c.deferToList(cmdMultiTexCoord4f{target: target, coords: f32.Vec4{s, t, r, q}}) {
		return
	}
	if target < gl.TEXTURE0 || target >= gl.TEXTURE0+gl.Enum(len(c.units)) {
		c.recordError(gl.INVALID_ENUM)
		return
	}
	c.currentTexCoords[target-gl.TEXTURE0] = f32.Vec4{s, t, r, q}
}

// CurrentTexCoord returns the current texture coordinate of a unit. It is
// read by the vertex pipeline when assembling vertices.
func (c *Context) CurrentTexCoord(unit int) f32.Vec4 {
	return c.currentTexCoords[unit]
}

// TexCoordPointer registers a client texture coordinate array for the
// client-active texture unit. Client state is never recorded into display
// lists.
func (c *Context) TexCoordPointer(size int32, dataType gl.Enum, stride int32, data []byte) {
	if c.inDraw {
		c.recordError(gl.INVALID_OPERATION)
		return
	}
	switch size {
	case 1, 2, 3, 4:
	default:
		c.recordError(gl.INVALID_VALUE)
		return
	}
	switch dataType {
	case gl.SHORT, gl.INT, gl.FLOAT, gl.DOUBLE:
	default:
		c.recordError(gl.INVALID_ENUM)
		return
	}
	if stride < 0 {
		c.recordError(gl.INVALID_VALUE)
		return
	}

	c.texCoordPointers[c.clientActiveUnit] = texCoordPointer{
		size:     int(size),
		dataType: dataType,
		stride:   int(stride),
		data:     data,
	}
}
