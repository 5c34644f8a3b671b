package softgl

import (
	"image"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/softgl/gl"
	"github.com/gogpu/softgl/gpu"
)

// isLegalTextureTarget reports whether target is a known binding target,
// functional or not.
func isLegalTextureTarget(target gl.Enum) bool {
	switch target {
	case gl.TEXTURE_1D, gl.TEXTURE_2D, gl.TEXTURE_3D,
		gl.TEXTURE_1D_ARRAY, gl.TEXTURE_2D_ARRAY, gl.TEXTURE_CUBE_MAP:
		return true
	}
	return false
}

// checkImageTarget validates target for an image operation. It returns
// false when the call must not proceed, recording an error only for
// unknown targets; known-but-unsupported targets are a diagnosed no-op.
func (c *Context) checkImageTarget(op string, target gl.Enum) bool {
	if !isLegalTextureTarget(target) {
		c.recordError(gl.INVALID_ENUM)
		return false
	}
	if target != gl.TEXTURE_2D {
		Logger().Debug("softgl: only TEXTURE_2D images are supported", "op", op, "target", uint32(target))
		return false
	}
	return true
}

func (c *Context) checkLevel(level int32) bool {
	if level < 0 || uint32(level) > c.log2MaxTextureSize {
		c.recordError(gl.INVALID_VALUE)
		return false
	}
	return true
}

// checkDimensions validates a level extent: range, and the power-of-two
// constraint when the backend lacks NPOT support. The +2 slack matches the
// GL limit, which admits a one-texel border on each side.
func (c *Context) checkDimensions(width, height int32) bool {
	max := int32(c.info.MaxTextureSize)
	if width < 0 || height < 0 || width > 2+max || height > 2+max {
		c.recordError(gl.INVALID_VALUE)
		return false
	}
	if !c.info.SupportsNPOTTextures {
		if !isPowerOfTwo(width) || !isPowerOfTwo(height) {
			c.recordError(gl.INVALID_VALUE)
			return false
		}
	}
	return true
}

func isPowerOfTwo(v int32) bool {
	return v > 0 && v&(v-1) == 0
}

// TexImage2D specifies a full texture image for one mipmap level. A level-0
// specification (re)creates the backend device image sized to the validated
// dimensions and format; data may be nil to allocate without uploading.
func (c *Context) TexImage2D(target gl.Enum, level, internalFormat, width, height, border int32, format, dataType gl.Enum, data []byte) {
	if c.inDraw {
		c.recordError(gl.INVALID_OPERATION)
		return
	}

	if gl.Enum(internalFormat) == gl.NONE || format == gl.NONE || dataType == gl.NONE {
		c.recordError(gl.INVALID_ENUM)
		return
	}
	if !c.checkImageTarget("TexImage2D", target) {
		return
	}
	pixelType, errCode := validatedPixelType(format, dataType)
	if errCode != gl.NO_ERROR {
		c.recordError(errCode)
		return
	}
	storageFormat, ok := internalPixelFormat(gl.Enum(internalFormat))
	if !ok {
		c.recordError(gl.INVALID_ENUM)
		return
	}

	if !c.checkLevel(level) || !c.checkDimensions(width, height) {
		return
	}
	if border != 0 {
		c.recordError(gl.INVALID_VALUE)
		return
	}

	texture2D := c.activeUnit.texture2D

	if level == 0 {
		// Texture completeness is not modeled: the device image is created
		// as soon as level 0 is specified, so mipmap chains must be
		// uploaded from level 0 upwards.
		img := c.rasterizer.CreateImage(storageFormat,
			gputypes.Extent3D{Width: uint32(width), Height: uint32(height), DepthOrArrayLayers: 1},
			c.log2MaxTextureSize+1)
		texture2D.setDeviceImage(img, gl.Enum(internalFormat), storageFormat, uint32(width), uint32(height))
		c.samplerConfigDirty = true
	}

	if data == nil {
		return
	}
	layout := c.imageDataLayout(pixelType, packingTypeUnpack, uint32(width), uint32(height))
	texture2D.uploadTextureData(uint32(level), layout, data)
}

// TexSubImage2D updates a sub-region of an existing texture level. The
// level must have device storage from a previous TexImage2D and the region
// must lie within its established dimensions.
func (c *Context) TexSubImage2D(target gl.Enum, level, xoffset, yoffset, width, height int32, format, dataType gl.Enum, data []byte) {
	if c.inDraw {
		c.recordError(gl.INVALID_OPERATION)
		return
	}
	if !c.checkImageTarget("TexSubImage2D", target) {
		return
	}
	if !c.checkLevel(level) {
		return
	}
	if width < 0 || height < 0 || width > 2+int32(c.info.MaxTextureSize) || height > 2+int32(c.info.MaxTextureSize) {
		c.recordError(gl.INVALID_VALUE)
		return
	}

	texture2D := c.activeUnit.texture2D
	if texture2D.DeviceImage() == nil {
		c.recordError(gl.INVALID_OPERATION)
		return
	}

	if format == gl.NONE || dataType == gl.NONE {
		c.recordError(gl.INVALID_ENUM)
		return
	}
	pixelType, errCode := validatedPixelType(format, dataType)
	if errCode != gl.NO_ERROR {
		c.recordError(errCode)
		return
	}

	if xoffset < 0 || yoffset < 0 ||
		uint32(xoffset)+uint32(width) > texture2D.WidthAtLevel(uint32(level)) ||
		uint32(yoffset)+uint32(height) > texture2D.HeightAtLevel(uint32(level)) {
		c.recordError(gl.INVALID_VALUE)
		return
	}

	layout := c.imageDataLayout(pixelType, packingTypeUnpack, uint32(width), uint32(height))
	texture2D.replaceSubTextureData(uint32(level), layout,
		gputypes.Origin3D{X: uint32(xoffset), Y: uint32(yoffset)}, data)
}

// CopyTexImage2D specifies a texture image from the rasterizer's color or
// depth buffer. Deferrable into display lists.
func (c *Context) CopyTexImage2D(target gl.Enum, level, internalFormat, x, y, width, height, border int32) {
	if c.deferToList(cmdCopyTexImage2D{
		target: target, level: level, internalFormat: internalFormat,
		x: x, y: y, width: width, height: height, border: border,
	}) {
		return
	}
	if c.inDraw {
		c.recordError(gl.INVALID_OPERATION)
		return
	}

	if gl.Enum(internalFormat) == gl.NONE {
		c.recordError(gl.INVALID_ENUM)
		return
	}
	if !c.checkImageTarget("CopyTexImage2D", target) {
		return
	}
	storageFormat, ok := internalPixelFormat(gl.Enum(internalFormat))
	if !ok {
		c.recordError(gl.INVALID_ENUM)
		return
	}

	if !c.checkLevel(level) || !c.checkDimensions(width, height) {
		return
	}
	if border != 0 {
		c.recordError(gl.INVALID_VALUE)
		return
	}

	texture2D := c.activeUnit.texture2D

	if level == 0 {
		img := c.rasterizer.CreateImage(storageFormat,
			gputypes.Extent3D{Width: uint32(width), Height: uint32(height), DepthOrArrayLayers: 1},
			c.log2MaxTextureSize+1)
		texture2D.setDeviceImage(img, gl.Enum(internalFormat), storageFormat, uint32(width), uint32(height))
		c.samplerConfigDirty = true
	}

	size := gputypes.Extent3D{Width: uint32(width), Height: uint32(height), DepthOrArrayLayers: 1}
	c.blitFromFramebuffer(texture2D, storageFormat, uint32(level), size,
		image.Pt(int(x), int(y)), gputypes.Origin3D{})
}

// CopyTexSubImage2D updates a sub-region of an existing texture level from
// the rasterizer's color or depth buffer. Deferrable into display lists.
func (c *Context) CopyTexSubImage2D(target gl.Enum, level, xoffset, yoffset, x, y, width, height int32) {
	if c.deferToList(cmdCopyTexSubImage2D{
		target: target, level: level, xoffset: xoffset, yoffset: yoffset,
		x: x, y: y, width: width, height: height,
	}) {
		return
	}
	if c.inDraw {
		c.recordError(gl.INVALID_OPERATION)
		return
	}
	if !c.checkImageTarget("CopyTexSubImage2D", target) {
		return
	}
	if !c.checkLevel(level) {
		return
	}
	if width < 0 || height < 0 || width > 2+int32(c.info.MaxTextureSize) || height > 2+int32(c.info.MaxTextureSize) {
		c.recordError(gl.INVALID_VALUE)
		return
	}

	texture2D := c.activeUnit.texture2D
	if texture2D.DeviceImage() == nil {
		c.recordError(gl.INVALID_OPERATION)
		return
	}
	if xoffset < 0 || yoffset < 0 ||
		uint32(xoffset)+uint32(width) > texture2D.WidthAtLevel(uint32(level)) ||
		uint32(yoffset)+uint32(height) > texture2D.HeightAtLevel(uint32(level)) {
		c.recordError(gl.INVALID_VALUE)
		return
	}

	size := gputypes.Extent3D{Width: uint32(width), Height: uint32(height), DepthOrArrayLayers: 1}
	c.blitFromFramebuffer(texture2D, texture2D.pixelFormat, uint32(level), size,
		image.Pt(int(x), int(y)), gputypes.Origin3D{X: uint32(xoffset), Y: uint32(yoffset)})
}

// blitFromFramebuffer routes a framebuffer copy to the color or depth
// buffer according to the destination format. Stencil copies are a
// documented limitation.
func (c *Context) blitFromFramebuffer(t *Texture2D, format gpu.PixelFormat, level uint32, size gputypes.Extent3D, src image.Point, dst gputypes.Origin3D) {
	switch format {
	case gpu.PixelFormatDepthComponent:
		c.rasterizer.BlitFromDepthBuffer(t.DeviceImage(), level, size, src, dst)
	case gpu.PixelFormatStencilIndex:
		Logger().Debug("softgl: STENCIL_INDEX framebuffer copies are not supported")
	default:
		c.rasterizer.BlitFromColorBuffer(t.DeviceImage(), level, size, src, dst)
	}
}

// GetTexImage reads back a texture level into pixels. Queries are never
// recorded into display lists.
func (c *Context) GetTexImage(target gl.Enum, level int32, format, dataType gl.Enum, pixels []byte) {
	if !c.checkLevel(level) {
		return
	}
	if format == gl.NONE || dataType == gl.NONE {
		c.recordError(gl.INVALID_ENUM)
		return
	}
	if !c.checkImageTarget("GetTexImage", target) {
		return
	}
	pixelType, errCode := validatedPixelType(format, dataType)
	if errCode != gl.NO_ERROR {
		c.recordError(errCode)
		return
	}

	texture2D := c.activeUnit.texture2D
	if texture2D.DeviceImage() == nil {
		c.recordError(gl.INVALID_OPERATION)
		return
	}

	width := texture2D.WidthAtLevel(uint32(level))
	height := texture2D.HeightAtLevel(uint32(level))
	layout := c.imageDataLayout(pixelType, packingTypePack, width, height)
	texture2D.downloadTextureData(uint32(level), layout, pixels)
}
