package softgl

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/softgl/gl"
	"github.com/gogpu/softgl/gpu"
)

// packingType selects which half of the pixel store state applies to a
// transfer: Pack for reads back to the client, Unpack for uploads.
type packingType uint8

const (
	packingTypePack packingType = iota
	packingTypeUnpack
)

// validatedPixelType translates and validates a client format/type pair
// into the backend descriptor. Returns gl.NO_ERROR on success, otherwise
// the error code to record; no state is touched on failure.
func validatedPixelType(format, dataType gl.Enum) (gpu.PixelType, gl.Enum) {
	pf, ok := clientPixelFormat(format)
	if !ok {
		return gpu.PixelType{}, gl.INVALID_ENUM
	}
	dt, ok := clientPixelDataType(dataType)
	if !ok {
		return gpu.PixelType{}, gl.INVALID_ENUM
	}

	// Depth data has a restricted set of component types.
	if pf == gpu.PixelFormatDepthComponent {
		switch dt {
		case gpu.PixelDataTypeUnsignedShort, gpu.PixelDataTypeUnsignedInt, gpu.PixelDataTypeFloat:
		default:
			return gpu.PixelType{}, gl.INVALID_OPERATION
		}
	}

	return gpu.PixelType{Format: pf, DataType: dt}, gl.NO_ERROR
}

func clientPixelFormat(format gl.Enum) (gpu.PixelFormat, bool) {
	switch format {
	case gl.ALPHA:
		return gpu.PixelFormatAlpha, true
	case gl.BGR:
		return gpu.PixelFormatBGR, true
	case gl.BGRA:
		return gpu.PixelFormatBGRA, true
	case gl.BLUE:
		return gpu.PixelFormatBlue, true
	case gl.DEPTH_COMPONENT:
		return gpu.PixelFormatDepthComponent, true
	case gl.GREEN:
		return gpu.PixelFormatGreen, true
	case gl.LUMINANCE:
		return gpu.PixelFormatLuminance, true
	case gl.LUMINANCE_ALPHA:
		return gpu.PixelFormatLuminanceAlpha, true
	case gl.RED:
		return gpu.PixelFormatRed, true
	case gl.RGB:
		return gpu.PixelFormatRGB, true
	case gl.RGBA:
		return gpu.PixelFormatRGBA, true
	case gl.STENCIL_INDEX:
		return gpu.PixelFormatStencilIndex, true
	}
	return 0, false
}

func clientPixelDataType(dataType gl.Enum) (gpu.PixelDataType, bool) {
	switch dataType {
	case gl.BYTE:
		return gpu.PixelDataTypeByte, true
	case gl.UNSIGNED_BYTE:
		return gpu.PixelDataTypeUnsignedByte, true
	case gl.SHORT:
		return gpu.PixelDataTypeShort, true
	case gl.UNSIGNED_SHORT:
		return gpu.PixelDataTypeUnsignedShort, true
	case gl.INT:
		return gpu.PixelDataTypeInt, true
	case gl.UNSIGNED_INT:
		return gpu.PixelDataTypeUnsignedInt, true
	case gl.FLOAT:
		return gpu.PixelDataTypeFloat, true
	case gl.HALF_FLOAT:
		return gpu.PixelDataTypeHalfFloat, true
	}
	return 0, false
}

// internalPixelFormat maps an internal format request to backend storage.
// The legacy numeric forms 1..4 are accepted as component counts.
func internalPixelFormat(internalFormat gl.Enum) (gpu.PixelFormat, bool) {
	switch internalFormat {
	case 1, gl.LUMINANCE:
		return gpu.PixelFormatLuminance, true
	case 2, gl.LUMINANCE_ALPHA:
		return gpu.PixelFormatLuminanceAlpha, true
	case 3, gl.RGB:
		return gpu.PixelFormatRGB, true
	case 4, gl.RGBA:
		return gpu.PixelFormatRGBA, true
	case gl.ALPHA:
		return gpu.PixelFormatAlpha, true
	case gl.INTENSITY:
		return gpu.PixelFormatIntensity, true
	case gl.DEPTH_COMPONENT:
		return gpu.PixelFormatDepthComponent, true
	}
	return 0, false
}

// packing returns the pack or unpack row geometry from pixel store state.
func (c *Context) packing(t packingType) gpu.Packing {
	if t == packingTypePack {
		return gpu.Packing{RowAlignment: c.packAlignment, RowLength: c.packRowLength}
	}
	return gpu.Packing{RowAlignment: c.unpackAlignment, RowLength: c.unpackRowLength}
}

// imageDataLayout builds the transfer descriptor for a full width x height
// region of a client buffer.
func (c *Context) imageDataLayout(pixelType gpu.PixelType, t packingType, width, height uint32) gpu.ImageDataLayout {
	extent := gputypes.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1}
	return gpu.ImageDataLayout{
		PixelType:  pixelType,
		Packing:    c.packing(t),
		Dimensions: extent,
		Selection:  extent,
	}
}
