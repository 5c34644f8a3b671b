package softpipe

import (
	"encoding/binary"
	"math"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/softgl/gpu"
)

// texelSize returns the client storage size of one texel in bytes.
func texelSize(pt gpu.PixelType) int {
	return pt.Format.ComponentCount() * pt.DataType.Size()
}

// rowStride returns the byte distance between consecutive client rows,
// honoring the row length override and row alignment.
func rowStride(layout gpu.ImageDataLayout) int {
	pixels := int(layout.Dimensions.Width)
	if layout.Packing.RowLength > 0 {
		pixels = layout.Packing.RowLength
	}
	stride := pixels * texelSize(layout.PixelType)
	if align := layout.Packing.RowAlignment; align > 1 {
		stride = (stride + align - 1) &^ (align - 1)
	}
	return stride
}

// decodeComponent reads one normalized component from a client buffer.
func decodeComponent(dt gpu.PixelDataType, b []byte) float32 {
	switch dt {
	case gpu.PixelDataTypeByte:
		return max32(float32(int8(b[0]))/127, -1)
	case gpu.PixelDataTypeUnsignedByte:
		return float32(b[0]) / 255
	case gpu.PixelDataTypeShort:
		return max32(float32(int16(binary.LittleEndian.Uint16(b)))/32767, -1)
	case gpu.PixelDataTypeUnsignedShort:
		return float32(binary.LittleEndian.Uint16(b)) / 65535
	case gpu.PixelDataTypeInt:
		return max32(float32(int32(binary.LittleEndian.Uint32(b)))/2147483647, -1)
	case gpu.PixelDataTypeUnsignedInt:
		return float32(binary.LittleEndian.Uint32(b)) / 4294967295
	case gpu.PixelDataTypeFloat:
		return math.Float32frombits(binary.LittleEndian.Uint32(b))
	case gpu.PixelDataTypeHalfFloat:
		return halfToFloat(binary.LittleEndian.Uint16(b))
	}
	panic("softpipe: unknown pixel data type")
}

// encodeComponent writes one normalized component to a client buffer.
func encodeComponent(dt gpu.PixelDataType, v float32, b []byte) {
	switch dt {
	case gpu.PixelDataTypeByte:
		b[0] = byte(int8(clamp32(v, -1, 1) * 127))
	case gpu.PixelDataTypeUnsignedByte:
		b[0] = byte(clamp32(v, 0, 1) * 255)
	case gpu.PixelDataTypeShort:
		binary.LittleEndian.PutUint16(b, uint16(int16(clamp32(v, -1, 1)*32767)))
	case gpu.PixelDataTypeUnsignedShort:
		binary.LittleEndian.PutUint16(b, uint16(clamp32(v, 0, 1)*65535))
	case gpu.PixelDataTypeInt:
		binary.LittleEndian.PutUint32(b, uint32(int32(clamp32(v, -1, 1)*2147483647)))
	case gpu.PixelDataTypeUnsignedInt:
		binary.LittleEndian.PutUint32(b, uint32(clamp32(v, 0, 1)*4294967295))
	case gpu.PixelDataTypeFloat:
		binary.LittleEndian.PutUint32(b, math.Float32bits(v))
	case gpu.PixelDataTypeHalfFloat:
		binary.LittleEndian.PutUint16(b, floatToHalf(v))
	default:
		panic("softpipe: unknown pixel data type")
	}
}

// decodeTexel expands one client texel into internal RGBA form.
func decodeTexel(pt gpu.PixelType, b []byte) f32.Vec4 {
	size := pt.DataType.Size()
	var c [4]float32
	for i := 0; i < pt.Format.ComponentCount(); i++ {
		c[i] = decodeComponent(pt.DataType, b[i*size:])
	}
	switch pt.Format {
	case gpu.PixelFormatRed, gpu.PixelFormatStencilIndex:
		return f32.Vec4{c[0], 0, 0, 1}
	case gpu.PixelFormatGreen:
		return f32.Vec4{0, c[0], 0, 1}
	case gpu.PixelFormatBlue:
		return f32.Vec4{0, 0, c[0], 1}
	case gpu.PixelFormatAlpha:
		return f32.Vec4{0, 0, 0, c[0]}
	case gpu.PixelFormatLuminance, gpu.PixelFormatDepthComponent:
		return f32.Vec4{c[0], c[0], c[0], 1}
	case gpu.PixelFormatLuminanceAlpha:
		return f32.Vec4{c[0], c[0], c[0], c[1]}
	case gpu.PixelFormatIntensity:
		return f32.Vec4{c[0], c[0], c[0], c[0]}
	case gpu.PixelFormatRGB:
		return f32.Vec4{c[0], c[1], c[2], 1}
	case gpu.PixelFormatBGR:
		return f32.Vec4{c[2], c[1], c[0], 1}
	case gpu.PixelFormatRGBA:
		return f32.Vec4{c[0], c[1], c[2], c[3]}
	case gpu.PixelFormatBGRA:
		return f32.Vec4{c[2], c[1], c[0], c[3]}
	}
	panic("softpipe: unknown pixel format")
}

// encodeTexel writes one internal RGBA texel in client form.
func encodeTexel(pt gpu.PixelType, texel f32.Vec4, b []byte) {
	var c [4]float32
	count := pt.Format.ComponentCount()
	switch pt.Format {
	case gpu.PixelFormatRed, gpu.PixelFormatLuminance, gpu.PixelFormatIntensity,
		gpu.PixelFormatDepthComponent, gpu.PixelFormatStencilIndex:
		c[0] = texel[0]
	case gpu.PixelFormatGreen:
		c[0] = texel[1]
	case gpu.PixelFormatBlue:
		c[0] = texel[2]
	case gpu.PixelFormatAlpha:
		c[0] = texel[3]
	case gpu.PixelFormatLuminanceAlpha:
		c[0], c[1] = texel[0], texel[3]
	case gpu.PixelFormatRGB:
		c[0], c[1], c[2] = texel[0], texel[1], texel[2]
	case gpu.PixelFormatBGR:
		c[0], c[1], c[2] = texel[2], texel[1], texel[0]
	case gpu.PixelFormatRGBA:
		c = texel
	case gpu.PixelFormatBGRA:
		c[0], c[1], c[2], c[3] = texel[2], texel[1], texel[0], texel[3]
	default:
		panic("softpipe: unknown pixel format")
	}
	size := pt.DataType.Size()
	for i := 0; i < count; i++ {
		encodeComponent(pt.DataType, c[i], b[i*size:])
	}
}

// halfToFloat converts an IEEE 754 binary16 value to float32.
func halfToFloat(h uint16) float32 {
	sign := uint32(h>>15) << 31
	exp := uint32(h >> 10 & 0x1F)
	mant := uint32(h & 0x3FF)
	switch exp {
	case 0:
		if mant == 0 {
			return math.Float32frombits(sign)
		}
		// Subnormal: renormalize.
		for mant&0x400 == 0 {
			mant <<= 1
			exp--
		}
		exp++
		mant &= 0x3FF
		return math.Float32frombits(sign | (exp+112)<<23 | mant<<13)
	case 0x1F:
		return math.Float32frombits(sign | 0xFF<<23 | mant<<13)
	}
	return math.Float32frombits(sign | (exp+112)<<23 | mant<<13)
}

// floatToHalf converts a float32 value to IEEE 754 binary16, rounding
// toward zero.
func floatToHalf(v float32) uint16 {
	bits := math.Float32bits(v)
	sign := uint16(bits >> 31 << 15)
	exp := int32(bits >> 23 & 0xFF)
	mant := bits & 0x7FFFFF
	switch {
	case exp == 0xFF:
		if mant != 0 {
			return sign | 0x7FFF
		}
		return sign | 0x7C00
	case exp > 142:
		// Overflow to infinity.
		return sign | 0x7C00
	case exp < 103:
		// Underflow to zero, subnormals included.
		return sign
	case exp < 113:
		// Subnormal half.
		mant |= 0x800000
		return sign | uint16(mant>>uint32(126-exp))
	}
	return sign | uint16(exp-112)<<10 | uint16(mant>>13)
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func max32(v, lo float32) float32 {
	if v < lo {
		return lo
	}
	return v
}
