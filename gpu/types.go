// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"
)

// PixelFormat is the component layout of image data crossing the backend
// boundary. It mirrors the classic GL client formats rather than the packed
// device formats of modern APIs; backends translate as needed.
type PixelFormat uint8

// Pixel formats.
const (
	PixelFormatAlpha PixelFormat = iota
	PixelFormatBGR
	PixelFormatBGRA
	PixelFormatBlue
	PixelFormatDepthComponent
	PixelFormatGreen
	PixelFormatIntensity
	PixelFormatLuminance
	PixelFormatLuminanceAlpha
	PixelFormatRed
	PixelFormatRGB
	PixelFormatRGBA
	PixelFormatStencilIndex
)

// ComponentCount returns the number of color components per texel.
func (f PixelFormat) ComponentCount() int {
	switch f {
	case PixelFormatAlpha, PixelFormatBlue, PixelFormatDepthComponent,
		PixelFormatGreen, PixelFormatIntensity, PixelFormatLuminance,
		PixelFormatRed, PixelFormatStencilIndex:
		return 1
	case PixelFormatLuminanceAlpha:
		return 2
	case PixelFormatBGR, PixelFormatRGB:
		return 3
	case PixelFormatBGRA, PixelFormatRGBA:
		return 4
	}
	panic("gpu: unknown pixel format")
}

// PixelDataType is the per-component storage type of client pixel data.
type PixelDataType uint8

// Pixel component data types.
const (
	PixelDataTypeByte PixelDataType = iota
	PixelDataTypeUnsignedByte
	PixelDataTypeShort
	PixelDataTypeUnsignedShort
	PixelDataTypeInt
	PixelDataTypeUnsignedInt
	PixelDataTypeFloat
	PixelDataTypeHalfFloat
)

// Size returns the storage size of one component in bytes.
func (t PixelDataType) Size() int {
	switch t {
	case PixelDataTypeByte, PixelDataTypeUnsignedByte:
		return 1
	case PixelDataTypeShort, PixelDataTypeUnsignedShort, PixelDataTypeHalfFloat:
		return 2
	case PixelDataTypeInt, PixelDataTypeUnsignedInt, PixelDataTypeFloat:
		return 4
	}
	panic("gpu: unknown pixel data type")
}

// PixelType fully describes the interpretation of one client texel.
type PixelType struct {
	Format   PixelFormat
	DataType PixelDataType
}

// Packing describes client buffer row geometry for pixel transfers.
type Packing struct {
	// RowAlignment is the byte alignment of each row (1, 2, 4 or 8).
	RowAlignment int

	// RowLength overrides the row stride in pixels when non-zero.
	RowLength int
}

// ImageDataLayout is the validated descriptor handed to Image transfer
// operations together with a raw client buffer.
type ImageDataLayout struct {
	PixelType PixelType
	Packing   Packing

	// Dimensions is the full extent of the client buffer.
	Dimensions gputypes.Extent3D

	// Selection is the region of the buffer being transferred.
	Selection gputypes.Extent3D
}

// TextureFilter selects between point and linear sampling.
type TextureFilter uint8

// Texture filters.
const (
	TextureFilterNearest TextureFilter = iota
	TextureFilterLinear
)

// MipMapFilter selects how mipmap levels participate in minification.
type MipMapFilter uint8

// Mipmap filters.
const (
	MipMapFilterNone MipMapFilter = iota
	MipMapFilterNearest
	MipMapFilterLinear
)

// TextureWrapMode controls coordinate wrapping per axis.
type TextureWrapMode uint8

// Wrap modes.
const (
	TextureWrapModeClamp TextureWrapMode = iota
	TextureWrapModeClampToBorder
	TextureWrapModeClampToEdge
	TextureWrapModeRepeat
	TextureWrapModeMirroredRepeat
)

// TextureEnvMode is the fixed-function environment blending mode.
type TextureEnvMode uint8

// Environment modes.
const (
	TextureEnvModeAdd TextureEnvMode = iota
	TextureEnvModeBlend
	TextureEnvModeCombine
	TextureEnvModeDecal
	TextureEnvModeModulate
	TextureEnvModeReplace
)

// TextureCombinator is a combiner arithmetic operation. The RGB channel
// accepts the full set; the alpha channel excludes the Dot3 operations.
type TextureCombinator uint8

// Combinators.
const (
	TextureCombinatorAdd TextureCombinator = iota
	TextureCombinatorAddSigned
	TextureCombinatorDot3RGB
	TextureCombinatorDot3RGBA
	TextureCombinatorInterpolate
	TextureCombinatorModulate
	TextureCombinatorReplace
	TextureCombinatorSubtract
)

// TextureOperand selects which component of a source feeds the combiner.
type TextureOperand uint8

// Operands.
const (
	TextureOperandOneMinusSourceAlpha TextureOperand = iota
	TextureOperandOneMinusSourceColor
	TextureOperandSourceAlpha
	TextureOperandSourceColor
)

// TextureSource selects where a combiner input comes from. SourceTextureStage
// additionally carries a unit index in the config.
type TextureSource uint8

// Sources.
const (
	TextureSourceConstant TextureSource = iota
	TextureSourcePrevious
	TextureSourcePrimaryColor
	TextureSourceTexture
	TextureSourceTextureStage
)

// FixedFunctionTextureEnvironment is the translated combiner state of one
// texture unit.
type FixedFunctionTextureEnvironment struct {
	EnvMode TextureEnvMode

	RGBScale   float32
	AlphaScale float32

	RGBCombinator   TextureCombinator
	AlphaCombinator TextureCombinator

	RGBOperand   [3]TextureOperand
	AlphaOperand [3]TextureOperand
	RGBSource    [3]TextureSource
	AlphaSource  [3]TextureSource

	// Referenced unit index when the corresponding source is
	// TextureSourceTextureStage.
	RGBSourceTextureStage   uint8
	AlphaSourceTextureStage uint8
}

// SamplerConfig is the full sampler descriptor for one texture unit,
// published before anything depending on it is drawn.
type SamplerConfig struct {
	BoundImage Image

	LevelOfDetailBias float32

	TextureMinFilter TextureFilter
	TextureMagFilter TextureFilter
	MipMapFilter     MipMapFilter

	TextureWrapU TextureWrapMode
	TextureWrapV TextureWrapMode

	BorderColor f32.Vec4

	FixedFunctionTextureEnvironment FixedFunctionTextureEnvironment
}

// TexCoordGenerationMode is a translated coordinate generation function.
type TexCoordGenerationMode uint8

// Generation modes.
const (
	TexCoordGenerationModeObjectLinear TexCoordGenerationMode = iota
	TexCoordGenerationModeEyeLinear
	TexCoordGenerationModeSphereMap
	TexCoordGenerationModeReflectionMap
	TexCoordGenerationModeNormalMap
)

// TexCoordGenerationConfig holds the generation function for one coordinate.
// Coefficients are meaningful for the linear modes only.
type TexCoordGenerationConfig struct {
	Mode         TexCoordGenerationMode
	Coefficients f32.Vec4
}

// Bitmask of coordinates with generation enabled, one per texture unit.
const (
	TexCoordGenerationNone uint8 = 0
	TexCoordGenerationS    uint8 = 1 << 0
	TexCoordGenerationT    uint8 = 1 << 1
	TexCoordGenerationR    uint8 = 1 << 2
	TexCoordGenerationQ    uint8 = 1 << 3
)

// RasterizerOptions is the rasterizer option block. The texture subsystem
// owns only the coordinate generation entries; everything else belongs to
// other state trackers and must round-trip untouched through Options and
// SetOptions.
type RasterizerOptions struct {
	// TexCoordGenerationEnabledCoordinates holds one coordinate bitmask per
	// texture unit.
	TexCoordGenerationEnabledCoordinates []uint8

	// TexCoordGenerationConfig holds per-unit, per-coordinate (S, T, R, Q)
	// generation functions.
	TexCoordGenerationConfig [][4]TexCoordGenerationConfig
}
