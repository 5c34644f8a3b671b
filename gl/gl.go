// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gl defines the OpenGL 1.x symbolic constants understood by the
// softgl fixed-function pipeline. Constant names follow the GL convention
// (minus the GL_ prefix) so that code ported from C reads the same.
//
// Only the constants consumed by the texture state subsystem are declared;
// this is not a complete GL header.
package gl

// Enum is a GL symbolic constant. GL uses one shared numeric space for all
// enumerations, so a single type keeps range checks (for example
// TEXTURE0..TEXTURE31) expressible.
type Enum uint32

// Error codes returned by Context.GetError.
const (
	NO_ERROR          Enum = 0
	INVALID_ENUM      Enum = 0x0500
	INVALID_VALUE     Enum = 0x0501
	INVALID_OPERATION Enum = 0x0502
)

// Texture binding targets. Only TEXTURE_2D is functional; the others are
// accepted and diagnosed as unsupported.
const (
	TEXTURE_1D       Enum = 0x0DE0
	TEXTURE_2D       Enum = 0x0DE1
	TEXTURE_3D       Enum = 0x806F
	TEXTURE_1D_ARRAY Enum = 0x8C18
	TEXTURE_2D_ARRAY Enum = 0x8C1A
	TEXTURE_CUBE_MAP Enum = 0x8513
)

// Texture unit selectors. TEXTURE0 + i selects unit i.
const (
	TEXTURE0  Enum = 0x84C0
	TEXTURE1  Enum = 0x84C1
	TEXTURE2  Enum = 0x84C2
	TEXTURE3  Enum = 0x84C3
	TEXTURE4  Enum = 0x84C4
	TEXTURE5  Enum = 0x84C5
	TEXTURE6  Enum = 0x84C6
	TEXTURE7  Enum = 0x84C7
	TEXTURE8  Enum = 0x84C8
	TEXTURE9  Enum = 0x84C9
	TEXTURE10 Enum = 0x84CA
	TEXTURE11 Enum = 0x84CB
	TEXTURE12 Enum = 0x84CC
	TEXTURE13 Enum = 0x84CD
	TEXTURE14 Enum = 0x84CE
	TEXTURE15 Enum = 0x84CF
	TEXTURE16 Enum = 0x84D0
	TEXTURE17 Enum = 0x84D1
	TEXTURE18 Enum = 0x84D2
	TEXTURE19 Enum = 0x84D3
	TEXTURE20 Enum = 0x84D4
	TEXTURE21 Enum = 0x84D5
	TEXTURE22 Enum = 0x84D6
	TEXTURE23 Enum = 0x84D7
	TEXTURE24 Enum = 0x84D8
	TEXTURE25 Enum = 0x84D9
	TEXTURE26 Enum = 0x84DA
	TEXTURE27 Enum = 0x84DB
	TEXTURE28 Enum = 0x84DC
	TEXTURE29 Enum = 0x84DD
	TEXTURE30 Enum = 0x84DE
	TEXTURE31 Enum = 0x84DF
)

// Texture parameter names (TexParameter*).
const (
	TEXTURE_BORDER_COLOR Enum = 0x1004
	TEXTURE_MAG_FILTER   Enum = 0x2800
	TEXTURE_MIN_FILTER   Enum = 0x2801
	TEXTURE_WRAP_S       Enum = 0x2802
	TEXTURE_WRAP_T       Enum = 0x2803
)

// Texture filters.
const (
	NEAREST                Enum = 0x2600
	LINEAR                 Enum = 0x2601
	NEAREST_MIPMAP_NEAREST Enum = 0x2700
	LINEAR_MIPMAP_NEAREST  Enum = 0x2701
	NEAREST_MIPMAP_LINEAR  Enum = 0x2702
	LINEAR_MIPMAP_LINEAR   Enum = 0x2703
)

// Texture wrap modes.
const (
	CLAMP           Enum = 0x2900
	REPEAT          Enum = 0x2901
	CLAMP_TO_BORDER Enum = 0x812D
	CLAMP_TO_EDGE   Enum = 0x812F
	MIRRORED_REPEAT Enum = 0x8370
)

// Texture environment targets and parameter names (TexEnv*).
const (
	TEXTURE_ENV_MODE       Enum = 0x2200
	TEXTURE_ENV            Enum = 0x2300
	TEXTURE_FILTER_CONTROL Enum = 0x8500
	TEXTURE_LOD_BIAS       Enum = 0x8501
)

// Texture environment modes and combiner parameters.
const (
	ADD         Enum = 0x0104
	BLEND       Enum = 0x0BE2
	MODULATE    Enum = 0x2100
	DECAL       Enum = 0x2101
	REPLACE     Enum = 0x1E01
	COMBINE     Enum = 0x8570
	COMBINE_RGB Enum = 0x8571

	COMBINE_ALPHA Enum = 0x8572
	RGB_SCALE     Enum = 0x8573
	ADD_SIGNED    Enum = 0x8574
	INTERPOLATE   Enum = 0x8575
	CONSTANT      Enum = 0x8576
	PRIMARY_COLOR Enum = 0x8577
	PREVIOUS      Enum = 0x8578
	SUBTRACT      Enum = 0x84E7
	ALPHA_SCALE   Enum = 0x0D1C
	DOT3_RGB      Enum = 0x86AE
	DOT3_RGBA     Enum = 0x86AF

	SRC0_RGB   Enum = 0x8580
	SRC1_RGB   Enum = 0x8581
	SRC2_RGB   Enum = 0x8582
	SRC0_ALPHA Enum = 0x8588
	SRC1_ALPHA Enum = 0x8589
	SRC2_ALPHA Enum = 0x858A

	OPERAND0_RGB   Enum = 0x8590
	OPERAND1_RGB   Enum = 0x8591
	OPERAND2_RGB   Enum = 0x8592
	OPERAND0_ALPHA Enum = 0x8598
	OPERAND1_ALPHA Enum = 0x8599
	OPERAND2_ALPHA Enum = 0x859A
)

// Combiner operands.
const (
	SRC_COLOR           Enum = 0x0300
	ONE_MINUS_SRC_COLOR Enum = 0x0301
	SRC_ALPHA           Enum = 0x0302
	ONE_MINUS_SRC_ALPHA Enum = 0x0303
)

// Texture coordinate generation.
const (
	S Enum = 0x2000
	T Enum = 0x2001
	R Enum = 0x2002
	Q Enum = 0x2003

	TEXTURE_GEN_MODE Enum = 0x2500
	OBJECT_PLANE     Enum = 0x2501
	EYE_PLANE        Enum = 0x2502

	EYE_LINEAR     Enum = 0x2400
	OBJECT_LINEAR  Enum = 0x2401
	SPHERE_MAP     Enum = 0x2402
	NORMAL_MAP     Enum = 0x8511
	REFLECTION_MAP Enum = 0x8512

	TEXTURE_GEN_S Enum = 0x0C60
	TEXTURE_GEN_T Enum = 0x0C61
	TEXTURE_GEN_R Enum = 0x0C62
	TEXTURE_GEN_Q Enum = 0x0C63
)

// Pixel formats.
const (
	NONE            Enum = 0
	STENCIL_INDEX   Enum = 0x1901
	DEPTH_COMPONENT Enum = 0x1902
	RED             Enum = 0x1903
	GREEN           Enum = 0x1904
	BLUE            Enum = 0x1905
	ALPHA           Enum = 0x1906
	RGB             Enum = 0x1907
	RGBA            Enum = 0x1908
	LUMINANCE       Enum = 0x1909
	LUMINANCE_ALPHA Enum = 0x190A
	BGR             Enum = 0x80E0
	BGRA            Enum = 0x80E1
	INTENSITY       Enum = 0x8049
)

// Pixel component data types.
const (
	BYTE           Enum = 0x1400
	UNSIGNED_BYTE  Enum = 0x1401
	SHORT          Enum = 0x1402
	UNSIGNED_SHORT Enum = 0x1403
	INT            Enum = 0x1404
	UNSIGNED_INT   Enum = 0x1405
	FLOAT          Enum = 0x1406
	DOUBLE         Enum = 0x140A
	HALF_FLOAT     Enum = 0x140B
)

// Pixel store parameters (PixelStorei).
const (
	UNPACK_ROW_LENGTH Enum = 0x0CF2
	UNPACK_ALIGNMENT  Enum = 0x0CF5
	PACK_ROW_LENGTH   Enum = 0x0D02
	PACK_ALIGNMENT    Enum = 0x0D05
)

// Level parameter names (GetTexLevelParameter).
const (
	TEXTURE_WIDTH  Enum = 0x1000
	TEXTURE_HEIGHT Enum = 0x1001
)

// Matrix modes.
const (
	MODELVIEW  Enum = 0x1700
	PROJECTION Enum = 0x1701
	TEXTURE    Enum = 0x1702
)

// Display list modes.
const (
	COMPILE             Enum = 0x1300
	COMPILE_AND_EXECUTE Enum = 0x1301
)

// Begin/End primitive modes.
const (
	POINTS         Enum = 0x0000
	LINES          Enum = 0x0001
	LINE_LOOP      Enum = 0x0002
	LINE_STRIP     Enum = 0x0003
	TRIANGLES      Enum = 0x0004
	TRIANGLE_STRIP Enum = 0x0005
	TRIANGLE_FAN   Enum = 0x0006
	QUADS          Enum = 0x0007
	QUAD_STRIP     Enum = 0x0008
	POLYGON        Enum = 0x0009
)
