package softgl

import (
	"github.com/gogpu/softgl/gl"
	"github.com/gogpu/softgl/gpu"
)

// Translation tables from validated GL state to backend enumerations.
// Validation and translation are two separate passes: by the time any of
// these run, the dispatch layer has excluded every illegal value, so the
// default cases are internal faults, not user errors.

// translateMinFilter collapses the six legacy minification filters into a
// base filter plus a mipmap filter.
func translateMinFilter(filter gl.Enum) (gpu.TextureFilter, gpu.MipMapFilter) {
	switch filter {
	case gl.NEAREST:
		return gpu.TextureFilterNearest, gpu.MipMapFilterNone
	case gl.LINEAR:
		return gpu.TextureFilterLinear, gpu.MipMapFilterNone
	case gl.NEAREST_MIPMAP_NEAREST:
		return gpu.TextureFilterNearest, gpu.MipMapFilterNearest
	case gl.LINEAR_MIPMAP_NEAREST:
		return gpu.TextureFilterLinear, gpu.MipMapFilterNearest
	case gl.NEAREST_MIPMAP_LINEAR:
		return gpu.TextureFilterNearest, gpu.MipMapFilterLinear
	case gl.LINEAR_MIPMAP_LINEAR:
		return gpu.TextureFilterLinear, gpu.MipMapFilterLinear
	}
	panic("softgl: invalid min filter reached translation")
}

func translateMagFilter(filter gl.Enum) gpu.TextureFilter {
	switch filter {
	case gl.NEAREST:
		return gpu.TextureFilterNearest
	case gl.LINEAR:
		return gpu.TextureFilterLinear
	}
	panic("softgl: invalid mag filter reached translation")
}

func translateWrapMode(mode gl.Enum) gpu.TextureWrapMode {
	switch mode {
	case gl.CLAMP:
		return gpu.TextureWrapModeClamp
	case gl.CLAMP_TO_BORDER:
		return gpu.TextureWrapModeClampToBorder
	case gl.CLAMP_TO_EDGE:
		return gpu.TextureWrapModeClampToEdge
	case gl.REPEAT:
		return gpu.TextureWrapModeRepeat
	case gl.MIRRORED_REPEAT:
		return gpu.TextureWrapModeMirroredRepeat
	}
	panic("softgl: invalid wrap mode reached translation")
}

func translateEnvMode(mode gl.Enum) gpu.TextureEnvMode {
	switch mode {
	case gl.ADD:
		return gpu.TextureEnvModeAdd
	case gl.BLEND:
		return gpu.TextureEnvModeBlend
	case gl.COMBINE:
		return gpu.TextureEnvModeCombine
	case gl.DECAL:
		return gpu.TextureEnvModeDecal
	case gl.MODULATE:
		return gpu.TextureEnvModeModulate
	case gl.REPLACE:
		return gpu.TextureEnvModeReplace
	}
	panic("softgl: invalid environment mode reached translation")
}

func translateCombinator(combinator gl.Enum) gpu.TextureCombinator {
	switch combinator {
	case gl.ADD:
		return gpu.TextureCombinatorAdd
	case gl.ADD_SIGNED:
		return gpu.TextureCombinatorAddSigned
	case gl.DOT3_RGB:
		return gpu.TextureCombinatorDot3RGB
	case gl.DOT3_RGBA:
		return gpu.TextureCombinatorDot3RGBA
	case gl.INTERPOLATE:
		return gpu.TextureCombinatorInterpolate
	case gl.MODULATE:
		return gpu.TextureCombinatorModulate
	case gl.REPLACE:
		return gpu.TextureCombinatorReplace
	case gl.SUBTRACT:
		return gpu.TextureCombinatorSubtract
	}
	panic("softgl: invalid combinator reached translation")
}

func translateOperand(operand gl.Enum) gpu.TextureOperand {
	switch operand {
	case gl.ONE_MINUS_SRC_ALPHA:
		return gpu.TextureOperandOneMinusSourceAlpha
	case gl.ONE_MINUS_SRC_COLOR:
		return gpu.TextureOperandOneMinusSourceColor
	case gl.SRC_ALPHA:
		return gpu.TextureOperandSourceAlpha
	case gl.SRC_COLOR:
		return gpu.TextureOperandSourceColor
	}
	panic("softgl: invalid operand reached translation")
}

func translateSource(source gl.Enum) gpu.TextureSource {
	switch source {
	case gl.CONSTANT:
		return gpu.TextureSourceConstant
	case gl.PREVIOUS:
		return gpu.TextureSourcePrevious
	case gl.PRIMARY_COLOR:
		return gpu.TextureSourcePrimaryColor
	case gl.TEXTURE:
		return gpu.TextureSourceTexture
	}
	if source >= gl.TEXTURE0 && source <= gl.TEXTURE31 {
		return gpu.TextureSourceTextureStage
	}
	panic("softgl: invalid combiner source reached translation")
}

// SyncSamplerConfig compiles the sampler state of every enabled texture
// unit into backend descriptors and publishes them to the rasterizer.
// It is a no-op unless sampler state changed since the last call; invoke it
// immediately before anything depending on texture state is drawn.
func (c *Context) SyncSamplerConfig() {
	if !c.samplerConfigDirty {
		return
	}
	c.samplerConfigDirty = false

	for i := range c.units {
		unit := &c.units[i]
		if !unit.texture2DEnabled {
			continue
		}

		texture2D := unit.texture2D
		sampler := &texture2D.sampler

		var config gpu.SamplerConfig
		config.BoundImage = texture2D.DeviceImage()
		config.LevelOfDetailBias = unit.levelOfDetailBias
		config.TextureMinFilter, config.MipMapFilter = translateMinFilter(sampler.minFilter)
		config.TextureMagFilter = translateMagFilter(sampler.magFilter)
		config.TextureWrapU = translateWrapMode(sampler.wrapS)
		config.TextureWrapV = translateWrapMode(sampler.wrapT)
		config.BorderColor = sampler.borderColor

		env := &config.FixedFunctionTextureEnvironment
		env.EnvMode = translateEnvMode(unit.envMode)
		env.RGBScale = unit.rgbScale
		env.AlphaScale = unit.alphaScale
		env.RGBCombinator = translateCombinator(unit.rgbCombinator)
		env.AlphaCombinator = translateCombinator(unit.alphaCombinator)

		for slot := 0; slot < 3; slot++ {
			env.RGBOperand[slot] = translateOperand(unit.rgbOperand[slot])
			env.RGBSource[slot] = translateSource(unit.rgbSource[slot])
			if env.RGBSource[slot] == gpu.TextureSourceTextureStage {
				env.RGBSourceTextureStage = uint8(unit.rgbSource[slot] - gl.TEXTURE0)
			}

			env.AlphaOperand[slot] = translateOperand(unit.alphaOperand[slot])
			env.AlphaSource[slot] = translateSource(unit.alphaSource[slot])
			if env.AlphaSource[slot] == gpu.TextureSourceTextureStage {
				env.AlphaSourceTextureStage = uint8(unit.alphaSource[slot] - gl.TEXTURE0)
			}
		}

		c.rasterizer.SetSamplerConfig(i, config)
	}
}

// SyncTexCoordConfig compiles coordinate generation state for every unit
// into the rasterizer's option block and publishes it in one SetOptions
// call. No-op unless texcoord generation state changed since the last call.
func (c *Context) SyncTexCoordConfig() {
	if !c.texCoordConfigDirty {
		return
	}
	c.texCoordConfigDirty = false

	options := c.rasterizer.Options()
	if len(options.TexCoordGenerationEnabledCoordinates) < len(c.units) {
		options.TexCoordGenerationEnabledCoordinates = make([]uint8, len(c.units))
	}
	if len(options.TexCoordGenerationConfig) < len(c.units) {
		options.TexCoordGenerationConfig = make([][4]gpu.TexCoordGenerationConfig, len(c.units))
	}

	for i := range c.units {
		unit := &c.units[i]

		enabledCoordinates := gpu.TexCoordGenerationNone
		for coord := 0; coord < 4; coord++ {
			gen := &unit.texCoordGeneration[coord]
			if !gen.enabled {
				continue
			}
			enabledCoordinates |= gpu.TexCoordGenerationS << coord

			config := &options.TexCoordGenerationConfig[i][coord]
			switch gen.generationMode {
			case gl.OBJECT_LINEAR:
				config.Mode = gpu.TexCoordGenerationModeObjectLinear
				config.Coefficients = gen.objectPlaneCoefficients
			case gl.EYE_LINEAR:
				config.Mode = gpu.TexCoordGenerationModeEyeLinear
				config.Coefficients = gen.eyePlaneCoefficients
			case gl.SPHERE_MAP:
				config.Mode = gpu.TexCoordGenerationModeSphereMap
			case gl.REFLECTION_MAP:
				config.Mode = gpu.TexCoordGenerationModeReflectionMap
			case gl.NORMAL_MAP:
				config.Mode = gpu.TexCoordGenerationModeNormalMap
			default:
				panic("softgl: invalid generation mode reached translation")
			}
		}
		options.TexCoordGenerationEnabledCoordinates[i] = enabledCoordinates
	}

	c.rasterizer.SetOptions(options)
}
