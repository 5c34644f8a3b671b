package softgl

import (
	"golang.org/x/image/math/f32"

	"github.com/gogpu/softgl/gl"
)

// texCoordGeneration is the generation state of one texture coordinate
// (S, T, R or Q) on one unit.
//
// eyePlaneCoefficients are stored pre-transformed by the inverse model-view
// matrix captured at the moment of the TexGen call; later model-view changes
// do not affect them. This matches the glGetTexGen contract: "the returned
// values are those maintained in eye coordinates".
type texCoordGeneration struct {
	enabled                 bool
	generationMode          gl.Enum
	objectPlaneCoefficients f32.Vec4
	eyePlaneCoefficients    f32.Vec4
}

// textureUnit is one fixed-function texturing stage. A context owns a fixed
// number of them, each holding a reference to the currently bound texture
// object plus the unit's environment, combiner and coordinate generation
// state.
type textureUnit struct {
	texture2D        *Texture2D
	texture2DEnabled bool

	envMode gl.Enum

	rgbScale   float32
	alphaScale float32

	rgbCombinator   gl.Enum
	alphaCombinator gl.Enum

	// Operand and source slots 0..2, independently configured per channel.
	// A source may be gl.TEXTURE0..gl.TEXTURE31, naming another unit.
	rgbOperand   [3]gl.Enum
	alphaOperand [3]gl.Enum
	rgbSource    [3]gl.Enum
	alphaSource  [3]gl.Enum

	levelOfDetailBias float32

	// Generation state for coordinates S, T, R, Q in that order.
	texCoordGeneration [4]texCoordGeneration
}

// defaultTextureUnit returns a unit in the GL initial state, bound to the
// shared default texture.
func defaultTextureUnit(def *Texture2D) textureUnit {
	u := textureUnit{
		texture2D:       def,
		envMode:         gl.MODULATE,
		rgbScale:        1,
		alphaScale:      1,
		rgbCombinator:   gl.MODULATE,
		alphaCombinator: gl.MODULATE,
		rgbOperand:      [3]gl.Enum{gl.SRC_COLOR, gl.SRC_COLOR, gl.SRC_ALPHA},
		alphaOperand:    [3]gl.Enum{gl.SRC_ALPHA, gl.SRC_ALPHA, gl.SRC_ALPHA},
		rgbSource:       [3]gl.Enum{gl.TEXTURE, gl.PREVIOUS, gl.CONSTANT},
		alphaSource:     [3]gl.Enum{gl.TEXTURE, gl.PREVIOUS, gl.CONSTANT},
	}
	for i := range u.texCoordGeneration {
		u.texCoordGeneration[i] = texCoordGeneration{
			generationMode: gl.EYE_LINEAR,
		}
	}
	// GL initial object and eye planes: S=(1,0,0,0), T=(0,1,0,0).
	u.texCoordGeneration[0].objectPlaneCoefficients = f32.Vec4{1, 0, 0, 0}
	u.texCoordGeneration[0].eyePlaneCoefficients = f32.Vec4{1, 0, 0, 0}
	u.texCoordGeneration[1].objectPlaneCoefficients = f32.Vec4{0, 1, 0, 0}
	u.texCoordGeneration[1].eyePlaneCoefficients = f32.Vec4{0, 1, 0, 0}
	return u
}
