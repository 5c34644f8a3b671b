package softgl

import (
	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/softgl/gl"
	"github.com/gogpu/softgl/gpu"
)

// TextureKind tags a texture object's dimensionality. Only 2-D textures are
// implemented; the tag exists so that binding a name to a mismatched target
// can be rejected.
type TextureKind uint8

// Texture kinds.
const (
	TextureKind2D TextureKind = iota
)

// Texture is the common interface of all texture objects held by the name
// registry. A texture object may be referenced by several texture units at
// once; its lifetime is the longest of its holders.
type Texture interface {
	Kind() TextureKind
}

// sampler2D holds the per-object sampler parameters. Defaults follow the GL
// initial state: min filter NEAREST_MIPMAP_LINEAR, mag filter LINEAR, both
// wrap modes REPEAT, transparent black border.
type sampler2D struct {
	minFilter   gl.Enum
	magFilter   gl.Enum
	wrapS       gl.Enum
	wrapT       gl.Enum
	borderColor f32.Vec4
}

func defaultSampler2D() sampler2D {
	return sampler2D{
		minFilter: gl.NEAREST_MIPMAP_LINEAR,
		magFilter: gl.LINEAR,
		wrapS:     gl.REPEAT,
		wrapT:     gl.REPEAT,
	}
}

// Texture2D is a two-dimensional texture object. Device storage is absent
// until the first level-0 image specification and is recreated whenever
// level 0 is re-specified; sub-region updates never recreate it.
type Texture2D struct {
	sampler sampler2D

	// internalFormat is the client-requested internal format of the last
	// level-0 specification.
	internalFormat gl.Enum
	pixelFormat    gpu.PixelFormat

	// Level-0 extent; per-level sizes are derived from it.
	width  uint32
	height uint32

	deviceImage gpu.Image
}

// NewTexture2D returns a texture object with default sampler state and no
// device storage.
func NewTexture2D() *Texture2D {
	return &Texture2D{sampler: defaultSampler2D()}
}

// Kind implements Texture.
func (t *Texture2D) Kind() TextureKind { return TextureKind2D }

// DeviceImage returns the backend storage, or nil before the first level-0
// upload.
func (t *Texture2D) DeviceImage() gpu.Image { return t.deviceImage }

// setDeviceImage installs freshly created backend storage, replacing any
// previous image.
func (t *Texture2D) setDeviceImage(img gpu.Image, internalFormat gl.Enum, format gpu.PixelFormat, width, height uint32) {
	t.deviceImage = img
	t.internalFormat = internalFormat
	t.pixelFormat = format
	t.width = width
	t.height = height
}

// WidthAtLevel returns the width of the given mipmap level.
func (t *Texture2D) WidthAtLevel(level uint32) uint32 { return levelDimension(t.width, level) }

// HeightAtLevel returns the height of the given mipmap level.
func (t *Texture2D) HeightAtLevel(level uint32) uint32 { return levelDimension(t.height, level) }

// InternalFormat returns the internal format requested at the last level-0
// specification, or gl.NONE before any upload.
func (t *Texture2D) InternalFormat() gl.Enum { return t.internalFormat }

func levelDimension(base, level uint32) uint32 {
	d := base >> level
	if d == 0 && base > 0 {
		return 1
	}
	return d
}

// uploadTextureData forwards level data to device storage. Uploads to
// levels above 0 before storage exists are dropped; mipmap chains must be
// specified from level 0 upwards (texture completeness is not modeled).
func (t *Texture2D) uploadTextureData(level uint32, layout gpu.ImageDataLayout, data []byte) {
	if t.deviceImage == nil {
		Logger().Debug("softgl: dropping texture upload before level 0 specification", "level", level)
		return
	}
	t.deviceImage.UploadTextureData(level, layout, data)
}

// downloadTextureData reads level data from device storage.
func (t *Texture2D) downloadTextureData(level uint32, layout gpu.ImageDataLayout, data []byte) {
	t.deviceImage.DownloadTextureData(level, layout, data)
}

// replaceSubTextureData updates a sub-region of a level in device storage.
func (t *Texture2D) replaceSubTextureData(level uint32, layout gpu.ImageDataLayout, offset gputypes.Origin3D, data []byte) {
	t.deviceImage.ReplaceSubTextureData(level, layout, offset, data)
}
