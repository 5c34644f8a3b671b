package softpipe

import (
	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/softgl/gpu"
)

// mipLevel is one level of an image's mipmap chain, stored as linear
// float RGBA.
type mipLevel struct {
	width  uint32
	height uint32
	texels []f32.Vec4
}

// image2D implements gpu.Image with CPU-side storage.
type image2D struct {
	format gpu.PixelFormat
	levels []mipLevel
}

func newImage2D(format gpu.PixelFormat, size gputypes.Extent3D, maxLevelCount uint32) *image2D {
	img := &image2D{format: format}
	w, h := size.Width, size.Height
	for l := uint32(0); l < maxLevelCount; l++ {
		img.levels = append(img.levels, mipLevel{
			width:  w,
			height: h,
			texels: make([]f32.Vec4, int(w)*int(h)),
		})
		if w == 1 && h == 1 {
			break
		}
		if w > 1 {
			w >>= 1
		}
		if h > 1 {
			h >>= 1
		}
	}
	return img
}

// Format implements gpu.Image.
func (img *image2D) Format() gpu.PixelFormat { return img.format }

// Size implements gpu.Image.
func (img *image2D) Size(level uint32) gputypes.Extent3D {
	lv := &img.levels[level]
	return gputypes.Extent3D{Width: lv.width, Height: lv.height, DepthOrArrayLayers: 1}
}

// Texel returns the stored RGBA value at the given level coordinates.
func (img *image2D) Texel(level uint32, x, y int) f32.Vec4 {
	lv := &img.levels[level]
	return lv.texels[y*int(lv.width)+x]
}

func (img *image2D) setTexel(level uint32, x, y int, texel f32.Vec4) {
	lv := &img.levels[level]
	lv.texels[y*int(lv.width)+x] = texel
}

// UploadTextureData implements gpu.Image.
func (img *image2D) UploadTextureData(level uint32, layout gpu.ImageDataLayout, data []byte) {
	img.writeTexels(level, layout, gputypes.Origin3D{}, data)
}

// ReplaceSubTextureData implements gpu.Image.
func (img *image2D) ReplaceSubTextureData(level uint32, layout gpu.ImageDataLayout, offset gputypes.Origin3D, data []byte) {
	img.writeTexels(level, layout, offset, data)
}

func (img *image2D) writeTexels(level uint32, layout gpu.ImageDataLayout, offset gputypes.Origin3D, data []byte) {
	if data == nil {
		return
	}
	lv := &img.levels[level]
	stride := rowStride(layout)
	size := texelSize(layout.PixelType)
	for y := uint32(0); y < layout.Selection.Height; y++ {
		row := data[int(y)*stride:]
		dy := int(offset.Y) + int(y)
		for x := uint32(0); x < layout.Selection.Width; x++ {
			dx := int(offset.X) + int(x)
			if dx >= int(lv.width) || dy >= int(lv.height) {
				continue
			}
			lv.texels[dy*int(lv.width)+dx] = decodeTexel(layout.PixelType, row[int(x)*size:])
		}
	}
}

// DownloadTextureData implements gpu.Image.
func (img *image2D) DownloadTextureData(level uint32, layout gpu.ImageDataLayout, data []byte) {
	lv := &img.levels[level]
	stride := rowStride(layout)
	size := texelSize(layout.PixelType)
	for y := uint32(0); y < layout.Selection.Height; y++ {
		row := data[int(y)*stride:]
		for x := uint32(0); x < layout.Selection.Width; x++ {
			if x >= lv.width || y >= lv.height {
				continue
			}
			encodeTexel(layout.PixelType, lv.texels[int(y)*int(lv.width)+int(x)], row[int(x)*size:])
		}
	}
}
