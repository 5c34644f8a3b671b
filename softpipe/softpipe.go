// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package softpipe

import (
	"image"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/softgl/gpu"
)

const (
	vendorName      = "softpipe"
	numTextureUnits = 8
	maxTextureSize  = 2048

	defaultWidth  = 640
	defaultHeight = 480
)

func init() {
	gpu.Register(vendorName, func() gpu.Rasterizer {
		return New(defaultWidth, defaultHeight)
	})
}

// Rasterizer is a CPU rasterizer with float RGBA color and float depth
// buffers. It is driven single-threaded by the owning context.
type Rasterizer struct {
	width  int
	height int
	color  []f32.Vec4
	depth  []float32

	samplers   [numTextureUnits]gpu.SamplerConfig
	samplerSet [numTextureUnits]bool

	options gpu.RasterizerOptions
}

var _ gpu.Rasterizer = (*Rasterizer)(nil)

// New returns a rasterizer with color and depth buffers of the given size.
// The depth buffer starts cleared to the far plane.
func New(width, height int) *Rasterizer {
	r := &Rasterizer{
		width:  width,
		height: height,
		color:  make([]f32.Vec4, width*height),
		depth:  make([]float32, width*height),
	}
	r.ClearDepth(1)
	return r
}

// Info implements gpu.Rasterizer.
func (r *Rasterizer) Info() gpu.DeviceInfo {
	return gpu.DeviceInfo{
		VendorName:           vendorName,
		NumTextureUnits:      numTextureUnits,
		MaxTextureSize:       maxTextureSize,
		SupportsNPOTTextures: false,
	}
}

// CreateImage implements gpu.Rasterizer.
func (r *Rasterizer) CreateImage(format gpu.PixelFormat, size gputypes.Extent3D, maxLevelCount uint32) gpu.Image {
	return newImage2D(format, size, maxLevelCount)
}

// BlitFromColorBuffer implements gpu.Rasterizer.
func (r *Rasterizer) BlitFromColorBuffer(img gpu.Image, level uint32, size gputypes.Extent3D, src image.Point, dst gputypes.Origin3D) {
	target := img.(*image2D)
	for y := 0; y < int(size.Height); y++ {
		sy := src.Y + y
		for x := 0; x < int(size.Width); x++ {
			sx := src.X + x
			if sx < 0 || sy < 0 || sx >= r.width || sy >= r.height {
				continue
			}
			target.setTexel(level, int(dst.X)+x, int(dst.Y)+y, r.color[sy*r.width+sx])
		}
	}
}

// BlitFromDepthBuffer implements gpu.Rasterizer.
func (r *Rasterizer) BlitFromDepthBuffer(img gpu.Image, level uint32, size gputypes.Extent3D, src image.Point, dst gputypes.Origin3D) {
	target := img.(*image2D)
	for y := 0; y < int(size.Height); y++ {
		sy := src.Y + y
		for x := 0; x < int(size.Width); x++ {
			sx := src.X + x
			if sx < 0 || sy < 0 || sx >= r.width || sy >= r.height {
				continue
			}
			d := r.depth[sy*r.width+sx]
			target.setTexel(level, int(dst.X)+x, int(dst.Y)+y, f32.Vec4{d, d, d, 1})
		}
	}
}

// SetSamplerConfig implements gpu.Rasterizer.
func (r *Rasterizer) SetSamplerConfig(unit int, config gpu.SamplerConfig) {
	if unit < 0 || unit >= numTextureUnits {
		return
	}
	r.samplers[unit] = config
	r.samplerSet[unit] = true
}

// SamplerConfig returns the last descriptor published for a unit and
// whether one was ever published.
func (r *Rasterizer) SamplerConfig(unit int) (gpu.SamplerConfig, bool) {
	if unit < 0 || unit >= numTextureUnits {
		return gpu.SamplerConfig{}, false
	}
	return r.samplers[unit], r.samplerSet[unit]
}

// SetOptions implements gpu.Rasterizer.
func (r *Rasterizer) SetOptions(opts gpu.RasterizerOptions) {
	r.options = opts
}

// Options implements gpu.Rasterizer.
func (r *Rasterizer) Options() gpu.RasterizerOptions {
	return r.options
}

// ClearColor fills the color buffer with a constant.
func (r *Rasterizer) ClearColor(c f32.Vec4) {
	for i := range r.color {
		r.color[i] = c
	}
}

// ClearDepth fills the depth buffer with a constant.
func (r *Rasterizer) ClearDepth(d float32) {
	for i := range r.depth {
		r.depth[i] = d
	}
}

// SetColorPixel writes one color buffer pixel. Out-of-range coordinates
// are ignored.
func (r *Rasterizer) SetColorPixel(x, y int, c f32.Vec4) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.color[y*r.width+x] = c
}

// SetDepthPixel writes one depth buffer pixel. Out-of-range coordinates
// are ignored.
func (r *Rasterizer) SetDepthPixel(x, y int, d float32) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.depth[y*r.width+x] = d
}
