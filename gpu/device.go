// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"image"

	"github.com/gogpu/gputypes"
)

// DeviceInfo advertises the capabilities of a rasterizer backend.
type DeviceInfo struct {
	// VendorName identifies the backend implementation.
	VendorName string

	// NumTextureUnits is the number of fixed-function texture units.
	NumTextureUnits int

	// MaxTextureSize is the maximum width and height of a texture level 0.
	// Must be a power of two.
	MaxTextureSize int

	// SupportsNPOTTextures reports whether non-power-of-two texture
	// dimensions are accepted.
	SupportsNPOTTextures bool
}

// Image is backend-owned storage for a texture's pixel data across mipmap
// levels. It is opaque to the state tracker: all transfer operations take a
// validated ImageDataLayout and a raw client buffer.
type Image interface {
	// Format returns the internal pixel format the image was created with.
	Format() PixelFormat

	// Size returns the extent of the given mipmap level.
	Size(level uint32) gputypes.Extent3D

	// UploadTextureData replaces the texel region described by layout at the
	// given level with data from the client buffer.
	UploadTextureData(level uint32, layout ImageDataLayout, data []byte)

	// DownloadTextureData reads the texel region described by layout at the
	// given level into the client buffer.
	DownloadTextureData(level uint32, layout ImageDataLayout, data []byte)

	// ReplaceSubTextureData updates the sub-region at offset with data from
	// the client buffer. The region is guaranteed to lie within the level.
	ReplaceSubTextureData(level uint32, layout ImageDataLayout, offset gputypes.Origin3D, data []byte)
}

// Rasterizer is the rendering backend consumed by the softgl state tracker.
// Implementations are driven single-threaded by the owning context.
type Rasterizer interface {
	// Info returns the static device capabilities.
	Info() DeviceInfo

	// CreateImage allocates device storage for a texture with the given
	// level-0 extent and mipmap chain length.
	CreateImage(format PixelFormat, size gputypes.Extent3D, maxLevelCount uint32) Image

	// BlitFromColorBuffer copies a region of the current color buffer into
	// an image level. src may address pixels outside the buffer; such texels
	// are left untouched.
	BlitFromColorBuffer(img Image, level uint32, size gputypes.Extent3D, src image.Point, dst gputypes.Origin3D)

	// BlitFromDepthBuffer is BlitFromColorBuffer for the depth buffer.
	BlitFromDepthBuffer(img Image, level uint32, size gputypes.Extent3D, src image.Point, dst gputypes.Origin3D)

	// SetSamplerConfig publishes the sampler descriptor for one unit.
	SetSamplerConfig(unit int, config SamplerConfig)

	// SetOptions publishes a full option block previously obtained from
	// Options.
	SetOptions(opts RasterizerOptions)

	// Options returns the current option block.
	Options() RasterizerOptions
}
