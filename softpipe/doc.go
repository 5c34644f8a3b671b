// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package softpipe is the reference CPU rasterizer backend.
//
// It registers itself with the gpu backend registry under the name
// "softpipe" and is selected by default when no other backend is present.
// Texture storage is kept as linear float RGBA per mipmap level, so every
// client pixel format round-trips without precision surprises.
package softpipe
