// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpu defines the boundary between the softgl state tracker and a
// rasterizer backend.
//
// The state tracker compiles validated client-visible GL state into the
// backend-neutral value types in this package (SamplerConfig,
// RasterizerOptions, ImageDataLayout) and publishes them through the
// Rasterizer interface. Backends implement Rasterizer and Image and register
// themselves with the factory registry; the softpipe package provides the
// reference CPU implementation.
//
// Key principle: softgl RECEIVES the rasterizer, it does not render. All
// types here are already validated by the dispatch layer; a backend may
// assume they are well formed.
package gpu
