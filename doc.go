// Package softgl implements the fixed-function texture state subsystem of an
// OpenGL 1.x-class software pipeline.
//
// # Overview
//
// softgl tracks client-visible GL texture state — texture objects and names,
// per-unit environment and combiner configuration, and texture coordinate
// generation — validates every mutation against the GL legality rules, and
// lazily compiles the result into backend-neutral descriptors for a
// rasterizer (see the gpu subpackage). Rendering itself is out of scope:
// softgl drives a gpu.Rasterizer, it never touches pixels.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/softgl"
//	    "github.com/gogpu/softgl/gl"
//	    _ "github.com/gogpu/softgl/softpipe" // register the reference backend
//	)
//
//	ctx, err := softgl.NewContext()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	names := ctx.GenTextures(1)
//	ctx.BindTexture(gl.TEXTURE_2D, names[0])
//	ctx.TexImage2D(gl.TEXTURE_2D, 0, int32(gl.RGBA), 64, 64, 0, gl.RGBA, gl.UNSIGNED_BYTE, pixels)
//	ctx.SyncSamplerConfig()
//
// # Error Model
//
// Calls follow the GL error convention: a failed call performs no state
// change and records one of gl.INVALID_ENUM, gl.INVALID_VALUE or
// gl.INVALID_OPERATION; Context.GetError returns and clears the first
// pending error. Validation always precedes mutation.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Context and its GL-shaped entry points
//   - gl: symbolic GL constants
//   - gpu: the rasterizer boundary (interfaces, config types, registry)
//   - softpipe: reference CPU rasterizer backend
//
// # Limitations
//
// Only the GL_TEXTURE_2D target is functional; other legal targets are
// accepted and diagnosed as no-ops. Texture completeness rules and
// compressed formats are not modeled. Binding an ungenerated name follows
// the legacy GL 1.x implicit-creation semantics.
package softgl
