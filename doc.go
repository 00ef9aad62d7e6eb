// Package toon provides a stylized material shading and outline
// post-processing pipeline for Go.
//
// # Overview
//
// toon implements the per-pixel algorithms of a small real-time toon
// rendering pipeline: four parameterized fragment-stage materials plus a
// screen-space edge-outline post-process. The host renderer owns
// rasterization, lighting, and resource binding; toon owns only the pixel
// math and the binary parameter layouts the host uploads.
//
// # Quick Start
//
//	import "github.com/gogpu/toon"
//
//	mat := &toon.StripeMaterial{Params: toon.StripeParams{
//	    Color:     toon.RGB(0.9, 0.4, 0.1),
//	    Frequency: 8,
//	    Thickness: 0.2,
//	}}
//
//	frag := toon.Fragment{UV: toon.V2(0.3, 0.7), BaseColor: toon.White}
//	out := mat.Shade(frag, toon.FrameInfo{Time: 1.5})
//
// # Pipeline Stages
//
// Two stages compose through the frame graph:
//
//  1. Material shading: each rasterized fragment is shaded by one of the
//     [Material] variants ([StripeMaterial], [UnlitMaterial],
//     [TextureMaterial], [BlendMaterial]) into a final color.
//  2. Edge outline: [OutlineFilter] runs a 3x3 Sobel kernel over a
//     single-channel section buffer and composites a stroke color over the
//     shaded frame wherever the gradient exceeds a small epsilon.
//
// Data flows strictly one way: stage 1 fills a [ColorBuffer] and a
// [ScalarBuffer], stage 2 reads both and writes the presented frame.
//
// # Renderers
//
// The root package holds the CPU reference implementation; render/ provides
// the frame graph and a software renderer; backend/wgpu holds the WGSL
// shader sources, their uniform layouts, and GPU pipeline setup via
// gogpu/wgpu.
//
// # Coordinate System
//
// Buffers use standard raster coordinates: origin at top-left, X right,
// Y down. UV coordinates are normalized [0,1] over a texture. Angles are
// in radians.
//
// # Concurrency
//
// Every shading and post-process invocation is a pure function of immutable
// per-frame inputs. Nothing in this package mutates shared state; buffers
// are written exactly once by their producing stage.
package toon

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
