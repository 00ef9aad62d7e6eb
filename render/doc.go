// Package render provides the frame graph that composes the toon shading
// stages, plus the integration layer between toon and GPU frameworks.
//
// # Frame Graph
//
// A [Frame] is an ordered list of draws followed by an optional outline
// post-process. Data flows strictly one way through a [Target]:
//
//	draws ──> material stage ──> Color + Sections ──> outline stage ──> dst
//
// The material stage must have fully written both target buffers before
// the outline stage samples them. [SoftwareRenderer.Render] enforces that
// barrier by running the stages sequentially; a GPU host enforces it with
// a pass dependency.
//
// # Key Principle
//
// toon RECEIVES a GPU device from the host application, it does NOT create
// its own. This follows the Vello/femtovg/Skia pattern where the rendering
// library is injected with GPU resources rather than managing them itself.
// [DeviceHandle] is the injection point.
//
// # Renderers
//
//   - [SoftwareRenderer]: CPU reference implementation, row-parallel
//     post-processing
//   - backend/wgpu: GPU pipelines over gogpu/wgpu
//
// # Thread Safety
//
// Renderers are NOT safe for concurrent use. Create one renderer per
// goroutine, or use external synchronization. The buffers inside a Target
// are written exactly once per frame by their producing stage.
package render
