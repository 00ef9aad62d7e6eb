// Package wgpu provides the GPU backend for the toon pipeline using
// WebGPU via gogpu/wgpu.
//
// The package owns three things:
//
//   - The WGSL shader sources for the four material variants and the
//     outline post-process, embedded under shaders/ and compiled to
//     SPIR-V with gogpu/naga.
//   - The uniform mirror structs whose byte layout matches the WGSL
//     parameter structs exactly. Field order and padding are part of the
//     binding contract with the shaders; reordering fields breaks it.
//   - Pipeline setup over the HAL: [MaterialShaderSet] compiles the
//     shaders and creates the shared bind group layouts,
//     [MaterialPipelines] assembles one render pipeline per material
//     variant, and [OutlinePass] runs the post-process as a compute
//     pipeline. All of them are created from a device the host injects;
//     toon never creates its own device.
package wgpu
