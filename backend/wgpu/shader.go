package wgpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/toon/cache"
)

//go:embed shaders/stripe.wgsl
var stripeShaderWGSL string

//go:embed shaders/unlit.wgsl
var unlitShaderWGSL string

//go:embed shaders/blend.wgsl
var blendShaderWGSL string

//go:embed shaders/passthrough.wgsl
var passthroughShaderWGSL string

//go:embed shaders/outline.wgsl
var outlineShaderWGSL string

// GetStripeShaderSource returns the WGSL source of the striped-mask material.
func GetStripeShaderSource() string { return stripeShaderWGSL }

// GetUnlitShaderSource returns the WGSL source of the unlit blend material.
func GetUnlitShaderSource() string { return unlitShaderWGSL }

// GetBlendShaderSource returns the WGSL source of the lit blend material.
func GetBlendShaderSource() string { return blendShaderWGSL }

// GetPassthroughShaderSource returns the WGSL source of the texture
// passthrough material.
func GetPassthroughShaderSource() string { return passthroughShaderWGSL }

// GetOutlineShaderSource returns the WGSL source of the outline post-process.
func GetOutlineShaderSource() string { return outlineShaderWGSL }

// spirvCache memoizes WGSL-to-SPIR-V compilation keyed by source text.
// Shader sets are recreated per device, but the sources never change, so
// recompilation is pure waste.
var spirvCache = cache.NewSharded[string, []uint32](8, cache.StringHasher)

// CompileShaderToSPIRV compiles WGSL source to a SPIR-V uint32 slice.
// This is the common shader compilation logic for every pipeline in the
// backend. Results are cached; callers must not modify the returned slice.
func CompileShaderToSPIRV(wgslSource string) ([]uint32, error) {
	if cached, ok := spirvCache.Get(wgslSource); ok {
		return cached, nil
	}

	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("wgpu: failed to compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	spirvCache.Set(wgslSource, spirvCode)
	return spirvCode, nil
}

// createShaderModule compiles WGSL and wraps it in a HAL shader module.
func createShaderModule(device hal.Device, label, wgslSource string) (hal.ShaderModule, error) {
	spirvCode, err := CompileShaderToSPIRV(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("wgpu: %s: %w", label, err)
	}

	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: label,
		Source: hal.ShaderSource{
			SPIRV: spirvCode,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: failed to create shader module %s: %w", label, err)
	}
	return module, nil
}
