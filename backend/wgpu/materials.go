package wgpu

import (
	"fmt"
	"sync"

	"github.com/gogpu/wgpu/hal"
	types "github.com/gogpu/gputypes"
)

// ParamsBinding is the bind slot material parameter uniforms occupy in
// bind group 1. Kept high so application bind groups never collide with it.
const ParamsBinding = 100

// MaterialShaderSet owns the compiled shader modules and bind group
// layouts for every material variant, plus the uniform buffers that feed
// them. The host assembles render pipelines from these pieces; see
// [MaterialPipelineDescriptor].
type MaterialShaderSet struct {
	mu sync.Mutex

	device hal.Device
	queue  hal.Queue

	// Shader modules, one per material variant.
	stripeModule      hal.ShaderModule
	unlitModule       hal.ShaderModule
	blendModule       hal.ShaderModule
	passthroughModule hal.ShaderModule

	// Bind group layouts.
	globalsLayout     hal.BindGroupLayout // group 0: per-frame uniforms
	paramsLayout      hal.BindGroupLayout // group 1: material parameters
	passthroughLayout hal.BindGroupLayout // group 1: texture + sampler

	// Uniform buffers owned by the set.
	globalsBuffer hal.Buffer

	initialized bool
}

// NewMaterialShaderSet compiles the material shaders and creates the
// shared bind group layouts.
func NewMaterialShaderSet(device hal.Device, queue hal.Queue) (*MaterialShaderSet, error) {
	if device == nil || queue == nil {
		return nil, fmt.Errorf("wgpu: device and queue are required")
	}

	s := &MaterialShaderSet{
		device: device,
		queue:  queue,
	}

	if err := s.init(); err != nil {
		s.Destroy()
		return nil, err
	}

	return s, nil
}

func (s *MaterialShaderSet) init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if s.stripeModule, err = createShaderModule(s.device, "stripe_shader", stripeShaderWGSL); err != nil {
		return err
	}
	if s.unlitModule, err = createShaderModule(s.device, "unlit_shader", unlitShaderWGSL); err != nil {
		return err
	}
	if s.blendModule, err = createShaderModule(s.device, "blend_shader", blendShaderWGSL); err != nil {
		return err
	}
	if s.passthroughModule, err = createShaderModule(s.device, "passthrough_shader", passthroughShaderWGSL); err != nil {
		return err
	}

	if err := s.createBindGroupLayouts(); err != nil {
		return err
	}

	s.globalsBuffer, err = s.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "toon_globals",
		Size:  GPUGlobalsSize,
		Usage: types.BufferUsageUniform | types.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create globals buffer: %w", err)
	}

	s.initialized = true
	return nil
}

func (s *MaterialShaderSet) createBindGroupLayouts() error {
	globalsLayout, err := s.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "toon_globals_layout",
		Entries: []types.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: types.ShaderStageVertex | types.ShaderStageFragment,
				Buffer: &types.BufferBindingLayout{
					Type:           types.BufferBindingTypeUniform,
					MinBindingSize: GPUGlobalsSize,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create globals bind group layout: %w", err)
	}
	s.globalsLayout = globalsLayout

	// One layout serves all three parameter-driven materials; the uniform
	// blocks differ only in size, and MinBindingSize takes the smallest.
	paramsLayout, err := s.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "toon_params_layout",
		Entries: []types.BindGroupLayoutEntry{
			{
				Binding:    ParamsBinding,
				Visibility: types.ShaderStageFragment,
				Buffer: &types.BufferBindingLayout{
					Type:           types.BufferBindingTypeUniform,
					MinBindingSize: GPUStripeParamsSize,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create params bind group layout: %w", err)
	}
	s.paramsLayout = paramsLayout

	passthroughLayout, err := s.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "toon_passthrough_layout",
		Entries: []types.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: types.ShaderStageFragment,
				Texture: &types.TextureBindingLayout{
					SampleType:    types.TextureSampleTypeFloat,
					ViewDimension: types.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: types.ShaderStageFragment,
				Sampler: &types.SamplerBindingLayout{
					Type: types.SamplerBindingTypeFiltering,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create passthrough bind group layout: %w", err)
	}
	s.passthroughLayout = passthroughLayout

	return nil
}

// StripeModule returns the compiled striped-mask shader module.
func (s *MaterialShaderSet) StripeModule() hal.ShaderModule { return s.stripeModule }

// UnlitModule returns the compiled unlit blend shader module.
func (s *MaterialShaderSet) UnlitModule() hal.ShaderModule { return s.unlitModule }

// BlendModule returns the compiled lit blend shader module.
func (s *MaterialShaderSet) BlendModule() hal.ShaderModule { return s.blendModule }

// PassthroughModule returns the compiled texture passthrough shader module.
func (s *MaterialShaderSet) PassthroughModule() hal.ShaderModule { return s.passthroughModule }

// GlobalsLayout returns the bind group layout for per-frame uniforms.
func (s *MaterialShaderSet) GlobalsLayout() hal.BindGroupLayout { return s.globalsLayout }

// ParamsLayout returns the bind group layout for material parameters.
func (s *MaterialShaderSet) ParamsLayout() hal.BindGroupLayout { return s.paramsLayout }

// PassthroughLayout returns the bind group layout for the texture
// passthrough material.
func (s *MaterialShaderSet) PassthroughLayout() hal.BindGroupLayout { return s.passthroughLayout }

// IsInitialized reports whether GPU resources were created successfully.
func (s *MaterialShaderSet) IsInitialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// CreateParamsBuffer creates a uniform buffer sized for one material
// parameter block. The caller owns the returned buffer.
func (s *MaterialShaderSet) CreateParamsBuffer(label string, size uint64) (hal.Buffer, error) {
	buffer, err := s.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  size,
		Usage: types.BufferUsageUniform | types.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: failed to create params buffer %s: %w", label, err)
	}
	return buffer, nil
}

// UploadGlobals writes the per-frame uniform block.
func (s *MaterialShaderSet) UploadGlobals(g GPUGlobals) {
	s.queue.WriteBuffer(s.globalsBuffer, 0, g.Bytes())
}

// UploadStripeParams writes striped-mask parameters into buffer.
func (s *MaterialShaderSet) UploadStripeParams(buffer hal.Buffer, p GPUStripeParams) {
	s.queue.WriteBuffer(buffer, 0, p.Bytes())
}

// UploadUnlitParams writes unlit blend parameters into buffer.
func (s *MaterialShaderSet) UploadUnlitParams(buffer hal.Buffer, p GPUUnlitParams) {
	s.queue.WriteBuffer(buffer, 0, p.Bytes())
}

// UploadBlendParams writes lit blend parameters into buffer.
func (s *MaterialShaderSet) UploadBlendParams(buffer hal.Buffer, p GPUBlendParams) {
	s.queue.WriteBuffer(buffer, 0, p.Bytes())
}

// Destroy releases all GPU resources. Safe to call multiple times.
func (s *MaterialShaderSet) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.device == nil {
		return
	}

	if s.globalsBuffer != nil {
		s.device.DestroyBuffer(s.globalsBuffer)
		s.globalsBuffer = nil
	}
	if s.passthroughLayout != nil {
		s.device.DestroyBindGroupLayout(s.passthroughLayout)
		s.passthroughLayout = nil
	}
	if s.paramsLayout != nil {
		s.device.DestroyBindGroupLayout(s.paramsLayout)
		s.paramsLayout = nil
	}
	if s.globalsLayout != nil {
		s.device.DestroyBindGroupLayout(s.globalsLayout)
		s.globalsLayout = nil
	}
	if s.passthroughModule != nil {
		s.device.DestroyShaderModule(s.passthroughModule)
		s.passthroughModule = nil
	}
	if s.blendModule != nil {
		s.device.DestroyShaderModule(s.blendModule)
		s.blendModule = nil
	}
	if s.unlitModule != nil {
		s.device.DestroyShaderModule(s.unlitModule)
		s.unlitModule = nil
	}
	if s.stripeModule != nil {
		s.device.DestroyShaderModule(s.stripeModule)
		s.stripeModule = nil
	}

	s.initialized = false
}
