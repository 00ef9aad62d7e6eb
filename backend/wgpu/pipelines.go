package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// vertexStride is the byte stride per vertex in the material pipelines.
// Layout per vertex:
//
//	position   (vec3<f32>) = 12 bytes (location 0)
//	uv         (vec2<f32>) = 8 bytes  (location 1)
//	base_color (vec4<f32>) = 16 bytes (location 2)
//
// Total = 36 bytes per vertex.
const vertexStride = 36

func materialVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: vertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 12, ShaderLocation: 1}, // uv
				{Format: gputypes.VertexFormatFloat32x4, Offset: 20, ShaderLocation: 2}, // base_color
			},
		},
	}
}

// MaterialPipelines owns one render pipeline per material variant, all
// targeting a single color format. The unlit material carries a second
// pipeline for depth-only prepasses.
type MaterialPipelines struct {
	device hal.Device

	shaders *MaterialShaderSet
	format  gputypes.TextureFormat

	paramsPipeLayout      hal.PipelineLayout
	passthroughPipeLayout hal.PipelineLayout

	stripe       hal.RenderPipeline
	unlit        hal.RenderPipeline
	unlitPrepass hal.RenderPipeline
	blend        hal.RenderPipeline
	passthrough  hal.RenderPipeline
}

// NewMaterialPipelines builds the render pipelines for every material
// variant against the given color target format. The shader set must
// outlive the pipelines.
func NewMaterialPipelines(device hal.Device, shaders *MaterialShaderSet, format gputypes.TextureFormat) (*MaterialPipelines, error) {
	if device == nil || shaders == nil {
		return nil, fmt.Errorf("wgpu: device and shader set are required")
	}

	p := &MaterialPipelines{
		device:  device,
		shaders: shaders,
		format:  format,
	}

	if err := p.init(); err != nil {
		p.Destroy()
		return nil, err
	}
	return p, nil
}

func (p *MaterialPipelines) init() error {
	paramsLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "toon_params_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.shaders.GlobalsLayout(), p.shaders.ParamsLayout()},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create params pipeline layout: %w", err)
	}
	p.paramsPipeLayout = paramsLayout

	passthroughLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "toon_passthrough_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.shaders.GlobalsLayout(), p.shaders.PassthroughLayout()},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create passthrough pipeline layout: %w", err)
	}
	p.passthroughPipeLayout = passthroughLayout

	if p.stripe, err = p.createPipeline("stripe_pipeline", p.paramsPipeLayout, p.shaders.StripeModule(), "fs_main"); err != nil {
		return err
	}
	if p.unlit, err = p.createPipeline("unlit_pipeline", p.paramsPipeLayout, p.shaders.UnlitModule(), "fs_main"); err != nil {
		return err
	}
	if p.unlitPrepass, err = p.createPipeline("unlit_prepass_pipeline", p.paramsPipeLayout, p.shaders.UnlitModule(), "fs_prepass"); err != nil {
		return err
	}
	if p.blend, err = p.createPipeline("blend_pipeline", p.paramsPipeLayout, p.shaders.BlendModule(), "fs_main"); err != nil {
		return err
	}
	if p.passthrough, err = p.createPipeline("passthrough_pipeline", p.passthroughPipeLayout, p.shaders.PassthroughModule(), "fs_main"); err != nil {
		return err
	}
	return nil
}

// createPipeline builds one render pipeline. The variants share vertex
// layout, blending and primitive state; only shader module, fragment
// entry point and bind group layouts differ.
func (p *MaterialPipelines) createPipeline(label string, layout hal.PipelineLayout, module hal.ShaderModule, fragmentEntry string) (hal.RenderPipeline, error) {
	premulBlend := gputypes.BlendStatePremultiplied()
	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  label,
		Layout: layout,
		Vertex: hal.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
			Buffers:    materialVertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     module,
			EntryPoint: fragmentEntry,
			Targets: []gputypes.ColorTargetState{
				{
					Format:    p.format,
					Blend:     &premulBlend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: failed to create %s: %w", label, err)
	}
	return pipeline, nil
}

// Stripe returns the striped-mask material pipeline.
func (p *MaterialPipelines) Stripe() hal.RenderPipeline { return p.stripe }

// Unlit returns the unlit blend material pipeline.
func (p *MaterialPipelines) Unlit() hal.RenderPipeline { return p.unlit }

// UnlitPrepass returns the depth-prepass variant of the unlit pipeline.
func (p *MaterialPipelines) UnlitPrepass() hal.RenderPipeline { return p.unlitPrepass }

// Blend returns the lit blend material pipeline.
func (p *MaterialPipelines) Blend() hal.RenderPipeline { return p.blend }

// Passthrough returns the texture passthrough material pipeline.
func (p *MaterialPipelines) Passthrough() hal.RenderPipeline { return p.passthrough }

// Format returns the color target format the pipelines render into.
func (p *MaterialPipelines) Format() gputypes.TextureFormat { return p.format }

// Destroy releases the pipelines and their layouts. Safe to call multiple
// times. The shader set is not destroyed; it belongs to the caller.
func (p *MaterialPipelines) Destroy() {
	if p.device == nil {
		return
	}

	if p.passthrough != nil {
		p.device.DestroyRenderPipeline(p.passthrough)
		p.passthrough = nil
	}
	if p.blend != nil {
		p.device.DestroyRenderPipeline(p.blend)
		p.blend = nil
	}
	if p.unlitPrepass != nil {
		p.device.DestroyRenderPipeline(p.unlitPrepass)
		p.unlitPrepass = nil
	}
	if p.unlit != nil {
		p.device.DestroyRenderPipeline(p.unlit)
		p.unlit = nil
	}
	if p.stripe != nil {
		p.device.DestroyRenderPipeline(p.stripe)
		p.stripe = nil
	}
	if p.passthroughPipeLayout != nil {
		p.device.DestroyPipelineLayout(p.passthroughPipeLayout)
		p.passthroughPipeLayout = nil
	}
	if p.paramsPipeLayout != nil {
		p.device.DestroyPipelineLayout(p.paramsPipeLayout)
		p.paramsPipeLayout = nil
	}
}
