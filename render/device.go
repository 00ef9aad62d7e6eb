package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// This interface is the primary integration point between toon and GPU
// frameworks. The host application implements DeviceHandle and passes it
// to the GPU backend, allowing toon to use the shared GPU device.
//
// Key principle: toon RECEIVES the device from the host, it does NOT
// create one. The host also owns the swapchain, the depth prepass, and
// the upload of the parameter bundles whose layouts backend/wgpu defines.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing a
// toon-specific name for the interface while maintaining full
// compatibility with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// TextureDescriptor describes parameters for creating a frame texture.
// This mirrors the WebGPU GPUTextureDescriptor specification.
type TextureDescriptor struct {
	// Label is an optional debug label for the texture.
	Label string

	// Width is the texture width in pixels.
	Width uint32

	// Height is the texture height in pixels.
	Height uint32

	// Format is the texture pixel format.
	Format gputypes.TextureFormat

	// Usage specifies how the texture will be used.
	Usage TextureUsage
}

// TextureUsage specifies how a texture can be used.
// These flags can be combined with bitwise OR.
type TextureUsage uint32

const (
	// TextureUsageCopySrc allows the texture to be used as a copy source.
	TextureUsageCopySrc TextureUsage = 1 << iota

	// TextureUsageCopyDst allows the texture to be used as a copy destination.
	TextureUsageCopyDst

	// TextureUsageTextureBinding allows sampling the texture in a shader.
	TextureUsageTextureBinding

	// TextureUsageRenderAttachment allows rendering into the texture.
	TextureUsageRenderAttachment
)

// ColorTargetDescriptor returns the descriptor for the shaded color buffer
// of a frame, in the host surface's format.
func ColorTargetDescriptor(provider DeviceHandle, width, height uint32) TextureDescriptor {
	return TextureDescriptor{
		Label:  "toon_color",
		Width:  width,
		Height: height,
		Format: provider.SurfaceFormat(),
		Usage:  TextureUsageTextureBinding | TextureUsageRenderAttachment,
	}
}

// SectionTargetDescriptor returns the descriptor for the single-channel
// section identifier buffer of a frame. The format is host-chosen; any
// format whose per-pixel value is stable within a draw works, since the
// outline stage only consumes differences between neighbors.
func SectionTargetDescriptor(format gputypes.TextureFormat, width, height uint32) TextureDescriptor {
	return TextureDescriptor{
		Label:  "toon_sections",
		Width:  width,
		Height: height,
		Format: format,
		Usage:  TextureUsageTextureBinding | TextureUsageRenderAttachment,
	}
}
