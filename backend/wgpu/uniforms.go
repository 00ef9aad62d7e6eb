package wgpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/toon"
)

// GPUGlobals is the per-frame uniform block.
// Must match Globals in stripe.wgsl.
type GPUGlobals struct {
	Time float32
	Pad0 float32
	Pad1 float32
	Pad2 float32
}

// GPUGlobalsSize is the byte size of [GPUGlobals] on the GPU.
const GPUGlobalsSize = 16

// GPUStripeParams is the striped-mask material uniform block.
// Must match StripeParams in stripe.wgsl.
type GPUStripeParams struct {
	StripeColor [4]float32 // offset 0
	Frequency   float32    // offset 16
	Angle       float32    // offset 20
	Thickness   float32    // offset 24
	ScrollSpeed float32    // offset 28
}

// GPUStripeParamsSize is the byte size of [GPUStripeParams] on the GPU.
const GPUStripeParamsSize = 32

// NewGPUStripeParams converts material parameters to their GPU layout.
func NewGPUStripeParams(p toon.StripeParams) GPUStripeParams {
	return GPUStripeParams{
		StripeColor: [4]float32{p.Color.R, p.Color.G, p.Color.B, p.Color.A},
		Frequency:   p.Frequency,
		Angle:       p.Angle,
		Thickness:   p.Thickness,
		ScrollSpeed: p.ScrollSpeed,
	}
}

// Bytes encodes the struct in the std140-compatible layout the shader reads.
func (p GPUStripeParams) Bytes() []byte {
	buf := make([]byte, GPUStripeParamsSize)
	putF32(buf, 0, p.StripeColor[0])
	putF32(buf, 4, p.StripeColor[1])
	putF32(buf, 8, p.StripeColor[2])
	putF32(buf, 12, p.StripeColor[3])
	putF32(buf, 16, p.Frequency)
	putF32(buf, 20, p.Angle)
	putF32(buf, 24, p.Thickness)
	putF32(buf, 28, p.ScrollSpeed)
	return buf
}

// GPUUnlitParams is the unlit blend material uniform block.
// Must match UnlitParams in unlit.wgsl. The vec4 member forces 16-byte
// alignment, hence the explicit padding around it.
type GPUUnlitParams struct {
	Intensity     float32    // offset 0
	Alpha         float32    // offset 4
	Pad0          float32    // offset 8
	Pad1          float32    // offset 12
	BlendColor    [4]float32 // offset 16
	BlendFactor   float32    // offset 32
	GreyThreshold float32    // offset 36
	Pad2          float32    // offset 40
	Pad3          float32    // offset 44
}

// GPUUnlitParamsSize is the byte size of [GPUUnlitParams] on the GPU.
const GPUUnlitParamsSize = 48

// NewGPUUnlitParams converts material parameters to their GPU layout.
func NewGPUUnlitParams(p toon.UnlitParams) GPUUnlitParams {
	return GPUUnlitParams{
		Intensity:     p.Intensity,
		Alpha:         p.Alpha,
		BlendColor:    [4]float32{p.BlendColor.R, p.BlendColor.G, p.BlendColor.B, p.BlendColor.A},
		BlendFactor:   p.BlendFactor,
		GreyThreshold: p.GreyThreshold,
	}
}

// Bytes encodes the struct in the std140-compatible layout the shader reads.
func (p GPUUnlitParams) Bytes() []byte {
	buf := make([]byte, GPUUnlitParamsSize)
	putF32(buf, 0, p.Intensity)
	putF32(buf, 4, p.Alpha)
	putF32(buf, 16, p.BlendColor[0])
	putF32(buf, 20, p.BlendColor[1])
	putF32(buf, 24, p.BlendColor[2])
	putF32(buf, 28, p.BlendColor[3])
	putF32(buf, 32, p.BlendFactor)
	putF32(buf, 36, p.GreyThreshold)
	return buf
}

// GPUBlendParams is the lit blend material uniform block.
// Must match BlendParams in blend.wgsl.
type GPUBlendParams struct {
	Intensity   float32    // offset 0
	Alpha       float32    // offset 4
	Pad0        float32    // offset 8
	Pad1        float32    // offset 12
	BlendColor  [4]float32 // offset 16
	BlendFactor float32    // offset 32
	Pad2        float32    // offset 36
	Pad3        float32    // offset 40
	Pad4        float32    // offset 44
}

// GPUBlendParamsSize is the byte size of [GPUBlendParams] on the GPU.
const GPUBlendParamsSize = 48

// NewGPUBlendParams converts material parameters to their GPU layout.
func NewGPUBlendParams(p toon.BlendParams) GPUBlendParams {
	return GPUBlendParams{
		Intensity:   p.Intensity,
		Alpha:       p.Alpha,
		BlendColor:  [4]float32{p.BlendColor.R, p.BlendColor.G, p.BlendColor.B, p.BlendColor.A},
		BlendFactor: p.BlendFactor,
	}
}

// Bytes encodes the struct in the std140-compatible layout the shader reads.
func (p GPUBlendParams) Bytes() []byte {
	buf := make([]byte, GPUBlendParamsSize)
	putF32(buf, 0, p.Intensity)
	putF32(buf, 4, p.Alpha)
	putF32(buf, 16, p.BlendColor[0])
	putF32(buf, 20, p.BlendColor[1])
	putF32(buf, 24, p.BlendColor[2])
	putF32(buf, 28, p.BlendColor[3])
	putF32(buf, 32, p.BlendFactor)
	return buf
}

// GPUOutlineConfig is the outline post-process uniform block.
// Must match OutlineConfig in outline.wgsl.
type GPUOutlineConfig struct {
	StrokeColor    [4]float32 // offset 0
	Width          int32      // offset 16
	ViewportWidth  uint32     // offset 20
	ViewportHeight uint32     // offset 24
	DetectBorder   uint32     // offset 28
}

// GPUOutlineConfigSize is the byte size of [GPUOutlineConfig] on the GPU.
const GPUOutlineConfigSize = 32

// NewGPUOutlineConfig converts outline settings and viewport dimensions to
// their GPU layout.
func NewGPUOutlineConfig(s toon.OutlineSettings, width, height uint32) GPUOutlineConfig {
	var border uint32
	if s.DetectScreenBorder {
		border = 1
	}
	return GPUOutlineConfig{
		StrokeColor:    [4]float32{s.Color.R, s.Color.G, s.Color.B, s.Color.A},
		Width:          s.Width,
		ViewportWidth:  width,
		ViewportHeight: height,
		DetectBorder:   border,
	}
}

// Bytes encodes the struct in the std140-compatible layout the shader reads.
func (c GPUOutlineConfig) Bytes() []byte {
	buf := make([]byte, GPUOutlineConfigSize)
	putF32(buf, 0, c.StrokeColor[0])
	putF32(buf, 4, c.StrokeColor[1])
	putF32(buf, 8, c.StrokeColor[2])
	putF32(buf, 12, c.StrokeColor[3])
	binary.LittleEndian.PutUint32(buf[16:], uint32(c.Width))
	binary.LittleEndian.PutUint32(buf[20:], c.ViewportWidth)
	binary.LittleEndian.PutUint32(buf[24:], c.ViewportHeight)
	binary.LittleEndian.PutUint32(buf[28:], c.DetectBorder)
	return buf
}

// Bytes encodes the struct in the std140-compatible layout the shader reads.
func (g GPUGlobals) Bytes() []byte {
	buf := make([]byte, GPUGlobalsSize)
	putF32(buf, 0, g.Time)
	return buf
}

func putF32(buf []byte, offset int, v float32) {
	binary.LittleEndian.PutUint32(buf[offset:], math.Float32bits(v))
}
