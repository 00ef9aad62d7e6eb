package toon

// UnlitParams is the parameter bundle for [UnlitMaterial]. Field order is
// part of the binding contract; the GPU mirror layout lives in backend/wgpu.
type UnlitParams struct {
	// Intensity scales the blended RGB, unless the greyness test suppresses it.
	Intensity float32

	// Alpha scales the base color's alpha channel.
	Alpha float32

	// BlendColor is the color the base color is blended toward.
	BlendColor RGBA

	// BlendFactor is the blend amount, nominally in [0, 1]. Out-of-range
	// factors extrapolate rather than clamp.
	BlendFactor float32

	// GreyThreshold is the chroma below which a blended color counts as
	// grey. Grey results keep intensity 1 instead of Intensity.
	GreyThreshold float32
}

// UnlitMaterial blends the base material color toward a configured color
// and scales the result by an intensity, except for near-grey results:
// intensity is suppressed for near-neutral colors so that grey surfaces
// never bloom or darken with the configured intensity. That suppression is
// a deliberate stylistic choice of the pipeline, not an oversight.
type UnlitMaterial struct {
	Params UnlitParams

	// DepthPrepass short-circuits shading to the plain base color.
	// Depth-only passes must not depend on parameters that could introduce
	// non-deterministic derivatives.
	DepthPrepass bool
}

// Shade implements [Material].
func (m *UnlitMaterial) Shade(frag Fragment, _ FrameInfo) RGBA {
	if m.DepthPrepass {
		return frag.BaseColor
	}

	p := m.Params
	blended := Mix(frag.BaseColor, p.BlendColor, p.BlendFactor)

	intensity := p.Intensity
	if blended.Chroma() <= p.GreyThreshold {
		intensity = 1
	}

	return RGBA{
		R: blended.R * intensity,
		G: blended.G * intensity,
		B: blended.B * intensity,
		A: frag.BaseColor.A * p.Alpha,
	}
}

// BlendParams is the parameter bundle for [BlendMaterial].
type BlendParams struct {
	// Intensity scales the blended RGB unconditionally.
	Intensity float32

	// Alpha scales the base color's alpha channel.
	Alpha float32

	// BlendColor is the color the base color is blended toward.
	BlendColor RGBA

	// BlendFactor is the blend amount, nominally in [0, 1].
	BlendFactor float32
}

// BlendMaterial is the lit variant of [UnlitMaterial]: the same blend and
// intensity scaling without the greyness suppression. Intensity always
// applies.
type BlendMaterial struct {
	Params BlendParams
}

// Shade implements [Material].
func (m *BlendMaterial) Shade(frag Fragment, _ FrameInfo) RGBA {
	p := m.Params
	blended := Mix(frag.BaseColor, p.BlendColor, p.BlendFactor)

	return RGBA{
		R: blended.R * p.Intensity,
		G: blended.G * p.Intensity,
		B: blended.B * p.Intensity,
		A: frag.BaseColor.A * p.Alpha,
	}
}
