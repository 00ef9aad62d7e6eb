package toon

import "github.com/chewxy/math32"

// StripeParams is the parameter bundle for [StripeMaterial]. It is
// uploaded once per draw and read-only during shading. Field order is part
// of the binding contract; the GPU mirror layout lives in backend/wgpu.
type StripeParams struct {
	// Color is the stripe color. Its RGB channels become the output color;
	// its alpha is ignored in favor of the computed mask.
	Color RGBA

	// Frequency is the stripe frequency in cycles per UV unit.
	Frequency float32

	// Angle is the stripe rotation in radians.
	Angle float32

	// Thickness is the mask threshold in [0, 1]. Values outside [-1, 1]
	// produce a constant mask.
	Thickness float32

	// ScrollSpeed is the scroll animation speed in UV units per second.
	ScrollSpeed float32
}

// StripeMaterial renders an animated striped alpha mask. The rotated,
// scroll-animated UV coordinate drives a sine wave that is binarized
// against the thickness threshold; the resulting mask becomes the output
// alpha, not a color multiplier. The underlying lit color is discarded
// here; it only participates in the host material's alpha-discard test,
// which runs before this stage.
type StripeMaterial struct {
	Params StripeParams
}

// Shade implements [Material].
func (m *StripeMaterial) Shade(frag Fragment, frame FrameInfo) RGBA {
	p := m.Params

	rotated := frag.UV.Rotate(p.Angle)
	pos := rotated.Y + frame.Time*p.ScrollSpeed
	wave := math32.Sin(pos * p.Frequency * 2 * math32.Pi)
	mask := step(p.Thickness, wave)

	return RGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: mask}
}
