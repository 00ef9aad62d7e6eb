package toon

import (
	"image/color"

	"github.com/chewxy/math32"
)

// RGBA represents a linear color with red, green, blue, and alpha components.
// Each component is nominally in the range [0, 1]. Shading arithmetic does
// not clamp intermediate values; clamping happens only on conversion to
// 8-bit formats.
//
// Components are float32 to match GPU shader precision exactly: the CPU
// reference path and the WGSL shaders must agree bit-for-bit on the same
// inputs.
type RGBA struct {
	R, G, B, A float32
}

// Common colors.
var (
	Transparent = RGBA{0, 0, 0, 0}
	Black       = RGBA{0, 0, 0, 1}
	White       = RGBA{1, 1, 1, 1}
	Red         = RGBA{1, 0, 0, 1}
	Green       = RGBA{0, 1, 0, 1}
	Blue        = RGBA{0, 0, 1, 1}
)

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// RGBA returns the color as alpha-premultiplied 16-bit channels,
// implementing the color.Color interface.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	a = uint32(clamp01(c.A) * 65535)
	r = uint32(clamp01(c.R) * clamp01(c.A) * 65535)
	g = uint32(clamp01(c.G) * clamp01(c.A) * 65535)
	b = uint32(clamp01(c.B) * clamp01(c.A) * 65535)
	return
}

// NRGBA converts the color to 8-bit non-premultiplied form.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Transparent
	}
	// Un-premultiply so that RGBA components stay independent of alpha.
	return RGBA{
		R: float32(r) / float32(a),
		G: float32(g) / float32(a),
		B: float32(b) / float32(a),
		A: float32(a) / 65535,
	}
}

// Mix linearly interpolates between a and b component-wise.
// t=0 returns a, t=1 returns b. Out-of-range t extrapolates; this matches
// the WGSL mix() builtin, which does not clamp the factor.
func Mix(a, b RGBA, t float32) RGBA {
	return RGBA{
		R: mix(a.R, b.R, t),
		G: mix(a.G, b.G, t),
		B: mix(a.B, b.B, t),
		A: mix(a.A, b.A, t),
	}
}

// Scale multiplies the RGB components by s, leaving alpha unchanged.
func (c RGBA) Scale(s float32) RGBA {
	return RGBA{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A}
}

// WithAlpha returns the color with its alpha replaced by a.
func (c RGBA) WithAlpha(a float32) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// Chroma returns the spread between the largest and smallest RGB component.
// A value of 0 means the color is pure grey; small values mean near-grey.
// The result is independent of channel order.
func (c RGBA) Chroma() float32 {
	maxC := math32.Max(c.R, math32.Max(c.G, c.B))
	minC := math32.Min(c.R, math32.Min(c.G, c.B))
	return maxC - minC
}

// mix is the WGSL mix() builtin: linear interpolation without clamping.
func mix(a, b, t float32) float32 {
	return a + (b-a)*t
}

// step is the WGSL step() builtin: 1 when x >= edge, else 0.
func step(edge, x float32) float32 {
	if x >= edge {
		return 1
	}
	return 0
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
