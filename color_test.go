package toon

import (
	"image/color"
	"testing"
)

// Verify at compile time that RGBA implements color.Color.
var _ color.Color = RGBA{}

func TestMix_InterpolationLaw(t *testing.T) {
	a := RGBA{0.8, 0.2, 0.4, 1}
	b := RGBA{0.1, 0.9, 0.6, 0.5}

	tests := []struct {
		name string
		t    float32
		want RGBA
	}{
		{"t=0 returns a", 0, a},
		{"t=1 returns b", 1, b},
		{"t=0.5 is midpoint", 0.5, RGBA{0.45, 0.55, 0.5, 0.75}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mix(a, b, tt.t)
			if !colorNear(got, tt.want, 1e-6) {
				t.Errorf("Mix(a, b, %v) = %+v, want %+v", tt.t, got, tt.want)
			}
		})
	}
}

func TestMix_Extrapolates(t *testing.T) {
	a := RGBA{0, 0, 0, 1}
	b := RGBA{1, 1, 1, 1}

	got := Mix(a, b, 2)
	if !colorNear(got, RGBA{2, 2, 2, 1}, 1e-6) {
		t.Errorf("Mix with t=2 should extrapolate, got %+v", got)
	}
}

func TestChroma_PermutationSymmetric(t *testing.T) {
	// The greyness spread depends only on max-min, so any permutation of
	// the channel values must give the same result.
	perms := []RGBA{
		{0.2, 0.5, 0.9, 1},
		{0.2, 0.9, 0.5, 1},
		{0.5, 0.2, 0.9, 1},
		{0.5, 0.9, 0.2, 1},
		{0.9, 0.2, 0.5, 1},
		{0.9, 0.5, 0.2, 1},
	}

	want := perms[0].Chroma()
	for _, c := range perms {
		if got := c.Chroma(); got != want {
			t.Errorf("Chroma(%+v) = %v, want %v", c, got, want)
		}
	}
}

func TestChroma_Grey(t *testing.T) {
	for _, v := range []float32{0, 0.25, 0.5, 1} {
		c := RGBA{v, v, v, 1}
		if got := c.Chroma(); got != 0 {
			t.Errorf("Chroma of grey %v = %v, want 0", v, got)
		}
	}
}

func TestStep(t *testing.T) {
	tests := []struct {
		edge, x, want float32
	}{
		{0.5, 0.4, 0},
		{0.5, 0.5, 1},
		{0.5, 0.6, 1},
		{-1, 0, 1},
		{2, 1, 0},
	}
	for _, tt := range tests {
		if got := step(tt.edge, tt.x); got != tt.want {
			t.Errorf("step(%v, %v) = %v, want %v", tt.edge, tt.x, got, tt.want)
		}
	}
}

func TestRGBA_NRGBARoundTrip(t *testing.T) {
	c := RGBA{0.8, 0.3, 0.5, 0.9}
	n := c.NRGBA()
	back := FromColor(n)

	if !colorNear(back, c, 1.0/255+1e-4) {
		t.Errorf("round trip = %+v, want near %+v", back, c)
	}
}

func TestFromColor_Transparent(t *testing.T) {
	got := FromColor(color.NRGBA{})
	if got != Transparent {
		t.Errorf("FromColor(transparent) = %+v, want %+v", got, Transparent)
	}
}

// colorNear reports whether two colors match within tol per channel.
func colorNear(a, b RGBA, tol float32) bool {
	return near(a.R, b.R, tol) && near(a.G, b.G, tol) &&
		near(a.B, b.B, tol) && near(a.A, b.A, tol)
}

func near(a, b, tol float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}
