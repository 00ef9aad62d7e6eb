package toon

import "testing"

func TestUnlitMaterial_BlendFactorLaw(t *testing.T) {
	base := RGBA{0.8, 0.2, 0.4, 1}
	blend := RGBA{0.1, 0.9, 0.6, 1}

	tests := []struct {
		name   string
		factor float32
		want   RGBA
	}{
		{"factor 0 keeps base", 0, base},
		{"factor 1 takes blend color", 1, blend},
		{"factor 0.5 is midpoint", 0.5, RGBA{0.45, 0.55, 0.5, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &UnlitMaterial{Params: UnlitParams{
				Intensity:   1,
				Alpha:       1,
				BlendColor:  blend,
				BlendFactor: tt.factor,
			}}

			got := m.Shade(Fragment{BaseColor: base}, FrameInfo{})
			if !near(got.R, tt.want.R, 1e-6) || !near(got.G, tt.want.G, 1e-6) || !near(got.B, tt.want.B, 1e-6) {
				t.Errorf("Shade() = %+v, want rgb of %+v", got, tt.want)
			}
		})
	}
}

func TestUnlitMaterial_GreySuppressesIntensity(t *testing.T) {
	m := &UnlitMaterial{Params: UnlitParams{
		Intensity:     3,
		Alpha:         1,
		GreyThreshold: 0.1,
	}}

	// Pure grey: intensity forced to 1.
	grey := m.Shade(Fragment{BaseColor: RGBA{0.5, 0.5, 0.5, 1}}, FrameInfo{})
	if !near(grey.R, 0.5, 1e-6) {
		t.Errorf("grey pixel should keep its value, got %+v", grey)
	}

	// Saturated color: intensity applies.
	loud := m.Shade(Fragment{BaseColor: RGBA{0.5, 0.1, 0.1, 1}}, FrameInfo{})
	if !near(loud.R, 1.5, 1e-6) {
		t.Errorf("saturated pixel should be scaled by intensity, got %+v", loud)
	}
}

func TestUnlitMaterial_GreyTestOnBlendedColor(t *testing.T) {
	// A saturated base blended fully into a grey target must count as
	// grey: the test runs on the blended color.
	m := &UnlitMaterial{Params: UnlitParams{
		Intensity:     2,
		Alpha:         1,
		BlendColor:    RGBA{0.4, 0.4, 0.4, 1},
		BlendFactor:   1,
		GreyThreshold: 0.05,
	}}

	got := m.Shade(Fragment{BaseColor: RGBA{1, 0, 0, 1}}, FrameInfo{})
	if !near(got.R, 0.4, 1e-6) || !near(got.G, 0.4, 1e-6) {
		t.Errorf("fully blended grey should not be intensified, got %+v", got)
	}
}

func TestUnlitMaterial_AlphaIsBaseTimesParam(t *testing.T) {
	m := &UnlitMaterial{Params: UnlitParams{Intensity: 1, Alpha: 0.5}}
	got := m.Shade(Fragment{BaseColor: RGBA{1, 0, 0, 0.8}}, FrameInfo{})
	if !near(got.A, 0.4, 1e-6) {
		t.Errorf("alpha = %v, want 0.4", got.A)
	}
}

func TestUnlitMaterial_DepthPrepassShortCircuits(t *testing.T) {
	m := &UnlitMaterial{
		Params: UnlitParams{
			Intensity:   5,
			Alpha:       0,
			BlendColor:  Red,
			BlendFactor: 1,
		},
		DepthPrepass: true,
	}

	base := RGBA{0.3, 0.6, 0.9, 0.7}
	got := m.Shade(Fragment{BaseColor: base}, FrameInfo{})
	if got != base {
		t.Errorf("depth prepass must return base color unchanged, got %+v", got)
	}
}

func TestBlendMaterial_NoGreySuppression(t *testing.T) {
	m := &BlendMaterial{Params: BlendParams{
		Intensity: 2,
		Alpha:     1,
	}}

	// Grey input, yet intensity still applies: the lit variant has no
	// greyness test.
	got := m.Shade(Fragment{BaseColor: RGBA{0.3, 0.3, 0.3, 1}}, FrameInfo{})
	if !near(got.R, 0.6, 1e-6) {
		t.Errorf("lit variant must always apply intensity, got %+v", got)
	}
}

func TestBlendMaterial_BlendFactorLaw(t *testing.T) {
	base := RGBA{0.2, 0.4, 0.6, 1}
	blend := RGBA{1, 0, 0.5, 1}

	m := &BlendMaterial{Params: BlendParams{Intensity: 1, Alpha: 1, BlendColor: blend}}

	m.Params.BlendFactor = 0
	if got := m.Shade(Fragment{BaseColor: base}, FrameInfo{}); !colorNear(got.WithAlpha(1), base, 1e-6) {
		t.Errorf("factor 0: got %+v, want %+v", got, base)
	}

	m.Params.BlendFactor = 1
	got := m.Shade(Fragment{BaseColor: base}, FrameInfo{})
	if !near(got.R, blend.R, 1e-6) || !near(got.G, blend.G, 1e-6) || !near(got.B, blend.B, 1e-6) {
		t.Errorf("factor 1: got %+v, want rgb of %+v", got, blend)
	}
}
