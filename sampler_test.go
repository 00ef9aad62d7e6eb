package toon

import "testing"

func TestSampler_NearestAtTexelCenters(t *testing.T) {
	tex := NewColorBuffer(2, 2)
	tex.Store(0, 0, Red)
	tex.Store(1, 0, Green)
	tex.Store(0, 1, Blue)
	tex.Store(1, 1, White)

	s := Sampler{}

	tests := []struct {
		uv   Vec2
		want RGBA
	}{
		{V2(0.25, 0.25), Red},
		{V2(0.75, 0.25), Green},
		{V2(0.25, 0.75), Blue},
		{V2(0.75, 0.75), White},
	}

	for _, tt := range tests {
		if got := s.Sample(tex, tt.uv); got != tt.want {
			t.Errorf("Sample(%+v) = %+v, want %+v", tt.uv, got, tt.want)
		}
	}
}

func TestSampler_BilinearMidpoint(t *testing.T) {
	tex := NewColorBuffer(2, 1)
	tex.Store(0, 0, Black)
	tex.Store(1, 0, White)

	s := Sampler{Filter: FilterLinear}

	// Halfway between the two texel centers.
	got := s.Sample(tex, V2(0.5, 0.5))
	if !colorNear(got, RGBA{0.5, 0.5, 0.5, 1}, 1e-6) {
		t.Errorf("midpoint sample = %+v, want 0.5 grey", got)
	}
}

func TestSampler_AddressModes(t *testing.T) {
	tests := []struct {
		name string
		mode AddressMode
		i, n int
		want int
	}{
		{"clamp below", AddressClampToEdge, -3, 4, 0},
		{"clamp above", AddressClampToEdge, 9, 4, 3},
		{"clamp inside", AddressClampToEdge, 2, 4, 2},
		{"repeat below", AddressRepeat, -1, 4, 3},
		{"repeat above", AddressRepeat, 5, 4, 1},
		{"mirror first reflection", AddressMirrorRepeat, 4, 4, 3},
		{"mirror below", AddressMirrorRepeat, -1, 4, 0},
		{"mirror inside", AddressMirrorRepeat, 2, 4, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Sampler{Address: tt.mode}
			if got := s.wrap(tt.i, tt.n); got != tt.want {
				t.Errorf("wrap(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
			}
		})
	}
}

func TestSampler_EmptyTexture(t *testing.T) {
	s := Sampler{}
	if got := s.Sample(NewColorBuffer(0, 0), V2(0.5, 0.5)); got != Transparent {
		t.Errorf("empty texture sample = %+v, want transparent", got)
	}
}
