package toon

import "github.com/chewxy/math32"

// AddressMode controls how texture coordinates outside [0, 1] are mapped
// back into the texture domain, mirroring the WebGPU sampler address modes.
type AddressMode uint8

const (
	// AddressClampToEdge clamps coordinates to the edge texel.
	AddressClampToEdge AddressMode = iota

	// AddressRepeat wraps coordinates, tiling the texture.
	AddressRepeat

	// AddressMirrorRepeat wraps coordinates, mirroring every other tile.
	AddressMirrorRepeat
)

// FilterMode controls how a sample is reconstructed from texels.
type FilterMode uint8

const (
	// FilterNearest picks the nearest texel.
	FilterNearest FilterMode = iota

	// FilterLinear blends the four nearest texels bilinearly.
	FilterLinear
)

// Sampler describes how a [ColorBuffer] is sampled at normalized UV
// coordinates. The zero value is a nearest, clamp-to-edge sampler.
type Sampler struct {
	Address AddressMode
	Filter  FilterMode
}

// Sample reads tex at the normalized coordinate uv.
func (s Sampler) Sample(tex *ColorBuffer, uv Vec2) RGBA {
	w, h := tex.Width(), tex.Height()
	if w == 0 || h == 0 {
		return Transparent
	}

	// Texel-center convention: uv (0.5/w, 0.5/h) is the center of texel (0,0).
	fx := uv.X*float32(w) - 0.5
	fy := uv.Y*float32(h) - 0.5

	if s.Filter == FilterNearest {
		x := s.wrap(int(math32.Floor(fx+0.5)), w)
		y := s.wrap(int(math32.Floor(fy+0.5)), h)
		return tex.Load(x, y)
	}

	x0 := int(math32.Floor(fx))
	y0 := int(math32.Floor(fy))
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	c00 := tex.Load(s.wrap(x0, w), s.wrap(y0, h))
	c10 := tex.Load(s.wrap(x0+1, w), s.wrap(y0, h))
	c01 := tex.Load(s.wrap(x0, w), s.wrap(y0+1, h))
	c11 := tex.Load(s.wrap(x0+1, w), s.wrap(y0+1, h))

	top := Mix(c00, c10, tx)
	bottom := Mix(c01, c11, tx)
	return Mix(top, bottom, ty)
}

// wrap maps a texel coordinate into [0, n) according to the address mode.
func (s Sampler) wrap(i, n int) int {
	switch s.Address {
	case AddressRepeat:
		i %= n
		if i < 0 {
			i += n
		}
		return i
	case AddressMirrorRepeat:
		period := 2 * n
		i %= period
		if i < 0 {
			i += period
		}
		if i >= n {
			i = period - 1 - i
		}
		return i
	default: // AddressClampToEdge
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	}
}
