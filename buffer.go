package toon

import (
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// ColorBuffer is a rectangular RGBA pixel buffer with float32 channels
// (RGBA32Float layout). It backs the shaded frame the material stage
// produces and the outline stage reads.
type ColorBuffer struct {
	width  int
	height int
	data   []float32 // 4 floats per pixel
}

// NewColorBuffer creates a color buffer with the given dimensions,
// initialized to transparent black.
func NewColorBuffer(width, height int) *ColorBuffer {
	return &ColorBuffer{
		width:  width,
		height: height,
		data:   make([]float32, width*height*4),
	}
}

// Width returns the width of the buffer in pixels.
func (b *ColorBuffer) Width() int { return b.width }

// Height returns the height of the buffer in pixels.
func (b *ColorBuffer) Height() int { return b.height }

// Data returns the raw channel data (4 floats per pixel, row-major).
func (b *ColorBuffer) Data() []float32 { return b.data }

// Store sets the color of a single pixel. Out-of-bounds writes are ignored.
func (b *ColorBuffer) Store(x, y int, c RGBA) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := (y*b.width + x) * 4
	b.data[i+0] = c.R
	b.data[i+1] = c.G
	b.data[i+2] = c.B
	b.data[i+3] = c.A
}

// Load returns the color of a single pixel. Out-of-bounds coordinates are
// clamped to the nearest edge pixel, matching the clamp-to-edge addressing
// a GPU sampler applies by default.
func (b *ColorBuffer) Load(x, y int) RGBA {
	x, y = clampCoord(x, y, b.width, b.height)
	i := (y*b.width + x) * 4
	return RGBA{R: b.data[i+0], G: b.data[i+1], B: b.data[i+2], A: b.data[i+3]}
}

// Clear fills the entire buffer with a color.
func (b *ColorBuffer) Clear(c RGBA) {
	for i := 0; i < len(b.data); i += 4 {
		b.data[i+0] = c.R
		b.data[i+1] = c.G
		b.data[i+2] = c.B
		b.data[i+3] = c.A
	}
}

// CopyFrom copies the contents of src into b. Both buffers must have the
// same dimensions; mismatched sizes leave b unchanged.
func (b *ColorBuffer) CopyFrom(src *ColorBuffer) {
	if src == nil || src.width != b.width || src.height != b.height {
		return
	}
	copy(b.data, src.data)
}

// Image converts the buffer to an 8-bit NRGBA image.
func (b *ColorBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			img.SetNRGBA(x, y, b.Load(x, y).NRGBA())
		}
	}
	return img
}

// ScaledImage converts the buffer to an 8-bit image scaled to the given
// dimensions using Catmull-Rom resampling. Useful for golden-image tests
// and thumbnails of high-resolution frames.
func (b *ColorBuffer) ScaledImage(width, height int) *image.NRGBA {
	src := b.Image()
	if width == b.width && height == b.height {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// SavePNG writes the buffer to a PNG file.
func (b *ColorBuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, b.Image())
}

// ScalarBuffer is a rectangular single-channel float32 buffer (R32Float
// layout). The outline stage uses it as the section identifier buffer: the
// absolute magnitude of a value is irrelevant, only differences between
// neighboring pixels matter.
type ScalarBuffer struct {
	width  int
	height int
	data   []float32
}

// NewScalarBuffer creates a scalar buffer with the given dimensions,
// initialized to zero.
func NewScalarBuffer(width, height int) *ScalarBuffer {
	return &ScalarBuffer{
		width:  width,
		height: height,
		data:   make([]float32, width*height),
	}
}

// Width returns the width of the buffer in pixels.
func (b *ScalarBuffer) Width() int { return b.width }

// Height returns the height of the buffer in pixels.
func (b *ScalarBuffer) Height() int { return b.height }

// Data returns the raw channel data (1 float per pixel, row-major).
func (b *ScalarBuffer) Data() []float32 { return b.data }

// Store sets the value of a single pixel. Out-of-bounds writes are ignored.
func (b *ScalarBuffer) Store(x, y int, v float32) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.data[y*b.width+x] = v
}

// Load returns the value of a single pixel. Out-of-bounds coordinates are
// clamped to the nearest edge pixel. The outline kernel deliberately does
// no domain clamping on its neighbor offsets, so loads near the screen
// border land here with out-of-range coordinates; clamp-to-edge reproduces
// what the GPU's default sampler addressing does with them.
func (b *ScalarBuffer) Load(x, y int) float32 {
	x, y = clampCoord(x, y, b.width, b.height)
	return b.data[y*b.width+x]
}

// Fill sets every pixel to v.
func (b *ScalarBuffer) Fill(v float32) {
	for i := range b.data {
		b.data[i] = v
	}
}

func clampCoord(x, y, width, height int) (int, int) {
	if x < 0 {
		x = 0
	} else if x >= width {
		x = width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= height {
		y = height - 1
	}
	return x, y
}
