package toon

import "github.com/chewxy/math32"

// edgeEpsilon is the gradient magnitude above which a pixel counts as an
// edge. Section identifiers are stable per draw, so any genuine boundary
// produces a gradient far above this.
const edgeEpsilon = 0.001

// OutlineSettings configures the edge-outline post-process. The structure
// is uploaded once per post-process invocation; the GPU mirror layout
// lives in backend/wgpu.
type OutlineSettings struct {
	// Color is the stroke color composited over detected edges.
	Color RGBA

	// Width is the neighbor sampling offset in pixels, symmetric in X
	// and Y. Width 0 compares every pixel against itself and draws no
	// outline.
	Width int32

	// DetectScreenBorder additionally strokes pixels within Width texels
	// of the screen edge. Off by default.
	DetectScreenBorder bool
}

// OutlineFilter detects silhouette discontinuities in a section identifier
// buffer with a 3x3 Sobel kernel pair and composites a stroke color over
// the shaded frame. It holds no state beyond its settings and is safe for
// concurrent use.
type OutlineFilter struct {
	Settings OutlineSettings
}

// EdgeAt returns the Sobel gradient magnitude of the section buffer at
// pixel (x, y): the larger of the horizontal- and vertical-edge responses.
//
// Neighbor offsets are raw pixel arithmetic with no domain clamping;
// coordinates past the buffer edge rely on [ScalarBuffer.Load]'s
// clamp-to-edge addressing, the same way the GPU path relies on the host
// sampler's default address mode.
func (f *OutlineFilter) EdgeAt(sections *ScalarBuffer, x, y int) float32 {
	w := int(f.Settings.Width)

	lu := sections.Load(x-w, y-w)
	l := sections.Load(x-w, y)
	ld := sections.Load(x-w, y+w)
	ru := sections.Load(x+w, y-w)
	r := sections.Load(x+w, y)
	rd := sections.Load(x+w, y+w)
	u := sections.Load(x, y-w)
	d := sections.Load(x, y+w)

	horizontal := math32.Abs(ld + 2*l + lu - rd - 2*r - ru)
	vertical := math32.Abs(lu + 2*u + ru - ld - 2*d - rd)

	return math32.Max(horizontal, vertical)
}

// ShadePixel evaluates the post-process for one output pixel: the screen
// color where no edge is detected, the stroke color where one is. The
// stroke is all-or-nothing; there is no anti-aliased blending.
func (f *OutlineFilter) ShadePixel(screen *ColorBuffer, sections *ScalarBuffer, x, y int) RGBA {
	c := screen.Load(x, y)

	edge := f.EdgeAt(sections, x, y)
	if f.Settings.DetectScreenBorder && f.onBorder(sections, x, y) {
		edge = 1
	}

	return Mix(c, f.Settings.Color, step(edgeEpsilon, edge))
}

// Apply runs the filter over every pixel, reading screen and sections and
// writing the final frame into dst. dst may alias neither input; the
// material stage must have fully written both inputs before Apply begins.
func (f *OutlineFilter) Apply(dst, screen *ColorBuffer, sections *ScalarBuffer) {
	width, height := screen.Width(), screen.Height()
	for y := 0; y < height; y++ {
		f.ApplyRow(dst, screen, sections, y, 0, width)
	}
}

// ApplyRow evaluates the filter for pixels [x0, x1) of row y. Rows are
// independent, so callers may process them from multiple goroutines.
func (f *OutlineFilter) ApplyRow(dst, screen *ColorBuffer, sections *ScalarBuffer, y, x0, x1 int) {
	for x := x0; x < x1; x++ {
		dst.Store(x, y, f.ShadePixel(screen, sections, x, y))
	}
}

// onBorder reports whether (x, y) lies within Width texels of any screen
// edge.
func (f *OutlineFilter) onBorder(sections *ScalarBuffer, x, y int) bool {
	w := int(f.Settings.Width)
	return x < w || y < w || x >= sections.Width()-w || y >= sections.Height()-w
}
