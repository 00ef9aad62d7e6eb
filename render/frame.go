package render

import "github.com/gogpu/toon"

// PlacedFragment binds a surface record to the output pixel it was
// rasterized into. The host's rasterizer produces these; the material
// stage only consumes them.
type PlacedFragment struct {
	X, Y int
	Frag toon.Fragment
}

// Draw is one draw call: a material, the fragments the rasterizer produced
// for it, and the section identifier written for every shaded pixel.
type Draw struct {
	// Material shades every fragment of this draw.
	Material toon.Material

	// Fragments are the rasterized surface records, already lit upstream.
	Fragments []PlacedFragment

	// SectionID is the stable per-draw identifier stored into the target's
	// section buffer. Draws that should share an outline silhouette share
	// an ID; distinct IDs produce a stroke at their boundary.
	SectionID float32

	// AlphaCutoff drops fragments whose base color alpha is below the
	// threshold before shading, mirroring the host material's alpha-test
	// mode. Zero keeps every fragment.
	AlphaCutoff float32
}

// Frame is one complete frame submission: the per-frame globals, the
// ordered draw list, and the outline post-process settings. Draws execute
// in submission order; later draws overwrite earlier ones per pixel.
type Frame struct {
	// Time is the monotonic elapsed time in seconds, supplied by the host
	// once per frame.
	Time float32

	// Draws is the ordered material-stage work.
	Draws []Draw

	// Outline configures the post-process stage. Nil skips the stage and
	// presents the shaded color buffer as-is.
	Outline *toon.OutlineSettings
}
