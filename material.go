package toon

// Material computes a final fragment color from a surface record and the
// per-frame globals. Implementations are pure functions of their inputs
// and their parameter bundle; they hold no mutable state and are safe to
// call concurrently from any number of goroutines.
//
// Dispatch is static: the host selects one variant per draw at draw-call
// setup, so an interface with one concrete type per material kind mirrors
// the shader-class structure without dynamic cost in the hot path.
type Material interface {
	// Shade evaluates the material for one fragment.
	Shade(frag Fragment, frame FrameInfo) RGBA
}

// Compile-time checks that every variant satisfies Material.
var (
	_ Material = (*StripeMaterial)(nil)
	_ Material = (*UnlitMaterial)(nil)
	_ Material = (*BlendMaterial)(nil)
	_ Material = (*TextureMaterial)(nil)
)
