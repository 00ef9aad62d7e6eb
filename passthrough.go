package toon

// TextureMaterial outputs the unmodified sample of a bound texture at the
// fragment's UV, ignoring lighting entirely. It carries no parameter
// bundle; its only external requirement is that the texture and sampler
// bindings are present, which the host guarantees before shading.
type TextureMaterial struct {
	Texture *ColorBuffer
	Sampler Sampler
}

// Shade implements [Material].
func (m *TextureMaterial) Shade(frag Fragment, _ FrameInfo) RGBA {
	if m.Texture == nil {
		return Transparent
	}
	return m.Sampler.Sample(m.Texture, frag.UV)
}
