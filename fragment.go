package toon

// Fragment is the surface record produced by rasterization and consumed by
// the material stage: one pixel-sized unit of interpolated surface data.
//
// BaseColor is the lit material color already resolved by the host's
// standard lighting (diffuse, specular, and ambient applied upstream).
// A Fragment is immutable; its lifetime is one shading invocation.
type Fragment struct {
	// Position is the interpolated clip-space position.
	Position Vec4

	// UV is the normalized 2D texture coordinate.
	UV Vec2

	// FrontFacing reports whether the fragment belongs to a front face.
	FrontFacing bool

	// BaseColor is the post-lighting base material color.
	BaseColor RGBA
}

// FrameInfo carries the per-frame globals supplied by the host once per
// frame. It is read-only for the duration of the frame; materials never
// keep internal state across frames.
type FrameInfo struct {
	// Time is the monotonic elapsed time in seconds. Only the scroll
	// animation of [StripeMaterial] consumes it.
	Time float32
}
