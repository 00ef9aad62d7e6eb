package toon

// Interpolators mutate material parameter bundles from a host-driven
// animation progress value. They are the hooks gameplay effects tween
// through (signal pulses, dissolve fades); the host owns the timeline,
// the interpolator only maps progress to parameter values.

// IntensityLerp animates [UnlitParams.Intensity] linearly between Start
// and End as progress goes 0 to 1.
type IntensityLerp struct {
	Start float32
	End   float32
}

// Apply sets the intensity for the given progress.
func (l IntensityLerp) Apply(p *UnlitParams, progress float32) {
	p.Intensity = mix(l.Start, l.End, progress)
}

// ColorOverride fades a material toward a target color. At progress 0 the
// override is fully applied (blend factor 1) and fades out as progress
// reaches 1. The grey threshold is forced to zero while overriding so the
// configured intensity applies to the override color even when it is
// neutral.
type ColorOverride struct {
	Target RGBA
}

// Apply sets the override for the given progress.
func (o ColorOverride) Apply(p *UnlitParams, progress float32) {
	p.BlendColor = o.Target
	p.GreyThreshold = 0
	p.BlendFactor = 1 - progress
}
