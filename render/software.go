package render

import (
	"github.com/gogpu/toon"
	"github.com/gogpu/toon/internal/parallel"
)

// SoftwareRenderer executes frames on the CPU. It is the reference
// implementation of the pipeline: the material stage shades each draw's
// fragments into the target, then the outline stage filters the full
// frame into the destination buffer.
//
// Each invocation of a material or of the outline kernel is a pure
// function of immutable per-frame inputs writing exactly one pixel, so the
// outline pass runs row-parallel without locks.
type SoftwareRenderer struct {
	pool *parallel.WorkerPool
}

// Option configures a SoftwareRenderer.
type Option func(*config)

type config struct {
	workers int
}

// WithWorkers sets the number of goroutines used for the outline pass.
// Values <= 0 use GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// NewSoftwareRenderer creates a CPU renderer. Call [SoftwareRenderer.Close]
// when done to release its workers.
func NewSoftwareRenderer(opts ...Option) *SoftwareRenderer {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return &SoftwareRenderer{
		pool: parallel.NewWorkerPool(c.workers),
	}
}

// Close shuts down the renderer's worker pool. Render calls after Close
// fall back to serial execution.
func (r *SoftwareRenderer) Close() {
	r.pool.Close()
}

// Render executes one frame: every draw's material pass into target, then
// the outline post-process into dst. The stages run strictly in order;
// the outline stage never samples the target until the material stage has
// fully completed, which is the only inter-stage guarantee the pipeline
// needs.
//
// dst must not alias target.Color. If frame.Outline is nil the shaded
// color buffer is copied to dst unchanged.
func (r *SoftwareRenderer) Render(dst *toon.ColorBuffer, target *Target, frame *Frame) error {
	if target == nil || target.Color == nil || target.Sections == nil {
		return ErrNilTarget
	}
	if dst == nil {
		return ErrNilDestination
	}
	if dst == target.Color {
		return ErrAliasedDestination
	}

	r.shade(target, frame)

	if frame.Outline == nil {
		dst.CopyFrom(target.Color)
		return nil
	}

	filter := &toon.OutlineFilter{Settings: *frame.Outline}
	width := target.Width()
	bandRows(r.pool, target.Height(), func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			filter.ApplyRow(dst, target.Color, target.Sections, y, 0, width)
		}
	})

	toon.Logger().Debug("frame rendered",
		"draws", len(frame.Draws),
		"width", width,
		"height", target.Height())
	return nil
}

// shade runs the material stage: draws in submission order, later draws
// overwriting earlier ones per pixel. Discarded fragments leave both the
// color and section buffers untouched.
func (r *SoftwareRenderer) shade(target *Target, frame *Frame) {
	info := toon.FrameInfo{Time: frame.Time}

	for i := range frame.Draws {
		draw := &frame.Draws[i]
		if draw.Material == nil {
			continue
		}
		for _, pf := range draw.Fragments {
			if draw.AlphaCutoff > 0 && pf.Frag.BaseColor.A < draw.AlphaCutoff {
				continue
			}
			target.Color.Store(pf.X, pf.Y, draw.Material.Shade(pf.Frag, info))
			target.Sections.Store(pf.X, pf.Y, draw.SectionID)
		}
	}
}
