package render

import (
	"testing"

	"github.com/gogpu/toon"
)

// fullScreenDraw rasterizes every pixel of a w x h target with the given
// material and base color.
func fullScreenDraw(w, h int, mat toon.Material, base toon.RGBA, section float32) Draw {
	frags := make([]PlacedFragment, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			frags = append(frags, PlacedFragment{
				X: x, Y: y,
				Frag: toon.Fragment{
					UV:        toon.V2((float32(x)+0.5)/float32(w), (float32(y)+0.5)/float32(h)),
					BaseColor: base,
				},
			})
		}
	}
	return Draw{Material: mat, Fragments: frags, SectionID: section}
}

// flatMaterial shades every fragment to a fixed color.
type flatMaterial struct {
	color toon.RGBA
}

func (m *flatMaterial) Shade(toon.Fragment, toon.FrameInfo) toon.RGBA {
	return m.color
}

func TestSoftwareRenderer_MaterialThenOutline(t *testing.T) {
	const w, h = 12, 10

	target, err := NewTarget(w, h)
	if err != nil {
		t.Fatal(err)
	}

	// Left half is one draw, right half another; the outline must appear
	// exactly at their shared boundary.
	left := Draw{Material: &flatMaterial{color: toon.Green}, SectionID: 1}
	right := Draw{Material: &flatMaterial{color: toon.Blue}, SectionID: 2}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pf := PlacedFragment{X: x, Y: y, Frag: toon.Fragment{BaseColor: toon.White}}
			if x < w/2 {
				left.Fragments = append(left.Fragments, pf)
			} else {
				right.Fragments = append(right.Fragments, pf)
			}
		}
	}

	frame := &Frame{
		Draws:   []Draw{left, right},
		Outline: &toon.OutlineSettings{Color: toon.Black, Width: 1},
	}

	dst := toon.NewColorBuffer(w, h)
	r := NewSoftwareRenderer()
	defer r.Close()
	if err := r.Render(dst, target, frame); err != nil {
		t.Fatal(err)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			got := dst.Load(x, y)
			switch {
			case x == w/2-1 || x == w/2:
				if got != toon.Black {
					t.Errorf("boundary pixel (%d,%d) = %+v, want stroke", x, y, got)
				}
			case x < w/2:
				if got != toon.Green {
					t.Errorf("left pixel (%d,%d) = %+v, want green", x, y, got)
				}
			default:
				if got != toon.Blue {
					t.Errorf("right pixel (%d,%d) = %+v, want blue", x, y, got)
				}
			}
		}
	}
}

func TestSoftwareRenderer_DrawOrder(t *testing.T) {
	const w, h = 4, 4

	target, _ := NewTarget(w, h)
	frame := &Frame{Draws: []Draw{
		fullScreenDraw(w, h, &flatMaterial{color: toon.Red}, toon.White, 1),
		fullScreenDraw(w, h, &flatMaterial{color: toon.Blue}, toon.White, 2),
	}}

	dst := toon.NewColorBuffer(w, h)
	r := NewSoftwareRenderer()
	defer r.Close()
	if err := r.Render(dst, target, frame); err != nil {
		t.Fatal(err)
	}

	// The later draw wins every pixel, in color and section alike.
	if got := dst.Load(2, 2); got != toon.Blue {
		t.Errorf("pixel = %+v, want the later draw's color", got)
	}
	if got := target.Sections.Load(2, 2); got != 2 {
		t.Errorf("section = %v, want the later draw's ID", got)
	}
}

func TestSoftwareRenderer_AlphaCutoff(t *testing.T) {
	const w, h = 4, 1

	target, _ := NewTarget(w, h)
	target.Color.Clear(toon.White)

	draw := Draw{
		Material:    &flatMaterial{color: toon.Red},
		SectionID:   5,
		AlphaCutoff: 0.5,
		Fragments: []PlacedFragment{
			{X: 0, Y: 0, Frag: toon.Fragment{BaseColor: toon.RGBA{R: 1, G: 1, B: 1, A: 0.9}}},
			{X: 1, Y: 0, Frag: toon.Fragment{BaseColor: toon.RGBA{R: 1, G: 1, B: 1, A: 0.2}}},
		},
	}

	dst := toon.NewColorBuffer(w, h)
	r := NewSoftwareRenderer()
	defer r.Close()
	if err := r.Render(dst, target, &Frame{Draws: []Draw{draw}}); err != nil {
		t.Fatal(err)
	}

	if got := dst.Load(0, 0); got != toon.Red {
		t.Errorf("passing fragment = %+v, want shaded", got)
	}
	if got := dst.Load(1, 0); got != toon.White {
		t.Errorf("discarded fragment = %+v, want untouched background", got)
	}
	if got := target.Sections.Load(1, 0); got != 0 {
		t.Errorf("discarded fragment wrote section ID %v", got)
	}
}

func TestSoftwareRenderer_NilOutlineCopies(t *testing.T) {
	const w, h = 3, 3

	target, _ := NewTarget(w, h)
	frame := &Frame{Draws: []Draw{
		fullScreenDraw(w, h, &flatMaterial{color: toon.Green}, toon.White, 1),
	}}

	dst := toon.NewColorBuffer(w, h)
	r := NewSoftwareRenderer()
	defer r.Close()
	if err := r.Render(dst, target, frame); err != nil {
		t.Fatal(err)
	}
	if got := dst.Load(1, 1); got != toon.Green {
		t.Errorf("dst = %+v, want shaded color with no outline stage", got)
	}
}

func TestSoftwareRenderer_ParallelMatchesSerial(t *testing.T) {
	const w, h = 37, 29 // deliberately not multiples of the worker count

	buildFrame := func() (*Target, *Frame) {
		target, _ := NewTarget(w, h)
		mat := &toon.StripeMaterial{Params: toon.StripeParams{
			Color:       toon.RGBA{R: 0.9, G: 0.4, B: 0.1, A: 1},
			Frequency:   5,
			Thickness:   0.2,
			ScrollSpeed: 0.3,
		}}

		// A diagonal section split produces edges in both Sobel directions.
		upper := Draw{Material: mat, SectionID: 1}
		lower := Draw{Material: mat, SectionID: 2}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				pf := PlacedFragment{X: x, Y: y, Frag: toon.Fragment{
					UV:        toon.V2(float32(x)/w, float32(y)/h),
					BaseColor: toon.White,
				}}
				if x > y {
					upper.Fragments = append(upper.Fragments, pf)
				} else {
					lower.Fragments = append(lower.Fragments, pf)
				}
			}
		}

		frame := &Frame{
			Time:    1.5,
			Draws:   []Draw{upper, lower},
			Outline: &toon.OutlineSettings{Color: toon.Black, Width: 2},
		}
		return target, frame
	}

	targetA, frameA := buildFrame()
	serial := toon.NewColorBuffer(w, h)
	rs := NewSoftwareRenderer(WithWorkers(1))
	defer rs.Close()
	if err := rs.Render(serial, targetA, frameA); err != nil {
		t.Fatal(err)
	}

	targetB, frameB := buildFrame()
	parallel := toon.NewColorBuffer(w, h)
	rp := NewSoftwareRenderer(WithWorkers(8))
	defer rp.Close()
	if err := rp.Render(parallel, targetB, frameB); err != nil {
		t.Fatal(err)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if serial.Load(x, y) != parallel.Load(x, y) {
				t.Fatalf("pixel (%d,%d) differs between serial and parallel rendering", x, y)
			}
		}
	}
}

func TestSoftwareRenderer_Errors(t *testing.T) {
	r := NewSoftwareRenderer()
	defer r.Close()
	target, _ := NewTarget(2, 2)
	dst := toon.NewColorBuffer(2, 2)

	if err := r.Render(dst, nil, &Frame{}); err != ErrNilTarget {
		t.Errorf("nil target: err = %v, want ErrNilTarget", err)
	}
	if err := r.Render(nil, target, &Frame{}); err != ErrNilDestination {
		t.Errorf("nil dst: err = %v, want ErrNilDestination", err)
	}
	if err := r.Render(target.Color, target, &Frame{}); err != ErrAliasedDestination {
		t.Errorf("aliased dst: err = %v, want ErrAliasedDestination", err)
	}
}

func TestSoftwareRenderer_RenderAfterClose(t *testing.T) {
	const w, h = 8, 8

	r := NewSoftwareRenderer(WithWorkers(4))
	r.Close()

	target, _ := NewTarget(w, h)
	frame := &Frame{
		Draws: []Draw{
			fullScreenDraw(w, h, &flatMaterial{color: toon.Green}, toon.White, 1),
		},
		Outline: &toon.OutlineSettings{Color: toon.Black, Width: 1},
	}

	// The closed pool falls back to serial execution; the frame still
	// renders completely.
	dst := toon.NewColorBuffer(w, h)
	if err := r.Render(dst, target, frame); err != nil {
		t.Fatal(err)
	}
	if got := dst.Load(w/2, h/2); got != toon.Green {
		t.Errorf("interior pixel = %+v, want shaded color", got)
	}
}
