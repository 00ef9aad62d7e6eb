package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/toon"
)

// Target-related errors.
var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("render: invalid target dimensions")

	// ErrNilTarget is returned when rendering to a nil target.
	ErrNilTarget = errors.New("render: nil target")

	// ErrNilDestination is returned when the outline stage has no output buffer.
	ErrNilDestination = errors.New("render: nil destination buffer")

	// ErrAliasedDestination is returned when the destination aliases the
	// target's color buffer. The outline stage reads the whole color buffer
	// while writing the destination, so in-place filtering would corrupt
	// the Sobel neighborhood of later pixels.
	ErrAliasedDestination = errors.New("render: destination aliases target color buffer")
)

// Target is the pair of full-resolution buffers one frame renders into:
// the shaded color buffer and the per-draw section identifier buffer.
// Both are written by the material stage and read-only to the outline
// stage.
type Target struct {
	// Color holds the shaded frame.
	Color *toon.ColorBuffer

	// Sections holds the per-pixel section identifier. Only differences
	// between neighboring values matter; the magnitude is irrelevant.
	Sections *toon.ScalarBuffer
}

// NewTarget creates a target with the given dimensions.
func NewTarget(width, height int) (*Target, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Target{
		Color:    toon.NewColorBuffer(width, height),
		Sections: toon.NewScalarBuffer(width, height),
	}, nil
}

// Width returns the target width in pixels.
func (t *Target) Width() int { return t.Color.Width() }

// Height returns the target height in pixels.
func (t *Target) Height() int { return t.Color.Height() }

// Reset clears both buffers for a new frame. Buffers carry no state
// between frames; every frame rewrites them completely.
func (t *Target) Reset() {
	t.Color.Clear(toon.Transparent)
	t.Sections.Fill(0)
}
