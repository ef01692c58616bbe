// SPDX-License-Identifier: MIT
// Package: kanjirec/stroke
//
// stroke.go — the normalised stroke value and its derived features.

package stroke

import (
	"fmt"
	"math"
)

// MaxCoord is the largest normalised coordinate.
const MaxCoord = 255

// Stroke is a single pen movement reduced to start→end in fixed-point
// 0..255 space. Construct with NewStroke, FromFloats or Normalise; the
// fields are exported for reading only.
type Stroke struct {
	StartX, StartY int
	EndX, EndY     int
}

// NewStroke validates the four coordinates and builds a Stroke.
// Returns ErrOutOfRange if any value lies outside [0,255].
func NewStroke(startX, startY, endX, endY int) (Stroke, error) {
	for _, v := range [...]int{startX, startY, endX, endY} {
		if v < 0 || v > MaxCoord {
			return Stroke{}, fmt.Errorf("%w: %d", ErrOutOfRange, v)
		}
	}

	return Stroke{StartX: startX, StartY: startY, EndX: endX, EndY: endY}, nil
}

// FromFloats builds a Stroke from coordinates already scaled to 0..1.
func FromFloats(startX, startY, endX, endY float64) (Stroke, error) {
	return NewStroke(quantize(startX), quantize(startY), quantize(endX), quantize(endY))
}

// quantize maps 0..1 to 0..255 rounding half up.
func quantize(v float64) int {
	return int(math.Floor(v*MaxCoord + 0.49999))
}

// Direction is the stroke direction with the standard threshold.
func (s Stroke) Direction() Direction {
	return DirectionOf(s.StartX, s.StartY, s.EndX, s.EndY, DirectionThreshold)
}

// DirectionNoThreshold is the stroke direction ignoring stroke length;
// it is never X.
func (s Stroke) DirectionNoThreshold() Direction {
	return DirectionOf(s.StartX, s.StartY, s.EndX, s.EndY, 0)
}

// MoveDirection is the direction the pen travelled from the end of
// previous to the start of s.
func (s Stroke) MoveDirection(previous Stroke) Direction {
	return DirectionOf(previous.EndX, previous.EndY, s.StartX, s.StartY, DirectionThreshold)
}

// StartLocation is the grid cell of the start point.
func (s Stroke) StartLocation() Location { return LocationOf(s.StartX, s.StartY) }

// EndLocation is the grid cell of the end point.
func (s Stroke) EndLocation() Location { return LocationOf(s.EndX, s.EndY) }

// String renders "[sx,sy:ex,ey]".
func (s Stroke) String() string {
	return fmt.Sprintf("[%d,%d:%d,%d]", s.StartX, s.StartY, s.EndX, s.EndY)
}
