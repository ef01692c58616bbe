// SPDX-License-Identifier: MIT
// Package: kanjirec/stroke
//
// input.go — raw strokes and the per-character normaliser.
//
// Contract:
//   • Normalise works on a whole character at once: the bounding box is
//     shared by all strokes so relative placement survives.
//   • Output always satisfies the Stroke range invariant; a value outside
//     [0,255] is reported as ErrOutOfRange rather than clamped.
//
// Complexity: O(n) time and memory for n strokes.

package stroke

import (
	"fmt"
	"math"
)

const (
	// degenerateExtent is the box size under which an axis counts as flat.
	degenerateExtent = 1e-10

	// degenerateFallback is the extent given to a flat axis when the other
	// axis is flat as well (a single dot).
	degenerateFallback = 0.1

	// MaxAspect is the largest ratio allowed between the box sides before
	// the shorter side is widened.
	MaxAspect = 5.0

	// hugeCoord bounds the magnitude that box arithmetic can take without
	// overflowing. Larger inputs are first scaled by a power of two.
	hugeCoord = math.MaxFloat64 / 16
)

// Point is a position in raw (unnormalised) coordinates.
type Point struct {
	X, Y float64
}

// Input is a raw stroke: its first and last point in any float space.
type Input struct {
	Start, End Point
}

// InputFromFloats builds an Input from start and end coordinates.
func InputFromFloats(startX, startY, endX, endY float64) Input {
	return Input{Start: Point{X: startX, Y: startY}, End: Point{X: endX, Y: endY}}
}

// box is an axis-aligned bounding rectangle.
type box struct {
	minX, minY, maxX, maxY float64
}

func (b box) width() float64  { return b.maxX - b.minX }
func (b box) height() float64 { return b.maxY - b.minY }

// Normalise converts a character's raw strokes into 0..255 Strokes.
//
// Stages:
//  1. bounding box over every endpoint;
//  2. flat axes grow by the other axis' extent (or degenerateFallback);
//  3. the shorter side grows until the aspect ratio is at most MaxAspect;
//  4. linear map into [0,1], then floor(v*255 + 0.49999).
//
// Returns ErrEmptyInput for no strokes and ErrNaNInf for non-finite input.
func Normalise(inputs []Input) ([]Stroke, error) {
	if len(inputs) == 0 {
		return nil, ErrEmptyInput
	}

	inputs, err := shrinkHuge(inputs)
	if err != nil {
		return nil, err
	}

	b := box{
		minX: math.Inf(1), minY: math.Inf(1),
		maxX: math.Inf(-1), maxY: math.Inf(-1),
	}
	for _, in := range inputs {
		for _, p := range [...]Point{in.Start, in.End} {
			b.minX = math.Min(b.minX, p.X)
			b.maxX = math.Max(b.maxX, p.X)
			b.minY = math.Min(b.minY, p.Y)
			b.maxY = math.Max(b.maxY, p.Y)
		}
	}

	b = widenFlatAxes(b)
	b = clampAspect(b)

	out := make([]Stroke, len(inputs))
	w, h := b.width(), b.height()
	for i, in := range inputs {
		s, err := FromFloats(
			(in.Start.X-b.minX)/w, (in.Start.Y-b.minY)/h,
			(in.End.X-b.minX)/w, (in.End.Y-b.minY)/h)
		if err != nil {
			return nil, fmt.Errorf("normalise stroke %d: %w", i, err)
		}
		out[i] = s
	}

	return out, nil
}

// shrinkHuge rejects non-finite coordinates and, when any coordinate is
// beyond hugeCoord, returns a copy scaled by a power of two so the box
// extents stay finite. Scaling by 2^-k is exact apart from subnormals, and
// normalisation only depends on ratios.
func shrinkHuge(inputs []Input) ([]Input, error) {
	var peak float64
	for i, in := range inputs {
		for _, p := range [...]Point{in.Start, in.End} {
			if !finite(p.X) || !finite(p.Y) {
				return nil, fmt.Errorf("%w: stroke %d (%g,%g)", ErrNaNInf, i, p.X, p.Y)
			}
			peak = max(peak, math.Abs(p.X), math.Abs(p.Y))
		}
	}
	if peak <= hugeCoord {
		return inputs, nil
	}

	_, exp := math.Frexp(peak)
	scale := func(p Point) Point {
		return Point{X: math.Ldexp(p.X, -exp), Y: math.Ldexp(p.Y, -exp)}
	}
	scaled := make([]Input, len(inputs))
	for i, in := range inputs {
		scaled[i] = Input{Start: scale(in.Start), End: scale(in.End)}
	}

	return scaled, nil
}

// widenFlatAxes centres a zero-extent axis inside a box as wide as the
// other axis. X is fixed first, so a lone dot ends up 0.1 × 0.1.
func widenFlatAxes(b box) box {
	if b.width() < degenerateExtent {
		grow := b.height()
		if grow < degenerateExtent {
			grow = degenerateFallback
		}
		b.minX -= grow / 2
		b.maxX += grow / 2
	}
	if b.height() < degenerateExtent {
		grow := b.width()
		if grow < degenerateExtent {
			grow = degenerateFallback
		}
		b.minY -= grow / 2
		b.maxY += grow / 2
	}

	return b
}

// clampAspect widens the shorter side symmetrically so that neither side
// exceeds MaxAspect times the other. Long thin characters (一, 丨) keep
// their shape instead of being stretched into a square.
func clampAspect(b box) box {
	w, h := b.width(), b.height()
	switch {
	case w > MaxAspect*h:
		extra := (w/MaxAspect - h) / 2
		b.minY -= extra
		b.maxY += extra
	case h > MaxAspect*w:
		extra := (h/MaxAspect - w) / 2
		b.minX -= extra
		b.maxX += extra
	}

	return b
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
