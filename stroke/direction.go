// SPDX-License-Identifier: MIT
// Package: kanjirec/stroke
//
// direction.go — 8-way compass quantizer for stroke and pen-move vectors.

package stroke

import "fmt"

// Direction is the quantized direction of a stroke or of the pen movement
// between two strokes. The zero value is N.
type Direction uint8

const (
	N  Direction = iota // basically north (up)
	NE                  // basically north-east
	E                   // basically east (right)
	SE                  // basically south-east
	S                   // basically south (down)
	SW                  // basically south-west
	W                   // basically west (left)
	NW                  // basically north-west
	X                   // no clear movement
)

const (
	// DirectionThreshold is the movement (in 0..255 units) below which a
	// vector counts as nondirectional on both axes.
	DirectionThreshold = 51

	// DiagonalThreshold is the proportion (out of 256) of the dominant
	// movement the minor movement must exceed to count as diagonal.
	// 77 ≈ 30%: with 10 down, at least 10*77/256 across makes it SE.
	DiagonalThreshold = 77

	compassPoints = 8
)

var directionGlyphs = [...]string{
	N:  "↑",
	NE: "↗",
	E:  "→",
	SE: "↘",
	S:  "↓",
	SW: "↙",
	W:  "←",
	NW: "↖",
	X:  "⚪",
}

// Directions lists every Direction, X last.
func Directions() []Direction {
	return []Direction{N, NE, E, SE, S, SW, W, NW, X}
}

// Index returns the compass index 0..7, or -1 for X.
func (d Direction) Index() int {
	if d >= X {
		return -1
	}

	return int(d)
}

// Display returns the arrow glyph used in directions summaries.
func (d Direction) Display() string {
	if d > X {
		return "?"
	}

	return directionGlyphs[d]
}

// String implements fmt.Stringer.
func (d Direction) String() string { return d.Display() }

// IsClose reports whether d is within one compass step of other.
// X is close to everything, itself included.
func (d Direction) IsClose(other Direction) bool {
	if d == X || other == X || d == other {
		return true
	}
	a, b := d.Index(), other.Index()

	return a == (b+1)%compassPoints || b == (a+1)%compassPoints
}

// ParseDirection reads a Direction from its display glyph.
func ParseDirection(glyph string) (Direction, error) {
	for i, g := range directionGlyphs {
		if g == glyph {
			return Direction(i), nil
		}
	}

	return X, fmt.Errorf("%w: direction %q", ErrUnknownGlyph, glyph)
}

// DirectionOf quantizes the vector (startX,startY)→(endX,endY).
// Movement under threshold on both axes yields X; threshold 0 never does.
// Y grows downwards, so a negative deltaY is north.
func DirectionOf(startX, startY, endX, endY, threshold int) Direction {
	deltaX, deltaY := endX-startX, endY-startY
	absDeltaX, absDeltaY := abs(deltaX), abs(deltaY)
	if absDeltaX < threshold && absDeltaY < threshold {
		return X
	}

	if absDeltaX > absDeltaY {
		diagonal := absDeltaY > (DiagonalThreshold*absDeltaX)>>8
		switch {
		case deltaX > 0 && !diagonal:
			return E
		case deltaX > 0 && deltaY < 0:
			return NE
		case deltaX > 0:
			return SE
		case !diagonal:
			return W
		case deltaY < 0:
			return NW
		default:
			return SW
		}
	}

	diagonal := absDeltaX > (DiagonalThreshold*absDeltaY)>>8
	switch {
	case deltaY > 0 && !diagonal:
		return S
	case deltaY > 0 && deltaX < 0:
		return SW
	case deltaY > 0:
		return SE
	case !diagonal:
		return N
	case deltaX < 0:
		return NW
	default:
		return NE
	}
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
