// SPDX-License-Identifier: MIT
// Package: kanjirec/stroke
//
// location.go — 3×3 grid quantizer for stroke endpoints.

package stroke

import "fmt"

// Location is the approximate position of a stroke endpoint on a 3×3 grid.
// Values are laid out row-major so that X() == l%3 and Y() == l/3.
type Location uint8

const (
	LocNW  Location = iota // top-left
	LocN                   // top-centre
	LocNE                  // top-right
	LocW                   // middle-left
	LocMID                 // centre
	LocE                   // middle-right
	LocSW                  // bottom-left
	LocS                   // bottom-centre
	LocSE                  // bottom-right
)

const (
	gridSize = 3

	// LocationLow and LocationHigh split each 0..255 axis into three bands.
	LocationLow  = 85
	LocationHigh = 170
)

var locationGlyphs = [...]string{
	LocNW:  "▛",
	LocN:   "▀",
	LocNE:  "▜",
	LocW:   "▌",
	LocMID: "█",
	LocE:   "▐",
	LocSW:  "▙",
	LocS:   "▄",
	LocSE:  "▟",
}

// Locations lists every Location in grid order.
func Locations() []Location {
	return []Location{LocNW, LocN, LocNE, LocW, LocMID, LocE, LocSW, LocS, LocSE}
}

// X returns the grid column (0..2).
func (l Location) X() int { return int(l) % gridSize }

// Y returns the grid row (0..2).
func (l Location) Y() int { return int(l) / gridSize }

// Display returns the block glyph used in directions summaries.
func (l Location) Display() string {
	if l > LocSE {
		return "?"
	}

	return locationGlyphs[l]
}

// String implements fmt.Stringer.
func (l Location) String() string { return l.Display() }

// IsClose reports whether the two cells are 8-adjacent (or equal).
func (l Location) IsClose(other Location) bool {
	return abs(l.X()-other.X()) <= 1 && abs(l.Y()-other.Y()) <= 1
}

// ParseLocation reads a Location from its display glyph.
func ParseLocation(glyph string) (Location, error) {
	for i, g := range locationGlyphs {
		if g == glyph {
			return Location(i), nil
		}
	}

	return LocMID, fmt.Errorf("%w: location %q", ErrUnknownGlyph, glyph)
}

// LocationOf quantizes a normalised point.
func LocationOf(x, y int) Location {
	return Location(band(y)*gridSize + band(x))
}

// band maps a 0..255 coordinate to 0, 1 or 2.
func band(v int) int {
	switch {
	case v < LocationLow:
		return 0
	case v < LocationHigh:
		return 1
	default:
		return 2
	}
}
