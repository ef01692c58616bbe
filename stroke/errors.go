// SPDX-License-Identifier: MIT
// Package: kanjirec/stroke
//
// errors.go — sentinel errors for the stroke package.
//
// Callers branch with errors.Is; context (the offending value or substring)
// is attached with fmt.Errorf("%w: ...") at the point of failure.

package stroke

import "errors"

var (
	// ErrOutOfRange indicates a normalised coordinate outside [0,255].
	ErrOutOfRange = errors.New("stroke: value out of range")

	// ErrEmptyInput indicates that Normalise received no strokes.
	ErrEmptyInput = errors.New("stroke: no strokes to normalise")

	// ErrNaNInf indicates a raw coordinate that is NaN or ±Inf.
	ErrNaNInf = errors.New("stroke: NaN or Inf coordinate")

	// ErrBadPath indicates SVG path data that cannot be read.
	ErrBadPath = errors.New("stroke: invalid path data")

	// ErrUnknownGlyph indicates a display glyph that is not a Direction or Location.
	ErrUnknownGlyph = errors.New("stroke: unknown display glyph")
)
