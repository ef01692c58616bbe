// SPDX-License-Identifier: MIT
// Package: kanjirec/kanji
//
// errors.go — sentinel errors for the kanji package.
//
// Callers branch with errors.Is. Format errors carry the offending
// substring via fmt.Errorf("%w: ...").

package kanji

import "errors"

var (
	// ErrBadLabel indicates a label that is not exactly one code point.
	ErrBadLabel = errors.New("kanji: label must be a single code point")

	// ErrFinished indicates AddStroke or Finish on an already finished record.
	ErrFinished = errors.New("kanji: record already finished")

	// ErrNotFinished indicates a feature access before Finish.
	ErrNotFinished = errors.New("kanji: record not finished")

	// ErrStrokeIndex indicates a stroke index outside [0, StrokeCount).
	ErrStrokeIndex = errors.New("kanji: stroke index out of range")

	// ErrNilInfo indicates a nil record passed where one is required.
	ErrNilInfo = errors.New("kanji: nil record")

	// ErrBadSummary indicates a malformed stroke summary.
	ErrBadSummary = errors.New("kanji: invalid stroke summary")

	// ErrBadDirections indicates a malformed directions summary.
	ErrBadDirections = errors.New("kanji: invalid directions summary")

	// ErrBadCodePoint indicates a code point that is not valid hex or not a valid rune.
	ErrBadCodePoint = errors.New("kanji: invalid code point")
)
