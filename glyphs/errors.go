// SPDX-License-Identifier: MIT
// Package: kanjirec/glyphs

package glyphs

import "errors"

var (
	// ErrUnknownGlyph indicates a rune with no registry entry.
	ErrUnknownGlyph = errors.New("glyphs: unknown glyph")

	// ErrOptionMismatch indicates an option that does not fit the glyph's
	// stroke count (a stroke index or permutation of the wrong size).
	ErrOptionMismatch = errors.New("glyphs: option does not fit glyph")
)
