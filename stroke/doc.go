// Package stroke reduces pen strokes to the straight start→end vectors the
// matchers work on, and quantizes them into symbolic features.
//
// What lives here?
//
//	A hand-drawn character is a sequence of pen movements. The recogniser
//	ignores curvature, pressure and timing: every stroke is collapsed to the
//	vector from its first to its last point. This package owns that
//	abstraction and the numeric rules built on it:
//	  • Input     — a raw stroke in arbitrary float coordinates
//	  • Normalise — rescales a whole character into fixed-point 0..255 space
//	  • Stroke    — a normalised stroke (four ints in [0,255])
//	  • Direction — 8-way compass quantizer plus X ("no clear movement")
//	  • Location  — 3×3 grid quantizer for stroke endpoints
//	  • ParsePath — SVG path data → Input (start point, final point)
//
// Normalisation (per character, never per stroke):
//  1. bounding box over all endpoints;
//  2. an axis thinner than 1e-10 grows symmetrically by the other axis'
//     extent (0.1 if that is also ~0), so a dot or a straight line lands
//     in the middle of the box;
//  3. an axis more than 5× longer than the other makes the shorter axis
//     grow symmetrically until the ratio is exactly 5:1;
//  4. every coordinate maps linearly into [0,1] and is quantized with
//     floor(v*255 + 0.49999).
//
// Usage:
//
//	strokes, err := stroke.Normalise([]stroke.Input{
//	  stroke.InputFromFloats(7, 4, 77, 4),
//	})
//	// strokes[0] == Stroke{0, 127, 255, 127}
//	dir := strokes[0].Direction() // stroke.E
//
// Errors:
//   - ErrOutOfRange   — a coordinate outside [0,255].
//   - ErrEmptyInput   — Normalise called with no strokes.
//   - ErrNaNInf       — a raw coordinate is NaN or ±Inf.
//   - ErrBadPath      — malformed SVG path data.
//   - ErrUnknownGlyph — unknown Direction/Location display glyph.
package stroke
