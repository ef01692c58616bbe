// Package strict implements the stroke-for-stroke comparer: stroke i of the
// drawn character is compared only with stroke i of the candidate.
//
// Scoring, per stroke index i:
//
//	direction       exact 1.0, close 0.7×1.0
//	start location  exact 0.6, close 0.7×0.6
//	end location    exact 0.6, close 0.7×0.6
//	move (i > 0)    exact 0.8, close 0.7×0.8
//
// The total is reported as a percentage of the best possible score,
// n×(1.0+2×0.6) + (n−1)×0.8 for n strokes.
//
// Strict is the cheapest comparer and the only one that cares about stroke
// order. It is only defined for candidates with the drawn stroke count;
// any other candidate fails with ErrStrokeCountMismatch.
package strict
