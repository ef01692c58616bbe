// Package spans implements the bucket comparer: strokes are matched by the
// coarse grid cells of their two endpoints rather than by pairwise scoring.
//
// Each endpoint coordinate is reduced to one of LocationRange (5) bands
// with (c×5)>>8, so a stroke maps to one of 5⁴ = 625 buckets keyed by
// (startX, startY, endX, endY).
//
// The drawn side registers every stroke twice, forwards and backwards, in
// each bucket within one band of its own key on all four axes. The score
// of a registration adds, for the start and then the end cell,
//
//	4  exact cell
//	3  one axis exact, the other one band off
//	2  diagonal neighbour
//
// plus 2 for the forward orientation, so an exact forward hit scores
// MaxScore (10) and the weakest registration MinScore (4).
//
// A candidate stroke looks up only its own bucket. Required scores run
// from 10 down to 4; at each level every unmatched candidate stroke claims
// the best free drawn stroke registered at that level or above, earning
// the level. The total is reported against min(n, m) × MaxScore.
//
// The buckets are built once by Init and never written again, so
// MatchScore is safe for concurrent use.
package spans
