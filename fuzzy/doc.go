// Package fuzzy implements the order- and direction-tolerant comparer.
//
// Strokes are not compared by index. Instead every stroke endpoint is
// described by where the rest of the character lies relative to it, and
// drawn strokes are greedily paired with candidate endpoints that "see" the
// character the same way.
//
// Model:
//
//	point  — a stroke endpoint with a 6-facet histogram: how many other
//	         points of the same character lie left / right / level on X
//	         and above / below / level on Y. "Level" means within
//	         SimilarRange (13 of 255 units).
//	pair   — the two points of one stroke (start, end).
//
// Both live in an arena: flat slices referenced by index, so a point knows
// its pair by number and no pointers cycle.
//
// Scoring one candidate:
//  1. maxScore = 6 × max(drawn points, candidate points);
//     point score = maxScore − Σ|facet deltas|, always positive.
//  2. For each drawn pair, score every ordered candidate point pair (a, b):
//     score(a)+score(b), ×0.9 if a and b belong to different strokes,
//     ×0.97 if they are one stroke traversed end→start.
//  3. Greedy: repeatedly take the globally best (drawn pair, a, b) among
//     unused strokes and points. Each pair keeps its best as long as both
//     its points stay free; an upper bound (best a + best b) lets a pair
//     be skipped when it cannot beat the current leader, and each point's
//     top BestScoresSortFirst candidates are pre-sorted so most searches
//     stop early.
//  4. Result = 100 × total / (2 × maxScore × pairs matched).
//
// Concurrency:
//
//	Init builds the drawn arena once. Everything MatchScore mutates lives in
//	a per-call scratch value, so one Comparer serves concurrent calls.
//
// Complexity (n drawn strokes, m candidate strokes):
//
//	Time   = O(n·m²) to fill the pair tables, greedy loop usually far less.
//	Memory = O(n·m²) per call.
package fuzzy
