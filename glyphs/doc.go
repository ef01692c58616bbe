// Package glyphs is a small built-in corpus of CJK characters as raw
// strokes, plus deterministic ways to turn them into "drawn" variants.
//
// It stands in for a full stroke-order database in examples, tests and the
// kanjimatch command: every entry is a real character with its strokes in
// writing order, coarse enough to type by hand and rich enough to rank.
//
// Variants (functional options, applied in this order):
//
//	WithJitter(σ)     add N(0,σ) noise to every coordinate (Grid units)
//	WithReversed(i…)  draw stroke i end→start
//	WithOrder(p)      draw canonical stroke p[k] as the k-th stroke
//	WithDropLast(n)   omit the last n strokes
//
// Randomness only comes from WithSeed or WithRand; jitter without either
// uses a fixed seed, so output is reproducible by default.
//
// Usage:
//
//	list, _ := glyphs.Corpus()                         // finished match.List
//	drawn, _ := glyphs.Info('木', glyphs.WithSeed(7), glyphs.WithJitter(1))
//	top, _ := list.TopMatches(drawn, match.Fuzzy)
package glyphs
