// Package kanjirec matches hand-drawn CJK characters against a list of
// known characters, using only the straight-line geometry of each stroke.
//
// A drawn character is a sequence of strokes, each reduced to a start and
// an end point. Strokes are scaled into a 0..255 square, and each one is
// summarised by a direction (one of eight compass points, or X for "no
// clear direction") plus the 3×3 cells it starts and ends in.
//
// The work is split across small subpackages:
//
//	stroke/  — raw input, normalisation, direction and location features
//	kanji/   — the character record, its text forms and the comparer cache
//	strict/  — same stroke count, same order; weighted feature agreement
//	fuzzy/   — same stroke count, any order or direction; bounded pair search
//	spans/   — any stroke count; bucketed lookup of nearby strokes
//	match/   — the finished list of known characters and ranking
//	glyphs/  — a small built-in corpus with jitter and reordering variants
//
// Quick example (a drawn 十 against the built-in corpus):
//
//	list, _ := glyphs.Corpus()
//	drawn, _ := kanji.FromSummary("?", "00,7f-ff,7f:7f,00-7f,ff")
//	top, _ := list.TopMatches(drawn, match.Fuzzy)
//	fmt.Println(top[0]) // 十:100.00
//
// The kanjimatch command under cmd/ wraps the same flow for the terminal.
package kanjirec
