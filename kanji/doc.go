// Package kanji holds the character record the recogniser matches on, the
// comparer contract every matching algorithm implements, and the compact
// text forms used to persist records.
//
// 🚀 Lifecycle of an Info
//
//	New(label)       → open record, strokes accumulate via AddStroke
//	Finish()         → raw strokes are normalised together (stroke.Normalise)
//	                   and per-stroke features are derived:
//	                     StrokeDirections[i]  direction of stroke i
//	                     StrokeStarts[i]      grid cell of its start
//	                     StrokeEnds[i]        grid cell of its end
//	                     MoveDirections[i-1]  pen travel from stroke i-1 to i
//	MatchScore(o, a) → score in [0,100] of o against this (drawn) record
//
// Records loaded from a persisted summary (FromSummary) are born finished.
//
// ✨ Comparers
//
//	An Algorithm binds a key, an allowed stroke-count deviation (Out) and a
//	Comparer constructor. Each Info lazily builds at most one Comparer per
//	algorithm key, initialised with itself as the drawn side, and reuses it
//	for every candidate. The cache lock is held while a comparer is looked
//	up or built, never while it scores.
//
// 📦 Text forms
//
//	Summary            "00,00-ff,ff:ff,00-00,ff" (lowercase hex per coordinate)
//	DirectionsSummary  "▛↘▟:↑:▜↙▙" (start, direction, end; move between strokes)
//	CodePoint          "4E00" (uppercase hex)
//	XML                <kanji unicode='4E00' strokes='...'/>
//
// Concurrency:
//
//	AddStroke/Finish and the comparer cache are guarded by separate
//	mutexes. A finished record is read-only, so independent queries may run
//	in parallel against the same record.
package kanji
