// SPDX-License-Identifier: MIT
// Package: kanjirec/match
//
// algorithms.go — the seven algorithm descriptors.

package match

import (
	"fmt"

	"github.com/katalvlaran/kanjirec/fuzzy"
	"github.com/katalvlaran/kanjirec/kanji"
	"github.com/katalvlaran/kanjirec/spans"
	"github.com/katalvlaran/kanjirec/strict"
)

var (
	// Strict requires the exact stroke count and order. Fast and accurate
	// for careful writers.
	Strict = kanji.Algorithm{Key: "STRICT", Out: 0, New: strict.New}

	// Fuzzy allows any stroke order and direction. Slow.
	Fuzzy = kanji.Algorithm{Key: "FUZZY", Out: 0, New: fuzzy.New}

	// Fuzzy1Out is Fuzzy against records one stroke short or over.
	Fuzzy1Out = kanji.Algorithm{Key: "FUZZY_1OUT", Out: 1, New: fuzzy.New}

	// Fuzzy2Out is Fuzzy against records two strokes short or over.
	Fuzzy2Out = kanji.Algorithm{Key: "FUZZY_2OUT", Out: 2, New: fuzzy.New}

	// Spans matches strokes by the grid buckets they span.
	Spans = kanji.Algorithm{Key: "SPANS", Out: 0, New: spans.New}

	// Spans1Out is Spans against records one stroke short or over.
	Spans1Out = kanji.Algorithm{Key: "SPANS_1OUT", Out: 1, New: spans.New}

	// Spans2Out is Spans against records two strokes short or over.
	Spans2Out = kanji.Algorithm{Key: "SPANS_2OUT", Out: 2, New: spans.New}
)

// Algorithms lists every descriptor in declaration order.
func Algorithms() []kanji.Algorithm {
	return []kanji.Algorithm{Strict, Fuzzy, Fuzzy1Out, Fuzzy2Out, Spans, Spans1Out, Spans2Out}
}

// ByKey returns the descriptor named key ("STRICT", "FUZZY_1OUT", ...).
func ByKey(key string) (kanji.Algorithm, error) {
	for _, a := range Algorithms() {
		if a.Key == key {
			return a, nil
		}
	}

	return kanji.Algorithm{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, key)
}
