// SPDX-License-Identifier: MIT
// Package: kanjirec/fuzzy
//
// fuzzy.go — Comparer and tuning constants.

package fuzzy

import "github.com/katalvlaran/kanjirec/kanji"

const (
	// SimilarRange is how far apart (in 0..255 units) two coordinates may
	// be and still count as level with each other.
	SimilarRange = 13

	// ScoreMultiNotPair scales a match whose two points come from
	// different candidate strokes.
	ScoreMultiNotPair = 0.9

	// ScoreMultiWrongDirection scales a match of one candidate stroke
	// traversed end to start.
	ScoreMultiWrongDirection = 0.97

	// BestScoresSortFirst is how many top candidates each drawn point
	// ranks before the greedy search.
	BestScoresSortFirst = 5
)

// Comparer is the fuzzy comparer. Create with New; Init once, then
// MatchScore may be called from any number of goroutines.
type Comparer struct {
	drawn arena
}

// New returns an uninitialised Comparer.
func New() kanji.Comparer { return &Comparer{} }

// Init builds the drawn character's arena.
func (c *Comparer) Init(drawn *kanji.Info) error {
	strokes, err := drawn.Strokes()
	if err != nil {
		return err
	}
	c.drawn = newArena(strokes)

	return nil
}

// MatchScore scores other against the drawn character, in [0,100].
// Either side having no strokes scores 0.
func (c *Comparer) MatchScore(other *kanji.Info) (float64, error) {
	strokes, err := other.Strokes()
	if err != nil {
		return 0, err
	}
	if len(c.drawn.pairs) == 0 || len(strokes) == 0 {
		return 0, nil
	}
	cand := newArena(strokes)

	return newScratch(&c.drawn, &cand).run(), nil
}
