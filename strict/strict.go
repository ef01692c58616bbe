// SPDX-License-Identifier: MIT
// Package: kanjirec/strict
//
// strict.go — index-aligned feature comparison.

package strict

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kanjirec/kanji"
	"github.com/katalvlaran/kanjirec/stroke"
)

// Weights of each feature; a close (but not equal) feature earns
// CloseWeight of its weight.
const (
	StrokeDirectionWeight = 1.0
	MoveDirectionWeight   = 0.8
	StrokeLocationWeight  = 0.6
	CloseWeight           = 0.7
)

// ErrStrokeCountMismatch indicates a candidate whose stroke count differs
// from the drawn record's.
var ErrStrokeCountMismatch = errors.New("strict: stroke counts differ")

// Comparer scores candidates stroke by stroke. The zero value is ready for Init.
type Comparer struct {
	drawn profile
}

// profile holds the per-stroke features the strict score reads.
type profile struct {
	starts, ends      []stroke.Location
	directions, moves []stroke.Direction
}

// profileOf gathers the features of a finished record.
func profileOf(k *kanji.Info) (profile, error) {
	var (
		p   profile
		err error
	)
	if p.starts, err = k.StrokeStarts(); err != nil {
		return profile{}, err
	}
	if p.ends, err = k.StrokeEnds(); err != nil {
		return profile{}, err
	}
	if p.directions, err = k.StrokeDirections(); err != nil {
		return profile{}, err
	}
	if p.moves, err = k.MoveDirections(); err != nil {
		return profile{}, err
	}

	return p, nil
}

// New returns an uninitialised Comparer.
func New() kanji.Comparer { return &Comparer{} }

// Init captures the drawn record's features.
func (c *Comparer) Init(drawn *kanji.Info) error {
	p, err := profileOf(drawn)
	if err != nil {
		return err
	}
	c.drawn = p

	return nil
}

// MatchScore compares other with the drawn record. Returns
// ErrStrokeCountMismatch unless both have the same number of strokes.
func (c *Comparer) MatchScore(other *kanji.Info) (float64, error) {
	o, err := profileOf(other)
	if err != nil {
		return 0, err
	}
	d := c.drawn
	n := len(d.starts)
	if len(o.starts) != n {
		return 0, fmt.Errorf("%w: drawn %d, %q has %d", ErrStrokeCountMismatch, n, other.Label(), len(o.starts))
	}
	if n == 0 {
		return 0, nil
	}

	var score float64
	for i := 0; i < n; i++ {
		score += directionScore(d.directions[i], o.directions[i], StrokeDirectionWeight)
		if i > 0 {
			score += directionScore(d.moves[i-1], o.moves[i-1], MoveDirectionWeight)
		}
		score += locationScore(d.starts[i], o.starts[i])
		score += locationScore(d.ends[i], o.ends[i])
	}

	return 100 * score / MaxScore(n), nil
}

// MaxScore is the best achievable raw score for n strokes.
func MaxScore(n int) float64 {
	return float64(n)*(StrokeDirectionWeight+2*StrokeLocationWeight) +
		float64(n-1)*MoveDirectionWeight
}

func directionScore(a, b stroke.Direction, weight float64) float64 {
	switch {
	case a == b:
		return weight
	case a.IsClose(b):
		return weight * CloseWeight
	}

	return 0
}

func locationScore(a, b stroke.Location) float64 {
	switch {
	case a == b:
		return StrokeLocationWeight
	case a.IsClose(b):
		return StrokeLocationWeight * CloseWeight
	}

	return 0
}
