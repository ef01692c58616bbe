// SPDX-License-Identifier: MIT
// Package: kanjirec/spans

package spans

import (
	"sort"

	"github.com/katalvlaran/kanjirec/kanji"
	"github.com/katalvlaran/kanjirec/stroke"
)

const (
	// LocationRange is the number of bands per axis.
	LocationRange = 5

	// ArraySize is the number of buckets.
	ArraySize = LocationRange * LocationRange * LocationRange * LocationRange

	// Registration scores: per endpoint cell, plus the forward bonus.
	ScoreRightDirection   = 2
	ScoreExactLocation    = 4
	ScoreStraightLocation = 3
	ScoreDiagonalLocation = 2

	// MaxScore is an exact, forward registration.
	MaxScore = 2*ScoreExactLocation + ScoreRightDirection

	// MinScore is the weakest registration.
	MinScore = 2 * ScoreDiagonalLocation
)

// span is one registration of a drawn stroke in a bucket.
type span struct {
	stroke int
	score  int
}

// key is a bucket index.
type key int

func keyOf(sx, sy, ex, ey int) key {
	return key(((sx*LocationRange+sy)*LocationRange+ex)*LocationRange + ey)
}

// band reduces a 0..255 coordinate to 0..LocationRange-1.
func band(c int) int { return (c * LocationRange) >> 8 }

func strokeKey(s stroke.Stroke) key {
	return keyOf(band(s.StartX), band(s.StartY), band(s.EndX), band(s.EndY))
}

// Comparer is the bucket comparer. Create with New.
type Comparer struct {
	buckets [ArraySize][]span
	count   int
}

// New returns an uninitialised Comparer.
func New() kanji.Comparer { return &Comparer{} }

// Init registers every drawn stroke and orders each bucket best first.
func (c *Comparer) Init(drawn *kanji.Info) error {
	strokes, err := drawn.Strokes()
	if err != nil {
		return err
	}
	c.count = len(strokes)
	for i, s := range strokes {
		sx, sy, ex, ey := band(s.StartX), band(s.StartY), band(s.EndX), band(s.EndY)
		c.register(i, sx, sy, ex, ey, true)
		c.register(i, ex, ey, sx, sy, false)
	}
	for i := range c.buckets {
		b := c.buckets[i]
		// Higher score first; on equal scores the later stroke wins.
		sort.Slice(b, func(x, y int) bool {
			if b[x].score != b[y].score {
				return b[x].score > b[y].score
			}

			return b[x].stroke > b[y].stroke
		})
	}

	return nil
}

// register adds stroke i to every bucket within one band of
// (sx, sy, ex, ey).
func (c *Comparer) register(i, sx, sy, ex, ey int, forward bool) {
	for _, s := range neighbours(sx, sy) {
		for _, e := range neighbours(ex, ey) {
			score := s.score + e.score
			if forward {
				score += ScoreRightDirection
			}
			k := keyOf(s.x, s.y, e.x, e.y)
			c.buckets[k] = append(c.buckets[k], span{stroke: i, score: score})
		}
	}
}

// cell is a neighbouring band pair and its closeness score.
type cell struct {
	x, y, score int
}

// neighbours lists the in-range cells within one band of (x, y).
func neighbours(x, y int) []cell {
	out := make([]cell, 0, 9)
	for nx := x - 1; nx <= x+1; nx++ {
		if nx < 0 || nx >= LocationRange {
			continue
		}
		for ny := y - 1; ny <= y+1; ny++ {
			if ny < 0 || ny >= LocationRange {
				continue
			}
			score := ScoreDiagonalLocation
			switch {
			case nx == x && ny == y:
				score = ScoreExactLocation
			case nx == x || ny == y:
				score = ScoreStraightLocation
			}
			out = append(out, cell{x: nx, y: ny, score: score})
		}
	}

	return out
}

// match returns the first free stroke in bucket k scoring at least
// required, or -1.
func (c *Comparer) match(k key, required int, used []bool) int {
	for _, sp := range c.buckets[k] {
		if sp.score < required {
			return -1
		}
		if !used[sp.stroke] {
			return sp.stroke
		}
	}

	return -1
}

// MatchScore scores other against the drawn character, in [0,100].
// Either side having no strokes scores 0.
func (c *Comparer) MatchScore(other *kanji.Info) (float64, error) {
	strokes, err := other.Strokes()
	if err != nil {
		return 0, err
	}
	m := len(strokes)
	if c.count == 0 || m == 0 {
		return 0, nil
	}

	keys := make([]key, m)
	for i, s := range strokes {
		keys[i] = strokeKey(s)
	}
	used := make([]bool, c.count)
	otherUsed := make([]bool, m)
	unmatched, otherUnmatched := c.count, m

	score := 0
search:
	for required := MaxScore; required >= MinScore; required-- {
		for i, k := range keys {
			if otherUsed[i] {
				continue
			}
			j := c.match(k, required, used)
			if j < 0 {
				continue
			}
			score += required
			used[j], otherUsed[i] = true, true
			unmatched--
			otherUnmatched--
			if unmatched == 0 || otherUnmatched == 0 {
				break search
			}
		}
	}

	return 100 * float64(score) / float64(min(c.count, m)*MaxScore), nil
}
