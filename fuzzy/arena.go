// SPDX-License-Identifier: MIT
// Package: kanjirec/fuzzy
//
// arena.go — points, pairs and their position histograms.

package fuzzy

import "github.com/katalvlaran/kanjirec/stroke"

// Histogram facets, in the order they are stored.
const (
	xLess = iota
	xMore
	xSimilar
	yLess
	yMore
	ySimilar

	// Facets is the number of histogram facets per point.
	Facets
)

// point is one stroke endpoint.
type point struct {
	x, y int
	pair int         // index of the owning pair
	hist [Facets]int // positions of every other point of the same character
}

// pair is one stroke: indices of its start and end points.
type pair struct {
	a, b int
}

// arena holds the points and pairs of one character. Pair i owns points
// 2i (start) and 2i+1 (end).
type arena struct {
	points []point
	pairs  []pair
}

// newArena lays the strokes out as pairs and computes every histogram.
func newArena(strokes []stroke.Stroke) arena {
	ar := arena{
		points: make([]point, 0, 2*len(strokes)),
		pairs:  make([]pair, len(strokes)),
	}
	for i, s := range strokes {
		ar.pairs[i] = pair{a: 2 * i, b: 2*i + 1}
		ar.points = append(ar.points,
			point{x: s.StartX, y: s.StartY, pair: i},
			point{x: s.EndX, y: s.EndY, pair: i},
		)
	}
	for i := range ar.points {
		ar.count(i)
	}

	return ar
}

// count fills the histogram of point i.
func (ar *arena) count(i int) {
	p := &ar.points[i]
	for j, o := range ar.points {
		if j == i {
			continue
		}
		p.hist[xLess+side(o.x, p.x)]++
		p.hist[yLess+side(o.y, p.y)]++
	}
}

// side classifies v against centre: 0 less, 1 more, 2 similar.
func side(v, centre int) int {
	switch {
	case v < centre-SimilarRange:
		return xLess
	case v > centre+SimilarRange:
		return xMore
	}

	return xSimilar
}

// isStart reports whether point i is the start of its pair.
func (ar *arena) isStart(i int) bool {
	return ar.pairs[ar.points[i].pair].a == i
}

// difference is the L1 distance between two histograms.
func difference(a, b *[Facets]int) int {
	d := 0
	for f := range a {
		if a[f] > b[f] {
			d += a[f] - b[f]
		} else {
			d += b[f] - a[f]
		}
	}

	return d
}
