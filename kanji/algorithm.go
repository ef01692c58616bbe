// SPDX-License-Identifier: MIT
// Package: kanjirec/kanji
//
// algorithm.go — the comparer contract and the algorithm descriptor.

package kanji

import "fmt"

// Comparer scores candidate records against one drawn record.
//
// Init is called exactly once, with the drawn record, before any
// MatchScore. After Init a Comparer must allow concurrent MatchScore
// calls: any scratch state lives in the call, not in the Comparer.
type Comparer interface {
	// Init prepares the comparer for the given drawn record.
	Init(drawn *Info) error

	// MatchScore scores other against the drawn record, in [0,100].
	MatchScore(other *Info) (float64, error)
}

// Algorithm describes one way of matching: a unique key, the stroke-count
// deviation the ranker searches (Out: 0, 1 or 2) and the comparer
// constructor.
type Algorithm struct {
	Key string
	Out int
	New func() Comparer
}

// String implements fmt.Stringer.
func (a Algorithm) String() string { return a.Key }

// NewComparer constructs and initialises a comparer for drawn.
// A missing constructor is a programming error and panics.
func (a Algorithm) NewComparer(drawn *Info) (Comparer, error) {
	if a.New == nil {
		panic(fmt.Sprintf("kanji: algorithm %q has no comparer constructor", a.Key))
	}
	c := a.New()
	if c == nil {
		panic(fmt.Sprintf("kanji: algorithm %q constructed a nil comparer", a.Key))
	}
	if err := c.Init(drawn); err != nil {
		return nil, fmt.Errorf("kanji: init %s comparer for %q: %w", a.Key, drawn.Label(), err)
	}

	return c, nil
}
