// SPDX-License-Identifier: MIT
// Package: kanjirec/match
//
// options.go — functional options for TopMatches.
//
// Option constructors validate and panic on meaningless values; ranking
// itself never panics.

package match

import (
	"fmt"

	"github.com/katalvlaran/kanjirec/kanji"
)

// DefaultCutoff is the share of the top score an entry needs to be kept.
const DefaultCutoff = 0.75

// Option customises one TopMatches call.
type Option func(*config)

type config struct {
	workers int                 // goroutines scoring the pool; 1 = inline
	cutoff  float64             // in (0,1]
	onScore func(m kanji.Match) // called once per scored candidate
}

func newConfig(opts ...Option) config {
	cfg := config{
		workers: 1,
		cutoff:  DefaultCutoff,
		onScore: func(kanji.Match) {},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithWorkers scores the pool on n goroutines. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("match: WithWorkers(%d)", n))
	}
	return func(c *config) { c.workers = n }
}

// WithCutoff keeps entries scoring at least r times the top score.
// Panics unless 0 < r <= 1.
func WithCutoff(r float64) Option {
	if !(r > 0 && r <= 1) {
		panic(fmt.Sprintf("match: WithCutoff(%v)", r))
	}
	return func(c *config) { c.cutoff = r }
}

// WithOnScore registers a hook run for every scored candidate, before
// sorting and truncation. With several workers it runs concurrently and
// in no particular order. Panics on nil.
func WithOnScore(fn func(m kanji.Match)) Option {
	if fn == nil {
		panic("match: WithOnScore(nil)")
	}
	return func(c *config) { c.onScore = fn }
}
