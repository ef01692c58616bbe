// SPDX-License-Identifier: MIT
// Package: kanjirec/glyphs
//
// options.go — functional options for drawn variants.
//
// Option constructors validate what they can see and panic on meaningless
// input; anything that depends on the glyph (stroke indices, permutation
// length) is checked when the variant is built and returned as an error.

package glyphs

import (
	"fmt"
	"math/rand"
)

// defaultSeed seeds jitter when neither WithSeed nor WithRand is given.
const defaultSeed = 1

// Option customises how a glyph is drawn.
type Option func(*config)

type config struct {
	rng      *rand.Rand // nil until seeded; jitter falls back to defaultSeed
	jitter   float64    // noise sigma in Grid units, >= 0
	reversed []int      // canonical stroke indices drawn end→start
	order    []int      // drawn position → canonical stroke index
	dropLast int        // strokes omitted from the end, >= 0
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// random returns the configured RNG, creating the default one on demand.
func (c *config) random() *rand.Rand {
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return c.rng
}

// WithSeed seeds a private RNG for jitter.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand shares r for jitter, e.g. across the glyphs of one corpus.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("glyphs: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithJitter adds Gaussian noise with standard deviation sigma (in Grid
// units) to every coordinate. Panics if sigma < 0.
func WithJitter(sigma float64) Option {
	if sigma < 0 {
		panic(fmt.Sprintf("glyphs: WithJitter(%v)", sigma))
	}
	return func(c *config) { c.jitter = sigma }
}

// WithReversed draws the given canonical strokes end→start.
// Panics on a negative index.
func WithReversed(strokes ...int) Option {
	for _, i := range strokes {
		if i < 0 {
			panic(fmt.Sprintf("glyphs: WithReversed(%d)", i))
		}
	}
	idx := append([]int(nil), strokes...)
	return func(c *config) { c.reversed = append(c.reversed, idx...) }
}

// WithOrder draws canonical stroke perm[k] as the k-th stroke. Panics
// unless perm is a permutation of 0..len(perm)-1.
func WithOrder(perm ...int) Option {
	seen := make([]bool, len(perm))
	for _, p := range perm {
		if p < 0 || p >= len(perm) || seen[p] {
			panic(fmt.Sprintf("glyphs: WithOrder(%v) is not a permutation", perm))
		}
		seen[p] = true
	}
	order := append([]int(nil), perm...)
	return func(c *config) { c.order = order }
}

// WithDropLast omits the last n drawn strokes. Panics if n < 0.
func WithDropLast(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("glyphs: WithDropLast(%d)", n))
	}
	return func(c *config) { c.dropLast = n }
}
