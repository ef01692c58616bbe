// SPDX-License-Identifier: MIT
// Package: kanjirec/glyphs
//
// glyphs.go — lookups and variant builders over the registry.

package glyphs

import (
	"fmt"

	"github.com/katalvlaran/kanjirec/kanji"
	"github.com/katalvlaran/kanjirec/match"
	"github.com/katalvlaran/kanjirec/stroke"
)

// Runes lists every built-in character in registry order.
func Runes() []rune {
	out := make([]rune, len(registry))
	for i, s := range registry {
		out[i] = s.r
	}

	return out
}

// lookup finds the registry entry for r.
func lookup(r rune) (spec, error) {
	for _, s := range registry {
		if s.r == r {
			return s, nil
		}
	}

	return spec{}, fmt.Errorf("%w: %q (U+%04X)", ErrUnknownGlyph, r, r)
}

// Strokes returns r's raw strokes after applying opts.
func Strokes(r rune, opts ...Option) ([]stroke.Input, error) {
	s, err := lookup(r)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	return draw(s, &cfg)
}

// draw applies jitter, reversal, reordering and truncation, in that order.
func draw(s spec, cfg *config) ([]stroke.Input, error) {
	n := len(s.strokes)
	raw := make([]stroke.Input, n)
	for i, g := range s.strokes {
		raw[i] = stroke.InputFromFloats(g[0], g[1], g[2], g[3])
	}

	if cfg.jitter > 0 {
		rng := cfg.random()
		for i := range raw {
			raw[i].Start.X += rng.NormFloat64() * cfg.jitter
			raw[i].Start.Y += rng.NormFloat64() * cfg.jitter
			raw[i].End.X += rng.NormFloat64() * cfg.jitter
			raw[i].End.Y += rng.NormFloat64() * cfg.jitter
		}
	}

	for _, i := range cfg.reversed {
		if i >= n {
			return nil, fmt.Errorf("%w: reversed stroke %d of %q (%d strokes)", ErrOptionMismatch, i, s.r, n)
		}
		raw[i].Start, raw[i].End = raw[i].End, raw[i].Start
	}

	if cfg.order != nil {
		if len(cfg.order) != n {
			return nil, fmt.Errorf("%w: order %v for %q (%d strokes)", ErrOptionMismatch, cfg.order, s.r, n)
		}
		ordered := make([]stroke.Input, n)
		for k, p := range cfg.order {
			ordered[k] = raw[p]
		}
		raw = ordered
	}

	if cfg.dropLast > 0 {
		if cfg.dropLast >= n {
			return nil, fmt.Errorf("%w: dropping %d of %d strokes of %q", ErrOptionMismatch, cfg.dropLast, n, s.r)
		}
		raw = raw[:n-cfg.dropLast]
	}

	return raw, nil
}

// Info builds and finishes the record for r, drawn with opts.
func Info(r rune, opts ...Option) (*kanji.Info, error) {
	s, err := lookup(r)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	return build(s, &cfg)
}

func build(s spec, cfg *config) (*kanji.Info, error) {
	raw, err := draw(s, cfg)
	if err != nil {
		return nil, err
	}
	k, err := kanji.New(string(s.r))
	if err != nil {
		return nil, err
	}
	for _, in := range raw {
		if err := k.AddStroke(in); err != nil {
			return nil, err
		}
	}
	if err := k.Finish(); err != nil {
		return nil, err
	}

	return k, nil
}

// All builds every built-in character with the same options. A seeded
// RNG is shared across glyphs, so one seed fixes the whole corpus.
func All(opts ...Option) ([]*kanji.Info, error) {
	cfg := newConfig(opts...)
	out := make([]*kanji.Info, len(registry))
	for i, s := range registry {
		k, err := build(s, &cfg)
		if err != nil {
			return nil, err
		}
		out[i] = k
	}

	return out, nil
}

// Corpus returns a finished match.List of every built-in character drawn
// with opts (usually none).
func Corpus(opts ...Option) (*match.List, error) {
	all, err := All(opts...)
	if err != nil {
		return nil, err
	}
	list := match.NewList()
	for _, k := range all {
		if err := list.Add(k); err != nil {
			return nil, err
		}
	}
	if err := list.Finish(); err != nil {
		return nil, err
	}

	return list, nil
}
