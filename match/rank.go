// SPDX-License-Identifier: MIT
// Package: kanjirec/match
//
// rank.go — scoring a pool and trimming the ranking.

package match

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/kanjirec/kanji"
)

// TopMatches ranks the records whose stroke count suits algo against
// drawn. The result is sorted best first, always keeps the best entry and
// drops entries under the cutoff share of its score. A drawn record with
// no strokes yields an empty result.
func (l *List) TopMatches(drawn *kanji.Info, algo kanji.Algorithm, opts ...Option) ([]kanji.Match, error) {
	cfg := newConfig(opts...)
	if drawn == nil {
		return nil, kanji.ErrNilInfo
	}
	if !l.IsFinished() {
		return nil, ErrNotFinished
	}
	n, err := drawn.StrokeCount()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return []kanji.Match{}, nil
	}

	pool, err := l.pool(n, algo.Out)
	if err != nil {
		return nil, err
	}
	matches, err := score(drawn, pool, algo, cfg)
	if err != nil {
		return nil, fmt.Errorf("match: %s for %q: %w", algo.Key, drawn.Label(), err)
	}
	kanji.SortMatches(matches)

	return trim(matches, cfg.cutoff), nil
}

// score runs drawn.MatchScore over the pool. Each result lands in its own
// slot, so workers never share a write; the first error wins.
func score(drawn *kanji.Info, pool []*kanji.Info, algo kanji.Algorithm, cfg config) ([]kanji.Match, error) {
	matches := make([]kanji.Match, len(pool))
	one := func(i int) error {
		s, err := drawn.MatchScore(pool[i], algo)
		if err != nil {
			return fmt.Errorf("score %q: %w", pool[i].Label(), err)
		}
		matches[i] = kanji.Match{Info: pool[i], Score: s}
		cfg.onScore(matches[i])

		return nil
	}

	workers := min(cfg.workers, len(pool))
	if workers <= 1 {
		for i := range pool {
			if err := one(i); err != nil {
				return nil, err
			}
		}

		return matches, nil
	}

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	next := make(chan int)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range next {
				if err := one(i); err != nil {
					errOnce.Do(func() { firstErr = err })
				}
			}
		}()
	}
	for i := range pool {
		next <- i
	}
	close(next)
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}

	return matches, nil
}

// trim keeps the first entry and every following entry scoring at least
// cutoff of it. ms must be sorted.
func trim(ms []kanji.Match, cutoff float64) []kanji.Match {
	if len(ms) == 0 {
		return ms
	}
	floor := ms[0].Score * cutoff
	keep := 1
	for keep < len(ms) && ms[keep].Score >= floor {
		keep++
	}

	return ms[:keep]
}
