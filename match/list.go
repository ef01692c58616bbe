// SPDX-License-Identifier: MIT
// Package: kanjirec/match
//
// list.go — the stroke-count index.

package match

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/kanjirec/kanji"
	"golang.org/x/text/unicode/norm"
)

// List is a corpus of finished records bucketed by stroke count. Records
// are added while the List is open; Finish locks it for querying.
type List struct {
	mu       sync.RWMutex
	byCount  map[int][]*kanji.Info
	counts   []int // sorted by Finish
	size     int
	finished bool
}

// NewList returns an empty, open List.
func NewList() *List {
	return &List{byCount: make(map[int][]*kanji.Info)}
}

// Add appends a finished record to the bucket of its stroke count.
func (l *List) Add(k *kanji.Info) error {
	if k == nil {
		return kanji.ErrNilInfo
	}
	n, err := k.StrokeCount()
	if err != nil {
		return fmt.Errorf("match: add %q: %w", k.Label(), err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.finished {
		return fmt.Errorf("%w: cannot add %q", ErrFinished, k.Label())
	}
	if _, ok := l.byCount[n]; !ok {
		l.counts = append(l.counts, n)
	}
	l.byCount[n] = append(l.byCount[n], k)
	l.size++

	return nil
}

// Finish sorts the stroke counts and locks the List.
func (l *List) Finish() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.finished {
		return fmt.Errorf("%w: cannot finish twice", ErrFinished)
	}
	sort.Ints(l.counts)
	l.finished = true

	return nil
}

// IsFinished reports whether Finish has run.
func (l *List) IsFinished() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.finished
}

// Len returns the number of records.
func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.size
}

// ready returns ErrNotFinished while the List is open. Callers hold mu.
func (l *List) ready() error {
	if !l.finished {
		return ErrNotFinished
	}

	return nil
}

// Find returns the record labelled label, scanning buckets by ascending
// stroke count. The label is NFC-normalised first, as kanji.New does.
func (l *List) Find(label string) (*kanji.Info, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if err := l.ready(); err != nil {
		return nil, err
	}
	label = norm.NFC.String(label)
	for _, n := range l.counts {
		for _, k := range l.byCount[n] {
			if k.Label() == label {
				return k, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrNotFound, label)
}

// Kanji returns the records with exactly strokeCount strokes, in the
// order they were added. The slice is a copy.
func (l *List) Kanji(strokeCount int) ([]*kanji.Info, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if err := l.ready(); err != nil {
		return nil, err
	}

	return append([]*kanji.Info(nil), l.byCount[strokeCount]...), nil
}

// StrokeCounts returns every stroke count present, ascending.
func (l *List) StrokeCounts() ([]int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if err := l.ready(); err != nil {
		return nil, err
	}

	return append([]int(nil), l.counts...), nil
}

// pool gathers the records with n-out and n+out strokes (just n when out
// is 0).
func (l *List) pool(n, out int) ([]*kanji.Info, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if err := l.ready(); err != nil {
		return nil, err
	}

	counts := []int{n - out, n + out}
	if out == 0 {
		counts = counts[:1]
	}
	var pool []*kanji.Info
	for _, c := range counts {
		pool = append(pool, l.byCount[c]...)
	}

	return pool, nil
}
