// SPDX-License-Identifier: MIT
// Package: kanjirec/kanji
//
// info.go — the character record and its open → finished transition.

package kanji

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/katalvlaran/kanjirec/stroke"
	"golang.org/x/text/unicode/norm"
)

// features is the immutable, derived view of a finished record.
// All slices have one entry per stroke except moves (one fewer).
type features struct {
	strokes    []stroke.Stroke
	directions []stroke.Direction
	starts     []stroke.Location
	ends       []stroke.Location
	moves      []stroke.Direction
}

// Info is one character: its label, its normalised strokes and the
// per-stroke features derived from them.
//
// An Info starts open; AddStroke appends raw strokes and Finish turns it
// into a finished, read-only record. pending and feat are never both
// non-nil: pending != nil means open, feat != nil means finished.
type Info struct {
	label string

	mu      sync.Mutex // guards pending and feat
	pending []stroke.Input
	feat    *features

	cacheMu   sync.Mutex // guards comparers
	comparers map[string]Comparer
}

// New returns an open record for label. The label is NFC-normalised first
// (so a CJK compatibility ideograph becomes its unified form) and must
// then be exactly one code point.
func New(label string) (*Info, error) {
	label = norm.NFC.String(label)
	if utf8.RuneCountInString(label) != 1 || !utf8.ValidString(label) {
		return nil, fmt.Errorf("%w: %q", ErrBadLabel, label)
	}

	return &Info{label: label, pending: []stroke.Input{}}, nil
}

// newFinished builds a record directly in the finished state.
func newFinished(label string, f *features) (*Info, error) {
	k, err := New(label)
	if err != nil {
		return nil, err
	}
	k.pending, k.feat = nil, f

	return k, nil
}

// Label returns the character.
func (k *Info) Label() string { return k.label }

// Rune returns the character as a code point.
func (k *Info) Rune() rune {
	r, _ := utf8.DecodeRuneInString(k.label)

	return r
}

// AddStroke appends a raw stroke. Returns ErrFinished once Finish ran.
func (k *Info) AddStroke(in stroke.Input) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.pending == nil {
		return fmt.Errorf("%w: cannot add strokes to %q", ErrFinished, k.label)
	}
	k.pending = append(k.pending, in)

	return nil
}

// Finish normalises every accumulated stroke and derives the features.
// A record with no strokes finishes empty. Returns ErrFinished on a
// second call; on a normalisation error the record stays open.
func (k *Info) Finish() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.pending == nil {
		return fmt.Errorf("%w: cannot finish %q twice", ErrFinished, k.label)
	}

	var strokes []stroke.Stroke
	if len(k.pending) > 0 {
		var err error
		if strokes, err = stroke.Normalise(k.pending); err != nil {
			return fmt.Errorf("kanji: finish %q: %w", k.label, err)
		}
	}
	k.feat = deriveFeatures(strokes)
	k.pending = nil

	return nil
}

// deriveFeatures computes directions and locations for normalised strokes.
func deriveFeatures(strokes []stroke.Stroke) *features {
	n := len(strokes)
	f := &features{
		strokes:    strokes,
		directions: make([]stroke.Direction, n),
		starts:     make([]stroke.Location, n),
		ends:       make([]stroke.Location, n),
		moves:      make([]stroke.Direction, max(n-1, 0)),
	}
	for i, s := range strokes {
		f.directions[i] = s.Direction()
		f.starts[i] = s.StartLocation()
		f.ends[i] = s.EndLocation()
		if i > 0 {
			f.moves[i-1] = s.MoveDirection(strokes[i-1])
		}
	}

	return f
}

// finished returns the feature view or ErrNotFinished.
func (k *Info) finished() (*features, error) {
	k.mu.Lock()
	f := k.feat
	k.mu.Unlock()
	if f == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFinished, k.label)
	}

	return f, nil
}

// IsFinished reports whether Finish has run (or the record was loaded finished).
func (k *Info) IsFinished() bool {
	_, err := k.finished()

	return err == nil
}

// StrokeCount returns the number of strokes.
func (k *Info) StrokeCount() (int, error) {
	f, err := k.finished()
	if err != nil {
		return 0, err
	}

	return len(f.directions), nil
}

// Stroke returns stroke i.
func (k *Info) Stroke(i int) (stroke.Stroke, error) {
	f, err := k.finished()
	if err != nil {
		return stroke.Stroke{}, err
	}
	if i < 0 || i >= len(f.strokes) {
		return stroke.Stroke{}, fmt.Errorf("%w: %d of %d", ErrStrokeIndex, i, len(f.strokes))
	}

	return f.strokes[i], nil
}

// The slice accessors below return the record's own storage; callers must
// treat the result as read-only.

// Strokes returns all normalised strokes.
func (k *Info) Strokes() ([]stroke.Stroke, error) {
	f, err := k.finished()
	if err != nil {
		return nil, err
	}

	return f.strokes, nil
}

// StrokeDirections returns the direction of each stroke.
func (k *Info) StrokeDirections() ([]stroke.Direction, error) {
	f, err := k.finished()
	if err != nil {
		return nil, err
	}

	return f.directions, nil
}

// StrokeStarts returns the start cell of each stroke.
func (k *Info) StrokeStarts() ([]stroke.Location, error) {
	f, err := k.finished()
	if err != nil {
		return nil, err
	}

	return f.starts, nil
}

// StrokeEnds returns the end cell of each stroke.
func (k *Info) StrokeEnds() ([]stroke.Location, error) {
	f, err := k.finished()
	if err != nil {
		return nil, err
	}

	return f.ends, nil
}

// MoveDirections returns the pen travel between consecutive strokes.
func (k *Info) MoveDirections() ([]stroke.Direction, error) {
	f, err := k.finished()
	if err != nil {
		return nil, err
	}

	return f.moves, nil
}

// MatchScore scores other against k (the drawn side) with algo, in [0,100].
// The comparer for algo is built on first use and cached on k.
func (k *Info) MatchScore(other *Info, algo Algorithm) (float64, error) {
	if other == nil {
		return 0, ErrNilInfo
	}
	if _, err := k.finished(); err != nil {
		return 0, err
	}
	c, err := k.comparer(algo)
	if err != nil {
		return 0, err
	}

	return c.MatchScore(other)
}

// comparer returns the cached comparer for algo, building it if needed.
// Building happens under cacheMu so each algorithm is initialised once.
func (k *Info) comparer(algo Algorithm) (Comparer, error) {
	k.cacheMu.Lock()
	defer k.cacheMu.Unlock()
	if c, ok := k.comparers[algo.Key]; ok {
		return c, nil
	}
	c, err := algo.NewComparer(k)
	if err != nil {
		return nil, err
	}
	if k.comparers == nil {
		k.comparers = make(map[string]Comparer)
	}
	k.comparers[algo.Key] = c

	return c, nil
}

// String implements fmt.Stringer.
func (k *Info) String() string {
	n, err := k.StrokeCount()
	if err != nil {
		return k.label + "(open)"
	}

	return fmt.Sprintf("%s(%d)", k.label, n)
}
