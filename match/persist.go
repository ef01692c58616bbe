// SPDX-License-Identifier: MIT
// Package: kanjirec/match
//
// persist.go — JSON form of a List.

package match

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/kanjirec/kanji"
)

// Save encodes every record, by ascending stroke count then insertion
// order, as a JSON array of kanji.Entry:
//
//	[{"unicode":"4E00","strokes":"00,7f-ff,7f"}, ...]
func (l *List) Save() ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if err := l.ready(); err != nil {
		return nil, err
	}

	entries := make([]kanji.Entry, 0, l.size)
	for _, n := range l.counts {
		for _, k := range l.byCount[n] {
			e, err := k.Entry()
			if err != nil {
				return nil, fmt.Errorf("match: save %q: %w", k.Label(), err)
			}
			entries = append(entries, e)
		}
	}

	return json.Marshal(entries)
}

// Load decodes the output of Save into a finished List.
func Load(data []byte) (*List, error) {
	var entries []kanji.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("match: load: %w", err)
	}

	l := NewList()
	for i, e := range entries {
		k, err := kanji.FromEntry(e)
		if err != nil {
			return nil, fmt.Errorf("match: load entry %d: %w", i, err)
		}
		if err := l.Add(k); err != nil {
			return nil, err
		}
	}
	if err := l.Finish(); err != nil {
		return nil, err
	}

	return l, nil
}
