// SPDX-License-Identifier: MIT
// Package: kanjirec/kanji
//
// match.go — a scored candidate and its ranking order.

package kanji

import (
	"fmt"
	"sort"
)

// Match pairs a candidate record with its score against a drawn record.
type Match struct {
	Info  *Info
	Score float64
}

// Less reports whether m ranks before o: higher score first, then the
// smaller label.
func (m Match) Less(o Match) bool {
	if m.Score != o.Score {
		return m.Score > o.Score
	}

	return m.Info.Label() < o.Info.Label()
}

// String implements fmt.Stringer.
func (m Match) String() string {
	return fmt.Sprintf("%s:%.2f", m.Info.Label(), m.Score)
}

// SortMatches orders ms best first.
func SortMatches(ms []Match) {
	sort.SliceStable(ms, func(i, j int) bool { return ms[i].Less(ms[j]) })
}
