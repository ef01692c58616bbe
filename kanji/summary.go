// SPDX-License-Identifier: MIT
// Package: kanjirec/kanji
//
// summary.go — compact text forms of a record.
//
// Stroke summary grammar (one group per stroke, colon separated):
//
//	summary := group { ":" group }
//	group   := hh "," hh "-" hh "," hh      // startX,startY-endX,endY
//	hh      := two lowercase hex digits     // 00..ff
//
// Every group is 11 bytes, so n strokes take 12n-1 bytes.
//
// Directions summary (runes, not bytes):
//
//	directions := cell { ":" move ":" cell }
//	cell       := startLocation direction endLocation
//
// n strokes take 6n-3 runes.

package kanji

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/kanjirec/stroke"
)

const (
	groupLen     = 11 // "hh,hh-hh,hh"
	groupStride  = groupLen + 1
	cellRunes    = 3 // start, direction, end
	cellStride   = 6 // cell plus ":" move ":"
	strokeSep    = ':'
	hexDigits    = 2
	coordsPerRow = 4
)

// Entry is the persisted form of a record: code point and stroke summary.
type Entry struct {
	Unicode string `json:"unicode"`
	Strokes string `json:"strokes"`
}

// Summary renders the strokes as "xx,yy-xx,yy:..." in lowercase hex.
func (k *Info) Summary() (string, error) {
	f, err := k.finished()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len(f.strokes) * groupStride)
	for i, s := range f.strokes {
		if i > 0 {
			sb.WriteByte(strokeSep)
		}
		fmt.Fprintf(&sb, "%02x,%02x-%02x,%02x", s.StartX, s.StartY, s.EndX, s.EndY)
	}

	return sb.String(), nil
}

// DirectionsSummary renders the features as location/direction glyphs.
func (k *Info) DirectionsSummary() (string, error) {
	f, err := k.finished()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := range f.directions {
		if i > 0 {
			sb.WriteByte(strokeSep)
			sb.WriteString(f.moves[i-1].Display())
			sb.WriteByte(strokeSep)
		}
		sb.WriteString(f.starts[i].Display())
		sb.WriteString(f.directions[i].Display())
		sb.WriteString(f.ends[i].Display())
	}

	return sb.String(), nil
}

// CodePoint returns the label's code point in uppercase hex ("4E00").
func (k *Info) CodePoint() string {
	return fmt.Sprintf("%X", k.Rune())
}

// Entry returns the persisted form of k.
func (k *Info) Entry() (Entry, error) {
	s, err := k.Summary()
	if err != nil {
		return Entry{}, err
	}

	return Entry{Unicode: k.CodePoint(), Strokes: s}, nil
}

// XML renders k as a one-line <kanji/> element, newline terminated.
func (k *Info) XML() (string, error) {
	e, err := k.Entry()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("<kanji unicode='%s' strokes='%s'/>\n", e.Unicode, e.Strokes), nil
}

// ParseCodePoint converts hex ("4E00", "20B9F") into the character it names.
func ParseCodePoint(hex string) (string, error) {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || !utf8.ValidRune(rune(v)) {
		return "", fmt.Errorf("%w: %q", ErrBadCodePoint, hex)
	}

	return string(rune(v)), nil
}

// FromEntry rebuilds a finished record from its persisted form.
func FromEntry(e Entry) (*Info, error) {
	label, err := ParseCodePoint(e.Unicode)
	if err != nil {
		return nil, err
	}

	return FromSummary(label, e.Strokes)
}

// FromSummary rebuilds a finished record from a Summary string. The
// features are recomputed from the decoded strokes.
func FromSummary(label, summary string) (*Info, error) {
	strokes, err := parseSummary(summary)
	if err != nil {
		return nil, fmt.Errorf("%w (kanji %q)", err, label)
	}

	return newFinished(label, deriveFeatures(strokes))
}

// FromDirectionsSummary rebuilds a finished record from both text forms.
// The features come from directions as written, the strokes from summary.
func FromDirectionsSummary(label, directions, summary string) (*Info, error) {
	strokes, err := parseSummary(summary)
	if err != nil {
		return nil, fmt.Errorf("%w (kanji %q)", err, label)
	}
	f, err := parseDirections(directions, len(strokes))
	if err != nil {
		return nil, fmt.Errorf("%w (kanji %q)", err, label)
	}
	f.strokes = strokes

	return newFinished(label, f)
}

// parseSummary decodes the stroke summary grammar.
func parseSummary(summary string) ([]stroke.Stroke, error) {
	if summary == "" {
		return nil, nil
	}
	count := (len(summary) + 1) / groupStride
	if count*groupStride-1 != len(summary) {
		return nil, fmt.Errorf("%w: length %d of %q", ErrBadSummary, len(summary), summary)
	}

	strokes := make([]stroke.Stroke, count)
	for i := range strokes {
		offset := i * groupStride
		if i > 0 && summary[offset-1] != strokeSep {
			return nil, fmt.Errorf("%w: expected ':' at %q", ErrBadSummary, summary[offset-1:offset])
		}
		group := summary[offset : offset+groupLen]
		if group[2] != ',' || group[5] != '-' || group[8] != ',' {
			return nil, fmt.Errorf("%w: malformed group %q", ErrBadSummary, group)
		}

		var coords [coordsPerRow]int
		for c := range coords {
			pos := c * (hexDigits + 1)
			v, err := twoDigitHex(group[pos : pos+hexDigits])
			if err != nil {
				return nil, err
			}
			coords[c] = v
		}
		s, err := stroke.NewStroke(coords[0], coords[1], coords[2], coords[3])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadSummary, err)
		}
		strokes[i] = s
	}

	return strokes, nil
}

// twoDigitHex parses exactly two lowercase hex digits.
func twoDigitHex(s string) (int, error) {
	if len(s) != hexDigits || !isLowerHex(s[0]) || !isLowerHex(s[1]) {
		return 0, fmt.Errorf("%w: bad hex %q", ErrBadSummary, s)
	}
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: bad hex %q", ErrBadSummary, s)
	}

	return int(v), nil
}

func isLowerHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f')
}

// parseDirections decodes a directions summary for count strokes.
func parseDirections(directions string, count int) (*features, error) {
	runes := []rune(directions)
	if count < 1 || len(runes) != count*cellStride-cellRunes {
		return nil, fmt.Errorf("%w: %q does not describe %d strokes", ErrBadDirections, directions, count)
	}

	f := &features{
		directions: make([]stroke.Direction, count),
		starts:     make([]stroke.Location, count),
		ends:       make([]stroke.Location, count),
		moves:      make([]stroke.Direction, count-1),
	}
	pos := 0
	next := func() string {
		r := string(runes[pos])
		pos++

		return r
	}
	for i := 0; i < count; i++ {
		if i > 0 {
			if sep := next(); sep != string(strokeSep) {
				return nil, fmt.Errorf("%w: expected ':' got %q", ErrBadDirections, sep)
			}
			move, err := stroke.ParseDirection(next())
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrBadDirections, err)
			}
			f.moves[i-1] = move
			if sep := next(); sep != string(strokeSep) {
				return nil, fmt.Errorf("%w: expected ':' got %q", ErrBadDirections, sep)
			}
		}

		var err error
		if f.starts[i], err = stroke.ParseLocation(next()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadDirections, err)
		}
		if f.directions[i], err = stroke.ParseDirection(next()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadDirections, err)
		}
		if f.ends[i], err = stroke.ParseLocation(next()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadDirections, err)
		}
	}

	return f, nil
}
