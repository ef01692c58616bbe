// SPDX-License-Identifier: MIT
// Package: kanjirec/stroke
//
// path.go — SVG path data → Input.
//
// Only the first moveto and the final current point matter: the recogniser
// treats every stroke as a straight vector, so curve control points are
// read (to keep the cursor in sync) and then discarded.
//
// Supported commands: M m L l H h V v C c S s Q q T t A a Z z, with
// implicit repetition ("c1,2,3,4,5,6 7,8,9,10,11,12") and a sign acting as
// a separator ("0.55-0.3").

package stroke

import (
	"fmt"
	"strconv"
)

// ParsePath reduces SVG path data to its start point and end point.
// Returns ErrBadPath naming the offending substring on malformed data.
func ParsePath(d string) (Input, error) {
	r := pathReader{s: d}
	var (
		cur, subStart, first Point
		started              bool
		cmd                  byte
	)

	for {
		r.skipSeparators()
		if r.done() {
			break
		}

		c := r.s[r.pos]
		switch {
		case isPathCommand(c):
			cmd = c
			r.pos++
		case cmd == 0 || !r.atNumber():
			return Input{}, fmt.Errorf("%w: unexpected %q at %d", ErrBadPath, r.rest(), r.pos)
		}
		if !started && cmd != 'M' && cmd != 'm' {
			return Input{}, fmt.Errorf("%w: path must start with a moveto, got %q", ErrBadPath, string(cmd))
		}

		relative := cmd >= 'a'
		origin := Point{}
		if relative {
			origin = cur
		}

		switch cmd {
		case 'M', 'm':
			p, err := r.readPoint()
			if err != nil {
				return Input{}, err
			}
			if started {
				p = add(origin, p)
			}
			cur, subStart = p, p
			if !started {
				first, started = p, true
			}
			// Further coordinate pairs after a moveto are implicit linetos.
			if cmd == 'M' {
				cmd = 'L'
			} else {
				cmd = 'l'
			}
		case 'L', 'l', 'T', 't':
			p, err := r.readPoint()
			if err != nil {
				return Input{}, err
			}
			cur = add(origin, p)
		case 'H', 'h':
			x, err := r.readNumber()
			if err != nil {
				return Input{}, err
			}
			cur.X = origin.X + x
		case 'V', 'v':
			y, err := r.readNumber()
			if err != nil {
				return Input{}, err
			}
			cur.Y = origin.Y + y
		case 'C', 'c':
			p, err := r.skipPoints(2)
			if err != nil {
				return Input{}, err
			}
			cur = add(origin, p)
		case 'S', 's', 'Q', 'q':
			p, err := r.skipPoints(1)
			if err != nil {
				return Input{}, err
			}
			cur = add(origin, p)
		case 'A', 'a':
			// rx ry rotation large-arc sweep x y
			for i := 0; i < 5; i++ {
				if _, err := r.readNumber(); err != nil {
					return Input{}, err
				}
			}
			p, err := r.readPoint()
			if err != nil {
				return Input{}, err
			}
			cur = add(origin, p)
		case 'Z', 'z':
			cur = subStart
			cmd = 0 // closepath takes no arguments, so nothing may repeat it
		}
	}

	if !started {
		return Input{}, fmt.Errorf("%w: no moveto in %q", ErrBadPath, d)
	}

	return Input{Start: first, End: cur}, nil
}

// pathReader is a cursor over SVG path data.
type pathReader struct {
	s   string
	pos int
}

func (r *pathReader) done() bool { return r.pos >= len(r.s) }

func (r *pathReader) rest() string {
	const maxContext = 16
	end := r.pos + maxContext
	if end > len(r.s) {
		end = len(r.s)
	}

	return r.s[r.pos:end]
}

func (r *pathReader) skipSeparators() {
	for !r.done() {
		switch r.s[r.pos] {
		case ' ', ',', '\t', '\n', '\r':
			r.pos++
		default:
			return
		}
	}
}

// atNumber reports whether the next token starts a number.
func (r *pathReader) atNumber() bool {
	r.skipSeparators()
	if r.done() {
		return false
	}
	c := r.s[r.pos]

	return c == '-' || c == '+' || c == '.' || isDigit(c)
}

// readNumber reads one number. A second '.' or a sign ends the token, so
// "1.5.3" is two numbers and "2-4" is 2 then -4.
func (r *pathReader) readNumber() (float64, error) {
	if !r.atNumber() {
		return 0, fmt.Errorf("%w: expected number at %q", ErrBadPath, r.rest())
	}
	start := r.pos
	if c := r.s[r.pos]; c == '-' || c == '+' {
		r.pos++
	}
	r.skipDigits()
	if !r.done() && r.s[r.pos] == '.' {
		r.pos++
		r.skipDigits()
	}
	if !r.done() && (r.s[r.pos] == 'e' || r.s[r.pos] == 'E') {
		r.pos++
		if !r.done() && (r.s[r.pos] == '-' || r.s[r.pos] == '+') {
			r.pos++
		}
		r.skipDigits()
	}

	token := r.s[start:r.pos]
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid number %q", ErrBadPath, token)
	}

	return v, nil
}

func (r *pathReader) skipDigits() {
	for !r.done() && isDigit(r.s[r.pos]) {
		r.pos++
	}
}

func (r *pathReader) readPoint() (Point, error) {
	x, err := r.readNumber()
	if err != nil {
		return Point{}, err
	}
	y, err := r.readNumber()
	if err != nil {
		return Point{}, err
	}

	return Point{X: x, Y: y}, nil
}

// skipPoints discards n control points and returns the point after them.
func (r *pathReader) skipPoints(n int) (Point, error) {
	for i := 0; i < n; i++ {
		if _, err := r.readPoint(); err != nil {
			return Point{}, err
		}
	}

	return r.readPoint()
}

func add(a, b Point) Point { return Point{X: a.X + b.X, Y: a.Y + b.Y} }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isPathCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c',
		'S', 's', 'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}

	return false
}
