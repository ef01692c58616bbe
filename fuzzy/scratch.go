// SPDX-License-Identifier: MIT
// Package: kanjirec/fuzzy
//
// scratch.go — per-call state and the greedy assignment.

package fuzzy

// pairState is the search state of one drawn pair.
type pairState struct {
	table      []float64 // candidate (a, b) scores, row-major by a
	maxA, maxB int       // best single-point scores, an upper bound
	best       float64   // best (a, b) found by the last search, or -1
	bestA      int       // candidate point standing in for the start
	bestB      int       // candidate point standing in for the end
	exact      bool      // best is the true maximum over free points
	done       bool      // matched
}

// scratch owns everything one MatchScore call mutates.
type scratch struct {
	drawn, cand *arena
	maxScore    int

	score  [][]int // score[drawn point][candidate point]
	sorted [][]int // candidate points per drawn point, top ranks first
	ranked int     // length of the sorted prefix of every sorted row

	pairs []pairState
	used  []bool // candidate points already consumed
}

func newScratch(drawn, cand *arena) *scratch {
	n, m := len(drawn.points), len(cand.points)
	s := &scratch{
		drawn:    drawn,
		cand:     cand,
		maxScore: max(n, m) * Facets,
		score:    make([][]int, n),
		sorted:   make([][]int, n),
		ranked:   min(BestScoresSortFirst, m),
		pairs:    make([]pairState, len(drawn.pairs)),
		used:     make([]bool, m),
	}
	for i := range drawn.points {
		s.scorePoint(i)
	}
	for i := range drawn.pairs {
		s.scorePair(i)
	}

	return s
}

// scorePoint scores drawn point i against every candidate point and ranks
// the best few first; the rest follow in index order.
func (s *scratch) scorePoint(i int) {
	m := len(s.cand.points)
	row := make([]int, m)
	for j := range s.cand.points {
		row[j] = s.maxScore - difference(&s.drawn.points[i].hist, &s.cand.points[j].hist)
	}
	s.score[i] = row

	// Insertion into a top-k list; equal scores keep the lower index first.
	top := make([]int, 0, s.ranked+1)
	for j, v := range row {
		pos := len(top)
		for pos > 0 && v > row[top[pos-1]] {
			pos--
		}
		if pos >= s.ranked {
			continue
		}
		top = append(top, 0)
		copy(top[pos+1:], top[pos:])
		top[pos] = j
		if len(top) > s.ranked {
			top = top[:s.ranked]
		}
	}

	order := make([]int, 0, m)
	order = append(order, top...)
	inTop := make([]bool, m)
	for _, j := range top {
		inTop[j] = true
	}
	for j := 0; j < m; j++ {
		if !inTop[j] {
			order = append(order, j)
		}
	}
	s.sorted[i] = order
}

// scorePair fills the (a, b) table of drawn pair p.
func (s *scratch) scorePair(p int) {
	m := len(s.cand.points)
	dp := s.drawn.pairs[p]
	rowA, rowB := s.score[dp.a], s.score[dp.b]
	ps := &s.pairs[p]
	ps.table = make([]float64, m*m)
	ps.maxA, ps.maxB = -1, -1
	ps.best = -1

	for b := 0; b < m; b++ {
		ps.maxB = max(ps.maxB, rowB[b])
	}
	for a := 0; a < m; a++ {
		ps.maxA = max(ps.maxA, rowA[a])
		wrongDirection := !s.cand.isStart(a)
		for b := 0; b < m; b++ {
			if a == b {
				continue
			}
			v := float64(rowA[a] + rowB[b])
			switch {
			case s.cand.points[a].pair != s.cand.points[b].pair:
				v *= ScoreMultiNotPair
			case wrongDirection:
				v *= ScoreMultiWrongDirection
			}
			ps.table[a*m+b] = v
		}
	}
}

// search finds pair p's best (a, b) over free candidate points, skipping
// anything that cannot beat mustBeOver.
func (s *scratch) search(p int, mustBeOver float64) {
	ps := &s.pairs[p]
	if ps.exact && !s.used[ps.bestA] && !s.used[ps.bestB] {
		return
	}
	ps.best, ps.exact = -1, false
	if float64(ps.maxA+ps.maxB) < mustBeOver {
		return
	}

	floor := mustBeOver
	m := len(s.cand.points)
	dp := s.drawn.pairs[p]
	rowA := s.score[dp.a]
	for rank, a := range s.sorted[dp.a] {
		if s.used[a] {
			continue
		}
		if float64(rowA[a]+ps.maxB) < mustBeOver {
			if rank < s.ranked {
				// The rest of the ranked prefix scores no higher.
				break
			}
			continue
		}
		row := ps.table[a*m : (a+1)*m]
		for b, v := range row {
			if b == a || s.used[b] {
				continue
			}
			if v > ps.best {
				ps.best, ps.bestA, ps.bestB = v, a, b
				mustBeOver = max(mustBeOver, v)
			}
		}
	}
	// Anything skipped was bounded below floor, so a best at or above
	// floor is the true maximum.
	ps.exact = ps.best >= 0 && ps.best >= floor
}

// run performs the greedy assignment and returns the percentage score.
func (s *scratch) run() float64 {
	pairsLeft, pointsLeft := len(s.pairs), len(s.cand.points)
	total := 0.0
	for pointsLeft >= 2 && pairsLeft > 0 {
		best, bestScore := -1, -1.0
		for p := range s.pairs {
			if s.pairs[p].done {
				continue
			}
			s.search(p, bestScore)
			if s.pairs[p].best > bestScore {
				best, bestScore = p, s.pairs[p].best
			}
		}
		if best < 0 {
			break
		}

		ps := &s.pairs[best]
		ps.done = true
		s.used[ps.bestA], s.used[ps.bestB] = true, true
		total += bestScore
		pairsLeft--
		pointsLeft -= 2
	}

	matched := len(s.pairs) - pairsLeft
	if matched == 0 {
		return 0
	}

	return 100 * total / float64(2*s.maxScore*matched)
}
