// Package match indexes a corpus of finished character records by stroke
// count and ranks them against a drawn record.
//
// 🚀 Typical flow
//
//	list := match.NewList()
//	for _, k := range corpus {
//	  _ = list.Add(k)              // finished records only
//	}
//	_ = list.Finish()              // lock the index
//	top, err := list.TopMatches(drawn, match.Fuzzy, match.WithWorkers(4))
//
// ✨ Algorithms
//
//	STRICT      strict comparer, same stroke count
//	FUZZY       fuzzy comparer, same stroke count
//	FUZZY_1OUT  fuzzy comparer, counts n−1 and n+1 (not n)
//	FUZZY_2OUT  fuzzy comparer, counts n−2 and n+2
//	SPANS       spans comparer, same stroke count
//	SPANS_1OUT  spans comparer, counts n−1 and n+1
//	SPANS_2OUT  spans comparer, counts n−2 and n+2
//
// Ranking:
//  1. a drawn record with no strokes ranks nothing;
//  2. every record in the pool is scored with drawn.MatchScore;
//  3. results sort by score descending, then label ascending;
//  4. the top entry is kept, and so is every later entry scoring at least
//     the cutoff (default 75%) of it.
//
// Concurrency:
//
//	A finished List is read-only and safe for concurrent TopMatches. With
//	WithWorkers(n) one query scores its pool on n goroutines and joins them
//	before sorting; the order of the result does not depend on n.
//
// Persistence:
//
//	Save writes a JSON array of kanji.Entry values; Load reads one back
//	into a finished List.
//
// Errors:
//   - ErrFinished         — Add or Finish after Finish.
//   - ErrNotFinished      — a query before Finish.
//   - ErrNotFound         — Find with an unknown label.
//   - ErrUnknownAlgorithm — ByKey with an unknown key.
package match
