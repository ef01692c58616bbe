package kanji_test

import (
	"math"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/kanjirec/kanji"
	"github.com/katalvlaran/kanjirec/stroke"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildInfo creates and finishes a record from raw float strokes.
func buildInfo(t *testing.T, label string, strokes ...[4]float64) *kanji.Info {
	t.Helper()
	k, err := kanji.New(label)
	require.NoError(t, err)
	for _, s := range strokes {
		require.NoError(t, k.AddStroke(stroke.InputFromFloats(s[0], s[1], s[2], s[3])))
	}
	require.NoError(t, k.Finish())

	return k
}

// cross is the two-stroke "x" used across tests.
func cross(t *testing.T) *kanji.Info {
	return buildInfo(t, "x", [4]float64{0, 0, 100, 100}, [4]float64{100, 0, 0, 100})
}

// TestInfo_Basic checks normalisation and the summary of a simple record.
func TestInfo_Basic(t *testing.T) {
	one := cross(t)

	assert.Equal(t, "x", one.Label())
	n, err := one.StrokeCount()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	s0, err := one.Stroke(0)
	require.NoError(t, err)
	assert.Equal(t, "[0,0:255,255]", s0.String())
	s1, err := one.Stroke(1)
	require.NoError(t, err)
	assert.Equal(t, "[255,0:0,255]", s1.String())

	_, err = one.Stroke(2)
	assert.ErrorIs(t, err, kanji.ErrStrokeIndex)

	summary, err := one.Summary()
	require.NoError(t, err)
	assert.Equal(t, "00,00-ff,ff:ff,00-00,ff", summary)

	dirs, err := one.DirectionsSummary()
	require.NoError(t, err)
	assert.Equal(t, "▛↘▟:↑:▜↙▙", dirs)
	assert.Equal(t, "x(2)", one.String())
}

// TestInfo_FeatureLengths verifies the parallel-array invariant.
func TestInfo_FeatureLengths(t *testing.T) {
	for n := 0; n <= 6; n++ {
		raw := make([][4]float64, n)
		for i := range raw {
			raw[i] = [4]float64{float64(i), 0, float64(i * 3), float64(10 - i)}
		}
		k := buildInfo(t, "字", raw...)

		count, err := k.StrokeCount()
		require.NoError(t, err)
		dirs, _ := k.StrokeDirections()
		starts, _ := k.StrokeStarts()
		ends, _ := k.StrokeEnds()
		moves, _ := k.MoveDirections()
		strokes, _ := k.Strokes()

		assert.Equal(t, n, count)
		assert.Len(t, dirs, n)
		assert.Len(t, starts, n)
		assert.Len(t, ends, n)
		assert.Len(t, strokes, n)
		assert.Len(t, moves, max(n-1, 0))
	}
}

// TestInfo_Lifecycle covers the open → finished state errors.
func TestInfo_Lifecycle(t *testing.T) {
	k, err := kanji.New("木")
	require.NoError(t, err)
	assert.False(t, k.IsFinished())
	assert.Equal(t, "木(open)", k.String())

	_, err = k.StrokeCount()
	assert.ErrorIs(t, err, kanji.ErrNotFinished)
	_, err = k.StrokeDirections()
	assert.ErrorIs(t, err, kanji.ErrNotFinished)
	_, err = k.Summary()
	assert.ErrorIs(t, err, kanji.ErrNotFinished)
	_, err = k.MatchScore(cross(t), countingAlgorithm(new(int32)))
	assert.ErrorIs(t, err, kanji.ErrNotFinished)

	require.NoError(t, k.AddStroke(stroke.InputFromFloats(0, 0, 1, 0)))
	require.NoError(t, k.Finish())
	assert.True(t, k.IsFinished())

	assert.ErrorIs(t, k.AddStroke(stroke.InputFromFloats(0, 0, 1, 1)), kanji.ErrFinished)
	assert.ErrorIs(t, k.Finish(), kanji.ErrFinished)
}

// TestInfo_ConcurrentLifecycle appends from many goroutines, then races
// Finish against readers of the same record.
func TestInfo_ConcurrentLifecycle(t *testing.T) {
	k, err := kanji.New("森")
	require.NoError(t, err)

	const writers, perWriter = 8, 4
	var wg sync.WaitGroup
	wg.Add(writers)
	for w := 0; w < writers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				v := float64(w*perWriter + i)
				assert.NoError(t, k.AddStroke(stroke.InputFromFloats(v, 0, v+1, 10)))
			}
		}(w)
	}
	wg.Wait()

	const readers = 16
	start := make(chan struct{})
	wg.Add(readers + 1)
	go func() {
		defer wg.Done()
		<-start
		assert.NoError(t, k.Finish())
	}()
	for r := 0; r < readers; r++ {
		go func() {
			defer wg.Done()
			<-start
			for i := 0; i < 50; i++ {
				n, err := k.StrokeCount()
				if err != nil {
					assert.ErrorIs(t, err, kanji.ErrNotFinished)
					continue
				}
				assert.Equal(t, writers*perWriter, n)
				dirs, err := k.StrokeDirections()
				assert.NoError(t, err)
				assert.Len(t, dirs, writers*perWriter)
			}
		}()
	}
	close(start)
	wg.Wait()

	n, err := k.StrokeCount()
	require.NoError(t, err)
	assert.Equal(t, writers*perWriter, n)
	assert.ErrorIs(t, k.AddStroke(stroke.InputFromFloats(0, 0, 1, 1)), kanji.ErrFinished)
}

// TestInfo_FinishError leaves the record open when normalisation fails.
func TestInfo_FinishError(t *testing.T) {
	bad, err := kanji.New("林")
	require.NoError(t, err)
	require.NoError(t, bad.AddStroke(stroke.InputFromFloats(0, 0, math.NaN(), 1)))
	assert.ErrorIs(t, bad.Finish(), stroke.ErrNaNInf)
	assert.False(t, bad.IsFinished())

	// Still open, so more strokes are accepted.
	assert.NoError(t, bad.AddStroke(stroke.InputFromFloats(0, 0, 1, 1)))
}

// TestInfo_Empty finishes a record with no strokes.
func TestInfo_Empty(t *testing.T) {
	k, err := kanji.New("〇")
	require.NoError(t, err)
	require.NoError(t, k.Finish())

	n, err := k.StrokeCount()
	require.NoError(t, err)
	assert.Zero(t, n)
	summary, err := k.Summary()
	require.NoError(t, err)
	assert.Empty(t, summary)
}

// TestNew_Label enforces single code points and NFC canonicalisation.
func TestNew_Label(t *testing.T) {
	for _, bad := range []string{"", "ab", "木林"} {
		_, err := kanji.New(bad)
		assert.ErrorIs(t, err, kanji.ErrBadLabel, "label %q", bad)
	}

	// Outside the BMP.
	k, err := kanji.New("\U00020B9F")
	require.NoError(t, err)
	assert.Equal(t, rune(0x20B9F), k.Rune())
	assert.Equal(t, "20B9F", k.CodePoint())

	// U+F900 is a compatibility ideograph; NFC maps it to U+8C48.
	k, err = kanji.New("\uF900")
	require.NoError(t, err)
	assert.Equal(t, "8C48", k.CodePoint())
}

// countingAlgorithm returns an algorithm whose comparer counts Init calls
// and scores every candidate by its stroke count.
func countingAlgorithm(inits *int32) kanji.Algorithm {
	return kanji.Algorithm{
		Key: "COUNTING",
		New: func() kanji.Comparer { return &countingComparer{inits: inits} },
	}
}

type countingComparer struct {
	inits *int32
}

func (c *countingComparer) Init(*kanji.Info) error {
	atomic.AddInt32(c.inits, 1)

	return nil
}

func (c *countingComparer) MatchScore(other *kanji.Info) (float64, error) {
	n, err := other.StrokeCount()

	return float64(n), err
}

// TestInfo_ComparerCache builds each comparer once even under concurrent queries.
func TestInfo_ComparerCache(t *testing.T) {
	drawn := cross(t)
	other := buildInfo(t, "y", [4]float64{0, 0, 1, 1})
	var inits int32
	algo := countingAlgorithm(&inits)

	const workers = 64
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			score, err := drawn.MatchScore(other, algo)
			assert.NoError(t, err)
			assert.Equal(t, 1.0, score)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), atomic.LoadInt32(&inits))

	// A different key gets its own comparer.
	other2 := countingAlgorithm(&inits)
	other2.Key = "COUNTING_2"
	_, err := drawn.MatchScore(other, other2)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&inits))

	_, err = drawn.MatchScore(nil, algo)
	assert.ErrorIs(t, err, kanji.ErrNilInfo)
}

// TestAlgorithm_NilConstructorPanics treats a misconfigured descriptor as a defect.
func TestAlgorithm_NilConstructorPanics(t *testing.T) {
	drawn := cross(t)
	assert.Panics(t, func() {
		_, _ = drawn.MatchScore(drawn, kanji.Algorithm{Key: "BROKEN"})
	})
	assert.Panics(t, func() {
		_, _ = kanji.Algorithm{Key: "NIL", New: func() kanji.Comparer { return nil }}.NewComparer(drawn)
	})
}

// TestSortMatches orders by score then label.
func TestSortMatches(t *testing.T) {
	a := buildInfo(t, "a", [4]float64{0, 0, 1, 1})
	b := buildInfo(t, "b", [4]float64{0, 0, 1, 1})
	c := buildInfo(t, "c", [4]float64{0, 0, 1, 1})

	ms := []kanji.Match{{Info: c, Score: 50}, {Info: b, Score: 90}, {Info: a, Score: 50}}
	kanji.SortMatches(ms)
	assert.Equal(t, "b", ms[0].Info.Label())
	assert.Equal(t, "a", ms[1].Info.Label())
	assert.Equal(t, "c", ms[2].Info.Label())
	assert.Equal(t, "b:90.00", ms[0].String())
}
