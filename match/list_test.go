package match_test

import (
	"testing"

	"github.com/katalvlaran/kanjirec/kanji"
	"github.com/katalvlaran/kanjirec/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// record loads a finished record from a summary.
func record(t *testing.T, label, summary string) *kanji.Info {
	t.Helper()
	k, err := kanji.FromSummary(label, summary)
	require.NoError(t, err)

	return k
}

// small returns an open list holding 一, 二, 十 and 三.
func small(t *testing.T) *match.List {
	t.Helper()
	l := match.NewList()
	require.NoError(t, l.Add(record(t, "三", "00,00-ff,00:00,7f-ff,7f:00,ff-ff,ff")))
	require.NoError(t, l.Add(record(t, "一", "00,7f-ff,7f")))
	require.NoError(t, l.Add(record(t, "二", "20,40-e0,40:00,c0-ff,c0")))
	require.NoError(t, l.Add(record(t, "十", "00,7f-ff,7f:7f,00-7f,ff")))

	return l
}

func TestList_Lifecycle(t *testing.T) {
	l := small(t)
	assert.False(t, l.IsFinished())
	assert.Equal(t, 4, l.Len())

	_, err := l.Find("一")
	assert.ErrorIs(t, err, match.ErrNotFinished)
	_, err = l.Kanji(1)
	assert.ErrorIs(t, err, match.ErrNotFinished)
	_, err = l.StrokeCounts()
	assert.ErrorIs(t, err, match.ErrNotFinished)
	_, err = l.TopMatches(record(t, "一", "00,7f-ff,7f"), match.Spans)
	assert.ErrorIs(t, err, match.ErrNotFinished)
	_, err = l.Save()
	assert.ErrorIs(t, err, match.ErrNotFinished)

	require.NoError(t, l.Finish())
	assert.True(t, l.IsFinished())
	assert.ErrorIs(t, l.Finish(), match.ErrFinished)
	assert.ErrorIs(t, l.Add(record(t, "口", "00,00-00,ff")), match.ErrFinished)
}

func TestList_AddRejects(t *testing.T) {
	l := match.NewList()
	assert.ErrorIs(t, l.Add(nil), kanji.ErrNilInfo)

	open, err := kanji.New("口")
	require.NoError(t, err)
	assert.ErrorIs(t, l.Add(open), kanji.ErrNotFinished)
	assert.Zero(t, l.Len())
}

func TestList_Queries(t *testing.T) {
	l := small(t)
	require.NoError(t, l.Finish())

	counts, err := l.StrokeCounts()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, counts)

	two, err := l.Kanji(2)
	require.NoError(t, err)
	require.Len(t, two, 2)
	assert.Equal(t, "二", two[0].Label())
	assert.Equal(t, "十", two[1].Label())

	none, err := l.Kanji(9)
	require.NoError(t, err)
	assert.Empty(t, none)

	k, err := l.Find("十")
	require.NoError(t, err)
	assert.Equal(t, "十", k.Label())

	_, err = l.Find("口")
	assert.ErrorIs(t, err, match.ErrNotFound)

	// The returned slice is a copy.
	two[0] = nil
	again, _ := l.Kanji(2)
	assert.NotNil(t, again[0])
}

// TestFind_NFC matches a compatibility ideograph to its unified form.
func TestFind_NFC(t *testing.T) {
	l := match.NewList()
	require.NoError(t, l.Add(record(t, "\uF900", "00,7f-ff,7f")))
	require.NoError(t, l.Finish())

	k, err := l.Find("\uF900")
	require.NoError(t, err)
	assert.Equal(t, "8C48", k.CodePoint())
}

func TestAlgorithms(t *testing.T) {
	keys := []string{}
	outs := []int{}
	for _, a := range match.Algorithms() {
		keys = append(keys, a.Key)
		outs = append(outs, a.Out)
		assert.NotNil(t, a.New)

		got, err := match.ByKey(a.Key)
		require.NoError(t, err)
		assert.Equal(t, a.Key, got.Key)
	}
	assert.Equal(t, []string{"STRICT", "FUZZY", "FUZZY_1OUT", "FUZZY_2OUT", "SPANS", "SPANS_1OUT", "SPANS_2OUT"}, keys)
	assert.Equal(t, []int{0, 0, 1, 2, 0, 1, 2}, outs)

	_, err := match.ByKey("fuzzy")
	assert.ErrorIs(t, err, match.ErrUnknownAlgorithm)
}

func TestSaveLoad(t *testing.T) {
	l := small(t)
	require.NoError(t, l.Finish())

	data, err := l.Save()
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"unicode":"4E00","strokes":"00,7f-ff,7f"},
		{"unicode":"4E8C","strokes":"20,40-e0,40:00,c0-ff,c0"},
		{"unicode":"5341","strokes":"00,7f-ff,7f:7f,00-7f,ff"},
		{"unicode":"4E09","strokes":"00,00-ff,00:00,7f-ff,7f:00,ff-ff,ff"}
	]`, string(data))

	back, err := match.Load(data)
	require.NoError(t, err)
	assert.True(t, back.IsFinished())
	assert.Equal(t, l.Len(), back.Len())

	again, err := back.Save()
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(again))
}

func TestLoad_Errors(t *testing.T) {
	_, err := match.Load([]byte("{"))
	assert.Error(t, err)

	_, err = match.Load([]byte(`[{"unicode":"zz","strokes":""}]`))
	assert.ErrorIs(t, err, kanji.ErrBadCodePoint)

	_, err = match.Load([]byte(`[{"unicode":"4E00","strokes":"00,7f"}]`))
	assert.ErrorIs(t, err, kanji.ErrBadSummary)
}
