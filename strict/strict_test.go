package strict_test

import (
	"testing"

	"github.com/katalvlaran/kanjirec/kanji"
	"github.com/katalvlaran/kanjirec/strict"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const crossSummary = "00,00-ff,ff:ff,00-00,ff"

// withDirections loads a record with hand-written features.
func withDirections(t *testing.T, directions string) *kanji.Info {
	t.Helper()
	k, err := kanji.FromDirectionsSummary("x", directions, crossSummary)
	require.NoError(t, err)

	return k
}

// initialised returns a Comparer with the "x" cross as the drawn side.
func initialised(t *testing.T) kanji.Comparer {
	t.Helper()
	c := strict.New()
	require.NoError(t, c.Init(withDirections(t, "▛↘▟:↑:▜↙▙")))

	return c
}

func TestMatchScore_Identical(t *testing.T) {
	c := initialised(t)
	score, err := c.MatchScore(withDirections(t, "▛↘▟:↑:▜↙▙"))
	require.NoError(t, err)
	assert.InDelta(t, 100.0, score, 1e-9)
}

// TestMatchScore_Weights checks exact and close awards feature by feature.
func TestMatchScore_Weights(t *testing.T) {
	c := initialised(t)
	maxScore := strict.MaxScore(2)
	assert.InDelta(t, 5.2, maxScore, 1e-9)

	cases := []struct {
		name       string
		directions string
		raw        float64
	}{
		// direction close, move close, one start close.
		{"mostly close", "▛→▟:↗:▀↙▙", 0.7 + 0.6 + 0.6 + 1.0 + 0.56 + 0.42 + 0.6},
		// only the second direction (close) and the last end agree.
		{"mostly far", "▙↑▛:↓:▟←▙", 0.7 + 0.6},
		// X is close to every direction.
		{"nondirectional", "▛⚪▟:⚪:▜⚪▙", 0.7 + 0.6 + 0.6 + 0.7 + 0.56 + 0.6 + 0.6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score, err := c.MatchScore(withDirections(t, tc.directions))
			require.NoError(t, err)
			assert.InDelta(t, 100*tc.raw/maxScore, score, 1e-9)
		})
	}
}

// TestMatchScore_CountMismatch refuses candidates of another length.
func TestMatchScore_CountMismatch(t *testing.T) {
	c := initialised(t)
	one, err := kanji.FromSummary("一", "00,7f-ff,7f")
	require.NoError(t, err)

	_, err = c.MatchScore(one)
	assert.ErrorIs(t, err, strict.ErrStrokeCountMismatch)
}

// TestInit_NotFinished rejects an open drawn record.
func TestInit_NotFinished(t *testing.T) {
	open, err := kanji.New("x")
	require.NoError(t, err)
	assert.ErrorIs(t, strict.New().Init(open), kanji.ErrNotFinished)

	// An open candidate is reported rather than scored as empty.
	_, err = initialised(t).MatchScore(open)
	assert.ErrorIs(t, err, kanji.ErrNotFinished)
}

// TestMatchScore_SingleStroke has no move direction to weigh.
func TestMatchScore_SingleStroke(t *testing.T) {
	drawn, err := kanji.FromSummary("一", "00,7f-ff,7f")
	require.NoError(t, err)
	other, err := kanji.FromSummary("丨", "7f,00-7f,ff")
	require.NoError(t, err)

	c := strict.New()
	require.NoError(t, c.Init(drawn))
	score, err := c.MatchScore(other)
	require.NoError(t, err)
	// E vs S is not close; W vs N and E vs S are diagonal neighbours.
	assert.InDelta(t, 100*(0.42+0.42)/2.2, score, 1e-9)

	score, err = c.MatchScore(drawn)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, score, 1e-9)
}
