package stroke_test

import (
	"testing"

	"github.com/katalvlaran/kanjirec/stroke"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustFloats builds a Stroke from 0..1 floats or fails the test.
func mustFloats(t *testing.T, sx, sy, ex, ey float64) stroke.Stroke {
	t.Helper()
	s, err := stroke.FromFloats(sx, sy, ex, ey)
	require.NoError(t, err)

	return s
}

// assertStroke compares all four coordinates at once.
func assertStroke(t *testing.T, s stroke.Stroke, sx, sy, ex, ey int) {
	t.Helper()
	assert.Equal(t, stroke.Stroke{StartX: sx, StartY: sy, EndX: ex, EndY: ey}, s)
}

// TestNewStroke_Range verifies the [0,255] invariant at construction.
func TestNewStroke_Range(t *testing.T) {
	s, err := stroke.NewStroke(1, 2, 3, 4)
	require.NoError(t, err)
	assertStroke(t, s, 1, 2, 3, 4)
	assert.Equal(t, "[1,2:3,4]", s.String())

	for _, bad := range [][4]int{{-1, 0, 0, 0}, {0, 256, 0, 0}, {0, 0, 300, 0}, {0, 0, 0, -5}} {
		_, err = stroke.NewStroke(bad[0], bad[1], bad[2], bad[3])
		assert.ErrorIs(t, err, stroke.ErrOutOfRange, "coords %v", bad)
	}

	_, err = stroke.FromFloats(0, 0, 1.1, 0)
	assert.ErrorIs(t, err, stroke.ErrOutOfRange)
}

// TestStroke_Direction covers exact and rough straights and diagonals.
func TestStroke_Direction(t *testing.T) {
	dot := mustFloats(t, 0.5, 0.5, 0.5, 0.5)
	assertStroke(t, dot, 127, 127, 127, 127)
	assert.Equal(t, stroke.X, dot.Direction())

	cases := []struct {
		name   string
		ex, ey float64
		want   stroke.Direction
	}{
		{"east", 0.8, 0.5, stroke.E},
		{"south", 0.5, 0.8, stroke.S},
		{"west", 0.2, 0.5, stroke.W},
		{"north", 0.5, 0.2, stroke.N},
		{"south-east", 0.8, 0.8, stroke.SE},
		{"south-west", 0.2, 0.8, stroke.SW},
		{"north-west", 0.2, 0.2, stroke.NW},
		{"north-east", 0.8, 0.2, stroke.NE},
		{"rough east down", 0.8, 0.52, stroke.E},
		{"rough east up", 0.8, 0.48, stroke.E},
		{"rough south-east", 0.8, 0.6, stroke.SE},
		{"rough north-east", 0.8, 0.4, stroke.NE},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := mustFloats(t, 0.5, 0.5, tc.ex, tc.ey)
			assert.Equal(t, tc.want, s.Direction())
		})
	}
}

// TestStroke_DirectionNoThreshold verifies short strokes still get a compass point.
func TestStroke_DirectionNoThreshold(t *testing.T) {
	s, err := stroke.NewStroke(100, 100, 110, 100)
	require.NoError(t, err)
	assert.Equal(t, stroke.X, s.Direction())
	assert.Equal(t, stroke.E, s.DirectionNoThreshold())
}

// TestStroke_Location checks all nine cells through stroke endpoints.
func TestStroke_Location(t *testing.T) {
	cases := []struct {
		coords     [4]float64
		start, end stroke.Location
	}{
		{[4]float64{0.1, 0.1, 0.4, 0.1}, stroke.LocNW, stroke.LocN},
		{[4]float64{0.7, 0.1, 0.9, 0.4}, stroke.LocNE, stroke.LocE},
		{[4]float64{0.8, 0.94, 0.4, 0.7}, stroke.LocSE, stroke.LocS},
		{[4]float64{0.2, 0.9, 0.3, 0.5}, stroke.LocSW, stroke.LocW},
		{[4]float64{0.4, 0.4, 0.6, 0.6}, stroke.LocMID, stroke.LocMID},
	}
	for _, tc := range cases {
		s := mustFloats(t, tc.coords[0], tc.coords[1], tc.coords[2], tc.coords[3])
		assert.Equal(t, tc.start, s.StartLocation(), "start of %v", s)
		assert.Equal(t, tc.end, s.EndLocation(), "end of %v", s)
	}
}

// TestStroke_MoveDirection uses two real strokes whose pen move is too short to count.
func TestStroke_MoveDirection(t *testing.T) {
	first, err := stroke.ParsePath("M23.78,21.29" +
		"c3.6,0.9,6.76,0.85,10.36,0.3" +
		"c10.48-1.6,38.27-5.5,40.43-5.84" +
		"c3.93-0.62,4.68,1.86,2.07,4.08" +
		"c-2.6,2.22-14.89,12.42-21.68,17.44")
	require.NoError(t, err)
	second, err := stroke.ParsePath("M51.94,38.24" +
		"C61.5,42.5,64.75,70.25,57.89,90" +
		"c-3.24,9.32-8.64,2.5-10.39,0.5")
	require.NoError(t, err)

	strokes, err := stroke.Normalise([]stroke.Input{first, second})
	require.NoError(t, err)
	require.Len(t, strokes, 2)
	assert.Equal(t, stroke.X, strokes[1].MoveDirection(strokes[0]))
}
