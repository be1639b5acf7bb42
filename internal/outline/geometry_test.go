package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArea(t *testing.T) {
	testCases := []struct {
		name     string
		contour  []IntPoint
		expected float64
	}{
		{name: "clockwise on screen", contour: square(0, 0, 10), expected: -100},
		{name: "counter-clockwise on screen", contour: []IntPoint{{0, 0}, {0, 10}, {10, 10}, {10, 0}}, expected: 100},
		{name: "triangle", contour: []IntPoint{{0, 0}, {0, 4}, {3, 0}}, expected: 6},
		{name: "degenerate", contour: []IntPoint{{0, 0}, {5, 5}}, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, Area(tc.contour), 1e-9)
			assert.Equal(t, tc.expected >= 0, Orientation(tc.contour))
		})
	}
}

func TestHandle_Area(t *testing.T) {
	a := NewArena()
	h := build(t, a, square(0, 0, 10))

	area, err := h.Area()
	require.NoError(t, err)
	assert.InDelta(t, -100, area, 1e-9)

	var null Handle
	_, err = null.Area()
	require.ErrorIs(t, err, ErrNullHandle)
}

func TestParseFirstLeft(t *testing.T) {
	a := NewArena()
	withPoints := build(t, a, square(0, 0, 10))
	emptyA := a.New()
	emptyB := a.New()
	emptyA.MustRef().FirstLeft = emptyB
	emptyB.MustRef().FirstLeft = withPoints

	assert.True(t, ParseFirstLeft(emptyA).Equal(withPoints))
	assert.True(t, ParseFirstLeft(withPoints).Equal(withPoints))
	assert.True(t, ParseFirstLeft(Handle{}).IsNull())

	t.Run("cycle terminates", func(t *testing.T) {
		x := a.New()
		y := a.New()
		x.MustRef().FirstLeft = y
		y.MustRef().FirstLeft = x
		assert.True(t, ParseFirstLeft(x).IsNull())
	})

	t.Run("chain ending in cleared slot", func(t *testing.T) {
		lonely := a.New()
		gone := a.New()
		lonely.MustRef().FirstLeft = gone
		gone.SetNull()
		assert.True(t, ParseFirstLeft(lonely).IsNull())
	})
}
