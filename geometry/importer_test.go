package geometry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsClockwise(t *testing.T) {
	require.True(t, IsClockwise(square()))
	ccw := square()
	Reverse(ccw)
	require.False(t, IsClockwise(ccw))
}

func TestOrientIdempotent(t *testing.T) {
	points, err := NACA4("0012", 20)
	require.NoError(t, err)
	cw := Orient(points)
	require.True(t, IsClockwise(cw))

	want, err := NewPanels(cw, 0.1)
	require.NoError(t, err)

	reversed := Orient(cw)
	Reverse(reversed)
	require.False(t, IsClockwise(reversed))
	got, err := NewPanels(Orient(reversed), 0.1)
	require.NoError(t, err)
	require.Equal(t, want, got)

	// 已经是顺时针的不再反转
	require.Equal(t, cw, Orient(cw))
}

func TestPointsFromArrays(t *testing.T) {
	points, err := PointsFromArrays([]float64{0, 1, 1, 0}, []float64{0, 0, 1, 1})
	require.NoError(t, err)
	require.Equal(t, []Point{{0, 1}, {1, 1}, {1, 0}, {0, 0}}, points)

	_, err = PointsFromArrays([]float64{0, 1}, []float64{0})
	require.Error(t, err)
}

func TestImportPoints(t *testing.T) {
	data := "\ufeff1.0  0.00126\n 0.5 0.05\n0.0 0.0\n0.5 -0.05\n1.0 -0.00126 \n"
	points, err := ImportPoints(strings.NewReader(data), ' ')
	require.NoError(t, err)
	require.Len(t, points, 5)
	require.True(t, IsClockwise(points))
	require.Equal(t, Point{1.0, -0.00126}, points[0])
	require.Equal(t, Point{1.0, 0.00126}, points[4])
}

func TestImportPointsComma(t *testing.T) {
	points, err := ImportPoints(strings.NewReader("0,0\n0, 1\n1,1\n"), ',')
	require.NoError(t, err)
	require.Len(t, points, 3)
}

func TestImportPointsBadRows(t *testing.T) {
	_, err := ImportPoints(strings.NewReader("0 0\n1 2 3\n"), ' ')
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2")

	_, err = ImportPoints(strings.NewReader("0 0\nx 2\n"), ' ')
	require.Error(t, err)
}

func TestImportTuples(t *testing.T) {
	xs, ys, err := ImportTuples(strings.NewReader("-4,-0.42\n0,0.0\n4,0.43\n"), ',')
	require.NoError(t, err)
	require.Equal(t, []float64{-4, 0, 4}, xs)
	require.Equal(t, []float64{-0.42, 0, 0.43}, ys)
}
