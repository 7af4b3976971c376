package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func square() []Point {
	// 顺时针
	return []Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
}

func TestNewPanel(t *testing.T) {
	p, err := NewPanel(Point{0, 0}, Point{2, 0}, 0)
	require.NoError(t, err)
	require.Equal(t, Point{1, 0}, p.Control)
	require.Equal(t, 2.0, p.Length)
	require.Equal(t, 0.0, p.Phi)
	require.InDelta(t, math.Pi/2, p.Delta, 1e-15)
	require.InDelta(t, math.Pi/2, p.Beta, 1e-15)

	// 负方向的角度归一化到 [0, 2π)
	p, err = NewPanel(Point{0, 0}, Point{-1, -1}, 0.1)
	require.NoError(t, err)
	require.InDelta(t, 5*math.Pi/4, p.Phi, 1e-12)
	require.InDelta(t, 7*math.Pi/4, p.Delta, 1e-12)
	require.InDelta(t, 7*math.Pi/4-0.1, p.Beta, 1e-12)

	p, err = NewPanel(Point{0, 0}, Point{1, -1}, 0)
	require.NoError(t, err)
	require.InDelta(t, 7*math.Pi/4, p.Phi, 1e-12)
	require.InDelta(t, math.Pi/4, p.Delta, 1e-12)
}

func requireAngle(t *testing.T, want, got float64, msgAndArgs ...interface{}) {
	t.Helper()
	require.InDelta(t, 0, math.Remainder(got-want, 2*math.Pi), 1e-9, msgAndArgs...)
}

func TestNewPanelIdenticalPoints(t *testing.T) {
	_, err := NewPanel(Point{1, 2}, Point{1, 2}, 0)
	var degenerate *DegenerateGeometryError
	require.True(t, errors.As(err, &degenerate))
}

func TestNewPanelsTooFewPoints(t *testing.T) {
	for _, points := range [][]Point{nil, {{0, 0}}, {{0, 0}, {1, 0}}} {
		_, err := NewPanels(points, 0)
		var degenerate *DegenerateGeometryError
		require.True(t, errors.As(err, &degenerate), "points: %v", points)
	}
}

func TestNewPanelsConsecutiveDuplicate(t *testing.T) {
	_, err := NewPanels([]Point{{0, 0}, {0, 1}, {0, 1}, {1, 0}}, 0)
	var degenerate *DegenerateGeometryError
	require.True(t, errors.As(err, &degenerate))
}

func TestNewPanelsWrapAround(t *testing.T) {
	points := []Point{{0, 0}, {-1, 1}, {1, 1}}
	panels, err := NewPanels(points, 0)
	require.NoError(t, err)
	require.Len(t, panels, 3)
	require.Equal(t, points[2], panels[0].Start)
	require.Equal(t, points[0], panels[0].End)
	for i := 1; i < len(panels); i++ {
		require.Equal(t, panels[i-1].End, panels[i].Start)
	}
	require.NoError(t, CheckClosed(panels))
}

func TestNewPanelsDropsVerticalTrailingEdge(t *testing.T) {
	// 首尾两点 x 相同, 第一块面元竖直
	points := []Point{{1, -0.01}, {0.5, -0.05}, {0, 0}, {0.5, 0.05}, {1, 0.01}}
	panels, err := NewPanels(points, 0)
	require.NoError(t, err)
	require.Len(t, panels, 4)
	require.Equal(t, points[0], panels[0].Start)
	require.Equal(t, points[4], panels[3].End)

	// 只有完全竖直才删除
	points[4].X = 1 + 1e-12
	panels, err = NewPanels(points, 0)
	require.NoError(t, err)
	require.Len(t, panels, 5)
}

func TestNewPanelsTooFewAfterTrailingEdge(t *testing.T) {
	// 竖直面元删除后只剩两块
	_, err := NewPanels([]Point{{1, 0}, {0, 0}, {1, 1}}, 0)
	var degenerate *DegenerateGeometryError
	require.ErrorAs(t, err, &degenerate)
	require.Contains(t, degenerate.Reason, "only 2 panels")
}

func TestNewPanelsSquareDropsBothEnds(t *testing.T) {
	panels, err := NewPanels(square(), 0)
	require.NoError(t, err)
	// 第一块 (1,0)->(0,0) 水平保留, 最后一块 (1,1)->(1,0) 竖直删除
	require.Len(t, panels, 3)
	require.Equal(t, Point{1, 0}, panels[0].Start)
	require.Equal(t, Point{1, 1}, panels[2].End)
}

func TestCirclePanels(t *testing.T) {
	panels, err := CirclePanels(2, 36, 0)
	require.NoError(t, err)
	require.Len(t, panels, 36)
	// 面元顺时针走向, 按逆时针顺序排列; 反转后首尾相接
	require.Error(t, CheckClosed(panels))
	require.NoError(t, CheckClosed(ReversePanels(panels)))

	for k, p := range panels {
		theta := math.Atan2(p.Control.Y, p.Control.X)
		want := float64(k) * 10 * math.Pi / 180
		requireAngle(t, want, theta, "panel %d", k)
		// 外法线指向圆外
		requireAngle(t, want, p.Delta, "panel %d", k)
	}
}

func TestCirclePanelsInvalid(t *testing.T) {
	_, err := CirclePanels(1, 2, 0)
	require.Error(t, err)
	_, err = CirclePanels(0, 12, 0)
	require.Error(t, err)
}

func TestReversePanels(t *testing.T) {
	panels, err := CirclePanels(1, 8, 0)
	require.NoError(t, err)
	reversed := ReversePanels(panels)
	require.Len(t, reversed, 8)
	for i := range panels {
		require.Equal(t, panels[i], reversed[len(panels)-1-i])
	}
}

func TestCheckClosedOpenPath(t *testing.T) {
	circle, err := CirclePanels(1, 8, 0)
	require.NoError(t, err)
	panels := ReversePanels(circle)
	panels[3].Start.X += 1e-3

	err = CheckClosed(panels)
	var open *OpenPathError
	require.True(t, errors.As(err, &open))
	require.Equal(t, 3, open.Index)

	// 容差内视为闭合
	panels = ReversePanels(circle)
	panels[5].Start.Y += 1e-10
	require.NoError(t, CheckClosed(panels))
}

func TestSetAlpha(t *testing.T) {
	panels, err := NewPanels(square(), 0)
	require.NoError(t, err)
	SetAlpha(panels, 0.2)
	for _, p := range panels {
		require.InDelta(t, p.Delta-0.2, p.Beta, 1e-15)
	}
}
