package geometry

import (
	"errors"
	"math"

	"panel/model"
)

var ErrNoGeometry = errors.New("geometry needs points, a naca designation or a circle")

// Build turns a body description into panels at angle of attack alpha.
// Explicit points and NACA sections go through BuildPoints and NewPanels;
// circles come from CirclePanels in reversed order.
func Build(g model.Geometry, alpha float64) ([]Panel, error) {
	if len(g.Points) == 0 && g.NACA == "" && g.Circle != nil {
		panels, err := CirclePanels(g.Circle.Radius, g.Circle.Divisions, alpha)
		if err != nil {
			return nil, err
		}
		return ReversePanels(panels), nil
	}
	points, err := BuildPoints(g)
	if err != nil {
		return nil, err
	}
	return NewPanels(points, alpha)
}

// BuildPoints returns the clockwise boundary points of a point or NACA
// description, for callers that rebuild panels per angle of attack.
func BuildPoints(g model.Geometry) ([]Point, error) {
	switch {
	case len(g.Points) > 0:
		xs := make([]float64, len(g.Points))
		ys := make([]float64, len(g.Points))
		for i, p := range g.Points {
			xs[i], ys[i] = p[0], p[1]
		}
		return PointsFromArrays(xs, ys)
	case g.NACA != "":
		n := g.PointsPerSurface
		if n == 0 {
			n = DefaultPointsPerSurface
		}
		points, err := NACA4(g.NACA, n)
		if err != nil {
			return nil, err
		}
		return Orient(points), nil
	}
	return nil, ErrNoGeometry
}

// PointCount returns how many boundary points g describes, without
// generating them, following the same precedence as Build. It is an upper
// bound on the panel count.
func PointCount(g model.Geometry) int {
	switch {
	case len(g.Points) > 0:
		return len(g.Points)
	case g.NACA != "":
		n := g.PointsPerSurface
		if n == 0 {
			n = DefaultPointsPerSurface
		}
		if n <= 0 {
			return 0
		}
		// 溢出时按最大值处理
		if n > math.MaxInt/2 {
			return math.MaxInt
		}
		return 2*n - 1
	case g.Circle != nil:
		return g.Circle.Divisions
	}
	return 0
}
