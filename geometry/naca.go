package geometry

import (
	"fmt"
	"math"
	"strconv"
)

const DefaultPointsPerSurface = 60

// NACA4 generates a 4-digit NACA section of unit chord with cosine spacing.
// Points run from the upper trailing edge over the leading edge to the lower
// trailing edge, the usual order of airfoil data files (counter-clockwise),
// so callers pass them through Orient like imported data.
//
// The trailing edge is blunt and both of its end points sit at x = 1, which
// makes the closing panel vertical.
func NACA4(designation string, pointsPerSurface int) ([]Point, error) {
	if len(designation) != 4 {
		return nil, fmt.Errorf("naca designation must have 4 digits, got %q", designation)
	}
	digits, err := strconv.Atoi(designation)
	if err != nil || digits < 0 {
		return nil, fmt.Errorf("naca designation must have 4 digits, got %q", designation)
	}
	if pointsPerSurface < 3 {
		return nil, &DegenerateGeometryError{Reason: fmt.Sprintf("at least 3 points per surface are needed, got %d", pointsPerSurface)}
	}
	m := float64(digits/1000) / 100
	p := float64(digits/100%10) / 10
	t := float64(digits%100) / 100
	if t == 0 {
		return nil, &DegenerateGeometryError{Reason: "naca section with zero thickness"}
	}
	if m > 0 && p == 0 {
		return nil, fmt.Errorf("naca %s: cambered section needs a camber position", designation)
	}

	n := pointsPerSurface
	upper := make([]Point, n)
	lower := make([]Point, n)
	for k := 0; k < n; k++ {
		x := 0.5 * (1 - math.Cos(math.Pi*float64(k)/float64(n-1)))
		yt := 5 * t * (0.2969*math.Sqrt(x) - 0.1260*x - 0.3516*x*x + 0.2843*x*x*x - 0.1015*x*x*x*x)
		yc, dyc := camber(m, p, x)
		theta := math.Atan(dyc)

		upper[k] = Point{X: x - yt*math.Sin(theta), Y: yc + yt*math.Cos(theta)}
		lower[k] = Point{X: x + yt*math.Sin(theta), Y: yc - yt*math.Cos(theta)}
	}
	upper[n-1].X, lower[n-1].X = 1, 1

	points := make([]Point, 0, 2*n-1)
	for k := n - 1; k >= 0; k-- {
		points = append(points, upper[k])
	}
	// 前缘点只保留一个
	points = append(points, lower[1:]...)
	return points, nil
}

// 中弧线及其斜率
func camber(m, p, x float64) (float64, float64) {
	if m == 0 {
		return 0, 0
	}
	if x < p {
		return m / (p * p) * (2*p*x - x*x), 2 * m / (p * p) * (p - x)
	}
	q := (1 - p) * (1 - p)
	return m / q * ((1 - 2*p) + 2*p*x - x*x), 2 * m / q * (p - x)
}
