package geometry

import (
	"fmt"
	"math"
)

// 闭合路径检查的容差
const closeTolerance = 1e-8

type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Panel is a straight surface element from Start to End. All derived
// attributes are computed once by NewPanel.
type Panel struct {
	Start   Point
	End     Point
	Control Point // 控制点, 面元中点

	Dx     float64
	Dy     float64
	Length float64

	Phi   float64 // 面元方向角, [0, 2π)
	Delta float64 // 外法线方向角, [0, 2π)
	Beta  float64 // 外法线与来流夹角, 不做归一化
}

// NewPanel builds the panel joining start to end for a freestream at angle of
// attack alpha (radians).
func NewPanel(start, end Point, alpha float64) (Panel, error) {
	if start == end {
		return Panel{}, &DegenerateGeometryError{Reason: fmt.Sprintf("a panel cannot be made from two identical points %v", start)}
	}
	p := Panel{
		Start:   start,
		End:     end,
		Control: Point{X: (start.X + end.X) / 2, Y: (start.Y + end.Y) / 2},
		Dx:      end.X - start.X,
		Dy:      end.Y - start.Y,
	}
	p.Length = math.Hypot(p.Dx, p.Dy)

	phi := math.Atan2(p.Dy, p.Dx)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	p.Phi = phi

	delta := phi + math.Pi/2
	for delta >= 2*math.Pi {
		delta -= 2 * math.Pi
	}
	p.Delta = delta
	p.Beta = delta - alpha
	return p, nil
}

// NewPanels connects an ordered, clockwise point sequence into a closed chain
// of panels. Panel k runs from point k-1 to point k, so panel 0 closes the
// body from the last point back to the first.
//
// A vertical first or last panel (a blunt trailing edge) is removed, once per
// end, so that panels[0] and panels[len-1] are the two trailing-edge panels.
// Fewer than 3 remaining panels is a DegenerateGeometryError.
func NewPanels(points []Point, alpha float64) ([]Panel, error) {
	if len(points) < 3 {
		return nil, &DegenerateGeometryError{Reason: fmt.Sprintf("a closed body needs at least 3 points, got %d", len(points))}
	}
	panels := make([]Panel, 0, len(points))
	for k := range points {
		prev := points[len(points)-1]
		if k > 0 {
			prev = points[k-1]
		}
		p, err := NewPanel(prev, points[k], alpha)
		if err != nil {
			return nil, fmt.Errorf("panel %d: %w", k, err)
		}
		panels = append(panels, p)
	}

	// TODO: the exact-zero check keeps or drops near-vertical trailing edges
	// from digitized data arbitrarily; decide on a tolerance once we have
	// sample files that need it.
	if panels[0].Dx == 0 {
		panels = panels[1:]
	}
	if panels[len(panels)-1].Dx == 0 {
		panels = panels[:len(panels)-1]
	}
	if len(panels) < 3 {
		return nil, &DegenerateGeometryError{Reason: fmt.Sprintf("only %d panels left after removing the trailing edge", len(panels))}
	}
	return panels, nil
}

// CirclePanels samples a circle clockwise. Points sit at -step/2 + k*step, so
// the control points land on whole multiples of step (integer degrees for
// divisions dividing 360). No trailing-edge panel is removed.
func CirclePanels(radius float64, divisions int, alpha float64) ([]Panel, error) {
	if divisions < 3 {
		return nil, &DegenerateGeometryError{Reason: fmt.Sprintf("a circle needs at least 3 divisions, got %d", divisions)}
	}
	if !(radius > 0) {
		return nil, &DegenerateGeometryError{Reason: fmt.Sprintf("circle radius must be positive, got %g", radius)}
	}
	step := 2 * math.Pi / float64(divisions)
	theta := -step / 2
	previous := Point{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)}

	panels := make([]Panel, 0, divisions)
	for count := 1; count <= divisions; count++ {
		theta += step
		point := Point{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)}
		p, err := NewPanel(point, previous, alpha)
		if err != nil {
			return nil, err
		}
		panels = append(panels, p)
		previous = point
	}
	return panels, nil
}

// ReversePanels returns the panels in reverse order. The panels themselves
// keep their direction.
func ReversePanels(panels []Panel) []Panel {
	res := make([]Panel, len(panels))
	for i, p := range panels {
		res[len(panels)-1-i] = p
	}
	return res
}

// CheckClosed verifies that every panel starts where the previous one ends,
// including the wrap-around from the last panel to the first.
func CheckClosed(panels []Panel) error {
	if len(panels) < 3 {
		return &DegenerateGeometryError{Reason: fmt.Sprintf("a closed body needs at least 3 panels, got %d", len(panels))}
	}
	for i := range panels {
		prev := len(panels) - 1
		if i > 0 {
			prev = i - 1
		}
		if math.Abs(panels[i].Start.X-panels[prev].End.X) > closeTolerance ||
			math.Abs(panels[i].Start.Y-panels[prev].End.Y) > closeTolerance {
			return &OpenPathError{Index: i, Start: panels[i].Start, PrevEnd: panels[prev].End}
		}
	}
	return nil
}

// SetAlpha recomputes Beta for a new angle of attack.
func SetAlpha(panels []Panel, alpha float64) {
	for i := range panels {
		panels[i].Beta = panels[i].Delta - alpha
	}
}
