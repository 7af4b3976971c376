package calculator

import (
	"math"
	"time"

	"gonum.org/v1/gonum/mat"

	"panel/geometry"
	"panel/influence"
)

// 力矩参考点, 1/4 弦长
const quarterChord = 0.25

// Result holds the per-panel and integrated output of one solve. Per-panel
// slices follow the panel order.
type Result struct {
	Method Method
	Alpha  float64
	VInf   float64

	// 源强 λ 或涡强 γ, 每个面元一个
	Strengths []float64
	// SourceVortex 的统一涡强
	Gamma float64

	ControlPoints []geometry.Point
	Velocities    []float64 // 控制点切向速度
	Cp            []float64

	Cl float64
	Cd float64
	Cm float64 // 仅 Vortex / SourceVortex

	// Σ s_i·λ_i, 闭合物体应接近 0, 仅 Source / SourceVortex
	Accuracy float64
	// Σ s_i·γ_i
	Circulation float64
	Perimeter   float64

	Duration time.Duration
}

func (r *Result) HasMoment() bool {
	return r.Method.HasMoment()
}

func (r *Result) HasAccuracy() bool {
	return r.Method.HasAccuracy()
}

// RelativeLeak scales the net source strength by the total flux scale V∞·perimeter.
func (r *Result) RelativeLeak() float64 {
	if r.VInf == 0 || r.Perimeter == 0 {
		return math.Abs(r.Accuracy)
	}
	return math.Abs(r.Accuracy) / (r.VInf * r.Perimeter)
}

// Leak returns a *LeakError when the relative net source strength exceeds
// tol. Methods without sources never leak.
func (r *Result) Leak(tol float64) error {
	if !r.HasAccuracy() {
		return nil
	}
	if rel := r.RelativeLeak(); rel > tol {
		return &LeakError{Accuracy: r.Accuracy, Relative: rel, Tolerance: tol}
	}
	return nil
}

// evaluate turns solved strengths into surface velocities, pressure
// coefficients and integrated forces.
func (c *calculator) evaluate(panels []geometry.Panel, x *mat.VecDense, vInf, alpha float64) *Result {
	n := len(panels)
	res := &Result{
		Method:        c.method,
		Alpha:         alpha,
		VInf:          vInf,
		Strengths:     make([]float64, n),
		ControlPoints: make([]geometry.Point, n),
		Velocities:    make([]float64, n),
		Cp:            make([]float64, n),
	}
	for i := 0; i < n; i++ {
		res.Strengths[i] = x.AtVec(i)
		res.ControlPoints[i] = panels[i].Control
		res.Perimeter += panels[i].Length
	}
	if c.method == SourceVortex {
		res.Gamma = x.AtVec(n)
	}

	c.e.dispatchTask(0, n, func(t task) {
		for i := t.start; i < t.end; i++ {
			res.Velocities[i] = c.tangentialVelocity(panels, res, i, vInf)
		}
	})

	sinA, cosA := math.Sincos(alpha)
	for i, p := range panels {
		v := res.Velocities[i]
		cp := 1 - (v/vInf)*(v/vInf)
		res.Cp[i] = cp

		sinB, cosB := math.Sincos(p.Beta)
		cn := -cp * p.Length * sinB
		ca := -cp * p.Length * cosB
		res.Cl += cn*cosA - ca*sinA
		res.Cd += cn*sinA + ca*cosA
		if c.method.HasMoment() {
			res.Cm += cp * (p.Control.X - quarterChord) * p.Length * math.Cos(p.Phi)
		}

		switch c.method {
		case Source:
			res.Accuracy += p.Length * res.Strengths[i]
		case Vortex:
			res.Circulation += p.Length * res.Strengths[i]
		case SourceVortex:
			res.Accuracy += p.Length * res.Strengths[i]
			res.Circulation += p.Length * res.Gamma
		}
	}
	return res
}

// 控制点 i 处的切向速度: 来流分量 + 自身项 + 其余面元的诱导速度
func (c *calculator) tangentialVelocity(panels []geometry.Panel, res *Result, i int, vInf float64) float64 {
	v := vInf * math.Sin(panels[i].Beta)
	switch c.method {
	case Source:
		for j := range panels {
			v += res.Strengths[j] / (2 * math.Pi) * influence.Coefficient(influence.SourceTangential, panels, i, j)
		}
	case Vortex:
		v += res.Strengths[i] / 2
		for j := range panels {
			v -= res.Strengths[j] / (2 * math.Pi) * influence.Coefficient(influence.VortexTangential, panels, i, j)
		}
	case SourceVortex:
		sumJ, sumL := 0.0, 0.0
		for j := range panels {
			sumJ += res.Strengths[j] * influence.Coefficient(influence.SourceTangential, panels, i, j)
			sumL += influence.Coefficient(influence.VortexTangential, panels, i, j)
		}
		v += sumJ/(2*math.Pi) + res.Gamma/2 - res.Gamma/(2*math.Pi)*sumL
	}
	return v
}
