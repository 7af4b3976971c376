// Package influence evaluates the closed-form geometric integrals giving the
// velocity induced at one panel's control point by a unit-strength source or
// vortex distribution on another panel.
package influence

import (
	"math"

	"panel/geometry"
)

type Kind int

const (
	Normal           Kind = iota // I: 源面元对法向速度的影响
	SourceTangential             // J: 源面元对切向速度的影响, 也是涡面元对法向速度的影响
	VortexTangential             // L: 涡面元对切向速度的影响
)

func (k Kind) String() string {
	switch k {
	case Normal:
		return "I"
	case SourceTangential:
		return "J"
	case VortexTangential:
		return "L"
	}
	return "unknown"
}

// 控制点落在 j 面元所在直线上时 e 趋于 0
const collinearTolerance = 1e-12

// SelfTerm is the value used when a panel acts on its own control point.
// The integrals are singular there and the limits are folded into this one
// policy: π for the normal source term, 0 for both tangential families.
func SelfTerm(k Kind) float64 {
	if k == Normal {
		return math.Pi
	}
	return 0
}

// Coefficient returns the influence of panels[j] on panels[i]. Identity is
// positional, so i == j selects SelfTerm.
func Coefficient(k Kind, panels []geometry.Panel, i, j int) float64 {
	if i == j {
		return SelfTerm(k)
	}
	return Integral(k, &panels[i], &panels[j])
}

// Integral evaluates the k integral of panel pi (control point, orientation)
// relative to panel pj (start point, orientation, length). It must not be
// called with a panel against itself.
func Integral(k Kind, pi, pj *geometry.Panel) float64 {
	dx := pi.Control.X - pj.Start.X
	dy := pi.Control.Y - pj.Start.Y
	sinPhiI, cosPhiI := math.Sincos(pi.Phi)
	sinPhiJ, cosPhiJ := math.Sincos(pj.Phi)

	a := -dx*cosPhiJ - dy*sinPhiJ
	b := dx*dx + dy*dy

	var c, d float64
	switch k {
	case Normal:
		c = math.Sin(pi.Phi - pj.Phi)
		d = -dx*sinPhiI + dy*cosPhiI
	case SourceTangential:
		c = -math.Cos(pi.Phi - pj.Phi)
		d = dx*cosPhiI + dy*sinPhiI
	case VortexTangential:
		c = math.Sin(pj.Phi - pi.Phi)
		d = dx*sinPhiI - dy*cosPhiI
	default:
		panic("influence: unknown integral kind")
	}
	return evaluate(a, b, c, d, pj.Length)
}

func evaluate(a, b, c, d, s float64) float64 {
	// 对数项按比值计算
	logTerm := (c / 2) * math.Log((s*s+2*a*s+b)/b)

	e2 := b - a*a
	if e2 <= collinearTolerance*collinearTolerance*b {
		// 共线且在面元延长线上, 反正切项的极限为 0
		return logTerm
	}
	e := math.Sqrt(e2)
	return logTerm + ((d-a*c)/e)*(math.Atan((s+a)/e)-math.Atan(a/e))
}
