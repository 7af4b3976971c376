package calculator

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"panel/geometry"
	"panel/influence"
)

// 源面元法: A_ij = I_ij, 对角线 π; b_i = -2πV∞cosβ_i
func (c *calculator) assembleSource(panels []geometry.Panel, vInf float64) (*mat.Dense, *mat.VecDense) {
	n := len(panels)
	a := mat.NewDense(n, n, nil)
	b := mat.NewVecDense(n, nil)
	c.e.dispatchTask(0, n, func(t task) {
		for i := t.start; i < t.end; i++ {
			for j := 0; j < n; j++ {
				a.Set(i, j, influence.Coefficient(influence.Normal, panels, i, j))
			}
			b.SetVec(i, -vInf*2*math.Pi*math.Cos(panels[i].Beta))
		}
	})
	return a, b
}

// 涡面元法: A_ij = -J_ij, 对角线 0; 最后一行替换为 Kutta 条件 γ_0 + γ_{N-1} = 0,
// 方程组保持 N×N
func (c *calculator) assembleVortex(panels []geometry.Panel, vInf float64) (*mat.Dense, *mat.VecDense) {
	n := len(panels)
	a := mat.NewDense(n, n, nil)
	b := mat.NewVecDense(n, nil)
	c.e.dispatchTask(0, n-1, func(t task) {
		for i := t.start; i < t.end; i++ {
			for j := 0; j < n; j++ {
				a.Set(i, j, -influence.Coefficient(influence.SourceTangential, panels, i, j))
			}
			b.SetVec(i, -vInf*2*math.Pi*math.Cos(panels[i].Beta))
		}
	})

	// Kutta 条件
	a.Set(n-1, 0, 1)
	a.Set(n-1, n-1, 1)
	b.SetVec(n-1, 0)
	return a, b
}

// 源涡组合法: N 个源强 + 1 个统一涡强, 方程组 (N+1)×(N+1)
func (c *calculator) assembleSourceVortex(panels []geometry.Panel, vInf float64) (*mat.Dense, *mat.VecDense) {
	n := len(panels)
	a := mat.NewDense(n+1, n+1, nil)
	b := mat.NewVecDense(n+1, nil)
	c.e.dispatchTask(0, n, func(t task) {
		for i := t.start; i < t.end; i++ {
			sumJ := 0.0
			for j := 0; j < n; j++ {
				a.Set(i, j, influence.Coefficient(influence.Normal, panels, i, j))
				sumJ += influence.Coefficient(influence.SourceTangential, panels, i, j)
			}
			a.Set(i, n, -sumJ)
			b.SetVec(i, -vInf*2*math.Pi*math.Cos(panels[i].Beta))
		}
	})

	// Kutta 条件: 尾缘两侧面元切向速度之和为 0
	first, last := 0, n-1
	sumL := 0.0
	for j := 0; j < n; j++ {
		a.Set(n, j, influence.Coefficient(influence.SourceTangential, panels, first, j)+
			influence.Coefficient(influence.SourceTangential, panels, last, j))
		sumL += influence.Coefficient(influence.VortexTangential, panels, first, j) +
			influence.Coefficient(influence.VortexTangential, panels, last, j)
	}
	a.Set(n, n, -sumL+2*math.Pi)
	b.SetVec(n, -vInf*2*math.Pi*(math.Sin(panels[first].Beta)+math.Sin(panels[last].Beta)))
	return a, b
}
