package calculator

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// solve runs a plain LU solve of a x = b. A singular or ill-conditioned
// matrix is an error; no refinement is attempted.
func solve(a *mat.Dense, b *mat.VecDense) (*mat.VecDense, error) {
	r, cols := a.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < cols; j++ {
			if v := a.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &SingularSystemError{Reason: "non-finite influence coefficient", Row: i, Col: j}
			}
		}
	}

	var lu mat.LU
	lu.Factorize(a)
	x := mat.NewVecDense(r, nil)
	if err := lu.SolveVecTo(x, false, b); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, &SingularSystemError{Reason: "ill-conditioned matrix", Cond: float64(cond), Row: -1, Col: -1, Err: err}
		}
		return nil, &SingularSystemError{Reason: "singular matrix", Cond: math.Inf(1), Row: -1, Col: -1, Err: err}
	}
	for i := 0; i < r; i++ {
		if v := x.AtVec(i); math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &SingularSystemError{Reason: "non-finite strength", Row: i, Col: -1}
		}
	}
	return x, nil
}
