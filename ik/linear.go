package ik

import (
	"gonum.org/v1/gonum/mat"
)

// solveNormalEquations solves (JtJ + lambda^2 I) dq = Jt*e for dq, where J is
// the rows x cols Jacobian (row-major, as produced by vector3.Jacobian.Raw).
// It first attempts a Cholesky factorization of the (symmetric positive
// semi-definite, made strictly positive by the damping term) normal-equations
// matrix; if that fails to be positive definite it falls back to a general
// LU-based solve. Returns (dq, true) on success, (nil, false) if both
// decompositions fail — the system is singular even at this damping level.
func solveNormalEquations(rows, cols int, jacRaw []float64, e []float64, lambda float64) ([]float64, bool) {
	j := mat.NewDense(rows, cols, append([]float64(nil), jacRaw...))

	var jtj mat.Dense
	jtj.Mul(j.T(), j)
	for i := 0; i < cols; i++ {
		jtj.Set(i, i, jtj.At(i, i)+lambda*lambda)
	}

	eCol := mat.NewDense(rows, 1, append([]float64(nil), e...))
	var jte mat.Dense
	jte.Mul(j.T(), eCol)

	sym := mat.NewSymDense(cols, nil)
	for i := 0; i < cols; i++ {
		for k := i; k < cols; k++ {
			sym.SetSym(i, k, jtj.At(i, k))
		}
	}

	var chol mat.Cholesky
	if chol.Factorize(sym) {
		var x mat.VecDense
		if err := chol.SolveVecTo(&x, jte.ColView(0)); err == nil {
			return denseVecToSlice(&x, cols), true
		}
	}

	var x mat.Dense
	if err := x.Solve(&jtj, &jte); err != nil {
		return nil, false
	}
	out := make([]float64, cols)
	for i := 0; i < cols; i++ {
		out[i] = x.At(i, 0)
	}
	return out, true
}

func denseVecToSlice(v *mat.VecDense, n int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = v.AtVec(i)
	}
	return out
}
