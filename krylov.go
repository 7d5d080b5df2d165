// Copyright ©2024 The linsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsolve

import "math"

// Krylov solves the system of linear equations
//
//	A x = b
//
// by generating the raw Krylov sequence
//
//	k_0 = M⁻¹ b,   k_j = M⁻¹ (A k_{j-1}),   j = 1..iterations,
//
// where M is the left preconditioner pre (the identity if pre is nil), and
// returning the least-squares optimal combination of k_0..k_{iterations-1}.
// The combination coefficients minimize
//
//	|[k_1 … k_m] α - k_0|
//
// and are computed by a thin QR least-squares solve.
//
// The sequence is deliberately not orthogonalized. This makes the method
// cheaper per vector than GMRES but numerically weaker: as iterations grows
// the generated vectors become nearly linearly dependent, and a
// rank-deficient least-squares solve produces garbage coefficients rather
// than an error. The method stores iterations+1 vectors and is intended
// only for small iteration budgets.
//
// If iterations equals the dimension of b and A is well-conditioned, the
// sequence spans the full space and the returned solution is exact up to
// numerical error. For smaller budgets the result carries no guarantee
// beyond least-squares optimality over the generated vectors.
//
// The only returned error is one raised by the preconditioner.
func Krylov[V Vector[V]](a Operator[V], b V, iterations int, pre Preconditioner[V]) (V, error) {
	if a == nil {
		panic("linsolve: nil operator")
	}
	if iterations <= 0 {
		panic("linsolve: invalid iteration count")
	}

	k := make([]V, iterations+1)
	k[0] = zeroLike(b)
	if err := precondition(pre, k[0], b); err != nil {
		var zero V
		return zero, err
	}

	av := zeroLike(b)
	for j := 1; j <= iterations; j++ {
		a.Apply(av, k[j-1])
		k[j] = zeroLike(b)
		if err := precondition(pre, k[j], av); err != nil {
			var zero V
			return zero, err
		}
	}

	alpha := leastSquares(k[1:], k[0])

	x := zeroLike(b)
	for j, aj := range alpha {
		x.AddScaled(aj, k[j])
	}
	return x, nil
}

func precondition[V Vector[V]](pre Preconditioner[V], dst, r V) error {
	if pre == nil {
		dst.CopyFrom(r)
		return nil
	}
	return pre.Solve(dst, r)
}

// leastSquares returns the coefficients α minimizing |C α - rhs| where the
// columns of C are cols. It computes a thin QR factorization of C by the
// modified Gram-Schmidt process and solves R α = Qᵀ rhs by back
// substitution. Near-linearly-dependent columns are not guarded against.
func leastSquares[V Vector[V]](cols []V, rhs V) []float64 {
	m := len(cols)
	q := make([]V, m)
	r := make([]float64, m*m) // Upper triangular, row-major.
	for j := 0; j < m; j++ {
		w := cols[j].Clone()
		for i := 0; i < j; i++ {
			rij := q[i].Dot(w)
			r[i*m+j] = rij
			w.AddScaled(-rij, q[i])
		}
		rjj := math.Sqrt(w.Dot(w))
		r[j*m+j] = rjj
		w.Scale(1 / rjj)
		q[j] = w
	}

	alpha := make([]float64, m)
	for i := range q {
		alpha[i] = q[i].Dot(rhs)
	}
	for i := m - 1; i >= 0; i-- {
		for j := i + 1; j < m; j++ {
			alpha[i] -= r[i*m+j] * alpha[j]
		}
		alpha[i] /= r[i*m+i]
	}
	return alpha
}
