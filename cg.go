// Copyright ©2024 The linsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsolve

import "math"

// CG implements the preconditioned conjugate gradient method for solving
// systems whose operator is symmetric positive definite.
//
// The convergence scalar is the preconditioned inner product <r,z> where
// z = M⁻¹r. It serves both as the stopping criterion and as the coefficient
// source of the recurrence. If the scalar is NaN at initialization, the
// solve aborts with ErrInvalidOperator; this is checked once only.
//
// The near-zero denominators <p,Ap> and <r,z> of the recurrence are not
// guarded. They indicate an operator that is not positive definite or a
// search direction that has collapsed, and produce garbage iterates rather
// than an error.
//
// CG needs MulVec and PrecondSolve operations.
type CG[V Vector[V]] struct {
	resume int
	rho    float64

	z, p, ap V
}

// Init implements the Method interface.
func (cg *CG[V]) Init(ctx *Context[V]) {
	cg.z = zeroLike(ctx.X)
	cg.p = zeroLike(ctx.X)
	cg.ap = zeroLike(ctx.X)
	cg.resume = 1
}

// Iterate implements the Method interface.
func (cg *CG[V]) Iterate(ctx *Context[V]) (Operation, error) {
	switch cg.resume {
	case 1:
		ctx.Src = ctx.Residual
		ctx.Dst = cg.z
		cg.resume = 2
		return PrecondSolve, nil
		// Solve M z = r_0.
	case 2:
		rho := ctx.Residual.Dot(cg.z) // ρ_0 = r_0 · z_0
		if math.IsNaN(rho) {
			cg.resume = 0
			return NoOperation, ErrInvalidOperator
		}
		cg.p.CopyFrom(cg.z) // p_1 = z_0
		cg.rho = rho
		ctx.Convergence = rho
		ctx.Converged = false
		cg.resume = 3
		return CheckConvergence, nil
	case 3:
		cg.resume = 4
		return EndIteration, nil
		// The initial iterate is reported as iteration 1.
	case 4:
		ctx.Src = cg.p
		ctx.Dst = cg.ap
		cg.resume = 5
		return MulVec, nil
		// Compute Ap_i.
	case 5:
		alpha := cg.rho / cg.p.Dot(cg.ap) // α = ρ_{i-1} / (p_i · Ap_i)
		ctx.X.AddScaled(alpha, cg.p)      // x_i = x_{i-1} + α p_i
		ctx.Residual.AddScaled(-alpha, cg.ap)
		ctx.Src = ctx.Residual
		ctx.Dst = cg.z
		cg.resume = 6
		return PrecondSolve, nil
		// Solve M z = r_i.
	case 6:
		rho := ctx.Residual.Dot(cg.z)    // ρ_i = r_i · z_i
		cg.z.AddScaled(rho/cg.rho, cg.p) // z = z + (ρ_i/ρ_{i-1}) p_i
		cg.p.CopyFrom(cg.z)              // p_{i+1} = z
		cg.rho = rho
		ctx.Convergence = rho
		ctx.Converged = false
		cg.resume = 3
		return CheckConvergence, nil

	default:
		panic("linsolve: CG.Init not called")
	}
}
