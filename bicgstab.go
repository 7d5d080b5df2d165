// Copyright ©2024 The linsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsolve

import "math"

// breakdownTol is the threshold below which the recurrence scalars of
// BiCGStab are considered to have broken down.
const breakdownTol = dlamchE * dlamchE

// BiCGStab implements the biconjugate gradient stabilized method with
// preconditioning for solving systems whose operator is non-symmetric. For
// symmetric positive definite systems use CG.
//
// The convergence scalar is the squared residual norm <r,r>.
//
// BiCGStab needs MulVec and PrecondSolve operations.
type BiCGStab[V Vector[V]] struct {
	first  bool
	resume int

	rho, rhoPrev float64
	alpha        float64
	omega        float64

	rt   V
	p    V
	v    V
	t    V
	phat V
	shat V
}

// Init implements the Method interface.
func (b *BiCGStab[V]) Init(ctx *Context[V]) {
	b.rt = ctx.Residual.Clone()
	b.p = zeroLike(ctx.X)
	b.v = zeroLike(ctx.X)
	b.t = zeroLike(ctx.X)
	b.phat = zeroLike(ctx.X)
	b.shat = zeroLike(ctx.X)

	b.first = true
	b.resume = 1
}

// Iterate implements the Method interface.
func (b *BiCGStab[V]) Iterate(ctx *Context[V]) (Operation, error) {
	switch b.resume {
	case 1:
		ctx.Convergence = ctx.Residual.Dot(ctx.Residual)
		ctx.Converged = false
		b.resume = 2
		return CheckConvergence, nil
	case 2:
		b.resume = 3
		return EndIteration, nil
		// The initial iterate is reported as iteration 1.
	case 3:
		b.rho = b.rt.Dot(ctx.Residual)
		if math.Abs(b.rho) < breakdownTol {
			b.resume = 0
			return NoOperation, ErrBreakdown
		}
		if b.first {
			b.p.CopyFrom(ctx.Residual)
		} else {
			beta := (b.rho / b.rhoPrev) * (b.alpha / b.omega)
			b.p.AddScaled(-b.omega, b.v) // p_i -= ω v_i
			b.p.Scale(beta)              // p_i *= β
			b.p.AddScaled(1, ctx.Residual)
		}
		ctx.Src = b.p
		ctx.Dst = b.phat
		b.resume = 4
		return PrecondSolve, nil
		// Solve M p^_i = p_i.
	case 4:
		ctx.Src = b.phat
		ctx.Dst = b.v
		b.resume = 5
		return MulVec, nil
		// Compute Ap^_i -> v_i.
	case 5:
		b.alpha = b.rho / b.rt.Dot(b.v)
		// Early check for tolerance.
		ctx.Residual.AddScaled(-b.alpha, b.v)
		ctx.Convergence = ctx.Residual.Dot(ctx.Residual)
		ctx.Converged = false
		b.resume = 6
		return CheckConvergence, nil
	case 6:
		if ctx.Converged {
			ctx.X.AddScaled(b.alpha, b.phat)
			b.resume = 0 // Calling Iterate again without Init will panic.
			return EndIteration, nil
		}
		ctx.Src = ctx.Residual
		ctx.Dst = b.shat
		b.resume = 7
		return PrecondSolve, nil
		// Solve M s^_i = s_i.
	case 7:
		ctx.Src = b.shat
		ctx.Dst = b.t
		b.resume = 8
		return MulVec, nil
		// Compute As^_i -> t_i.
	case 8:
		b.omega = b.t.Dot(ctx.Residual) / b.t.Dot(b.t)
		ctx.X.AddScaled(b.alpha, b.phat)
		ctx.X.AddScaled(b.omega, b.shat)
		ctx.Residual.AddScaled(-b.omega, b.t)
		ctx.Convergence = ctx.Residual.Dot(ctx.Residual)
		ctx.Converged = false
		b.resume = 9
		return CheckConvergence, nil
	case 9:
		if ctx.Converged {
			b.resume = 0 // Calling Iterate again without Init will panic.
			return EndIteration, nil
		}
		if math.Abs(b.omega) < breakdownTol {
			b.resume = 0
			return NoOperation, ErrBreakdown
		}
		b.rhoPrev = b.rho
		b.first = false
		b.resume = 3
		return EndIteration, nil

	default:
		panic("linsolve: BiCGStab.Init not called")
	}
}
