// Copyright ©2024 The linsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsolve

import (
	"math"
	"time"
)

// Result holds the result of an iterative solve.
type Result[V Vector[V]] struct {
	// X is the best approximate solution observed during the solve, that
	// is, the iterate with the smallest convergence scalar. It is not
	// necessarily the final iterate.
	X V

	// Convergence is the convergence scalar associated with X.
	Convergence float64

	// History holds the snapshots requested with WithHistory, in
	// iteration order. It is nil if no history was requested.
	History []Record[V]

	// Stats holds the statistics of the solve.
	Stats Stats
}

// Stats holds statistics about an iterative solve.
type Stats struct {
	// Iterations is the number of iterations reported by the Method,
	// including the initial iterate reported as iteration 1.
	Iterations int
	// MulVec is the number of MulVec operations commanded by the Method,
	// plus one if an initial guess required computing the initial
	// residual.
	MulVec int
	// PrecondSolve is the number of PrecondSolve operations performed by
	// a preconditioner.
	PrecondSolve int
	// Convergence is the final value of the convergence scalar.
	Convergence float64
	// StartTime is an approximate time when the solve was started.
	StartTime time.Time
	// Runtime is an approximate duration of the solve.
	Runtime time.Duration
}

// bestIterate maintains the running minimum of the convergence scalar and
// the iterate it was observed at. It is seeded by the first reported
// iteration, so the best iterate is defined even when the scalar never
// improves afterwards.
type bestIterate[V Vector[V]] struct {
	seen        bool
	convergence float64
	x           V
}

func (bi *bestIterate[V]) observe(ctx *Context[V]) {
	if !bi.seen {
		bi.seen = true
		bi.convergence = ctx.Convergence
		bi.x = ctx.X.Clone()
		return
	}
	if ctx.Convergence < bi.convergence {
		bi.convergence = ctx.Convergence
		bi.x.CopyFrom(ctx.X)
	}
}

// Solve solves the system of linear equations
//
//	A x = b,
//
// where the operator A is represented by a and the dimension of the problem
// is determined by b.
//
// method is the iterative method used for finding an approximate solution.
// It must not be nil. Settings are supplied as options; omitted options mean
// the defaults documented on each option.
//
// Solve returns the best iterate observed together with solve statistics
// and, if requested, the recorded history. On reaching the iteration limit
// before the tolerance it returns ErrIterationLimit alongside the partial
// result. Errors from the preconditioner or the callback abort the solve
// and propagate unchanged.
//
// Solve panics on programmer errors: a nil operator or method, a tolerance
// outside (eps, 1), a non-positive iteration limit, a mismatched initial
// guess, or a history stride smaller than one.
func Solve[V Vector[V]](a Operator[V], b V, method Method[V], opts ...Option[V]) (*Result[V], error) {
	if a == nil {
		panic("linsolve: nil operator")
	}
	if method == nil {
		panic("linsolve: nil method")
	}

	dim := b.Dim()
	s := settings[V]{
		tol:     defaultTolerance,
		maxIter: dim,
	}
	for _, opt := range opts {
		opt(&s)
	}
	switch {
	case s.tol < dlamchE || 1 <= s.tol:
		panic("linsolve: invalid tolerance")
	case dim > 0 && s.maxIter <= 0:
		panic("linsolve: invalid iteration limit")
	case s.hasX0 && s.x0.Dim() != dim:
		panic("linsolve: mismatched length of initial guess")
	case s.histFields != 0 && s.histStride < 1:
		panic("linsolve: invalid history stride")
	}

	stats := Stats{StartTime: time.Now()}
	if dim == 0 {
		return &Result[V]{X: b.Clone(), Stats: stats}, nil
	}

	ctx := &Context[V]{Residual: zeroLike(b)}
	if s.hasX0 {
		ctx.X = s.x0.Clone()
		a.Apply(ctx.Residual, ctx.X)
		stats.MulVec++
		ctx.Residual.Scale(-1)
		ctx.Residual.AddScaled(1, b) // r = b - A*x0
	} else {
		ctx.X = zeroLike(b)
		ctx.Residual.CopyFrom(b) // r = b
	}

	var rec *recorder[V]
	if s.histFields != 0 {
		rec = &recorder[V]{fields: s.histFields, stride: s.histStride, start: stats.StartTime}
	}
	best := &bestIterate[V]{}
	prog := &progressTracker{fn: s.progress, tol: s.tol, maxIter: s.maxIter}

	err := iterate(a, ctx, &s, method, &stats, rec, best, prog)

	stats.Runtime = time.Since(stats.StartTime)
	res := &Result[V]{Stats: stats}
	if best.seen {
		res.X = best.x
		res.Convergence = best.convergence
	} else {
		// The method failed before reporting any iteration.
		res.X = ctx.X
		res.Convergence = math.NaN()
	}
	if rec != nil {
		res.History = rec.records
	}
	return res, err
}

func iterate[V Vector[V]](a Operator[V], ctx *Context[V], s *settings[V], method Method[V], stats *Stats, rec *recorder[V], best *bestIterate[V], prog *progressTracker) error {
	method.Init(ctx)

	for {
		op, err := method.Iterate(ctx)
		if err != nil {
			return err
		}

		switch op {
		case NoOperation:

		case MulVec:
			a.Apply(ctx.Dst, ctx.Src)
			stats.MulVec++

		case PrecondSolve:
			if s.pre == nil {
				ctx.Dst.CopyFrom(ctx.Src)
				continue
			}
			if err := s.pre.Solve(ctx.Dst, ctx.Src); err != nil {
				return err
			}
			stats.PrecondSolve++

		case CheckConvergence:
			ctx.Converged = ctx.Convergence < s.tol

		case EndIteration:
			stats.Iterations++
			stats.Convergence = ctx.Convergence
			best.observe(ctx)
			if rec != nil {
				rec.observe(stats.Iterations, ctx)
			}
			prog.observe(stats.Iterations, ctx.Convergence)
			if s.callback != nil {
				if err := s.callback(stats.Iterations, ctx.X, ctx.Convergence); err != nil {
					return err
				}
			}
			if ctx.Converged {
				return nil
			}
			if stats.Iterations > s.maxIter {
				return ErrIterationLimit
			}

		default:
			panic("linsolve: invalid operation")
		}
	}
}
