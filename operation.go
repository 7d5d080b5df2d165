// Copyright ©2024 The linsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsolve

// Operation specifies the type of operation commanded by a Method.
type Operation uint64

// Operations commanded by Method.Iterate.
const (
	NoOperation Operation = 0

	// Multiply A*x where x is stored in Context.Src and the result must
	// be stored into Context.Dst.
	MulVec Operation = 1 << (iota - 1)

	// Do the preconditioner solve
	//  M z = r,
	// where r is stored in Context.Src, and store the solution z into
	// Context.Dst.
	PrecondSolve

	// Check convergence using the current convergence scalar in
	// Context.Convergence. The driver sets Context.Converged before the
	// next call to Method.Iterate.
	CheckConvergence

	// EndIteration indicates that the Method has finished what it
	// considers to be one iteration, with the current approximation in
	// Context.X. The driver updates its counters and hooks, and
	// terminates the solve if Context.Converged is true or the iteration
	// limit has been reached.
	EndIteration
)

// Method is an iterative method that produces a sequence of vectors
// converging to the vector x satisfying a system of linear equations
//
//	A x = b,
//
// where A is a non-singular operator of dimension matching x and b.
//
// Method uses a reverse-communication interface between the iterative
// algorithm and the caller. Method acts as a client that commands the caller
// to perform needed operations via the Operation returned from Iterate. This
// keeps Method independent of the representation of the operator and of the
// vectors, and centralizes common bookkeeping in the driver.
//
// Methods report the initial iterate as iteration 1 before performing any
// update, so that the driver's history, callback, and best-iterate tracking
// always observe the starting state.
type Method[V Vector[V]] interface {
	// Init initializes the method for solving the system whose initial
	// approximation and residual are stored in ctx. It must be called
	// before the first call to Iterate.
	Init(ctx *Context[V])

	// Iterate retrieves data from ctx, updates it, and returns the next
	// operation. The caller must perform the Operation using data in
	// ctx, and depending on the state call Iterate again.
	Iterate(ctx *Context[V]) (Operation, error)
}

// Context mediates the communication between a Method and the caller. It
// must not be modified or accessed apart from the commanded Operations.
type Context[V Vector[V]] struct {
	// X is the current approximate solution. On the first call to
	// Method.Iterate, X contains the initial estimate. Method must keep
	// X current when it commands EndIteration.
	X V

	// Residual is the current residual b-A*x. On the first call to
	// Method.Iterate, Residual contains the initial residual. Methods
	// maintain it incrementally, it is not recomputed by the driver.
	Residual V

	// Convergence is the scalar against which convergence is judged.
	// Method must update it when it commands CheckConvergence. Its
	// meaning is method-specific, for example the preconditioned inner
	// product <r,z> for CG.
	Convergence float64

	// Converged indicates to Method that Convergence satisfies the
	// stopping criterion as a result of a CheckConvergence operation.
	Converged bool

	// Src and Dst are the source and destination vectors for MulVec and
	// PrecondSolve operations.
	Src, Dst V
}
