// Copyright ©2024 The linsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsolve

const (
	// defaultTolerance is the square root of the machine epsilon of
	// IEEE double precision.
	defaultTolerance = 1.4901161193847656e-08

	// dlamchE is the machine epsilon. For IEEE this is 2^{-53}.
	dlamchE = 1.0 / (1 << 53)
)

// settings holds the configuration of a single solve. All fields have
// usable zero values except those filled in by defaults in Solve.
type settings[V Vector[V]] struct {
	x0         V
	hasX0      bool
	tol        float64
	maxIter    int
	pre        Preconditioner[V]
	callback   func(iteration int, x V, convergence float64) error
	histStride int
	histFields fieldSet
	progress   func(percent float64)
}

// Option configures a solve.
type Option[V Vector[V]] func(*settings[V])

// WithInitialGuess sets the initial estimate of the solution. The guess is
// not modified. If it is not supplied, the zero vector is used.
func WithInitialGuess[V Vector[V]](x0 V) Option[V] {
	return func(s *settings[V]) {
		s.x0 = x0
		s.hasX0 = true
	}
}

// WithTolerance sets the target for the convergence scalar. The solve stops
// as soon as the scalar drops below tol. It must be smaller than one and
// greater than the machine epsilon. The default is the square root of the
// machine epsilon.
func WithTolerance[V Vector[V]](tol float64) Option[V] {
	return func(s *settings[V]) { s.tol = tol }
}

// WithMaxIterations limits the number of iterations that update the
// approximate solution. The initial iterate, reported as iteration 1, does
// not count against the limit. The default is the dimension of the system.
func WithMaxIterations[V Vector[V]](n int) Option[V] {
	return func(s *settings[V]) { s.maxIter = n }
}

// WithPreconditioner sets the preconditioner applied whenever a method
// commands a PrecondSolve operation. Without it the identity is used.
func WithPreconditioner[V Vector[V]](m Preconditioner[V]) Option[V] {
	return func(s *settings[V]) { s.pre = m }
}

// WithCallback registers fn to be invoked once per completed iteration with
// the iteration index, the current solution, and the current convergence
// scalar. The callback is purely observational and is called synchronously
// on the solving goroutine; it must not retain or modify x. A non-nil error
// aborts the solve and propagates to the caller unchanged.
func WithCallback[V Vector[V]](fn func(iteration int, x V, convergence float64) error) Option[V] {
	return func(s *settings[V]) { s.callback = fn }
}

// WithHistory requests per-iteration snapshots of the given fields in
// Result.History. Only every stride-th iteration is recorded; iteration 1 is
// always recorded. The field set is fixed for the whole solve.
func WithHistory[V Vector[V]](stride int, fields ...Field) Option[V] {
	return func(s *settings[V]) {
		s.histStride = stride
		for _, f := range fields {
			if f >= numFields {
				panic("linsolve: unknown history field")
			}
			s.histFields |= 1 << f
		}
	}
}

// WithProgress registers fn to receive an advisory completion estimate in
// percent after every iteration. The estimate is monotone, between 0 and
// 100, and combines linear progress toward the iteration limit with
// logarithmic progress toward the tolerance. It has no effect on the solve.
func WithProgress[V Vector[V]](fn func(percent float64)) Option[V] {
	return func(s *settings[V]) { s.progress = fn }
}
