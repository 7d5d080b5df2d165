// Copyright ©2024 The linsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsolve

import "errors"

// Package-level sentinel errors. Callers match them with errors.Is.
var (
	// ErrInvalidOperator is returned when the initial convergence scalar
	// is NaN, that is, when the operator or the preconditioner produced a
	// degenerate inner product from the initial residual. All subsequent
	// arithmetic would be meaningless, so the solve aborts immediately.
	ErrInvalidOperator = errors.New("linsolve: operator produced invalid convergence scalar")

	// ErrIterationLimit is returned when the iteration budget is
	// exhausted before the tolerance is reached. The accompanying Result
	// still holds the best iterate observed.
	ErrIterationLimit = errors.New("linsolve: iteration limit reached")

	// ErrBreakdown is returned by methods whose recurrence divides by a
	// scalar that has become too small to continue, such as rho or omega
	// in BiCGStab.
	ErrBreakdown = errors.New("linsolve: method breakdown")
)
