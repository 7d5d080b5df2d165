// Copyright ©2024 The linsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsolve

// Operator represents a linear map A. It is the solvers' only view of the
// matrix of the linear system; how the map is represented and evaluated is
// entirely the operator's concern.
type Operator[V Vector[V]] interface {
	// Apply computes A*v and stores the result into dst. It must not
	// modify v.
	Apply(dst, v V)
}

// OperatorFunc adapts an ordinary function to the Operator interface.
type OperatorFunc[V Vector[V]] func(dst, v V)

// Apply calls f(dst, v).
func (f OperatorFunc[V]) Apply(dst, v V) { f(dst, v) }

// Preconditioner represents an approximation M of the inverse of an
// Operator that is cheap to apply. A nil Preconditioner is interpreted
// everywhere in this package as the identity.
type Preconditioner[V Vector[V]] interface {
	// Solve stores into dst the solution of
	//  M z = r.
	// It must not modify r. A non-nil error aborts the solve that
	// commanded it and propagates to the caller unchanged.
	Solve(dst, r V) error
}

// PreconditionerFunc adapts an ordinary function to the Preconditioner
// interface.
type PreconditionerFunc[V Vector[V]] func(dst, r V) error

// Solve calls f(dst, r).
func (f PreconditionerFunc[V]) Solve(dst, r V) error { return f(dst, r) }
