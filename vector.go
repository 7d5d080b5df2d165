// Copyright ©2024 The linsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsolve

// Vector is the capability contract that the solvers require of a vector
// type. It is deliberately small: the solvers never access elements of a
// vector, they only combine whole vectors linearly and take inner products.
// A type V satisfies the contract by implementing the methods with itself as
// the argument type, for example
//
//	type Vec []float64
//
//	func (v Vec) Dot(w Vec) float64 { ... }
//
// so that Vec implements Vector[Vec].
//
// All mutating methods operate in place on the receiver. Implementations
// must panic on mismatched dimensions; the solvers always pass vectors of
// the dimension of the right-hand side.
type Vector[V any] interface {
	// Dim returns the number of elements of the vector.
	Dim() int

	// Dot returns the inner product of the receiver with v.
	Dot(v V) float64

	// AddScaled adds alpha*v to the receiver.
	AddScaled(alpha float64, v V)

	// Scale multiplies the receiver by alpha.
	Scale(alpha float64)

	// CopyFrom copies the elements of v into the receiver.
	CopyFrom(v V)

	// Clone returns a new vector with no shared state that is an exact
	// copy of the receiver.
	Clone() V
}

// zeroLike returns a new zero vector with the shape of v.
func zeroLike[V Vector[V]](v V) V {
	w := v.Clone()
	w.Scale(0)
	return w
}
