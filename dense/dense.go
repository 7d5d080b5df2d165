// Copyright ©2024 The linsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dense provides vector and operator types backed by []float64 for
// use with the linsolve solvers. The vector arithmetic and the dense
// matrix-vector kernels are implemented on top of gonum.
package dense

import "gonum.org/v1/gonum/floats"

// Vector is a vector of float64 elements. It satisfies the linsolve vector
// contract with itself as the type parameter.
type Vector []float64

// NewVector returns a zero vector of dimension n.
func NewVector(n int) Vector {
	return make(Vector, n)
}

// Dim returns the number of elements.
func (v Vector) Dim() int { return len(v) }

// Dot returns the Euclidean inner product with w.
func (v Vector) Dot(w Vector) float64 { return floats.Dot(v, w) }

// AddScaled adds alpha*w to v in place.
func (v Vector) AddScaled(alpha float64, w Vector) { floats.AddScaled(v, alpha, w) }

// Scale multiplies v by alpha in place.
func (v Vector) Scale(alpha float64) { floats.Scale(alpha, v) }

// CopyFrom copies the elements of w into v.
func (v Vector) CopyFrom(w Vector) {
	if len(v) != len(w) {
		panic("dense: dimension mismatch")
	}
	copy(v, w)
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	w := make(Vector, len(v))
	copy(w, v)
	return w
}
