// Copyright ©2024 The linsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package triplet provides a coordinate-format sparse matrix operator for
// building test systems.
package triplet

import "github.com/fieldsolve/linsolve/dense"

type entry struct {
	i, j int
	v    float64
}

// Matrix is a sparse matrix stored as a list of (row, column, value)
// entries. Duplicate entries accumulate.
type Matrix struct {
	r, c int
	data []entry
}

// New returns an empty r×c matrix.
func New(r, c int) *Matrix {
	return &Matrix{
		r: r,
		c: c,
	}
}

// Dims returns the dimensions of the matrix.
func (m *Matrix) Dims() (r, c int) {
	return m.r, m.c
}

// Append adds v at row i, column j.
func (m *Matrix) Append(i, j int, v float64) {
	if i < 0 || m.r <= i {
		panic("triplet: row index out of range")
	}
	if j < 0 || m.c <= j {
		panic("triplet: column index out of range")
	}
	m.data = append(m.data, entry{i, j, v})
}

// Apply computes A*x and stores the result into dst.
func (m *Matrix) Apply(dst, x dense.Vector) {
	if m.c != len(x) {
		panic("triplet: dimension mismatch")
	}
	if m.r != len(dst) {
		panic("triplet: dimension mismatch")
	}
	for i := range dst {
		dst[i] = 0
	}
	for _, aij := range m.data {
		dst[aij.i] += aij.v * x[aij.j]
	}
}
