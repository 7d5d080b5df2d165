// Copyright ©2024 The linsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dok provides a dictionary-of-keys sparse matrix operator for
// building test systems.
package dok

import "github.com/fieldsolve/linsolve/dense"

type index struct {
	row, col int
}

// Matrix is a sparse matrix stored as a map from (row, column) to value.
type Matrix struct {
	rows, cols int

	data map[index]float64
}

// New returns an empty r×c matrix.
func New(r, c int) *Matrix {
	return &Matrix{
		rows: r,
		cols: c,
		data: make(map[index]float64),
	}
}

// Dims returns the dimensions of the matrix.
func (m *Matrix) Dims() (r, c int) {
	return m.rows, m.cols
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || m.rows <= i {
		panic("dok: row index out of range")
	}
	if j < 0 || m.cols <= j {
		panic("dok: column index out of range")
	}
	return m.data[index{i, j}]
}

// Set sets the element at row i, column j to v.
func (m *Matrix) Set(i, j int, v float64) {
	if i < 0 || m.rows <= i {
		panic("dok: row index out of range")
	}
	if j < 0 || m.cols <= j {
		panic("dok: column index out of range")
	}
	m.data[index{i, j}] = v
}

// Apply computes A*x and stores the result into dst.
func (m *Matrix) Apply(dst, x dense.Vector) {
	if m.cols != len(x) {
		panic("dok: dimension mismatch")
	}
	if m.rows != len(dst) {
		panic("dok: dimension mismatch")
	}
	for i := range dst {
		dst[i] = 0
	}
	for ij, aij := range m.data {
		dst[ij.row] += aij * x[ij.col]
	}
}
