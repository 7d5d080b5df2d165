// Copyright ©2024 The linsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dense

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// General is a dense, in general non-symmetric, square matrix operator
// stored in row-major order.
type General struct {
	mat blas64.General
}

// NewGeneral returns an n×n zero matrix operator.
func NewGeneral(n int) *General {
	return &General{
		mat: blas64.General{
			Rows:   n,
			Cols:   n,
			Stride: n,
			Data:   make([]float64, n*n),
		},
	}
}

// Dim returns the dimension of the matrix.
func (g *General) Dim() int { return g.mat.Rows }

// At returns the element at row i, column j.
func (g *General) At(i, j int) float64 { return g.mat.Data[i*g.mat.Stride+j] }

// Set sets the element at row i, column j to v.
func (g *General) Set(i, j int, v float64) { g.mat.Data[i*g.mat.Stride+j] = v }

// Apply computes A*v and stores the result into dst.
func (g *General) Apply(dst, v Vector) {
	if len(v) != g.mat.Cols || len(dst) != g.mat.Rows {
		panic("dense: dimension mismatch")
	}
	x := blas64.Vector{N: len(v), Data: v, Inc: 1}
	y := blas64.Vector{N: len(dst), Data: dst, Inc: 1}
	blas64.Gemv(blas.NoTrans, 1, g.mat, x, 0, y)
}

// Symmetric is a dense symmetric matrix operator. Only the upper triangle
// is stored and referenced.
type Symmetric struct {
	mat blas64.Symmetric
}

// NewSymmetric returns an n×n zero symmetric matrix operator.
func NewSymmetric(n int) *Symmetric {
	return &Symmetric{
		mat: blas64.Symmetric{
			Uplo:   blas.Upper,
			N:      n,
			Stride: n,
			Data:   make([]float64, n*n),
		},
	}
}

// Dim returns the dimension of the matrix.
func (s *Symmetric) Dim() int { return s.mat.N }

// At returns the element at row i, column j.
func (s *Symmetric) At(i, j int) float64 {
	if i > j {
		i, j = j, i
	}
	return s.mat.Data[i*s.mat.Stride+j]
}

// Set sets the elements at (i,j) and (j,i) to v.
func (s *Symmetric) Set(i, j int, v float64) {
	if i > j {
		i, j = j, i
	}
	s.mat.Data[i*s.mat.Stride+j] = v
}

// Apply computes A*v and stores the result into dst.
func (s *Symmetric) Apply(dst, v Vector) {
	if len(v) != s.mat.N || len(dst) != s.mat.N {
		panic("dense: dimension mismatch")
	}
	x := blas64.Vector{N: len(v), Data: v, Inc: 1}
	y := blas64.Vector{N: len(dst), Data: dst, Inc: 1}
	blas64.Symv(1, s.mat, x, 0, y)
}

// Diagonal is a diagonal matrix operator represented by its diagonal.
type Diagonal []float64

// Apply computes D*v and stores the result into dst.
func (d Diagonal) Apply(dst, v Vector) {
	if len(v) != len(d) || len(dst) != len(d) {
		panic("dense: dimension mismatch")
	}
	for i, di := range d {
		dst[i] = di * v[i]
	}
}

// Jacobi is the diagonal (Jacobi) preconditioner. It stores the diagonal of
// the operator and solves M z = r by elementwise division. Zero diagonal
// entries are not guarded.
type Jacobi []float64

// Solve stores r divided elementwise by the stored diagonal into dst.
func (m Jacobi) Solve(dst, r Vector) error {
	if len(r) != len(m) || len(dst) != len(m) {
		panic("dense: dimension mismatch")
	}
	for i, mi := range m {
		dst[i] = r[i] / mi
	}
	return nil
}
