// Copyright ©2024 The linsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dense_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fieldsolve/linsolve"
	"github.com/fieldsolve/linsolve/dense"
)

var (
	_ linsolve.Vector[dense.Vector]         = dense.Vector(nil)
	_ linsolve.Operator[dense.Vector]       = (*dense.General)(nil)
	_ linsolve.Operator[dense.Vector]       = (*dense.Symmetric)(nil)
	_ linsolve.Operator[dense.Vector]       = dense.Diagonal(nil)
	_ linsolve.Preconditioner[dense.Vector] = dense.Jacobi(nil)
)

func TestVector(t *testing.T) {
	v := dense.Vector{1, 2, 3}
	w := dense.Vector{4, 5, 6}

	require.Equal(t, 3, v.Dim())
	require.Equal(t, 32.0, v.Dot(w))

	u := v.Clone()
	u.AddScaled(2, w)
	require.Equal(t, dense.Vector{9, 12, 15}, u)
	require.Equal(t, dense.Vector{1, 2, 3}, v, "Clone must be independent")

	u.Scale(2)
	require.Equal(t, dense.Vector{18, 24, 30}, u)

	u.CopyFrom(w)
	require.Equal(t, w, u)

	require.Panics(t, func() {
		u.CopyFrom(dense.Vector{1})
	})
}

func TestGeneral(t *testing.T) {
	a := dense.NewGeneral(2)
	a.Set(0, 0, 1)
	a.Set(0, 1, 2)
	a.Set(1, 0, 3)
	a.Set(1, 1, 4)
	require.Equal(t, 2, a.Dim())
	require.Equal(t, 3.0, a.At(1, 0))

	dst := dense.NewVector(2)
	a.Apply(dst, dense.Vector{1, 1})
	require.Equal(t, dense.Vector{3, 7}, dst)

	require.Panics(t, func() {
		a.Apply(dst, dense.Vector{1})
	})
}

func TestSymmetric(t *testing.T) {
	a := dense.NewSymmetric(2)
	a.Set(0, 0, 2)
	a.Set(1, 0, 1) // Stored in the upper triangle.
	a.Set(1, 1, 3)
	require.Equal(t, 1.0, a.At(0, 1))
	require.Equal(t, 1.0, a.At(1, 0))

	dst := dense.NewVector(2)
	a.Apply(dst, dense.Vector{1, 2})
	require.Equal(t, dense.Vector{4, 7}, dst)
}

func TestDiagonal(t *testing.T) {
	d := dense.Diagonal{1, 2, 3}
	dst := dense.NewVector(3)
	d.Apply(dst, dense.Vector{2, 2, 2})
	require.Equal(t, dense.Vector{2, 4, 6}, dst)
}

func TestJacobi(t *testing.T) {
	m := dense.Jacobi{2, 4, 8}
	dst := dense.NewVector(3)
	err := m.Solve(dst, dense.Vector{2, 2, 2})
	require.NoError(t, err)
	require.Equal(t, dense.Vector{1, 0.5, 0.25}, dst)
}
