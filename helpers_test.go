// Copyright ©2024 The linsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsolve_test

import (
	"math/rand"

	"github.com/fieldsolve/linsolve/dense"
)

type vec = dense.Vector

// ones returns the vector [1,1,...,1] of dimension n.
func ones(n int) vec {
	v := dense.NewVector(n)
	for i := range v {
		v[i] = 1
	}
	return v
}

// randomSPD returns a random diagonally dominant symmetric positive
// definite n×n matrix.
func randomSPD(n int, rnd *rand.Rand) *dense.Symmetric {
	a := dense.NewSymmetric(n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			a.Set(i, j, rnd.Float64())
		}
	}
	for i := 0; i < n; i++ {
		a.Set(i, i, a.At(i, i)+float64(n))
	}
	return a
}

// randomDominant returns a random diagonally dominant, in general
// non-symmetric, n×n matrix.
func randomDominant(n int, rnd *rand.Rand) *dense.General {
	a := dense.NewGeneral(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, j, rnd.Float64())
		}
	}
	for i := 0; i < n; i++ {
		a.Set(i, i, a.At(i, i)+float64(n))
	}
	return a
}
