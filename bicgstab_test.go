// Copyright ©2024 The linsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsolve_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/fieldsolve/linsolve"
	"github.com/fieldsolve/linsolve/dense"
	"github.com/fieldsolve/linsolve/internal/dok"
)

func TestBiCGStab(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, n := range []int{1, 2, 5, 10, 50} {
		a := randomDominant(n, rnd)
		want := ones(n)
		b := dense.NewVector(n)
		a.Apply(b, want)

		res, err := linsolve.Solve(a, b, &linsolve.BiCGStab[vec]{},
			linsolve.WithTolerance[vec](1e-14),
			linsolve.WithMaxIterations[vec](10*n))
		if err != nil {
			t.Errorf("Case n=%v: unexpected error %v", n, err)
			continue
		}
		dist := floats.Distance(res.X, want, math.Inf(1))
		if dist > 1e-6 {
			t.Errorf("Case n=%v: unexpected solution, |want-got|=%v", n, dist)
		}
	}
}

// TestBiCGStabSparse solves a non-symmetric diagonally dominant tridiagonal
// system stored in dictionary-of-keys format.
func TestBiCGStabSparse(t *testing.T) {
	const n = 25
	a := dok.New(n, n)
	for i := 0; i < n; i++ {
		a.Set(i, i, 3)
		if i > 0 {
			a.Set(i, i-1, -0.5)
		}
		if i < n-1 {
			a.Set(i, i+1, -1)
		}
	}
	want := ones(n)
	b := dense.NewVector(n)
	a.Apply(b, want)

	res, err := linsolve.Solve(a, b, &linsolve.BiCGStab[vec]{},
		linsolve.WithTolerance[vec](1e-14),
		linsolve.WithMaxIterations[vec](10*n))
	require.NoError(t, err)
	require.Less(t, floats.Distance(res.X, want, math.Inf(1)), 1e-6)
}

func TestBiCGStabInitialGuess(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	a := randomDominant(10, rnd)
	want := ones(10)
	b := dense.NewVector(10)
	a.Apply(b, want)

	res, err := linsolve.Solve(a, b, &linsolve.BiCGStab[vec]{},
		linsolve.WithInitialGuess(want))
	require.NoError(t, err)
	require.Equal(t, 1, res.Stats.Iterations)
	require.Equal(t, want, res.X)
}
