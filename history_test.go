// Copyright ©2024 The linsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsolve_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fieldsolve/linsolve"
	"github.com/fieldsolve/linsolve/dense"
)

// TestHistoryStride exhausts the iteration budget and checks that exactly
// iteration 1 and the stride multiples are recorded.
func TestHistoryStride(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	a := randomSPD(50, rnd)
	b := ones(50)

	res, err := linsolve.Solve(a, b, &linsolve.CG[vec]{},
		linsolve.WithTolerance[vec](1e-14),
		linsolve.WithMaxIterations[vec](5),
		linsolve.WithHistory[vec](2, linsolve.Iteration, linsolve.ElapsedSeconds))
	require.ErrorIs(t, err, linsolve.ErrIterationLimit)
	require.Equal(t, 6, res.Stats.Iterations)

	var got []int
	for _, rec := range res.History {
		got = append(got, rec.Iteration)
	}
	require.Equal(t, []int{1, 2, 4, 6}, got)

	for i := 1; i < len(res.History); i++ {
		require.GreaterOrEqual(t, res.History[i].ElapsedSeconds, res.History[i-1].ElapsedSeconds)
	}
	require.GreaterOrEqual(t, res.History[0].ElapsedSeconds, 0.0)
}

// TestHistoryFields checks that only the requested fields are populated.
func TestHistoryFields(t *testing.T) {
	a := dense.Diagonal{1, 2, 3}
	b := vec{1, 1, 1}

	res, err := linsolve.Solve(a, b, &linsolve.CG[vec]{},
		linsolve.WithTolerance[vec](1e-10),
		linsolve.WithHistory[vec](1, linsolve.Solution, linsolve.ConvergenceScalar))
	require.NoError(t, err)
	require.NotEmpty(t, res.History)

	first := res.History[0]
	// Iteration, Residual and ElapsedSeconds were not requested.
	require.Equal(t, 0, first.Iteration)
	require.Nil(t, first.Residual)
	require.Equal(t, 0.0, first.ElapsedSeconds)

	// The first snapshot is the initial iterate: x = 0 and the
	// convergence scalar is b·b.
	require.Equal(t, vec{0, 0, 0}, first.Solution)
	require.InDelta(t, 3, first.Convergence, 1e-14)

	last := res.History[len(res.History)-1]
	require.Less(t, last.Convergence, first.Convergence)
}

// TestHistoryCopies checks that recorded vectors are snapshots, not views
// of the solver workspace.
func TestHistoryCopies(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	a := randomSPD(10, rnd)
	b := ones(10)

	res, err := linsolve.Solve(a, b, &linsolve.CG[vec]{},
		linsolve.WithTolerance[vec](1e-12),
		linsolve.WithMaxIterations[vec](20),
		linsolve.WithHistory[vec](1, linsolve.Solution, linsolve.ResidualVector))
	require.NoError(t, err)
	require.Greater(t, len(res.History), 1)

	// The initial iterate is the zero vector. Later snapshots must not
	// have overwritten it.
	require.Equal(t, dense.NewVector(10), res.History[0].Solution)
	require.NotEqual(t, res.History[0].Solution, res.History[len(res.History)-1].Solution)
	require.Equal(t, b, res.History[0].Residual)
}
