// Copyright ©2024 The linsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interp provides one-dimensional piecewise-linear interpolation.
package interp

import (
	"errors"
	"sort"
)

var (
	// ErrMismatchedLengths is returned when the knot and value slices
	// have different lengths.
	ErrMismatchedLengths = errors.New("interp: mismatched slice lengths")

	// ErrTooFewKnots is returned when fewer than two knots are supplied.
	ErrTooFewKnots = errors.New("interp: need at least two knots")

	// ErrUnsortedKnots is returned when the knots are not strictly
	// increasing.
	ErrUnsortedKnots = errors.New("interp: knots not strictly increasing")
)

// Linear returns an evaluator of the piecewise-linear function through the
// points (xs[i], ys[i]). The knots xs must be strictly increasing. Outside
// the knot range the evaluator extrapolates linearly from the nearest
// segment. The input slices are copied.
func Linear(xs, ys []float64) (func(x float64) float64, error) {
	if len(xs) != len(ys) {
		return nil, ErrMismatchedLengths
	}
	if len(xs) < 2 {
		return nil, ErrTooFewKnots
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, ErrUnsortedKnots
		}
	}

	kx := make([]float64, len(xs))
	ky := make([]float64, len(ys))
	copy(kx, xs)
	copy(ky, ys)

	return func(x float64) float64 {
		j := sort.SearchFloat64s(kx, x)
		switch {
		case j == 0:
			j = 1
		case j == len(kx):
			j = len(kx) - 1
		}
		t := (x - kx[j-1]) / (kx[j] - kx[j-1])
		return ky[j-1] + t*(ky[j]-ky[j-1])
	}, nil
}
