// Copyright ©2024 The linsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ode provides a fixed-step explicit Runge-Kutta integrator for
// ordinary differential equations whose state satisfies the linsolve vector
// contract.
package ode

import "github.com/fieldsolve/linsolve"

// Func evaluates the right-hand side of the differential equation
//
//	y'(t) = f(t, y),
//
// storing the derivative into dy. It must overwrite every element of dy and
// must not modify y.
type Func[V linsolve.Vector[V]] func(t float64, y, dy V)

// RK4 integrates y' = f(t, y) from t0 to t1 with the classical fourth-order
// Runge-Kutta method using the given number of equal steps. It returns the
// state at t1; y0 is not modified.
//
// The method is stateless and performs no error estimation or step-size
// control. The local truncation error is O(h⁵) in the step size h.
func RK4[V linsolve.Vector[V]](f Func[V], y0 V, t0, t1 float64, steps int) V {
	if steps <= 0 {
		panic("ode: number of steps not positive")
	}

	h := (t1 - t0) / float64(steps)
	y := y0.Clone()
	k1 := y0.Clone()
	k2 := y0.Clone()
	k3 := y0.Clone()
	k4 := y0.Clone()
	u := y0.Clone()

	for i := 0; i < steps; i++ {
		t := t0 + float64(i)*h

		f(t, y, k1)

		u.CopyFrom(y)
		u.AddScaled(h/2, k1)
		f(t+h/2, u, k2)

		u.CopyFrom(y)
		u.AddScaled(h/2, k2)
		f(t+h/2, u, k3)

		u.CopyFrom(y)
		u.AddScaled(h, k3)
		f(t+h, u, k4)

		y.AddScaled(h/6, k1)
		y.AddScaled(h/3, k2)
		y.AddScaled(h/3, k3)
		y.AddScaled(h/6, k4)
	}
	return y
}
