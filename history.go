// Copyright ©2024 The linsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsolve

import "time"

// Field identifies a per-iteration diagnostic that can be recorded in the
// solve history.
type Field uint8

const (
	// Iteration records the iteration index.
	Iteration Field = iota
	// Solution records a copy of the current approximate solution.
	Solution
	// ResidualVector records a copy of the current residual b-A*x.
	ResidualVector
	// ConvergenceScalar records the current convergence scalar.
	ConvergenceScalar
	// ElapsedSeconds records the wall-clock time since the start of the
	// solve, in seconds, read from the monotonic clock.
	ElapsedSeconds

	numFields
)

// String returns the name of the field.
func (f Field) String() string {
	switch f {
	case Iteration:
		return "iteration"
	case Solution:
		return "solution"
	case ResidualVector:
		return "residualVector"
	case ConvergenceScalar:
		return "convergenceScalar"
	case ElapsedSeconds:
		return "elapsedSeconds"
	default:
		return "unknown"
	}
}

// fieldSet is a bitmask of requested Fields.
type fieldSet uint8

func (s fieldSet) has(f Field) bool { return s&(1<<f) != 0 }

// Record is one history snapshot. Only the fields requested with
// WithHistory are populated; the rest keep their zero values. Vector fields
// are independent copies and remain valid after the solve returns.
type Record[V Vector[V]] struct {
	Iteration      int
	Solution       V
	Residual       V
	Convergence    float64
	ElapsedSeconds float64
}

// recorder captures Records at the configured stride.
type recorder[V Vector[V]] struct {
	fields  fieldSet
	stride  int
	start   time.Time
	records []Record[V]
}

func (rec *recorder[V]) observe(iteration int, ctx *Context[V]) {
	if iteration != 1 && iteration%rec.stride != 0 {
		return
	}
	var r Record[V]
	if rec.fields.has(Iteration) {
		r.Iteration = iteration
	}
	if rec.fields.has(Solution) {
		r.Solution = ctx.X.Clone()
	}
	if rec.fields.has(ResidualVector) {
		r.Residual = ctx.Residual.Clone()
	}
	if rec.fields.has(ConvergenceScalar) {
		r.Convergence = ctx.Convergence
	}
	if rec.fields.has(ElapsedSeconds) {
		r.ElapsedSeconds = time.Since(rec.start).Seconds()
	}
	rec.records = append(rec.records, r)
}
