// Copyright ©2024 The linsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linsolve provides iterative algorithms for solving systems of
// linear equations
//
//	A x = b,
//
// where A is an abstract linear operator. The solvers access vectors and
// operators only through small capability contracts, so the same algorithms
// work with dense matrices, sparse matrices, matrix-free operators, and
// backends that keep their data elsewhere entirely.
//
// Iterative methods implement the Method interface and are driven by Solve,
// which mediates between the method and the concrete operator using a
// reverse-communication scheme: the method commands operations (a
// matrix-vector product, a preconditioner solve) and the driver performs
// them. The driver also owns the bookkeeping that is common to all methods:
// iteration counting, convergence checking, best-iterate tracking, history
// recording, and the optional per-iteration callback and progress hooks.
//
// The Krylov function is a standalone one-shot solver that combines vectors
// of a raw, non-orthogonalized Krylov sequence by a least-squares solve. It
// shares the capability contracts but not the iteration loop.
//
// The dense subpackage provides []float64-backed vector and operator types
// built on gonum.
package linsolve
