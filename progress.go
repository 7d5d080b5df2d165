// Copyright ©2024 The linsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsolve

import "math"

// progressTracker produces the advisory completion estimate delivered to
// the WithProgress hook. The estimate is the larger of two views of the
// solve: how far along the iteration budget it is, and how far the
// convergence scalar has fallen toward the tolerance on a logarithmic
// scale. It is clamped to [0, 100] and never decreases.
type progressTracker struct {
	fn      func(percent float64)
	tol     float64
	maxIter int

	conv0 float64
	last  float64
}

func (p *progressTracker) observe(iteration int, conv float64) {
	if p.fn == nil {
		return
	}
	if iteration == 1 {
		p.conv0 = conv
	}
	est := 100 * float64(iteration-1) / float64(p.maxIter)
	if conv > 0 && p.conv0 > 0 && p.tol < p.conv0 {
		lg := 100 * math.Log(conv/p.conv0) / math.Log(p.tol/p.conv0)
		est = math.Max(est, lg)
	}
	est = math.Min(est, 100)
	if est < p.last {
		est = p.last
	}
	p.last = est
	p.fn(est)
}
