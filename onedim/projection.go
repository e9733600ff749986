// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package onedim

import "github.com/emer/nfm/noisy"

// Projection1D restricts a multi-dimensional Function to the line
// p0 + t*direction, i.e. g(t) = f(p0 + t*direction). It borrows mdf for
// its own lifetime; callers must not mutate p0 or direction afterward.
type Projection1D struct {
	mdf       noisy.Function
	p0        []float64
	direction []float64
	scratch   []float64 // reused across evaluations to avoid per-call allocation
}

// NewProjection1D builds a 1D projection of mdf along direction, anchored
// at p0. Returns ErrDimensionMismatch if p0 or direction disagree in size
// with mdf.NDim().
func NewProjection1D(mdf noisy.Function, p0, direction []float64) (*Projection1D, error) {
	ndim := mdf.NDim()
	if len(p0) != ndim || len(direction) != ndim {
		return nil, noisy.ErrDimensionMismatch
	}
	return &Projection1D{
		mdf:       mdf,
		p0:        p0,
		direction: direction,
		scratch:   make([]float64, ndim),
	}, nil
}

// NDim always returns 1: Projection1D is itself a 1D Function.
func (p *Projection1D) NDim() int { return 1 }

// VecFromX computes the true N-dimensional vector p0 + x*direction into out,
// which must already have length NDim of the wrapped function.
func (p *Projection1D) VecFromX(x float64, out []float64) {
	for i := range out {
		out[i] = p.p0[i] + p.direction[i]*x
	}
}

// F evaluates the wrapped multi-dimensional function at p0 + x[0]*direction.
func (p *Projection1D) F(x []float64) (noisy.Value, error) {
	p.VecFromX(x[0], p.scratch)
	return p.mdf.F(p.scratch)
}
