// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package onedim

import "github.com/emer/nfm/noisy"

// Params configures a single LineMin call: the back/forward step used to
// build the initial bracket, and the tolerances and iteration budgets
// passed on to FindBracket and BrentMin.
type Params struct {
	StepLeft     float64 // backward step (>0); how far the bracket is allowed to probe "behind" p0
	StepRight    float64 // forward step (>0); the nominal step size
	EpsX         float64
	EpsF         float64
	MaxNBracket  int
	MaxNMinimize int
}

// DefaultParams mirrors the defaults used by the Conjugate-Gradient driver.
func DefaultParams() Params {
	return Params{
		StepLeft:     1.0,
		StepRight:    1.0,
		EpsX:         1e-4,
		EpsF:         1e-4,
		MaxNBracket:  10,
		MaxNMinimize: 20,
	}
}

// LineMin restricts mdf to the line through p0Pair.X along dir, finds a
// bracket and minimizes within it, and returns the new multi-dimensional
// point. The new point is accepted only if its value is noisily <= the
// input p0Pair.F; otherwise p0Pair is returned unchanged, so that callers
// always make non-deteriorating progress. Neither outcome is an error:
// failure to improve is a normal, expected result of a line search.
func LineMin(mdf noisy.Function, p0Pair noisy.IOPair, dir []float64, params Params) (noisy.IOPair, error) {
	if mdf.NDim() != len(p0Pair.X) || mdf.NDim() != len(dir) {
		return noisy.IOPair{}, noisy.ErrDimensionMismatch
	}
	if params.StepLeft <= 0 || params.StepRight <= 0 {
		return noisy.IOPair{}, noisy.ErrInvalidArgument
	}

	proj, err := NewProjection1D(mdf, p0Pair.X, dir)
	if err != nil {
		return noisy.IOPair{}, err
	}

	aF, err := eval1D(proj, -params.StepLeft)
	if err != nil {
		return noisy.IOPair{}, err
	}
	bX := -params.StepLeft + (params.StepRight+params.StepLeft)*igold2
	bF, err := eval1D(proj, bX)
	if err != nil {
		return noisy.IOPair{}, err
	}
	cF, err := eval1D(proj, params.StepRight)
	if err != nil {
		return noisy.IOPair{}, err
	}

	bracket := Bracket{
		A: Point{X: -params.StepLeft, F: aF},
		B: Point{X: bX, F: bF},
		C: Point{X: params.StepRight, F: cF},
	}

	ok, err := FindBracket(proj, &bracket, params.EpsX, params.MaxNBracket)
	if err != nil {
		return noisy.IOPair{}, err
	}
	if !ok {
		return p0Pair, nil
	}

	min1D, err := BrentMin(proj, bracket, params.EpsX, params.EpsF, params.MaxNMinimize)
	if err != nil {
		return noisy.IOPair{}, err
	}

	if !min1D.F.LessEqual(p0Pair.F) {
		return p0Pair, nil
	}

	newX := make([]float64, mdf.NDim())
	proj.VecFromX(min1D.X, newX)
	return noisy.IOPair{X: newX, F: min1D.F}, nil
}
