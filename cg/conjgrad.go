// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cg

import (
	"context"

	"github.com/emer/nfm/nfm"
	"github.com/emer/nfm/noisy"
	"github.com/emer/nfm/onedim"
)

// Mode selects which direction-update rule ConjGrad follows.
type Mode int

const (
	// NoCG always follows the raw (negative-noise-free) gradient direction,
	// making ConjGrad behave as plain steepest descent.
	NoCG Mode = iota
	// FR is Fletcher-Reeves conjugate-gradient.
	FR
	// PR is Polak-Ribiere conjugate-gradient.
	PR
	// PR0 is Polak-Ribiere with the ratio clamped to be non-negative,
	// resetting to steepest descent whenever the raw ratio would be
	// negative.
	PR0
)

// ConjGrad is the noisy Conjugate-Gradient driver. It requires a target
// function with gradient; FindMin returns ErrMissingGradient otherwise.
type ConjGrad struct {
	nfm.Core
	Mode   Mode
	Params onedim.Params
}

// New builds a ConjGrad driver with the defaults this package has always
// used: one check of MaxNConstValues is effectively disabled (it is 1,
// i.e. the minimizer does not rely on value-stagnation to stop, since
// divergence from the line search's own reject-and-return-unchanged
// behavior already provides a stopping signal), and EpsX/EpsF match
// onedim's defaults.
func New(targetFun noisy.FunctionWithGradient) *ConjGrad {
	return &ConjGrad{
		Core: nfm.Core{
			TargetFun:       targetFun,
			GradFun:         targetFun,
			MaxNConstValues: 1,
			EpsX:            onedim.DefaultParams().EpsX,
			EpsF:            onedim.DefaultParams().EpsF,
		},
		Mode:   FR,
		Params: onedim.DefaultParams(),
	}
}

// FindMin runs the Conjugate-Gradient loop starting from x until a
// stopping criterion fires or ctx is cancelled.
func (cg *ConjGrad) FindMin(ctx context.Context, x []float64) (noisy.IOPair, error) {
	if cg.GradFun == nil {
		return noisy.IOPair{}, noisy.ErrMissingGradient
	}
	if err := cg.Core.Init(x); err != nil {
		return noisy.IOPair{}, err
	}
	cg.Log.LogString("Begin ConjGrad.FindMin procedure")
	cg.Params.EpsX = cg.EpsX
	cg.Params.EpsF = cg.EpsF

	ndim := cg.TargetFun.NDim()
	grad := noisy.NewGradient(ndim, cg.GradErrStop)

	f, err := cg.GradFun.FGrad(cg.Last.X, &grad)
	if err != nil {
		return noisy.IOPair{}, err
	}
	cg.Last.F = f
	cg.Log.LogGradient("Raw gradient", grad)
	cg.PushValue(f)
	if cg.ShouldStop(0, &grad) {
		return cg.Last, nil
	}

	// conjv holds the actual search direction, the negative gradient
	// (steepest descent) possibly mixed with the previous direction;
	// gradOld/gdotOld track the raw gradient for the FR/PR ratio, which is
	// invariant under its sign.
	conjv := negate(grad.Val)
	gradOld := append([]float64(nil), grad.Val...)
	gdotOld := dot(grad.Val, grad.Val)

	cg.Last, err = onedim.LineMin(cg.TargetFun, cg.Last, conjv, cg.Params)
	if err != nil {
		return noisy.IOPair{}, err
	}
	cg.PushValue(cg.Last.F)
	cg.Log.LogPair("Step 1", cg.Last)

	for iter := 1; !cg.ShouldStop(iter, &grad); iter++ {
		if nfm.CtxDone(ctx) {
			return cg.Last, ctx.Err()
		}

		if err := cg.GradFun.Grad(cg.Last.X, &grad); err != nil {
			return noisy.IOPair{}, err
		}
		cg.Log.LogGradient("Raw gradient", grad)
		if cg.GradErrStop && !grad.Meaningful(0) {
			break
		}

		switch cg.Mode {
		case NoCG:
			for i := range conjv {
				conjv[i] = -grad.Val[i]
			}
		default:
			gdotNew := dot(grad.Val, grad.Val)
			var ratio float64
			switch cg.Mode {
			case FR:
				if gdotOld != 0 {
					ratio = gdotNew / gdotOld
				}
			default: // PR, PR0
				var prprod float64
				for i := range grad.Val {
					prprod += grad.Val[i] * (grad.Val[i] - gradOld[i])
				}
				if gdotOld != 0 {
					ratio = prprod / gdotOld
				}
				if cg.Mode == PR0 && ratio < 0 {
					ratio = 0
				}
				copy(gradOld, grad.Val)
			}
			gdotOld = gdotNew
			for i := range conjv {
				conjv[i] = -grad.Val[i] + ratio*conjv[i]
			}
			cg.Log.LogVector("Conjugated vectors", conjv)
		}

		cg.Last, err = onedim.LineMin(cg.TargetFun, cg.Last, conjv, cg.Params)
		if err != nil {
			return noisy.IOPair{}, err
		}
		cg.PushValue(cg.Last.F)
		cg.Log.LogPair("Step", cg.Last)
	}

	cg.Log.LogString("End ConjGrad.FindMin procedure")
	return cg.Last, nil
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func negate(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = -x
	}
	return out
}
