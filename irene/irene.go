// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package irene

import (
	"context"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/emer/nfm/fire"
	"github.com/emer/nfm/md"
	"github.com/emer/nfm/nfm"
	"github.com/emer/nfm/noisy"
)

// IRENE is the noisy-aware FIRE variant: its parameters mirror fire.FIRE's
// exactly, but every P-driven decision goes through a noisy comparison.
type IRENE struct {
	nfm.Core

	Dt0        float64
	DtMax      float64
	DtMin      float64
	NMin       int
	FInc       float64
	FDec       float64
	Alpha0     float64
	FAlpha     float64
	Freeze     fire.FreezeMode
	Integrator md.Integrator
	Mi         []float64
	NDtMin     int
}

// New builds an IRENE driver with the same defaults as fire.New.
func New(targetFun noisy.FunctionWithGradient, dt0, dtMax float64) *IRENE {
	return &IRENE{
		Core: nfm.Core{
			TargetFun:       targetFun,
			GradFun:         targetFun,
			MaxNConstValues: 20,
		},
		Dt0:        math.Max(0, math.Min(dtMax, dt0)),
		DtMax:      math.Max(0, dtMax),
		NMin:       5,
		FInc:       1.1,
		FDec:       0.5,
		Alpha0:     0.1,
		FAlpha:     0.99,
		Freeze:     fire.Full,
		Integrator: md.VelocityVerlet,
	}
}

func freezeVelocityNoisy(v, a, aErr []float64, mode fire.FreezeMode) {
	if mode == fire.Full {
		for i := range v {
			v[i] = 0
		}
		return
	}
	for i := range v {
		component := noisy.New(a[i]*v[i], math.Abs(v[i])*aErr[i])
		if component.LessScalar(0) {
			v[i] = 0
		}
	}
}

// FindMin runs the IRENE relaxation loop starting from x until a stopping
// criterion fires, NDtMin consecutive steps at DtMin occur, or ctx is
// cancelled.
func (ir *IRENE) FindMin(ctx context.Context, x []float64) (noisy.IOPair, error) {
	if ir.GradFun == nil {
		return noisy.IOPair{}, noisy.ErrMissingGradient
	}
	if err := ir.Core.Init(x); err != nil {
		return noisy.IOPair{}, err
	}
	ir.Log.LogString("Begin IRENE.FindMin procedure")

	ndim := ir.TargetFun.NDim()
	hasErr := true
	state := md.NewState(ir.Last.X, ir.Mi)
	grad := noisy.NewGradient(ndim, hasErr)

	f, err := ir.GradFun.FGrad(state.X, &grad)
	if err != nil {
		return noisy.IOPair{}, err
	}
	ir.Last.F = f
	aErr := make([]float64, ndim)
	accelFromGrad(grad.Val, ir.Mi, state.A)
	errFromGrad(grad.Err, ir.Mi, aErr)

	dt := ir.Dt0
	alpha := ir.Alpha0
	Npos := 0
	nAtDtMin := 0

	for iter := 0; ; iter++ {
		if nfm.CtxDone(ctx) {
			return ir.Last, ctx.Err()
		}

		ir.PushValue(ir.Last.F)
		if ir.NDtMin > 0 && nAtDtMin >= ir.NDtMin {
			ir.Log.LogString("DtMin reached NDtMin consecutive times, interrupting minimization procedure.")
			break
		}
		if ir.ShouldStop(iter, &grad) {
			break
		}
		ir.Log.LogPair("Step", ir.Last)

		p := noisy.New(floats.Dot(state.V, state.A), pError(state.V, aErr))

		vnorm := floats.Norm(state.V, 2)
		anorm := floats.Norm(state.A, 2)
		if anorm > 0 {
			for i := range state.V {
				state.V[i] = (1-alpha)*state.V[i] + alpha*vnorm*state.A[i]/anorm
			}
		}

		switch {
		case p.GreaterScalar(0):
			Npos++
			if Npos > ir.NMin {
				dt = math.Min(dt*ir.FInc, ir.DtMax)
				alpha *= ir.FAlpha
			}
		case p.LessScalar(0):
			Npos = 0
			dt = math.Max(dt*ir.FDec, ir.DtMin)
			alpha = ir.Alpha0
			freezeVelocityNoisy(state.V, state.A, aErr, ir.Freeze)
		default:
			// P statistically indistinguishable from zero: do nothing
			// this step, matching the IRENE "pause" behavior.
		}

		if dt == ir.DtMin {
			nAtDtMin++
		} else {
			nAtDtMin = 0
		}

		newF, err := md.DoStep(ir.Integrator, ir.GradFun, &state, &grad, dt)
		if err != nil {
			return noisy.IOPair{}, err
		}
		errFromGrad(grad.Err, ir.Mi, aErr)
		ir.Last = noisy.IOPair{X: append([]float64(nil), state.X...), F: newF}
	}

	ir.Log.LogString("End IRENE.FindMin procedure")
	return ir.Last, nil
}

// accelFromGrad turns a mathematical gradient into a force (-grad*mi).
func accelFromGrad(grad, mi, a []float64) {
	if mi == nil {
		for i := range a {
			a[i] = -grad[i]
		}
		return
	}
	for i := range a {
		a[i] = -grad[i] * mi[i]
	}
}

// errFromGrad propagates a gradient's per-component error through the
// same *mi scaling the force uses; error magnitude has no sign.
func errFromGrad(gradErr, mi, out []float64) {
	if mi == nil {
		copy(out, gradErr)
		return
	}
	for i := range out {
		out[i] = gradErr[i] * mi[i]
	}
}

// pError propagates the per-component error of a (via aErr, already scaled
// by Mi) through the dot product P = v.a: dP/da_i = v_i, combined in
// quadrature since the components are assumed independent.
func pError(v, aErr []float64) float64 {
	var s float64
	for i := range v {
		s += (v[i] * aErr[i]) * (v[i] * aErr[i])
	}
	return math.Sqrt(s)
}
