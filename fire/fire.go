// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fire

import (
	"context"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/emer/nfm/md"
	"github.com/emer/nfm/nfm"
	"github.com/emer/nfm/noisy"
)

// FreezeMode selects how the velocity is reset after an uphill step.
type FreezeMode int

const (
	// Full zeroes the entire velocity vector.
	Full FreezeMode = iota
	// Selective zeroes only the components where force and velocity
	// disagree in sign (a_i*v_i < 0).
	Selective
)

// FIRE is the Fast Inertial Relaxation Engine driver.
type FIRE struct {
	nfm.Core

	Dt0        float64
	DtMax      float64
	DtMin      float64
	NMin       int
	FInc       float64
	FDec       float64
	Alpha0     float64
	FAlpha     float64
	Freeze     FreezeMode
	Integrator md.Integrator
	Mi         []float64 // optional per-component inverse mass; nil means 1
	NDtMin     int // stop after this many consecutive steps at DtMin; <=0 disables
}

// New builds a FIRE driver with the parameters from the original paper
// (NMin=5, FInc=1.1, FDec=0.5, Alpha0=0.1, FAlpha=0.99), full-system
// freezing, the Velocity-Verlet integrator, and a stagnation window of 20
// consecutive equal values.
func New(targetFun noisy.FunctionWithGradient, dt0, dtMax float64) *FIRE {
	return &FIRE{
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
		Freeze:     Full,
		Integrator: md.VelocityVerlet,
	}
}

func freezeVelocity(v, a []float64, mode FreezeMode) {
	if mode == Full {
		for i := range v {
			v[i] = 0
		}
		return
	}
	for i := range v {
		if a[i]*v[i] < 0 {
			v[i] = 0
		}
	}
}

// FindMin runs the FIRE relaxation loop starting from x until a stopping
// criterion fires, NDtMin consecutive steps at DtMin occur, or ctx is
// cancelled.
func (fr *FIRE) FindMin(ctx context.Context, x []float64) (noisy.IOPair, error) {
	if fr.GradFun == nil {
		return noisy.IOPair{}, noisy.ErrMissingGradient
	}
	if err := fr.Core.Init(x); err != nil {
		return noisy.IOPair{}, err
	}
	fr.Log.LogString("Begin FIRE.FindMin procedure")

	ndim := fr.TargetFun.NDim()
	state := md.NewState(fr.Last.X, fr.Mi)
	grad := noisy.NewGradient(ndim, fr.GradErrStop)

	f, err := fr.GradFun.FGrad(state.X, &grad)
	if err != nil {
		return noisy.IOPair{}, err
	}
	fr.Last.F = f
	computeAccelFromGrad(grad.Val, fr.Mi, state.A)

	dt := fr.Dt0
	alpha := fr.Alpha0
	Npos := 0
	nAtDtMin := 0

	for iter := 0; ; iter++ {
		if nfm.CtxDone(ctx) {
			return fr.Last, ctx.Err()
		}

		fr.PushValue(fr.Last.F)
		if fr.NDtMin > 0 && nAtDtMin >= fr.NDtMin {
			fr.Log.LogString("DtMin reached NDtMin consecutive times, interrupting minimization procedure.")
			break
		}
		if fr.ShouldStop(iter, &grad) {
			break
		}
		fr.Log.LogPair("Step", fr.Last)

		p := floats.Dot(state.V, state.A)

		vnorm := floats.Norm(state.V, 2)
		anorm := floats.Norm(state.A, 2)
		if anorm > 0 {
			for i := range state.V {
				state.V[i] = (1-alpha)*state.V[i] + alpha*vnorm*state.A[i]/anorm
			}
		}

		switch {
		case p > 0:
			Npos++
			if Npos > fr.NMin {
				dt = math.Min(dt*fr.FInc, fr.DtMax)
				alpha *= fr.FAlpha
			}
		case p < 0:
			Npos = 0
			dt = math.Max(dt*fr.FDec, fr.DtMin)
			alpha = fr.Alpha0
			freezeVelocity(state.V, state.A, fr.Freeze)
		}

		if dt == fr.DtMin {
			nAtDtMin++
		} else {
			nAtDtMin = 0
		}

		newF, err := md.DoStep(fr.Integrator, fr.GradFun, &state, &grad, dt)
		if err != nil {
			return noisy.IOPair{}, err
		}
		fr.Last = noisy.IOPair{X: append([]float64(nil), state.X...), F: newF}
	}

	fr.Log.LogString("End FIRE.FindMin procedure")
	return fr.Last, nil
}

// computeAccelFromGrad turns the initial gradient into a force (-grad*mi),
// matching md.computeAcceleration, before the main loop starts stepping.
func computeAccelFromGrad(grad, mi, a []float64) {
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
