// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adam

import (
	"context"
	"math"

	"github.com/emer/nfm/nfm"
	"github.com/emer/nfm/noisy"
)

// Adam is the first/second-moment gradient-descent driver.
type Adam struct {
	nfm.Core

	Alpha        float64
	Beta1        float64
	Beta2        float64
	Epsilon      float64
	UseAveraging bool // maintain a bias-corrected exponential average of x and report it at the end
	UseAMSGrad   bool // replace the second moment by its running max, as in the AMSGrad correction
}

// New builds an Adam driver with the standard defaults from the paper
// (Alpha=1e-3, Beta1=0.9, Beta2=0.999, Epsilon=1e-8) and this package's
// default stagnation window (20 consecutive equal values).
func New(targetFun noisy.FunctionWithGradient) *Adam {
	return &Adam{
		Core: nfm.Core{
			TargetFun:       targetFun,
			GradFun:         targetFun,
			MaxNConstValues: 20,
		},
		Alpha:   1e-3,
		Beta1:   0.9,
		Beta2:   0.999,
		Epsilon: 1e-8,
	}
}

// FindMin runs the Adam update loop starting from x until a stopping
// criterion fires or ctx is cancelled.
func (a *Adam) FindMin(ctx context.Context, x []float64) (noisy.IOPair, error) {
	if a.GradFun == nil {
		return noisy.IOPair{}, noisy.ErrMissingGradient
	}
	if err := a.Core.Init(x); err != nil {
		return noisy.IOPair{}, err
	}
	a.Log.LogString("Begin Adam.FindMin procedure")

	ndim := a.TargetFun.NDim()
	grad := noisy.NewGradient(ndim, a.GradErrStop)
	m := make([]float64, ndim)
	v := make([]float64, ndim)
	vHatMax := make([]float64, ndim)
	dx := make([]float64, ndim)
	var xAvg []float64
	if a.UseAveraging {
		xAvg = make([]float64, ndim)
	}

	beta1t, beta2t := 1.0, 1.0

	for iter := 0; ; iter++ {
		if nfm.CtxDone(ctx) {
			return a.Last, ctx.Err()
		}

		f, err := a.GradFun.FGrad(a.Last.X, &grad)
		if err != nil {
			return noisy.IOPair{}, err
		}
		a.Last.F = f
		a.PushValue(f)
		if a.ShouldStop(iter, &grad) {
			break
		}
		a.Log.LogPair("Step", a.Last)
		a.Log.LogGradient("Raw gradient", grad)

		beta1t *= a.Beta1
		beta2t *= a.Beta2
		afac := a.Alpha * math.Sqrt(1-beta2t) / (1 - beta1t)

		for i := 0; i < ndim; i++ {
			m[i] = a.Beta1*m[i] + (1-a.Beta1)*grad.Val[i]
			v[i] = a.Beta2*v[i] + (1-a.Beta2)*grad.Val[i]*grad.Val[i]

			vHat := v[i]
			if a.UseAMSGrad {
				if v[i] > vHatMax[i] {
					vHatMax[i] = v[i]
				}
				vHat = vHatMax[i]
			}

			dx[i] = -afac * m[i] / (math.Sqrt(vHat) + a.Epsilon)
			a.Last.X[i] += dx[i]

			if a.UseAveraging {
				xAvg[i] = a.Beta2*xAvg[i] + (1-a.Beta2)*a.Last.X[i]
			}
		}
		a.Log.LogVector("Position update", dx)
	}

	if a.UseAveraging {
		for i := 0; i < ndim; i++ {
			a.Last.X[i] = xAvg[i] / (1 - beta2t)
		}
		f, err := a.GradFun.FGrad(a.Last.X, &grad)
		if err != nil {
			return noisy.IOPair{}, err
		}
		a.Last.F = f
	}

	a.Log.LogPair("Final position and target value", a.Last)
	a.Log.LogString("End Adam.FindMin procedure")
	return a.Last, nil
}
