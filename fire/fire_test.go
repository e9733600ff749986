// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fire

import (
	"context"
	"math"
	"testing"

	"github.com/emer/nfm/md"
	"github.com/emer/nfm/noisy"
)

const difTol = 5.0e-2

// quadraticND is f(x) = sum((x_i-center_i)^2).
type quadraticND struct{ center []float64 }

func (q quadraticND) NDim() int { return len(q.center) }

func (q quadraticND) F(x []float64) (noisy.Value, error) {
	var s float64
	for i, c := range q.center {
		d := x[i] - c
		s += d * d
	}
	return noisy.New(s, 0), nil
}

func (q quadraticND) Grad(x []float64, out *noisy.Gradient) error {
	for i, c := range q.center {
		out.Val[i] = 2 * (x[i] - c)
	}
	return nil
}

func (q quadraticND) FGrad(x []float64, out *noisy.Gradient) (noisy.Value, error) {
	return noisy.FGradDefault(q, x, out)
}

// countingQuadraticND is quadraticND that counts its FGrad calls: one for
// the initial evaluation plus one per MD step.
type countingQuadraticND struct {
	quadraticND
	nFGrad *int
}

func (q countingQuadraticND) FGrad(x []float64, out *noisy.Gradient) (noisy.Value, error) {
	*q.nFGrad++
	return noisy.FGradDefault(q, x, out)
}

func TestFIREConverges(t *testing.T) {
	noisy.SetSigmaLevel(0)
	target := quadraticND{center: []float64{1, -2}}
	opt := New(target, 0.1, 0.5)
	opt.MaxNIterations = 5000
	opt.MaxNConstValues = 50

	result, err := opt.FindMin(context.Background(), []float64{0, 0})
	if err != nil {
		t.Fatal(err)
	}
	for i, c := range target.center {
		if math.Abs(result.X[i]-c) > difTol {
			t.Errorf("component %d: expected near %v, got %v", i, c, result.X[i])
		}
	}
}

func TestFIRESelectiveFreeze(t *testing.T) {
	noisy.SetSigmaLevel(0)
	target := quadraticND{center: []float64{1, -2}}
	opt := New(target, 0.1, 0.5)
	opt.Freeze = Selective
	opt.Integrator = md.ExplicitEuler
	opt.MaxNIterations = 5000
	opt.MaxNConstValues = 50

	result, err := opt.FindMin(context.Background(), []float64{5, 5})
	if err != nil {
		t.Fatal(err)
	}
	for i, c := range target.center {
		if math.Abs(result.X[i]-c) > 0.5 {
			t.Errorf("component %d: expected roughly near %v, got %v", i, c, result.X[i])
		}
	}
}

func TestFIRERequiresGradient(t *testing.T) {
	opt := &FIRE{}
	_, err := opt.FindMin(context.Background(), []float64{0})
	if err != noisy.ErrMissingGradient {
		t.Errorf("expected ErrMissingGradient, got %v", err)
	}
}

func TestFIREStopsAtNDtMin(t *testing.T) {
	noisy.SetSigmaLevel(0)
	var nFGrad int
	target := countingQuadraticND{quadraticND{center: []float64{0, 0}}, &nFGrad}
	opt := New(target, 0.1, 0.1)
	opt.DtMin = 0.1
	opt.NDtMin = 1
	opt.MaxNIterations = 10000

	// starting exactly at the minimum: the force is zero, P stays at zero
	// forever and dt never changes from Dt0==DtMin, so NDtMin should fire
	// quickly rather than exhausting the iteration budget.
	result, err := opt.FindMin(context.Background(), []float64{0, 0})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(result.F.Value) > difTol {
		t.Errorf("expected to remain at the minimum, got f=%v", result.F.Value)
	}
	if nFGrad > 5 {
		t.Errorf("expected NDtMin to stop after a few steps, got %d gradient evaluations", nFGrad)
	}
}
