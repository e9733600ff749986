// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cg

import (
	"context"
	"math"
	"testing"

	"github.com/emer/nfm/noisy"
)

const difTol = 1.0e-2

// sepQuartic is f(x,y,z) = (x-1)^4 + (y+1.5)^4 + (z-0.5)^4, a separable
// quartic bowl minimized at (1, -1.5, 0.5).
type sepQuartic struct{}

func (sepQuartic) NDim() int { return 3 }

func (sepQuartic) F(x []float64) (noisy.Value, error) {
	d0, d1, d2 := x[0]-1, x[1]+1.5, x[2]-0.5
	v := d0*d0*d0*d0 + d1*d1*d1*d1 + d2*d2*d2*d2
	return noisy.New(v, 0), nil
}

func (f sepQuartic) Grad(x []float64, out *noisy.Gradient) error {
	d0, d1, d2 := x[0]-1, x[1]+1.5, x[2]-0.5
	out.Val[0] = 4 * d0 * d0 * d0
	out.Val[1] = 4 * d1 * d1 * d1
	out.Val[2] = 4 * d2 * d2 * d2
	return nil
}

func (f sepQuartic) FGrad(x []float64, out *noisy.Gradient) (noisy.Value, error) {
	return noisy.FGradDefault(f, x, out)
}

func TestConjGradConvergesFletcherReeves(t *testing.T) {
	noisy.SetSigmaLevel(0)
	cg := New(sepQuartic{})
	cg.Mode = FR
	cg.MaxNIterations = 500

	result, err := cg.FindMin(context.Background(), []float64{0, 0, 0})
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{1, -1.5, 0.5}
	for i, w := range want {
		if math.Abs(result.X[i]-w) > difTol {
			t.Errorf("component %d: expected near %v, got %v", i, w, result.X[i])
		}
	}
}

func TestConjGradConvergesSteepestDescent(t *testing.T) {
	noisy.SetSigmaLevel(0)
	cg := New(sepQuartic{})
	cg.Mode = NoCG
	cg.MaxNIterations = 2000

	result, err := cg.FindMin(context.Background(), []float64{0, 0, 0})
	if err != nil {
		t.Fatal(err)
	}
	if result.F.Value > 1e-2 {
		t.Errorf("expected steepest descent to make progress, final value %v", result.F.Value)
	}
}

func TestConjGradRequiresGradient(t *testing.T) {
	cg := &ConjGrad{}
	_, err := cg.FindMin(context.Background(), []float64{0})
	if err != noisy.ErrMissingGradient {
		t.Errorf("expected ErrMissingGradient, got %v", err)
	}
}

func TestConjGradHonorsContextCancellation(t *testing.T) {
	noisy.SetSigmaLevel(0)
	cg := New(sepQuartic{})
	cg.MaxNIterations = 100000
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := cg.FindMin(ctx, []float64{5, 5, 5})
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
