// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfm

import (
	"testing"

	"github.com/emer/nfm/noisy"
)

type constFun struct{ ndim int }

func (c constFun) NDim() int { return c.ndim }
func (c constFun) F(x []float64) (noisy.Value, error) {
	return noisy.New(1.0, 0), nil
}

func TestCoreInitValidatesDimension(t *testing.T) {
	core := Core{TargetFun: constFun{ndim: 3}}
	if err := core.Init([]float64{0, 0}); err != noisy.ErrDimensionMismatch {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestCoreConvergesOnConstantValues(t *testing.T) {
	core := Core{TargetFun: constFun{ndim: 1}, MaxNConstValues: 3}
	if err := core.Init([]float64{0}); err != nil {
		t.Fatal(err)
	}
	if core.Converged() {
		t.Errorf("should not be converged before the ring buffer fills")
	}
	for i := 0; i < 3; i++ {
		core.PushValue(noisy.New(1.0, 0))
	}
	if !core.Converged() {
		t.Errorf("expected convergence once the ring buffer is full of equal values")
	}
}

func TestCoreNeverConvergesWhenDisabled(t *testing.T) {
	core := Core{TargetFun: constFun{ndim: 1}, MaxNConstValues: 0}
	if err := core.Init([]float64{0}); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		core.PushValue(noisy.New(1.0, 0))
	}
	if core.Converged() {
		t.Errorf("MaxNConstValues<1 should disable convergence stopping")
	}
}

func TestCoreShouldStopOnIterationBudget(t *testing.T) {
	core := Core{TargetFun: constFun{ndim: 1}, MaxNIterations: 5}
	if err := core.Init([]float64{0}); err != nil {
		t.Fatal(err)
	}
	if !core.ShouldStop(5, nil) {
		t.Errorf("expected ShouldStop once iter reaches MaxNIterations")
	}
	if core.ShouldStop(4, nil) {
		t.Errorf("did not expect ShouldStop before the budget is exhausted")
	}
}

func TestCoreShouldStopOnMeaninglessGradient(t *testing.T) {
	core := Core{TargetFun: constFun{ndim: 1}, GradErrStop: true}
	if err := core.Init([]float64{0}); err != nil {
		t.Fatal(err)
	}
	grad := noisy.NewGradient(1, true)
	grad.SetAt(0, noisy.New(0.01, 1.0))
	if !core.ShouldStop(0, &grad) {
		t.Errorf("expected ShouldStop with a meaningless gradient")
	}
}
