// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package onedim

import (
	"math"
	"testing"

	"github.com/emer/nfm/noisy"
)

// paraboloidND is f(x) = sum((x_i - center_i)^2), an exact multi-dimensional
// quadratic bowl.
type paraboloidND struct {
	center []float64
}

func (p paraboloidND) NDim() int { return len(p.center) }
func (p paraboloidND) F(x []float64) (noisy.Value, error) {
	var s float64
	for i, c := range p.center {
		d := x[i] - c
		s += d * d
	}
	return noisy.New(s, 0), nil
}

func TestLineMinImprovesTowardMinimum(t *testing.T) {
	noisy.SetSigmaLevel(0)
	f := paraboloidND{center: []float64{1, -1.5, 0.5}}
	x0 := []float64{0, 0, 0}
	f0, err := f.F(x0)
	if err != nil {
		t.Fatal(err)
	}
	p0 := noisy.IOPair{X: x0, F: f0}
	dir := []float64{1, -1.5, 0.5}

	result, err := LineMin(f, p0, dir, DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	if !result.F.LessEqual(p0.F) {
		t.Errorf("LineMin must never deteriorate the value: got %v from %v", result.F, p0.F)
	}
	if result.F.Value >= f0.Value {
		t.Errorf("expected improvement along the descent direction, got %v vs %v", result.F.Value, f0.Value)
	}
}

func TestLineMinNonDeterioratingOnBadDirection(t *testing.T) {
	noisy.SetSigmaLevel(0)
	f := paraboloidND{center: []float64{0, 0}}
	x0 := []float64{0, 0}
	f0, err := f.F(x0)
	if err != nil {
		t.Fatal(err)
	}
	p0 := noisy.IOPair{X: x0, F: f0}
	// x0 is already the minimum; any direction can only make things worse.
	dir := []float64{1, 1}

	result, err := LineMin(f, p0, dir, DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	if !result.F.LessEqual(p0.F) {
		t.Errorf("LineMin must never deteriorate the value: got %v from %v", result.F, p0.F)
	}
	if math.Abs(result.F.Value-f0.Value) > difTol {
		t.Errorf("expected LineMin to return the input unchanged at a minimum, got %v", result.F.Value)
	}
}

func TestLineMinRejectsDimensionMismatch(t *testing.T) {
	f := paraboloidND{center: []float64{0, 0}}
	p0 := noisy.IOPair{X: []float64{0, 0}, F: noisy.New(0, 0)}
	_, err := LineMin(f, p0, []float64{1}, DefaultParams())
	if err != noisy.ErrDimensionMismatch {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestLineMinRejectsNonPositiveStep(t *testing.T) {
	f := paraboloidND{center: []float64{0, 0}}
	p0 := noisy.IOPair{X: []float64{0, 0}, F: noisy.New(0, 0)}
	params := DefaultParams()
	params.StepLeft = 0
	_, err := LineMin(f, p0, []float64{1, 0}, params)
	if err != noisy.ErrInvalidArgument {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}
