// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package noisy

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Gradient stores a gradient vector together with its (optional) per-
// component standard error. It mimics Value, but carries only the subset
// of operations a gradient needs.
//
// NOTE: callers must never resize Val/Err directly after construction;
// use NewGradient to allocate one of the right dimensionality.
type Gradient struct {
	Val []float64
	Err []float64 // nil if errors are not tracked
}

// NewGradient allocates a zeroed Gradient of the given dimensionality.
// If withErr is true, Err is allocated too; otherwise HasErr reports false.
func NewGradient(ndim int, withErr bool) Gradient {
	if ndim <= 0 {
		panic("noisy: NewGradient requires ndim >= 1")
	}
	g := Gradient{Val: make([]float64, ndim)}
	if withErr {
		g.Err = make([]float64, ndim)
	}
	return g
}

// NDim returns the number of components.
func (g Gradient) NDim() int { return len(g.Val) }

// Size is an alias for NDim, matching container-style naming used elsewhere
// in this package.
func (g Gradient) Size() int { return len(g.Val) }

// Empty reports whether the gradient has zero components.
func (g Gradient) Empty() bool { return len(g.Val) == 0 }

// HasErr reports whether per-component errors are tracked.
func (g Gradient) HasErr() bool { return len(g.Err) > 0 }

// At returns the i'th component as a Value.
func (g Gradient) At(i int) Value {
	v := Value{Value: g.Val[i]}
	if g.HasErr() {
		v.Error = g.Err[i]
	}
	return v
}

// SetAt sets the i'th component from a Value.
func (g Gradient) SetAt(i int, v Value) {
	g.Val[i] = v.Value
	if g.HasErr() {
		g.Err[i] = v.Error
	}
}

// Reset zeroes every component (Val and, if present, Err), leaving
// dimensionality and error-tracking unchanged. Drivers call this at the
// start of FindMin to make a reused instance behave like a fresh one.
func (g Gradient) Reset() {
	for i := range g.Val {
		g.Val[i] = 0
	}
	for i := range g.Err {
		g.Err[i] = 0
	}
}

// Norm returns the Euclidean norm of the gradient's values (errors are
// ignored), via gonum/floats.
func (g Gradient) Norm() float64 {
	return floats.Norm(g.Val, 2)
}

// Dot returns the dot product of the gradient's values with v.
func (g Gradient) Dot(v []float64) float64 {
	return floats.Dot(g.Val, v)
}

// Meaningful reports whether the gradient is distinguishable from the
// scalar value (commonly 0): at least one component i satisfies
// |Val[i]| - SigmaLevel()*Err[i] > |value|. If no per-component error is
// tracked, this degenerates to: is any component non-zero in magnitude
// (i.e. |Val[i]| > |value|)?
func (g Gradient) Meaningful(value float64) bool {
	av := math.Abs(value)
	if g.HasErr() {
		level := SigmaLevel()
		for i, v := range g.Val {
			if math.Abs(v)-level*g.Err[i] > av {
				return true
			}
		}
		return false
	}
	for _, v := range g.Val {
		if math.Abs(v) > av {
			return true
		}
	}
	return false
}
