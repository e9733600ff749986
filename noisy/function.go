// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package noisy

// Function is a scalar function of a real vector whose evaluations return
// a value together with its standard error. Implementations are provided
// by callers of this library (example target functions, data-fitting
// likelihoods, simulation objectives, ...); this package only consumes the
// interface.
type Function interface {
	// F evaluates the function at x, which must have length NDim().
	F(x []float64) (Value, error)

	// NDim returns the dimensionality of the input vector.
	NDim() int
}

// FunctionWithGradient extends Function with an analytic (or otherwise
// caller-supplied) gradient. This library never differentiates target
// functions itself.
type FunctionWithGradient interface {
	Function

	// Grad writes the gradient at x into out, which must already be sized
	// to NDim() (see NewGradient).
	Grad(x []float64, out *Gradient) error

	// FGrad evaluates both the function value and its gradient at x.
	// The default implementation (Default FGrad, via FGradDefault) simply
	// calls F then Grad; implementations with a more efficient combined
	// evaluation should override FGrad directly on their own type instead
	// of embedding the default helper.
	FGrad(x []float64, out *Gradient) (Value, error)
}

// FGradDefault is the default FGrad behavior: call F, then Grad. Types
// implementing FunctionWithGradient that have no cheaper combined
// evaluation can implement FGrad as:
//
//	func (f *MyFunc) FGrad(x []float64, out *noisy.Gradient) (noisy.Value, error) {
//		return noisy.FGradDefault(f, x, out)
//	}
func FGradDefault(f FunctionWithGradient, x []float64, out *Gradient) (Value, error) {
	v, err := f.F(x)
	if err != nil {
		return Value{}, err
	}
	if err := f.Grad(x, out); err != nil {
		return Value{}, err
	}
	return v, nil
}

// IOPair represents "the function has been evaluated at X and yielded F".
// It is used everywhere a driver needs to carry the current position
// together with its observed cost.
type IOPair struct {
	X []float64
	F Value
}

// Clone returns a deep copy of the pair (X is copied, not aliased).
func (p IOPair) Clone() IOPair {
	x := make([]float64, len(p.X))
	copy(x, p.X)
	return IOPair{X: x, F: p.F}
}
