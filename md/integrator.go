// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package md

import "github.com/emer/nfm/noisy"

// Integrator selects which time-stepping scheme DoStep applies.
type Integrator int

const (
	// ExplicitEuler advances velocity then position, one evaluation per step.
	ExplicitEuler Integrator = iota
	// VelocityVerlet splits the velocity update around the position update,
	// giving better energy conservation at the same cost of one evaluation
	// per step.
	VelocityVerlet
)

// State holds the position/velocity/acceleration triple that a relaxation
// driver (FIRE, IRENE) advances one MD step at a time. Mi holds a per-
// component inverse mass used to scale the force into an acceleration; a
// nil Mi is equivalent to all components being 1.
type State struct {
	X  []float64
	V  []float64
	A  []float64
	Mi []float64
}

// NewState allocates a State of the given dimension with zero velocity and
// acceleration, copying x as the initial position.
func NewState(x []float64, mi []float64) State {
	ndim := len(x)
	s := State{
		X: append([]float64(nil), x...),
		V: make([]float64, ndim),
		A: make([]float64, ndim),
	}
	if mi != nil {
		s.Mi = append([]float64(nil), mi...)
	}
	return s
}

// computeAcceleration stores -grad*mi into a: FunctionWithGradient.Grad
// reports the true mathematical gradient, and the force driving the MD
// trajectory downhill is its negative.
func computeAcceleration(grad []float64, mi []float64, a []float64) {
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

// ExplicitEulerIntegrator advances one MD step: v += dt*a, x += dt*v, then
// refreshes (value, force, acceleration) at the new position.
func ExplicitEulerIntegrator(fn noisy.FunctionWithGradient, s *State, grad *noisy.Gradient, dt float64) (noisy.Value, error) {
	for i := range s.X {
		s.V[i] += dt * s.A[i]
		s.X[i] += dt * s.V[i]
	}
	newF, err := fn.FGrad(s.X, grad)
	if err != nil {
		return noisy.Value{}, err
	}
	computeAcceleration(grad.Val, s.Mi, s.A)
	return newF, nil
}

// VelocityVerletIntegrator advances one MD step with the standard 4-step
// scheme: a half-kick, a drift, a force refresh, and a second half-kick.
func VelocityVerletIntegrator(fn noisy.FunctionWithGradient, s *State, grad *noisy.Gradient, dt float64) (noisy.Value, error) {
	for i := range s.X {
		s.V[i] += 0.5 * dt * s.A[i]
		s.X[i] += dt * s.V[i]
	}
	newF, err := fn.FGrad(s.X, grad)
	if err != nil {
		return noisy.Value{}, err
	}
	computeAcceleration(grad.Val, s.Mi, s.A)
	for i := range s.V {
		s.V[i] += 0.5 * dt * s.A[i]
	}
	return newF, nil
}

// DoStep dispatches to the integrator named by mdi.
func DoStep(mdi Integrator, fn noisy.FunctionWithGradient, s *State, grad *noisy.Gradient, dt float64) (noisy.Value, error) {
	switch mdi {
	case VelocityVerlet:
		return VelocityVerletIntegrator(fn, s, grad, dt)
	default:
		return ExplicitEulerIntegrator(fn, s, grad, dt)
	}
}
