// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfm

import (
	"context"

	"github.com/emer/nfm/noisy"
)

// DefaultMaxNIterations bounds a driver's main loop when Core.MaxNIterations
// is left at zero.
const DefaultMaxNIterations = 10000

// Core is the shared state and stopping policy embedded by every concrete
// driver (cg.ConjGrad, adam.Adam, fire.FIRE, irene.IRENE). Concrete drivers
// embed Core and implement their own FindMin loop, calling Core.Init once and
// Core.ShouldStop and Core.PushValue at each iteration.
type Core struct {
	TargetFun noisy.Function
	GradFun   noisy.FunctionWithGradient // nil if the driver does not use a gradient

	Last noisy.IOPair

	MaxNConstValues int // stop once this many consecutive values are noisily equal; <2 disables
	EpsX            float64
	EpsF            float64
	MaxNIterations  int
	GradErrStop     bool // stop once the current gradient is no longer "meaningful"

	Log *Logger

	values valueRing
}

// Init prepares Core for a fresh FindMin call: validates the target
// function dimension against x, stores the starting point, and resets the
// stagnation ring buffer.
func (c *Core) Init(x []float64) error {
	if c.TargetFun == nil {
		return noisy.ErrInvalidArgument
	}
	if len(x) != c.TargetFun.NDim() {
		return noisy.ErrDimensionMismatch
	}
	f, err := c.TargetFun.F(x)
	if err != nil {
		return err
	}
	c.Last = noisy.IOPair{X: append([]float64(nil), x...), F: f}
	if c.MaxNIterations <= 0 {
		c.MaxNIterations = DefaultMaxNIterations
	}
	c.values = newValueRing(c.MaxNConstValues)
	return nil
}

// PushValue records f in the stagnation ring buffer; call once per
// iteration after updating Core.Last.
func (c *Core) PushValue(f noisy.Value) {
	c.values.push(f)
}

// Converged reports whether the ring buffer is full of noisily-equal
// values, i.e. the target function has stabilized. A window of fewer than
// two values never reports convergence.
func (c *Core) Converged() bool {
	if c.MaxNConstValues < 2 {
		return false
	}
	return c.values.full() && c.values.allEqual()
}

// MeaningfulGradient reports whether grad should still be trusted to carry
// useful directional information, per GradErrStop.
func (c *Core) MeaningfulGradient(grad noisy.Gradient) bool {
	if !c.GradErrStop {
		return true
	}
	return grad.Meaningful(0)
}

// ShouldStop combines every stopping criterion a driver's main loop must
// check on every iteration: iteration budget, convergence, and (optionally)
// a no-longer-meaningful gradient.
func (c *Core) ShouldStop(iter int, grad *noisy.Gradient) bool {
	if iter >= c.MaxNIterations {
		c.Log.LogString("Iteration budget exhausted, interrupting minimization procedure.")
		return true
	}
	if c.Converged() {
		c.Log.LogString("Cost function has stabilised, interrupting minimization procedure.")
		return true
	}
	if grad != nil && !c.MeaningfulGradient(*grad) {
		c.Log.LogString("Gradient seems to be meaningless, i.e. its error is too large.")
		return true
	}
	return false
}

// CtxDone is a small helper drivers call at the top of their loop body to
// honor caller cancellation between iterations.
func CtxDone(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
