// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package noisy

import (
	"fmt"
	"math"
	"sync/atomic"
)

// DefaultSigmaLevel is the compiled-in sigma level used whenever SetSigmaLevel
// is called with a non-positive value (or never called at all).
const DefaultSigmaLevel = 2.0

// sigmaLevelBits holds the process-wide sigma level as math.Float64bits,
// so that reads and writes are lock-free and safe across concurrently
// running optimizer instances. Zero means "use DefaultSigmaLevel".
var sigmaLevelBits uint64

// SigmaLevel returns the process-wide sigma level: the multiplier k such
// that Value +/- k*Error is treated as a value's confidence interval for
// comparison purposes. Returns DefaultSigmaLevel if none (or a non-positive
// one) has been set.
func SigmaLevel() float64 {
	bits := atomic.LoadUint64(&sigmaLevelBits)
	if bits == 0 {
		return DefaultSigmaLevel
	}
	level := math.Float64frombits(bits)
	if level <= 0 {
		return DefaultSigmaLevel
	}
	return level
}

// SetSigmaLevel sets the process-wide sigma level. A non-positive level
// restores DefaultSigmaLevel. Safe to call concurrently with SigmaLevel,
// but changing it mid-optimization changes the comparison semantics for
// every driver sharing the process, so callers typically set this once
// at startup.
func SetSigmaLevel(level float64) {
	if level <= 0 {
		atomic.StoreUint64(&sigmaLevelBits, 0)
		return
	}
	atomic.StoreUint64(&sigmaLevelBits, math.Float64bits(level))
}

// Value is a value together with its standard error (one standard
// deviation), assuming the underlying distribution is normal. It is the
// output type of every Function in this package.
//
// Value is a small, cheap-to-copy aggregate (two float64 fields) and
// should generally be passed by value, not by pointer.
type Value struct {
	Value float64
	Error float64 // standard error (sigma), >= 0
}

// New constructs a Value from a value and its standard error.
func New(value, err float64) Value {
	return Value{Value: value, Error: err}
}

// Set sets both fields at once.
func (x *Value) Set(value, err float64) {
	x.Value = value
	x.Error = err
}

// UpperBound returns Value + SigmaLevel()*Error.
func (x Value) UpperBound() float64 {
	return x.Value + SigmaLevel()*x.Error
}

// LowerBound returns Value - SigmaLevel()*Error.
func (x Value) LowerBound() float64 {
	return x.Value - SigmaLevel()*x.Error
}

// String renders x as "value +- error", the form nfm.Logger uses for every
// logged value.
func (x Value) String() string {
	return fmt.Sprintf("%g +- %g", x.Value, x.Error)
}

// --- Scalar arithmetic

// AddScalar shifts Value by s, leaving Error untouched.
func (x Value) AddScalar(s float64) Value {
	x.Value += s
	return x
}

// SubScalar shifts Value by -s, leaving Error untouched.
func (x Value) SubScalar(s float64) Value {
	x.Value -= s
	return x
}

// MulScalar scales both Value and Error by s (Error is scaled by |s|, since
// error is non-negative by convention).
func (x Value) MulScalar(s float64) Value {
	x.Value *= s
	x.Error *= math.Abs(s)
	return x
}

// DivScalar scales both Value and Error by 1/s (Error is scaled by 1/|s|).
func (x Value) DivScalar(s float64) Value {
	x.Value /= s
	x.Error /= math.Abs(s)
	return x
}

// --- Noisy arithmetic

// Add sums two noisy values: values add, errors combine in quadrature.
// Only Add and Sub are defined between two Values -- multiplication of two
// noisy values is intentionally absent, because proper error propagation
// would require covariance information this package does not track.
func (x Value) Add(y Value) Value {
	return Value{
		Value: x.Value + y.Value,
		Error: math.Hypot(x.Error, y.Error),
	}
}

// Sub subtracts two noisy values: values subtract, errors combine in
// quadrature (the same as Add -- subtraction does not reduce uncertainty).
func (x Value) Sub(y Value) Value {
	return Value{
		Value: x.Value - y.Value,
		Error: math.Hypot(x.Error, y.Error),
	}
}

// --- Comparison against an exact scalar

// LessScalar reports whether x is significantly less than the exact value s,
// i.e. whether x's upper bound lies below s.
func (x Value) LessScalar(s float64) bool {
	return x.UpperBound() < s
}

// GreaterScalar reports whether x is significantly greater than s, i.e.
// whether x's lower bound lies above s.
func (x Value) GreaterScalar(s float64) bool {
	return x.LowerBound() > s
}

// EqualScalar reports whether x is noisily indistinguishable from s, i.e.
// s falls within x's [LowerBound, UpperBound] interval.
func (x Value) EqualScalar(s float64) bool {
	return !x.LessScalar(s) && !x.GreaterScalar(s)
}

// --- Comparison between two noisy values

// Less reports whether x is significantly less than y: x's interval lies
// entirely below y's interval.
func (x Value) Less(y Value) bool {
	return x.UpperBound() < y.LowerBound()
}

// Greater reports whether x is significantly greater than y.
func (x Value) Greater(y Value) bool {
	return x.LowerBound() > y.UpperBound()
}

// Equal reports whether x and y are noisily indistinguishable, i.e. their
// confidence intervals overlap. For any x, y exactly one of Less, Greater,
// Equal holds.
func (x Value) Equal(y Value) bool {
	return !x.Less(y) && !x.Greater(y)
}

// LessEqual reports !x.Greater(y).
func (x Value) LessEqual(y Value) bool { return !x.Greater(y) }

// GreaterEqual reports !x.Less(y).
func (x Value) GreaterEqual(y Value) bool { return !x.Less(y) }
