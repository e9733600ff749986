// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package noisy

import "cogentcore.org/core/base/errors"

// Error kinds raised at precondition-validation time by this repository.
// Runtime non-convergence (bracket not found, line-search made no
// progress, gradient is noise) is never reported through these -- it is
// signaled via return values instead (see package onedim and the driver
// packages).
var (
	// ErrInvalidBracket is returned when a bracket's ordering or
	// A.F > B.F < C.F invariant is violated where it is required to hold.
	ErrInvalidBracket = errors.New("nfm: invalid bracket")

	// ErrDimensionMismatch is returned when vector sizes are inconsistent
	// between a function, a position, a direction, or a mass vector.
	ErrDimensionMismatch = errors.New("nfm: dimension mismatch")

	// ErrInvalidArgument is returned for malformed arguments such as a
	// negative step size, an empty gradient where one is required, or a
	// non-positive number of dimensions.
	ErrInvalidArgument = errors.New("nfm: invalid argument")

	// ErrMissingGradient is returned by drivers that require a
	// FunctionWithGradient when constructed with a gradient-less Function.
	ErrMissingGradient = errors.New("nfm: driver requires a function with gradient")
)
