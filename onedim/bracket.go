// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package onedim

import (
	"math"

	"github.com/emer/nfm/noisy"
)

// igold2 is 1/phi^2, the inverse-golden-ratio-squared stretch factor used
// for successive bracket steps (numerically 0.3819660...; this is the same
// constant GSL calls GOLDEN in its bracketing.c).
const igold2 = 0.3819660112501051

// defaultMaxEval bounds FindBracket/BrentMin when the caller passes a
// non-positive iteration limit.
const defaultMaxEval = 64

// Point is a single (abscissa, value) sample of a 1D noisy function.
type Point struct {
	X float64
	F noisy.Value
}

// Bracket is a triple of abscissae a<b<c with function values; once
// FindBracket succeeds, A.F > B.F and C.F > B.F in the noisy sense,
// certifying a minimum lies within [A.X, C.X].
type Bracket struct {
	A, B, C Point
}

func eval1D(f noisy.Function, x float64) (noisy.Value, error) {
	return f.F([]float64{x})
}

func bracketWidthOK(b Bracket, epsx float64) bool {
	width := b.C.X - b.A.X
	if width < epsx {
		return false
	}
	return width >= epsx*((b.C.X+b.A.X)*0.5)+epsx
}

// FindBracket expands or contracts the in/out bracket until it satisfies
// A.F > B.F < C.F (noisily) with three distinct abscissae, or gives up.
// The bracket's A, B, C must already satisfy A.X < B.X < C.X with all three
// function values pre-evaluated; A.X is a hard lower bound and is never
// lowered by this routine -- this asymmetry lets a multi-dimensional caller
// forbid backtracking past its previous step by constructing the bracket
// with A at that previous point.
//
// Returns true with the bracket updated in place on success. Returns false
// (bracket left in its last-attempted state) if no valid bracket could be
// established within maxEval evaluations or before the bracket width drops
// below epsx; neither outcome is an error.
func FindBracket(f noisy.Function, bracket *Bracket, epsx float64, maxEval int) (bool, error) {
	if f.NDim() != 1 {
		return false, noisy.ErrInvalidArgument
	}
	if bracket.A.X >= bracket.C.X || bracket.B.X <= bracket.A.X || bracket.B.X >= bracket.C.X {
		return false, noisy.ErrInvalidBracket
	}
	epsx = math.Max(0, epsx)
	if maxEval <= 0 {
		maxEval = defaultMaxEval
	}

	for neval := 0; ; neval++ {
		allDistinct := bracket.A.X != bracket.B.X && bracket.B.X != bracket.C.X
		if allDistinct && bracket.A.F.Greater(bracket.B.F) && bracket.C.F.Greater(bracket.B.F) {
			return true, nil
		}
		if neval >= maxEval {
			return false, nil
		}
		if !bracketWidthOK(*bracket, epsx) {
			return false, nil
		}

		switch {
		case bracket.A.F.Equal(bracket.B.F) || bracket.B.F.Equal(bracket.C.F):
			// Equal-values phase: the interval carries no detectable slope
			// yet, so expand to the right.
			newB := bracket.C
			newCX := bracket.A.X + (newB.X-bracket.A.X)/igold2
			newCF, err := eval1D(f, newCX)
			if err != nil {
				return false, err
			}
			bracket.B = newB
			bracket.C = Point{X: newCX, F: newCF}

		case bracket.B.F.Less(bracket.A.F):
			// a.f > b.f > c.f: the minimum is further right, extend.
			newCX := bracket.B.X + (bracket.C.X-bracket.B.X)/igold2
			newCF, err := eval1D(f, newCX)
			if err != nil {
				return false, err
			}
			bracket.A = bracket.B
			bracket.B = bracket.C
			bracket.C = Point{X: newCX, F: newCF}

		default:
			// a.f <= b.f: contract toward a.
			bracket.C = bracket.B
			newBX := bracket.A.X + (bracket.C.X-bracket.A.X)*igold2
			newBF, err := eval1D(f, newBX)
			if err != nil {
				return false, err
			}
			bracket.B = Point{X: newBX, F: newBF}
		}
	}
}
