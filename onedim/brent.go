// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package onedim

import (
	"math"

	"github.com/emer/nfm/noisy"
)

// checkBracketFTol reports whether the noisy distance between the central
// point and its better-valued adjacent neighbor is still at or above epsf,
// where the distance is the error-corrected gap
// |f1.Value-f2.Value| - f1.Error - f2.Error.
func checkBracketFTol(b Bracket, epsf float64) bool {
	var fdist float64
	if b.A.F.Less(b.C.F) {
		fdist = math.Abs(b.A.F.Value-b.B.F.Value) - b.A.F.Error - b.B.F.Error
	} else {
		fdist = math.Abs(b.C.F.Value-b.B.F.Value) - b.C.F.Error - b.B.F.Error
	}
	return fdist >= epsf
}

func validBracket(b Bracket) bool {
	if b.A.X >= b.C.X || b.B.X <= b.A.X || b.B.X >= b.C.X {
		return false
	}
	return !(b.B.F.GreaterEqual(b.A.F) || b.B.F.GreaterEqual(b.C.F))
}

// BrentMin minimizes a 1D noisy function within a valid bracket (A.F > B.F
// < C.F, A.X < B.X < C.X -- ErrInvalidBracket if violated), combining
// parabolic interpolation with golden-section fallback the way GSL's
// brent.c does, except every "is this point better" test uses the noisy
// <=, and two extra early-exit checks apply every iteration: the bracket
// width falling below epsx (mixed relative/absolute tolerance), or the
// error-corrected gap between the center and its better neighbor falling
// below epsf.
//
// The returned point is the one with the smallest observed upper bound
// among the five points Brent tracks internally (the current center m,
// the two next-best points v and w, and the current bracket ends) -- a
// conservative choice that biases the selection toward the point whose
// pessimistic estimate is best.
func BrentMin(f noisy.Function, bracket Bracket, epsx, epsf float64, maxIter int) (Point, error) {
	if f.NDim() != 1 {
		return Point{}, noisy.ErrInvalidArgument
	}
	if !validBracket(bracket) {
		return Point{}, noisy.ErrInvalidBracket
	}
	epsx = math.Max(0, epsx)
	epsf = math.Max(0, epsf)
	if maxIter <= 0 {
		maxIter = defaultMaxEval
	}

	lb, m, ub := bracket.A, bracket.B, bracket.C

	var d, e float64
	vx := lb.X + igold2*(ub.X-lb.X)
	vf, err := eval1D(f, vx)
	if err != nil {
		return Point{}, err
	}
	v := Point{X: vx, F: vf}
	w := v

	for it := 0; it < maxIter; it++ {
		cur := Bracket{A: lb, B: m, C: ub}
		if !bracketWidthOK(cur, epsx) {
			break
		}
		if !checkBracketFTol(cur, epsf) {
			break
		}

		mtolb := m.X - lb.X
		mtoub := ub.X - m.X
		xm := 0.5 * (lb.X + ub.X)
		tol := 1.5e-8 * math.Abs(m.X)

		d, e = e, d

		var p, q, r float64
		if math.Abs(e) > tol {
			r = (m.X - w.X) * (m.F.Value - v.F.Value)
			q = (m.X - v.X) * (m.F.Value - w.F.Value)
			p = (m.X-v.X)*q - (m.X-w.X)*r
			q = 2 * (q - r)
			if q > 0 {
				p = -p
			} else {
				q = -q
			}
			r = e
			e = d
		}

		if math.Abs(p) < math.Abs(0.5*q*r) && p < q*mtolb && p < q*mtoub {
			t2 := 2 * tol
			d = p / q
			ux := m.X + d
			if (ux-lb.X) < t2 || (ub.X-ux) < t2 {
				if m.X < xm {
					d = tol
				} else {
					d = -tol
				}
			}
		} else {
			if m.X < xm {
				e = ub.X - m.X
			} else {
				e = -(m.X - lb.X)
			}
			d = igold2 * e
		}

		var ux float64
		if math.Abs(d) >= tol {
			ux = m.X + d
		} else if d > 0 {
			ux = m.X + tol
		} else {
			ux = m.X - tol
		}

		uf, err := eval1D(f, ux)
		if err != nil {
			return Point{}, err
		}
		u := Point{X: ux, F: uf}

		if u.F.LessEqual(m.F) {
			if u.X < m.X {
				ub = m
			} else {
				lb = m
			}
			v = w
			w = m
			m = u
			continue
		}

		if u.X < m.X {
			lb = u
		} else {
			ub = u
		}

		if u.F.LessEqual(w.F) || w.X == m.X {
			v = w
			w = u
			continue
		}
		if u.F.LessEqual(v.F) || v.X == m.X || v.X == w.X {
			v = u
		}
	}

	best := m
	for _, p := range []Point{v, w, ub, lb} {
		if p.F.UpperBound() < best.F.UpperBound() {
			best = p
		}
	}
	return best, nil
}
