// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfm

import "github.com/emer/nfm/noisy"

// valueRing is a fixed-capacity FIFO of recent target values, used by Core
// to detect that the minimization has stagnated.
type valueRing struct {
	buf  []noisy.Value
	cap  int
	next int
}

func newValueRing(capacity int) valueRing {
	return valueRing{buf: make([]noisy.Value, 0, capacity), cap: capacity}
}

func (r *valueRing) push(v noisy.Value) {
	if r.cap <= 0 {
		return
	}
	if len(r.buf) < r.cap {
		r.buf = append(r.buf, v)
		return
	}
	r.buf[r.next] = v
	r.next = (r.next + 1) % r.cap
}

func (r *valueRing) reset() {
	r.buf = r.buf[:0]
	r.next = 0
}

func (r *valueRing) full() bool {
	return r.cap > 0 && len(r.buf) == r.cap
}

// allEqual reports whether every value currently in the ring is noisily
// equal to the first one. Meaningless (and returns false) on an empty ring.
func (r *valueRing) allEqual() bool {
	if len(r.buf) == 0 {
		return false
	}
	first := r.buf[0]
	for _, v := range r.buf[1:] {
		if !v.Equal(first) {
			return false
		}
	}
	return true
}
