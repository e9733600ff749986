// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nfm provides Core, the shared driver base embedded by every
// concrete noisy-function minimizer (cg, adam, fire, irene): the current
// position and value, the stopping policy, a ring buffer used to detect
// stagnation, and a Logger.
package nfm
