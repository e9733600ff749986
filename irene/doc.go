// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package irene implements IRENE (Inertial Relaxation Engine for Noisy
// Energy surfaces), a variant of FIRE that treats the velocity/force
// scalar product driving its adaptive time step as a NoisyValue rather
// than a plain float, so that statistically insignificant uphill/downhill
// signals no longer trigger spurious freezes or time-step changes.
//
// Author of the original algorithm: Jan Kessler (2019).
package irene
