// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package md provides the molecular-dynamics time-stepping integrators
// shared by the FIRE and IRENE relaxation drivers: Explicit Euler and
// Velocity-Verlet, operating on a position/velocity/acceleration triple
// that the caller owns and updates via a force-recomputation callback.
package md
