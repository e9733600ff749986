// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package adam implements the Adam stochastic-gradient update as a noisy
// function minimizer: bias-corrected first/second moment estimates, an
// optional AMSGrad variant, and an optional exponentially-averaged
// parameter trajectory.
package adam
