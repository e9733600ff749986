// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cg implements noisy Conjugate-Gradient minimization: steepest
// descent (NoCG), Fletcher-Reeves, Polak-Ribiere and Polak-Ribiere-with-
// reset, each advancing by a 1D line search along the computed direction.
// Works best when the target/gradient noise is small; for noisier targets
// prefer package adam or package fire.
package cg
