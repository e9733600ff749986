// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fire implements FIRE (Fast Inertial Relaxation Engine), a
// molecular-dynamics-flavored relaxation algorithm: it evolves a
// trajectory of the model parameters through the potential energy given
// by the target function, with a variable time step and velocity freezing
// whenever the trajectory heads uphill.
//
// Reference: Bitzek et al., "Structural Relaxation Made Simple", Phys.
// Rev. Lett. 97, 170201 (2006).
package fire
