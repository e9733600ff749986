// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package nfm is the overall repository for noisy-function minimization:
optimizers for target functions whose value and gradient are corrupted by
statistical noise (e.g. energies sampled by a Monte Carlo estimator).

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* noisy: the value+error algebra (Value) and gradient type every other
package builds on, plus the Function/FunctionWithGradient capability
interfaces a target must implement.

* onedim: the 1D line-search kernel -- bracketing, Brent minimization, and
multi-dimensional line minimization along a given direction.

* md: the molecular-dynamics time-stepping integrators (Explicit Euler,
Velocity-Verlet) shared by fire and irene.

* nfm: the Core driver base embedded by every concrete minimizer: stopping
policy, stagnation ring buffer, and logging.

* cg, adam, fire, irene: the four concrete drivers -- Conjugate Gradient,
Adam, FIRE, and the noise-aware IRENE variant of FIRE.

* examples/quartic and cmd/nfmfit: a reference target function and a small
runnable program exercising the drivers side by side; these are not part
of the core library.
*/
package nfm
