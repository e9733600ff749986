// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package noisy provides the value+error scalar algebra and the target
// function capabilities that every optimizer in this repository builds on.
//
// Value pairs a value with its standard error and defines arithmetic
// with error propagation plus a total-ordering-with-ties comparison, so
// that "is this point significantly better" is answered consistently
// everywhere instead of by ad-hoc epsilon checks scattered through each
// driver.
package noisy
