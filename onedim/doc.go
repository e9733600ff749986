// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package onedim implements the one-dimensional line-search kernel shared
// by every multi-dimensional driver in this repository: establishing a
// valid bracket around a minimum (FindBracket), refining it with a
// noise-aware Brent minimizer (BrentMin), and restricting an N-dimensional
// Function to a line through it (Projection1D, LineMin).
package onedim
