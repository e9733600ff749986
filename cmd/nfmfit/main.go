// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command nfmfit runs the Conjugate-Gradient, Adam and FIRE drivers side
// by side on a quartic bowl target function and prints the result each
// found, as a small smoke test of the core library. It is not part of the
// library proper.
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/emer/nfm/adam"
	"github.com/emer/nfm/cg"
	"github.com/emer/nfm/examples/quartic"
	"github.com/emer/nfm/fire"
	"github.com/emer/nfm/noisy"
)

func main() {
	maxIter := flag.Int("iters", 2000, "maximum iterations per driver")
	flag.Parse()

	target := quartic.New([]float64{1, -2, 0.5})
	x0 := []float64{0, 0, 0}
	ctx := context.Background()

	cgDriver := cg.New(target)
	cgDriver.MaxNIterations = *maxIter
	cgResult, err := cgDriver.FindMin(ctx, x0)
	report("ConjGrad", cgResult, err)

	adamDriver := adam.New(target)
	adamDriver.MaxNIterations = *maxIter
	adamResult, err := adamDriver.FindMin(ctx, x0)
	report("Adam", adamResult, err)

	fireDriver := fire.New(target, 0.1, 0.5)
	fireDriver.MaxNIterations = *maxIter
	fireResult, err := fireDriver.FindMin(ctx, x0)
	report("FIRE", fireResult, err)
}

func report(name string, result noisy.IOPair, err error) {
	if err != nil {
		fmt.Printf("%-10s error: %v\n", name, err)
		return
	}
	fmt.Printf("%-10s x=%v f=%s\n", name, result.X, result.F.String())
}
