// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides feed-forward network building blocks.
//
// # Overview
//
// Networks are chains of operations that move through a typed lifecycle:
//   - Uninitialised: Input, Dense, Dropout, activations and composites
//   - Initialised: parameters exist; Predict is available
//   - Trainable: every parameter has its own optimizer
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/strata/nn"
//	    "github.com/born-ml/strata/optim"
//	)
//
//	network := nn.NewInput(784).
//	    Chain(nn.NewDense(300, nn.NewTanh())).
//	    Chain(nn.NewDropout(0.5)).
//	    Chain(nn.NewDense(10, nn.NewLinear()))
//
//	trainable := network.WithSeed(42).WithOptimiser(optim.NewSGD(optim.SGDConfig{}))
//	pending, out, err := trainable.Forward(x)
//	_, grad, _ := nn.SoftmaxCrossEntropy{}.Loss(out, y)
//	ready, _, err := pending.Backward(grad)
//	err = ready.Optimise()
package nn
