// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides per-parameter optimizers and learning-rate
// schedules.
//
// # Overview
//
// A Factory is handed to Initialised.WithOptimiser, which instantiates one
// independent Optimizer per parameter tensor. This package contains:
//   - Null: leaves parameters untouched
//   - SGD: plain gradient descent
//   - Momentum: gradient descent with a velocity term
//   - Fixed, LinearDecay, ExponentialDecay: learning-rate schedules
//
// # Basic Usage
//
//	factory := optim.NewMomentum(optim.MomentumConfig{
//	    Schedule: optim.NewExponentialDecay(0.1, 0.001),
//	    Momentum: 0.9,
//	})
//	trainable := initialised.WithOptimiser(factory)
package optim
