// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import "github.com/born-ml/strata/internal/optim"

// Optimizer updates one parameter tensor in place.
type Optimizer = optim.Optimizer

// Factory creates an independent Optimizer per parameter.
type Factory = optim.Factory

// Null leaves parameters untouched.
type Null = optim.Null

// Learning-rate schedules.
type (
	Schedule         = optim.Schedule
	Fixed            = optim.Fixed
	LinearDecay      = optim.LinearDecay
	ExponentialDecay = optim.ExponentialDecay
)

// NewLinearDecay moves the rate from start to end in equal steps.
func NewLinearDecay(start, end float64) *LinearDecay {
	return optim.NewLinearDecay(start, end)
}

// NewExponentialDecay moves the rate from start to end by a constant factor.
func NewExponentialDecay(start, end float64) *ExponentialDecay {
	return optim.NewExponentialDecay(start, end)
}

// SGD (Stochastic Gradient Descent)

// SGDConfig contains configuration for SGD.
type SGDConfig = optim.SGDConfig

// SGDFactory instantiates SGD optimizers.
type SGDFactory = optim.SGDFactory

// NewSGD creates an SGD factory.
//
// Example:
//
//	factory := optim.NewSGD(optim.SGDConfig{Schedule: optim.Fixed(0.01)})
func NewSGD(config SGDConfig) *SGDFactory {
	return optim.NewSGD(config)
}

// Momentum

// MomentumConfig contains configuration for Momentum.
type MomentumConfig = optim.MomentumConfig

// MomentumFactory instantiates Momentum optimizers.
type MomentumFactory = optim.MomentumFactory

// NewMomentum creates a momentum SGD factory.
func NewMomentum(config MomentumConfig) *MomentumFactory {
	return optim.NewMomentum(config)
}
