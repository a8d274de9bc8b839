// Package optim implements the parameter update rules used during training.
//
// This package provides:
//   - Factory: creates one Optimizer per trainable parameter
//   - Optimizer: applies an update to a single parameter in place
//   - Null, SGD and Momentum update rules
//   - Schedule: learning-rate policies (Fixed, LinearDecay, ExponentialDecay)
//
// Every Optimizer owns its own state (velocity, schedule position), so
// two parameters never share an update history.
//
// Example usage:
//
//	factory := optim.NewMomentum(optim.MomentumConfig{
//	    Schedule: optim.NewExponentialDecay(0.1, 0.01),
//	    Momentum: 0.9,
//	})
//	trainable := network.WithOptimiser(factory)
package optim

import "github.com/born-ml/strata/internal/tensor"

// Optimizer updates one parameter tensor from its gradient.
//
// The gradient always has the parameter's shape.
type Optimizer interface {
	// Optimise applies one update to param in place.
	Optimise(param, grad *tensor.Matrix)

	// Init is called once before training with the total number of epochs.
	Init(epochs int)

	// EndEpoch advances per-epoch state such as the learning-rate schedule.
	EndEpoch()
}

// Factory creates independent optimizers, one per trainable parameter.
type Factory interface {
	Instantiate() Optimizer
}

// Null leaves parameters untouched. It is both a Factory and an Optimizer.
type Null struct{}

// Instantiate returns a Null optimizer.
func (Null) Instantiate() Optimizer { return Null{} }

// Optimise does nothing.
func (Null) Optimise(_, _ *tensor.Matrix) {}

// Init does nothing.
func (Null) Init(int) {}

// EndEpoch does nothing.
func (Null) EndEpoch() {}
