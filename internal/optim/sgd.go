package optim

import (
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/strata/internal/tensor"
)

// SGDConfig holds configuration for the SGD factory.
type SGDConfig struct {
	Schedule Schedule // Learning-rate schedule (default: Fixed(0.01))
}

// SGDFactory creates plain stochastic gradient descent optimizers.
//
// Update rule:
//
//	param = param - lr * gradient
type SGDFactory struct {
	schedule Schedule
}

// NewSGD creates an SGD factory.
//
// Example:
//
//	factory := optim.NewSGD(optim.SGDConfig{Schedule: optim.Fixed(0.001)})
func NewSGD(config SGDConfig) *SGDFactory {
	if config.Schedule == nil {
		config.Schedule = Fixed(0.01)
	}
	return &SGDFactory{schedule: config.Schedule}
}

// Instantiate returns an SGD optimizer with its own copy of the schedule.
func (f *SGDFactory) Instantiate() Optimizer {
	return &SGD{schedule: f.schedule.Clone()}
}

// SGD is a single-parameter gradient descent optimizer.
type SGD struct {
	schedule Schedule
}

// Optimise applies param -= lr * grad.
func (s *SGD) Optimise(param, grad *tensor.Matrix) {
	floats.AddScaled(param.Data(), -s.schedule.Rate(), grad.Data())
}

// Init initialises the schedule.
func (s *SGD) Init(epochs int) { s.schedule.Init(epochs) }

// EndEpoch advances the schedule.
func (s *SGD) EndEpoch() { s.schedule.EndEpoch() }

// MomentumConfig holds configuration for the momentum factory.
type MomentumConfig struct {
	Schedule Schedule // Learning-rate schedule (default: Fixed(0.01))
	Momentum float64  // Velocity decay (default: 0.9, range: [0, 1))
}

// MomentumFactory creates SGD optimizers with momentum.
//
// Update rule:
//
//	velocity = momentum * velocity + lr * gradient
//	param    = param - velocity
type MomentumFactory struct {
	schedule Schedule
	momentum float64
}

// NewMomentum creates a momentum factory.
func NewMomentum(config MomentumConfig) *MomentumFactory {
	if config.Schedule == nil {
		config.Schedule = Fixed(0.01)
	}
	if config.Momentum == 0 {
		config.Momentum = 0.9
	}
	return &MomentumFactory{schedule: config.Schedule, momentum: config.Momentum}
}

// Instantiate returns a momentum optimizer with zero velocity and its own
// copy of the schedule.
func (f *MomentumFactory) Instantiate() Optimizer {
	return &Momentum{schedule: f.schedule.Clone(), momentum: f.momentum}
}

// Momentum is a single-parameter SGD optimizer with velocity.
type Momentum struct {
	schedule Schedule
	momentum float64
	velocity []float64 // lazily shaped like the parameter
}

// Optimise updates the velocity and subtracts it from param.
func (m *Momentum) Optimise(param, grad *tensor.Matrix) {
	if m.velocity == nil {
		m.velocity = make([]float64, param.Len())
	}
	floats.Scale(m.momentum, m.velocity)
	floats.AddScaled(m.velocity, m.schedule.Rate(), grad.Data())
	floats.Sub(param.Data(), m.velocity)
}

// Init initialises the schedule.
func (m *Momentum) Init(epochs int) { m.schedule.Init(epochs) }

// EndEpoch advances the schedule.
func (m *Momentum) EndEpoch() { m.schedule.EndEpoch() }
