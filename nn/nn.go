// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import "github.com/born-ml/strata/internal/nn"

// Lifecycle.
type (
	// Operation is an uninitialised operation.
	Operation = nn.Operation
	// Layer is an Operation that may follow another in a chain.
	Layer = nn.Layer
	// Initialised is an operation with concrete parameters.
	Initialised = nn.Initialised
	// Trainable is an initialised operation with optimizers attached.
	Trainable = nn.Trainable
	// Pending is the handle returned by Trainable.Forward.
	Pending = nn.Pending
	// Ready is the handle returned by Pending.Backward.
	Ready = nn.Ready
)

// Lifecycle misuse errors.
var (
	ErrBorrowed = nn.ErrBorrowed
	ErrConsumed = nn.ErrConsumed
)

// Operations.
type (
	Input          = nn.Input
	Network        = nn.Network
	Composite      = nn.Composite
	Dense          = nn.Dense
	Dropout        = nn.Dropout
	WeightMultiply = nn.WeightMultiply
	BiasAdd        = nn.BiasAdd
	Activation     = nn.Activation
)

// NewInput creates the first operation of a network.
func NewInput(width int) *Input { return nn.NewInput(width) }

// Compose chains rhs after lhs.
func Compose(lhs, rhs Layer) *Composite { return nn.Compose(lhs, rhs) }

// NewDense creates a fully-connected layer: weights, bias, activation.
func NewDense(neurons int, activation *Activation) *Dense {
	return nn.NewDense(neurons, activation)
}

// NewDropout creates a dropout layer keeping each unit with probability keep.
func NewDropout(keep float64) *Dropout { return nn.NewDropout(keep) }

// NewWeightMultiply creates a weight matrix with fanOut columns.
func NewWeightMultiply(fanOut int) *WeightMultiply { return nn.NewWeightMultiply(fanOut) }

// NewBiasAdd creates a bias row. hint sizes its seeded initialisation.
func NewBiasAdd(hint int) *BiasAdd { return nn.NewBiasAdd(hint) }

// NewLinear returns the identity activation.
func NewLinear() *Activation { return nn.NewLinear() }

// NewReLU returns max(0, x).
func NewReLU() *Activation { return nn.NewReLU() }

// NewLeakyReLU returns x for positive x and factor·x otherwise.
func NewLeakyReLU(factor float64) *Activation { return nn.NewLeakyReLU(factor) }

// NewSigmoid returns the logistic function.
func NewSigmoid() *Activation { return nn.NewSigmoid() }

// NewTanh returns the hyperbolic tangent.
func NewTanh() *Activation { return nn.NewTanh() }

// Losses.
type (
	Loss                = nn.Loss
	MeanSquaredError    = nn.MeanSquaredError
	SoftmaxCrossEntropy = nn.SoftmaxCrossEntropy
)
