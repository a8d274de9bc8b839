// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package train

import (
	"github.com/born-ml/strata/internal/train"
	"github.com/born-ml/strata/nn"
	"github.com/born-ml/strata/optim"
	"github.com/born-ml/strata/tensor"
)

// Config holds configuration for Train.
type Config = train.Config

// ErrInvalidConfig is returned for negative config values.
var ErrInvalidConfig = train.ErrInvalidConfig

// Train fits a copy of network to the training split.
func Train(
	network nn.Initialised,
	factory optim.Factory,
	loss nn.Loss,
	trainInputs, trainTargets *tensor.Matrix,
	testInputs, testTargets *tensor.Matrix,
	config Config,
) (nn.Initialised, error) {
	return train.Train(network, factory, loss, trainInputs, trainTargets, testInputs, testTargets, config)
}

// Evaluate returns the loss of network on inputs and targets.
func Evaluate(network nn.Initialised, loss nn.Loss, inputs, targets *tensor.Matrix) (float64, error) {
	return train.Evaluate(network, loss, inputs, targets)
}

// Accuracy returns the fraction of rows whose argmax matches the one-hot target.
func Accuracy(predictions, targets *tensor.Matrix) (float64, error) {
	return train.Accuracy(predictions, targets)
}
