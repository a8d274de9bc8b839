// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/strata/nn"
	"github.com/born-ml/strata/optim"
	"github.com/born-ml/strata/tensor"
)

func TestNetwork_TrainStep(t *testing.T) {
	network := nn.NewInput(2).Chain(nn.NewDense(1, nn.NewLinear()))
	op, err := network.WithIter(tensor.Values(1, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, 3, op.ParameterCount())

	x, err := tensor.FromSlice[tensor.Two](tensor.Shape{1, 2}, []float64{1, 2})
	require.NoError(t, err)
	y, err := tensor.FromSlice[tensor.Two](tensor.Shape{1, 1}, []float64{0})
	require.NoError(t, err)

	tr := op.WithOptimiser(optim.NewSGD(optim.SGDConfig{Schedule: optim.Fixed(0.1)}))
	pending, out, err := tr.Forward(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, out.Values())

	_, _, err = tr.Forward(x)
	require.ErrorIs(t, err, nn.ErrBorrowed)

	_, grad, err := nn.MeanSquaredError{}.Loss(out, y)
	require.NoError(t, err)
	ready, _, err := pending.Backward(grad)
	require.NoError(t, err)
	require.NoError(t, ready.Optimise())
	require.ErrorIs(t, ready.Optimise(), nn.ErrConsumed)

	trained, err := tr.IntoInitialised()
	require.NoError(t, err)
	pred, err := trained.Predict(x)
	require.NoError(t, err)
	assert.Less(t, pred.Values()[0], 3.0)
}
