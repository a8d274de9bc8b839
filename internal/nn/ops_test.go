package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/strata/internal/optim"
	"github.com/born-ml/strata/internal/tensor"
)

func TestWeightMultiply_Predict(t *testing.T) {
	op := initLayer(t, NewWeightMultiply(1), 3, 7, 8, 9)

	out, err := op.Predict(matrix(t, 2, 3, 1, 2, 3, 4, 5, 6))
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 1}, out.Shape())
	assert.Equal(t, []float64{50, 122}, out.Values())
}

func TestWeightMultiply_PredictWidthMismatch(t *testing.T) {
	op := initLayer(t, NewWeightMultiply(1), 3, 7, 8, 9)

	_, err := op.Predict(matrix(t, 1, 2, 1, 2))
	var mismatch *tensor.ShapeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 3, mismatch.Expected)
	assert.Equal(t, 2, mismatch.Actual)
}

func TestWeightMultiply_Backward(t *testing.T) {
	op := initLayer(t, NewWeightMultiply(1), 3, 7, 8, 9)
	node := op.train(optim.Null{})

	p, _, err := node.forward(matrix(t, 2, 3, 1, 2, 3, 4, 5, 6))
	require.NoError(t, err)

	s, inputGrad, err := p.backward(ones(t, 2, 1))
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 8, 9, 7, 8, 9}, inputGrad.Values())

	ps, ok := s.(paramStep)
	require.True(t, ok)
	assert.Equal(t, tensor.Shape{3, 1}, ps.grad.Shape())
	assert.Equal(t, []float64{5, 7, 9}, ps.grad.Values())
}

func TestWeightMultiply_BackwardShapeChecks(t *testing.T) {
	op := initLayer(t, NewWeightMultiply(1), 3, 7, 8, 9)
	p, _, err := op.train(optim.Null{}).forward(matrix(t, 2, 3, 1, 2, 3, 4, 5, 6))
	require.NoError(t, err)

	_, _, err = p.backward(ones(t, 2, 2))
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, _, err = p.backward(ones(t, 3, 1))
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestWeightMultiply_WithStreamShort(t *testing.T) {
	s := tensor.NewStream(tensor.Values(1, 2))
	defer s.Stop()

	_, _, err := NewWeightMultiply(2).withStream(s, 3)
	var mismatch *tensor.ShapeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 6, mismatch.Expected)
	assert.Equal(t, 2, mismatch.Actual)
}

func TestWeightMultiply_XavierBound(t *testing.T) {
	op, width := NewWeightMultiply(4).withSeed(11, 2)
	assert.Equal(t, 4, width)

	bound := math.Sqrt(6.0 / 6.0)
	vals := collect(op)
	require.Len(t, vals, 8)
	for _, v := range vals {
		assert.LessOrEqual(t, math.Abs(v), bound)
	}

	again, _ := NewWeightMultiply(4).withSeed(11, 2)
	assert.Equal(t, vals, collect(again))
}

func TestWeightMultiply_GradientMatchesNumeric(t *testing.T) {
	op := initLayer(t, NewWeightMultiply(2), 3, 0.5, -1, 2, 0.25, -0.75, 1.5)
	input := matrix(t, 2, 3, 0.1, -0.2, 0.3, 0.4, 0.5, -0.6)
	grad := matrix(t, 2, 2, 1, -2, 0.5, 3)

	p, _, err := op.train(optim.Null{}).forward(input)
	require.NoError(t, err)
	_, inputGrad, err := p.backward(grad)
	require.NoError(t, err)

	assert.InDeltaSlice(t, numericInputGrad(t, op, input, grad), inputGrad.Values(), 1e-6)
}

func TestBiasAdd_Predict(t *testing.T) {
	op := initLayer(t, NewBiasAdd(2), 2, 10, 20)

	out, err := op.Predict(matrix(t, 2, 2, 1, 2, 3, 4))
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 22, 13, 24}, out.Values())

	_, err = op.Predict(matrix(t, 1, 3, 1, 2, 3))
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestBiasAdd_Backward(t *testing.T) {
	op := initLayer(t, NewBiasAdd(2), 2, 10, 20)
	p, _, err := op.train(optim.Null{}).forward(matrix(t, 3, 2, 1, 2, 3, 4, 5, 6))
	require.NoError(t, err)

	grad := matrix(t, 3, 2, 1, 2, 3, 4, 5, 6)
	s, inputGrad, err := p.backward(grad)
	require.NoError(t, err)
	assert.True(t, grad.Equal(inputGrad))

	ps := s.(paramStep)
	assert.Equal(t, tensor.Shape{1, 2}, ps.grad.Shape())
	assert.Equal(t, []float64{9, 12}, ps.grad.Values())

	_, _, err = p.backward(ones(t, 2, 2))
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestBiasAdd_SeededUsesHint(t *testing.T) {
	op, width := NewBiasAdd(10).withSeed(3, 2)
	assert.Equal(t, 2, width)

	bound := math.Sqrt(6.0 / 12.0)
	for _, v := range collect(op) {
		assert.LessOrEqual(t, math.Abs(v), bound)
	}
}

func TestActivation_Forward(t *testing.T) {
	input := matrix(t, 1, 4, -2, -0.5, 0, 3)

	tests := []struct {
		name string
		act  *Activation
		want []float64
	}{
		{"linear", NewLinear(), []float64{-2, -0.5, 0, 3}},
		{"relu", NewReLU(), []float64{0, 0, 0, 3}},
		{"leaky", NewLeakyReLU(0.1), []float64{-0.2, -0.05, 0, 3}},
		{"sigmoid", NewSigmoid(), []float64{1 / (1 + math.Exp(2)), 1 / (1 + math.Exp(0.5)), 0.5, 1 / (1 + math.Exp(-3))}},
		{"tanh", NewTanh(), []float64{math.Tanh(-2), math.Tanh(-0.5), 0, math.Tanh(3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := initLayer(t, tt.act, 4)
			out, err := op.Predict(input)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tt.want, out.Values(), 1e-12)
			assert.Equal(t, 0, op.ParameterCount())
		})
	}
}

func TestActivation_DerivativeIdentities(t *testing.T) {
	input := matrix(t, 2, 3, -2, -0.5, 0.25, 0.75, 1.5, 3)
	grad := matrix(t, 2, 3, 1, -1, 2, 0.5, -3, 1)

	tests := []struct {
		name  string
		act   *Activation
		deriv func(y float64) float64
	}{
		{"linear", NewLinear(), func(float64) float64 { return 1 }},
		{"relu", NewReLU(), func(y float64) float64 {
			if y > 0 {
				return 1
			}
			return 0
		}},
		{"leaky", NewLeakyReLU(0.01), func(y float64) float64 {
			if y > 0 {
				return 1
			}
			return 0.01
		}},
		{"sigmoid", NewSigmoid(), func(y float64) float64 { return y * (1 - y) }},
		{"tanh", NewTanh(), func(y float64) float64 { return 1 - y*y }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := initLayer(t, tt.act, 3)
			p, out, err := op.train(optim.Null{}).forward(input)
			require.NoError(t, err)

			_, inputGrad, err := p.backward(grad)
			require.NoError(t, err)

			y, g := out.Values(), grad.Values()
			for i, got := range inputGrad.Values() {
				assert.InDelta(t, g[i]*tt.deriv(y[i]), got, 1e-12)
			}
			assert.InDeltaSlice(t, numericInputGrad(t, op, input, grad), inputGrad.Values(), 1e-6)

			_, _, err = p.backward(ones(t, 1, 3))
			require.ErrorIs(t, err, tensor.ErrShapeMismatch)
		})
	}
}

func TestDropout_PredictScales(t *testing.T) {
	op := initLayer(t, NewDropout(0.8), 3)
	out, err := op.Predict(matrix(t, 1, 3, 1, 2, 3))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.8, 1.6, 2.4}, out.Values(), 1e-12)
}

func TestDropout_MaskIsReproducibleAndAdvances(t *testing.T) {
	run := func() (first, second []float64) {
		op, _ := NewDropout(0.5).withSeed(42, 64)
		node := op.train(optim.Null{})

		p, out, err := node.forward(ones(t, 1, 64))
		require.NoError(t, err)
		p.commit()
		first = out.Values()

		p, out, err = node.forward(ones(t, 1, 64))
		require.NoError(t, err)
		p.commit()
		second = out.Values()
		return first, second
	}

	a1, a2 := run()
	b1, b2 := run()
	assert.Equal(t, a1, b1)
	assert.Equal(t, a2, b2)
	assert.NotEqual(t, a1, a2)

	for _, v := range a1 {
		assert.True(t, v == 0 || v == 1)
	}
}

func TestDropout_BackwardUsesMask(t *testing.T) {
	op, _ := NewDropout(0.5).withSeed(7, 16)
	p, out, err := op.train(optim.Null{}).forward(ones(t, 2, 16))
	require.NoError(t, err)

	_, inputGrad, err := p.backward(ones(t, 2, 16))
	require.NoError(t, err)
	assert.Equal(t, out.Values(), inputGrad.Values())

	_, _, err = p.backward(ones(t, 1, 16))
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestDropout_FullKeepIsIdentity(t *testing.T) {
	op := initLayer(t, NewDropout(1), 4)
	input := matrix(t, 1, 4, 1, 2, 3, 4)
	_, out, err := op.train(optim.Null{}).forward(input)
	require.NoError(t, err)
	assert.Equal(t, input.Values(), out.Values())
}

func TestDropout_InvalidKeepPanics(t *testing.T) {
	assert.Panics(t, func() { NewDropout(0) })
	assert.Panics(t, func() { NewDropout(1.5) })
}

func TestInput_Identity(t *testing.T) {
	op := NewInput(3).WithSeed(0)
	input := matrix(t, 2, 3, 1, 2, 3, 4, 5, 6)

	out, err := op.Predict(input)
	require.NoError(t, err)
	assert.True(t, input.Equal(out))

	_, err = op.Predict(matrix(t, 1, 2, 1, 2))
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)

	p, _, err := op.train(optim.Null{}).forward(input)
	require.NoError(t, err)
	_, g, err := p.backward(input)
	require.NoError(t, err)
	assert.True(t, input.Equal(g))

	_, _, err = p.backward(ones(t, 1, 3))
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestConstructors_PanicOnNonPositiveWidth(t *testing.T) {
	assert.Panics(t, func() { NewInput(0) })
	assert.Panics(t, func() { NewWeightMultiply(-1) })
	assert.Panics(t, func() { NewDense(0, NewLinear()) })
}
