package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/strata/internal/optim"
	"github.com/born-ml/strata/internal/tensor"
)

func TestNetwork_Predict(t *testing.T) {
	network := NewInput(2).Chain(NewDense(3, NewReLU()))
	op, err := network.WithIter(tensor.Values(1, 2, 3, 4, 5, 6, 4, 7, 2))
	require.NoError(t, err)

	out, err := op.Predict(matrix(t, 2, 2, 7, 1, 2, 6))
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, out.Shape())
	assert.Equal(t, []float64{15, 26, 29, 30, 41, 44}, out.Values())
}

func TestNetwork_ParametersFollowStreamOrder(t *testing.T) {
	network := NewInput(3).Chain(NewDense(2, NewLinear())).Chain(NewDense(1, NewLinear()))
	op, err := network.WithIter(tensor.Values(append(seq11(), 99, 100)...))
	require.NoError(t, err)

	assert.Equal(t, 11, op.ParameterCount())
	assert.Equal(t, seq11(), collect(op))

	rebuilt, err := network.WithIter(op.Parameters())
	require.NoError(t, err)
	assert.Equal(t, collect(op), collect(rebuilt))
}

func TestNetwork_WithIterShort(t *testing.T) {
	network := NewInput(3).Chain(NewDense(2, NewLinear())).Chain(NewDense(1, NewLinear()))
	_, err := network.WithIter(tensor.Values(1, 2, 3, 4, 5, 6, 7, 8, 9))

	var mismatch *tensor.ShapeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 2, mismatch.Expected)
	assert.Equal(t, 1, mismatch.Actual)
}

func TestNetwork_WidthsFollowChain(t *testing.T) {
	network := NewInput(5).
		Chain(NewDense(4, NewTanh())).
		Chain(NewDropout(0.9)).
		Chain(NewDense(2, NewSigmoid()))
	op := network.WithSeed(1)

	assert.Equal(t, 5*4+4+4*2+2, op.ParameterCount())

	out, err := op.Predict(ones(t, 3, 5))
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 2}, out.Shape())

	_, err = op.Predict(ones(t, 3, 4))
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestNetwork_WithSeedDeterministic(t *testing.T) {
	network := NewInput(4).Chain(NewDense(3, NewReLU())).Chain(NewDense(2, NewLinear()))

	a := collect(network.WithSeed(42))
	b := collect(network.WithSeed(42))
	c := collect(network.WithSeed(43))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestComposite_SeedsLeftThenRight(t *testing.T) {
	composite := Compose(NewWeightMultiply(2), NewBiasAdd(2))
	op, width := composite.withSeed(10, 3)
	assert.Equal(t, 2, width)

	weights, _ := NewWeightMultiply(2).withSeed(10, 3)
	bias, _ := NewBiasAdd(2).withSeed(11, 2)
	assert.Equal(t, append(collect(weights), collect(bias)...), collect(op))
}

func TestDense_SeedsWeightsBiasActivation(t *testing.T) {
	op, width := NewDense(2, NewLinear()).withSeed(20, 3)
	assert.Equal(t, 2, width)

	weights, _ := NewWeightMultiply(2).withSeed(20, 3)
	bias, _ := NewBiasAdd(2).withSeed(21, 2)
	assert.Equal(t, append(collect(weights), collect(bias)...), collect(op))
}

func TestComposite_ChainAsLayer(t *testing.T) {
	block := Compose(NewDense(3, NewTanh()), NewDense(2, NewLinear())).Chain(NewDropout(1))
	op, err := NewInput(2).Chain(block).WithIter(tensor.Values(seq11()...))
	require.Error(t, err)
	require.Nil(t, op)

	op, err = NewInput(2).Chain(block).WithIter(tensor.Values(append(seq11(), seq11()...)...))
	require.NoError(t, err)
	assert.Equal(t, 2*3+3+3*2+2, op.ParameterCount())
}

// Dense must equal threading the input through its three parts by hand.
func TestDense_MatchesManualChain(t *testing.T) {
	params := []float64{0.2, -0.4, 0.6, 0.1, -0.3, 0.5, 0.05, -0.15}
	input := matrix(t, 2, 3, 1, -1, 2, 0.5, 0.25, -0.75)
	grad := matrix(t, 2, 2, 1, -0.5, 2, 0.25)

	denseOp := initLayer(t, NewDense(2, NewTanh()), 3, params...)

	weights := initLayer(t, NewWeightMultiply(2), 3, params[:6]...)
	bias := initLayer(t, NewBiasAdd(2), 2, params[6:]...)
	activation := initLayer(t, NewTanh(), 2)

	wNode, bNode, aNode := weights.train(optim.Null{}), bias.train(optim.Null{}), activation.train(optim.Null{})
	wPass, h1, err := wNode.forward(input)
	require.NoError(t, err)
	bPass, h2, err := bNode.forward(h1)
	require.NoError(t, err)
	aPass, manualOut, err := aNode.forward(h2)
	require.NoError(t, err)

	_, g2, err := aPass.backward(grad)
	require.NoError(t, err)
	bStep, g1, err := bPass.backward(g2)
	require.NoError(t, err)
	wStep, manualInputGrad, err := wPass.backward(g1)
	require.NoError(t, err)

	densePass, denseOut, err := denseOp.train(optim.Null{}).forward(input)
	require.NoError(t, err)
	denseStep, denseInputGrad, err := densePass.backward(grad)
	require.NoError(t, err)

	assert.InDeltaSlice(t, manualOut.Values(), denseOut.Values(), 1e-15)
	assert.InDeltaSlice(t, manualInputGrad.Values(), denseInputGrad.Values(), 1e-15)

	outer := denseStep.(compositeStep)
	inner := outer.lhs.(compositeStep)
	assert.Equal(t, wStep.(paramStep).grad.Values(), inner.lhs.(paramStep).grad.Values())
	assert.Equal(t, bStep.(paramStep).grad.Values(), inner.rhs.(paramStep).grad.Values())

	assert.InDeltaSlice(t, numericInputGrad(t, denseOp, input, grad), denseInputGrad.Values(), 1e-6)
}
