package nn

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/born-ml/strata/internal/tensor"
)

func matrix(t *testing.T, rows, cols int, data ...float64) *tensor.Matrix {
	t.Helper()
	m, err := tensor.FromSlice[tensor.Two](tensor.Shape{rows, cols}, data)
	require.NoError(t, err)
	return m
}

func ones(t *testing.T, rows, cols int) *tensor.Matrix {
	t.Helper()
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = 1
	}
	return matrix(t, rows, cols, data...)
}

// initLayer initialises a single layer from vals with the given fan-in.
func initLayer(t *testing.T, l Layer, fanIn int, vals ...float64) Initialised {
	t.Helper()
	s := tensor.NewStream(tensor.Values(vals...))
	defer s.Stop()
	op, _, err := l.withStream(s, fanIn)
	require.NoError(t, err)
	return op
}

// numericInputGrad differentiates x -> <op.Predict(x), grad> at input.
func numericInputGrad(t *testing.T, op Initialised, input, grad *tensor.Matrix) []float64 {
	t.Helper()
	g := grad.Values()
	shape := input.Shape()
	return fd.Gradient(nil, func(x []float64) float64 {
		m, err := tensor.FromSlice[tensor.Two](shape, x)
		require.NoError(t, err)
		out, err := op.Predict(m)
		require.NoError(t, err)
		var s float64
		for i, v := range out.Values() {
			s += v * g[i]
		}
		return s
	}, input.Values(), &fd.Settings{Formula: fd.Central})
}

func collect(op Initialised) []float64 {
	return slices.Collect(op.Parameters())
}

func seq11() []float64 {
	return []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
}
