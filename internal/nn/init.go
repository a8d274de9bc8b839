package nn

import (
	"fmt"
	"iter"
	"math"

	"github.com/born-ml/strata/internal/tensor"
)

// xavier yields samples from U(-sqrt(6/(fanIn+fanOut)), sqrt(6/(fanIn+fanOut))).
func xavier(seed uint64, fanIn, fanOut int) iter.Seq[float64] {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	return tensor.Uniform(seed, -bound, bound)
}

// parameter pulls a (rows, cols) parameter tensor from s.
func parameter(op string, s *tensor.Stream, rows, cols int) (*tensor.Matrix, error) {
	p, err := tensor.FromStream[tensor.Two](tensor.Shape{rows, cols}, s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// seededParameter builds a (rows, cols) parameter from an unbounded stream.
func seededParameter(seq iter.Seq[float64], rows, cols int) *tensor.Matrix {
	p, err := tensor.New[tensor.Two](tensor.Shape{rows, cols}, seq)
	if err != nil {
		// unreachable: the stream never ends and the shape is non-negative.
		panic(err)
	}
	return p
}

func checkWidth(op string, m *tensor.Matrix, width int) error {
	if m.Dim(1) != width {
		return &tensor.ShapeMismatchError{Op: op, Expected: width, Actual: m.Dim(1), Shape: m.Shape()}
	}
	return nil
}

func checkRows(op string, m *tensor.Matrix, rows int) error {
	if m.Dim(0) != rows {
		return &tensor.ShapeMismatchError{Op: op, Expected: rows, Actual: m.Dim(0), Shape: m.Shape()}
	}
	return nil
}

func mustPositive(op string, n int) {
	if n <= 0 {
		panic(fmt.Sprintf("nn: %s width must be positive, got %d", op, n))
	}
}
