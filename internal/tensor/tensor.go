// Package tensor implements rank-typed dense float64 tensors.
//
// The rank of a tensor is part of its type (Tensor[Two] is a matrix), and
// the element count of every tensor always equals the product of its
// shape. Constructors that cannot satisfy this return a
// *ShapeMismatchError instead of a partial tensor.
package tensor

import (
	"iter"
	"slices"
)

// Storage is the read-only view of a tensor used at package boundaries.
type Storage interface {
	// Shape returns a copy of the tensor dimensions.
	Shape() Shape
	// All yields every element in row-major order.
	All() iter.Seq[float64]
}

// Tensor is a dense row-major array of float64 with rank R.
//
// Tensors are treated as immutable once built. The only exception is a
// parameter tensor updated in place by an optimiser through Data.
type Tensor[R Rank] struct {
	shape Shape
	data  []float64
}

// Matrix is a rank-2 tensor: rows are samples and columns are features.
type Matrix = Tensor[Two]

// New builds a tensor of the given shape from the first
// shape.NumElements() elements of elems.
//
// If elems yields fewer elements a *ShapeMismatchError is returned with
// Expected set to the required count and Actual to the number received.
func New[R Rank](shape Shape, elems iter.Seq[float64]) (*Tensor[R], error) {
	s := NewStream(elems)
	defer s.Stop()
	return FromStream[R](shape, s)
}

// FromStream builds a tensor by pulling exactly shape.NumElements()
// elements from s. Any remaining elements are left in s.
func FromStream[R Rank](shape Shape, s *Stream) (*Tensor[R], error) {
	if err := checkShape[R](shape); err != nil {
		return nil, err
	}

	n := shape.NumElements()
	data := make([]float64, 0, n)
	for len(data) < n {
		v, ok := s.Next()
		if !ok {
			return nil, &ShapeMismatchError{Op: "tensor", Expected: n, Actual: len(data), Shape: shape.Clone()}
		}
		data = append(data, v)
	}

	return &Tensor[R]{shape: shape.Clone(), data: data}, nil
}

// FromSlice builds a tensor from a copy of data, which must hold exactly
// shape.NumElements() elements.
func FromSlice[R Rank](shape Shape, data []float64) (*Tensor[R], error) {
	if err := checkShape[R](shape); err != nil {
		return nil, err
	}
	if n := shape.NumElements(); n != len(data) {
		return nil, &ShapeMismatchError{Op: "tensor", Expected: n, Actual: len(data), Shape: shape.Clone()}
	}
	return &Tensor[R]{shape: shape.Clone(), data: slices.Clone(data)}, nil
}

// Zeros returns a zero-filled tensor.
func Zeros[R Rank](shape Shape) (*Tensor[R], error) {
	if err := checkShape[R](shape); err != nil {
		return nil, err
	}
	return &Tensor[R]{shape: shape.Clone(), data: make([]float64, shape.NumElements())}, nil
}

// matrix wraps data without copying. len(data) must be rows*cols.
func matrix(rows, cols int, data []float64) *Matrix {
	return &Matrix{shape: Shape{rows, cols}, data: data}
}

func checkShape[R Rank](shape Shape) error {
	if want := dims[R](); len(shape) != want {
		return &ShapeMismatchError{Op: "rank", Expected: want, Actual: len(shape), Shape: shape.Clone()}
	}
	return shape.Validate()
}

// Shape returns a copy of the tensor dimensions.
func (t *Tensor[R]) Shape() Shape {
	return t.shape.Clone()
}

// Dim returns the size of dimension i.
func (t *Tensor[R]) Dim(i int) int {
	return t.shape[i]
}

// Len returns the number of elements.
func (t *Tensor[R]) Len() int {
	return len(t.data)
}

// All yields every element in row-major order.
func (t *Tensor[R]) All() iter.Seq[float64] {
	return slices.Values(t.data)
}

// Values returns a copy of the elements in row-major order.
func (t *Tensor[R]) Values() []float64 {
	return slices.Clone(t.data)
}

// Data returns the backing slice. It is intended for in-place parameter
// updates; callers must not retain it.
func (t *Tensor[R]) Data() []float64 {
	return t.data
}

// Clone returns a deep copy.
func (t *Tensor[R]) Clone() *Tensor[R] {
	return &Tensor[R]{shape: t.shape.Clone(), data: slices.Clone(t.data)}
}

// Equal reports whether t and other have the same shape and elements.
func (t *Tensor[R]) Equal(other *Tensor[R]) bool {
	return t.shape.Equal(other.shape) && slices.Equal(t.data, other.data)
}
