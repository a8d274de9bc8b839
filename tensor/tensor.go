// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"iter"

	"github.com/born-ml/strata/internal/tensor"
)

// Shape is the size of each dimension.
type Shape = tensor.Shape

// Rank is the compile-time number of dimensions of a tensor.
type Rank = tensor.Rank

// Rank markers.
type (
	Zero  = tensor.Zero
	One   = tensor.One
	Two   = tensor.Two
	Three = tensor.Three
	Four  = tensor.Four
	Five  = tensor.Five
)

// Tensor is a dense, row-major tensor of rank R.
type Tensor[R Rank] = tensor.Tensor[R]

// Matrix is a rank-two tensor.
type Matrix = tensor.Matrix

// Storage is what every tensor provides regardless of rank.
type Storage = tensor.Storage

// Stream is a pull-based element source shared by consecutive constructions.
type Stream = tensor.Stream

// ErrShapeMismatch is matched by every shape error.
var ErrShapeMismatch = tensor.ErrShapeMismatch

// ShapeMismatchError describes a shape error.
type ShapeMismatchError = tensor.ShapeMismatchError

// New creates a tensor from exactly shape.NumElements() elements.
func New[R Rank](shape Shape, elems iter.Seq[float64]) (*Tensor[R], error) {
	return tensor.New[R](shape, elems)
}

// FromStream creates a tensor from the next elements of s.
func FromStream[R Rank](shape Shape, s *Stream) (*Tensor[R], error) {
	return tensor.FromStream[R](shape, s)
}

// FromSlice creates a tensor holding a copy of data.
func FromSlice[R Rank](shape Shape, data []float64) (*Tensor[R], error) {
	return tensor.FromSlice[R](shape, data)
}

// Zeros creates a zero-filled tensor.
func Zeros[R Rank](shape Shape) (*Tensor[R], error) {
	return tensor.Zeros[R](shape)
}

// NewStream wraps seq for consumption across several constructions.
func NewStream(seq iter.Seq[float64]) *Stream {
	return tensor.NewStream(seq)
}

// Values returns a sequence over vals.
func Values(vals ...float64) iter.Seq[float64] {
	return tensor.Values(vals...)
}

// Flatten chains the elements of parts in order.
func Flatten(parts ...Storage) iter.Seq[float64] {
	return tensor.Flatten(parts...)
}

// ArgmaxRows returns the column index of the largest value in each row.
func ArgmaxRows(m *Matrix) []int {
	return tensor.ArgmaxRows(m)
}
