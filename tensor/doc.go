// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides rank-typed, row-major float64 tensors.
//
// # Overview
//
// A Tensor[R] carries its rank in its type, so a matrix can never be
// passed where a vector is expected. Construction always checks that the
// shape has R dimensions and that exactly enough elements were supplied.
//
// # Basic Usage
//
//	import "github.com/born-ml/strata/tensor"
//
//	m, err := tensor.New[tensor.Two](tensor.Shape{2, 3}, tensor.Values(1, 2, 3, 4, 5, 6))
//	if err != nil {
//	    // errors.Is(err, tensor.ErrShapeMismatch)
//	}
//	for v := range m.All() {
//	    fmt.Println(v)
//	}
//
// Matrix is the rank-two tensor every network layer consumes.
package tensor
