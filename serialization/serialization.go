// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package serialization saves and loads network weights as a flat stream
// of big-endian float64 values.
//
// Example:
//
//	if err := serialization.Save(filepath.Join(dir, serialization.FileName), trained); err != nil {
//	    log.Fatal(err)
//	}
//	trained, err := serialization.Load(filepath.Join(dir, serialization.FileName), network)
package serialization

import (
	"io"
	"iter"

	"github.com/born-ml/strata/internal/serialization"
	"github.com/born-ml/strata/nn"
)

// FileName is the conventional weights file name.
const FileName = serialization.FileName

// Errors.
var (
	ErrTruncated     = serialization.ErrTruncated
	ErrCountMismatch = serialization.ErrCountMismatch
)

// CountError reports a weights file whose size does not match the network.
type CountError = serialization.CountError

// Initialiser is an uninitialised network such as *nn.Network.
type Initialiser = serialization.Initialiser

// Summary describes the contents of a weights file.
type Summary = serialization.Summary

// Write encodes values to w.
func Write(w io.Writer, values iter.Seq[float64]) (int, error) {
	return serialization.Write(w, values)
}

// Read decodes every value in r.
func Read(r io.Reader) ([]float64, error) {
	return serialization.Read(r)
}

// Save writes the parameters of network to path.
func Save(path string, network nn.Initialised) error {
	return serialization.Save(path, network)
}

// Load reads the weights file at path into network.
func Load(path string, network Initialiser) (nn.Initialised, error) {
	return serialization.Load(path, network)
}

// Inspect summarises the weights file at path.
func Inspect(path string) (Summary, error) {
	return serialization.Inspect(path)
}
