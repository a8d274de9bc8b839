package serialization

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"iter"
	"math"
)

// valueSize is the encoded size of one float64.
const valueSize = 8

// Write encodes values to w and returns how many were written.
func Write(w io.Writer, values iter.Seq[float64]) (int, error) {
	bw := bufio.NewWriter(w)
	var buf [valueSize]byte
	n := 0
	for v := range values {
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(v))
		if _, err := bw.Write(buf[:]); err != nil {
			return n, fmt.Errorf("failed to write value %d: %w", n, err)
		}
		n++
	}
	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("failed to flush weights: %w", err)
	}
	return n, nil
}

// Read decodes every value in r.
//
// A stream whose length is not a multiple of eight bytes yields
// ErrTruncated.
func Read(r io.Reader) ([]float64, error) {
	br := bufio.NewReader(r)
	var buf [valueSize]byte
	var values []float64
	for {
		_, err := io.ReadFull(br, buf[:])
		switch {
		case err == nil:
			values = append(values, math.Float64frombits(binary.BigEndian.Uint64(buf[:])))
		case errors.Is(err, io.EOF):
			return values, nil
		case errors.Is(err, io.ErrUnexpectedEOF):
			return nil, fmt.Errorf("value %d: %w", len(values), ErrTruncated)
		default:
			return nil, fmt.Errorf("failed to read value %d: %w", len(values), err)
		}
	}
}
