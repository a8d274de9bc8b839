package tensor

import (
	"iter"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Stream is a pull-based element source shared by several consumers.
//
// A single Stream can be threaded through a chain of constructors so that
// each one takes exactly the elements it needs and leaves the rest for the
// next. Stop must be called once the stream is no longer needed.
type Stream struct {
	next     func() (float64, bool)
	stop     func()
	consumed int
}

// NewStream wraps seq in a Stream.
func NewStream(seq iter.Seq[float64]) *Stream {
	next, stop := iter.Pull(seq)
	return &Stream{next: next, stop: stop}
}

// Next returns the next element, or false once the stream is exhausted.
func (s *Stream) Next() (float64, bool) {
	v, ok := s.next()
	if ok {
		s.consumed++
	}
	return v, ok
}

// Consumed returns how many elements have been taken so far.
func (s *Stream) Consumed() int {
	return s.consumed
}

// Stop releases the underlying iterator.
func (s *Stream) Stop() {
	s.stop()
}

// Values yields the elements of vals in order.
func Values(vals ...float64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, v := range vals {
			if !yield(v) {
				return
			}
		}
	}
}

// Uniform yields an unbounded sequence of samples drawn uniformly from
// [lo, hi] using a PCG generator seeded with seed.
func Uniform(seed uint64, lo, hi float64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		dist := distuv.Uniform{Min: lo, Max: hi, Src: rand.NewPCG(seed, seed)}
		for {
			if !yield(dist.Rand()) {
				return
			}
		}
	}
}

// Flatten concatenates the row-major elements of parts.
func Flatten(parts ...Storage) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, p := range parts {
			for v := range p.All() {
				if !yield(v) {
					return
				}
			}
		}
	}
}
