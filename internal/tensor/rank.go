package tensor

// Rank is the compile-time number of dimensions of a tensor.
//
// Rank markers carry no data; they only fix how many dimensions a
// Tensor[R] is allowed to have.
type Rank interface {
	Zero | One | Two | Three | Four | Five
	Dims() int
}

type (
	// Zero is the rank of a scalar.
	Zero struct{}
	// One is the rank of a vector.
	One struct{}
	// Two is the rank of a matrix.
	Two struct{}
	// Three is a rank-3 marker.
	Three struct{}
	// Four is a rank-4 marker.
	Four struct{}
	// Five is a rank-5 marker.
	Five struct{}
)

// Dims returns 0.
func (Zero) Dims() int { return 0 }

// Dims returns 1.
func (One) Dims() int { return 1 }

// Dims returns 2.
func (Two) Dims() int { return 2 }

// Dims returns 3.
func (Three) Dims() int { return 3 }

// Dims returns 4.
func (Four) Dims() int { return 4 }

// Dims returns 5.
func (Five) Dims() int { return 5 }

func dims[R Rank]() int {
	var r R
	return r.Dims()
}
