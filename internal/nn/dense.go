package nn

import "github.com/born-ml/strata/internal/tensor"

// Dense is a fully connected layer: weight multiplication, bias addition
// and an activation, applied in that order.
//
// Example:
//
//	hidden := nn.NewDense(128, nn.NewReLU())
type Dense struct {
	weights    *WeightMultiply
	bias       *BiasAdd
	activation *Activation
}

// NewDense creates a layer of the given number of neurons. It panics if
// neurons is not positive.
func NewDense(neurons int, activation *Activation) *Dense {
	return &Dense{
		weights:    NewWeightMultiply(neurons),
		bias:       NewBiasAdd(neurons),
		activation: activation,
	}
}

func (*Dense) layer() {}

func (d *Dense) withStream(s *tensor.Stream, fanIn int) (Initialised, int, error) {
	weights, width, err := d.weights.withStream(s, fanIn)
	if err != nil {
		return nil, 0, err
	}
	bias, width, err := d.bias.withStream(s, width)
	if err != nil {
		return nil, 0, err
	}
	activation, width, err := d.activation.withStream(s, width)
	if err != nil {
		return nil, 0, err
	}
	return dense(weights, bias, activation), width, nil
}

// withSeed seeds the weights, bias and activation with seed, seed+1 and
// seed+2.
func (d *Dense) withSeed(seed uint64, fanIn int) (Initialised, int) {
	weights, width := d.weights.withSeed(seed, fanIn)
	bias, width := d.bias.withSeed(seed+1, width)
	activation, width := d.activation.withSeed(seed+2, width)
	return dense(weights, bias, activation), width
}

func dense(weights, bias, activation Initialised) Initialised {
	return &compositeOp{
		lhs: &compositeOp{lhs: weights, rhs: bias},
		rhs: activation,
	}
}
