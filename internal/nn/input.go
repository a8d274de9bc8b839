package nn

import (
	"iter"

	"github.com/born-ml/strata/internal/optim"
	"github.com/born-ml/strata/internal/tensor"
)

// Input is the mandatory first operation of every network. It has no
// parameters and only fixes the number of input features.
type Input struct {
	width int
}

// NewInput creates an Input accepting width features. It panics if width
// is not positive.
func NewInput(width int) *Input {
	mustPositive("input", width)
	return &Input{width: width}
}

// Chain starts a network with l as the first layer after the input.
func (in *Input) Chain(l Layer) *Network {
	return &Network{root: &Composite{lhs: in, rhs: l}}
}

// WithIter initialises the input. It consumes no elements.
func (in *Input) WithIter(_ iter.Seq[float64]) (Initialised, error) {
	return &inputOp{width: in.width}, nil
}

// WithSeed initialises the input.
func (in *Input) WithSeed(_ uint64) Initialised {
	return &inputOp{width: in.width}
}

func (in *Input) withStream(_ *tensor.Stream, _ int) (Initialised, int, error) {
	return &inputOp{width: in.width}, in.width, nil
}

func (in *Input) withSeed(_ uint64, _ int) (Initialised, int) {
	return &inputOp{width: in.width}, in.width
}

type inputOp struct {
	width int
}

func (op *inputOp) Predict(input *tensor.Matrix) (*tensor.Matrix, error) {
	if err := checkWidth("input", input, op.width); err != nil {
		return nil, err
	}
	return input, nil
}

func (op *inputOp) Parameters() iter.Seq[float64] { return tensor.Values() }
func (op *inputOp) ParameterCount() int           { return 0 }
func (op *inputOp) Clone() Initialised            { return &inputOp{width: op.width} }

func (op *inputOp) WithOptimiser(factory optim.Factory) *Trainable {
	return newTrainable(op, factory)
}

func (op *inputOp) train(optim.Factory) node { return &inputNode{op: op} }

type inputNode struct {
	op *inputOp
}

func (n *inputNode) forward(input *tensor.Matrix) (pass, *tensor.Matrix, error) {
	out, err := n.op.Predict(input)
	if err != nil {
		return nil, nil, err
	}
	return &inputPass{width: n.op.width, rows: input.Dim(0)}, out, nil
}

func (n *inputNode) init(int)                 {}
func (n *inputNode) endEpoch()                {}
func (n *inputNode) initialised() Initialised { return n.op }

type inputPass struct {
	stateless
	width, rows int
}

func (p *inputPass) backward(grad *tensor.Matrix) (step, *tensor.Matrix, error) {
	if err := checkWidth("input backward", grad, p.width); err != nil {
		return nil, nil, err
	}
	if err := checkRows("input backward", grad, p.rows); err != nil {
		return nil, nil, err
	}
	return noStep{}, grad, nil
}
