package nn

import (
	"iter"

	"github.com/born-ml/strata/internal/optim"
	"github.com/born-ml/strata/internal/tensor"
)

// WeightMultiply multiplies its input by a (fanIn, fanOut) weight matrix.
// fanIn is taken from the preceding operation when the network is
// initialised.
type WeightMultiply struct {
	fanOut int
}

// NewWeightMultiply creates a weight multiplication producing fanOut
// features. It panics if fanOut is not positive.
func NewWeightMultiply(fanOut int) *WeightMultiply {
	mustPositive("weight multiply", fanOut)
	return &WeightMultiply{fanOut: fanOut}
}

func (*WeightMultiply) layer() {}

func (w *WeightMultiply) withStream(s *tensor.Stream, fanIn int) (Initialised, int, error) {
	weights, err := parameter("weight multiply", s, fanIn, w.fanOut)
	if err != nil {
		return nil, 0, err
	}
	return &weightMultiplyOp{weights: weights}, w.fanOut, nil
}

func (w *WeightMultiply) withSeed(seed uint64, fanIn int) (Initialised, int) {
	weights := seededParameter(xavier(seed, fanIn, w.fanOut), fanIn, w.fanOut)
	return &weightMultiplyOp{weights: weights}, w.fanOut
}

type weightMultiplyOp struct {
	weights *tensor.Matrix
}

func (op *weightMultiplyOp) Predict(input *tensor.Matrix) (*tensor.Matrix, error) {
	if err := checkWidth("weight multiply", input, op.weights.Dim(0)); err != nil {
		return nil, err
	}
	return tensor.MatMul(input, op.weights)
}

func (op *weightMultiplyOp) Parameters() iter.Seq[float64] { return op.weights.All() }
func (op *weightMultiplyOp) ParameterCount() int           { return op.weights.Len() }

func (op *weightMultiplyOp) Clone() Initialised {
	return &weightMultiplyOp{weights: op.weights.Clone()}
}

func (op *weightMultiplyOp) WithOptimiser(factory optim.Factory) *Trainable {
	return newTrainable(op, factory)
}

func (op *weightMultiplyOp) train(factory optim.Factory) node {
	return &weightMultiplyNode{op: op, opt: factory.Instantiate()}
}

type weightMultiplyNode struct {
	op  *weightMultiplyOp
	opt optim.Optimizer
}

func (n *weightMultiplyNode) forward(input *tensor.Matrix) (pass, *tensor.Matrix, error) {
	out, err := n.op.Predict(input)
	if err != nil {
		return nil, nil, err
	}
	return &weightMultiplyPass{node: n, input: input}, out, nil
}

func (n *weightMultiplyNode) init(epochs int)          { n.opt.Init(epochs) }
func (n *weightMultiplyNode) endEpoch()                { n.opt.EndEpoch() }
func (n *weightMultiplyNode) initialised() Initialised { return n.op }

type weightMultiplyPass struct {
	stateless
	node  *weightMultiplyNode
	input *tensor.Matrix
}

// backward computes grad·Wᵗ for the input and inputᵗ·grad for the weights.
func (p *weightMultiplyPass) backward(grad *tensor.Matrix) (step, *tensor.Matrix, error) {
	weights := p.node.op.weights
	if err := checkWidth("weight multiply backward", grad, weights.Dim(1)); err != nil {
		return nil, nil, err
	}
	if err := checkRows("weight multiply backward", grad, p.input.Dim(0)); err != nil {
		return nil, nil, err
	}

	inputGrad, err := tensor.MatMul(grad, tensor.Transpose(weights))
	if err != nil {
		return nil, nil, err
	}
	paramGrad, err := tensor.MatMul(tensor.Transpose(p.input), grad)
	if err != nil {
		return nil, nil, err
	}
	return paramStep{param: weights, grad: paramGrad, opt: p.node.opt}, inputGrad, nil
}
