package nn

import (
	"iter"

	"github.com/born-ml/strata/internal/optim"
	"github.com/born-ml/strata/internal/tensor"
)

// BiasAdd adds a learned (1, width) row to every input row. The width is
// the output width of the preceding operation.
//
// hint stands in for the fan-in of the Xavier bound when the bias is
// initialised from a seed: the bound is sqrt(6/(hint+width)).
type BiasAdd struct {
	hint int
}

// NewBiasAdd creates a bias addition. It panics if hint is not positive.
func NewBiasAdd(hint int) *BiasAdd {
	mustPositive("bias add", hint)
	return &BiasAdd{hint: hint}
}

func (*BiasAdd) layer() {}

func (b *BiasAdd) withStream(s *tensor.Stream, fanIn int) (Initialised, int, error) {
	bias, err := parameter("bias add", s, 1, fanIn)
	if err != nil {
		return nil, 0, err
	}
	return &biasAddOp{bias: bias}, fanIn, nil
}

func (b *BiasAdd) withSeed(seed uint64, fanIn int) (Initialised, int) {
	bias := seededParameter(xavier(seed, b.hint, fanIn), 1, fanIn)
	return &biasAddOp{bias: bias}, fanIn
}

type biasAddOp struct {
	bias *tensor.Matrix
}

func (op *biasAddOp) Predict(input *tensor.Matrix) (*tensor.Matrix, error) {
	if err := checkWidth("bias add", input, op.bias.Dim(1)); err != nil {
		return nil, err
	}
	return tensor.AddRow(input, op.bias)
}

func (op *biasAddOp) Parameters() iter.Seq[float64] { return op.bias.All() }
func (op *biasAddOp) ParameterCount() int           { return op.bias.Len() }
func (op *biasAddOp) Clone() Initialised            { return &biasAddOp{bias: op.bias.Clone()} }

func (op *biasAddOp) WithOptimiser(factory optim.Factory) *Trainable {
	return newTrainable(op, factory)
}

func (op *biasAddOp) train(factory optim.Factory) node {
	return &biasAddNode{op: op, opt: factory.Instantiate()}
}

type biasAddNode struct {
	op  *biasAddOp
	opt optim.Optimizer
}

func (n *biasAddNode) forward(input *tensor.Matrix) (pass, *tensor.Matrix, error) {
	out, err := n.op.Predict(input)
	if err != nil {
		return nil, nil, err
	}
	return &biasAddPass{node: n, rows: input.Dim(0)}, out, nil
}

func (n *biasAddNode) init(epochs int)          { n.opt.Init(epochs) }
func (n *biasAddNode) endEpoch()                { n.opt.EndEpoch() }
func (n *biasAddNode) initialised() Initialised { return n.op }

type biasAddPass struct {
	stateless
	node *biasAddNode
	rows int
}

// backward passes grad through unchanged; the bias gradient is its column sums.
func (p *biasAddPass) backward(grad *tensor.Matrix) (step, *tensor.Matrix, error) {
	bias := p.node.op.bias
	if err := checkWidth("bias add backward", grad, bias.Dim(1)); err != nil {
		return nil, nil, err
	}
	if err := checkRows("bias add backward", grad, p.rows); err != nil {
		return nil, nil, err
	}
	return paramStep{param: bias, grad: tensor.ColumnSums(grad), opt: p.node.opt}, grad, nil
}
