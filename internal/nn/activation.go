package nn

import (
	"iter"
	"math"

	"github.com/born-ml/strata/internal/optim"
	"github.com/born-ml/strata/internal/tensor"
)

// Activation is a parameterless element-wise function.
//
// The derivative is expressed in terms of the function's output, which is
// what the backward pass caches.
type Activation struct {
	name string
	f    func(x float64) float64
	df   func(y float64) float64
}

// NewLinear returns the identity activation.
func NewLinear() *Activation {
	return &Activation{
		name: "linear",
		f:    func(x float64) float64 { return x },
		df:   func(float64) float64 { return 1 },
	}
}

// NewReLU returns max(0, x).
func NewReLU() *Activation {
	return NewLeakyReLU(0)
}

// NewLeakyReLU returns x for positive x and factor*x otherwise.
func NewLeakyReLU(factor float64) *Activation {
	return &Activation{
		name: "relu",
		f: func(x float64) float64 {
			if x > 0 {
				return x
			}
			return factor * x
		},
		df: func(y float64) float64 {
			if y > 0 {
				return 1
			}
			return factor
		},
	}
}

// NewSigmoid returns 1 / (1 + e^-x).
func NewSigmoid() *Activation {
	return &Activation{
		name: "sigmoid",
		f:    func(x float64) float64 { return 1 / (1 + math.Exp(-x)) },
		df:   func(y float64) float64 { return y * (1 - y) },
	}
}

// NewTanh returns the hyperbolic tangent.
func NewTanh() *Activation {
	return &Activation{
		name: "tanh",
		f:    math.Tanh,
		df:   func(y float64) float64 { return 1 - y*y },
	}
}

// Name returns the activation name.
func (a *Activation) Name() string { return a.name }

func (*Activation) layer() {}

func (a *Activation) withStream(_ *tensor.Stream, fanIn int) (Initialised, int, error) {
	return &activationOp{act: a, width: fanIn}, fanIn, nil
}

func (a *Activation) withSeed(_ uint64, fanIn int) (Initialised, int) {
	return &activationOp{act: a, width: fanIn}, fanIn
}

type activationOp struct {
	act   *Activation
	width int
}

func (op *activationOp) Predict(input *tensor.Matrix) (*tensor.Matrix, error) {
	if err := checkWidth(op.act.name, input, op.width); err != nil {
		return nil, err
	}
	return tensor.Map(input, op.act.f), nil
}

func (op *activationOp) Parameters() iter.Seq[float64] { return tensor.Values() }
func (op *activationOp) ParameterCount() int           { return 0 }
func (op *activationOp) Clone() Initialised            { return &activationOp{act: op.act, width: op.width} }

func (op *activationOp) WithOptimiser(factory optim.Factory) *Trainable {
	return newTrainable(op, factory)
}

func (op *activationOp) train(optim.Factory) node { return &activationNode{op: op} }

type activationNode struct {
	op *activationOp
}

func (n *activationNode) forward(input *tensor.Matrix) (pass, *tensor.Matrix, error) {
	out, err := n.op.Predict(input)
	if err != nil {
		return nil, nil, err
	}
	return &activationPass{act: n.op.act, output: out}, out, nil
}

func (n *activationNode) init(int)                 {}
func (n *activationNode) endEpoch()                {}
func (n *activationNode) initialised() Initialised { return n.op }

type activationPass struct {
	stateless
	act    *Activation
	output *tensor.Matrix
}

func (p *activationPass) backward(grad *tensor.Matrix) (step, *tensor.Matrix, error) {
	inputGrad, err := tensor.ZipWith(grad, p.output, func(g, y float64) float64 {
		return g * p.act.df(y)
	})
	if err != nil {
		return nil, nil, err
	}
	return noStep{}, inputGrad, nil
}
