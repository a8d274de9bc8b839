package nn

import (
	"fmt"
	"iter"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/born-ml/strata/internal/optim"
	"github.com/born-ml/strata/internal/tensor"
)

// Dropout zeroes each input element with probability 1-keep during
// training. Predict scales the input by keep instead.
//
// When initialised from a seed the masks are reproducible: the seed moves
// forward by one after every training forward pass. Initialised from an
// element stream it draws masks from OS entropy.
type Dropout struct {
	keep float64
}

// NewDropout creates a dropout keeping each element with probability keep.
// It panics unless 0 < keep <= 1.
func NewDropout(keep float64) *Dropout {
	if keep <= 0 || keep > 1 {
		panic(fmt.Sprintf("nn: dropout keep probability must be in (0, 1], got %v", keep))
	}
	return &Dropout{keep: keep}
}

func (*Dropout) layer() {}

func (d *Dropout) withStream(_ *tensor.Stream, fanIn int) (Initialised, int, error) {
	return &dropoutOp{keep: d.keep, width: fanIn}, fanIn, nil
}

func (d *Dropout) withSeed(seed uint64, fanIn int) (Initialised, int) {
	return &dropoutOp{keep: d.keep, width: fanIn, seeded: true, seed: seed}, fanIn
}

type dropoutOp struct {
	keep   float64
	width  int
	seeded bool
	seed   uint64
}

func (op *dropoutOp) Predict(input *tensor.Matrix) (*tensor.Matrix, error) {
	if err := checkWidth("dropout", input, op.width); err != nil {
		return nil, err
	}
	return tensor.Scale(input, op.keep), nil
}

func (op *dropoutOp) Parameters() iter.Seq[float64] { return tensor.Values() }
func (op *dropoutOp) ParameterCount() int           { return 0 }

func (op *dropoutOp) Clone() Initialised {
	c := *op
	return &c
}

func (op *dropoutOp) WithOptimiser(factory optim.Factory) *Trainable {
	return newTrainable(op, factory)
}

func (op *dropoutOp) train(optim.Factory) node { return &dropoutNode{op: op} }

// source returns the generator for the next mask.
func (op *dropoutOp) source() rand.Source {
	if !op.seeded {
		return rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return rand.NewPCG(op.seed, op.seed)
}

type dropoutNode struct {
	op *dropoutOp
}

func (n *dropoutNode) forward(input *tensor.Matrix) (pass, *tensor.Matrix, error) {
	if err := checkWidth("dropout", input, n.op.width); err != nil {
		return nil, nil, err
	}

	bernoulli := distuv.Bernoulli{P: n.op.keep, Src: n.op.source()}
	mask := seededParameter(func(yield func(float64) bool) {
		for yield(bernoulli.Rand()) {
		}
	}, input.Dim(0), input.Dim(1))

	out, err := tensor.Mul(input, mask)
	if err != nil {
		return nil, nil, err
	}
	return &dropoutPass{op: n.op, mask: mask}, out, nil
}

func (n *dropoutNode) init(int)                 {}
func (n *dropoutNode) endEpoch()                {}
func (n *dropoutNode) initialised() Initialised { return n.op }

type dropoutPass struct {
	op   *dropoutOp
	mask *tensor.Matrix
}

// commit moves the seed forward so the next pass draws a different mask.
func (p *dropoutPass) commit() {
	if p.op.seeded {
		p.op.seed++
	}
}

func (p *dropoutPass) backward(grad *tensor.Matrix) (step, *tensor.Matrix, error) {
	inputGrad, err := tensor.Mul(grad, p.mask)
	if err != nil {
		return nil, nil, err
	}
	return noStep{}, inputGrad, nil
}
