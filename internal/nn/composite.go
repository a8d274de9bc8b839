package nn

import (
	"fmt"
	"iter"

	"github.com/born-ml/strata/internal/optim"
	"github.com/born-ml/strata/internal/tensor"
)

// Composite runs lhs and then rhs. It has no parameters of its own.
//
// Widths are resolved at initialisation: rhs receives lhs's output width
// as its fan-in, so a chain can never disagree about shapes.
type Composite struct {
	lhs Operation
	rhs Operation
}

// Compose chains two layers.
func Compose(lhs, rhs Layer) *Composite {
	return &Composite{lhs: lhs, rhs: rhs}
}

// Chain appends l after c.
func (c *Composite) Chain(l Layer) *Composite {
	return &Composite{lhs: c, rhs: l}
}

func (*Composite) layer() {}

// withStream initialises lhs then rhs from the same stream.
func (c *Composite) withStream(s *tensor.Stream, fanIn int) (Initialised, int, error) {
	lhs, width, err := c.lhs.withStream(s, fanIn)
	if err != nil {
		return nil, 0, err
	}
	rhs, width, err := c.rhs.withStream(s, width)
	if err != nil {
		return nil, 0, err
	}
	return &compositeOp{lhs: lhs, rhs: rhs}, width, nil
}

// withSeed seeds lhs with seed and rhs with seed+1.
func (c *Composite) withSeed(seed uint64, fanIn int) (Initialised, int) {
	lhs, width := c.lhs.withSeed(seed, fanIn)
	rhs, width := c.rhs.withSeed(seed+1, width)
	return &compositeOp{lhs: lhs, rhs: rhs}, width
}

// Network is a chain of layers headed by an Input. Only networks can be
// initialised directly, since the Input supplies the first fan-in.
type Network struct {
	root *Composite
}

// Chain appends l to the network.
func (n *Network) Chain(l Layer) *Network {
	return &Network{root: &Composite{lhs: n.root, rhs: l}}
}

// WithIter initialises every parameter, left to right, from elems.
//
// If elems runs out the error wraps a *tensor.ShapeMismatchError and no
// operation is returned. Surplus elements are ignored.
func (n *Network) WithIter(elems iter.Seq[float64]) (Initialised, error) {
	s := tensor.NewStream(elems)
	defer s.Stop()

	op, _, err := n.root.withStream(s, 0)
	if err != nil {
		return nil, fmt.Errorf("initialise network: %w", err)
	}
	return op, nil
}

// WithSeed initialises every parameter with Xavier-uniform values derived
// from seed.
func (n *Network) WithSeed(seed uint64) Initialised {
	op, _ := n.root.withSeed(seed, 0)
	return op
}

type compositeOp struct {
	lhs Initialised
	rhs Initialised
}

func (op *compositeOp) Predict(input *tensor.Matrix) (*tensor.Matrix, error) {
	hidden, err := op.lhs.Predict(input)
	if err != nil {
		return nil, err
	}
	return op.rhs.Predict(hidden)
}

func (op *compositeOp) Parameters() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for v := range op.lhs.Parameters() {
			if !yield(v) {
				return
			}
		}
		for v := range op.rhs.Parameters() {
			if !yield(v) {
				return
			}
		}
	}
}

func (op *compositeOp) ParameterCount() int {
	return op.lhs.ParameterCount() + op.rhs.ParameterCount()
}

func (op *compositeOp) Clone() Initialised {
	return &compositeOp{lhs: op.lhs.Clone(), rhs: op.rhs.Clone()}
}

func (op *compositeOp) WithOptimiser(factory optim.Factory) *Trainable {
	return newTrainable(op, factory)
}

func (op *compositeOp) train(factory optim.Factory) node {
	return &compositeNode{lhs: op.lhs.train(factory), rhs: op.rhs.train(factory)}
}

type compositeNode struct {
	lhs node
	rhs node
}

func (n *compositeNode) forward(input *tensor.Matrix) (pass, *tensor.Matrix, error) {
	lhs, hidden, err := n.lhs.forward(input)
	if err != nil {
		return nil, nil, err
	}
	rhs, out, err := n.rhs.forward(hidden)
	if err != nil {
		return nil, nil, err
	}
	return &compositePass{lhs: lhs, rhs: rhs}, out, nil
}

func (n *compositeNode) init(epochs int) {
	n.lhs.init(epochs)
	n.rhs.init(epochs)
}

func (n *compositeNode) endEpoch() {
	n.lhs.endEpoch()
	n.rhs.endEpoch()
}

func (n *compositeNode) initialised() Initialised {
	return &compositeOp{lhs: n.lhs.initialised(), rhs: n.rhs.initialised()}
}

type compositePass struct {
	lhs pass
	rhs pass
}

// backward runs rhs then lhs. Neither child changes state, so a failure
// in lhs leaves the whole pass retryable.
func (p *compositePass) backward(grad *tensor.Matrix) (step, *tensor.Matrix, error) {
	rhs, hidden, err := p.rhs.backward(grad)
	if err != nil {
		return nil, nil, err
	}
	lhs, inputGrad, err := p.lhs.backward(hidden)
	if err != nil {
		return nil, nil, err
	}
	return compositeStep{lhs: lhs, rhs: rhs}, inputGrad, nil
}

func (p *compositePass) commit() {
	p.lhs.commit()
	p.rhs.commit()
}

type compositeStep struct {
	lhs step
	rhs step
}

func (s compositeStep) apply() {
	s.lhs.apply()
	s.rhs.apply()
}
