// Package nn implements the operations of a feed-forward network and the
// lifecycle every operation goes through.
//
// An operation starts uninitialised (configuration only), becomes
// Initialised once its parameters exist, and Trainable once every
// parameter has its own optimizer. Training then alternates between three
// handles:
//
//	trainable.Forward(x)  -> *Pending, output
//	pending.Backward(g)   -> *Ready, input gradient
//	ready.Optimise()      -> parameters updated, trainable usable again
//
// Only one handle can be outstanding per Trainable and each handle can be
// used once. Misuse is reported with ErrBorrowed and ErrConsumed.
//
// Networks always start with an Input, which fixes the incoming width:
//
//	network := nn.NewInput(784).
//	    Chain(nn.NewDense(128, nn.NewReLU())).
//	    Chain(nn.NewDense(10, nn.NewLinear()))
//	initialised := network.WithSeed(42)
package nn

import (
	"iter"

	"github.com/born-ml/strata/internal/optim"
	"github.com/born-ml/strata/internal/tensor"
)

// Operation is an uninitialised operation.
//
// Its parameters are created either from a shared element stream or from
// a seed. fanIn is the output width of the preceding operation; the
// returned int is this operation's own output width.
type Operation interface {
	withStream(s *tensor.Stream, fanIn int) (Initialised, int, error)
	withSeed(seed uint64, fanIn int) (Initialised, int)
}

// Layer is an Operation that may appear to the right of a chain.
// Input is not a Layer.
type Layer interface {
	Operation
	layer()
}

// Initialised is an operation with concrete parameters.
type Initialised interface {
	// Predict runs inference. It never mutates the operation.
	Predict(input *tensor.Matrix) (*tensor.Matrix, error)

	// Parameters yields every parameter element in the order WithIter
	// consumes them.
	Parameters() iter.Seq[float64]

	// ParameterCount returns the number of elements Parameters yields.
	ParameterCount() int

	// Clone returns a deep copy that shares no parameter storage.
	Clone() Initialised

	// WithOptimiser attaches a fresh optimizer from factory to every
	// parameter tensor. The returned Trainable takes ownership of the
	// parameters; the receiver must not be used afterwards.
	WithOptimiser(factory optim.Factory) *Trainable

	train(factory optim.Factory) node
}

// node is the trainable form of a single operation.
type node interface {
	forward(input *tensor.Matrix) (pass, *tensor.Matrix, error)
	init(epochs int)
	endEpoch()
	// initialised returns the operation sharing the trained parameters.
	initialised() Initialised
}

// pass holds what a backward step needs from one forward call.
//
// forward and backward must not change any state, so a failed call can be
// retried. Side effects of a successful forward call are applied by commit.
type pass interface {
	backward(grad *tensor.Matrix) (step, *tensor.Matrix, error)
	commit()
}

type stateless struct{}

func (stateless) commit() {}

// step applies a computed parameter update.
type step interface {
	apply()
}

type noStep struct{}

func (noStep) apply() {}

// paramStep feeds a parameter gradient to its optimizer.
type paramStep struct {
	param *tensor.Matrix
	grad  *tensor.Matrix
	opt   optim.Optimizer
}

func (s paramStep) apply() {
	s.opt.Optimise(s.param, s.grad)
}

func newTrainable(init Initialised, factory optim.Factory) *Trainable {
	return &Trainable{root: init.train(factory)}
}
