package nn

import "github.com/born-ml/strata/internal/tensor"

// Trainable is an initialised operation whose parameters each own an
// optimizer.
//
// A Trainable hands out at most one Pending or Ready handle at a time.
// While a handle is outstanding Forward, Snapshot and IntoInitialised
// fail with ErrBorrowed.
type Trainable struct {
	root   node
	leased bool
	closed bool
}

func (t *Trainable) check() error {
	if t.closed {
		return ErrConsumed
	}
	if t.leased {
		return ErrBorrowed
	}
	return nil
}

// Forward runs a training forward pass and returns the handle needed for
// the backward pass together with the output.
//
// On error nothing is leased and no state has changed.
func (t *Trainable) Forward(input *tensor.Matrix) (*Pending, *tensor.Matrix, error) {
	if err := t.check(); err != nil {
		return nil, nil, err
	}
	p, out, err := t.root.forward(input)
	if err != nil {
		return nil, nil, err
	}
	p.commit()
	t.leased = true
	return &Pending{owner: t, pass: p}, out, nil
}

// Init prepares every optimizer for a run of the given number of epochs.
func (t *Trainable) Init(epochs int) {
	t.root.init(epochs)
}

// EndEpoch advances every optimizer by one epoch.
func (t *Trainable) EndEpoch() {
	t.root.endEpoch()
}

// Snapshot returns a deep copy of the current parameters as an
// Initialised operation. The Trainable stays usable.
func (t *Trainable) Snapshot() (Initialised, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	return t.root.initialised().Clone(), nil
}

// IntoInitialised drops the optimizers and returns the trained operation.
// The Trainable cannot be used afterwards.
func (t *Trainable) IntoInitialised() (Initialised, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	t.closed = true
	return t.root.initialised(), nil
}

func (t *Trainable) unlease() {
	t.leased = false
}

// Pending is the result of a forward pass, waiting for the output gradient.
type Pending struct {
	owner *Trainable
	pass  pass
	used  bool
}

// Backward propagates the output gradient and returns the handle that
// applies the parameter update together with the input gradient.
//
// A failed Backward leaves the handle unused so it can be retried.
func (p *Pending) Backward(grad *tensor.Matrix) (*Ready, *tensor.Matrix, error) {
	if p.used {
		return nil, nil, ErrConsumed
	}
	s, inputGrad, err := p.pass.backward(grad)
	if err != nil {
		return nil, nil, err
	}
	p.used = true
	return &Ready{owner: p.owner, step: s}, inputGrad, nil
}

// Release abandons the pass without a backward step and frees the
// Trainable. It is a no-op on a used handle.
func (p *Pending) Release() {
	if p.used {
		return
	}
	p.used = true
	p.owner.unlease()
}

// Ready holds computed parameter gradients.
type Ready struct {
	owner *Trainable
	step  step
	used  bool
}

// Optimise applies the update to every parameter and frees the Trainable.
func (r *Ready) Optimise() error {
	if r.used {
		return ErrConsumed
	}
	r.used = true
	r.step.apply()
	r.owner.unlease()
	return nil
}

// Discard drops the gradients without touching any parameter and frees
// the Trainable. It is a no-op on a used handle.
func (r *Ready) Discard() {
	if r.used {
		return
	}
	r.used = true
	r.owner.unlease()
}
