package optim

import "math"

// Schedule supplies the learning rate for the current epoch.
//
// Init resets the schedule for a run of the given number of epochs and
// EndEpoch moves it one epoch forward. Clone returns an independent copy
// so that every optimizer can advance its own schedule.
type Schedule interface {
	Rate() float64
	Init(epochs int)
	EndEpoch()
	Clone() Schedule
}

// Fixed is a constant learning rate.
type Fixed float64

// Rate returns the constant rate.
func (f Fixed) Rate() float64 { return float64(f) }

// Init does nothing.
func (Fixed) Init(int) {}

// EndEpoch does nothing.
func (Fixed) EndEpoch() {}

// Clone returns f.
func (f Fixed) Clone() Schedule { return f }

// LinearDecay moves the rate from Start to End in equal steps, reaching End
// on the last epoch.
type LinearDecay struct {
	start, end float64
	rate, step float64
}

// NewLinearDecay creates a linear schedule from start to end.
func NewLinearDecay(start, end float64) *LinearDecay {
	return &LinearDecay{start: start, end: end, rate: start}
}

// Rate returns the current rate.
func (l *LinearDecay) Rate() float64 { return l.rate }

// Init resets the rate to the start value and computes the per-epoch step.
// With a single epoch the rate stays at the start value.
func (l *LinearDecay) Init(epochs int) {
	l.rate = l.start
	l.step = 0
	if epochs > 1 {
		l.step = (l.start - l.end) / float64(epochs-1)
	}
}

// EndEpoch subtracts one step from the rate.
func (l *LinearDecay) EndEpoch() { l.rate -= l.step }

// Clone returns an independent copy.
func (l *LinearDecay) Clone() Schedule {
	c := *l
	return &c
}

// ExponentialDecay multiplies the rate by a constant factor each epoch,
// reaching End on the last epoch.
type ExponentialDecay struct {
	start, end   float64
	rate, factor float64
}

// NewExponentialDecay creates an exponential schedule from start to end.
func NewExponentialDecay(start, end float64) *ExponentialDecay {
	return &ExponentialDecay{start: start, end: end, rate: start, factor: 1}
}

// Rate returns the current rate.
func (e *ExponentialDecay) Rate() float64 { return e.rate }

// Init resets the rate to the start value and computes the per-epoch factor
// (end/start)^(1/(epochs-1)). With a single epoch the rate stays at the
// start value.
func (e *ExponentialDecay) Init(epochs int) {
	e.rate = e.start
	e.factor = 1
	if epochs > 1 {
		e.factor = math.Pow(e.end/e.start, 1/float64(epochs-1))
	}
}

// EndEpoch multiplies the rate by the decay factor.
func (e *ExponentialDecay) EndEpoch() { e.rate *= e.factor }

// Clone returns an independent copy.
func (e *ExponentialDecay) Clone() Schedule {
	c := *e
	return &c
}
