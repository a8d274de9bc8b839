// Package train drives the epoch and batch loop of a network.
//
// Train never mutates the network it is given: it trains a clone and
// returns either the final network or, when held-out loss gets worse, the
// best snapshot taken so far.
package train

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/born-ml/strata/internal/nn"
	"github.com/born-ml/strata/internal/optim"
	"github.com/born-ml/strata/internal/tensor"
)

// ErrInvalidConfig is returned for negative config values.
var ErrInvalidConfig = errors.New("invalid training config")

// Config holds configuration for Train.
type Config struct {
	Epochs    int          // Number of passes over the training data
	EvalEvery int          // Evaluate held-out loss every N epochs (0: never)
	BatchSize int          // Rows per batch (default: all rows)
	Seed      uint64       // Permutation seed; epoch e uses Seed+e
	Logger    *slog.Logger // Progress logger (default: discard)
}

// Validate checks the config for negative values.
func (c Config) Validate() error {
	switch {
	case c.Epochs < 0:
		return fmt.Errorf("%w: epochs %d", ErrInvalidConfig, c.Epochs)
	case c.EvalEvery < 0:
		return fmt.Errorf("%w: eval every %d", ErrInvalidConfig, c.EvalEvery)
	case c.BatchSize < 0:
		return fmt.Errorf("%w: batch size %d", ErrInvalidConfig, c.BatchSize)
	}
	return nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// Train fits a copy of network to the training split.
//
// Each epoch permutes the training rows, then runs forward, loss,
// backward and optimise per batch. Every EvalEvery epochs the held-out
// loss is measured on a snapshot; if it is worse than the best loss so
// far training stops and the best snapshot is returned. An empty test
// split disables evaluation.
func Train(
	network nn.Initialised,
	factory optim.Factory,
	loss nn.Loss,
	trainInputs, trainTargets, testInputs, testTargets *tensor.Matrix,
	cfg Config,
) (nn.Initialised, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := checkSplit("train", trainInputs, trainTargets); err != nil {
		return nil, err
	}
	if err := checkSplit("test", testInputs, testTargets); err != nil {
		return nil, err
	}

	log := cfg.logger()
	trainable := network.Clone().WithOptimiser(factory)
	trainable.Init(cfg.Epochs)

	var best nn.Initialised
	bestLoss := math.Inf(1)
	evaluate := cfg.EvalEvery > 0 && testInputs.Dim(0) > 0

	for epoch := range cfg.Epochs {
		order := Permute(trainInputs.Dim(0), cfg.Seed+uint64(epoch))
		inputs := tensor.SelectRows(trainInputs, order)
		targets := tensor.SelectRows(trainTargets, order)

		var total float64
		batches := 0
		for x, y := range Batches(inputs, targets, cfg.BatchSize) {
			l, err := Step(trainable, loss, x, y)
			if err != nil {
				return nil, fmt.Errorf("epoch %d batch %d: %w", epoch, batches, err)
			}
			log.Debug("batch", "epoch", epoch, "batch", batches, "rows", x.Dim(0), "loss", l)
			total += l
			batches++
		}
		log.Info("epoch complete", "epoch", epoch, "batches", batches, "loss", total)

		if evaluate && (epoch+1)%cfg.EvalEvery == 0 {
			snapshot, err := trainable.Snapshot()
			if err != nil {
				return nil, err
			}
			evalLoss, err := Evaluate(snapshot, loss, testInputs, testTargets)
			if err != nil {
				return nil, fmt.Errorf("evaluate epoch %d: %w", epoch, err)
			}
			if evalLoss > bestLoss {
				log.Info("early stop", "epoch", epoch, "eval_loss", evalLoss, "best_loss", bestLoss)
				return best, nil
			}
			log.Info("evaluation", "epoch", epoch, "eval_loss", evalLoss)
			best, bestLoss = snapshot, evalLoss
		}

		if epoch < cfg.Epochs-1 {
			trainable.EndEpoch()
		}
	}

	return trainable.IntoInitialised()
}

// Step runs forward, loss, backward and optimise on one batch and returns
// the batch loss. On error the trainable is left unborrowed and unchanged.
func Step(trainable *nn.Trainable, loss nn.Loss, inputs, targets *tensor.Matrix) (float64, error) {
	pending, prediction, err := trainable.Forward(inputs)
	if err != nil {
		return 0, err
	}
	l, grad, err := loss.Loss(prediction, targets)
	if err != nil {
		pending.Release()
		return 0, err
	}
	ready, _, err := pending.Backward(grad)
	if err != nil {
		pending.Release()
		return 0, err
	}
	return l, ready.Optimise()
}

// Evaluate returns the loss of network's predictions on inputs.
func Evaluate(network nn.Initialised, loss nn.Loss, inputs, targets *tensor.Matrix) (float64, error) {
	prediction, err := network.Predict(inputs)
	if err != nil {
		return 0, err
	}
	l, _, err := loss.Loss(prediction, targets)
	return l, err
}

// Accuracy returns the fraction of rows whose largest prediction sits in
// the same column as the largest target.
func Accuracy(predictions, targets *tensor.Matrix) (float64, error) {
	if err := tensor.CheckSameShape("accuracy", predictions, targets); err != nil {
		return 0, err
	}
	rows := predictions.Dim(0)
	if rows == 0 {
		return 0, nil
	}

	want := tensor.ArgmaxRows(targets)
	correct := 0
	for i, got := range tensor.ArgmaxRows(predictions) {
		if got == want[i] {
			correct++
		}
	}
	return float64(correct) / float64(rows), nil
}

func checkSplit(name string, inputs, targets *tensor.Matrix) error {
	if inputs.Dim(0) != targets.Dim(0) {
		return fmt.Errorf("%s split: %w", name, &tensor.ShapeMismatchError{
			Op:       "rows",
			Expected: inputs.Dim(0),
			Actual:   targets.Dim(0),
			Shape:    targets.Shape(),
		})
	}
	return nil
}
