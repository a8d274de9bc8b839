package nn

import (
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/strata/internal/tensor"
)

// Loss scores predictions against targets.
//
// It returns the scalar loss and its gradient with respect to the
// predictions. Both matrices must have the same shape.
type Loss interface {
	Loss(prediction, target *tensor.Matrix) (float64, *tensor.Matrix, error)
}

// MeanSquaredError is the squared error summed over all elements and
// averaged over rows.
//
//	loss     = Σ (p - t)² / rows
//	gradient = 2 (p - t) / rows
type MeanSquaredError struct{}

// Loss implements Loss.
func (MeanSquaredError) Loss(prediction, target *tensor.Matrix) (float64, *tensor.Matrix, error) {
	diff, err := tensor.ZipWith(prediction, target, func(p, t float64) float64 { return p - t })
	if err != nil {
		return 0, nil, err
	}

	rows := float64(prediction.Dim(0))
	if rows == 0 {
		return 0, diff, nil
	}
	errs := diff.Data()
	loss := floats.Dot(errs, errs) / rows
	return loss, tensor.Scale(diff, 2/rows), nil
}
