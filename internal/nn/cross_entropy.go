package nn

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/strata/internal/tensor"
)

// epsilon clamps softmax probabilities away from 0 and 1.
const epsilon = 0x1p-52

// SoftmaxCrossEntropy applies a row-wise softmax to raw predictions and
// scores it with binary cross-entropy per class:
//
//	loss     = Σ -t·ln(p) - (1-t)·ln(1-p)
//	gradient = p - t
//
// A single-column problem is treated as two classes [x, 1-x]; the
// gradient is reported for the first class only.
type SoftmaxCrossEntropy struct{}

// Loss implements Loss.
func (SoftmaxCrossEntropy) Loss(prediction, target *tensor.Matrix) (float64, *tensor.Matrix, error) {
	if err := tensor.CheckSameShape("softmax cross entropy", prediction, target); err != nil {
		return 0, nil, err
	}

	rows, cols := prediction.Dim(0), prediction.Dim(1)
	pred, tgt := prediction.Values(), target.Values()
	single := cols == 1
	if single {
		pred, tgt, cols = expand(pred), expand(tgt), 2
	}

	var loss float64
	grad := make([]float64, len(pred))
	for r := range rows {
		row := pred[r*cols : (r+1)*cols]
		softmax(row)
		for c, p := range row {
			i := r*cols + c
			p = math.Min(math.Max(p, epsilon), 1-epsilon)
			t := tgt[i]
			loss += -t*math.Log(p) - (1-t)*math.Log(1-p)
			grad[i] = p - t
		}
	}

	if single {
		first := make([]float64, rows)
		for r := range rows {
			first[r] = grad[r*2]
		}
		grad = first
	}

	g, err := tensor.FromSlice[tensor.Two](prediction.Shape(), grad)
	if err != nil {
		return 0, nil, err
	}
	return loss, g, nil
}

// softmax normalises row in place.
func softmax(row []float64) {
	if len(row) == 0 {
		return
	}
	shift := floats.Max(row)
	for i, v := range row {
		row[i] = math.Exp(v - shift)
	}
	floats.Scale(1/floats.Sum(row), row)
}

// expand turns each value x into the pair [x, 1-x].
func expand(vals []float64) []float64 {
	out := make([]float64, 0, 2*len(vals))
	for _, v := range vals {
		out = append(out, v, 1-v)
	}
	return out
}
