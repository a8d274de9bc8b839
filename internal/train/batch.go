package train

import (
	"iter"
	"math/rand/v2"

	"github.com/born-ml/strata/internal/tensor"
)

// Permute returns a reproducible random ordering of 0..n-1.
func Permute(n int, seed uint64) []int {
	return rand.New(rand.NewPCG(seed, seed)).Perm(n)
}

// Batches yields consecutive (inputs, targets) slices of size rows. The
// last batch holds whatever rows remain. size <= 0 yields one batch with
// every row.
func Batches(inputs, targets *tensor.Matrix, size int) iter.Seq2[*tensor.Matrix, *tensor.Matrix] {
	return func(yield func(*tensor.Matrix, *tensor.Matrix) bool) {
		rows := inputs.Dim(0)
		if size <= 0 {
			size = rows
		}
		for from := 0; from < rows; from += size {
			to := min(from+size, rows)
			if !yield(tensor.SliceRows(inputs, from, to), tensor.SliceRows(targets, from, to)) {
				return
			}
		}
	}
}
