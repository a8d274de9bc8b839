package tensor

import (
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// dense views m as a gonum matrix without copying.
// gonum rejects zero-length dimensions, so callers handle empty matrices first.
func dense(m *Matrix) *mat.Dense {
	return mat.NewDense(m.shape[0], m.shape[1], m.data)
}

func empty(m *Matrix) bool {
	return m.shape[0] == 0 || m.shape[1] == 0
}

// MatMul returns a·b. The column count of a must equal the row count of b.
func MatMul(a, b *Matrix) (*Matrix, error) {
	if a.shape[1] != b.shape[0] {
		return nil, &ShapeMismatchError{Op: "matmul", Expected: a.shape[1], Actual: b.shape[0], Shape: b.Shape()}
	}

	rows, cols := a.shape[0], b.shape[1]
	out := matrix(rows, cols, make([]float64, rows*cols))
	if empty(a) || empty(b) {
		return out, nil
	}

	dense(out).Mul(dense(a), dense(b))
	return out, nil
}

// Transpose returns mᵗ.
func Transpose(m *Matrix) *Matrix {
	rows, cols := m.shape[0], m.shape[1]
	out := matrix(cols, rows, make([]float64, rows*cols))
	if empty(m) {
		return out
	}
	dense(out).Copy(dense(m).T())
	return out
}

// Map applies f to every element.
func Map[R Rank](t *Tensor[R], f func(float64) float64) *Tensor[R] {
	data := make([]float64, len(t.data))
	for i, v := range t.data {
		data[i] = f(v)
	}
	return &Tensor[R]{shape: t.shape.Clone(), data: data}
}

// ZipWith combines a and b element-wise. Both must have the same shape.
func ZipWith[R Rank](a, b *Tensor[R], f func(x, y float64) float64) (*Tensor[R], error) {
	if err := CheckSameShape("zip", a, b); err != nil {
		return nil, err
	}
	data := make([]float64, len(a.data))
	for i := range a.data {
		data[i] = f(a.data[i], b.data[i])
	}
	return &Tensor[R]{shape: a.shape.Clone(), data: data}, nil
}

// Mul multiplies a and b element-wise.
func Mul[R Rank](a, b *Tensor[R]) (*Tensor[R], error) {
	if err := CheckSameShape("mul", a, b); err != nil {
		return nil, err
	}
	data := slices.Clone(a.data)
	floats.Mul(data, b.data)
	return &Tensor[R]{shape: a.shape.Clone(), data: data}, nil
}

// Scale multiplies every element by s.
func Scale[R Rank](t *Tensor[R], s float64) *Tensor[R] {
	data := slices.Clone(t.data)
	floats.Scale(s, data)
	return &Tensor[R]{shape: t.shape.Clone(), data: data}
}

// AddRow adds the (1, cols) row to every row of m.
func AddRow(m, row *Matrix) (*Matrix, error) {
	if row.shape[0] != 1 {
		return nil, &ShapeMismatchError{Op: "add row", Expected: 1, Actual: row.shape[0], Shape: row.Shape()}
	}
	cols := m.shape[1]
	if row.shape[1] != cols {
		return nil, &ShapeMismatchError{Op: "add row", Expected: cols, Actual: row.shape[1], Shape: row.Shape()}
	}

	data := slices.Clone(m.data)
	for r := range m.shape[0] {
		floats.Add(data[r*cols:(r+1)*cols], row.data)
	}
	return matrix(m.shape[0], cols, data), nil
}

// ColumnSums returns the (1, cols) row of per-column sums of m.
func ColumnSums(m *Matrix) *Matrix {
	cols := m.shape[1]
	sums := make([]float64, cols)
	for r := range m.shape[0] {
		floats.Add(sums, m.data[r*cols:(r+1)*cols])
	}
	return matrix(1, cols, sums)
}

// Row returns a copy of row r.
func Row(m *Matrix, r int) []float64 {
	cols := m.shape[1]
	return slices.Clone(m.data[r*cols : (r+1)*cols])
}

// SliceRows returns a copy of rows [from, to).
func SliceRows(m *Matrix, from, to int) *Matrix {
	cols := m.shape[1]
	return matrix(to-from, cols, slices.Clone(m.data[from*cols:to*cols]))
}

// SelectRows gathers the rows listed in idx, in that order.
func SelectRows(m *Matrix, idx []int) *Matrix {
	cols := m.shape[1]
	data := make([]float64, 0, len(idx)*cols)
	for _, r := range idx {
		data = append(data, m.data[r*cols:(r+1)*cols]...)
	}
	return matrix(len(idx), cols, data)
}

// ArgmaxRows returns the column index of the largest element of each row.
// Ties resolve to the lowest index.
func ArgmaxRows(m *Matrix) []int {
	rows, cols := m.shape[0], m.shape[1]
	out := make([]int, rows)
	if cols == 0 {
		return out
	}
	for r := range rows {
		out[r] = floats.MaxIdx(m.data[r*cols : (r+1)*cols])
	}
	return out
}

// Sum returns the sum of all elements.
func Sum[R Rank](t *Tensor[R]) float64 {
	return floats.Sum(t.data)
}
