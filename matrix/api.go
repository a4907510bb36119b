// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for the reductions used by the classifier and
//     the information estimators (row/column marginals, totals, trace).
//   - Fast-path on *Dense via the flat buffer; fall back to At for other Matrix types.

package matrix

import "fmt"

// matrixErrorf tags err with the facade name.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// RowSums returns r where r[i] = sum_j m[i,j].
// Complexity: O(rc).
func RowSums(m Matrix) ([]float64, error) {
	d, err := ToDense(m)
	if err != nil {
		return nil, matrixErrorf("RowSums", err)
	}
	out := make([]float64, d.r)

	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			out[i] += d.data[i*d.c+j]
		}
	}

	return out, nil
}

// ColSums returns c where c[j] = sum_i m[i,j].
// Complexity: O(rc).
func ColSums(m Matrix) ([]float64, error) {
	d, err := ToDense(m)
	if err != nil {
		return nil, matrixErrorf("ColSums", err)
	}
	out := make([]float64, d.c)

	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			out[j] += d.data[i*d.c+j]
		}
	}

	return out, nil
}

// Flatten returns a row-major copy of all elements.
// Complexity: O(rc).
func Flatten(m Matrix) ([]float64, error) {
	d, err := ToDense(m)
	if err != nil {
		return nil, matrixErrorf("Flatten", err)
	}
	out := make([]float64, len(d.data))
	copy(out, d.data)

	return out, nil
}

// Trace returns sum_i m[i,i] of a square matrix.
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf("Trace", err)
	}

	var (
		i   int
		v   float64
		sum float64
		err error
	)
	for i = 0; i < m.Rows(); i++ {
		if v, err = m.At(i, i); err != nil {
			return 0, matrixErrorf("Trace", err)
		}
		sum += v
	}

	return sum, nil
}
