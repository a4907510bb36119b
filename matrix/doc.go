// SPDX-License-Identifier: MIT

// Package matrix provides the dense containers shared by the metric-space packages.
//
// The package provides:
//
//   - Dense: a row-major 2-D float64 matrix with bounds-checked At/Set, used for
//     precomputed distance matrices, confusion matrices and joint count tables.
//   - Tensor: a row-major 3-D array whose [i,j,:] fibers are contiguous; spkd
//     returns its N×N×M pairwise distance results in this form.
//   - Validators: square, zero-diagonal, non-negative and symmetric checks with
//     sentinel errors (ErrNonSquare, ErrNonZeroDiagonal, ErrAsymmetry, ...).
//   - Reductions: RowSums, ColSums, Flatten, Trace, NormalizeRowsL1.
//   - Dense.Induced: copy-based submatrix with repeatable indices, used for
//     resampling and for pruning empty rows/columns of count tables.
//
// Nothing here panics on user input; every failure is a sentinel matched with errors.Is.
package matrix
