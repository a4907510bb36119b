// SPDX-License-Identifier: MIT

package entropy

import (
	"fmt"

	"github.com/katalvlaran/metricspace/matrix"
)

// margins holds the three histograms every table estimator combines.
type margins struct {
	rows, cols, joint []float64
}

// tableMargins validates table and extracts its row sums, column sums and
// row-major cells.
func tableMargins(table matrix.Matrix) (margins, error) {
	if err := matrix.ValidateNotNil(table); err != nil {
		return margins{}, err
	}
	joint, err := matrix.Flatten(table)
	if err != nil {
		return margins{}, err
	}
	if err = validateCounts(joint); err != nil {
		return margins{}, err
	}
	rows, err := matrix.RowSums(table)
	if err != nil {
		return margins{}, err
	}
	cols, err := matrix.ColSums(table)
	if err != nil {
		return margins{}, err
	}

	return margins{rows: rows, cols: cols, joint: joint}, nil
}

// TableInfo returns the transinformation H(rows) + H(cols) − H(joint) of a
// joint count (or probability) table, in bits.
//
// Errors: matrix.ErrNilMatrix, ErrNegativeCount, ErrBadValue.
func TableInfo(table matrix.Matrix) (float64, error) {
	mg, err := tableMargins(table)
	if err != nil {
		return 0, fmt.Errorf("TableInfo: %w", err)
	}

	return histInfo(mg.rows) + histInfo(mg.cols) - histInfo(mg.joint), nil
}

// TableBias returns the correction to add to TableInfo.
//
// Jackknife combines the 1-D corrections b(rows) + b(cols) − b(joint);
// the Treves-Panzeri variants delegate to TableTPBias.
func TableBias(table matrix.Matrix, est BiasEstimator) (float64, error) {
	switch est {
	case TrevesPanzeri:
		return TableTPBias(table, false)
	case TrevesPanzeriAllBins:
		return TableTPBias(table, true)
	case Jackknife:
	default:
		return 0, fmt.Errorf("TableBias: %v: %w", est, ErrUnknownEstimator)
	}

	mg, err := tableMargins(table)
	if err != nil {
		return 0, fmt.Errorf("TableBias: %w", err)
	}

	return jackknifeBias(mg.rows) + jackknifeBias(mg.cols) - jackknifeBias(mg.joint), nil
}

// TableTPBias drops every all-zero row and column, then returns
// b(rows) + b(cols) − b(joint) with the Treves-Panzeri formula. With useAll
// the joint bin count is rows×cols of the pruned table, otherwise the number
// of occupied cells. An all-zero table yields 0.
func TableTPBias(table matrix.Matrix, useAll bool) (float64, error) {
	mg, err := tableMargins(table)
	if err != nil {
		return 0, fmt.Errorf("TableTPBias: %w", err)
	}

	keepRows, keepCols := nonZero(mg.rows), nonZero(mg.cols)
	if len(keepRows) == 0 || len(keepCols) == 0 {
		return 0, nil
	}

	dense, err := matrix.ToDense(table)
	if err != nil {
		return 0, fmt.Errorf("TableTPBias: %w", err)
	}
	pruned, err := dense.Induced(keepRows, keepCols)
	if err != nil {
		return 0, fmt.Errorf("TableTPBias: prune: %w", err)
	}
	if mg, err = tableMargins(pruned); err != nil {
		return 0, fmt.Errorf("TableTPBias: %w", err)
	}

	return trevesPanzeri(mg.rows, useAll) +
		trevesPanzeri(mg.cols, useAll) -
		trevesPanzeri(mg.joint, useAll), nil
}

// TableInfoDebiased returns TableInfo(table) + TableBias(table, est).
func TableInfoDebiased(table matrix.Matrix, est BiasEstimator) (float64, error) {
	info, err := TableInfo(table)
	if err != nil {
		return 0, err
	}
	bias, err := TableBias(table, est)
	if err != nil {
		return 0, err
	}

	return info + bias, nil
}

// nonZero returns the indices of the positive entries of x.
func nonZero(x []float64) []int {
	idx := make([]int, 0, len(x))
	for i, v := range x {
		if v > 0 {
			idx = append(idx, i)
		}
	}

	return idx
}
