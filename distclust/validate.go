// SPDX-License-Identifier: MIT

package distclust

import (
	"fmt"
	"math"

	"github.com/katalvlaran/metricspace/matrix"
)

// validateAll checks the distance matrix, the class sizes and the option
// combination, in that order, and returns the matrix order S on success.
//
// Contract:
//   - nil matrix            → matrix.ErrNilMatrix
//   - not square            → ErrNonSquare
//   - NaN / negative entry  → ErrBadDistance (wrapping the matrix sentinel)
//   - nonzero diagonal      → ErrNonZeroDiagonal
//   - empty or <=0 nsam     → ErrBadClassSize
//   - sum(nsam) != S        → ErrClassSizeMismatch
//   - trump with bootstrap  → ErrTrumpBootstrap
//   - unknown resample mode → ErrUnknownResample
//   - NaN / ±Inf exponent   → ErrBadExponent
//
// Symmetry is not enforced; row s is read as "distances from s".
//
// Complexity: O(S²).
func validateAll(dists matrix.Matrix, nsam []int, o Options) (int, error) {
	if err := matrix.ValidateNotNil(dists); err != nil {
		return 0, err
	}
	if err := matrix.ValidateSquare(dists); err != nil {
		return 0, err
	}
	if err := matrix.ValidateNonNegative(dists); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadDistance, err)
	}
	if err := matrix.ValidateZeroDiagonal(dists, 0); err != nil {
		return 0, err
	}

	s := dists.Rows()
	if err := validateClassSizes(nsam, s); err != nil {
		return 0, err
	}
	if err := validateOptions(o); err != nil {
		return 0, err
	}

	return s, nil
}

// validateClassSizes enforces a non-empty vector of positive sizes summing to s.
func validateClassSizes(nsam []int, s int) error {
	if len(nsam) == 0 {
		return fmt.Errorf("empty nsam: %w", ErrBadClassSize)
	}
	total := 0
	for c, n := range nsam {
		if n <= 0 {
			return fmt.Errorf("nsam[%d]=%d: %w", c, n, ErrBadClassSize)
		}
		total += n
	}
	if total != s {
		return fmt.Errorf("sum(nsam)=%d, matrix order %d: %w", total, s, ErrClassSizeMismatch)
	}

	return nil
}

// validateOptions rejects forbidden or malformed option combinations.
func validateOptions(o Options) error {
	if o.Trump && o.Resample == ResampleBootstrap {
		return ErrTrumpBootstrap
	}
	switch o.Resample {
	case ResampleNone, ResampleRelabel, ResampleBootstrap:
	default:
		return fmt.Errorf("%v: %w", o.Resample, ErrUnknownResample)
	}
	if math.IsNaN(o.Exponent) || math.IsInf(o.Exponent, 0) {
		return fmt.Errorf("exponent %g: %w", o.Exponent, ErrBadExponent)
	}

	return nil
}
