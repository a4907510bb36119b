// SPDX-License-Identifier: MIT

package entropy

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrNegativeCount indicates a count below zero.
	ErrNegativeCount = errors.New("entropy: counts must be non-negative")

	// ErrBadValue indicates a NaN or infinite count.
	ErrBadValue = errors.New("entropy: counts must be finite")

	// ErrUnknownEstimator indicates a BiasEstimator outside the declared set.
	ErrUnknownEstimator = errors.New("entropy: unknown bias estimator")
)

// BiasEstimator selects a small-sample bias correction.
type BiasEstimator int

const (
	// Jackknife is the leave-one-out jackknife correction.
	Jackknife BiasEstimator = iota
	// TrevesPanzeri counts only the occupied bins.
	TrevesPanzeri
	// TrevesPanzeriAllBins counts every bin, occupied or not.
	TrevesPanzeriAllBins
)

// String returns the job-file name of the estimator.
func (e BiasEstimator) String() string {
	switch e {
	case Jackknife:
		return "jackknife"
	case TrevesPanzeri:
		return "treves-panzeri"
	case TrevesPanzeriAllBins:
		return "treves-panzeri-all"
	default:
		return fmt.Sprintf("BiasEstimator(%d)", int(e))
	}
}

// ParseBiasEstimator is the inverse of String; "" selects Jackknife.
func ParseBiasEstimator(s string) (BiasEstimator, error) {
	switch s {
	case "", "jackknife":
		return Jackknife, nil
	case "treves-panzeri":
		return TrevesPanzeri, nil
	case "treves-panzeri-all":
		return TrevesPanzeriAllBins, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownEstimator)
	}
}
