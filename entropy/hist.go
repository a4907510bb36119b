// SPDX-License-Identifier: MIT

package entropy

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// HistInfo returns the plug-in entropy -Σ p_i·log2(p_i) of the histogram p,
// normalized by its total. Empty bins are skipped; an all-zero or empty
// histogram has entropy 0.
//
// The result lies in [0, log2(len(p))].
func HistInfo(p []float64) (float64, error) {
	if err := validateCounts(p); err != nil {
		return 0, fmt.Errorf("HistInfo: %w", err)
	}

	return histInfo(p), nil
}

// histInfo is the unchecked kernel of HistInfo.
func histInfo(p []float64) float64 {
	total := floats.Sum(p)
	if total == 0 {
		return 0
	}

	var h, x float64
	for _, v := range p {
		if v == 0 {
			continue
		}
		x = v / total
		h -= x * math.Log2(x)
	}

	return h
}

// JackknifeBias returns the leave-one-out jackknife correction (N-1)·(H − H̄)
// where H is the plug-in entropy of counts and H̄ is the count-weighted mean
// of the N leave-one-out entropies.
//
// Removing one observation from bin i turns c_i·log2(c_i) into
// (c_i-1)·log2(c_i-1), so H̄ has a closed form; only bins with c_i >= 2
// contribute the second term. Returns exactly 0 when max(counts) <= 1.
//
// Complexity: O(len(counts)).
func JackknifeBias(counts []float64) (float64, error) {
	if err := validateCounts(counts); err != nil {
		return 0, fmt.Errorf("JackknifeBias: %w", err)
	}

	return jackknifeBias(counts), nil
}

func jackknifeBias(counts []float64) float64 {
	if len(counts) == 0 || floats.Max(counts) <= 1 {
		return 0
	}

	n := floats.Sum(counts)
	sumClogC := 0.0
	for _, c := range counts {
		if c > 0 {
			sumClogC += c * math.Log2(c)
		}
	}
	h := math.Log2(n) - sumClogC/n

	var (
		loo  float64 // Σ_i c_i · H_{-i}
		rest float64
	)
	logN1 := math.Log2(n - 1)
	for _, c := range counts {
		if c <= 0 {
			continue
		}
		rest = sumClogC - c*math.Log2(c)
		if c >= 2 {
			rest += (c - 1) * math.Log2(c-1)
		}
		loo += c * (logN1 - rest/(n-1))
	}

	return (n - 1) * (h - loo/n)
}

// TrevesPanzeriBias returns (bins-1) / (2·N·ln 2), with bins the number of
// occupied bins, or len(counts) when useAll is set. A zero total yields 0.
func TrevesPanzeriBias(counts []float64, useAll bool) (float64, error) {
	if err := validateCounts(counts); err != nil {
		return 0, fmt.Errorf("TrevesPanzeriBias: %w", err)
	}

	return trevesPanzeri(counts, useAll), nil
}

func trevesPanzeri(counts []float64, useAll bool) float64 {
	n := floats.Sum(counts)
	if n == 0 {
		return 0
	}

	bins := len(counts)
	if !useAll {
		bins = 0
		for _, c := range counts {
			if c > 0 {
				bins++
			}
		}
	}

	return float64(bins-1) / (2 * n * math.Ln2)
}

// HistBias dispatches to the estimator selected by est.
func HistBias(counts []float64, est BiasEstimator) (float64, error) {
	if err := validateCounts(counts); err != nil {
		return 0, fmt.Errorf("HistBias: %w", err)
	}

	return histBias(counts, est)
}

func histBias(counts []float64, est BiasEstimator) (float64, error) {
	switch est {
	case Jackknife:
		return jackknifeBias(counts), nil
	case TrevesPanzeri:
		return trevesPanzeri(counts, false), nil
	case TrevesPanzeriAllBins:
		return trevesPanzeri(counts, true), nil
	default:
		return 0, fmt.Errorf("%v: %w", est, ErrUnknownEstimator)
	}
}

// validateCounts rejects NaN/±Inf (ErrBadValue) and negative entries (ErrNegativeCount).
func validateCounts(counts []float64) error {
	for i, c := range counts {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("counts[%d]: %w", i, ErrBadValue)
		}
		if c < 0 {
			return fmt.Errorf("counts[%d]=%g: %w", i, c, ErrNegativeCount)
		}
	}

	return nil
}
