// SPDX-License-Identifier: MIT

package spkd

import (
	"fmt"
	"math"
)

// Distance - cost-based spike-train distance for a vector of cost parameters.
//
// Algorithm Outline (rolling rows, vectorized over k):
//  1. Let n = len(a), m = len(b), K = len(costs).
//  2. Initialize row 0: D[k][0][j] = j.
//  3. For i = 1..n:
//     D[k][i][0] = i
//     For j = 1..m:
//     dt    = |a[i-1] - b[j-1]|
//     del   = D[k][i-1][j]   + 1
//     ins   = D[k][i][j-1]   + 1
//     shift = D[k][i-1][j-1] + q_k·dt
//     D[k][i][j] = min(del, ins, shift)
//  4. distance_k = D[k][n][m].
//
// Edge cases:
//   - Either train empty: every distance equals the length of the other one.
//   - q_k = 0: distance is |n − m|.
//   - q_k = +Inf: only coincident spikes can be matched; 0·Inf never turns into NaN.
//
// Complexity:
//
//	Time   = O(n·m·K)
//	Memory = O(m·K)
//
// Errors:
//   - ErrNoCosts, ErrNegativeCost, ErrBadCost - cost vector problems.
//   - ErrBadSpikeTime                         - NaN/Inf spike time in a or b.
func Distance(a, b, costs []float64) ([]float64, error) {
	if err := validateCosts(costs); err != nil {
		return nil, err
	}
	if err := validateTrain(a); err != nil {
		return nil, err
	}
	if err := validateTrain(b); err != nil {
		return nil, err
	}

	return distance(a, b, costs), nil
}

// distance is the unchecked DP kernel shared by every entry point.
func distance(a, b, costs []float64) []float64 {
	n, m, nk := len(a), len(b), len(costs)
	out := make([]float64, nk)
	if n == 0 || m == 0 {
		fillEmpty(out, n, m)
		return out
	}

	// Two rows of (m+1) cells, each cell holding nk costs: offset = j*nk + k.
	prev := make([]float64, (m+1)*nk)
	curr := make([]float64, (m+1)*nk)

	var (
		i, j, k  int
		dt       float64
		ai       float64
		base     int // j*nk
		baseLeft int // (j-1)*nk
	)
	for j = 0; j <= m; j++ {
		base = j * nk
		for k = 0; k < nk; k++ {
			prev[base+k] = float64(j)
		}
	}

	for i = 1; i <= n; i++ {
		for k = 0; k < nk; k++ {
			curr[k] = float64(i)
		}
		ai = a[i-1]
		for j = 1; j <= m; j++ {
			dt = math.Abs(ai - b[j-1])
			base = j * nk
			baseLeft = base - nk
			for k = 0; k < nk; k++ {
				curr[base+k] = min3(
					prev[base+k]+1,                            // delete a[i-1]
					curr[baseLeft+k]+1,                        // insert b[j-1]
					prev[baseLeft+k]+shiftCost(costs[k], dt), // shift a[i-1] onto b[j-1]
				)
			}
		}
		prev, curr = curr, prev
	}

	copy(out, prev[m*nk:])

	return out
}

// shiftCost returns q·dt with the convention that coincident spikes (or q=0)
// cost nothing, so +Inf·0 yields 0 rather than NaN.
func shiftCost(q, dt float64) float64 {
	if dt == 0 || q == 0 {
		return 0
	}

	return q * dt
}

// fillEmpty writes the all-insertion cost max(n, m) into out.
// Only meaningful when one of n, m is zero.
func fillEmpty(out []float64, n, m int) {
	v := float64(n)
	if m > n {
		v = float64(m)
	}
	for k := range out {
		out[k] = v
	}
}

// validateCosts enforces a non-empty vector of non-negative, non-NaN costs.
// +Inf is allowed.
func validateCosts(costs []float64) error {
	if len(costs) == 0 {
		return ErrNoCosts
	}
	for k, q := range costs {
		if math.IsNaN(q) {
			return fmt.Errorf("costs[%d]: %w", k, ErrBadCost)
		}
		if q < 0 {
			return fmt.Errorf("costs[%d]=%g: %w", k, q, ErrNegativeCost)
		}
	}

	return nil
}

// validateTrain rejects NaN or infinite spike times.
func validateTrain(train []float64) error {
	for i, t := range train {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return fmt.Errorf("spike[%d]: %w", i, ErrBadSpikeTime)
		}
	}

	return nil
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
