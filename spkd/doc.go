// SPDX-License-Identifier: MIT

// Package spkd computes cost-based edit distances between spike trains
// (the Victor–Purpura metric) for a whole vector of cost parameters at once.
//
// What is the metric?
//
//	A spike train is a list of event times. The distance between two trains is
//	the cheapest sequence of elementary steps turning one into the other:
//	  • delete or insert a spike        - cost 1
//	  • shift a spike by Δt             - cost q·|Δt|
//	The cost parameter q sets the temporal precision of the comparison: q=0
//	only counts spikes, large q makes every non-coincident spike a mismatch.
//
// Key features:
//   - Distance: one DP pass over the (|A|+1)×(|B|+1) grid serves every q in the cost vector.
//   - Align: single-cost DP with backtracking; returns matched, deleted and inserted spikes.
//   - SlidingDistance: minimum over time offsets in [-1, 1] applied to the first train.
//   - Pairwise / SlidingPairwise: N×N×M symmetric distance tensor built from the
//     upper triangle on a bounded worker pool.
//
// Usage:
//
//	import "github.com/katalvlaran/metricspace/spkd"
//
//	costs := []float64{0, 1, 10, 100}
//	d, err := spkd.Distance(a, b, costs)         // len(d) == len(costs)
//	t, err := spkd.Pairwise(trains, costs,        // N×N×4 tensor
//	    spkd.WithWorkers(8))
//	ts, err := spkd.SlidingPairwise(trains, costs,
//	    spkd.WithResolution(1e-3))
//
// Performance:
//
//   - Distance: O(|A|·|B|·M) time, O(|B|·M) memory (two rolling rows).
//   - Sliding:  × (2·⌊1/res⌋+1) offsets.
//   - Pairwise: N(N−1)/2 evaluations, spread over Options.Workers goroutines.
package spkd
