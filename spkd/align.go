// SPDX-License-Identifier: MIT

package spkd

import "math"

// Align computes the optimal edit script between a and b for a single cost q.
//
// Algorithm Outline (Full-Matrix):
//  1. Fill the (n+1)×(m+1) matrix D with the same recurrence as Distance.
//  2. Backtrack from (n,m) to (0,0), preferring at each cell:
//     shift (diagonal) → delete a[i-1] (up) → insert b[j-1] (left),
//     taking the first predecessor whose value plus its step cost reproduces D[i][j].
//  3. Reverse the collected pairs / deletions / insertions into ascending order.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m)
//
// Errors: as for Distance with costs = []float64{q}.
func Align(a, b []float64, q float64) (Alignment, error) {
	if err := validateCosts([]float64{q}); err != nil {
		return Alignment{}, err
	}
	if err := validateTrain(a); err != nil {
		return Alignment{}, err
	}
	if err := validateTrain(b); err != nil {
		return Alignment{}, err
	}

	n, m := len(a), len(b)
	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
		dp[i][0] = float64(i)
	}
	for j := 0; j <= m; j++ {
		dp[0][j] = float64(j)
	}

	var i, j int
	for i = 1; i <= n; i++ {
		for j = 1; j <= m; j++ {
			dp[i][j] = min3(
				dp[i-1][j]+1,
				dp[i][j-1]+1,
				dp[i-1][j-1]+shiftCost(q, math.Abs(a[i-1]-b[j-1])),
			)
		}
	}

	res := Alignment{Distance: dp[n][m]}

	// Backtrack; every comparison re-evaluates the exact float expression used
	// during the fill, so equality is reliable.
	i, j = n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && dp[i][j] == dp[i-1][j-1]+shiftCost(q, math.Abs(a[i-1]-b[j-1])):
			res.Pairs = append(res.Pairs, Coord{I: i - 1, J: j - 1})
			i--
			j--
		case i > 0 && dp[i][j] == dp[i-1][j]+1:
			res.Deleted = append(res.Deleted, i-1)
			i--
		default:
			res.Inserted = append(res.Inserted, j-1)
			j--
		}
	}

	reverseCoords(res.Pairs)
	reverseInts(res.Deleted)
	reverseInts(res.Inserted)

	return res, nil
}

// reverseCoords reverses p in place.
func reverseCoords(p []Coord) {
	for l, r := 0, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
}

// reverseInts reverses p in place.
func reverseInts(p []int) {
	for l, r := 0, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
}
