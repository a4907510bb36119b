// SPDX-License-Identifier: MIT

package distclust

import (
	"math"
	"sort"

	"github.com/katalvlaran/metricspace/matrix"
)

// Confusion is a K×K vote matrix: row = true class, column = decoded class.
// Entries are fractional when ties split a vote; row i sums to nsam[i].
type Confusion struct {
	votes *matrix.Dense
	nsam  []int
}

func newConfusion(votes *matrix.Dense, nsam []int) *Confusion {
	sizes := make([]int, len(nsam))
	copy(sizes, nsam)

	return &Confusion{votes: votes, nsam: sizes}
}

// Classes returns K.
func (c *Confusion) Classes() int { return len(c.nsam) }

// ClassSizes returns a copy of nsam.
func (c *Confusion) ClassSizes() []int {
	out := make([]int, len(c.nsam))
	copy(out, c.nsam)

	return out
}

// Matrix returns a copy of the fractional vote matrix.
func (c *Confusion) Matrix() *matrix.Dense {
	return c.votes.Clone().(*matrix.Dense)
}

// Probabilities returns the row-normalized vote matrix, P(decoded | true).
func (c *Confusion) Probabilities() *matrix.Dense {
	p, _, _ := matrix.NormalizeRowsL1(c.votes)

	return p
}

// RowSums returns the total vote per true class (equal to nsam up to rounding).
func (c *Confusion) RowSums() []float64 {
	sums, _ := matrix.RowSums(c.votes)

	return sums
}

// Correct returns the fraction of samples decoded into their own class
// (trace divided by the number of samples).
func (c *Confusion) Correct() float64 {
	tr, _ := matrix.Trace(c.votes)
	total := 0
	for _, n := range c.nsam {
		total += n
	}

	return tr / float64(total)
}

// Counts rounds the vote matrix to integers, row by row, with the
// largest-remainder method so that row i still sums to nsam[i].
// Remainder ties go to the lower column index.
func (c *Confusion) Counts() [][]int {
	k := len(c.nsam)
	out := make([][]int, k)
	for i := 0; i < k; i++ {
		row, _ := c.votes.Row(i)
		out[i] = largestRemainder(row, c.nsam[i])
	}

	return out
}

// largestRemainder floors every entry of row, then hands the units still
// missing to target out to the entries with the largest fractional parts.
func largestRemainder(row []float64, target int) []int {
	out := make([]int, len(row))
	rem := make([]float64, len(row))
	sum := 0
	for j, v := range row {
		f := math.Floor(v + 1e-9) // 0.9999999999 from summed thirds is 1
		out[j] = int(f)
		rem[j] = v - f
		sum += out[j]
	}

	order := identity(len(row))
	sort.SliceStable(order, func(a, b int) bool { return rem[order[a]] > rem[order[b]] })
	for t := 0; t < target-sum && t < len(order); t++ {
		out[order[t]]++
	}

	return out
}
