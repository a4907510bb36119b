// SPDX-License-Identifier: MIT

package distclust

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/metricspace/matrix"
)

// Classify builds the leave-one-out nearest-class confusion matrix of dists.
//
// Algorithm Outline:
//  1. Validate (see validateAll) and resample the sample positions.
//  2. For every sample s and class c collect the candidate distances from s
//     to the members of c, skipping position s itself.
//  3. aggregate: power mean or median of each candidate list (+Inf if empty).
//  4. trump (optional): classes holding exact zeros get -(zeros/candidates).
//  5. vote: every class at the minimum gets 1/ties of the vote in row class(s).
//
// Complexity:
//
//	Time   = O(S²·log S) with the median, O(S²) otherwise
//	Memory = O(S²) for the resampled copy
func Classify(dists matrix.Matrix, nsam []int, opts ...Option) (*Confusion, error) {
	o := buildOptions(opts)
	s, err := validateAll(dists, nsam, o)
	if err != nil {
		return nil, fmt.Errorf("Classify: %w", err)
	}

	src, err := matrix.ToDense(dists)
	if err != nil {
		return nil, fmt.Errorf("Classify: %w", err)
	}
	rng := rngFromSeed(o.Seed)
	idx := sampleIndex(o.Resample, nsam, s, rng)
	view, err := src.Induced(idx, idx)
	if err != nil {
		return nil, fmt.Errorf("Classify: resample: %w", err)
	}

	k := len(nsam)
	labels := classLabels(nsam)
	votes, err := matrix.NewZeros(k, k)
	if err != nil {
		return nil, fmt.Errorf("Classify: %w", err)
	}

	cands := make([][]float64, k)
	agg := make([]float64, k)
	scratch := make([]float64, 0, s)

	var (
		p, r, c int
		row     []float64
	)
	for p = 0; p < s; p++ {
		if row, err = view.Row(p); err != nil {
			return nil, fmt.Errorf("Classify: %w", err)
		}
		for c = range cands {
			cands[c] = cands[c][:0]
		}
		for r = 0; r < s; r++ {
			if r == p {
				continue
			}
			cands[labels[r]] = append(cands[labels[r]], row[r])
		}
		for c = 0; c < k; c++ {
			agg[c] = aggregate(cands[c], o, &scratch)
			if o.Trump {
				agg[c] = trump(cands[c], agg[c])
			}
		}
		if err = vote(votes, labels[p], agg); err != nil {
			return nil, fmt.Errorf("Classify: %w", err)
		}
	}

	conf := newConfusion(votes, nsam)
	o.Logger.Debug("distclust: classified",
		"samples", s,
		"classes", k,
		"resample", o.Resample.String(),
		"trump", o.Trump,
		"correct", conf.Correct())

	return conf, nil
}

// classLabels expands block sizes into a per-position class label.
func classLabels(nsam []int) []int {
	labels := make([]int, 0, len(nsam))
	for c, n := range nsam {
		for i := 0; i < n; i++ {
			labels = append(labels, c)
		}
	}

	return labels
}

// aggregate reduces the candidate distances of one class to a single score.
// An empty candidate list (a singleton own class) scores +Inf.
// scratch is reused between calls to avoid per-sample allocations.
func aggregate(cand []float64, o Options, scratch *[]float64) float64 {
	if len(cand) == 0 {
		return math.Inf(1)
	}
	buf := append((*scratch)[:0], cand...)
	*scratch = buf

	if o.useMedian() {
		return median(buf)
	}

	for i, d := range buf {
		buf[i] = math.Pow(d, o.Exponent)
	}
	mean := floats.Sum(buf) / float64(len(buf))

	return math.Pow(mean, 1/o.Exponent)
}

// median sorts x in place and returns its middle value, or the mean of the
// two middle values for even lengths. len(x) must be > 0.
func median(x []float64) float64 {
	sort.Float64s(x)
	n := len(x)
	if n%2 == 1 {
		return x[n/2]
	}

	return (x[n/2-1] + x[n/2]) / 2
}

// trump overrides agg with -(zeros/len(cand)) when cand holds exact zeros.
func trump(cand []float64, agg float64) float64 {
	zeros := 0
	for _, d := range cand {
		if d == 0 {
			zeros++
		}
	}
	if zeros == 0 {
		return agg
	}

	return -float64(zeros) / float64(len(cand))
}

// vote splits one unit of vote between every class whose score equals the
// minimum, adding it to row truth of votes.
func vote(votes *matrix.Dense, truth int, agg []float64) error {
	best := floats.Min(agg)
	ties := 0
	for _, a := range agg {
		if a == best {
			ties++
		}
	}
	share := 1 / float64(ties)
	for c, a := range agg {
		if a != best {
			continue
		}
		if err := votes.Add(truth, c, share); err != nil {
			return err
		}
	}

	return nil
}
