// SPDX-License-Identifier: MIT

package spkd

import (
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/metricspace/matrix"
)

// Pairwise builds the N×N×M distance tensor d[i,j,k] = Distance(trains[i], trains[j], costs)[k].
//
// Contract:
//   - len(trains) >= 2, else ErrTooFewTrains.
//   - Only pairs i<j are evaluated; d[j,i,:] is a copy of d[i,j,:]; the diagonal stays 0.
//   - A pair with an empty train is filled with max(len(A), len(B)) without running the DP.
//   - Pairs are evaluated on Options.Workers goroutines; each pair writes only its
//     own two fibers, so no locking is involved.
//
// Complexity: Σ_{i<j} O(|T_i|·|T_j|·M) time; O(N²·M) for the result.
func Pairwise(trains [][]float64, costs []float64, opts ...Option) (*matrix.Tensor, error) {
	o := buildOptions(opts)

	return pairwise(trains, costs, o, nil)
}

// SlidingPairwise is Pairwise with SlidingDistance per pair; the offset is applied
// to the lower-indexed train of each pair. The small-resolution warning is logged
// once per call.
func SlidingPairwise(trains [][]float64, costs []float64, opts ...Option) (*matrix.Tensor, error) {
	o := buildOptions(opts)
	if err := validateResolution(o.Resolution); err != nil {
		return nil, err
	}
	warnResolution(o.Logger, o.Resolution)

	return pairwise(trains, costs, o, offsets(o.Resolution))
}

// pairwise validates inputs once and fans the upper triangle out to the pool.
// offs == nil selects the plain DP.
func pairwise(trains [][]float64, costs []float64, o Options, offs []float64) (*matrix.Tensor, error) {
	n := len(trains)
	if n < 2 {
		return nil, fmt.Errorf("got %d trains: %w", n, ErrTooFewTrains)
	}
	if err := validateCosts(costs); err != nil {
		return nil, err
	}
	for i, tr := range trains {
		if err := validateTrain(tr); err != nil {
			return nil, fmt.Errorf("trains[%d]: %w", i, err)
		}
	}

	out, err := matrix.NewTensor(n, n, len(costs))
	if err != nil {
		return nil, err
	}

	workers := o.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	o.Logger.Debug("spkd: pairwise start",
		slog.Int("trains", n),
		slog.Int("costs", len(costs)),
		slog.Int("pairs", n*(n-1)/2),
		slog.Int("workers", workers),
		slog.Bool("sliding", offs != nil),
	)

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			i, j := i, j
			g.Go(func() error {
				d, err := pairDistance(trains[i], trains[j], costs, offs, o.OffsetWorkers)
				if err != nil {
					return fmt.Errorf("pair (%d,%d): %w", i, j, err)
				}

				return mirror(out, i, j, d)
			})
		}
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	o.Logger.Debug("spkd: pairwise done", slog.Int("trains", n))

	return out, nil
}

// pairDistance evaluates one unordered pair, short-circuiting empty trains.
func pairDistance(a, b, costs, offs []float64, offsetWorkers int) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		d := make([]float64, len(costs))
		fillEmpty(d, len(a), len(b))
		return d, nil
	}
	if offs == nil {
		return distance(a, b, costs), nil
	}

	return slide(a, b, costs, offs, offsetWorkers)
}

// mirror writes d into the [i,j,:] and [j,i,:] fibers.
func mirror(t *matrix.Tensor, i, j int, d []float64) error {
	fij, err := t.Fiber(i, j)
	if err != nil {
		return err
	}
	fji, err := t.Fiber(j, i)
	if err != nil {
		return err
	}
	copy(fij, d)
	copy(fji, d)

	return nil
}
