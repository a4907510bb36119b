// SPDX-License-Identifier: MIT

package spkd

import (
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"
)

// SlidingDistance returns, per cost, the minimum Distance(a+offset, b, costs)
// over offsets 0, ±res, ±2·res, … with |offset| <= MaxOffset.
//
// The offset grid is built outward from 0, so offset 0 is always evaluated and
// the result never exceeds Distance(a, b, costs). res = 0 evaluates offset 0 only.
// A resolution below MinSafeResolution logs a warning and proceeds.
//
// Complexity: O(|A|·|B|·M) per offset; (2·⌊MaxOffset/res⌋+1) offsets.
//
// Errors: as for Distance, plus ErrBadResolution for res < 0 or NaN.
func SlidingDistance(a, b, costs []float64, opts ...Option) ([]float64, error) {
	o := buildOptions(opts)
	if err := validateResolution(o.Resolution); err != nil {
		return nil, err
	}
	if err := validateCosts(costs); err != nil {
		return nil, err
	}
	if err := validateTrain(a); err != nil {
		return nil, err
	}
	if err := validateTrain(b); err != nil {
		return nil, err
	}
	warnResolution(o.Logger, o.Resolution)

	return slide(a, b, costs, offsets(o.Resolution), o.OffsetWorkers)
}

// slide runs the DP once per offset and keeps the element-wise minimum.
// With workers > 1 the offsets are split across an errgroup; each goroutine
// owns its shifted copy of a and its own result slot.
func slide(a, b, costs, offs []float64, workers int) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		// Shifting an empty train (or matching against one) changes nothing.
		return distance(a, b, costs), nil
	}

	if workers <= 1 || len(offs) == 1 {
		shifted := make([]float64, len(a))
		best := distance(a, b, costs) // offs[0] == 0
		for _, off := range offs[1:] {
			shiftInto(shifted, a, off)
			minInto(best, distance(shifted, b, costs))
		}
		return best, nil
	}

	results := make([][]float64, len(offs))
	var g errgroup.Group
	g.SetLimit(workers)
	for idx, off := range offs {
		idx, off := idx, off
		g.Go(func() error {
			shifted := make([]float64, len(a))
			shiftInto(shifted, a, off)
			results[idx] = distance(shifted, b, costs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	best := results[0]
	for _, r := range results[1:] {
		minInto(best, r)
	}

	return best, nil
}

// offsets returns 0 followed by ±s·res for s = 1..⌊MaxOffset/res⌋.
// The tiny relative slack keeps ±MaxOffset when res divides it exactly
// but floating division lands just below the integer.
func offsets(res float64) []float64 {
	if res == 0 {
		return []float64{0}
	}
	steps := int(math.Floor(MaxOffset/res + 1e-9))
	out := make([]float64, 0, 2*steps+1)
	out = append(out, 0)
	for s := 1; s <= steps; s++ {
		out = append(out, float64(s)*res, -float64(s)*res)
	}

	return out
}

// shiftInto writes src+off into dst (len(dst) == len(src)).
func shiftInto(dst, src []float64, off float64) {
	for i, t := range src {
		dst[i] = t + off
	}
}

// minInto keeps best[k] = min(best[k], cand[k]).
func minInto(best, cand []float64) {
	for k, v := range cand {
		if v < best[k] {
			best[k] = v
		}
	}
}

// validateResolution rejects negative and NaN resolutions; +Inf behaves like "offset 0 only".
func validateResolution(res float64) error {
	if math.IsNaN(res) || res < 0 {
		return fmt.Errorf("resolution=%g: %w", res, ErrBadResolution)
	}

	return nil
}

// warnResolution logs the performance hazard of a very fine offset grid.
func warnResolution(l *slog.Logger, res float64) {
	if res > 0 && res < MinSafeResolution {
		l.Warn("spkd: resolution below safe minimum, offset search may be very slow",
			slog.Float64("resolution", res),
			slog.Float64("min_safe", MinSafeResolution),
			slog.Int("offsets", 2*int(math.Floor(MaxOffset/res+1e-9))+1),
		)
	}
}
