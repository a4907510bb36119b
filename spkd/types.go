// SPDX-License-Identifier: MIT

// Package spkd defines options, sentinel errors and result types for the
// spike-train distance kernels.
package spkd

import (
	"errors"
	"log/slog"
)

// Sentinel errors returned by the spkd kernels.
var (
	// ErrNoCosts indicates an empty cost vector.
	ErrNoCosts = errors.New("spkd: cost vector must be non-empty")

	// ErrNegativeCost indicates a cost parameter below zero.
	ErrNegativeCost = errors.New("spkd: cost parameter must be non-negative")

	// ErrBadCost indicates a NaN cost parameter.
	ErrBadCost = errors.New("spkd: cost parameter is NaN")

	// ErrBadSpikeTime indicates a NaN or infinite spike time.
	ErrBadSpikeTime = errors.New("spkd: spike time must be finite")

	// ErrTooFewTrains indicates that fewer than two trains were given to a pairwise call.
	ErrTooFewTrains = errors.New("spkd: at least two spike trains are required")

	// ErrBadResolution indicates a negative or NaN sliding resolution.
	ErrBadResolution = errors.New("spkd: resolution must be >= 0")
)

const (
	// DefaultResolution is the step of the sliding offset search.
	DefaultResolution = 1e-3

	// MinSafeResolution is the smallest resolution accepted without a warning;
	// the number of offsets grows as 2/res.
	MinSafeResolution = 1e-4

	// MaxOffset bounds the sliding search to [-MaxOffset, +MaxOffset].
	MaxOffset = 1.0
)

// Options configures the sliding search and the pairwise worker pool.
//
// Fields:
//   - Resolution    - sliding offset step; 0 disables the search (offset 0 only).
//   - Workers       - goroutines used by Pairwise/SlidingPairwise; <=0 means GOMAXPROCS.
//   - OffsetWorkers - goroutines used inside one sliding evaluation; <=1 is serial.
//   - Logger        - receives debug records and the small-resolution warning;
//     nil means slog.Default().
type Options struct {
	Resolution    float64
	Workers       int
	OffsetWorkers int
	Logger        *slog.Logger
}

// Option represents a functional option for the spkd entry points.
type Option func(*Options)

// DefaultOptions returns the defaults used when no Option is passed.
//
// Defaults:
//   - Resolution:    DefaultResolution (1e-3).
//   - Workers:       0 (GOMAXPROCS).
//   - OffsetWorkers: 1 (serial offset scan).
//   - Logger:        nil (slog.Default()).
func DefaultOptions() Options {
	return Options{
		Resolution:    DefaultResolution,
		Workers:       0,
		OffsetWorkers: 1,
	}
}

// WithResolution sets the sliding offset step. Validated at call time.
func WithResolution(res float64) Option {
	return func(o *Options) {
		o.Resolution = res
	}
}

// WithWorkers sets the number of goroutines evaluating train pairs.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithOffsetWorkers sets the number of goroutines scanning offsets within one pair.
func WithOffsetWorkers(n int) Option {
	return func(o *Options) {
		o.OffsetWorkers = n
	}
}

// WithLogger routes debug and warning records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// buildOptions applies opts over DefaultOptions and resolves the logger.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}

	return o
}

// Coord is one matched spike pair: A[I] was shifted onto B[J].
type Coord struct {
	I int
	J int
}

// Alignment is the optimal edit script between two trains for a single cost.
//
//   - Distance - total cost; equals Distance(a, b, []float64{q})[0].
//   - Pairs    - matched spikes in ascending order of both indices.
//   - Deleted  - indices of A spikes removed (ascending).
//   - Inserted - indices of B spikes inserted (ascending).
type Alignment struct {
	Distance float64
	Pairs    []Coord
	Deleted  []int
	Inserted []int
}
