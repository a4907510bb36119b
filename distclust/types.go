// SPDX-License-Identifier: MIT

package distclust

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/metricspace/matrix"
)

// Sentinel errors returned by Classify.
var (
	// ErrNonSquare aliases matrix.ErrNonSquare for a non-square distance matrix.
	ErrNonSquare = matrix.ErrNonSquare

	// ErrNonZeroDiagonal aliases matrix.ErrNonZeroDiagonal; self-distances must be 0.
	ErrNonZeroDiagonal = matrix.ErrNonZeroDiagonal

	// ErrBadDistance indicates a NaN or negative distance.
	ErrBadDistance = errors.New("distclust: distances must be non-negative numbers")

	// ErrBadClassSize indicates an empty class-size vector or a class size <= 0.
	ErrBadClassSize = errors.New("distclust: class sizes must be > 0")

	// ErrClassSizeMismatch indicates sum(nsam) != number of samples.
	ErrClassSizeMismatch = errors.New("distclust: class sizes do not sum to matrix order")

	// ErrTrumpBootstrap indicates the forbidden trump + bootstrap combination.
	ErrTrumpBootstrap = errors.New("distclust: trump cannot be combined with bootstrap resampling")

	// ErrUnknownResample indicates a Resample value outside the declared set.
	ErrUnknownResample = errors.New("distclust: unknown resample mode")

	// ErrBadExponent indicates a NaN or infinite averaging exponent.
	ErrBadExponent = errors.New("distclust: exponent must be finite")
)

// Resample selects how sample positions are redrawn before classification.
type Resample int

const (
	// ResampleNone uses the distance matrix as given.
	ResampleNone Resample = iota
	// ResampleRelabel permutes samples across the class blocks.
	ResampleRelabel
	// ResampleBootstrap redraws every class block with replacement.
	ResampleBootstrap
)

// String returns the lowercase mode name used in job files.
func (r Resample) String() string {
	switch r {
	case ResampleNone:
		return "none"
	case ResampleRelabel:
		return "relabel"
	case ResampleBootstrap:
		return "bootstrap"
	default:
		return fmt.Sprintf("Resample(%d)", int(r))
	}
}

// ParseResample maps a job-file name back to a Resample value.
func ParseResample(s string) (Resample, error) {
	switch s {
	case "", "none":
		return ResampleNone, nil
	case "relabel":
		return ResampleRelabel, nil
	case "bootstrap":
		return ResampleBootstrap, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownResample)
	}
}

// DefaultExponent is the power-mean exponent used when none is given
// (gravitational weighting: near neighbours dominate).
const DefaultExponent = -2.0

// Options configures Classify.
//
// Fields:
//   - Exponent - power-mean exponent; 0 selects the median.
//   - Median   - force the median regardless of Exponent.
//   - Resample - None, Relabel or Bootstrap.
//   - Trump    - exact-zero distances override the aggregate.
//   - Seed     - RNG seed for resampling; 0 means a fixed default seed.
//   - Logger   - receives a debug summary; nil means slog.Default().
type Options struct {
	Exponent float64
	Median   bool
	Resample Resample
	Trump    bool
	Seed     int64
	Logger   *slog.Logger
}

// Option represents a functional option for Classify.
type Option func(*Options)

// DefaultOptions returns Exponent=-2, no resampling, Trump=true, Seed=0.
func DefaultOptions() Options {
	return Options{
		Exponent: DefaultExponent,
		Resample: ResampleNone,
		Trump:    true,
	}
}

// WithExponent sets the power-mean exponent (0 → median).
func WithExponent(e float64) Option {
	return func(o *Options) { o.Exponent = e }
}

// WithMedian aggregates candidate distances by their median.
func WithMedian() Option {
	return func(o *Options) { o.Median = true }
}

// WithResample sets the resampling mode.
func WithResample(r Resample) Option {
	return func(o *Options) { o.Resample = r }
}

// WithTrump toggles the zero-distance override stage.
func WithTrump(on bool) Option {
	return func(o *Options) { o.Trump = on }
}

// WithSeed fixes the resampling RNG seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithLogger routes the debug summary to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}

	return o
}

// useMedian reports whether the aggregate stage takes the median.
func (o Options) useMedian() bool { return o.Median || o.Exponent == 0 }
