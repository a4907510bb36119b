// SPDX-License-Identifier: MIT

// Package config loads and validates analysis jobs for the spkd command.
//
// A job names the cost grid, the optional sliding resolution, the classifier
// settings and the spike trains of every stimulus class. Files are TOML, YAML
// or JSON, chosen by extension.
package config

import (
	"fmt"

	"github.com/katalvlaran/metricspace/distclust"
	"github.com/katalvlaran/metricspace/entropy"
)

// Job is one analysis run.
type Job struct {
	// Costs is the q grid; every value yields one confusion matrix.
	Costs []float64 `toml:"costs" yaml:"costs" json:"costs"`

	// Resolution > 0 switches to the sliding distance with that offset step.
	Resolution float64 `toml:"resolution" yaml:"resolution" json:"resolution"`

	// Workers bounds the pairwise pool; 0 means GOMAXPROCS.
	Workers int `toml:"workers" yaml:"workers" json:"workers"`

	Classifier Classifier `toml:"classifier" yaml:"classifier" json:"classifier"`

	Classes []Class `toml:"classes" yaml:"classes" json:"classes"`
}

// Classifier mirrors distclust.Options plus the bias estimator of the report.
type Classifier struct {
	Exponent float64 `toml:"exponent" yaml:"exponent" json:"exponent"`
	Median   bool    `toml:"median" yaml:"median" json:"median"`
	Resample string  `toml:"resample" yaml:"resample" json:"resample"`
	Trump    bool    `toml:"trump" yaml:"trump" json:"trump"`
	Seed     int64   `toml:"seed" yaml:"seed" json:"seed"`
	Bias     string  `toml:"bias" yaml:"bias" json:"bias"`
}

// Class is one stimulus class and its trials.
type Class struct {
	Name   string      `toml:"name" yaml:"name" json:"name"`
	Trains [][]float64 `toml:"trains" yaml:"trains" json:"trains"`
}

// DefaultJob returns the values a job file starts from.
// Fields absent from the file keep these.
func DefaultJob() *Job {
	return &Job{
		Classifier: Classifier{
			Exponent: distclust.DefaultExponent,
			Resample: distclust.ResampleNone.String(),
			Trump:    true,
			Bias:     entropy.Jackknife.String(),
		},
	}
}

// ApplyDefaults fills derived defaults after decoding.
func (j *Job) ApplyDefaults() {
	for i := range j.Classes {
		if j.Classes[i].Name == "" {
			j.Classes[i].Name = fmt.Sprintf("class-%d", i)
		}
	}
}

// Trains flattens the classes into one train list in class-block order and
// returns the per-class sizes alongside.
func (j *Job) Trains() ([][]float64, []int) {
	var trains [][]float64
	nsam := make([]int, len(j.Classes))
	for c, cl := range j.Classes {
		trains = append(trains, cl.Trains...)
		nsam[c] = len(cl.Trains)
	}

	return trains, nsam
}

// ClassifierOptions converts the classifier section to distclust options.
func (j *Job) ClassifierOptions() ([]distclust.Option, error) {
	mode, err := distclust.ParseResample(j.Classifier.Resample)
	if err != nil {
		return nil, err
	}
	opts := []distclust.Option{
		distclust.WithExponent(j.Classifier.Exponent),
		distclust.WithResample(mode),
		distclust.WithTrump(j.Classifier.Trump),
		distclust.WithSeed(j.Classifier.Seed),
	}
	if j.Classifier.Median {
		opts = append(opts, distclust.WithMedian())
	}

	return opts, nil
}

// BiasEstimator parses the classifier bias name.
func (j *Job) BiasEstimator() (entropy.BiasEstimator, error) {
	return entropy.ParseBiasEstimator(j.Classifier.Bias)
}

// Names returns the class names in block order.
func (j *Job) Names() []string {
	names := make([]string, len(j.Classes))
	for i, c := range j.Classes {
		names[i] = c.Name
	}

	return names
}
