// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/metricspace/distclust"
	"github.com/katalvlaran/metricspace/entropy"
	"github.com/katalvlaran/metricspace/internal/config"
	"github.com/katalvlaran/metricspace/matrix"
	"github.com/katalvlaran/metricspace/spkd"
)

// Report is the JSON document written by the command.
type Report struct {
	Classes    []string `json:"classes"`
	Nsam       []int    `json:"nsam"`
	Sliding    bool     `json:"sliding"`
	Resolution float64  `json:"resolution,omitempty"`
	Bias       string   `json:"bias"`
	Results    []Result `json:"results"`
}

// Result holds the decoding outcome for one cost value.
type Result struct {
	Q               float64 `json:"q"`
	Confusion       [][]int `json:"confusion"`
	FractionCorrect float64 `json:"fraction_correct"`
	Info            float64 `json:"info"`
	InfoBias        float64 `json:"info_bias"`
	InfoDebiased    float64 `json:"info_debiased"`
}

// analyze runs the distance → confusion → information pipeline of job.
func analyze(job *config.Job, logger *slog.Logger) (*Report, error) {
	trains, nsam := job.Trains()

	clsOpts, err := job.ClassifierOptions()
	if err != nil {
		return nil, err
	}
	clsOpts = append(clsOpts, distclust.WithLogger(logger))
	est, err := job.BiasEstimator()
	if err != nil {
		return nil, err
	}

	tensor, err := distances(job, trains, logger)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Classes:    job.Names(),
		Nsam:       nsam,
		Sliding:    job.Resolution > 0,
		Resolution: job.Resolution,
		Bias:       est.String(),
		Results:    make([]Result, 0, len(job.Costs)),
	}

	for k, q := range job.Costs {
		res, err := decode(tensor, k, nsam, clsOpts, est)
		if err != nil {
			return nil, fmt.Errorf("q=%g: %w", q, err)
		}
		res.Q = q
		report.Results = append(report.Results, res)
		logger.Debug("cost decoded", "q", q, "correct", res.FractionCorrect, "info", res.Info)
	}

	return report, nil
}

// distances builds the N×N×M tensor, sliding when the job sets a resolution.
func distances(job *config.Job, trains [][]float64, logger *slog.Logger) (*matrix.Tensor, error) {
	opts := []spkd.Option{spkd.WithWorkers(job.Workers), spkd.WithLogger(logger)}
	if job.Resolution > 0 {
		opts = append(opts, spkd.WithResolution(job.Resolution))
		return spkd.SlidingPairwise(trains, job.Costs, opts...)
	}

	return spkd.Pairwise(trains, job.Costs, opts...)
}

// decode classifies plane k of tensor and measures the information in the
// integer confusion matrix.
func decode(tensor *matrix.Tensor, k int, nsam []int, opts []distclust.Option,
	est entropy.BiasEstimator) (Result, error) {
	plane, err := tensor.Plane(k)
	if err != nil {
		return Result{}, err
	}
	conf, err := distclust.Classify(plane, nsam, opts...)
	if err != nil {
		return Result{}, err
	}

	counts := conf.Counts()
	table, err := countsTable(counts)
	if err != nil {
		return Result{}, err
	}
	info, err := entropy.TableInfo(table)
	if err != nil {
		return Result{}, err
	}
	bias, err := entropy.TableBias(table, est)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Confusion:       counts,
		FractionCorrect: conf.Correct(),
		Info:            info,
		InfoBias:        bias,
		InfoDebiased:    info + bias,
	}, nil
}

// countsTable converts integer counts to a *matrix.Dense.
func countsTable(counts [][]int) (*matrix.Dense, error) {
	rows := make([][]float64, len(counts))
	for i, row := range counts {
		rows[i] = make([]float64, len(row))
		for j, v := range row {
			rows[i][j] = float64(v)
		}
	}

	return matrix.NewDenseFrom(rows)
}
