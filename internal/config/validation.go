// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/metricspace/distclust"
	"github.com/katalvlaran/metricspace/entropy"
)

// ValidationError represents a job validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the semantic rules the schema cannot express.
func (j *Job) Validate() error {
	var errs ValidationErrors

	if len(j.Costs) == 0 {
		errs = append(errs, ValidationError{Field: "costs", Message: "at least one cost is required"})
	}
	for i, q := range j.Costs {
		if math.IsNaN(q) || q < 0 {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("costs[%d]", i),
				Message: fmt.Sprintf("must be >= 0, got %g", q),
			})
		}
	}

	if math.IsNaN(j.Resolution) || j.Resolution < 0 {
		errs = append(errs, ValidationError{Field: "resolution", Message: "must be >= 0"})
	}
	if j.Workers < 0 {
		errs = append(errs, ValidationError{Field: "workers", Message: "must be >= 0"})
	}

	errs = append(errs, validateClassifier(&j.Classifier)...)
	errs = append(errs, validateClasses(j.Classes)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateClassifier(c *Classifier) ValidationErrors {
	var errs ValidationErrors

	mode, err := distclust.ParseResample(c.Resample)
	if err != nil {
		errs = append(errs, ValidationError{Field: "classifier.resample", Message: err.Error()})
	}
	if c.Trump && mode == distclust.ResampleBootstrap {
		errs = append(errs, ValidationError{
			Field:   "classifier.trump",
			Message: "cannot be combined with bootstrap resampling",
		})
	}
	if math.IsNaN(c.Exponent) || math.IsInf(c.Exponent, 0) {
		errs = append(errs, ValidationError{Field: "classifier.exponent", Message: "must be finite"})
	}
	if _, err = entropy.ParseBiasEstimator(c.Bias); err != nil {
		errs = append(errs, ValidationError{Field: "classifier.bias", Message: err.Error()})
	}

	return errs
}

func validateClasses(classes []Class) ValidationErrors {
	var errs ValidationErrors

	if len(classes) == 0 {
		return append(errs, ValidationError{Field: "classes", Message: "at least one class is required"})
	}

	total := 0
	for c, cl := range classes {
		if len(cl.Trains) == 0 {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("classes[%d]", c),
				Message: "class has no trains",
			})
		}
		total += len(cl.Trains)
		for i, train := range cl.Trains {
			for k, t := range train {
				if math.IsNaN(t) || math.IsInf(t, 0) {
					errs = append(errs, ValidationError{
						Field:   fmt.Sprintf("classes[%d].trains[%d][%d]", c, i, k),
						Message: "spike time must be finite",
					})
				}
			}
		}
	}
	if total < 2 {
		errs = append(errs, ValidationError{Field: "classes", Message: "at least two trains are required"})
	}

	return errs
}
