// SPDX-License-Identifier: MIT
package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/metricspace/distclust"
	"github.com/katalvlaran/metricspace/entropy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlJob = `
costs = [0, 1, 10]
workers = 2

[[classes]]
name = "stim-A"
trains = [[0.1, 0.25], [0.12, 0.3]]

[[classes]]
trains = [[0.6], [0.61, 0.9], []]
`

const yamlJob = `
costs: [0, 5]
resolution: 0.01
classifier:
  exponent: 0
  trump: false
  resample: relabel
  seed: 9
  bias: treves-panzeri
classes:
  - name: a
    trains: [[0.1, 0.2], [0.15]]
  - trains: [[0.5]]
`

const jsonJob = `{
  "costs": [2],
  "classifier": {"median": true, "bias": "treves-panzeri-all"},
  "classes": [{"trains": [[1], [2]]}]
}`

func writeJob(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_TOMLDefaults(t *testing.T) {
	job, err := Load(writeJob(t, "job.toml", tomlJob))
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 1, 10}, job.Costs)
	assert.Equal(t, 2, job.Workers)
	assert.Equal(t, 0.0, job.Resolution)
	assert.Equal(t, distclust.DefaultExponent, job.Classifier.Exponent)
	assert.True(t, job.Classifier.Trump)
	assert.Equal(t, "none", job.Classifier.Resample)
	assert.Equal(t, []string{"stim-A", "class-1"}, job.Names())

	trains, nsam := job.Trains()
	assert.Equal(t, []int{2, 3}, nsam)
	require.Len(t, trains, 5)
	assert.Equal(t, []float64{0.6}, trains[2])
	assert.Empty(t, trains[4])

	est, err := job.BiasEstimator()
	require.NoError(t, err)
	assert.Equal(t, entropy.Jackknife, est)
}

func TestLoad_YAMLOverrides(t *testing.T) {
	job, err := Load(writeJob(t, "job.yaml", yamlJob))
	require.NoError(t, err)

	assert.Equal(t, 0.01, job.Resolution)
	assert.Equal(t, 0.0, job.Classifier.Exponent)
	assert.False(t, job.Classifier.Trump)
	assert.Equal(t, int64(9), job.Classifier.Seed)

	opts, err := job.ClassifierOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 4)

	est, err := job.BiasEstimator()
	require.NoError(t, err)
	assert.Equal(t, entropy.TrevesPanzeri, est)
}

func TestLoad_JSON(t *testing.T) {
	job, err := Load(writeJob(t, "job.json", jsonJob))
	require.NoError(t, err)

	assert.True(t, job.Classifier.Median)
	opts, err := job.ClassifierOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 5, "median adds an option")
}

func TestLoad_AutoDetect(t *testing.T) {
	for name, body := range map[string]string{"toml": tomlJob, "yaml": yamlJob, "json": jsonJob} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeJob(t, "analysis.job", body))
			assert.NoError(t, err)
		})
	}
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatTOML, FormatFor("a.TOML"))
	assert.Equal(t, FormatYAML, FormatFor("a.yml"))
	assert.Equal(t, FormatJSON, FormatFor("dir/a.json"))
	assert.Equal(t, FormatAuto, FormatFor("a"))
}

func TestParse_SchemaRejects(t *testing.T) {
	cases := map[string]string{
		"unknown field":   `{"costs": [1], "cost": 2, "classes": [{"trains": [[1], [2]]}]}`,
		"negative cost":   `{"costs": [-1], "classes": [{"trains": [[1], [2]]}]}`,
		"missing classes": `{"costs": [1]}`,
		"bad resample":    `{"costs": [1], "classifier": {"resample": "shuffle"}, "classes": [{"trains": [[1], [2]]}]}`,
		"string spike":    `{"costs": [1], "classes": [{"trains": [["a"], [2]]}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(body), FormatJSON)
			assert.ErrorIs(t, err, ErrSchema)
		})
	}
}

func TestParse_SemanticRejects(t *testing.T) {
	cases := map[string]struct {
		body  string
		field string
	}{
		"trump with bootstrap": {
			`{"costs": [1], "classifier": {"resample": "bootstrap"}, "classes": [{"trains": [[1], [2]]}]}`,
			"classifier.trump",
		},
		"single train": {
			`{"costs": [1], "classes": [{"trains": [[1]]}]}`,
			"classes",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tc.body), FormatJSON)
			require.Error(t, err)

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs))
			require.NotEmpty(t, verrs)
			assert.Equal(t, tc.field, verrs[0].Field)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeJob(t, "broken.toml", "costs = ["))
	assert.Error(t, err)

	_, err = Parse([]byte("\x00\x01"), FormatAuto)
	assert.Error(t, err)
}
