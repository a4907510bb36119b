// SPDX-License-Identifier: MIT
package spkd_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/metricspace/spkd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomTrain returns n sorted spike times in [0, span) drawn from rng.
func randomTrain(rng *rand.Rand, n int, span float64) []float64 {
	out := make([]float64, n)
	t := 0.0
	for i := range out {
		t += rng.Float64() * span / float64(n)
		out[i] = t
	}
	return out
}

// TestDistance_HandTraced encodes A=[1,2], B=[1.5], Q=[0,1] with the DP traced by hand:
//
//	q=0: D[1][1]=0,   D[2][1]=min(0+1, 2+1, 1+0)     = 1
//	q=1: D[1][1]=0.5, D[2][1]=min(0.5+1, 2+1, 1+0.5) = 1.5
//
// Matching is never cheaper than 1 deletion plus one 0.5 shift when q=1.
func TestDistance_HandTraced(t *testing.T) {
	d, err := spkd.Distance([]float64{1.0, 2.0}, []float64{1.5}, []float64{0.0, 1.0})
	require.NoError(t, err)
	assert.Equal(t, []float64{1.0, 1.5}, d)
}

// TestDistance_EmptyTrain verifies the pure-insertion base case for every cost.
func TestDistance_EmptyTrain(t *testing.T) {
	costs := []float64{0, 1, 10, math.Inf(1)}
	b := []float64{0.1, 0.2, 0.7}

	d, err := spkd.Distance(nil, b, costs)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 3, 3, 3}, d, "empty A costs |B| insertions")

	d, err = spkd.Distance(b, []float64{}, costs)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 3, 3, 3}, d, "empty B costs |A| deletions")

	d, err = spkd.Distance(nil, nil, costs)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, d)
}

// TestDistance_ZeroCost checks the count-only degeneracy |len(A) − len(B)|.
func TestDistance_ZeroCost(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 6; n++ {
		for m := 0; m < 6; m++ {
			a := randomTrain(rng, n, 2)
			b := randomTrain(rng, m, 2)
			d, err := spkd.Distance(a, b, []float64{0})
			require.NoError(t, err)
			assert.Equal(t, math.Abs(float64(n-m)), d[0], "n=%d m=%d", n, m)
		}
	}
}

// TestDistance_InfiniteCost ensures q=+Inf matches only coincident spikes and never yields NaN.
func TestDistance_InfiniteCost(t *testing.T) {
	d, err := spkd.Distance([]float64{1, 2}, []float64{1, 3}, []float64{math.Inf(1)})
	require.NoError(t, err)
	require.False(t, math.IsNaN(d[0]))
	assert.Equal(t, 2.0, d[0], "1↔1 free, 2 deleted, 3 inserted")

	d, err = spkd.Distance([]float64{1, 2}, []float64{1, 2}, []float64{math.Inf(1)})
	require.NoError(t, err)
	assert.Equal(t, 0.0, d[0])
}

// TestDistance_LargeCostSaturates: a shift dearer than 2 is replaced by delete+insert.
func TestDistance_LargeCostSaturates(t *testing.T) {
	d, err := spkd.Distance([]float64{0}, []float64{0.5}, []float64{1, 4, 1e9})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 2, 2}, d)
}

// TestDistance_VectorizedMatchesScalar compares the one-pass vector result with
// per-cost evaluations, and checks symmetry and monotonicity in q.
func TestDistance_VectorizedMatchesScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	costs := []float64{0, 0.5, 1, 2, 8, 64, math.Inf(1)}

	for trial := 0; trial < 25; trial++ {
		a := randomTrain(rng, rng.Intn(9), 1)
		b := randomTrain(rng, rng.Intn(9), 1)

		vec, err := spkd.Distance(a, b, costs)
		require.NoError(t, err)
		rev, err := spkd.Distance(b, a, costs)
		require.NoError(t, err)

		for k, q := range costs {
			one, err := spkd.Distance(a, b, []float64{q})
			require.NoError(t, err)
			assert.Equal(t, one[0], vec[k], "q=%g", q)
			assert.InDelta(t, vec[k], rev[k], 1e-12, "symmetry at q=%g", q)
			if k > 0 {
				assert.GreaterOrEqual(t, vec[k], vec[k-1], "non-decreasing in q")
			}
			assert.LessOrEqual(t, vec[k], float64(len(a)+len(b)))
		}
	}
}

// TestDistance_Validation covers every input sentinel.
func TestDistance_Validation(t *testing.T) {
	tests := []struct {
		name  string
		a, b  []float64
		costs []float64
		want  error
	}{
		{"no costs", []float64{1}, []float64{1}, nil, spkd.ErrNoCosts},
		{"negative cost", []float64{1}, []float64{1}, []float64{1, -0.1}, spkd.ErrNegativeCost},
		{"nan cost", []float64{1}, []float64{1}, []float64{math.NaN()}, spkd.ErrBadCost},
		{"nan spike", []float64{math.NaN()}, []float64{1}, []float64{1}, spkd.ErrBadSpikeTime},
		{"inf spike", []float64{1}, []float64{math.Inf(-1)}, []float64{1}, spkd.ErrBadSpikeTime},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := spkd.Distance(tc.a, tc.b, tc.costs)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, d)
		})
	}
}
