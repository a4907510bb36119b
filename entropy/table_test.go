// SPDX-License-Identifier: MIT
package entropy_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/metricspace/entropy"
	"github.com/katalvlaran/metricspace/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)
	return m
}

// TestTableInfo_Extremes: a diagonal table carries log2(K) bits, an outer
// product carries none.
func TestTableInfo_Extremes(t *testing.T) {
	info, err := entropy.TableInfo(mustDense(t, [][]float64{{5, 0, 0}, {0, 5, 0}, {0, 0, 5}}))
	require.NoError(t, err)
	assert.InDelta(t, math.Log2(3), info, 1e-12)

	info, err = entropy.TableInfo(mustDense(t, [][]float64{{1, 2}, {2, 4}}))
	require.NoError(t, err)
	assert.InDelta(t, 0.0, info, 1e-12)

	info, err = entropy.TableInfo(mustDense(t, [][]float64{{0, 0}, {0, 0}}))
	require.NoError(t, err)
	assert.Equal(t, 0.0, info)
}

// TestTableBias_JackknifeCombinesMargins: b(rows) + b(cols) − b(joint).
func TestTableBias_JackknifeCombinesMargins(t *testing.T) {
	table := mustDense(t, [][]float64{{3, 1, 0}, {0, 2, 2}})

	br, _ := entropy.JackknifeBias([]float64{4, 4})
	bc, _ := entropy.JackknifeBias([]float64{3, 3, 2})
	bj, _ := entropy.JackknifeBias([]float64{3, 1, 0, 0, 2, 2})

	got, err := entropy.TableBias(table, entropy.Jackknife)
	require.NoError(t, err)
	assert.InDelta(t, br+bc-bj, got, 1e-12)
}

// TestTableTPBias_Prunes: empty rows and columns change nothing, even when
// every bin is counted.
func TestTableTPBias_Prunes(t *testing.T) {
	padded := mustDense(t, [][]float64{{2, 0, 1}, {0, 0, 0}, {1, 0, 3}})
	compact := mustDense(t, [][]float64{{2, 1}, {1, 3}})
	want := -1 / (14 * math.Ln2) // (1 + 1 − 3) / (2·7·ln2)

	for _, useAll := range []bool{false, true} {
		p, err := entropy.TableTPBias(padded, useAll)
		require.NoError(t, err)
		c, err := entropy.TableTPBias(compact, useAll)
		require.NoError(t, err)
		assert.InDelta(t, want, p, 1e-15, "useAll=%v", useAll)
		assert.InDelta(t, c, p, 1e-15)
	}
}

// TestTableTPBias_UseAllCountsEmptyCells inside the pruned table.
func TestTableTPBias_UseAllCountsEmptyCells(t *testing.T) {
	table := mustDense(t, [][]float64{{2, 0}, {1, 3}})

	occupied, err := entropy.TableTPBias(table, false)
	require.NoError(t, err)
	assert.InDelta(t, (1+1-2)/(12*math.Ln2), occupied, 1e-15)

	all, err := entropy.TableTPBias(table, true)
	require.NoError(t, err)
	assert.InDelta(t, (1+1-3)/(12*math.Ln2), all, 1e-15)

	zero, err := entropy.TableTPBias(mustDense(t, [][]float64{{0, 0}}), true)
	require.NoError(t, err)
	assert.Equal(t, 0.0, zero)
}

// TestTableBias_TPDelegates and TableInfoDebiased adds the correction.
func TestTableBias_TPDelegates(t *testing.T) {
	table := mustDense(t, [][]float64{{4, 1}, {0, 5}})

	tp, _ := entropy.TableTPBias(table, false)
	got, err := entropy.TableBias(table, entropy.TrevesPanzeri)
	require.NoError(t, err)
	assert.Equal(t, tp, got)

	info, _ := entropy.TableInfo(table)
	deb, err := entropy.TableInfoDebiased(table, entropy.TrevesPanzeri)
	require.NoError(t, err)
	assert.InDelta(t, info+tp, deb, 1e-15)

	_, err = entropy.TableBias(table, entropy.BiasEstimator(-1))
	assert.ErrorIs(t, err, entropy.ErrUnknownEstimator)
}

// TestTable_Validation covers nil, negative and infinite tables.
func TestTable_Validation(t *testing.T) {
	_, err := entropy.TableInfo(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	neg := mustDense(t, [][]float64{{1, -2}})
	_, err = entropy.TableInfo(neg)
	assert.ErrorIs(t, err, entropy.ErrNegativeCount)
	_, err = entropy.TableBias(neg, entropy.Jackknife)
	assert.ErrorIs(t, err, entropy.ErrNegativeCount)
	_, err = entropy.TableTPBias(neg, true)
	assert.ErrorIs(t, err, entropy.ErrNegativeCount)

	inf := mustDense(t, [][]float64{{1, math.Inf(1)}})
	_, err = entropy.TableInfoDebiased(inf, entropy.Jackknife)
	assert.ErrorIs(t, err, entropy.ErrBadValue)
}
