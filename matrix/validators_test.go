// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/metricspace/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSameShape covers matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) matrix.Matrix {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateDistanceMatrix walks the composite validator through each failure stage.
func TestValidateDistanceMatrix(t *testing.T) {
	t.Parallel()

	var nilDense *matrix.Dense
	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil interface", nil, matrix.ErrNilMatrix},
		{"nil dense", nilDense, matrix.ErrNilMatrix},
		{"non-square", mustDense(t, [][]float64{{0, 1, 2}, {1, 0, 3}}), matrix.ErrNonSquare},
		{"negative", mustDense(t, [][]float64{{0, -1}, {1, 0}}), matrix.ErrNegativeEntry},
		{"diagonal", mustDense(t, [][]float64{{0, 1}, {1, 0.5}}), matrix.ErrNonZeroDiagonal},
		{"ok with inf", mustDense(t, [][]float64{{0, math.Inf(1)}, {math.Inf(1), 0}}), nil},
		{"ok via interface", hide{mustDense(t, [][]float64{{0, 2}, {2, 0}})}, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateDistanceMatrix(tc.m, 0)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestValidateSymmetric checks tolerance handling and matching infinities.
func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	sym := mustDense(t, [][]float64{{0, 1, math.Inf(1)}, {1, 0, 2}, {math.Inf(1), 2, 0}})
	require.NoError(t, matrix.ValidateSymmetric(sym, 0))

	near := mustDense(t, [][]float64{{0, 1}, {1 + 1e-13, 0}})
	require.NoError(t, matrix.ValidateSymmetric(near, 1e-12))
	require.ErrorIs(t, matrix.ValidateSymmetric(near, 0), matrix.ErrAsymmetry)
}
