// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the reductions and tensor slicing
// used on the decoding path, with deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/metricspace/matrix"
)

// benchSizes are the matrix orders to benchmark.
var benchSizes = []int{64, 256}

// sinks to defeat dead-code elimination
var (
	sinkD *matrix.Dense
	sinkV []float64
)

func randomDense(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(int64(n)))
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err = m.Set(i, j, rng.Float64()); err != nil {
				b.Fatal(err)
			}
		}
	}
	return m
}

func BenchmarkRowSums(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := randomDense(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkV, _ = matrix.RowSums(m)
			}
		})
	}
}

func BenchmarkInduced(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := randomDense(b, n)
			idx := rand.New(rand.NewSource(1)).Perm(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkD, _ = m.Induced(idx, idx)
			}
		})
	}
}

func BenchmarkTensorPlane(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			ts, err := matrix.NewTensor(n, n, 8)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkD, _ = ts.Plane(i % 8)
			}
		})
	}
}
