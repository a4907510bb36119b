// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/metricspace/matrix"
)

// ExampleTensor fills one [i,j,:] fiber and mirrors it, the way pairwise
// distance tensors are built.
func ExampleTensor() {
	ts, _ := matrix.NewTensor(2, 2, 3)

	f01, _ := ts.Fiber(0, 1)
	copy(f01, []float64{1, 2, 3})
	f10, _ := ts.Fiber(1, 0)
	copy(f10, f01)

	plane, _ := ts.Plane(2)
	fmt.Print(plane)
	// Output:
	// [0, 3]
	// [3, 0]
}

// ExampleNormalizeRowsL1 turns a confusion matrix into P(decoded | true).
func ExampleNormalizeRowsL1() {
	conf, _ := matrix.NewDenseFrom([][]float64{{3, 1}, {0, 4}})
	p, norms, _ := matrix.NormalizeRowsL1(conf)
	fmt.Print(p)
	fmt.Println(norms)
	// Output:
	// [0.75, 0.25]
	// [0, 1]
	// [4 4]
}
