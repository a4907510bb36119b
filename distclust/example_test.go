// SPDX-License-Identifier: MIT
package distclust_test

import (
	"fmt"

	"github.com/katalvlaran/metricspace/distclust"
	"github.com/katalvlaran/metricspace/matrix"
)

// ExampleClassify decodes two well-separated classes of three samples each.
func ExampleClassify() {
	dists, _ := matrix.NewDenseFrom([][]float64{
		{0, 1, 1, 4, 4, 4},
		{1, 0, 1, 4, 4, 4},
		{1, 1, 0, 4, 4, 4},
		{4, 4, 4, 0, 2, 2},
		{4, 4, 4, 2, 0, 2},
		{4, 4, 4, 2, 2, 0},
	})
	conf, err := distclust.Classify(dists, []int{3, 3})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(conf.Counts())
	fmt.Printf("correct=%.2f\n", conf.Correct())
	// Output:
	// [[3 0] [0 3]]
	// correct=1.00
}
