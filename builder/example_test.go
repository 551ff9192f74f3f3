// SPDX-License-Identifier: MIT
package builder_test

import (
	"fmt"

	"github.com/katalvlaran/graphkernels/builder"
)

func ExamplePlantedPartition() {
	g, err := builder.BuildGraph(nil, builder.PlantedPartition([]int{3, 3}, 1, 0))
	if err != nil {
		fmt.Println(err)
		return
	}
	truth, _ := g.GroundTruth()
	fmt.Println(len(g.Vertices), len(g.Edges), truth)
	// Output:
	// 6 6 [0 0 0 1 1 1]
}
