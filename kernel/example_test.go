// SPDX-License-Identifier: MIT
package kernel_test

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/graphkernels/cluster"
	"github.com/katalvlaran/graphkernels/kernel"
	"github.com/katalvlaran/graphkernels/matrix"
)

func ExampleCompute() {
	A, _ := matrix.NewDenseFromRows([][]float64{{0, 1}, {1, 0}})
	H, _ := kernel.Compute(kernel.Forest, A, 1)
	fmt.Printf("%.4f %.4f\n", must(H.At(0, 0)), must(H.At(0, 1)))
	// Output:
	// 0.6667 0.3333
}

func ExamplePipeline_Sweep() {
	adj, _ := matrix.NewAdjacencyFromEdges(nil, []matrix.Edge{
		{From: "a", To: "b"}, {From: "b", To: "c"}, {From: "a", To: "c"},
		{From: "d", To: "e"}, {From: "e", To: "f"}, {From: "d", To: "f"},
	})
	p, _ := kernel.NewDefaultPipeline(kernel.Forest, adj.Mat)
	ward := cluster.NewKernelWard(2)

	for step, err := range p.Sweep(adj.Mat, slices.Values([]float64{0.25, 0.5})) {
		if err != nil {
			fmt.Println(err)
			continue
		}
		labels, _ := ward.Predict(step.K)
		fmt.Printf("param=%.2f t=%.4f labels=%v\n", step.Param, step.Scaled, labels)
	}
	// Output:
	// param=0.25 t=0.1667 labels=[0 0 0 1 1 1]
	// param=0.50 t=0.5000 labels=[0 0 0 1 1 1]
}

func must(v float64, err error) float64 {
	if err != nil {
		panic(err)
	}

	return v
}
