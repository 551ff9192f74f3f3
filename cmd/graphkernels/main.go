// SPDX-License-Identifier: MIT

// Command graphkernels clusters the vertices of a graph with graph kernels.
//
//	graphkernels run --config run.yaml
//	graphkernels transform --config run.yaml --stage laplacian
//	graphkernels scale --kind fraction 0.1 0.5 0.9
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
