// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/graphkernels/matrix"
)

// validatePoints checks the observation set shared by KMeans and Ward:
// at least one row, equal row lengths, finite values, and 1 ≤ k ≤ n.
func validatePoints(op string, points [][]float64, k int) error {
	n := len(points)
	if n == 0 || len(points[0]) == 0 {
		return clusterErrorf(op, ErrEmptyInput)
	}
	if k <= 0 || k > n {
		return clusterErrorf(op, fmt.Errorf("k=%d for %d observations: %w", k, n, ErrInvalidClusterCount))
	}
	dim := len(points[0])
	for i, p := range points {
		if len(p) != dim {
			return clusterErrorf(op, fmt.Errorf("row %d: %w", i, matrix.ErrRaggedRows))
		}
		if floats.HasNaN(p) || math.IsInf(floats.Min(p), -1) || math.IsInf(floats.Max(p), 1) {
			return clusterErrorf(op, fmt.Errorf("row %d: %w", i, matrix.ErrNaNInf))
		}
	}

	return nil
}

// sqDist returns the squared Euclidean distance between a and b.
func sqDist(a, b []float64) float64 {
	d := floats.Distance(a, b, 2)

	return d * d
}

// renumberByFirstAppearance relabels so that labels appear as 0,1,2,... in
// observation order.
func renumberByFirstAppearance(labels []int) []int {
	mapping := make(map[int]int, len(labels))
	out := make([]int, len(labels))
	for i, l := range labels {
		id, ok := mapping[l]
		if !ok {
			id = len(mapping)
			mapping[l] = id
		}
		out[i] = id
	}

	return out
}
