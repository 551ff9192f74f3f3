// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/graphkernels/matrix"
)

const opAdjustedRandIndex = "AdjustedRandIndex"

// AdjustedRandIndex compares two labelings of the same observations.
// It is 1 for identical partitions (up to renaming), close to 0 for
// independent ones, and may be negative. Label values are arbitrary.
//
// Degenerate inputs where the chance-corrected range is empty (both labelings
// a single cluster, or both all singletons) score 1.
//
// Errors: ErrEmptyInput, matrix.ErrDimensionMismatch.
//
// Complexity: O(n) time, O(k₁·k₂) space for the contingency table.
func AdjustedRandIndex(truth, pred []int) (float64, error) {
	if len(truth) == 0 {
		return 0, clusterErrorf(opAdjustedRandIndex, ErrEmptyInput)
	}
	if len(truth) != len(pred) {
		return 0, clusterErrorf(opAdjustedRandIndex,
			fmt.Errorf("%d vs %d labels: %w", len(truth), len(pred), matrix.ErrDimensionMismatch))
	}

	type cell struct{ a, b int }
	table := make(map[cell]int)
	rows := make(map[int]int)
	cols := make(map[int]int)
	for i := range truth {
		table[cell{truth[i], pred[i]}]++
		rows[truth[i]]++
		cols[pred[i]]++
	}

	index := 0.0
	for _, n := range table {
		index += pairs(n)
	}
	sumRows, sumCols := 0.0, 0.0
	for _, n := range rows {
		sumRows += pairs(n)
	}
	for _, n := range cols {
		sumCols += pairs(n)
	}

	expected := 0.0
	if total := pairs(len(truth)); total > 0 {
		expected = sumRows * sumCols / total
	}
	maxIndex := (sumRows + sumCols) / 2
	if maxIndex == expected {
		return 1, nil
	}

	return (index - expected) / (maxIndex - expected), nil
}

// pairs is n choose 2.
func pairs(n int) float64 {
	if n < 2 {
		return 0
	}

	return float64(combin.Binomial(n, 2))
}
