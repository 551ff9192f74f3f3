// SPDX-License-Identifier: MIT
package cluster_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkernels/cluster"
)

func nan() float64 { return math.NaN() }
func inf() float64 { return math.Inf(1) }

func TestWard(t *testing.T) {
	tests := []struct {
		name   string
		points [][]float64
		k      int
		want   []int
	}{
		{"three groups", [][]float64{{0}, {1}, {10}, {11}, {20}}, 3, []int{0, 0, 1, 1, 2}},
		{"tie goes to first pair", [][]float64{{0}, {1}, {10}, {11}}, 3, []int{0, 0, 1, 2}},
		{"closest pair first", [][]float64{{0}, {2}, {3}}, 2, []int{0, 1, 1}},
		{"labels by first appearance", [][]float64{{10}, {0}, {11}, {1}}, 2, []int{0, 1, 0, 1}},
		{"single cluster", [][]float64{{0, 1}, {5, 5}, {9, 2}}, 1, []int{0, 0, 0}},
		{"one per point", [][]float64{{0}, {4}, {8}}, 3, []int{0, 1, 2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := cluster.Ward(tc.points, tc.k)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestWardSeparatedBlobs(t *testing.T) {
	points := blobs([][]float64{{0, 0}, {8, 0}, {4, 8}}, 5, 3)
	got, err := cluster.Ward(points, 3)
	require.NoError(t, err)
	requireBlockLabels(t, got, 3, 5)
	assert.Equal(t, 0, got[0])
}

func TestWardErrors(t *testing.T) {
	_, err := cluster.Ward(nil, 1)
	require.ErrorIs(t, err, cluster.ErrEmptyInput)

	_, err = cluster.Ward([][]float64{{1}, {2}}, 0)
	require.ErrorIs(t, err, cluster.ErrInvalidClusterCount)

	_, err = cluster.Ward([][]float64{{1}, {nan()}}, 1)
	require.Error(t, err)
}
