// SPDX-License-Identifier: MIT

package cluster

import "math"

const opWard = "Ward"

// Ward performs agglomerative clustering with Ward linkage until k clusters
// remain and returns one label per observation.
//
// Merge costs start as squared Euclidean distances between observations and are
// updated with the Lance–Williams recurrence for Ward:
//
//	d(k, i∪j) = ((nᵢ+nₖ)·d(k,i) + (nⱼ+nₖ)·d(k,j) − nₖ·d(i,j)) / (nᵢ+nⱼ+nₖ)
//
// The cheapest pair is merged at each step; ties go to the pair found first in
// row-major order. Labels are numbered by first appearance in observation order.
//
// Complexity: O(n³) time, O(n²) memory.
func Ward(points [][]float64, k int) ([]int, error) {
	if err := validatePoints(opWard, points, k); err != nil {
		return nil, err
	}
	n := len(points)

	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := 0; j < i; j++ {
			d := sqDist(points[i], points[j])
			dist[i][j], dist[j][i] = d, d
		}
	}

	size := make([]int, n)
	active := make([]bool, n)
	owner := make([]int, n) // observation -> representative cluster
	for i := range size {
		size[i], active[i], owner[i] = 1, true, i
	}

	for remaining := n; remaining > k; remaining-- {
		bi, bj := -1, -1
		best := math.Inf(1)
		for i := 0; i < n; i++ {
			if !active[i] {
				continue
			}
			for j := i + 1; j < n; j++ {
				if active[j] && dist[i][j] < best {
					bi, bj, best = i, j, dist[i][j]
				}
			}
		}

		ni, nj := float64(size[bi]), float64(size[bj])
		for m := 0; m < n; m++ {
			if !active[m] || m == bi || m == bj {
				continue
			}
			nm := float64(size[m])
			d := ((ni+nm)*dist[m][bi] + (nj+nm)*dist[m][bj] - nm*best) / (ni + nj + nm)
			dist[m][bi], dist[bi][m] = d, d
		}
		size[bi] += size[bj]
		active[bj] = false
		for o := range owner {
			if owner[o] == bj {
				owner[o] = bi
			}
		}
	}

	return renumberByFirstAppearance(owner), nil
}
