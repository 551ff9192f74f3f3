// SPDX-License-Identifier: MIT

package cluster

import (
	"math"
	"math/rand"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const opKMeans = "KMeans"

// KMeansResult is the outcome of the best k-means restart.
type KMeansResult struct {
	// Labels[i] is the cluster of observation i, in [0, k).
	Labels []int

	// Centroids holds k rows of the observation dimension.
	Centroids [][]float64

	// Inertia is the sum of squared distances to the assigned centroids.
	Inertia float64

	// Iterations is the number of Lloyd iterations of the winning restart.
	Iterations int
}

// KMeans partitions points into k clusters.
//
// Implementation:
//   - Stage 1: Validate points (non-empty, rectangular, finite) and 1 ≤ k ≤ n.
//   - Stage 2: For each of NInit restarts, seed centroids with k-means++
//     drawn from one RNG seeded with Seed, then run Lloyd iterations until the
//     total squared centroid shift drops to Tolerance × mean feature variance
//     or MaxIter is reached.
//   - Stage 3: Keep the restart with the strictly lowest inertia.
//
// Empty clusters are re-seeded with the observation farthest from its centroid,
// so every label in [0, k) is used whenever the data has k distinct rows.
//
// Errors: ErrEmptyInput, ErrInvalidClusterCount, matrix.ErrRaggedRows, matrix.ErrNaNInf.
//
// Complexity: O(NInit · MaxIter · n · k · d).
func KMeans(points [][]float64, k int, opts ...Option) (KMeansResult, error) {
	if err := validatePoints(opKMeans, points, k); err != nil {
		return KMeansResult{}, err
	}
	o := gatherOptions(opts...)
	rng := rand.New(rand.NewSource(o.seed))
	tol := o.tol * meanVariance(points)
	log := currentLogger()

	var best KMeansResult
	best.Inertia = math.Inf(1)
	for run := 0; run < o.nInit; run++ {
		centroids := seedPlusPlus(points, k, rng)
		res := lloyd(points, centroids, o.maxIter, tol)
		log.Debug("kmeans restart",
			zap.Int("run", run),
			zap.Int("iterations", res.Iterations),
			zap.Float64("inertia", res.Inertia))
		if res.Inertia < best.Inertia {
			best = res
		}
	}

	return best, nil
}

// seedPlusPlus picks k initial centroids: the first uniformly, each next one
// with probability proportional to its squared distance to the closest
// centroid chosen so far.
func seedPlusPlus(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	n := len(points)
	centroids := make([][]float64, 0, k)
	centroids = append(centroids, cloneRow(points[rng.Intn(n)]))

	closest := make([]float64, n)
	for i, p := range points {
		closest[i] = sqDist(p, centroids[0])
	}
	for len(centroids) < k {
		total := floats.Sum(closest)
		next := rng.Intn(n)
		if total > 0 {
			target := rng.Float64() * total
			acc := 0.0
			for i, d := range closest {
				acc += d
				if acc > target {
					next = i
					break
				}
			}
		}
		c := cloneRow(points[next])
		centroids = append(centroids, c)
		for i, p := range points {
			if d := sqDist(p, c); d < closest[i] {
				closest[i] = d
			}
		}
	}

	return centroids
}

func lloyd(points, centroids [][]float64, maxIter int, tol float64) KMeansResult {
	n, k, dim := len(points), len(centroids), len(points[0])
	labels := make([]int, n)
	counts := make([]int, k)
	next := make([][]float64, k)
	for c := range next {
		next[c] = make([]float64, dim)
	}

	iter := 0
	for iter < maxIter {
		iter++
		assign(points, centroids, labels)

		for c := range next {
			floats.Scale(0, next[c])
			counts[c] = 0
		}
		for i, p := range points {
			floats.Add(next[labels[i]], p)
			counts[labels[i]]++
		}
		for c := range next {
			if counts[c] == 0 {
				relocateEmpty(points, centroids, labels, next[c])
				continue
			}
			floats.Scale(1/float64(counts[c]), next[c])
		}

		shift := 0.0
		for c := range centroids {
			shift += sqDist(centroids[c], next[c])
			copy(centroids[c], next[c])
		}
		if shift <= tol {
			break
		}
	}
	inertia := assign(points, centroids, labels)

	return KMeansResult{Labels: labels, Centroids: centroids, Inertia: inertia, Iterations: iter}
}

// assign writes the nearest centroid of each point into labels (ties go to the
// lowest index) and returns the resulting inertia.
func assign(points, centroids [][]float64, labels []int) float64 {
	inertia := 0.0
	for i, p := range points {
		bestC, bestD := 0, math.Inf(1)
		for c, centroid := range centroids {
			if d := sqDist(p, centroid); d < bestD {
				bestC, bestD = c, d
			}
		}
		labels[i] = bestC
		inertia += bestD
	}

	return inertia
}

// relocateEmpty moves an empty cluster's centroid onto the point farthest from
// its current centroid.
func relocateEmpty(points, centroids [][]float64, labels []int, dst []float64) {
	far, farD := 0, -1.0
	for i, p := range points {
		if d := sqDist(p, centroids[labels[i]]); d > farD {
			far, farD = i, d
		}
	}
	copy(dst, points[far])
}

func meanVariance(points [][]float64) float64 {
	dim := len(points[0])
	col := make([]float64, len(points))
	sum := 0.0
	for j := 0; j < dim; j++ {
		for i, p := range points {
			col[i] = p[j]
		}
		_, v := stat.PopMeanVariance(col, nil)
		sum += v
	}

	return sum / float64(dim)
}

func cloneRow(src []float64) []float64 {
	dst := make([]float64, len(src))
	copy(dst, src)

	return dst
}
