// SPDX-License-Identifier: MIT
package cluster_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/graphkernels/cluster"
	"github.com/katalvlaran/graphkernels/matrix"
)

// blobs returns size points around each center, jittered by at most ±0.5.
func blobs(centers [][]float64, size int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	var out [][]float64
	for _, c := range centers {
		for i := 0; i < size; i++ {
			p := make([]float64, len(c))
			for j := range c {
				p[j] = c[j] + rng.Float64() - 0.5
			}
			out = append(out, p)
		}
	}

	return out
}

// requireBlockLabels checks that every block of size consecutive points shares
// one label and that different blocks have different labels.
func requireBlockLabels(t *testing.T, labels []int, blocks, size int) {
	t.Helper()
	require.Len(t, labels, blocks*size)
	seen := make(map[int]bool, blocks)
	for b := 0; b < blocks; b++ {
		first := labels[b*size]
		for i := 1; i < size; i++ {
			require.Equal(t, first, labels[b*size+i], "block %d split", b)
		}
		require.False(t, seen[first], "blocks share label %d", first)
		seen[first] = true
	}
}

func TestKMeansSeparatedBlobs(t *testing.T) {
	points := blobs([][]float64{{0, 0}, {10, 10}, {-10, 10}}, 6, 1)
	res, err := cluster.KMeans(points, 3)
	require.NoError(t, err)

	requireBlockLabels(t, res.Labels, 3, 6)
	require.Len(t, res.Centroids, 3)
	assert.Less(t, res.Inertia, 18.0) // at most 0.5² + 0.5² per point
	assert.GreaterOrEqual(t, res.Iterations, 1)
	for _, l := range res.Labels {
		assert.True(t, l >= 0 && l < 3)
	}
}

func TestKMeansDeterministicForSeed(t *testing.T) {
	points := blobs([][]float64{{0}, {1}, {2}, {3}}, 5, 7)

	a, err := cluster.KMeans(points, 3, cluster.WithSeed(42))
	require.NoError(t, err)
	b, err := cluster.KMeans(points, 3, cluster.WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, a.Labels, b.Labels)
	assert.Equal(t, a.Inertia, b.Inertia)
}

func TestKMeansOneClusterPerPoint(t *testing.T) {
	points := [][]float64{{0}, {3}, {7}, {12}}
	res, err := cluster.KMeans(points, len(points), cluster.WithNInit(1))
	require.NoError(t, err)

	assert.Zero(t, res.Inertia)
	seen := map[int]bool{}
	for _, l := range res.Labels {
		seen[l] = true
	}
	assert.Len(t, seen, len(points))
}

func TestKMeansSingleCluster(t *testing.T) {
	points := [][]float64{{1, 1}, {3, 1}, {2, 4}}
	res, err := cluster.KMeans(points, 1)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 0, 0}, res.Labels)
	assert.InDeltaSlice(t, []float64{2, 2}, res.Centroids[0], 1e-12)
}

func TestKMeansDoesNotMutateInput(t *testing.T) {
	points := [][]float64{{0, 0}, {0, 1}, {5, 5}, {5, 6}}
	before := [][]float64{{0, 0}, {0, 1}, {5, 5}, {5, 6}}
	_, err := cluster.KMeans(points, 2)
	require.NoError(t, err)
	assert.Equal(t, before, points)
}

func TestKMeansErrors(t *testing.T) {
	tests := []struct {
		name   string
		points [][]float64
		k      int
		want   error
	}{
		{"empty", nil, 1, cluster.ErrEmptyInput},
		{"zero-dim", [][]float64{{}}, 1, cluster.ErrEmptyInput},
		{"k zero", [][]float64{{1}}, 0, cluster.ErrInvalidClusterCount},
		{"k above n", [][]float64{{1}, {2}}, 3, cluster.ErrInvalidClusterCount},
		{"ragged", [][]float64{{1, 2}, {3}}, 1, matrix.ErrRaggedRows},
		{"nan", [][]float64{{1}, {nan()}}, 1, matrix.ErrNaNInf},
		{"inf", [][]float64{{inf()}, {1}}, 1, matrix.ErrNaNInf},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cluster.KMeans(tc.points, tc.k)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestKMeansLogsRestarts(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	cluster.SetLogger(zap.New(core))
	t.Cleanup(func() { cluster.SetLogger(nil) })

	_, err := cluster.KMeans([][]float64{{0}, {1}, {9}}, 2, cluster.WithNInit(3))
	require.NoError(t, err)

	entries := logs.FilterMessage("kmeans restart").All()
	require.Len(t, entries, 3)
	assert.EqualValues(t, 2, entries[2].ContextMap()["run"])
}

func TestOptions(t *testing.T) {
	o := cluster.NewOptions()
	assert.Equal(t, cluster.DefaultSeed, o.Seed())
	assert.Equal(t, cluster.DefaultMaxIter, o.MaxIter())
	assert.Equal(t, cluster.DefaultNInit, o.NInit())
	assert.Equal(t, cluster.DefaultTolerance, o.Tolerance())

	o = cluster.NewOptions(cluster.WithSeed(9), cluster.WithMaxIter(5), cluster.WithNInit(2), cluster.WithTolerance(0))
	assert.Equal(t, int64(9), o.Seed())
	assert.Equal(t, 5, o.MaxIter())
	assert.Equal(t, 2, o.NInit())
	assert.Zero(t, o.Tolerance())

	assert.Panics(t, func() { cluster.WithMaxIter(0) })
	assert.Panics(t, func() { cluster.WithNInit(-1) })
	assert.Panics(t, func() { cluster.WithTolerance(-1e-3) })
	assert.Panics(t, func() { cluster.WithTolerance(nan()) })
}
