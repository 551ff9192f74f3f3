// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkernels/builder"
	"github.com/katalvlaran/graphkernels/cluster"
	"github.com/katalvlaran/graphkernels/config"
	"github.com/katalvlaran/graphkernels/kernel"
	"github.com/katalvlaran/graphkernels/matrix"
	"github.com/katalvlaran/graphkernels/scaler"
)

const edgeDoc = `
graph:
  vertices: [a, b, c, d]
  edges:
    - {from: a, to: b}
    - {from: b, to: c, weight: 2}
kernel:
  family: log_heat
  params: [0.1, 0.9]
  scaler: linear
cluster:
  algorithm: ward
  n_clusters: 3
log:
  level: debug
  development: true
`

func TestParseEdgeDocument(t *testing.T) {
	cfg, err := config.Parse([]byte(edgeDoc))
	require.NoError(t, err)

	assert.Equal(t, kernel.LogHeat, cfg.Kernel.Family)
	assert.Equal(t, []float64{0.1, 0.9}, cfg.Kernel.Params)
	require.NotNil(t, cfg.Kernel.Scaler)
	assert.Equal(t, scaler.Linear, *cfg.Kernel.Scaler)
	assert.Equal(t, "ward", cfg.Cluster.Algorithm)
	assert.Equal(t, 3, cfg.Cluster.NClusters)
	assert.Equal(t, "debug", cfg.Log.Level)

	g, err := cfg.Graph.BuildGraph()
	require.NoError(t, err)
	assert.Equal(t, []matrix.VertexID{"a", "b", "c", "d"}, g.Vertices)
	w, err := g.A.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, w, "undirected edges are mirrored")
	sums, err := matrix.ColSums(g.A)
	require.NoError(t, err)
	assert.Zero(t, sums[3], "isolated vertex")
}

func TestParseDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte("graph:\n  adjacency: [[0, 1], [1, 0]]\nkernel:\n  params: [0.5]\n"))
	require.NoError(t, err)

	assert.Equal(t, kernel.Forest, cfg.Kernel.Family)
	assert.Nil(t, cfg.Kernel.Scaler)
	assert.Equal(t, "kmeans", cfg.Cluster.Algorithm)
	assert.Equal(t, 2, cfg.Cluster.NClusters)
	assert.Equal(t, "info", cfg.Log.Level)

	g, err := cfg.Graph.BuildGraph()
	require.NoError(t, err)
	assert.Equal(t, []matrix.VertexID{"0", "1"}, g.Vertices)

	p, err := cfg.Kernel.Pipeline(g.A)
	require.NoError(t, err)
	assert.Equal(t, scaler.Fraction, p.Scaler.Kind())

	c, err := cfg.Cluster.Clusterer()
	require.NoError(t, err)
	assert.IsType(t, &cluster.KernelKMeans{}, c)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no graph", "kernel:\n  params: [1]\n"},
		{"both graph forms", "graph:\n  adjacency: [[0]]\n  edges: [{from: a, to: b}]\nkernel:\n  params: [1]\n"},
		{"no params", "graph:\n  adjacency: [[0]]\n"},
		{"unknown family", "graph:\n  adjacency: [[0]]\nkernel:\n  family: katz\n  params: [1]\n"},
		{"unknown scaler", "graph:\n  adjacency: [[0]]\nkernel:\n  params: [1]\n  scaler: cubic\n"},
		{"unknown key", "graph:\n  adjacency: [[0]]\nkernel:\n  params: [1]\nextra: 1\n"},
		{"bad algorithm", "graph:\n  adjacency: [[0]]\nkernel:\n  params: [1]\ncluster:\n  algorithm: dbscan\n"},
		{"zero clusters", "graph:\n  adjacency: [[0]]\nkernel:\n  params: [1]\ncluster:\n  n_clusters: 0\n"},
		{"negative weight", "graph:\n  edges: [{from: a, to: b, weight: -1}]\nkernel:\n  params: [1]\n"},
		{"empty endpoint", "graph:\n  edges: [{from: a}]\nkernel:\n  params: [1]\n"},
		{"bad log level", "graph:\n  adjacency: [[0]]\nkernel:\n  params: [1]\nlog:\n  level: loud\n"},
		{"edges and generator", "graph:\n  edges: [{from: a, to: b}]\n  generator: {kind: path, n: 3}\nkernel:\n  params: [1]\n"},
		{"unknown generator", "graph:\n  generator: {kind: lattice, n: 3}\nkernel:\n  params: [1]\n"},
		{"probability above one", "graph:\n  generator: {kind: random, n: 3, p: 2}\nkernel:\n  params: [1]\n"},
		{"require and repair symmetry", "graph:\n  adjacency: [[0]]\n  require_symmetric: true\n  symmetrize: true\nkernel:\n  params: [1]\n"},
		{"negative tolerance", "graph:\n  adjacency: [[0]]\n  tolerance: -1\nkernel:\n  params: [1]\n"},
		{"duplicate vertices", "graph:\n  vertices: [a, a]\n  edges: [{from: a, to: a}]\nkernel:\n  params: [1]\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.doc))
			require.Error(t, err)
		})
	}

	_, err := config.Parse([]byte("kernel:\n  params: [1]\n"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestBuildGraphErrors(t *testing.T) {
	_, err := config.GraphConfig{Adjacency: [][]float64{{0, 1}}}.BuildGraph()
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = config.GraphConfig{Adjacency: [][]float64{{0, 1}, {1}}}.BuildGraph()
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	_, err = config.GraphConfig{
		Adjacency: [][]float64{{0, 1}, {1, 0}},
		Vertices:  []string{"x"},
	}.BuildGraph()
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = config.GraphConfig{
		Vertices: []string{"a"},
		Edges:    []config.Edge{{From: "a", To: "z"}},
	}.BuildGraph()
	require.ErrorIs(t, err, matrix.ErrUnknownVertex)
}

const plantedDoc = `
graph:
  generator:
    kind: planted_partition
    sizes: [4, 4]
    p_in: 1
    p_out: 0
kernel:
  params: [1]
`

func TestGenerator(t *testing.T) {
	cfg, err := config.Parse([]byte(plantedDoc))
	require.NoError(t, err)
	require.NotNil(t, cfg.Graph.Generator)

	g, err := cfg.Graph.BuildGraph()
	require.NoError(t, err)
	assert.Equal(t, 8, g.A.Rows())
	assert.Equal(t, []int{0, 0, 0, 0, 1, 1, 1, 1}, g.Truth)
	sums, err := matrix.RowSums(g.A)
	require.NoError(t, err)
	for _, s := range sums {
		assert.Equal(t, 3.0, s, "each vertex sees its own block only")
	}

	tests := []struct {
		gen   config.GeneratorConfig
		wantN int
	}{
		{config.GeneratorConfig{Kind: "path", N: 4}, 4},
		{config.GeneratorConfig{Kind: "cycle", N: 5}, 5},
		{config.GeneratorConfig{Kind: "star", N: 3}, 3},
		{config.GeneratorConfig{Kind: "wheel", N: 5}, 5},
		{config.GeneratorConfig{Kind: "complete", N: 3}, 3},
		{config.GeneratorConfig{Kind: "bipartite", N: 2, M: 3}, 5},
		{config.GeneratorConfig{Kind: "grid", N: 2, M: 2}, 4},
		{config.GeneratorConfig{Kind: "random", N: 6, P: 0.5, Seed: 3}, 6},
	}
	for _, tc := range tests {
		t.Run(tc.gen.Kind, func(t *testing.T) {
			gen := tc.gen
			g, err := config.GraphConfig{Generator: &gen}.BuildGraph()
			require.NoError(t, err)
			assert.Equal(t, tc.wantN, g.A.Rows())
			assert.Len(t, g.Vertices, tc.wantN)
			assert.Nil(t, g.Truth)
		})
	}

	_, err = config.GraphConfig{Generator: &config.GeneratorConfig{Kind: "cycle", N: 2}}.BuildGraph()
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestDirectedEdges(t *testing.T) {
	g, err := config.GraphConfig{
		Directed: true,
		Edges:    []config.Edge{{From: "a", To: "b"}},
	}.BuildGraph()
	require.NoError(t, err)

	ab, err := g.A.At(0, 1)
	require.NoError(t, err)
	ba, err := g.A.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, ab)
	assert.Zero(t, ba)
	assert.True(t, g.Directed)
}

func TestSymmetry(t *testing.T) {
	skewed := [][]float64{{0, 1}, {1.01, 0}}
	oneWay := []config.Edge{{From: "a", To: "b"}, {From: "b", To: "a", Weight: 1.01}}

	tests := []struct {
		name string
		gc   config.GraphConfig
		want error
	}{
		{"dense skew rejected", config.GraphConfig{Adjacency: skewed, RequireSymmetric: true}, matrix.ErrAsymmetry},
		{"dense skew within tolerance", config.GraphConfig{Adjacency: skewed, RequireSymmetric: true, Tolerance: 0.1}, nil},
		{"directed edges rejected", config.GraphConfig{Edges: oneWay, Directed: true, RequireSymmetric: true}, matrix.ErrAsymmetry},
		{"directed edges within tolerance", config.GraphConfig{Edges: oneWay, Directed: true, RequireSymmetric: true, Tolerance: 0.1}, nil},
		{"undirected edges", config.GraphConfig{Edges: oneWay, RequireSymmetric: true}, nil},
		{"generator", config.GraphConfig{Generator: &config.GeneratorConfig{Kind: "path", N: 3}, RequireSymmetric: true}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.gc.BuildGraph()
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}

	g, err := config.GraphConfig{Edges: oneWay, Directed: true, Symmetrize: true}.BuildGraph()
	require.NoError(t, err)
	assert.False(t, g.Directed)
	ab, err := g.A.At(0, 1)
	require.NoError(t, err)
	ba, err := g.A.At(1, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.005, ab, 1e-12)
	assert.Equal(t, ab, ba)
}

func TestClustererOptions(t *testing.T) {
	c, err := config.ClusterConfig{Algorithm: "kmeans", NClusters: 2, NInit: 1, MaxIter: 5}.Clusterer()
	require.NoError(t, err)
	km := c.(*cluster.KernelKMeans)
	assert.Equal(t, 2, km.NClusters)

	_, err = config.ClusterConfig{Algorithm: "spectral", NClusters: 2}.Clusterer()
	require.ErrorIs(t, err, cluster.ErrUnknownAlgorithm)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(edgeDoc), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, kernel.LogHeat, cfg.Kernel.Family)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLogger(t *testing.T) {
	for _, lc := range []config.LogConfig{
		{Level: "info"},
		{Level: "debug", Development: true},
	} {
		l, err := lc.Logger()
		require.NoError(t, err)
		require.NotNil(t, l)
	}

	_, err := config.LogConfig{Level: "loud"}.Logger()
	require.Error(t, err)
}
