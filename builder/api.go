// SPDX-License-Identifier: MIT
// Package: graphkernels/builder
//
// api.go - the Graph fixture type and the BuildGraph orchestrator.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves the config once and
//     runs constructors in order against one edge-list Graph.
//   - Vertices are added idempotently, so constructors compose: a Path over the
//     same IDs as a Cycle only adds the missing edges.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical
//     vertex order, edge order and weights.
//
// AI-Hints:
//   - Use WithSeed(...) for RandomSparse / PlantedPartition.
//   - Graph.Adjacency turns the fixture into a matrix.AdjacencyMatrix; pass
//     matrix.WithDirected() to read edges one-way.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkernels/matrix"
)

// noCommunity marks a vertex without a planted ground-truth label.
const noCommunity = -1

// Graph is an undirected edge-list fixture: each unordered pair appears at
// most once in Edges, in emission order.
type Graph struct {
	Vertices []matrix.VertexID
	Edges    []matrix.Edge

	index     map[matrix.VertexID]int
	community []int
	pairs     map[[2]int]struct{}
}

func newGraph() *Graph {
	return &Graph{
		index: make(map[matrix.VertexID]int),
		pairs: make(map[[2]int]struct{}),
	}
}

// Constructor applies a deterministic mutation to g using the resolved
// builderConfig. Constructors validate their parameters and return sentinel
// errors; they never panic.
type Constructor func(g *Graph, cfg builderConfig) error

// BuildGraph resolves bopts and applies cons in order to a fresh Graph.
// Any constructor error is wrapped with "BuildGraph: %w".
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*Graph, error) {
	g := newGraph()
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertex inserts id once and returns its index.
func (g *Graph) addVertex(id matrix.VertexID) int {
	if i, ok := g.index[id]; ok {
		return i
	}
	i := len(g.Vertices)
	g.index[id] = i
	g.Vertices = append(g.Vertices, id)
	g.community = append(g.community, noCommunity)

	return i
}

// addEdge records the undirected edge {u,v} unless it is already present.
// Self-loops are ignored.
func (g *Graph) addEdge(u, v matrix.VertexID, w float64) {
	iu, iv := g.addVertex(u), g.addVertex(v)
	if iu == iv {
		return
	}
	key := [2]int{min(iu, iv), max(iu, iv)}
	if _, dup := g.pairs[key]; dup {
		return
	}
	g.pairs[key] = struct{}{}
	g.Edges = append(g.Edges, matrix.Edge{From: u, To: v, Weight: w})
}

// GroundTruth returns the planted community of every vertex, in Vertices
// order. ok is false unless every vertex was placed by PlantedPartition.
func (g *Graph) GroundTruth() (labels []int, ok bool) {
	if len(g.community) == 0 {
		return nil, false
	}
	labels = make([]int, len(g.community))
	for i, c := range g.community {
		if c == noCommunity {
			return nil, false
		}
		labels[i] = c
	}

	return labels, true
}

// Adjacency builds the weighted adjacency matrix of g, rows in Vertices order.
// Edges are mirrored unless opts include matrix.WithDirected().
func (g *Graph) Adjacency(opts ...matrix.Option) (*matrix.AdjacencyMatrix, error) {
	if len(g.Vertices) == 0 {
		return nil, fmt.Errorf("Adjacency: empty graph: %w", ErrTooFewVertices)
	}

	return matrix.NewAdjacencyFromEdges(g.Vertices, g.Edges, opts...)
}
