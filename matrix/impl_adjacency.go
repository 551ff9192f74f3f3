// SPDX-License-Identifier: MIT
// Package matrix - adjacency container built from edge lists.
//
// Deliverables:
//   1) Directed + AllowMulti=false → first-edge-wins (ordered key (u,v)).
//   2) Undirected mirroring without loops (u==v is not mirrored).
//   3) Deterministic vertex order: lexicographic unless the caller supplies one.
//
// AI-Hints:
//   - The adjacency Mat is what the transform layer consumes; VertexIDs maps
//     row indices back to names when reporting cluster labels.

package matrix

import (
	"fmt"
)

// AdjacencyMatrix wraps a Dense as a graph adjacency representation.
// VertexIndex maps VertexID → row/col in Mat.
// vertexByIndex provides reverse lookup from index to VertexID.
type AdjacencyMatrix struct {
	Mat           *Dense           // underlying adjacency matrix
	VertexIndex   map[VertexID]int // mapping of VertexID to index
	vertexByIndex []VertexID       // reverse lookup by index
	opts          Options          // construction options snapshot
}

// NewAdjacencyFromEdges BUILDS an adjacency container from an edge list.
// Implementation:
//   - Stage 1: resolve options; derive a lex-sorted vertex list when vertices is empty.
//   - Stage 2: delegate to BuildDenseAdjacency (deterministic).
//   - Stage 3: construct the reverse index and return.
//
// Inputs:
//   - vertices: optional explicit vertex order (isolated vertices must be listed here).
//   - edges: edge list; endpoints must appear in vertices when given.
//   - opts: WithDirected, WithUnweighted, WithAllowLoops, WithAllowMulti, ...
//
// Errors:
//   - ErrInvalidDimensions (no vertices at all), ErrUnknownVertex, ErrInvalidWeight.
//
// Complexity:
//   - Time O(V^2 + E log E), Space O(V^2).
//
// AI-Hints:
//   - A vertex that appears only in an explicit vertices list yields a zero
//     column, and thus a +Inf entry in the inverse degree matrix.
func NewAdjacencyFromEdges(vertices []VertexID, edges []Edge, opts ...Option) (*AdjacencyMatrix, error) {
	o := gatherOptions(opts...)
	if len(vertices) == 0 {
		vertices = sortedVertices(edges)
	}

	idx, mat, err := BuildDenseAdjacency(vertices, edges, o)
	if err != nil {
		return nil, err
	}

	rev := make([]VertexID, len(vertices))
	copy(rev, vertices)

	return &AdjacencyMatrix{
		Mat:           mat,
		VertexIndex:   idx,
		vertexByIndex: rev,
		opts:          o,
	}, nil
}

// VertexCount returns the number of vertices (matrix side).
func (am *AdjacencyMatrix) VertexCount() int {
	if am == nil || am.Mat == nil {
		return 0
	}

	return am.Mat.Rows()
}

// VertexIDs returns a copy of the vertex order used for rows and columns.
func (am *AdjacencyMatrix) VertexIDs() []VertexID {
	out := make([]VertexID, len(am.vertexByIndex))
	copy(out, am.vertexByIndex)

	return out
}

// Directed reports whether the adjacency was built from directed edges.
func (am *AdjacencyMatrix) Directed() bool { return am.opts.directed }

// ValidateSymmetric checks Mat against its transpose within the Epsilon the
// adjacency was built with (WithEpsilon, DefaultEpsilon otherwise). A directed
// edge list without its reverse edges fails with ErrAsymmetry.
// Errors: ErrNilMatrix, ErrAsymmetry.
func (am *AdjacencyMatrix) ValidateSymmetric() error {
	if am == nil || am.Mat == nil {
		return fmt.Errorf("ValidateSymmetric: %w", ErrNilMatrix)
	}

	return ValidateSymmetric(am.Mat, am.opts.eps)
}

// DegreeVector returns per-vertex weighted degrees using the column-sum
// convention d[j] = Σ_i A[i,j] (in-degree for directed graphs).
// Errors: ErrNilMatrix.
// Complexity: O(V^2).
func (am *AdjacencyMatrix) DegreeVector() ([]float64, error) {
	if am == nil || am.Mat == nil {
		return nil, fmt.Errorf("DegreeVector: %w", ErrNilMatrix)
	}

	return ColSums(am.Mat)
}
