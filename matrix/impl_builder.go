// SPDX-License-Identifier: MIT
// Package matrix - canonical builder for Dense adjacency from an edge list.
// Deterministic, sentinel-accurate, and aligned with contracts.
//
// Policy & Contracts:
//   - Adjacency: 0 for "no edge", weight (or unitWeight) otherwise.
//   - Undirected edges are mirrored into both triangles; loops are never mirrored.
//   - Parallel edges: first-edge-wins by default, summed under WithAllowMulti.
//
// Determinism:
//   - Stable vertex order as provided by caller; no implicit sorting here.
//   - Edges are scanned once in input order.
//
// AI-Hints:
//   - NewAdjacencyFromEdges derives a lex-sorted vertex list when none is given.

package matrix

import (
	"fmt"
	"sort"
)

const opBuildAdjacency = "BuildDenseAdjacency"

// orderedPair builds (u,v) key for directed de-duplication.
// Complexity: O(1).
func orderedPair(u, v int) pairKey { return pairKey{u: u, v: v} }

// unorderedPair builds {min,max} key for undirected de-duplication.
// Complexity: O(1).
func unorderedPair(u, v int) pairKey {
	if u <= v {
		return pairKey{u: u, v: v}
	}

	return pairKey{u: v, v: u}
}

// lookupIndex resolves a vertex ID to row/col index or returns ErrUnknownVertex.
// Complexity: O(1) expected (hash map).
func lookupIndex(idx map[VertexID]int, id VertexID) (int, error) {
	if i, ok := idx[id]; ok {
		return i, nil
	}

	return 0, fmt.Errorf("unknown vertex %q: %w", id, ErrUnknownVertex)
}

// sortedVertices collects the distinct endpoints of edges in lexicographic order.
// Complexity: O(E log E).
func sortedVertices(edges []Edge) []VertexID {
	seen := make(map[VertexID]struct{}, 2*len(edges))
	out := make([]VertexID, 0, 2*len(edges))
	for _, e := range edges {
		for _, id := range [2]VertexID{e.From, e.To} {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out
}

// edgeValue resolves the cell value of an edge under the weight policy.
// Weighted mode keeps positive weights and maps 0 ("unspecified") to unitWeight.
func edgeValue(e Edge, weighted bool) (float64, error) {
	if isNonFinite(e.Weight) || e.Weight < 0 {
		return 0, fmt.Errorf("weight %v for %q->%q: %w", e.Weight, e.From, e.To, ErrInvalidWeight)
	}
	if !weighted || e.Weight == 0 {
		return unitWeight, nil
	}

	return e.Weight, nil
}

// BuildDenseAdjacency CONSTRUCTS a dense adjacency matrix from explicit vertices/edges
// with Options policy (directed/weighted/loops/multi).
// Implementation:
//   - Stage 1: validate vertex list and build VertexID→index map.
//   - Stage 2: allocate V×V dense.
//   - Stage 3: populate entries deterministically; mirror when undirected (except loops).
//
// Behavior highlights:
//   - First-edge-wins when AllowMulti=false (ordered for directed, unordered for undirected).
//   - AllowMulti=true sums parallel edges into the same cell.
//
// Inputs:
//   - vertices: canonical vertex order (stable; caller decides lex order if needed).
//   - edges: edge list, scanned in order.
//   - opts: resolved Options.
//
// Returns:
//   - vidx: VertexID→index map (row==col index).
//   - mat: V×V dense adjacency (validating numeric policy).
//
// Errors:
//   - ErrInvalidDimensions (empty vertices), ErrUnknownVertex (missing or duplicate id),
//     ErrInvalidWeight (NaN/Inf/negative weight).
//
// Complexity:
//   - Time O(V^2 + E), Space O(V^2).
func BuildDenseAdjacency(vertices []VertexID, edges []Edge, opts Options) (map[VertexID]int, *Dense, error) {
	// --- Stage 1: Validate vertices and build index map ---
	if len(vertices) == 0 {
		return nil, nil, fmt.Errorf("%s: empty vertex set: %w", opBuildAdjacency, ErrInvalidDimensions)
	}
	V := len(vertices)

	idx := make(map[VertexID]int, V)
	for i, id := range vertices {
		if _, dup := idx[id]; dup {
			return nil, nil, fmt.Errorf("%s: duplicate vertex id %q: %w", opBuildAdjacency, id, ErrUnknownVertex)
		}
		idx[id] = i
	}

	// --- Stage 2: Allocate dense V×V ---
	mat := newDenseWithPolicy(V, V, opts.validateNaNInf)

	// --- Stage 3: Populate adjacency entries (deterministic) ---
	seen := make(map[pairKey]struct{}, len(edges))
	var (
		src, dst int
		w        float64
		key      pairKey
		err      error
	)
	for _, e := range edges {
		if src, err = lookupIndex(idx, e.From); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", opBuildAdjacency, err)
		}
		if dst, err = lookupIndex(idx, e.To); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", opBuildAdjacency, err)
		}
		if w, err = edgeValue(e, opts.weighted); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", opBuildAdjacency, err)
		}
		if src == dst && !opts.allowLoops {
			continue
		}
		if !opts.allowMulti {
			if opts.directed {
				key = orderedPair(src, dst)
			} else {
				key = unorderedPair(src, dst)
			}
			if _, dup := seen[key]; dup {
				continue // first edge wins
			}
			seen[key] = struct{}{}
		}

		mat.data[src*V+dst] += w
		if !opts.directed && src != dst {
			mat.data[dst*V+src] += w
		}
	}

	return idx, mat, nil
}
