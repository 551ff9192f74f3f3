// SPDX-License-Identifier: MIT
// Package: graphkernels/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Vertex IDs use the fixed coordinate scheme "r,c" in row-major order;
//     cfg.idFn is not consulted.
//   - For each cell, the right neighbour edge is emitted before the bottom one.
//
// Complexity: O(rows·cols) vertices and edges.

package builder

import (
	"fmt"
	"strconv"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid builds a rows×cols 4-neighbourhood lattice.
func Grid(rows, cols int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.addVertex(gridVertexID(r, c))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := gridVertexID(r, c)
				if c+1 < cols {
					g.addEdge(u, gridVertexID(r, c+1), cfg.weight())
				}
				if r+1 < rows {
					g.addEdge(u, gridVertexID(r+1, c), cfg.weight())
				}
			}
		}

		return nil
	}
}

// gridVertexID formats a coordinate as "r,c".
func gridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
