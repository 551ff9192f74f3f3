// SPDX-License-Identifier: MIT
// Package: graphkernels/builder
//
// impl_ring.go - Path, Cycle, Star and Wheel constructors.
//
// Contract:
//   - Vertices are added via cfg.idFn in ascending index order; Star and Wheel
//     use the fixed hub ID CenterVertexID first.
//   - Edges are emitted in ascending index order, one weight draw per edge.
//
// Complexity: O(n) vertices and edges, O(1) extra space.

package builder

import "fmt"

// CenterVertexID is the hub of Star and Wheel.
const CenterVertexID = "Center"

const (
	methodPath  = "Path"
	methodCycle = "Cycle"
	methodStar  = "Star"
	methodWheel = "Wheel"

	minPathNodes  = 2
	minCycleNodes = 3
	minStarNodes  = 2
	minWheelNodes = 4
)

// Path builds P_n: 0–1–…–(n−1), n ≥ 2.
func Path(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ring(g, cfg, 0, n, false)

		return nil
	}
}

// Cycle builds C_n: Path(n) plus the closing edge (n−1)–0, n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ring(g, cfg, 0, n, true)

		return nil
	}
}

// Star builds a hub CenterVertexID joined to n−1 leaves, n ≥ 2.
func Star(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		g.addVertex(CenterVertexID)
		for i := 0; i < n-1; i++ {
			g.addEdge(CenterVertexID, cfg.idFn(i), cfg.weight())
		}

		return nil
	}
}

// Wheel builds W_n: a hub joined to every vertex of C_{n−1}, n ≥ 4.
// Ring edges come first, then spokes.
func Wheel(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		g.addVertex(CenterVertexID)
		ring(g, cfg, 0, n-1, true)
		for i := 0; i < n-1; i++ {
			g.addEdge(CenterVertexID, cfg.idFn(i), cfg.weight())
		}

		return nil
	}
}

// ring adds vertices idFn(from..from+n-1) joined consecutively, and closes
// the loop when closed is set.
func ring(g *Graph, cfg builderConfig, from, n int, closed bool) {
	for i := 0; i < n; i++ {
		g.addVertex(cfg.idFn(from + i))
	}
	for i := 0; i+1 < n; i++ {
		g.addEdge(cfg.idFn(from+i), cfg.idFn(from+i+1), cfg.weight())
	}
	if closed {
		g.addEdge(cfg.idFn(from+n-1), cfg.idFn(from), cfg.weight())
	}
}
