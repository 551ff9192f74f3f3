// SPDX-License-Identifier: MIT
// Package: graphkernels/builder
//
// impl_complete.go - Complete and CompleteBipartite constructors.
//
// Contract:
//   - Complete(n): vertices idFn(0..n-1), edges {i,j} for i<j in (i asc, j asc).
//   - CompleteBipartite(n1,n2): vertices L0..L{n1-1} then R0..R{n2-1} (prefixes
//     from WithPartitionPrefix), edges Li–Rj in (i asc, j asc).
//
// Complexity: O(n²) and O(n1·n2) edges respectively.

package builder

import (
	"fmt"
	"strconv"
)

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"

	minCompleteNodes = 1
	minPartitionSize = 1
)

// Complete builds K_n, n ≥ 1.
func Complete(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := make([]string, n)
		for i := range ids {
			ids[i] = cfg.idFn(i)
			g.addVertex(ids[i])
		}
		clique(g, cfg, ids)

		return nil
	}
}

// CompleteBipartite builds K_{n1,n2}, n1, n2 ≥ 1.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		left := prefixedIDs(cfg.leftPrefix, n1)
		right := prefixedIDs(cfg.rightPrefix, n2)
		for _, id := range left {
			g.addVertex(id)
		}
		for _, id := range right {
			g.addVertex(id)
		}
		for _, u := range left {
			for _, v := range right {
				g.addEdge(u, v, cfg.weight())
			}
		}

		return nil
	}
}

// clique joins every unordered pair of ids.
func clique(g *Graph, cfg builderConfig, ids []string) {
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			g.addEdge(ids[i], ids[j], cfg.weight())
		}
	}
}

func prefixedIDs(prefix string, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = prefix + strconv.Itoa(i)
	}

	return ids
}
