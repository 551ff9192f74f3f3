// SPDX-License-Identifier: MIT
// Package: graphkernels/builder
//
// impl_random.go - RandomSparse and PlantedPartition constructors.
//
// Canonical model:
//   - Each unordered pair {i,j}, i<j, is a Bernoulli trial in (i asc, j asc)
//     order, so outcomes are fixed for a given seed.
//   - PlantedPartition (stochastic block model) uses p_in inside a block and
//     p_out across blocks and records each vertex's block as ground truth.
//
// Contract:
//   - Probabilities in [0,1] (else ErrInvalidProbability).
//   - An RNG is required unless every probability is 0 or 1
//     (else ErrNeedRandSource).
//
// Complexity: O(n²) trials, O(1) extra space beyond the graph.

package builder

import (
	"fmt"
	"math/rand"
)

const (
	methodRandomSparse     = "RandomSparse"
	methodPlantedPartition = "PlantedPartition"

	minRandomSparseVertices = 1
	minBlockSize            = 1
)

// RandomSparse builds an Erdős–Rényi G(n, p) graph over idFn(0..n-1), n ≥ 1.
func RandomSparse(n int, p float64) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if err := checkProbabilities(methodRandomSparse, cfg.rng, p); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			g.addVertex(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if trial(cfg.rng, p) {
					g.addEdge(cfg.idFn(i), cfg.idFn(j), cfg.weight())
				}
			}
		}

		return nil
	}
}

// PlantedPartition builds a stochastic block model with len(sizes) blocks.
// Vertex IDs run idFn(0..Σsizes-1) block after block, and the block index of
// every vertex is available from Graph.GroundTruth.
func PlantedPartition(sizes []int, pIn, pOut float64) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if len(sizes) == 0 {
			return fmt.Errorf("%s: no blocks: %w", methodPlantedPartition, ErrTooFewVertices)
		}
		var block []int
		for b, s := range sizes {
			if s < minBlockSize {
				return fmt.Errorf("%s: block %d size=%d < min=%d: %w",
					methodPlantedPartition, b, s, minBlockSize, ErrTooFewVertices)
			}
			for k := 0; k < s; k++ {
				block = append(block, b)
			}
		}
		if err := checkProbabilities(methodPlantedPartition, cfg.rng, pIn, pOut); err != nil {
			return err
		}

		for i, b := range block {
			g.community[g.addVertex(cfg.idFn(i))] = b
		}
		for i := range block {
			for j := i + 1; j < len(block); j++ {
				p := pOut
				if block[i] == block[j] {
					p = pIn
				}
				if trial(cfg.rng, p) {
					g.addEdge(cfg.idFn(i), cfg.idFn(j), cfg.weight())
				}
			}
		}

		return nil
	}
}

func checkProbabilities(method string, rng *rand.Rand, ps ...float64) error {
	needRNG := false
	for _, p := range ps {
		if !(p >= 0 && p <= 1) {
			return fmt.Errorf("%s: p=%g not in [0,1]: %w", method, p, ErrInvalidProbability)
		}
		if p > 0 && p < 1 {
			needRNG = true
		}
	}
	if needRNG && rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}

// trial reports a Bernoulli(p) outcome; p of 0 or 1 never consumes the RNG.
func trial(rng *rand.Rand, p float64) bool {
	switch p {
	case 0:
		return false
	case 1:
		return true
	default:
		return rng.Float64() < p
	}
}
