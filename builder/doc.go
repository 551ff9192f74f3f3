// SPDX-License-Identifier: MIT

// Package builder generates deterministic graph fixtures as edge lists that
// feed matrix.NewAdjacencyFromEdges.
//
// Topologies: Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid,
// RandomSparse (Erdős–Rényi) and PlantedPartition (stochastic block model with
// ground-truth communities, the usual benchmark for kernel clustering).
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(1)},
//		builder.PlantedPartition([]int{10, 10}, 0.8, 0.05),
//	)
//	adj, err := g.Adjacency()
//	truth, ok := g.GroundTruth()
//
// Options select vertex ID schemes (WithIDScheme, WithSymbNumb,
// WithExcelColumnIDs), edge weights (WithConstantWeight, WithUniformWeight)
// and the RNG (WithSeed, WithRand). Option constructors panic on meaningless
// values; constructors return sentinel errors.
package builder
