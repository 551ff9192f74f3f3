// SPDX-License-Identifier: MIT

// Package config loads the YAML description of a clustering run and turns it
// into the objects the other packages consume.
//
// A minimal document:
//
//	graph:
//	  edges:
//	    - {from: a, to: b}
//	    - {from: b, to: c}
//	kernel:
//	  family: forest
//	  params: [0.1, 0.5, 0.9]
//	cluster:
//	  algorithm: ward
//	  n_clusters: 2
//
// Instead of adjacency or edges, graph.generator builds a fixture with package
// builder; planted_partition also supplies ground-truth labels:
//
//	graph:
//	  generator: {kind: planted_partition, sizes: [10, 10], p_in: 0.8, p_out: 0.05, seed: 1}
//
// Parse overlays the document on Default, rejects unknown keys and validates
// the result with go-playground/validator.
package config
