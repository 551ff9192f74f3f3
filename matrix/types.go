// SPDX-License-Identifier: MIT

// Package matrix: domain types used by adapters and dense operations.
// This file contains ONLY domain-facing types (vertex IDs, edges, helper keys)
// and the public Matrix interface. Errors and options live in dedicated files
// (errors.go, options.go).
package matrix

// VertexID uniquely identifies a graph vertex.
// Determinism relies on lexicographic ordering of these IDs in the builders.
type VertexID = string

// Edge is a weighted connection between two vertices as read from a graph
// description (edge list). Weight is a non-negative edge weight; zero means
// "use the unit weight" when the builder runs unweighted.
type Edge struct {
	From   VertexID `yaml:"from" json:"from"`
	To     VertexID `yaml:"to" json:"to"`
	Weight float64  `yaml:"weight" json:"weight"`
}

// pairKey is an ordered pair (u,v) used to de-duplicate parallel edges under
// "first-edge-wins" policy. For undirected mode we normalize into {min,max}.
type pairKey struct {
	u int // source row index
	v int // destination column index
}

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}
