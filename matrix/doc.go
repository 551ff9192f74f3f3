// SPDX-License-Identifier: MIT

// Package matrix offers the dense matrix type and linear-algebra kernels that
// the graph-kernel transforms are built on.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe At/Set (errors, never panics)
//     and a per-instance NaN/Inf policy (WithValidateNaNInf / WithNoValidateNaNInf).
//   - Kernels Add, Sub, Mul, Transpose, Scale, MatVec with *Dense fast-paths.
//   - Facades NewIdentity, NewOnes, NewDiagonal, Diagonal, RowSums, ColSums,
//     Map, ToDense, Symmetrize and AllClose.
//   - A gonum bridge for Eigenvalues, SpectralRadius, Inverse and Exp.
//   - AdjacencyMatrix, built deterministically from an edge list.
//
// Numeric policy: results of the kernels validate NaN/Inf only when every
// operand does. Feed a permissive operand (ToDense(m, WithNoValidateNaNInf()))
// to let ±Inf and NaN flow through a computation untouched.
//
// Errors are package sentinels (ErrNilMatrix, ErrNonSquare, ...) wrapped with
// the operation name; match them with errors.Is.
package matrix
