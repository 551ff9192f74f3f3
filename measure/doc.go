// SPDX-License-Identifier: MIT

// Package measure implements the matrix transforms of graph-kernel methods.
//
// From an adjacency matrix A:
//
//	DegreeMatrix(A)        D = diag(Σ_i A[i,j])
//	DegreeMatrixInverse(A) D⁻¹ (a zero column yields +Inf)
//	Laplacian(A)           L = D − A
//	Components(A)          weakly connected component of every vertex
//
// From a kernel-like matrix H0:
//
//	LogKernel(H0)          H = ln(H0) elementwise
//	KernelToDistance(H)    Dmat[i,j] = ½(H[i,i] + H[j,j] − H[i,j] − H[j,i])
//	DistanceToKernel(Dmat) K = −½ · Hc·Dmat·Hc, Hc = I − E/n
//
// The functions are pure: inputs are never mutated and every call returns a
// fresh *matrix.Dense. Non-finite arithmetic results are never errors; they
// propagate silently. Nil input fails with ErrNilMatrix and rectangular input
// to a square-only transform fails with ErrNonSquare.
package measure
