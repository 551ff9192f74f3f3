// SPDX-License-Identifier: MIT
// Package measure - graph-kernel matrix transforms.
//
// Purpose:
//   - Turn an adjacency matrix A into its degree matrix D and Laplacian L.
//   - Turn a kernel-like matrix H0 into log-space H, a distance matrix and a
//     double-centered kernel K.
//
// Numeric policy:
//   - Every result is allocated with the NaN/Inf guard OFF: a zero column sum
//     yields +Inf in DegreeMatrixInverse, a non-positive entry yields -Inf/NaN in
//     LogKernel, and those values flow through later transforms unchanged.
//   - Inputs are never mutated; every call allocates its result.

package measure

import (
	"math"

	"github.com/katalvlaran/graphkernels/matrix"
)

// permissive validates m is square and returns a NaN/Inf-tolerant copy of it.
// Kernels fed with the copy produce tolerant results.
func permissive(m matrix.Matrix, op string) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, measureErrorf(op, err)
	}
	d, err := matrix.ToDense(m, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, measureErrorf(op, err)
	}

	return d, nil
}

// columnSums returns Σ_i A[i,j] for every column j (summation along axis 0).
func columnSums(A matrix.Matrix, op string) ([]float64, error) {
	Ap, err := permissive(A, op)
	if err != nil {
		return nil, err
	}
	sums, err := matrix.ColSums(Ap)
	if err != nil {
		return nil, measureErrorf(op, err)
	}

	return sums, nil
}

// DegreeMatrix returns the diagonal matrix D with D[j,j] = Σ_i A[i,j].
// Implementation:
//   - Stage 1: validate A is non-nil and square.
//   - Stage 2: column sums, placed on the diagonal of a fresh matrix.
//
// Behavior highlights:
//   - Column sums, not row sums; for a symmetric A both agree.
//   - Off-diagonal entries are exactly zero.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func DegreeMatrix(A matrix.Matrix) (*matrix.Dense, error) {
	sums, err := columnSums(A, opDegree)
	if err != nil {
		return nil, err
	}
	D, err := matrix.NewDiagonal(sums, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, measureErrorf(opDegree, err)
	}

	return D, nil
}

// DegreeMatrixInverse returns diag(1 / Σ_i A[i,j]).
//
// An isolated vertex (zero column) produces +Inf on its diagonal entry; this
// is not an error. Callers that cannot tolerate it must check the result.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n²).
func DegreeMatrixInverse(A matrix.Matrix) (*matrix.Dense, error) {
	sums, err := columnSums(A, opDegreeInverse)
	if err != nil {
		return nil, err
	}
	for j, s := range sums {
		sums[j] = 1.0 / s
	}
	Dinv, err := matrix.NewDiagonal(sums, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, measureErrorf(opDegreeInverse, err)
	}

	return Dinv, nil
}

// Laplacian returns L = D − A, with D = DegreeMatrix(A).
// For symmetric non-negative A, L is symmetric and each row sums to zero.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n²).
func Laplacian(A matrix.Matrix) (*matrix.Dense, error) {
	Ap, err := permissive(A, opLaplacian)
	if err != nil {
		return nil, err
	}
	D, err := DegreeMatrix(Ap)
	if err != nil {
		return nil, measureErrorf(opLaplacian, err)
	}
	L, err := matrix.Sub(D, Ap)
	if err != nil {
		return nil, measureErrorf(opLaplacian, err)
	}

	return L, nil
}

// LogKernel returns H = ln(H0) elementwise.
//
// Entries of H0 equal to zero map to -Inf, negative entries to NaN; nothing is
// rejected. The shape of H0 is preserved, square or not.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func LogKernel(H0 matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(H0); err != nil {
		return nil, measureErrorf(opLogKernel, err)
	}
	H, err := matrix.Map(H0, math.Log, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, measureErrorf(opLogKernel, err)
	}

	return H, nil
}

// KernelToDistance returns Dmat = ½(h·1ᵀ + 1·hᵀ − H − Hᵀ), h = diag(H), so
// Dmat[i,j] = ½(H[i,i] + H[j,j] − H[i,j] − H[j,i]).
// Implementation:
//   - Stage 1: validate H square; take its diagonal h as an n×1 column.
//   - Stage 2: broadcast h across columns by the outer product h·1ᵀ and across
//     rows by its transpose.
//   - Stage 3: subtract H and Hᵀ, halve.
//
// Behavior highlights:
//   - The result is symmetric for any H and has a zero diagonal when H is finite.
//   - A non-finite diagonal entry spreads to its whole row and column.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func KernelToDistance(H matrix.Matrix) (*matrix.Dense, error) {
	Hp, err := permissive(H, opKernelToDist)
	if err != nil {
		return nil, err
	}
	n := Hp.Rows()

	h, err := matrix.Diagonal(Hp)
	if err != nil {
		return nil, measureErrorf(opKernelToDist, err)
	}
	hCol, err := matrix.NewDenseFromData(n, 1, h, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, measureErrorf(opKernelToDist, err)
	}
	onesRow, err := matrix.NewOnes(1, n, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, measureErrorf(opKernelToDist, err)
	}

	hRows, err := matrix.Mul(hCol, onesRow) // h·1ᵀ: row i is filled with h[i]
	if err != nil {
		return nil, measureErrorf(opKernelToDist, err)
	}
	hCols, err := matrix.Transpose(hRows) // 1·hᵀ
	if err != nil {
		return nil, measureErrorf(opKernelToDist, err)
	}
	Ht, err := matrix.Transpose(Hp)
	if err != nil {
		return nil, measureErrorf(opKernelToDist, err)
	}

	acc, err := matrix.Add(hRows, hCols)
	if err != nil {
		return nil, measureErrorf(opKernelToDist, err)
	}
	if acc, err = matrix.Sub(acc, Hp); err != nil {
		return nil, measureErrorf(opKernelToDist, err)
	}
	if acc, err = matrix.Sub(acc, Ht); err != nil {
		return nil, measureErrorf(opKernelToDist, err)
	}
	if acc, err = matrix.Scale(acc, 0.5); err != nil {
		return nil, measureErrorf(opKernelToDist, err)
	}

	return acc, nil
}

// centering returns Hc = I − E/n with the permissive policy.
func centering(n int) (*matrix.Dense, error) {
	I, err := matrix.NewIdentity(n, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	E, err := matrix.NewOnes(n, n, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	En, err := matrix.Scale(E, 1.0/float64(n))
	if err != nil {
		return nil, err
	}

	return matrix.Sub(I, En)
}

// DistanceToKernel double-centers a (squared) distance matrix:
// K = −½ · Hc · Dmat · Hc with Hc = I − E/n, E the all-ones matrix.
//
// This is the classical multidimensional-scaling transform. The result is
// symmetric for symmetric input, and centering it again leaves it unchanged.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n³) (two dense products).
func DistanceToKernel(Dmat matrix.Matrix) (*matrix.Dense, error) {
	Dp, err := permissive(Dmat, opDistToKernel)
	if err != nil {
		return nil, err
	}
	Hc, err := centering(Dp.Rows())
	if err != nil {
		return nil, measureErrorf(opDistToKernel, err)
	}

	K, err := matrix.Mul(Hc, Dp)
	if err != nil {
		return nil, measureErrorf(opDistToKernel, err)
	}
	if K, err = matrix.Mul(K, Hc); err != nil {
		return nil, measureErrorf(opDistToKernel, err)
	}
	if K, err = matrix.Scale(K, -0.5); err != nil {
		return nil, measureErrorf(opDistToKernel, err)
	}

	return K, nil
}

// Center returns Hc · M · Hc for a square M, the centering step of
// DistanceToKernel without the −½ factor. Centering is idempotent.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n³).
func Center(M matrix.Matrix) (*matrix.Dense, error) {
	const op = "Center"
	Mp, err := permissive(M, op)
	if err != nil {
		return nil, err
	}
	Hc, err := centering(Mp.Rows())
	if err != nil {
		return nil, measureErrorf(op, err)
	}
	C, err := matrix.Mul(Hc, Mp)
	if err != nil {
		return nil, measureErrorf(op, err)
	}
	if C, err = matrix.Mul(C, Hc); err != nil {
		return nil, measureErrorf(op, err)
	}

	return C, nil
}
