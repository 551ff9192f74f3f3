// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Bridge Matrix values to gonum.org/v1/gonum/mat for the factorizations the
//     graph kernels need: general eigenvalues, inverse and matrix exponential.
//   - Pre-empt gonum panics (non-square input) with ErrNonSquare so no public
//     entry point panics on user input.
//
// Determinism:
//   - gonum/LAPACK routines are deterministic for identical input.
//
// AI-Hints:
//   - Conversions copy in O(n²); keep the gonum side short-lived.
//   - Results of Inverse/Exp are allocated with the NaN/Inf policy of the operand.

package matrix

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// toGonum copies m into a fresh *mat.Dense (row-major, same shape).
// Complexity: O(r*c).
func toGonum(m Matrix) (*mat.Dense, error) {
	r, c := m.Rows(), m.Cols()
	if d, ok := m.(*Dense); ok {
		cp := make([]float64, len(d.data))
		copy(cp, d.data)

		return mat.NewDense(r, c, cp), nil
	}

	buf := make([]float64, r*c)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			buf[i*c+j] = v
		}
	}

	return mat.NewDense(r, c, buf), nil
}

// fromGonum copies a gonum matrix back into a *Dense with the given policy.
// Complexity: O(r*c).
func fromGonum(g mat.Matrix, validateNaNInf bool) *Dense {
	r, c := g.Dims()
	res := newDenseWithPolicy(r, c, validateNaNInf)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			res.data[i*c+j] = g.At(i, j)
		}
	}

	return res
}

// Eigenvalues returns the (possibly complex) eigenvalues of a square matrix.
// Implementation:
//   - Stage 1: ValidateSquareNonNil.
//   - Stage 2: mat.Eigen.Factorize with EigenNone (values only, general real matrix).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrMatrixEigenFailed (LAPACK did not converge).
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - Order of the returned values follows LAPACK and is not sorted.
func Eigenvalues(m Matrix) ([]complex128, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	g, err := toGonum(m)
	if err != nil {
		return nil, matrixErrorf(opEigen, err)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(g, mat.EigenNone); !ok {
		return nil, matrixErrorf(opEigen, ErrMatrixEigenFailed)
	}

	return eig.Values(nil), nil
}

// SpectralRadius returns rho(m) = max |λ| over the eigenvalues of m.
// Errors as Eigenvalues. A matrix with NaN entries yields NaN or ErrMatrixEigenFailed.
// Complexity: O(n³).
func SpectralRadius(m Matrix) (float64, error) {
	vals, err := Eigenvalues(m)
	if err != nil {
		return 0, err
	}

	rho := 0.0
	for _, v := range vals {
		rho = math.Max(rho, cmplx.Abs(v))
	}

	return rho, nil
}

// Inverse returns m⁻¹ computed by gonum (LU with partial pivoting).
// Implementation:
//   - Stage 1: ValidateSquareNonNil.
//   - Stage 2: mat.Dense.Inverse; any gonum error (singular or ill-conditioned
//     beyond mat.ConditionTolerance) maps to ErrSingular.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	g, err := toGonum(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var inv mat.Dense
	if err = inv.Inverse(g); err != nil {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	return fromGonum(&inv, validatesNaNInf(m)), nil
}

// Exp returns the matrix exponential e^m (Padé approximation with scaling and
// squaring, as implemented by gonum).
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf (validating operand overflowed).
// Complexity: O(n³).
func Exp(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opExp, err)
	}
	g, err := toGonum(m)
	if err != nil {
		return nil, matrixErrorf(opExp, err)
	}

	var e mat.Dense
	e.Exp(g)

	res := fromGonum(&e, validatesNaNInf(m))
	if err = enforcePolicy(res, opExp); err != nil {
		return nil, err
	}

	return res, nil
}
