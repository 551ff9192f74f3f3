// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// transpose, scalar scaling and matrix-vector products. All functions perform
// strict fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical linear-algebra kernels used by the transform layer.
//   - Define operation tags for deterministic error reporting.
//
// Numeric policy:
//   - Results inherit the NaN/Inf policy of their operands: a result validates
//     only when every operand validates (non-Dense operands count as validating).
//   - A validating result is scanned once after the kernel; a non-finite value
//     yields ErrNaNInf. A non-validating result carries ±Inf/NaN through.

package matrix

import (
	"fmt"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opEigen     = "Eigenvalues"
	opInverse   = "Inverse"
	opExp       = "Exp"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
//
// Notes:
//   - Wrapping nil with %w yields a non-nil error that wraps a nil cause; only call with err != nil.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validatesNaNInf reports the effective numeric policy of an operand.
func validatesNaNInf(m Matrix) bool {
	if d, ok := m.(*Dense); ok {
		return d.validateNaNInf
	}

	return DefaultValidateNaNInf
}

// resultPolicy combines operand policies: validate only if all operands validate.
func resultPolicy(ms ...Matrix) bool {
	for _, m := range ms {
		if !validatesNaNInf(m) {
			return false
		}
	}

	return true
}

// enforcePolicy scans a freshly computed result when its policy is on.
// Complexity: O(r*c) when validating, O(1) otherwise.
func enforcePolicy(res *Dense, opTag string) error {
	if !res.validateNaNInf {
		return nil
	}
	for idx, v := range res.data {
		if isNonFinite(v) {
			return matrixErrorf(opTag, denseErrorf(opTag, idx/res.c, idx%res.c, ErrNaNInf))
		}
	}

	return nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result with the combined policy.
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At with fixed i→j order.
//   - Stage 3: enforce the result policy.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation); ErrNaNInf (validating result overflowed).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
//
// AI-Hints:
//   - To trigger fast-path, pass concrete *Dense operands (avoid interface wrappers).
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res := newDenseWithPolicy(rows, cols, resultPolicy(a, b))

	// Fast path: *Dense with *Dense → single flat loop.
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for idx := range res.data { // deterministic 0..n-1
			res.data[idx] = da.data[idx] + sign*db.data[idx]
		}

		if err := enforcePolicy(res, opTag); err != nil {
			return nil, err
		}

		return res, nil
	}

	// Fallback: interface path with fixed i→j order.
	var (
		i, j   int
		av, bv float64
		err    error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	if err = enforcePolicy(res, opTag); err != nil {
		return nil, err
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: If both are *Dense, run a single flat loop; otherwise fall back to i→j.
//
// Inputs:
//   - a: left matrix operand (any Matrix).
//   - b: right matrix operand (any Matrix) with the same shape as a.
//
// Returns:
//   - *Dense: C[i,j] = A[i,j] + B[i,j], with the combined numeric policy.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch), ErrNaNInf (policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	return addSub(a, b, 1, opAdd)
}

// Sub computes the element-wise difference C = A − B; see Add for the contract.
func Sub(a, b Matrix) (*Dense, error) {
	return addSub(a, b, -1, opSub)
}

// Mul computes the matrix product C = A × B (A is r×k, B is k×c).
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: *Dense fast-path with i→p→j loop order (streams rows of B);
//     generic At fallback with the same order.
//
// Behavior highlights:
//   - The i→p→j order keeps the innermost loop contiguous on both B and C.
//   - Zero entries of A are not skipped: 0·Inf must stay NaN.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (validating result).
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	r, k, c := a.Rows(), a.Cols(), b.Cols()
	res := newDenseWithPolicy(r, c, resultPolicy(a, b))

	var (
		i, p, j        int
		aip, bpj       float64
		rowC, rowB, rA int
		err            error
	)
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for i = 0; i < r; i++ {
			rowC = i * c
			rA = i * k
			for p = 0; p < k; p++ {
				aip = da.data[rA+p]
				rowB = p * c
				for j = 0; j < c; j++ {
					res.data[rowC+j] += aip * db.data[rowB+j]
				}
			}
		}
	} else {
		for i = 0; i < r; i++ {
			rowC = i * c
			for p = 0; p < k; p++ {
				if aip, err = a.At(i, p); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				for j = 0; j < c; j++ {
					if bpj, err = b.At(p, j); err != nil {
						return nil, matrixErrorf(opMul, err)
					}
					res.data[rowC+j] += aip * bpj
				}
			}
		}
	}

	if err = enforcePolicy(res, opMul); err != nil {
		return nil, err
	}

	return res, nil
}

// Transpose returns a fresh Aᵀ (c×r) with the operand's numeric policy.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	r, c := m.Rows(), m.Cols()
	res := newDenseWithPolicy(c, r, validatesNaNInf(m))

	var (
		i, j int
		v    float64
		err  error
	)
	if d, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				res.data[j*r+i] = d.data[i*c+j]
			}
		}

		return res, nil
	}
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*r+i] = v
		}
	}

	return res, nil
}

// Scale returns alpha·m as a fresh Dense.
// Implementation:
//   - Stage 1: ValidateNotNil; alpha itself may be non-finite only for
//     non-validating operands (the result scan rejects it otherwise).
//   - Stage 2: flat multiply on *Dense, At fallback otherwise.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (validating result).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	r, c := m.Rows(), m.Cols()
	res := newDenseWithPolicy(r, c, validatesNaNInf(m))

	if d, ok := m.(*Dense); ok {
		for idx, v := range d.data {
			res.data[idx] = alpha * v
		}
	} else {
		var (
			i, j int
			v    float64
			err  error
		)
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, matrixErrorf(opScale, err)
				}
				res.data[i*c+j] = alpha * v
			}
		}
	}

	if err := enforcePolicy(res, opScale); err != nil {
		return nil, err
	}

	return res, nil
}

// MatVec computes y = m·x for an r×c matrix and a length-c vector.
// Errors: ErrNilMatrix (nil m or x), ErrDimensionMismatch (len(x) != c).
// Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	r, c := m.Rows(), m.Cols()
	y := make([]float64, r)

	var (
		i, j int
		v    float64
		err  error
		sum  float64
	)
	for i = 0; i < r; i++ {
		sum = 0
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}
