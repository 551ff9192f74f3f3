// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical kernel.
//
// Determinism & Policy:
//   - Facades never change the loop orders of underlying kernels.
//   - Constructors accept ...Option; only the numeric policy is consulted.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - ToDense(m, WithNoValidateNaNInf()) turns any Matrix into a permissive
//     operand; every kernel fed with it produces permissive results too.

package matrix

const (
	opDiagonal  = "Diagonal"
	opColSums   = "ColSums"
	opToDense   = "ToDense"
	opSymmetric = "Symmetrize"
	one         = 1.0
)

// ---------- Constructors ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: Hc = I − E/n is built as Sub(NewIdentity(n), Scale(NewOnes(n,n), 1/n)).
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	I, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = one
	}

	return I, nil
}

// NewOnes returns the rows×cols all-ones matrix E.
// Complexity: O(r*c).
func NewOnes(rows, cols int, opts ...Option) (*Dense, error) {
	E, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	for idx := range E.data {
		E.data[idx] = one
	}

	return E, nil
}

// NewDiagonal returns the square matrix diag(values).
// Implementation:
//   - Stage 1: require len(values) > 0.
//   - Stage 2: write values on the diagonal; the numeric policy from opts
//     decides whether ±Inf/NaN values are accepted.
//
// Errors:
//   - ErrInvalidDimensions (empty values), ErrNaNInf (non-finite value under the policy).
//
// Complexity:
//   - Time O(n²) (zeroing), Space O(n²).
func NewDiagonal(values []float64, opts ...Option) (*Dense, error) {
	n := len(values)
	D, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxDiagonal, err)
	}
	for i, v := range values {
		if err = D.Set(i, i, v); err != nil {
			return nil, matrixErrorf(ctxDiagonal, err)
		}
	}

	return D, nil
}

// ToDense copies any Matrix into a fresh *Dense whose numeric policy comes
// from opts (default: validating). Copying a non-finite value into a
// validating result fails with ErrNaNInf.
// Complexity: O(r*c).
func ToDense(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToDense, err)
	}
	o := gatherOptions(opts...)

	return ewMap(m, identityFn, o.validateNaNInf)
}

func identityFn(v float64) float64 { return v }

// Map returns a fresh matrix with out[i,j] = f(m[i,j]).
// The numeric policy of the result comes from opts, not from m.
// Errors: ErrNilMatrix, ErrNaNInf (validating result received a non-finite value).
// Complexity: O(r*c).
func Map(m Matrix, f func(float64) float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	return ewMap(m, f, o.validateNaNInf)
}

// ---------- Reductions ----------

// Diagonal returns the main diagonal of a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n).
func Diagonal(m Matrix) ([]float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}
	n := m.Rows()
	out := make([]float64, n)
	var err error
	for i := 0; i < n; i++ {
		if out[i], err = m.At(i, i); err != nil {
			return nil, matrixErrorf(opDiagonal, err)
		}
	}

	return out, nil
}

// RowSums returns vector r where r[i] = sum_j m[i,j].
// Implementation: MatVec(m, ones(cols)). No custom loops.
// Complexity: O(rc).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("RowSums", err)
	}

	return MatVec(m, onesVec(m.Cols()))
}

// ColSums returns vector c where c[j] = sum_i m[i,j] (summation along axis 0).
// Implementation: Transpose then MatVec with ones(rows).
// Complexity: O(rc).
//
// AI-Hints: this is the degree convention of the transform layer.
func ColSums(m Matrix) ([]float64, error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf(opColSums, err)
	}

	return MatVec(mt, onesVec(mt.Cols()))
}

func onesVec(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = one
	}

	return v
}

// Symmetrize returns (m + mᵀ)/2. Deterministic composition: Transpose → Add → Scale.
// Complexity: O(rc).
//
// AI-Hints: Useful to repair asymmetry drift of user adjacency before spectral work.
func Symmetrize(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opSymmetric, err)
	}
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf(opSymmetric, err)
	}
	sum, err := Add(m, mt)
	if err != nil {
		return nil, matrixErrorf(opSymmetric, err)
	}

	return Scale(sum, 0.5)
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN is never close; +Inf equals +Inf; -Inf equals -Inf.
// Time: O(r*c). Space: O(1). Deterministic.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests in unit tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}
