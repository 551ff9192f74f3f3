// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise kernels (ew*) to avoid duplicating
//     tight loops across the public facades (Map, AllClose).
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

import (
	"math"
)

// ewMap computes out[i,j] = f(X[i,j]) into a fresh Dense with the given policy.
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
//
// AI-Hint: elementwise log of a kernel is ewMap(H0, math.Log, false).
func ewMap(X Matrix, f func(float64) float64, validateNaNInf bool) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("Map", err)
	}
	r, c := X.Rows(), X.Cols()
	out := newDenseWithPolicy(r, c, validateNaNInf)

	// Dense fast-path: single pass over the flat row-major buffer.
	if d, ok := X.(*Dense); ok {
		for idx, v := range d.data {
			out.data[idx] = f(v)
		}
	} else {
		var (
			i, j int
			v    float64
			err  error
		)
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = X.At(i, j); err != nil {
					return nil, matrixErrorf("Map", err)
				}
				out.data[i*c+j] = f(v)
			}
		}
	}

	if err := enforcePolicy(out, "Map"); err != nil {
		return nil, err
	}

	return out, nil
}

// closeEnough reports |a-b| ≤ atol + rtol*|b| with IEEE special cases:
// equal infinities are close, NaN is never close to anything.
func closeEnough(a, b, rtol, atol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// ewAllClose checks element-wise closeness for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf("AllClose", ErrNaNInf) // invalid tolerance
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	// Dense fast-path: operate over flat slices when both are *Dense.
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for idx := range da.data {
			if !closeEnough(da.data[idx], db.data[idx], rtol, atol) {
				return false, nil // early-exit on first violation
			}
		}

		return true, nil
	}

	// Generic fallback via At (bounds-safe; still deterministic).
	r, c := a.Rows(), a.Cols()
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if !closeEnough(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}
