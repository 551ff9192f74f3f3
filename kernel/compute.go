// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphkernels/matrix"
	"github.com/katalvlaran/graphkernels/measure"
)

const opCompute = "kernel.Compute"

// Compute evaluates family f on adjacency A at an already-scaled parameter t.
//
// Implementation:
//   - Stage 1: Validate A (non-nil, square), t (finite) and f.
//   - Stage 2: Build the operand (L from measure.Laplacian, or A itself).
//   - Stage 3: Apply the matrix function through the gonum bridge
//     (matrix.Inverse or matrix.Exp), then the elementwise log for the Log*
//     families.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare for a bad A.
//   - ErrInvalidParameter for NaN/±Inf t, ErrUnknownFamily for an invalid f.
//   - matrix.ErrSingular when the inverse does not exist at t.
//
// Complexity: O(n³).
func Compute(f Family, A matrix.Matrix, t float64) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(A); err != nil {
		return nil, fmt.Errorf("%s(%s): %w", opCompute, f, err)
	}
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return nil, fmt.Errorf("%s(%s): t=%v: %w", opCompute, f, t, ErrInvalidParameter)
	}

	var (
		H   *matrix.Dense
		err error
	)
	switch f {
	case Forest:
		H, err = forest(A, t)
	case LogForest:
		H, err = logOf(forest(A, t))
	case Heat:
		H, err = heat(A, t)
	case LogHeat:
		H, err = logOf(heat(A, t))
	case Walk:
		H, err = walk(A, t)
	case Communicability:
		H, err = communicability(A, t)
	case Resistance:
		H, err = resistance(A)
	default:
		err = ErrUnknownFamily
	}
	if err != nil {
		return nil, fmt.Errorf("%s(%s): %w", opCompute, f, err)
	}

	return H, nil
}

// forest returns (I + t·L)⁻¹.
func forest(A matrix.Matrix, t float64) (*matrix.Dense, error) {
	L, err := measure.Laplacian(A)
	if err != nil {
		return nil, err
	}
	tL, err := matrix.Scale(L, t)
	if err != nil {
		return nil, err
	}
	I, err := matrix.NewIdentity(A.Rows(), matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	M, err := matrix.Add(I, tL)
	if err != nil {
		return nil, err
	}

	return matrix.Inverse(M)
}

// heat returns exp(−t·L).
func heat(A matrix.Matrix, t float64) (*matrix.Dense, error) {
	L, err := measure.Laplacian(A)
	if err != nil {
		return nil, err
	}
	M, err := matrix.Scale(L, -t)
	if err != nil {
		return nil, err
	}

	return matrix.Exp(M)
}

// walk returns (I − t·A)⁻¹.
func walk(A matrix.Matrix, t float64) (*matrix.Dense, error) {
	tA, err := matrix.Scale(A, t)
	if err != nil {
		return nil, err
	}
	I, err := matrix.NewIdentity(A.Rows(), matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	M, err := matrix.Sub(I, tA)
	if err != nil {
		return nil, err
	}

	return matrix.Inverse(M)
}

// communicability returns exp(t·A).
func communicability(A matrix.Matrix, t float64) (*matrix.Dense, error) {
	M, err := matrix.Scale(A, t)
	if err != nil {
		return nil, err
	}

	return matrix.Exp(M)
}

// resistance returns (L + E/n)⁻¹; the E/n shift makes L invertible on a
// connected graph without changing the induced distances.
func resistance(A matrix.Matrix) (*matrix.Dense, error) {
	L, err := measure.Laplacian(A)
	if err != nil {
		return nil, err
	}
	n := A.Rows()
	E, err := matrix.NewOnes(n, n, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	En, err := matrix.Scale(E, 1/float64(n))
	if err != nil {
		return nil, err
	}
	M, err := matrix.Add(L, En)
	if err != nil {
		return nil, err
	}

	return matrix.Inverse(M)
}

func logOf(H *matrix.Dense, err error) (*matrix.Dense, error) {
	if err != nil {
		return nil, err
	}

	return measure.LogKernel(H)
}
