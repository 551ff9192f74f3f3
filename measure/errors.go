// SPDX-License-Identifier: MIT

package measure

import (
	"fmt"

	"github.com/katalvlaran/graphkernels/matrix"
)

// Sentinel errors are shared with package matrix so callers need a single
// errors.Is target regardless of which layer rejected the input.
var (
	// ErrNilMatrix is returned when an input matrix is nil.
	ErrNilMatrix = matrix.ErrNilMatrix

	// ErrNonSquare is returned when a transform that needs a square matrix
	// receives a rectangular one.
	ErrNonSquare = matrix.ErrNonSquare
)

// Operation tags used in wrapped errors.
const (
	opDegree        = "DegreeMatrix"
	opDegreeInverse = "DegreeMatrixInverse"
	opLaplacian     = "Laplacian"
	opLogKernel     = "LogKernel"
	opKernelToDist  = "KernelToDistance"
	opDistToKernel  = "DistanceToKernel"
	opNormalize     = "Normalize"
)

func measureErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
