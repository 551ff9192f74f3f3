// SPDX-License-Identifier: MIT

package measure

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/graphkernels/matrix"
)

// Normalize divides every entry of m by the population standard deviation of
// all entries. When that deviation is zero the result is an unscaled copy.
//
// Deprecated: kept for callers of the legacy distance pipeline; scale kernel
// parameters with package scaler instead. Each call logs a warning through the
// logger installed with SetLogger.
func Normalize(m matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, measureErrorf(opNormalize, err)
	}
	currentLogger().Warn("call to deprecated function", zap.String("func", "measure.Normalize"))

	mp, err := matrix.ToDense(m, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, measureErrorf(opNormalize, err)
	}
	std := stat.PopStdDev(mp.RawData(), nil)
	if std == 0 {
		return mp, nil
	}
	out, err := matrix.Scale(mp, 1/std)
	if err != nil {
		return nil, measureErrorf(opNormalize, err)
	}

	return out, nil
}
