// SPDX-License-Identifier: MIT
package measure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/graphkernels/matrix"
	"github.com/katalvlaran/graphkernels/measure"
)

func TestNormalize(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	measure.SetLogger(zap.New(core))
	t.Cleanup(func() { measure.SetLogger(nil) })

	// Population std of {1,3} is 1.
	m := dense(t, [][]float64{{1, 3}, {1, 3}})
	out, err := measure.Normalize(m)
	require.NoError(t, err)
	requireClose(t, m, out)

	m = dense(t, [][]float64{{0, 4}})
	out, err = measure.Normalize(m)
	require.NoError(t, err)
	requireClose(t, dense(t, [][]float64{{0, 2}}), out)

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "measure.Normalize", logs.All()[0].ContextMap()["func"])
}

func TestNormalizeZeroStdReturnsCopy(t *testing.T) {
	m := dense(t, [][]float64{{5, 5}, {5, 5}})
	out, err := measure.Normalize(m)
	require.NoError(t, err)
	requireClose(t, m, out)

	require.NoError(t, out.Set(0, 0, 1))
	assert.Equal(t, 5.0, at(t, m, 0, 0), "result must not alias the input")

	_, err = measure.Normalize(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
