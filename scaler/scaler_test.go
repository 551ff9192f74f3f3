// SPDX-License-Identifier: MIT
package scaler_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/graphkernels/matrix"
	"github.com/katalvlaran/graphkernels/scaler"
)

type ScalerSuite struct {
	suite.Suite
	triangle *matrix.Dense // K3, spectral radius 2
}

func (s *ScalerSuite) SetupTest() {
	A, err := matrix.NewDenseFromRows([][]float64{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}})
	s.Require().NoError(err)
	s.triangle = A
}

func TestScalerSuite(t *testing.T) {
	suite.Run(t, new(ScalerSuite))
}

func (s *ScalerSuite) TestFormulas() {
	cases := []struct {
		kind scaler.Kind
		in   float64
		want float64
	}{
		{scaler.Linear, 0.3, 0.3},
		{scaler.AlphaToT, 1, 1.0 / 3},
		{scaler.Rho, 0.5, 0.25},
		{scaler.Fraction, 0.5, 0.5},
		{scaler.Fraction, 0.2, 0.125},
		{scaler.FractionReversed, 0.25, 3},
	}
	for _, tc := range cases {
		sc, err := scaler.New(tc.kind, s.triangle)
		s.Require().NoError(err)
		s.InDelta(tc.want, sc.Scale(tc.in), 1e-12, "%s(%v)", tc.kind, tc.in)
		s.Equal(tc.kind, sc.Kind())
	}
}

func (s *ScalerSuite) TestSpectralKindsCacheRho() {
	for _, k := range []scaler.Kind{scaler.AlphaToT, scaler.Rho} {
		sc, err := scaler.New(k, s.triangle)
		s.Require().NoError(err)
		s.InDelta(2.0, sc.Rho(), 1e-12)
	}
	s.Equal(0.0, scaler.NewFraction().Rho())
}

func (s *ScalerSuite) TestAlphaToTStaysBelowInverseRho() {
	sc, err := scaler.NewAlphaToT(s.triangle)
	s.Require().NoError(err)
	for _, alpha := range []float64{1e-6, 0.1, 1, 10, 1e6} {
		tp := sc.Scale(alpha)
		s.Greater(tp, 0.0)
		s.Less(tp, 1/sc.Rho())
	}
}

func (s *ScalerSuite) TestFractionRoundTrip() {
	sc := scaler.NewFraction()
	for t := 0.01; t < 1; t += 0.07 {
		tp := sc.Scale(t)
		s.InDelta(t, 2*tp/(1+2*tp), 1e-12)
	}
}

func (s *ScalerSuite) TestFractionReversedDivergesAndDecreases() {
	sc := scaler.NewFractionReversed()
	prev := math.Inf(1)
	for _, beta := range []float64{1e-9, 1e-6, 1e-3, 0.1, 0.5, 0.9, 0.999} {
		v := sc.Scale(beta)
		s.Less(v, prev, "beta=%v", beta)
		prev = v
	}
	s.Greater(sc.Scale(1e-12), 1e11)
}

func (s *ScalerSuite) TestRhoIsLinear() {
	sc, err := scaler.NewRho(s.triangle)
	s.Require().NoError(err)
	a, b := 0.3, 1.7
	s.InDelta(sc.Scale(a)+sc.Scale(b), sc.Scale(a+b), 1e-12)
	s.InDelta(3*sc.Scale(a), sc.Scale(3*a), 1e-12)
	s.Equal(0.0, sc.Scale(0))
}

func (s *ScalerSuite) TestSingularPointsPropagate() {
	s.True(math.IsInf(scaler.NewFraction().Scale(1), 1))
	s.True(math.IsInf(scaler.NewFractionReversed().Scale(0), 1))

	// Edgeless graph: rho = 0.
	zero, err := matrix.NewZeros(2, 2)
	s.Require().NoError(err)
	sc, err := scaler.NewRho(zero)
	s.Require().NoError(err)
	s.True(math.IsInf(sc.Scale(1), 1))
	s.True(math.IsNaN(sc.Scale(0)))
}

func (s *ScalerSuite) TestConstructionErrors() {
	_, err := scaler.NewRho(nil)
	s.ErrorIs(err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	s.Require().NoError(err)
	_, err = scaler.NewAlphaToT(rect)
	s.ErrorIs(err, matrix.ErrNonSquare)

	_, err = scaler.New(scaler.Kind(42), nil)
	s.ErrorIs(err, scaler.ErrUnknownKind)

	// Non-spectral kinds ignore A entirely.
	sc, err := scaler.New(scaler.Fraction, nil)
	s.NoError(err)
	s.Equal(scaler.Fraction, sc.Kind())
}

func (s *ScalerSuite) TestScaleSeqIsLazyAndOrdered() {
	sc := scaler.NewFraction()
	var pulled int
	src := func(yield func(float64) bool) {
		for _, v := range []float64{0.2, 0.5, 0.8} {
			pulled++
			if !yield(v) {
				return
			}
		}
	}

	seq := sc.ScaleSeq(src)
	s.Equal(0, pulled, "nothing is computed before iteration")

	for v := range seq {
		s.InDelta(0.125, v, 1e-12)
		break
	}
	s.Equal(1, pulled, "early stop pulls a single value")

	got := slices.Collect(sc.ScaleSlice([]float64{0.2, 0.5, 0.8}))
	s.InDeltaSlice([]float64{0.125, 0.5, 2}, got, 1e-12)

	// Restartable because the slice source is.
	again := sc.ScaleSlice([]float64{0.5})
	s.Equal(slices.Collect(again), slices.Collect(again))
}

func (s *ScalerSuite) TestZeroValueIsLinear() {
	var sc scaler.Scaler
	s.Equal(scaler.Linear, sc.Kind())
	s.Equal(0.42, sc.Scale(0.42))
	s.Equal("linear", sc.String())
}
