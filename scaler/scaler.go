// SPDX-License-Identifier: MIT
// Package scaler - parameter remapping for kernel families.
//
// Purpose:
//   - Convert a kernel control parameter (α, t or β) into the domain a kernel
//     formula expects, optionally normalized by the spectral radius ρ of A.
//
// Design:
//   - Scaler is a small value type: a Kind tag plus the only datum any kind
//     needs (ρ, for spectral kinds). Scale is a single switch over the tag.
//   - ρ is computed once, eagerly, at construction.
//
// AI-Hints:
//   - Singular points (t=1 for Fraction, β=0 for FractionReversed) return
//     ±Inf or NaN; nothing is clamped.

package scaler

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/graphkernels/matrix"
)

// ErrUnknownKind is returned for a Kind outside the declared set.
var ErrUnknownKind = errors.New("scaler: unknown kind")

// Scaler remaps scalar parameters. The zero value is a Linear scaler.
type Scaler struct {
	kind Kind
	rho  float64 // spectral radius of A; zero for non-spectral kinds
}

// New builds a Scaler of the given kind.
// Implementation:
//   - Stage 1: reject unknown kinds.
//   - Stage 2: for AlphaToT and Rho compute ρ = max|λ(A)| via the gonum eigen
//     solver; other kinds ignore A, so nil is allowed there.
//
// Errors:
//   - ErrUnknownKind.
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrMatrixEigenFailed
//     (spectral kinds only).
//
// Complexity:
//   - O(n³) for spectral kinds, O(1) otherwise.
func New(kind Kind, A matrix.Matrix) (Scaler, error) {
	if !kind.Valid() {
		return Scaler{}, fmt.Errorf("scaler.New: %d: %w", uint8(kind), ErrUnknownKind)
	}
	if !kind.NeedsSpectrum() {
		return Scaler{kind: kind}, nil
	}

	rho, err := matrix.SpectralRadius(A)
	if err != nil {
		return Scaler{}, fmt.Errorf("scaler.New(%s): %w", kind, err)
	}

	return Scaler{kind: kind, rho: rho}, nil
}

// NewLinear returns the identity scaler.
func NewLinear() Scaler { return Scaler{kind: Linear} }

// NewAlphaToT returns an AlphaToT scaler for adjacency A.
func NewAlphaToT(A matrix.Matrix) (Scaler, error) { return New(AlphaToT, A) }

// NewRho returns a Rho scaler for adjacency A.
func NewRho(A matrix.Matrix) (Scaler, error) { return New(Rho, A) }

// NewFraction returns the forward fraction scaler.
func NewFraction() Scaler { return Scaler{kind: Fraction} }

// NewFractionReversed returns the reversed fraction scaler.
func NewFractionReversed() Scaler { return Scaler{kind: FractionReversed} }

// Kind returns the tag of s.
func (s Scaler) Kind() Kind { return s.kind }

// Rho returns the cached spectral radius (zero for non-spectral kinds).
func (s Scaler) Rho() float64 { return s.rho }

// String renders the kind, with ρ for spectral kinds.
func (s Scaler) String() string {
	if s.kind.NeedsSpectrum() {
		return fmt.Sprintf("%s(rho=%g)", s.kind, s.rho)
	}

	return s.kind.String()
}

// Scale maps one parameter value.
//
//	Linear            v
//	AlphaToT          1/(1/v + ρ)
//	Rho               v/ρ
//	Fraction          ½·v/(1−v)
//	FractionReversed  (1−v)/v
//
// IEEE semantics apply at singular points: Fraction(1) = +Inf,
// FractionReversed(0) = +Inf, Rho with ρ = 0 gives ±Inf or NaN.
func (s Scaler) Scale(v float64) float64 {
	switch s.kind {
	case AlphaToT:
		return 1 / (1/v + s.rho)
	case Rho:
		return v / s.rho
	case Fraction:
		return 0.5 * v / (1.0 - v)
	case FractionReversed:
		return (1.0 - v) / v
	default:
		return v
	}
}

// ScaleSeq lazily maps every value of values, preserving order. Nothing is
// computed until the result is ranged over, and the result can be ranged over
// again exactly when values can.
func (s Scaler) ScaleSeq(values iter.Seq[float64]) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for v := range values {
			if !yield(s.Scale(v)) {
				return
			}
		}
	}
}

// ScaleSlice is ScaleSeq over the elements of a slice.
func (s Scaler) ScaleSlice(values []float64) iter.Seq[float64] {
	return s.ScaleSeq(slices.Values(values))
}
