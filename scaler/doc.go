// SPDX-License-Identifier: MIT

// Package scaler remaps kernel parameters before they enter a kernel formula.
//
// A Scaler is a tagged union of five kinds:
//
//	Linear            t' = t                 (shortest path, commute time)
//	AlphaToT          t' = 1/(1/α + ρ)       α > 0 ⇒ 0 < t' < 1/ρ
//	Rho               t' = t/ρ               (walk, p-walk)
//	Fraction          t' = ½·t/(1−t)         (forest, heat, communicability and their logs)
//	FractionReversed  β' = (1−β)/β           (randomized shortest path, free energy)
//
// ρ is the spectral radius of the adjacency matrix, computed once by New.
// ScaleSeq and ScaleSlice produce lazy iter.Seq sequences, one output per input.
package scaler
