// SPDX-License-Identifier: MIT

package scaler

import (
	"fmt"
	"strings"
)

// Kind tags the parameter remapping a Scaler applies.
type Kind uint8

const (
	// Linear leaves the parameter unchanged: t' = t.
	Linear Kind = iota
	// AlphaToT maps α ∈ (0,∞) into (0, 1/ρ): t' = 1/(1/α + ρ).
	AlphaToT
	// Rho normalizes by the spectral radius: t' = t/ρ.
	Rho
	// Fraction maps t ∈ (0,1) onto (0,∞): t' = ½·t/(1−t).
	Fraction
	// FractionReversed maps β ∈ (0,1) onto (0,∞): β' = (1−β)/β.
	FractionReversed
)

var kindNames = [...]string{
	Linear:           "linear",
	AlphaToT:         "alpha_to_t",
	Rho:              "rho",
	Fraction:         "fraction",
	FractionReversed: "fraction_reversed",
}

// String returns the canonical snake_case name, as accepted by ParseKind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return int(k) < len(kindNames) }

// NeedsSpectrum reports whether the kind depends on the spectral radius of
// the adjacency matrix.
func (k Kind) NeedsSpectrum() bool { return k == AlphaToT || k == Rho }

// ParseKind resolves a case-insensitive kind name. Hyphens are accepted in
// place of underscores ("alpha-to-t").
func ParseKind(s string) (Kind, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("scaler: %q: %w", s, ErrUnknownKind)
}

// MarshalText implements encoding.TextMarshaler (YAML and JSON use it).
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("scaler: %d: %w", uint8(k), ErrUnknownKind)
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}
