// SPDX-License-Identifier: MIT

package kernel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/graphkernels/scaler"
)

var (
	// ErrUnknownFamily is returned for a Family outside the declared set.
	ErrUnknownFamily = errors.New("kernel: unknown family")

	// ErrInvalidParameter is returned when a scaled parameter is NaN or ±Inf.
	ErrInvalidParameter = errors.New("kernel: non-finite parameter")
)

// Family selects a graph kernel formula.
type Family uint8

const (
	// Forest is the regularized Laplacian (I + t·L)⁻¹.
	Forest Family = iota
	// LogForest is the elementwise logarithm of Forest.
	LogForest
	// Heat is the heat kernel exp(−t·L).
	Heat
	// LogHeat is the elementwise logarithm of Heat.
	LogHeat
	// Walk is the walk (Katz) kernel (I − t·A)⁻¹.
	Walk
	// Communicability is exp(t·A).
	Communicability
	// Resistance is (L + E/n)⁻¹. KernelToDistance of it is half the
	// effective resistance between vertices.
	Resistance
)

var familyNames = [...]string{
	Forest:          "forest",
	LogForest:       "log_forest",
	Heat:            "heat",
	LogHeat:         "log_heat",
	Walk:            "walk",
	Communicability: "communicability",
	Resistance:      "resistance",
}

var defaultScalers = [...]scaler.Kind{
	Forest:          scaler.Fraction,
	LogForest:       scaler.Fraction,
	Heat:            scaler.Fraction,
	LogHeat:         scaler.Fraction,
	Walk:            scaler.Rho,
	Communicability: scaler.Fraction,
	Resistance:      scaler.Linear,
}

// Families returns every declared family in declaration order.
func Families() []Family {
	out := make([]Family, len(familyNames))
	for i := range out {
		out[i] = Family(i)
	}

	return out
}

func (f Family) String() string {
	if f.Valid() {
		return familyNames[f]
	}

	return fmt.Sprintf("Family(%d)", uint8(f))
}

// Valid reports whether f is one of the declared families.
func (f Family) Valid() bool { return int(f) < len(familyNames) }

// DefaultScaler is the scaler kind conventionally paired with the family.
// Unknown families fall back to Linear.
func (f Family) DefaultScaler() scaler.Kind {
	if !f.Valid() {
		return scaler.Linear
	}

	return defaultScalers[f]
}

// ParseFamily resolves a case-insensitive family name such as "log_forest"
// or "log-forest".
func ParseFamily(s string) (Family, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for f, n := range familyNames {
		if n == name {
			return Family(f), nil
		}
	}

	return 0, fmt.Errorf("kernel: %q: %w", s, ErrUnknownFamily)
}

// MarshalText implements encoding.TextMarshaler.
func (f Family) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("kernel: %d: %w", uint8(f), ErrUnknownFamily)
	}

	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Family) UnmarshalText(b []byte) error {
	parsed, err := ParseFamily(string(b))
	if err != nil {
		return err
	}
	*f = parsed

	return nil
}
