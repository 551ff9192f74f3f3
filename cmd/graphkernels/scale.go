// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphkernels/matrix"
	"github.com/katalvlaran/graphkernels/scaler"
)

type scaleReport struct {
	Scaler scaler.Kind `yaml:"scaler"`
	Rho    *float64    `yaml:"rho,omitempty"`
	Values []scaledRow `yaml:"values"`
}

type scaledRow struct {
	Value  float64 `yaml:"value"`
	Scaled float64 `yaml:"scaled"`
}

func newScaleCmd(a *app) *cobra.Command {
	var kindName string
	cmd := &cobra.Command{
		Use:   "scale --kind KIND VALUE...",
		Short: "Apply a parameter scaler to raw values",
		Long: `Prints every VALUE mapped through the scaler of kind --kind
(linear, alpha_to_t, rho, fraction, fraction_reversed).
The spectral kinds alpha_to_t and rho read the graph from --config.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.scale(cmd, kindName, args)
		},
	}
	cmd.Flags().StringVar(&kindName, "kind", scaler.Fraction.String(), "scaler kind")

	return cmd
}

func (a *app) scale(cmd *cobra.Command, kindName string, args []string) error {
	kind, err := scaler.ParseKind(kindName)
	if err != nil {
		return err
	}
	values := make([]float64, len(args))
	for i, s := range args {
		if values[i], err = strconv.ParseFloat(s, 64); err != nil {
			return fmt.Errorf("value %d: %w", i, err)
		}
	}

	var A matrix.Matrix
	if kind.NeedsSpectrum() {
		cfg, _, cleanup, err := a.load()
		if err != nil {
			return fmt.Errorf("scaler %s needs a graph: %w", kind, err)
		}
		defer cleanup()
		g, err := cfg.Graph.BuildGraph()
		if err != nil {
			return err
		}
		A = g.A
	}
	sc, err := scaler.New(kind, A)
	if err != nil {
		return err
	}

	report := scaleReport{Scaler: sc.Kind(), Rho: spectralRho(sc), Values: make([]scaledRow, 0, len(values))}
	i := 0
	for v := range sc.ScaleSlice(values) {
		report.Values = append(report.Values, scaledRow{Value: values[i], Scaled: v})
		i++
	}

	return writeYAML(cmd.OutOrStdout(), report)
}

// spectralRho is the cached spectral radius of spectral scalers, nil otherwise.
func spectralRho(sc scaler.Scaler) *float64 {
	if !sc.Kind().NeedsSpectrum() {
		return nil
	}
	rho := sc.Rho()

	return &rho
}
