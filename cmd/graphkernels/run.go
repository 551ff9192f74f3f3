// SPDX-License-Identifier: MIT

package main

import (
	"slices"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphkernels/cluster"
	"github.com/katalvlaran/graphkernels/kernel"
	"github.com/katalvlaran/graphkernels/matrix"
	"github.com/katalvlaran/graphkernels/measure"
	"github.com/katalvlaran/graphkernels/scaler"
)

type runReport struct {
	Family    kernel.Family     `yaml:"family"`
	Scaler    scaler.Kind       `yaml:"scaler"`
	Rho       *float64          `yaml:"rho,omitempty"`
	Algorithm string            `yaml:"algorithm"`
	Vertices  []matrix.VertexID `yaml:"vertices"`
	Results   []runResult       `yaml:"results"`
}

type runResult struct {
	Param  float64  `yaml:"param"`
	Scaled float64  `yaml:"scaled"`
	Labels []int    `yaml:"labels,omitempty,flow"`
	ARI    *float64 `yaml:"ari,omitempty"`
	Error  string   `yaml:"error,omitempty"`
}

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Sweep the kernel parameters and cluster the vertices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd)
		},
	}
}

func (a *app) run(cmd *cobra.Command) error {
	cfg, logger, cleanup, err := a.load()
	if err != nil {
		return err
	}
	defer cleanup()

	g, err := cfg.Graph.BuildGraph()
	if err != nil {
		return err
	}
	p, err := cfg.Kernel.Pipeline(g.A)
	if err != nil {
		return err
	}
	c, err := cfg.Cluster.Clusterer()
	if err != nil {
		return err
	}
	_, components, err := measure.Components(g.A)
	if err != nil {
		return err
	}
	logger.Info("run started",
		zap.Int("vertices", len(g.Vertices)),
		zap.Int("components", components),
		zap.Bool("directed", g.Directed),
		zap.Stringer("family", p.Family),
		zap.Stringer("scaler", p.Scaler),
		zap.String("algorithm", cfg.Cluster.Algorithm),
		zap.Int("params", len(cfg.Kernel.Params)))

	report := runReport{
		Family:    p.Family,
		Scaler:    p.Scaler.Kind(),
		Rho:       spectralRho(p.Scaler),
		Algorithm: cfg.Cluster.Algorithm,
		Vertices:  g.Vertices,
	}
	for step, err := range p.Sweep(g.A, slices.Values(cfg.Kernel.Params)) {
		res := runResult{Param: step.Param, Scaled: step.Scaled}
		start := time.Now()
		if err == nil {
			res.Labels, err = c.Predict(step.K)
		}
		if err == nil && g.Truth != nil {
			var ari float64
			if ari, err = cluster.AdjustedRandIndex(g.Truth, res.Labels); err == nil {
				res.ARI = &ari
			}
		}
		if err != nil {
			logger.Warn("parameter skipped", zap.Float64("param", step.Param), zap.Error(err))
			res.Error = err.Error()
		} else {
			logger.Debug("parameter clustered",
				zap.Float64("param", step.Param),
				zap.Float64("scaled", step.Scaled),
				zap.Duration("cluster_elapsed", time.Since(start)))
		}
		report.Results = append(report.Results, res)
	}

	return writeYAML(cmd.OutOrStdout(), report)
}
