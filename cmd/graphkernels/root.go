// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphkernels/cluster"
	"github.com/katalvlaran/graphkernels/config"
	"github.com/katalvlaran/graphkernels/measure"
)

var errNoConfig = errors.New("--config is required")

// app carries the flags shared by every subcommand.
type app struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "graphkernels",
		Short:        "Cluster graph vertices with graph kernels",
		Long:         `Builds a kernel similarity from a graph adjacency, sweeps the kernel parameter and clusters the vertices at every step.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to the YAML run configuration")

	root.AddCommand(
		newRunCmd(a),
		newTransformCmd(a),
		newScaleCmd(a),
	)

	return root
}

// load reads the configuration and installs its logger in the library
// packages. The returned cleanup flushes the logger.
func (a *app) load() (config.Config, *zap.Logger, func(), error) {
	if a.configPath == "" {
		return config.Config{}, nil, nil, errNoConfig
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	logger, err := cfg.Log.Logger()
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	measure.SetLogger(logger)
	cluster.SetLogger(logger)
	cleanup := func() {
		_ = logger.Sync()
		measure.SetLogger(nil)
		cluster.SetLogger(nil)
	}

	return cfg, logger, cleanup, nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}
