// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphkernels/kernel"
	"github.com/katalvlaran/graphkernels/scaler"
)

// ErrInvalidConfig wraps every validation failure reported by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is one graph-kernel clustering run.
type Config struct {
	Graph   GraphConfig   `yaml:"graph"`
	Kernel  KernelConfig  `yaml:"kernel"`
	Cluster ClusterConfig `yaml:"cluster"`
	Log     LogConfig     `yaml:"log"`
}

// GraphConfig describes the input graph as a dense adjacency matrix, an edge
// list or a generated fixture; exactly one of the three must be set.
type GraphConfig struct {
	Adjacency [][]float64      `yaml:"adjacency,omitempty" validate:"omitempty,dive,min=1"`
	Edges     []Edge           `yaml:"edges,omitempty" validate:"omitempty,dive"`
	Generator *GeneratorConfig `yaml:"generator,omitempty"`
	// Vertices fixes the row order. With Edges it may also name isolated
	// vertices; with Adjacency it labels the rows.
	Vertices []string `yaml:"vertices,omitempty" validate:"omitempty,unique,dive,required"`
	Directed bool     `yaml:"directed"`
	// RequireSymmetric and Symmetrize are exclusive: reject or repair A ≠ Aᵀ.
	RequireSymmetric bool    `yaml:"require_symmetric,omitempty" validate:"excluded_with=Symmetrize"`
	Symmetrize       bool    `yaml:"symmetrize,omitempty"`
	Tolerance        float64 `yaml:"tolerance,omitempty" validate:"gte=0,lte=1"`
}

// Edge is one weighted edge. A zero weight means weight 1.
type Edge struct {
	From   string  `yaml:"from" validate:"required"`
	To     string  `yaml:"to" validate:"required"`
	Weight float64 `yaml:"weight,omitempty" validate:"gte=0"`
}

// GeneratorConfig names a builder topology. N is the vertex count (rows for
// grid, left side for bipartite) and M the second dimension. P is the edge
// probability of random graphs; planted_partition uses Sizes, PIn and POut
// and carries ground-truth communities.
type GeneratorConfig struct {
	Kind  string  `yaml:"kind" validate:"oneof=path cycle star wheel complete bipartite grid random planted_partition"`
	N     int     `yaml:"n,omitempty" validate:"gte=0"`
	M     int     `yaml:"m,omitempty" validate:"gte=0"`
	P     float64 `yaml:"p,omitempty" validate:"gte=0,lte=1"`
	Sizes []int   `yaml:"sizes,omitempty" validate:"omitempty,dive,gte=1"`
	PIn   float64 `yaml:"p_in,omitempty" validate:"gte=0,lte=1"`
	POut  float64 `yaml:"p_out,omitempty" validate:"gte=0,lte=1"`
	Seed  int64   `yaml:"seed"`
}

// KernelConfig selects the kernel family and the raw parameters to sweep.
type KernelConfig struct {
	Family kernel.Family `yaml:"family"`
	Params []float64     `yaml:"params" validate:"required,min=1"`
	// Scaler overrides Family.DefaultScaler when set.
	Scaler *scaler.Kind `yaml:"scaler,omitempty"`
}

// ClusterConfig selects the clustering adapter.
type ClusterConfig struct {
	Algorithm string `yaml:"algorithm" validate:"oneof=kmeans ward"`
	NClusters int    `yaml:"n_clusters" validate:"gte=1"`
	Seed      int64  `yaml:"seed"`
	NInit     int    `yaml:"n_init,omitempty" validate:"gte=0"`
	MaxIter   int    `yaml:"max_iter,omitempty" validate:"gte=0"`
}

// LogConfig configures the zap logger of the CLI.
type LogConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// Default returns the values used for every field a document leaves out.
func Default() Config {
	return Config{
		Kernel:  KernelConfig{Family: kernel.Forest},
		Cluster: ClusterConfig{Algorithm: "kmeans", NClusters: 2},
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes a YAML document on top of Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field constraints and that the graph is given exactly once.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterStructValidation(graphSource, GraphConfig{})
}

// graphSource reports an error unless exactly one of adjacency, edges and
// generator is set.
func graphSource(sl validator.StructLevel) {
	g := sl.Current().Interface().(GraphConfig)
	sources := 0
	for _, set := range []bool{len(g.Adjacency) > 0, len(g.Edges) > 0, g.Generator != nil} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		sl.ReportError(g.Adjacency, "Adjacency", "adjacency", "one_graph_source", "")
	}
}
