// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const runDoc = `
graph:
  edges:
    - {from: a, to: b}
    - {from: b, to: c}
    - {from: a, to: c}
    - {from: c, to: d}
    - {from: d, to: e}
    - {from: e, to: f}
    - {from: d, to: f}
kernel:
  family: forest
  params: [0.25, 1, 0.5]
cluster:
  algorithm: ward
  n_clusters: 2
log:
  level: error
`

// splitDoc is two disconnected triangles, which Ward separates at every
// forest parameter.
const splitDoc = `
graph:
  edges:
    - {from: a, to: b}
    - {from: b, to: c}
    - {from: a, to: c}
    - {from: d, to: e}
    - {from: e, to: f}
    - {from: d, to: f}
kernel:
  family: forest
  params: [0.25, 1, 0.5]
cluster:
  algorithm: ward
  n_clusters: 2
log:
  level: error
`

func writeConfig(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestRun(t *testing.T) {
	path := writeConfig(t, splitDoc)
	out, err := execute(t, "run", "--config", path)
	require.NoError(t, err)

	var report struct {
		Family    string   `yaml:"family"`
		Scaler    string   `yaml:"scaler"`
		Algorithm string   `yaml:"algorithm"`
		Vertices  []string `yaml:"vertices"`
		Results   []struct {
			Param  float64 `yaml:"param"`
			Scaled float64 `yaml:"scaled"`
			Labels []int   `yaml:"labels"`
			Error  string  `yaml:"error"`
		} `yaml:"results"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))

	assert.Equal(t, "forest", report.Family)
	assert.Equal(t, "fraction", report.Scaler)
	assert.Equal(t, "ward", report.Algorithm)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, report.Vertices)
	require.Len(t, report.Results, 3)

	assert.Equal(t, []int{0, 0, 0, 1, 1, 1}, report.Results[0].Labels)
	assert.Empty(t, report.Results[0].Error)

	// fraction(1) is +Inf, so the middle parameter is reported, not fatal.
	assert.Empty(t, report.Results[1].Labels)
	assert.NotEmpty(t, report.Results[1].Error)

	assert.Equal(t, 0.5, report.Results[2].Param)
	assert.InDelta(t, 0.5, report.Results[2].Scaled, 1e-12)
	assert.Equal(t, []int{0, 0, 0, 1, 1, 1}, report.Results[2].Labels)
}

func TestRunRequiresConfig(t *testing.T) {
	_, err := execute(t, "run")
	require.ErrorIs(t, err, errNoConfig)

	_, err = execute(t, "run", "--config", filepath.Join(t.TempDir(), "none.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestTransform(t *testing.T) {
	path := writeConfig(t, runDoc)

	decode := func(out string) (stage string, m [][]float64) {
		var r struct {
			Stage  string      `yaml:"stage"`
			Matrix [][]float64 `yaml:"matrix"`
		}
		require.NoError(t, yaml.Unmarshal([]byte(out), &r))

		return r.Stage, r.Matrix
	}

	out, err := execute(t, "transform", "-c", path)
	require.NoError(t, err)
	stage, L := decode(out)
	assert.Equal(t, "laplacian", stage)
	require.Len(t, L, 6)
	assert.Equal(t, 3.0, L[2][2])
	assert.Equal(t, -1.0, L[2][3])

	out, err = execute(t, "transform", "-c", path, "--stage", "degree")
	require.NoError(t, err)
	_, D := decode(out)
	assert.Equal(t, 2.0, D[0][0])
	assert.Zero(t, D[0][1])

	for _, s := range []string{"kernel", "distance", "similarity"} {
		out, err = execute(t, "transform", "-c", path, "--stage", s, "--param", "0.5")
		require.NoError(t, err, s)
		got, m := decode(out)
		assert.Equal(t, s, got)
		require.Len(t, m, 6)
	}

	_, err = execute(t, "transform", "-c", path, "--stage", "eigen")
	require.Error(t, err)
}

func TestScale(t *testing.T) {
	out, err := execute(t, "scale", "--kind", "fraction", "0.1", "0.5")
	require.NoError(t, err)

	var r struct {
		Scaler string   `yaml:"scaler"`
		Rho    *float64 `yaml:"rho"`
		Values []struct {
			Value  float64 `yaml:"value"`
			Scaled float64 `yaml:"scaled"`
		} `yaml:"values"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, "fraction", r.Scaler)
	assert.Nil(t, r.Rho)
	require.Len(t, r.Values, 2)
	assert.InDelta(t, 0.1/1.8, r.Values[0].Scaled, 1e-12)
	assert.InDelta(t, 0.5, r.Values[1].Scaled, 1e-12)

	// Spectral kinds need the graph.
	_, err = execute(t, "scale", "--kind", "rho", "1")
	require.ErrorIs(t, err, errNoConfig)

	path := writeConfig(t, "graph:\n  adjacency: [[0, 1], [1, 0]]\nkernel:\n  params: [1]\nlog:\n  level: error\n")
	out, err = execute(t, "scale", "--kind", "rho", "-c", path, "3")
	require.NoError(t, err)
	r.Rho = nil
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, "rho", r.Scaler, "bare kind name, as in run reports")
	require.NotNil(t, r.Rho)
	assert.InDelta(t, 1.0, *r.Rho, 1e-9)
	assert.InDelta(t, 3.0, r.Values[0].Scaled, 1e-9)

	_, err = execute(t, "scale", "--kind", "cubic", "1")
	require.Error(t, err)
	_, err = execute(t, "scale", "--kind", "linear", "abc")
	require.Error(t, err)
}

func TestRunScoresPlantedPartition(t *testing.T) {
	path := writeConfig(t, `
graph:
  generator: {kind: planted_partition, sizes: [4, 4], p_in: 1, p_out: 0}
kernel:
  family: forest
  params: [0.5]
cluster:
  algorithm: ward
  n_clusters: 2
log:
  level: error
`)
	out, err := execute(t, "run", "-c", path)
	require.NoError(t, err)

	var report struct {
		Results []struct {
			Labels []int    `yaml:"labels"`
			ARI    *float64 `yaml:"ari"`
		} `yaml:"results"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	require.Len(t, report.Results, 1)
	assert.Equal(t, []int{0, 0, 0, 0, 1, 1, 1, 1}, report.Results[0].Labels)
	require.NotNil(t, report.Results[0].ARI)
	assert.InDelta(t, 1.0, *report.Results[0].ARI, 1e-12)

	// Hand-written graphs carry no truth, so no score.
	out, err = execute(t, "run", "-c", writeConfig(t, splitDoc))
	require.NoError(t, err)
	assert.NotContains(t, out, "ari:")
}
