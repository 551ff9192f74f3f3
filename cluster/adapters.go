// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/graphkernels/matrix"
)

const (
	opPredict      = "Predict"
	opNewClusterer = "NewClusterer"
)

// Algorithm names accepted by NewClusterer.
const (
	AlgorithmKMeans = "kmeans"
	AlgorithmWard   = "ward"
)

// Clusterer assigns a cluster label to every row of a square similarity matrix.
type Clusterer interface {
	Predict(K matrix.Matrix) ([]int, error)
}

// KernelKMeans runs k-means on the rows of a precomputed kernel.
type KernelKMeans struct {
	NClusters int

	opts   []Option
	labels []int
}

// NewKernelKMeans returns a k-means adapter for n clusters.
// Options are forwarded to KMeans on every Predict.
func NewKernelKMeans(n int, opts ...Option) *KernelKMeans {
	return &KernelKMeans{NClusters: n, opts: opts}
}

// Name identifies the adapter in logs and reports.
func (c *KernelKMeans) Name() string { return "KernelKMeans" }

// Predict clusters the rows of K into NClusters groups.
func (c *KernelKMeans) Predict(K matrix.Matrix) ([]int, error) {
	points, err := kernelRows(K)
	if err != nil {
		return nil, err
	}
	res, err := KMeans(points, c.NClusters, c.opts...)
	if err != nil {
		return nil, clusterErrorf(c.Name()+"."+opPredict, err)
	}

	return res.Labels, nil
}

// Fit stores Predict(K) and returns the receiver.
func (c *KernelKMeans) Fit(K matrix.Matrix) (*KernelKMeans, error) {
	labels, err := c.Predict(K)
	if err != nil {
		return c, err
	}
	c.labels = labels

	return c, nil
}

// Labels returns a copy of the labels stored by the last successful Fit.
func (c *KernelKMeans) Labels() []int { return copyLabels(c.labels) }

// KernelWard runs Ward agglomerative clustering on the rows of a kernel.
type KernelWard struct {
	NClusters int

	labels []int
}

// NewKernelWard returns a Ward adapter for n clusters.
func NewKernelWard(n int) *KernelWard {
	return &KernelWard{NClusters: n}
}

// Name identifies the adapter in logs and reports.
func (c *KernelWard) Name() string { return "KernelWard" }

// Predict clusters the rows of K into NClusters groups.
func (c *KernelWard) Predict(K matrix.Matrix) ([]int, error) {
	points, err := kernelRows(K)
	if err != nil {
		return nil, err
	}
	labels, err := Ward(points, c.NClusters)
	if err != nil {
		return nil, clusterErrorf(c.Name()+"."+opPredict, err)
	}

	return labels, nil
}

// Fit stores Predict(K) and returns the receiver.
func (c *KernelWard) Fit(K matrix.Matrix) (*KernelWard, error) {
	labels, err := c.Predict(K)
	if err != nil {
		return c, err
	}
	c.labels = labels

	return c, nil
}

// Labels returns a copy of the labels stored by the last successful Fit.
func (c *KernelWard) Labels() []int { return copyLabels(c.labels) }

// NewClusterer builds an adapter from its configuration name.
// KMeans options are ignored for "ward".
func NewClusterer(algorithm string, n int, opts ...Option) (Clusterer, error) {
	switch strings.ToLower(strings.TrimSpace(algorithm)) {
	case AlgorithmKMeans:
		return NewKernelKMeans(n, opts...), nil
	case AlgorithmWard:
		return NewKernelWard(n), nil
	default:
		return nil, clusterErrorf(opNewClusterer, fmt.Errorf("%q: %w", algorithm, ErrUnknownAlgorithm))
	}
}

// kernelRows checks K is a non-nil square matrix and returns its rows as
// observations. Non-finite entries are rejected later by validatePoints.
func kernelRows(K matrix.Matrix) ([][]float64, error) {
	if err := matrix.ValidateSquareNonNil(K); err != nil {
		return nil, clusterErrorf(opPredict, err)
	}
	d, err := matrix.ToDense(K, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, clusterErrorf(opPredict, err)
	}

	return d.ToRows(), nil
}

func copyLabels(src []int) []int {
	if src == nil {
		return nil
	}
	dst := make([]int, len(src))
	copy(dst, src)

	return dst
}
