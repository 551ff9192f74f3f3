// SPDX-License-Identifier: MIT

package cluster

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidClusterCount is returned when the requested number of clusters
	// is not in [1, n] for n observations.
	ErrInvalidClusterCount = errors.New("cluster: invalid cluster count")

	// ErrEmptyInput is returned when there are no observations to cluster.
	ErrEmptyInput = errors.New("cluster: no observations")

	// ErrUnknownAlgorithm is returned by NewClusterer for an unsupported name.
	ErrUnknownAlgorithm = errors.New("cluster: unknown algorithm")
)

func clusterErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
