// SPDX-License-Identifier: MIT

// Package cluster turns a precomputed kernel (similarity) matrix into cluster
// labels.
//
// The adapters KernelKMeans and KernelWard share the Clusterer contract:
// Predict treats each row of a square kernel K as one observation and returns
// one label in [0, NClusters) per row. Fit stores the labels on the adapter and
// returns the receiver so calls can be chained:
//
//	labels, err := cluster.NewKernelWard(2).Predict(K)
//
// The underlying algorithms are exported for use on arbitrary point sets:
//
//   - KMeans: k-means++ seeding, Lloyd iterations, best of NInit restarts.
//     Runs are reproducible for a fixed Seed (default 0).
//   - Ward: agglomerative clustering with Ward linkage.
//
// Inputs are never mutated.
package cluster
