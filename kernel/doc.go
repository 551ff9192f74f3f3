// SPDX-License-Identifier: MIT

// Package kernel evaluates graph kernel families on an adjacency matrix.
//
// A Family names a closed-form kernel; Compute evaluates it at a parameter
// that has already been scaled:
//
//	Forest           (I + t·L)⁻¹
//	LogForest        ln Forest (elementwise)
//	Heat             exp(−t·L)
//	LogHeat          ln Heat (elementwise)
//	Walk             (I − t·A)⁻¹
//	Communicability  exp(t·A)
//	Resistance       (L + E/n)⁻¹
//
// A Pipeline couples a Family with a scaler.Scaler so callers work in the raw
// parameter domain. Pipeline.Similarity turns the kernel into a distance and
// back into a double-centered similarity, the form expected by the cluster
// adapters. Pipeline.Sweep does the same lazily over a sequence of parameters.
//
// Non-finite kernel entries (a disconnected graph under a Log* family, for
// instance) propagate into the similarity without error.
package kernel
