// Package graphkernels clusters graph vertices with graph kernels.
//
// The module is a pipeline of small packages, each usable on its own:
//
//	matrix/   dense matrices, validators, sentinel errors, adjacency builder,
//	          and a gonum bridge (eigenvalues, inverse, exponential)
//	measure/  degree matrix, Laplacian, log kernel, kernel ↔ distance
//	scaler/   parameter remapping (linear, alpha_to_t, rho, fraction, ...)
//	kernel/   kernel families (forest, heat, walk, ...) and sweep pipelines
//	cluster/  k-means and Ward adapters over a precomputed kernel, ARI scoring
//	builder/  graph fixtures (cycles, grids, planted partitions, ...)
//	config/   YAML run configuration
//
// Data flows as
//
//	adjacency → measure (L) → scaler (t) → kernel (H) → similarity (K) → cluster → labels
//
// Quick ASCII example: two triangles joined by one bridge edge
//
//	a───b       e───f
//	 \ /         \ /
//	  c───────────d
//
// are split into {a,b,c} and {d,e,f} by the forest kernel at parameter 0.5
// followed by Ward. Small parameters pair the bridge endpoints c and d first.
//
// The graphkernels command (cmd/graphkernels) runs the whole pipeline from a
// YAML file:
//
//	go install github.com/katalvlaran/graphkernels/cmd/graphkernels@latest
//	graphkernels run --config run.yaml
package graphkernels
