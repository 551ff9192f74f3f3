// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/katalvlaran/graphkernels/builder"
	"github.com/katalvlaran/graphkernels/cluster"
	"github.com/katalvlaran/graphkernels/kernel"
	"github.com/katalvlaran/graphkernels/matrix"
)

// Graph is the adjacency built from a GraphConfig.
type Graph struct {
	A        *matrix.Dense
	Vertices []matrix.VertexID // Vertices[i] labels row i of A
	// Truth holds planted community labels when the generator provides them.
	Truth []int
	// Directed is true when edges were read one-way.
	Directed bool
}

// BuildGraph materializes the configured graph.
//
// A dense adjacency is taken as is (it must be square); rows are labelled by
// Vertices when given and by their index otherwise. An edge list goes through
// matrix.NewAdjacencyFromEdges, undirected unless Directed is set. A generator
// runs the matching builder constructor; Vertices is ignored for it.
//
// RequireSymmetric rejects an A that differs from its transpose by more than
// Tolerance (matrix.DefaultEpsilon when zero) with matrix.ErrAsymmetry.
// Symmetrize replaces A by (A + Aᵀ)/2.
func (g GraphConfig) BuildGraph() (Graph, error) {
	opts := []matrix.Option{matrix.WithUndirected()}
	if g.Directed {
		opts[0] = matrix.WithDirected()
	}
	if g.Tolerance > 0 {
		opts = append(opts, matrix.WithEpsilon(g.Tolerance))
	}

	var (
		out Graph
		am  *matrix.AdjacencyMatrix
		err error
	)
	switch {
	case g.Generator != nil:
		out, am, err = g.Generator.build(opts)
	case len(g.Adjacency) > 0:
		out, err = g.denseGraph()
	default:
		out, am, err = g.edgeGraph(opts)
	}
	if err != nil {
		return Graph{}, err
	}

	if g.RequireSymmetric {
		if am != nil {
			err = am.ValidateSymmetric()
		} else {
			tol := g.Tolerance
			if tol == 0 {
				tol = matrix.DefaultEpsilon
			}
			err = matrix.ValidateSymmetric(out.A, tol)
		}
		if err != nil {
			return Graph{}, fmt.Errorf("config: graph.require_symmetric: %w", err)
		}
	}
	if g.Symmetrize {
		if out.A, err = matrix.Symmetrize(out.A); err != nil {
			return Graph{}, fmt.Errorf("config: graph.symmetrize: %w", err)
		}
		out.Directed = false
	}

	return out, nil
}

func (g GraphConfig) denseGraph() (Graph, error) {
	A, err := matrix.NewDenseFromRows(g.Adjacency)
	if err != nil {
		return Graph{}, fmt.Errorf("config: graph.adjacency: %w", err)
	}
	if err = matrix.ValidateSquare(A); err != nil {
		return Graph{}, fmt.Errorf("config: graph.adjacency: %w", err)
	}
	ids := vertexIDs(g.Vertices)
	if ids == nil {
		ids = make([]matrix.VertexID, A.Rows())
		for i := range ids {
			ids[i] = strconv.Itoa(i)
		}
	}
	if len(ids) != A.Rows() {
		return Graph{}, fmt.Errorf("config: graph.vertices: %d names for %d rows: %w",
			len(ids), A.Rows(), matrix.ErrDimensionMismatch)
	}

	return Graph{A: A, Vertices: ids, Directed: g.Directed}, nil
}

func (g GraphConfig) edgeGraph(opts []matrix.Option) (Graph, *matrix.AdjacencyMatrix, error) {
	edges := make([]matrix.Edge, len(g.Edges))
	for i, e := range g.Edges {
		edges[i] = matrix.Edge{From: e.From, To: e.To, Weight: e.Weight}
	}
	am, err := matrix.NewAdjacencyFromEdges(vertexIDs(g.Vertices), edges, opts...)
	if err != nil {
		return Graph{}, nil, fmt.Errorf("config: graph.edges: %w", err)
	}

	return Graph{A: am.Mat, Vertices: am.VertexIDs(), Directed: am.Directed()}, am, nil
}

func (gc GeneratorConfig) build(opts []matrix.Option) (Graph, *matrix.AdjacencyMatrix, error) {
	var ctor builder.Constructor
	switch gc.Kind {
	case "path":
		ctor = builder.Path(gc.N)
	case "cycle":
		ctor = builder.Cycle(gc.N)
	case "star":
		ctor = builder.Star(gc.N)
	case "wheel":
		ctor = builder.Wheel(gc.N)
	case "complete":
		ctor = builder.Complete(gc.N)
	case "bipartite":
		ctor = builder.CompleteBipartite(gc.N, gc.M)
	case "grid":
		ctor = builder.Grid(gc.N, gc.M)
	case "random":
		ctor = builder.RandomSparse(gc.N, gc.P)
	case "planted_partition":
		ctor = builder.PlantedPartition(gc.Sizes, gc.PIn, gc.POut)
	default:
		return Graph{}, nil, fmt.Errorf("config: graph.generator: unknown kind %q: %w", gc.Kind, ErrInvalidConfig)
	}

	fixture, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(gc.Seed)}, ctor)
	if err != nil {
		return Graph{}, nil, fmt.Errorf("config: graph.generator: %w", err)
	}
	am, err := fixture.Adjacency(opts...)
	if err != nil {
		return Graph{}, nil, fmt.Errorf("config: graph.generator: %w", err)
	}
	truth, _ := fixture.GroundTruth()

	return Graph{A: am.Mat, Vertices: am.VertexIDs(), Truth: truth, Directed: am.Directed()}, am, nil
}

func vertexIDs(names []string) []matrix.VertexID {
	if len(names) == 0 {
		return nil
	}
	ids := make([]matrix.VertexID, len(names))
	for i, n := range names {
		ids[i] = matrix.VertexID(n)
	}

	return ids
}

// Pipeline builds the kernel pipeline for adjacency A, honouring the scaler
// override.
func (k KernelConfig) Pipeline(A matrix.Matrix) (kernel.Pipeline, error) {
	kind := k.Family.DefaultScaler()
	if k.Scaler != nil {
		kind = *k.Scaler
	}

	return kernel.NewPipeline(k.Family, kind, A)
}

// Clusterer builds the configured adapter. Zero NInit and MaxIter keep the
// cluster package defaults.
func (c ClusterConfig) Clusterer() (cluster.Clusterer, error) {
	opts := []cluster.Option{cluster.WithSeed(c.Seed)}
	if c.NInit > 0 {
		opts = append(opts, cluster.WithNInit(c.NInit))
	}
	if c.MaxIter > 0 {
		opts = append(opts, cluster.WithMaxIter(c.MaxIter))
	}

	return cluster.NewClusterer(c.Algorithm, c.NClusters, opts...)
}

// Logger builds a zap logger writing to stderr. Development mode switches to
// the console encoder.
func (l LogConfig) Logger() (*zap.Logger, error) {
	var zc zap.Config
	if l.Development {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	level, err := zap.ParseAtomicLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("config: log.level: %w", err)
	}
	zc.Level = level
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}
