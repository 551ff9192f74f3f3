// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/graphkernels/matrix"
	"github.com/katalvlaran/graphkernels/measure"
	"github.com/katalvlaran/graphkernels/scaler"
)

const opPipeline = "kernel.Pipeline"

// Pipeline pairs a kernel family with the scaler that maps raw parameters
// into the family's domain.
type Pipeline struct {
	Family Family
	Scaler scaler.Scaler
}

// Step is one evaluated point of a parameter sweep.
type Step struct {
	Param  float64       // raw parameter as given
	Scaled float64       // Scaler.Scale(Param)
	K      *matrix.Dense // centered similarity, see Pipeline.Similarity
}

// NewPipeline builds a pipeline for family f using scaler kind on adjacency A.
// A is only read by spectral kinds.
func NewPipeline(f Family, kind scaler.Kind, A matrix.Matrix) (Pipeline, error) {
	if !f.Valid() {
		return Pipeline{}, fmt.Errorf("%s: %d: %w", opPipeline, uint8(f), ErrUnknownFamily)
	}
	sc, err := scaler.New(kind, A)
	if err != nil {
		return Pipeline{}, fmt.Errorf("%s(%s): %w", opPipeline, f, err)
	}

	return Pipeline{Family: f, Scaler: sc}, nil
}

// NewDefaultPipeline is NewPipeline with f.DefaultScaler().
func NewDefaultPipeline(f Family, A matrix.Matrix) (Pipeline, error) {
	return NewPipeline(f, f.DefaultScaler(), A)
}

// Kernel returns the raw kernel H at the scaled param.
func (p Pipeline) Kernel(A matrix.Matrix, param float64) (*matrix.Dense, error) {
	return Compute(p.Family, A, p.Scaler.Scale(param))
}

// Similarity returns DistanceToKernel(KernelToDistance(H)) for the raw kernel
// H at param: a double-centered similarity whose rows can be fed to a
// cluster.Clusterer.
func (p Pipeline) Similarity(A matrix.Matrix, param float64) (*matrix.Dense, error) {
	H, err := p.Kernel(A, param)
	if err != nil {
		return nil, err
	}

	return similarityOf(H)
}

// Sweep lazily evaluates Similarity for every value of params, in order.
// Each step yields either a Step or the error for that parameter; ranging
// continues after an error unless the consumer stops.
func (p Pipeline) Sweep(A matrix.Matrix, params iter.Seq[float64]) iter.Seq2[Step, error] {
	return func(yield func(Step, error) bool) {
		var param float64
		recorded := func(yield func(float64) bool) {
			for v := range params {
				param = v
				if !yield(v) {
					return
				}
			}
		}
		for t := range p.Scaler.ScaleSeq(recorded) {
			step := Step{Param: param, Scaled: t}
			H, err := Compute(p.Family, A, t)
			if err == nil {
				step.K, err = similarityOf(H)
			}
			if !yield(step, err) {
				return
			}
		}
	}
}

func similarityOf(H *matrix.Dense) (*matrix.Dense, error) {
	D, err := measure.KernelToDistance(H)
	if err != nil {
		return nil, err
	}

	return measure.DistanceToKernel(D)
}
