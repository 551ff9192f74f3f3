// SPDX-License-Identifier: MIT

package measure

import "github.com/katalvlaran/graphkernels/matrix"

const opComponents = "Components"

// Components labels every vertex of A with its weakly connected component.
// Vertices i and j are adjacent when A[i,j] or A[j,i] is non-zero. Components
// are numbered in order of their lowest vertex, so labels[0] is always 0.
//
// Forest, heat and resistance kernels decouple across components, which makes
// the count a useful lower bound on a sensible cluster count.
//
// Implementation:
//   - Stage 1: read A once into a permissive dense copy.
//   - Stage 2: breadth-first walk from each unvisited vertex in index order,
//     with a slice-backed FIFO queue.
//
// Complexity: O(n²) time, O(n) extra space.
func Components(A matrix.Matrix) (labels []int, count int, err error) {
	Ap, err := permissive(A, opComponents)
	if err != nil {
		return nil, 0, err
	}
	n := Ap.Rows()
	w := componentWalker{a: Ap, n: n, labels: make([]int, n), queue: make([]int, 0, n)}
	for i := range w.labels {
		w.labels[i] = -1
	}
	for root := 0; root < n; root++ {
		if w.labels[root] >= 0 {
			continue
		}
		if err = w.walk(root, count); err != nil {
			return nil, 0, measureErrorf(opComponents, err)
		}
		count++
	}

	return w.labels, count, nil
}

// componentWalker holds the mutable state of one Components call.
type componentWalker struct {
	a      *matrix.Dense
	n      int
	labels []int
	queue  []int
}

// walk labels everything reachable from root with id.
func (w *componentWalker) walk(root, id int) error {
	w.labels[root] = id
	w.queue = append(w.queue[:0], root)
	for len(w.queue) > 0 {
		u := w.queue[0]
		w.queue = w.queue[1:]
		for v := 0; v < w.n; v++ {
			if w.labels[v] >= 0 {
				continue
			}
			linked, err := w.linked(u, v)
			if err != nil {
				return err
			}
			if linked {
				w.labels[v] = id
				w.queue = append(w.queue, v)
			}
		}
	}

	return nil
}

func (w *componentWalker) linked(u, v int) (bool, error) {
	uv, err := w.a.At(u, v)
	if err != nil {
		return false, err
	}
	vu, err := w.a.At(v, u)
	if err != nil {
		return false, err
	}

	return uv != 0 || vu != 0, nil
}
