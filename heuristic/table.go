// SPDX-License-Identifier: MIT
//
// Purpose:
//   - Dense all-pairs distance table (Floyd–Warshall) answering estimates in O(1).
//   - Fixed loop order k → i → j; fringe.Infinity means "no path".

package heuristic

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/fringe"
)

// Table is a precomputed all-pairs shortest distance provider.
// It is immutable after NewTable and safe for concurrent use.
type Table struct {
	graph    *core.Graph
	revision uint64
	index    map[string]int
	n        int
	data     []int64 // row-major n×n
}

// NewTable computes all-pairs distances of g.
// Complexity: Time O(V^3), Space O(V^2). Prefer ShortestPath for large sparse graphs.
func NewTable(g *core.Graph) (*Table, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	rev := g.Revision()
	vertices := g.Vertices()
	n := len(vertices)
	t := &Table{
		graph:    g,
		revision: rev,
		index:    make(map[string]int, n),
		n:        n,
		data:     make([]int64, n*n),
	}
	for i, v := range vertices {
		t.index[v] = i
	}

	// Initialize: diag = 0, off-diagonal = Infinity.
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j {
				t.data[i*n+j] = fringe.Infinity
			}
		}
	}
	// Seed direct edges; undirected graphs report both directions via Neighbors.
	for i, u := range vertices {
		nbs, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("heuristic: table neighbors of %q: %w", u, err)
		}
		for _, v := range nbs {
			w, err := g.Weight(u, v)
			if err != nil {
				return nil, fmt.Errorf("heuristic: table weight %s→%s: %w", u, v, err)
			}
			j = t.index[v]
			if i != j && w < t.data[i*n+j] {
				t.data[i*n+j] = w
			}
		}
	}

	t.closure()

	return t, nil
}

// closure runs Floyd–Warshall in place.
func (t *Table) closure() {
	n, data := t.n, t.data
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand int64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if ik == fringe.Infinity {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if kj == fringe.Infinity {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}

// Estimate returns the precomputed distance from→to.
//
// Errors:
//   - ErrStaleTable if g is not the graph (or revision) the table was built from.
//   - ErrNoHeuristicPath if either node is unknown or the pair is disconnected.
func (t *Table) Estimate(g *core.Graph, from, to string) (int64, error) {
	if g != t.graph || g.Revision() != t.revision {
		return 0, ErrStaleTable
	}
	i, okI := t.index[from]
	j, okJ := t.index[to]
	if !okI || !okJ {
		return 0, fmt.Errorf("%w: %s→%s", ErrNoHeuristicPath, from, to)
	}
	d := t.data[i*t.n+j]
	if d == fringe.Infinity {
		return 0, fmt.Errorf("%w: %s→%s", ErrNoHeuristicPath, from, to)
	}

	return d, nil
}
