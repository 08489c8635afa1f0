// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Public facade: bulk constructor and read-only getters.
// Policy:
//   - No algorithms here.
//   - Every exported function documents complexity and locking strategy.

package core

import "fmt"

// FromEdges builds a Graph from a validated edge list in the given order.
//
// Implementation:
//   - Stage 1: Reject an empty list with ErrEmptyGraph.
//   - Stage 2: Allocate via NewGraph(opts...).
//   - Stage 3: AddEdge each entry, wrapping the first failure with its index.
//
// Errors:
//   - ErrEmptyGraph if edges is empty.
//   - Any AddEdge error (ErrEmptyVertexID, ErrNegativeWeight), wrapped.
//
// Complexity:
//   - Time O(E) amortized, Space O(V+E).
func FromEdges(edges []Edge, opts ...GraphOption) (*Graph, error) {
	if len(edges) == 0 {
		return nil, ErrEmptyGraph
	}

	g := NewGraph(opts...)
	for i, e := range edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("core: edge %d (%s→%s): %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}

// Directed reports whether edges are stored one-way.
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Revision returns the mutation counter. Two reads returning the same value
// observed the same graph contents.
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) Revision() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.revision
}

// VertexCount returns the number of distinct vertices.
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertexOrder)
}

// EdgeCount returns the number of distinct edges (overwrites are not counted twice).
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
