// File: methods_adjacent.go
// Role: Neighborhood API.
// Determinism:
//   - Neighbors() preserves edge insertion order.
// Concurrency:
//   - Read lock; the returned slice is an independent copy.

package core

// Neighbors returns the IDs reachable from id over one edge, in the order the
// edges were added.
//
// Neighborhood policy:
//   - Directed graphs: only outgoing edges (from == id).
//   - Undirected graphs: every incident edge; a self-loop appears once.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//   - ErrVertexNotFound if the vertex does not exist.
//
// Complexity: O(d) where d is the out-degree.
func (g *Graph) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.weights[id]; !ok {
		return nil, ErrVertexNotFound
	}
	nbs := g.adjacency[id]
	out := make([]string, len(nbs))
	copy(out, nbs)

	return out, nil
}
