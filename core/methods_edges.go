// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight/Edges.
// Determinism:
//   - Edges() returns edges in first-insertion order.
//   - Overwriting a pair keeps its original position.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

// AddEdge inserts (or overwrites) the weighted edge from→to.
//
// Steps:
//  1. Validate IDs and weight.
//  2. Lock, register unseen endpoints in first-seen order.
//  3. If the pair already exists, overwrite its weight in place.
//  4. Otherwise append to the edge catalog and to adjacency (mirrored when undirected).
//
// Self-loops are accepted and appear once in the vertex's neighbor list.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if weight < 0 {
		return ErrNegativeWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(from)
	g.ensureVertex(to)

	key := g.keyFor(from, to)
	if idx, ok := g.edgeIndex[key]; ok {
		// Duplicate pair: overwrite weight, keep neighbor order.
		g.edges[idx].Weight = weight
		g.setWeight(from, to, weight)
		g.revision++

		return nil
	}

	g.edgeIndex[key] = len(g.edges)
	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})
	g.adjacency[from] = append(g.adjacency[from], to)
	if !g.directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], from)
	}
	g.setWeight(from, to, weight)
	g.revision++

	return nil
}

// HasEdge reports whether from→to is traversable.
// Undirected edges answer true in both directions.
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.weights[from][to]

	return ok
}

// Weight returns the cost of traversing from→to.
//
// Errors:
//   - ErrEdgeNotFound if no such edge exists in that direction.
//
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) Weight(from, to string) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.weights[from][to]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// Edges returns a copy of the edge catalog in first-insertion order.
// Complexity: O(E). Concurrency: read lock.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// keyFor returns the catalog key of the pair; callers hold the lock.
func (g *Graph) keyFor(from, to string) edgeKey {
	if !g.directed && to < from {
		return edgeKey{a: to, b: from}
	}

	return edgeKey{a: from, b: to}
}

// setWeight writes the weight table (both directions when undirected); callers hold the lock.
func (g *Graph) setWeight(from, to string, weight int64) {
	g.weights[from][to] = weight
	if !g.directed {
		g.weights[to][from] = weight
	}
}
