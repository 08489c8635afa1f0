// File: methods_vertices.go
// Role: Vertex queries (HasVertex, Vertices) and the implicit vertex registry.
// Determinism:
//   - Vertices() returns IDs in first-seen order.
// Concurrency:
//   - Queries hold the read lock; ensureVertex runs under the write lock.

package core

// HasVertex reports whether id appears as an endpoint of any edge.
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.weights[id]

	return ok
}

// Vertices returns all vertex IDs in the order they were first seen.
// Complexity: O(V). Concurrency: read lock.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.vertexOrder))
	copy(out, g.vertexOrder)

	return out
}

// ensureVertex registers id if unseen. Vertices are implicit: they exist
// because an edge names them. Callers hold the write lock.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.weights[id]; ok {
		return
	}
	g.weights[id] = make(map[string]int64)
	g.vertexOrder = append(g.vertexOrder, id)
}
