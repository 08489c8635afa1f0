// Package core provides the thread-safe, insertion-ordered weighted Graph that
// every search strategy in this module reads from.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected); undirected is the default
//   - Non-negative integer weights; a duplicate pair overwrites the weight
//   - Self-loops
//   - Implicit vertices: a vertex exists because an edge names it
//   - A single sync.RWMutex; searches only read, so concurrent searches over
//     one Graph need no extra synchronization
//
// Determinism:
//
//	Neighbors(id) returns IDs in the order edges were added. BFS, DFS and
//	Greedy break ties by this order, so the same edge list always yields the
//	same search result.
//
// Core Methods:
//
//	FromEdges(edges, opts...) (*Graph, error) // O(E), ErrEmptyGraph on empty input
//	AddEdge(from, to string, weight int64) error
//	HasVertex(id string) bool
//	HasEdge(from, to string) bool
//	Neighbors(id string) ([]string, error)
//	Weight(from, to string) (int64, error)
//	Vertices() []string
//	Edges() []Edge
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    2     3
//	    │     │
//	    C──1──D
//
//	g, _ := core.FromEdges([]core.Edge{
//	    {From: "A", To: "B", Weight: 1},
//	    {From: "A", To: "C", Weight: 2},
//	    {From: "B", To: "D", Weight: 3},
//	    {From: "C", To: "D", Weight: 1},
//	})
//	g.Neighbors("A") // [B C]
package core
