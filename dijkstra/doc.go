// Package dijkstra provides exact single-source shortest distances on a
// core.Graph with non-negative integer weights.
//
// In this module it backs the reference A* heuristic: the estimate from a
// node to the targeted goal is the true shortest-path distance, which is
// admissible and consistent by construction.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (dist map[string]int64, prev map[string]string, err error)
//
//	  - Source(string):        required, the starting vertex ID.
//	  - WithTarget(string):    stop once the target is settled.
//	  - WithReturnPath():      return a predecessor map; otherwise prev == nil.
//	  - WithMaxDistance(int64): explore only vertices with distance ≤ value.
//
// Thread safety:
//
//   - Dijkstra only reads the graph; concurrent runs over one graph are safe.
package dijkstra
