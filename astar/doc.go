// Package astar implements A* search over a core.Graph.
//
// What
//
//   - g(n): best known cost from start; f(n) = g(n) + h(n, target).
//   - The fringe pops the smallest f first; equal f values leave in push order.
//   - The heuristic targets only the first goal in the list. Any goal in the
//     set still terminates the search when popped.
//   - Paths are rebuilt from came-from links once a goal is popped.
//
// Heuristics
//
//	The default provider is heuristic.ShortestPath: the exact Dijkstra distance
//	to the target. It is admissible and consistent, so results match ucs for a
//	single goal. Pass search.WithHeuristic to use a heuristic.Table, a
//	heuristic.Cached wrapper, heuristic.Zero or any heuristic.Func.
//
//	When a node cannot reach the target the provider reports
//	heuristic.ErrNoHeuristicPath. With heuristic.TreatAsInfinite (default) the
//	node gets h = fringe.Infinity and is explored last; it may still lead to
//	another goal in the set. With heuristic.Abort the error is returned.
//
// Complexity
//
//	O((V + E) log V) heap work plus one heuristic call per improved node.
//	With ShortestPath each call is itself a Dijkstra run; wrap it in
//	heuristic.NewCached or precompute a heuristic.Table for repeated searches.
package astar
