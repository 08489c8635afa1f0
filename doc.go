// Package pathsearch finds a path from a start node to one of several goal
// nodes in a weighted graph, using one of five classical search strategies.
//
// 🚀 What is pathsearch?
//
//	A small, thread-safe toolkit that brings together:
//		• Graph store: insertion-ordered adjacency, non-negative integer weights
//		• Fringes: FIFO, LIFO and min-heap frontiers with stable tie-breaks
//		• Strategies: BFS, DFS, UCS, Greedy, A*
//		• Heuristics: exact shortest path, all-pairs table, zero, LRU cached
//		• Engine: one dispatch point with logging, Prometheus metrics and
//		  concurrent side-by-side comparison
//		• Collaborators: edge text and YAML problem parsing, Graphviz DOT output
//
// ✨ Guarantees
//
//   - Deterministic: identical input yields an identical (cost, path)
//   - Not found is a value, never an error; invalid input is always an error
//   - Searches only read the graph; any number may share one Graph
//
// Packages:
//
//	core            Graph, Edge, sentinel errors
//	fringe          frontier orderings
//	search          Result, options and hooks, validation, path reconstruction
//	bfs dfs ucs     the uninformed strategies
//	greedy astar    the weight- and heuristic-guided strategies
//	dijkstra        exact distances behind the reference heuristic
//	heuristic       A* estimate providers and the failure policy
//	engine          algorithm registry, logging, metrics, Compare
//	parse           "A,B=3+C,D=2" edge text and YAML problem files
//	render          DOT rendering of a graph and its result
//	builder         deterministic fixture graphs for tests and benchmarks
//	cmd/pathsearch  the command line
//
// Quick ASCII example:
//
//	    A─1─B
//	    │   │
//	    2   3
//	    │   │
//	    C─1─D
//
//	From A to D, BFS answers (4, A→B→D) while UCS and A* answer (3, A→C→D).
//
//	go install github.com/katalvlaran/pathsearch/cmd/pathsearch@latest
package pathsearch
