// Package dfs implements depth-first goal search on core.Graph.
//
// The fringe is a LIFO stack seeded with (start, 0, [start]). Each iteration
// pops the newest entry; if it is a goal the search returns immediately,
// otherwise the vertex is marked visited and every unvisited neighbor is
// pushed in insertion order, so the last-added neighbor is explored first.
//
// The traversal is iterative; no recursion depth limit applies.
//
// Complexity:
//
//   - Time:   O(V + E) expansions, plus path copies per push.
//   - Memory: O(E) stack entries in the worst case.
//
// Errors:
//
//   - search.ErrGraphNil, search.ErrEmptyGraph, search.ErrNoGoals,
//     search.ErrNodeNotFound for invalid input.
//   - search.ErrExpansionLimit when WithMaxExpansions is exceeded.
//   - context.Canceled / DeadlineExceeded when the context is done.
package dfs
