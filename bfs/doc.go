// Package bfs provides breadth-first goal search over a core.Graph.
//
// What
//
//   - Explore vertices in FIFO order from a start vertex until one of a set of
//     goal vertices is dequeued.
//   - Returns a search.Result carrying the accumulated edge cost and the path.
//   - Supports the shared search hooks (OnPush, OnExpand), context
//     cancellation and an expansion budget.
//
// Semantics
//
//   - The queue is seeded with (start, 0, [start]).
//   - Goals are checked at dequeue; the first dequeued goal wins.
//   - A vertex is marked visited when it is expanded, not when it is enqueued,
//     so it may sit in the queue more than once; later copies are skipped.
//   - Neighbors are enqueued in insertion order.
//
// The returned path has the fewest edges among paths to the first goal found,
// but it is not cost-optimal under general weights; use ucs for that.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) expansions, plus path copies on each enqueue.
//   - Memory: O(E) queue entries in the worst case.
//
// Usage
//
//	res, err := bfs.Search(g, "A", []string{"D", "C"})
//	if err != nil {
//	    // search.ErrGraphNil, search.ErrEmptyGraph, search.ErrNodeNotFound, ...
//	}
//	if res.Found {
//	    fmt.Println(res.Cost, res.Path)
//	}
package bfs
