// Package ucs implements Uniform-Cost Search: the fringe always yields the
// globally cheapest pending entry, so the first goal popped is reached by a
// minimum-cost path under non-negative weights.
//
// Duplicate suppression uses a best-known cost per node:
//
//   - a neighbor is pushed only when its candidate cost is strictly below the
//     best cost recorded for it so far;
//   - a popped entry whose cost exceeds the node's best is stale and skipped.
//
// Ties on cost are broken by push order (earliest first), which keeps results
// reproducible for the same edge list.
//
// Complexity: O((V + E) log V) time, O(V + E) memory for the heap.
package ucs

import (
	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/fringe"
	"github.com/katalvlaran/pathsearch/search"
)

// runner holds the mutable state of one UCS execution.
type runner struct {
	g        *core.Graph
	opts     search.Options
	goals    search.GoalSet
	pq       fringe.Fringe
	best     map[string]int64
	expanded int
}

// Search runs uniform-cost search from start to the cheapest reachable goal.
func Search(g *core.Graph, start string, goals []string, opts ...search.Option) (search.Result, error) {
	o, err := search.Build(opts...)
	if err != nil {
		return search.Result{}, err
	}
	gs, err := search.Validate(g, start, goals)
	if err != nil {
		return search.Result{}, err
	}

	r := &runner{
		g:     g,
		opts:  o,
		goals: gs,
		pq:    fringe.New(fringe.MinCost),
		best:  make(map[string]int64, g.VertexCount()),
	}
	r.push(start, 0, []string{start})

	return r.process()
}

// improves reports whether cost beats the best known cost of id.
func (r *runner) improves(id string, cost int64) bool {
	b, seen := r.best[id]

	return !seen || cost < b
}

// push records cost as the best for id and adds the entry to the heap.
func (r *runner) push(id string, cost int64, path []string) {
	r.best[id] = cost
	r.opts.OnPush(id, cost)
	r.pq.Push(fringe.Entry{Node: id, Cost: cost, Path: path})
}

// process settles entries in cost order.
func (r *runner) process() (search.Result, error) {
	for r.pq.Len() > 0 {
		e, _ := r.pq.Pop()
		if e.Cost > r.best[e.Node] {
			continue // stale
		}
		if r.goals.Contains(e.Node) {
			return search.Success(e.Cost, e.Path, r.expanded), nil
		}
		if err := r.opts.Step(r.expanded); err != nil {
			return search.Result{}, err
		}
		r.expanded++
		r.opts.OnExpand(e.Node, e.Cost)

		nbrs, ws, err := search.Neighbors(r.g, e.Node)
		if err != nil {
			return search.Result{}, err
		}
		var c int64
		for i, nb := range nbrs {
			c = fringe.SaturatingAdd(e.Cost, ws[i])
			if r.improves(nb, c) {
				r.push(nb, c, search.Extend(e.Path, nb))
			}
		}
	}

	return search.NotFound(r.expanded), nil
}
