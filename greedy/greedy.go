// Package greedy implements a one-step greedy best-first search.
//
// "Greedy" here is local: after popping a node the search commits to the
// single unvisited neighbor reached by the lightest edge and pushes only that
// one. It never estimates distance to a goal. Ties between equal weights go
// to the neighbor added first.
//
// Because each expansion pushes at most one entry, the search follows a single
// line of descent and reports not-found as soon as that line reaches a node
// whose neighbors are all visited, even when a goal is reachable elsewhere.
// Use ucs or astar when completeness matters.
package greedy

import (
	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/fringe"
	"github.com/katalvlaran/pathsearch/search"
)

// Search runs greedy search from start until a goal is popped or the line of
// descent dead-ends.
func Search(g *core.Graph, start string, goals []string, opts ...search.Option) (search.Result, error) {
	o, err := search.Build(opts...)
	if err != nil {
		return search.Result{}, err
	}
	gs, err := search.Validate(g, start, goals)
	if err != nil {
		return search.Result{}, err
	}

	stack := fringe.New(fringe.LIFO)
	visited := make(map[string]bool, g.VertexCount())
	expanded := 0

	o.OnPush(start, 0)
	stack.Push(fringe.Entry{Node: start, Path: []string{start}})

	for stack.Len() > 0 {
		cur, _ := stack.Pop()
		if gs.Contains(cur.Node) {
			return search.Success(cur.Cost, cur.Path, expanded), nil
		}
		if err = o.Step(expanded); err != nil {
			return search.Result{}, err
		}
		visited[cur.Node] = true
		expanded++
		o.OnExpand(cur.Node, cur.Cost)

		next, w, ok, err := cheapestUnvisited(g, cur.Node, visited)
		if err != nil {
			return search.Result{}, err
		}
		if !ok {
			continue
		}
		cost := fringe.SaturatingAdd(cur.Cost, w)
		o.OnPush(next, cost)
		stack.Push(fringe.Entry{Node: next, Cost: cost, Path: search.Extend(cur.Path, next)})
	}

	return search.NotFound(expanded), nil
}

// cheapestUnvisited returns the unvisited neighbor of id with the smallest
// edge weight; strict comparison keeps the earliest-added one on ties.
func cheapestUnvisited(g *core.Graph, id string, visited map[string]bool) (string, int64, bool, error) {
	nbrs, ws, err := search.Neighbors(g, id)
	if err != nil {
		return "", 0, false, err
	}

	best := -1
	for i, nb := range nbrs {
		if visited[nb] {
			continue
		}
		if best < 0 || ws[i] < ws[best] {
			best = i
		}
	}
	if best < 0 {
		return "", 0, false, nil
	}

	return nbrs[best], ws[best], true, nil
}
