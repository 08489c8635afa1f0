package dfs

import (
	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/fringe"
	"github.com/katalvlaran/pathsearch/search"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph    *core.Graph
	opts     search.Options
	goals    search.GoalSet
	stack    fringe.Fringe
	visited  map[string]bool
	expanded int
}

// Search performs depth-first search from start until a goal is popped.
// A stack that empties yields search.NotFound with a nil error.
func Search(g *core.Graph, start string, goals []string, opts ...search.Option) (search.Result, error) {
	o, err := search.Build(opts...)
	if err != nil {
		return search.Result{}, err
	}
	gs, err := search.Validate(g, start, goals)
	if err != nil {
		return search.Result{}, err
	}

	w := &dfsWalker{
		graph:   g,
		opts:    o,
		goals:   gs,
		stack:   fringe.New(fringe.LIFO),
		visited: make(map[string]bool, g.VertexCount()),
	}
	w.push(fringe.Entry{Node: start, Path: []string{start}})

	return w.run()
}

func (w *dfsWalker) push(e fringe.Entry) {
	w.opts.OnPush(e.Node, e.Cost)
	w.stack.Push(e)
}

// run pops until a goal appears or the stack is empty.
func (w *dfsWalker) run() (search.Result, error) {
	for {
		top, ok := w.stack.Pop()
		if !ok {
			return search.NotFound(w.expanded), nil
		}
		if w.goals.Contains(top.Node) {
			return search.Success(top.Cost, top.Path, w.expanded), nil
		}
		if w.visited[top.Node] {
			continue
		}
		if err := w.opts.Step(w.expanded); err != nil {
			return search.Result{}, err
		}

		w.visited[top.Node] = true
		w.expanded++
		w.opts.OnExpand(top.Node, top.Cost)

		nbrs, weights, err := search.Neighbors(w.graph, top.Node)
		if err != nil {
			return search.Result{}, err
		}
		for i, nb := range nbrs {
			if w.visited[nb] {
				continue
			}
			w.push(fringe.Entry{
				Node: nb,
				Cost: fringe.SaturatingAdd(top.Cost, weights[i]),
				Path: search.Extend(top.Path, nb),
			})
		}
	}
}
