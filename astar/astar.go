package astar

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/fringe"
	"github.com/katalvlaran/pathsearch/heuristic"
	"github.com/katalvlaran/pathsearch/search"
)

// runner holds the mutable state for a single A* execution.
type runner struct {
	g        *core.Graph
	opts     search.Options
	goals    search.GoalSet
	target   string
	pq       fringe.Fringe
	gScore   map[string]int64
	cameFrom map[string]string
	closed   map[string]bool
	expanded int
}

// Search runs A* from start. The heuristic aims at goals[0]; any member of
// goals ends the search.
func Search(g *core.Graph, start string, goals []string, opts ...search.Option) (search.Result, error) {
	o, err := search.Build(opts...)
	if err != nil {
		return search.Result{}, err
	}
	gs, err := search.Validate(g, start, goals)
	if err != nil {
		return search.Result{}, err
	}
	if gs.Contains(start) {
		return search.Success(0, []string{start}, 0), nil
	}

	n := g.VertexCount()
	r := &runner{
		g:        g,
		opts:     o,
		goals:    gs,
		target:   goals[0],
		pq:       fringe.New(fringe.MinTotal),
		gScore:   make(map[string]int64, n),
		cameFrom: make(map[string]string, n),
		closed:   make(map[string]bool, n),
	}
	if err = r.push(start, 0); err != nil {
		return search.Result{}, err
	}

	return r.process()
}

// score returns g(id), Infinity when unseen.
func (r *runner) score(id string) int64 {
	if v, ok := r.gScore[id]; ok {
		return v
	}

	return fringe.Infinity
}

// push records g(id) = cost and enqueues id under f = cost + h(id).
func (r *runner) push(id string, cost int64) error {
	h, err := heuristic.Resolve(r.opts.Heuristic, r.opts.HeuristicFailure, r.g, id, r.target)
	if err != nil {
		return fmt.Errorf("astar: estimate %s→%s: %w", id, r.target, err)
	}
	r.gScore[id] = cost
	r.opts.OnPush(id, cost)
	r.pq.Push(fringe.Entry{Node: id, Cost: cost, Estimate: h})

	return nil
}

// process pops by lowest f until a goal is reached or the heap is empty.
func (r *runner) process() (search.Result, error) {
	for r.pq.Len() > 0 {
		cur, _ := r.pq.Pop()
		if r.closed[cur.Node] {
			continue
		}
		if r.goals.Contains(cur.Node) {
			return search.Success(r.gScore[cur.Node], search.Reconstruct(r.cameFrom, cur.Node), r.expanded), nil
		}
		if err := r.opts.Step(r.expanded); err != nil {
			return search.Result{}, err
		}
		r.closed[cur.Node] = true
		r.expanded++
		r.opts.OnExpand(cur.Node, r.gScore[cur.Node])

		if err := r.relax(cur.Node); err != nil {
			return search.Result{}, err
		}
	}

	return search.NotFound(r.expanded), nil
}

// relax tries to improve g for every open neighbor of u.
func (r *runner) relax(u string) error {
	nbrs, ws, err := search.Neighbors(r.g, u)
	if err != nil {
		return err
	}
	var tentative int64
	for i, nb := range nbrs {
		if r.closed[nb] {
			continue
		}
		tentative = fringe.SaturatingAdd(r.gScore[u], ws[i])
		if tentative >= r.score(nb) {
			continue
		}
		r.cameFrom[nb] = u
		if err = r.push(nb, tentative); err != nil {
			return err
		}
	}

	return nil
}
