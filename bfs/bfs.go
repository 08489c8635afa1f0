package bfs

import (
	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/fringe"
	"github.com/katalvlaran/pathsearch/search"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph    *core.Graph
	opts     search.Options
	goals    search.GoalSet
	queue    fringe.Fringe
	visited  map[string]bool
	expanded int
}

// Search runs breadth-first search on g from start until a vertex in goals
// is dequeued.
// Returns a not-found Result (nil error) when the queue empties, or one of
// search.ErrGraphNil, search.ErrEmptyGraph, search.ErrNoGoals,
// search.ErrNodeNotFound, search.ErrOptionViolation, search.ErrExpansionLimit
// or the context error.
func Search(g *core.Graph, start string, goals []string, opts ...search.Option) (search.Result, error) {
	o, err := search.Build(opts...)
	if err != nil {
		return search.Result{}, err
	}
	gs, err := search.Validate(g, start, goals)
	if err != nil {
		return search.Result{}, err
	}

	w := &walker{
		graph:   g,
		opts:    o,
		goals:   gs,
		queue:   fringe.New(fringe.FIFO),
		visited: make(map[string]bool, g.VertexCount()),
	}
	w.enqueue(fringe.Entry{Node: start, Path: []string{start}})

	return w.loop()
}

// enqueue calls OnPush and appends e to the queue.
func (w *walker) enqueue(e fringe.Entry) {
	w.opts.OnPush(e.Node, e.Cost)
	w.queue.Push(e)
}

// loop processes the queue until a goal, exhaustion, or an error.
func (w *walker) loop() (search.Result, error) {
	for w.queue.Len() > 0 {
		item, _ := w.queue.Pop()
		if w.goals.Contains(item.Node) {
			return search.Success(item.Cost, item.Path, w.expanded), nil
		}
		if w.visited[item.Node] {
			continue // an earlier copy was already expanded
		}
		if err := w.opts.Step(w.expanded); err != nil {
			return search.Result{}, err
		}
		if err := w.expand(item); err != nil {
			return search.Result{}, err
		}
	}

	return search.NotFound(w.expanded), nil
}

// expand marks item visited and enqueues each unvisited neighbor.
func (w *walker) expand(item fringe.Entry) error {
	w.visited[item.Node] = true
	w.expanded++
	w.opts.OnExpand(item.Node, item.Cost)

	neighbors, weights, err := search.Neighbors(w.graph, item.Node)
	if err != nil {
		return err
	}
	for i, nbr := range neighbors {
		if w.visited[nbr] {
			continue
		}
		w.enqueue(fringe.Entry{
			Node: nbr,
			Cost: fringe.SaturatingAdd(item.Cost, weights[i]),
			Path: search.Extend(item.Path, nbr),
		})
	}

	return nil
}
