// Package dijkstra implements Dijkstra's shortest-path algorithm on core.Graph.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap may hold one entry per relaxation
//     (lazy decrease-key).
//
// Notes on implementation choices:
//
//   - Weights are non-negative by construction (core.AddEdge rejects negatives).
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - With a Target we stop as soon as that vertex is settled.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/fringe"
)

// Dijkstra computes shortest distances from Options.Source.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (math.MaxInt64 if unreachable or unsettled).
//   - prev: predecessor map if ReturnPath (nil otherwise); prev[v] == "" for the source
//     and for unreachable vertices.
//   - err:  validation error.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source, and Target when set (ErrVertexNotFound).
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := DefaultOptions("")
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, cfg.Source)
	}
	if cfg.Target != "" && !g.HasVertex(cfg.Target) {
		return nil, nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, cfg.Target)
	}

	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      fringe.New(fringe.MinCost),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, len(vertices))
	}

	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]int64
	prev    map[string]string
	visited map[string]bool
	pq      fringe.Fringe
}

// init sets every distance to +∞ and seeds the heap with the source.
func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = math.MaxInt64
		if r.prev != nil {
			r.prev[v] = ""
		}
	}
	r.dist[r.options.Source] = 0
	r.pq.Push(fringe.Entry{Node: r.options.Source, Cost: 0})
}

// process repeatedly settles the closest vertex and relaxes its edges.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item, _ := r.pq.Pop()
		u, d := item.Node, item.Cost

		// Stale heap entry.
		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if u == r.options.Target {
			break
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbor of the settled vertex u.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	var w, newDist int64
	for _, v := range neighbors {
		if w, err = r.g.Weight(u, v); err != nil {
			return fmt.Errorf("dijkstra: weight %s→%s: %w", u, v, err)
		}
		newDist = fringe.SaturatingAdd(r.dist[u], w)
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict improvement only; equal distances keep the first parent.
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		r.pq.Push(fringe.Entry{Node: v, Cost: newDist})
	}

	return nil
}
