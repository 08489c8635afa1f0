package heuristic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/dijkstra"
)

// shortestPath runs a targeted Dijkstra per estimate.
type shortestPath struct{}

// ShortestPath returns the exact-distance provider.
// Cost per call: O((V + E) log V); wrap with NewCached for repeated queries.
func ShortestPath() Provider { return shortestPath{} }

// Estimate returns the shortest-path distance from→to.
func (shortestPath) Estimate(g *core.Graph, from, to string) (int64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if from == to {
		return 0, nil
	}
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(from), dijkstra.WithTarget(to))
	if err != nil {
		return 0, fmt.Errorf("heuristic: %s→%s: %w", from, to, err)
	}
	d, ok := dist[to]
	if !ok || d == math.MaxInt64 {
		return 0, fmt.Errorf("%w: %s→%s", ErrNoHeuristicPath, from, to)
	}

	return d, nil
}

// Zero returns a provider that always estimates 0; A* then orders by g alone.
func Zero() Provider {
	return Func(func(*core.Graph, string, string) (int64, error) { return 0, nil })
}
