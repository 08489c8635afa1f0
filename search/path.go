package search

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/fringe"
)

// Extend returns a copy of path with id appended. Entries on a fringe share
// prefixes, so appending in place would corrupt siblings.
func Extend(path []string, id string) []string {
	out := make([]string, len(path)+1)
	copy(out, path)
	out[len(path)] = id

	return out
}

// Reconstruct walks back-pointers from goal to the root (the node with no
// entry in cameFrom) and returns the path root … goal.
func Reconstruct(cameFrom map[string]string, goal string) []string {
	path := []string{goal}
	for cur := goal; ; {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// PathCost sums the weights along path, saturating at fringe.Infinity.
// A path of zero or one node costs 0.
func PathCost(g *core.Graph, path []string) (int64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	var total int64
	for i := 1; i < len(path); i++ {
		w, err := g.Weight(path[i-1], path[i])
		if err != nil {
			return 0, fmt.Errorf("search: path step %s→%s: %w", path[i-1], path[i], err)
		}
		total = fringe.SaturatingAdd(total, w)
	}

	return total, nil
}

// Neighbors fetches the neighbors of id with their weights, in insertion order.
func Neighbors(g *core.Graph, id string) ([]string, []int64, error) {
	ids, err := g.Neighbors(id)
	if err != nil {
		return nil, nil, fmt.Errorf("search: neighbors of %q: %w", id, err)
	}
	ws := make([]int64, len(ids))
	for i, nb := range ids {
		if ws[i], err = g.Weight(id, nb); err != nil {
			return nil, nil, fmt.Errorf("search: weight %s→%s: %w", id, nb, err)
		}
	}

	return ids, ws, nil
}
