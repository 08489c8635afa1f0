package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathsearch/astar"
	"github.com/katalvlaran/pathsearch/bfs"
	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/dfs"
	"github.com/katalvlaran/pathsearch/greedy"
	"github.com/katalvlaran/pathsearch/search"
	"github.com/katalvlaran/pathsearch/ucs"
)

// ErrUnknownAlgorithm is returned for an unrecognized algorithm name.
var ErrUnknownAlgorithm = errors.New("engine: unknown algorithm")

// Algorithm names one search strategy. The values are the display names
// used by the CLI and in problem files.
type Algorithm string

// Supported algorithms.
const (
	BFS    Algorithm = "BFS"
	DFS    Algorithm = "DFS"
	UCS    Algorithm = "UCS"
	Greedy Algorithm = "Greedy"
	AStar  Algorithm = "A*"
)

// SearchFunc is the signature shared by every strategy package.
type SearchFunc func(g *core.Graph, start string, goals []string, opts ...search.Option) (search.Result, error)

var registry = map[Algorithm]SearchFunc{
	BFS:    bfs.Search,
	DFS:    dfs.Search,
	UCS:    ucs.Search,
	Greedy: greedy.Search,
	AStar:  astar.Search,
}

// Algorithms lists every algorithm in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, DFS, UCS, Greedy, AStar}
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
// "astar" and "a-star" are accepted for A*.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "ucs":
		return UCS, nil
	case "greedy":
		return Greedy, nil
	case "a*", "astar", "a-star":
		return AStar, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// String returns the display name.
func (a Algorithm) String() string { return string(a) }

// Run dispatches to the strategy for alg. It holds no state between calls.
func Run(g *core.Graph, alg Algorithm, start string, goals []string, opts ...search.Option) (search.Result, error) {
	fn, ok := registry[alg]
	if !ok {
		return search.Result{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
	}

	return fn(g, start, goals, opts...)
}
