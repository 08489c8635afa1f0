package ucs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathsearch/bfs"
	"github.com/katalvlaran/pathsearch/builder"
	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/dfs"
	"github.com/katalvlaran/pathsearch/greedy"
	"github.com/katalvlaran/pathsearch/search"
	"github.com/katalvlaran/pathsearch/ucs"
)

func mustGraph(t *testing.T, edges ...core.Edge) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(edges)
	require.NoError(t, err)

	return g
}

func TestUCS_CheapestPath(t *testing.T) {
	g := mustGraph(t,
		core.Edge{From: "A", To: "B", Weight: 1},
		core.Edge{From: "A", To: "C", Weight: 2},
		core.Edge{From: "B", To: "D", Weight: 3},
		core.Edge{From: "C", To: "D", Weight: 1},
	)
	res, err := ucs.Search(g, "A", []string{"D"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Cost)
	assert.Equal(t, []string{"A", "C", "D"}, res.Path)
}

// TestUCS_EqualCostTiePrefersEarlierPush: both routes to D cost 4; the one
// discovered first (through B) wins.
func TestUCS_EqualCostTiePrefersEarlierPush(t *testing.T) {
	g := mustGraph(t,
		core.Edge{From: "A", To: "B", Weight: 1},
		core.Edge{From: "A", To: "C", Weight: 2},
		core.Edge{From: "B", To: "D", Weight: 3},
		core.Edge{From: "C", To: "D", Weight: 3},
	)
	res, err := ucs.Search(g, "A", []string{"D"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Cost)
	assert.Equal(t, []string{"A", "B", "D"}, res.Path)
}

func TestUCS_ZeroWeights(t *testing.T) {
	g := mustGraph(t,
		core.Edge{From: "A", To: "B", Weight: 0},
		core.Edge{From: "B", To: "C", Weight: 0},
		core.Edge{From: "A", To: "C", Weight: 1},
	)
	res, err := ucs.Search(g, "A", []string{"C"})
	require.NoError(t, err)
	assert.Zero(t, res.Cost)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
}

func TestUCS_StaleEntriesAreSkipped(t *testing.T) {
	// D is first pushed at cost 10 via A, then improved to 3 via B and C.
	g := mustGraph(t,
		core.Edge{From: "A", To: "D", Weight: 10},
		core.Edge{From: "A", To: "B", Weight: 1},
		core.Edge{From: "B", To: "C", Weight: 1},
		core.Edge{From: "C", To: "D", Weight: 1},
		core.Edge{From: "D", To: "E", Weight: 1},
	)
	var expanded []string
	res, err := ucs.Search(g, "A", []string{"E"}, search.WithOnExpand(func(id string, _ int64) {
		expanded = append(expanded, id)
	}))
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Cost)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, res.Path)
	assert.Equal(t, []string{"A", "B", "C", "D"}, expanded)
}

func TestUCS_NotFoundAndErrors(t *testing.T) {
	g := mustGraph(t,
		core.Edge{From: "A", To: "B", Weight: 1},
		core.Edge{From: "C", To: "D", Weight: 1},
	)
	res, err := ucs.Search(g, "A", []string{"D"})
	require.NoError(t, err)
	assert.False(t, res.Found)

	_, err = ucs.Search(g, "A", []string{"X"})
	assert.ErrorIs(t, err, search.ErrNodeNotFound)

	_, err = ucs.Search(core.NewGraph(), "A", []string{"B"})
	assert.ErrorIs(t, err, search.ErrEmptyGraph)
}

// TestUCS_NeverWorseThanOthers checks cost optimality against BFS, DFS and
// Greedy on seeded random graphs, both undirected and directed.
func TestUCS_NeverWorseThanOthers(t *testing.T) {
	others := map[string]func(*core.Graph, string, []string, ...search.Option) (search.Result, error){
		"bfs":    bfs.Search,
		"dfs":    dfs.Search,
		"greedy": greedy.Search,
	}
	for _, directed := range []bool{false, true} {
		for seed := int64(1); seed <= 20; seed++ {
			g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(directed)},
				[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(1, 30)},
				builder.RandomSparse(25, 0.2))
			require.NoError(t, err)
			vs := g.Vertices()
			start, goals := vs[0], []string{vs[len(vs)-1]}

			best, err := ucs.Search(g, start, goals)
			require.NoError(t, err)
			for name, other := range others {
				res, err := other(g, start, goals)
				require.NoError(t, err)
				if name != "greedy" {
					// BFS and DFS are complete; Greedy may dead-end.
					assert.Equal(t, best.Found, res.Found, "%s seed %d directed %v", name, seed, directed)
				}
				if res.Found {
					require.True(t, best.Found, "%s seed %d directed %v", name, seed, directed)
					assert.LessOrEqual(t, best.Cost, res.Cost, "%s seed %d directed %v", name, seed, directed)
				}
			}

			if best.Found {
				c, err := search.PathCost(g, best.Path)
				require.NoError(t, err)
				assert.Equal(t, best.Cost, c, "seed %d", seed)
			}
		}
	}
}
