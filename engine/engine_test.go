package engine_test

import (
	"context"
	"sync"
	"testing"

	"github.com/inconshreveable/log15"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/engine"
	"github.com/katalvlaran/pathsearch/heuristic"
	"github.com/katalvlaran/pathsearch/search"
)

func scenario(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.FromEdges([]core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "A", To: "C", Weight: 2},
		{From: "B", To: "D", Weight: 3},
		{From: "C", To: "D", Weight: 1},
	})
	require.NoError(t, err)

	return g
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]engine.Algorithm{
		"bfs":    engine.BFS,
		"DFS":    engine.DFS,
		" ucs ":  engine.UCS,
		"GREEDY": engine.Greedy,
		"A*":     engine.AStar,
		"astar":  engine.AStar,
		"a-star": engine.AStar,
	}
	for in, want := range cases {
		got, err := engine.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := engine.ParseAlgorithm("dijkstra")
	assert.ErrorIs(t, err, engine.ErrUnknownAlgorithm)
}

func TestRun_Dispatch(t *testing.T) {
	g := scenario(t)
	want := map[engine.Algorithm][]string{
		engine.BFS:    {"A", "B", "D"},
		engine.DFS:    {"A", "C", "D"},
		engine.UCS:    {"A", "C", "D"},
		engine.Greedy: {"A", "B", "D"},
		engine.AStar:  {"A", "C", "D"},
	}
	for alg, path := range want {
		res, err := engine.Run(g, alg, "A", []string{"D"})
		require.NoError(t, err, alg)
		assert.Equal(t, path, res.Path, alg)
	}

	_, err := engine.Run(g, engine.Algorithm("IDA*"), "A", []string{"D"})
	assert.ErrorIs(t, err, engine.ErrUnknownAlgorithm)
}

func TestRun_UCSNeverWorse(t *testing.T) {
	g := scenario(t)
	best, err := engine.Run(g, engine.UCS, "A", []string{"D"})
	require.NoError(t, err)
	for _, alg := range engine.Algorithms() {
		res, err := engine.Run(g, alg, "A", []string{"D"})
		require.NoError(t, err)
		assert.LessOrEqual(t, best.Cost, res.Cost, alg)
	}
}

func TestEngine_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := engine.NewMetrics(reg)
	e := engine.New(engine.WithMetrics(m))
	g := scenario(t)

	_, err := e.Search(context.Background(), g, engine.UCS, "A", []string{"D"})
	require.NoError(t, err)
	_, err = e.Search(context.Background(), g, engine.UCS, "A", []string{"Q"})
	require.Error(t, err)

	disconnected, err := core.FromEdges([]core.Edge{{From: "A", To: "B", Weight: 1}, {From: "C", To: "D", Weight: 1}})
	require.NoError(t, err)
	_, err = e.Search(context.Background(), disconnected, engine.BFS, "A", []string{"D"})
	require.NoError(t, err)

	assert.Equal(t, 1, testutil.CollectAndCount(reg, "pathsearch_engine_path_cost"))

	mfs, err := reg.Gather()
	require.NoError(t, err)
	counts := map[string]float64{}
	for _, mf := range mfs {
		if mf.GetName() != "pathsearch_engine_searches_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			var alg, outcome string
			for _, lp := range metric.GetLabel() {
				switch lp.GetName() {
				case "algorithm":
					alg = lp.GetValue()
				case "outcome":
					outcome = lp.GetValue()
				}
			}
			counts[alg+"/"+outcome] = metric.GetCounter().GetValue()
		}
	}
	assert.Equal(t, map[string]float64{
		"UCS/found":     1,
		"UCS/error":     1,
		"BFS/not_found": 1,
	}, counts)
}

func TestEngine_LogsAndChainsHooks(t *testing.T) {
	var (
		mu   sync.Mutex
		msgs []string
	)
	l := log15.New()
	l.SetHandler(log15.FuncHandler(func(r *log15.Record) error {
		mu.Lock()
		defer mu.Unlock()
		msgs = append(msgs, r.Msg)
		return nil
	}))

	var userExpanded []string
	e := engine.New(engine.WithLogger(l))
	res, err := e.Search(context.Background(), scenario(t), engine.BFS, "A", []string{"D"},
		search.WithOnExpand(func(id string, _ int64) { userExpanded = append(userExpanded, id) }))
	require.NoError(t, err)
	assert.True(t, res.Found)

	assert.Equal(t, []string{"A", "B", "C"}, userExpanded)
	assert.Equal(t, []string{"search started", "expand", "expand", "expand", "search finished"}, msgs)
}

func TestEngine_Compare(t *testing.T) {
	e := engine.New()
	rows, err := e.Compare(context.Background(), scenario(t), "A", []string{"D"}, nil)
	require.NoError(t, err)
	require.Len(t, rows, 5)

	byAlg := map[engine.Algorithm]int64{}
	for i, row := range rows {
		assert.Equal(t, engine.Algorithms()[i], row.Algorithm)
		assert.True(t, row.Result.Found)
		byAlg[row.Algorithm] = row.Result.Cost
	}
	assert.Equal(t, int64(4), byAlg[engine.BFS])
	assert.Equal(t, int64(3), byAlg[engine.UCS])
	assert.Equal(t, int64(3), byAlg[engine.AStar])
}

func TestEngine_CompareErrors(t *testing.T) {
	e := engine.New()
	_, err := e.Compare(context.Background(), scenario(t), "A", []string{"Z"}, nil)
	assert.ErrorIs(t, err, search.ErrNodeNotFound)

	g, err := core.FromEdges([]core.Edge{{From: "A", To: "B", Weight: 1}, {From: "X", To: "Y", Weight: 1}})
	require.NoError(t, err)
	_, err = e.Compare(context.Background(), g, "A", []string{"X", "B"},
		[]engine.Algorithm{engine.BFS, engine.AStar},
		search.WithHeuristicFailure(heuristic.Abort))
	assert.ErrorIs(t, err, heuristic.ErrNoHeuristicPath)
}
