package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/heuristic"
	"github.com/katalvlaran/pathsearch/search"
)

func sample(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.FromEdges([]core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "A", To: "C", Weight: 2},
		{From: "B", To: "D", Weight: 3},
	})
	require.NoError(t, err)

	return g
}

func TestValidate(t *testing.T) {
	g := sample(t)

	_, err := search.Validate(nil, "A", []string{"D"})
	assert.ErrorIs(t, err, search.ErrGraphNil)

	_, err = search.Validate(core.NewGraph(), "A", []string{"D"})
	assert.ErrorIs(t, err, search.ErrEmptyGraph)

	_, err = search.Validate(g, "A", nil)
	assert.ErrorIs(t, err, search.ErrNoGoals)

	_, err = search.Validate(g, "Z", []string{"D"})
	assert.ErrorIs(t, err, search.ErrNodeNotFound)
	assert.Contains(t, err.Error(), `start "Z"`)

	_, err = search.Validate(g, "A", []string{"D", "Q"})
	assert.ErrorIs(t, err, search.ErrNodeNotFound)
	assert.Contains(t, err.Error(), `goal "Q"`)

	gs, err := search.Validate(g, "A", []string{"D", "C", "D"})
	require.NoError(t, err)
	assert.Len(t, gs, 2)
	assert.True(t, gs.Contains("C"))
	assert.False(t, gs.Contains("A"))
}

func TestReconstruct(t *testing.T) {
	cameFrom := map[string]string{"B": "A", "D": "B"}
	assert.Equal(t, []string{"A", "B", "D"}, search.Reconstruct(cameFrom, "D"))
	assert.Equal(t, []string{"A"}, search.Reconstruct(cameFrom, "A"))
}

func TestPathCost(t *testing.T) {
	g := sample(t)

	c, err := search.PathCost(g, []string{"C", "A", "B", "D"})
	require.NoError(t, err)
	assert.Equal(t, int64(6), c)

	c, err = search.PathCost(g, []string{"A"})
	require.NoError(t, err)
	assert.Zero(t, c)

	_, err = search.PathCost(g, []string{"C", "D"})
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestExtendDoesNotAlias(t *testing.T) {
	base := make([]string, 1, 4)
	base[0] = "A"
	left := search.Extend(base, "B")
	right := search.Extend(base, "C")
	assert.Equal(t, []string{"A", "B"}, left)
	assert.Equal(t, []string{"A", "C"}, right)
}

func TestNeighbors(t *testing.T) {
	ids, ws, err := search.Neighbors(sample(t), "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, ids)
	assert.Equal(t, []int64{1, 2}, ws)
}

func TestBuildOptions(t *testing.T) {
	o, err := search.Build()
	require.NoError(t, err)
	assert.Equal(t, heuristic.TreatAsInfinite, o.HeuristicFailure)
	assert.NotNil(t, o.Heuristic)

	_, err = search.Build(search.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	_, err = search.Build(search.WithHeuristicFailure(heuristic.FailurePolicy(9)))
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	o, err = search.Build(search.WithHeuristicFailure(heuristic.Abort), search.WithHeuristic(nil))
	require.NoError(t, err)
	assert.Equal(t, heuristic.Abort, o.HeuristicFailure)
	assert.NotNil(t, o.Heuristic)
}

func TestStep(t *testing.T) {
	o, err := search.Build(search.WithMaxExpansions(2))
	require.NoError(t, err)
	assert.NoError(t, o.Step(0))
	assert.NoError(t, o.Step(1))
	assert.ErrorIs(t, o.Step(2), search.ErrExpansionLimit)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	o, err = search.Build(search.WithContext(ctx))
	require.NoError(t, err)
	assert.ErrorIs(t, o.Step(0), context.Canceled)
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "not found", search.NotFound(3).String())
	r := search.Success(3, []string{"A", "C", "D"}, 2)
	assert.Equal(t, "cost=3 path=A→C→D", r.String())
	assert.Equal(t, "D", r.Goal())
	assert.Equal(t, "", search.NotFound(0).Goal())
}
