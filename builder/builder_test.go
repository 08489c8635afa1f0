package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathsearch/builder"
	"github.com/katalvlaran/pathsearch/core"
)

func TestPath(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Path(4))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
	assert.Equal(t, 3, g.EdgeCount())

	_, err = builder.BuildGraph(nil, nil, builder.Path(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestCycle(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(5))
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())
	assert.True(t, g.HasEdge("4", "0"))

	_, err = builder.BuildGraph(nil, nil, builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestStar_Directed(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Star(4))
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())
	assert.True(t, g.HasEdge("3", builder.CenterVertexID))
	nbs, err := g.Neighbors(builder.CenterVertexID)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, nbs)
}

func TestGrid(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(3, 3))
	require.NoError(t, err)
	assert.Equal(t, 9, g.VertexCount())
	assert.Equal(t, 12, g.EdgeCount())
	nbs, err := g.Neighbors(builder.GridID(1, 1))
	require.NoError(t, err)
	assert.Equal(t, []string{"0,1", "1,0", "1,2", "2,1"}, nbs)

	_, err = builder.BuildGraph(nil, nil, builder.Grid(1, 1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestComplete(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithConstantWeight(7)}, builder.Complete(5))
	require.NoError(t, err)
	assert.Equal(t, 10, g.EdgeCount())
	w, err := g.Weight("4", "0")
	require.NoError(t, err)
	assert.Equal(t, int64(7), w)
}

func TestRandomSparse(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.RandomSparse(10, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(10, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	full, err := builder.BuildGraph(nil, nil, builder.RandomSparse(6, 1))
	require.NoError(t, err)
	assert.Equal(t, 15, full.EdgeCount())

	opts := []builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 9)}
	a, err := builder.BuildGraph(nil, opts, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)
	opts = []builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 9)}
	b, err := builder.BuildGraph(nil, opts, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges(), "same seed must give the same graph")
	for _, e := range a.Edges() {
		assert.GreaterOrEqual(t, e.Weight, int64(1))
		assert.LessOrEqual(t, e.Weight, int64(9))
	}
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestIDFns(t *testing.T) {
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "Z", builder.SymbolIDFn(25))
	assert.Equal(t, "v7", builder.SymbolNumberIDFn("v")(7))
	assert.Panics(t, func() { builder.SymbolIDFn(26) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
}

func TestWeightFns(t *testing.T) {
	assert.Equal(t, int64(1), builder.DefaultWeightFn(nil))
	assert.Equal(t, int64(3), builder.UniformWeightFn(3, 8)(nil))

	rng := rand.New(rand.NewSource(1))
	u := builder.UniformWeightFn(2, 4)
	for i := 0; i < 100; i++ {
		w := u(rng)
		assert.True(t, w >= 2 && w <= 4, "w=%d", w)
	}
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 4) })
}
