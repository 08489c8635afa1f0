package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/pathsearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromEdges_Empty verifies that an empty edge list is rejected.
func TestFromEdges_Empty(t *testing.T) {
	g, err := core.FromEdges(nil)
	require.ErrorIs(t, err, core.ErrEmptyGraph)
	assert.Nil(t, g)

	_, err = core.FromEdges([]core.Edge{})
	require.ErrorIs(t, err, core.ErrEmptyGraph)
}

// TestFromEdges_InvalidEdge verifies that bad entries are reported with context.
func TestFromEdges_InvalidEdge(t *testing.T) {
	_, err := core.FromEdges([]core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "", To: "C", Weight: 1},
	})
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
	assert.Contains(t, err.Error(), "edge 1")

	_, err = core.FromEdges([]core.Edge{{From: "A", To: "B", Weight: -1}})
	require.ErrorIs(t, err, core.ErrNegativeWeight)
}

// TestNeighbors_InsertionOrder verifies that neighbor enumeration follows
// edge insertion order rather than lexical order.
func TestNeighbors_InsertionOrder(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("S", "Z", 1))
	require.NoError(t, g.AddEdge("S", "A", 1))
	require.NoError(t, g.AddEdge("M", "S", 1))

	nbs, err := g.Neighbors("S")
	require.NoError(t, err)
	assert.Equal(t, []string{"Z", "A", "M"}, nbs)
	assert.Equal(t, []string{"S", "Z", "A", "M"}, g.Vertices())
}

// TestNeighbors_Errors covers the empty and missing vertex cases.
func TestNeighbors_Errors(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))

	_, err := g.Neighbors("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.Neighbors("X")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestAddEdge_Overwrite verifies that a duplicate pair replaces the weight
// without duplicating the neighbor entry or the catalog entry.
func TestAddEdge_Overwrite(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 5))
	require.NoError(t, g.AddEdge("A", "C", 1))
	rev := g.Revision()

	// Reverse orientation is the same undirected pair.
	require.NoError(t, g.AddEdge("B", "A", 2))
	assert.Greater(t, g.Revision(), rev)

	w, err := g.Weight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, int64(2), w)

	nbs, _ := g.Neighbors("A")
	assert.Equal(t, []string{"B", "C"}, nbs)
	nbs, _ = g.Neighbors("B")
	assert.Equal(t, []string{"A"}, nbs)

	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []core.Edge{
		{From: "A", To: "B", Weight: 2},
		{From: "A", To: "C", Weight: 1},
	}, g.Edges())
}

// TestDirected_OneWay verifies directed storage and overwrite semantics.
func TestDirected_OneWay(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 3))
	require.NoError(t, g.AddEdge("B", "A", 7))
	assert.True(t, g.Directed())
	assert.Equal(t, 2, g.EdgeCount())

	ab, _ := g.Weight("A", "B")
	ba, _ := g.Weight("B", "A")
	assert.Equal(t, int64(3), ab)
	assert.Equal(t, int64(7), ba)

	// Sink-only vertex still exists.
	require.NoError(t, g.AddEdge("A", "C", 1))
	assert.True(t, g.HasVertex("C"))
	nbs, err := g.Neighbors("C")
	require.NoError(t, err)
	assert.Empty(t, nbs)
}

// TestSelfLoop verifies that a loop appears once among its vertex's neighbors.
func TestSelfLoop(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "A", 4))
	require.NoError(t, g.AddEdge("A", "B", 1))

	nbs, _ := g.Neighbors("A")
	assert.Equal(t, []string{"A", "B"}, nbs)
	w, err := g.Weight("A", "A")
	require.NoError(t, err)
	assert.Equal(t, int64(4), w)
}

// TestWeight_Missing verifies ErrEdgeNotFound for absent pairs.
func TestWeight_Missing(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	_, err := g.Weight("A", "D")
	if !errors.Is(err, core.ErrEdgeNotFound) {
		t.Fatalf("want ErrEdgeNotFound, got %v", err)
	}
	assert.False(t, g.HasVertex(""))
	assert.False(t, g.HasVertex("Q"))
	assert.Equal(t, 4, g.VertexCount())
}
