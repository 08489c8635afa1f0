// File: types.go
// Role: Sentinel errors, Edge, Graph layout and constructor options.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates a weight below zero was supplied.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrEmptyGraph indicates a graph was built from an empty edge list.
	ErrEmptyGraph = errors.New("core: graph has no edges")
)

// Edge is a weighted connection between two vertices.
//
// In undirected graphs From and To are interchangeable; the stored orientation
// is the one used by the first insertion of the pair.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the non-negative traversal cost.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets edge orientation for the whole graph
// (true = one-way edges, false = symmetric edges).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the in-memory weighted graph.
//
// mu guards every field below it. Searches only take read locks, so any number
// of concurrent searches may share one Graph.
type Graph struct {
	mu sync.RWMutex

	// Configuration
	directed bool // edge orientation

	// Storage
	vertexOrder []string            // vertex IDs in first-seen order
	adjacency   map[string][]string // vertex ID → neighbor IDs in insertion order
	weights     map[string]map[string]int64
	edgeIndex   map[edgeKey]int // canonical pair → position in edges
	edges       []Edge          // edges in first-insertion order

	// revision counts successful mutations; caches key on it.
	revision uint64
}

// edgeKey identifies an edge pair. Undirected pairs are stored canonically
// (lexicographically smaller ID first) so A-B and B-A collide.
type edgeKey struct {
	a, b string
}

// NewGraph creates an empty Graph with the given options.
// By default, the Graph is undirected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[string][]string),
		weights:   make(map[string]map[string]int64),
		edgeIndex: make(map[edgeKey]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
