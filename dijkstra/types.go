// Package dijkstra defines configuration options and sentinel errors for
// single-source shortest distances over a core.Graph.
//
// Options:
//
//	– Source:       ID of the starting vertex (must be non-empty and present in the graph).
//	– ReturnPath:   if true, return the predecessor map for path reconstruction.
//	– MaxDistance:  optional cap on distances to explore; vertices beyond this are skipped.
//	– Target:       optional vertex; the run stops as soon as its distance is final.
//
// Errors (sentinel):
//
//	– ErrEmptySource    if the provided source ID is empty.
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrVertexNotFound if the source (or target) vertex does not exist in the graph.
//	– ErrBadMaxDistance if MaxDistance < 0 (raised by panic in the option).
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or target vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting vertex ID.
// Target      – optional early-exit vertex ("" = compute every distance).
// ReturnPath  – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance – cap on explored distances. Default is math.MaxInt64 (no cap).
type Options struct {
	Source      string
	Target      string
	ReturnPath  bool
	MaxDistance int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Required.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithTarget stops the run once the target's distance is finalized.
// Distances of vertices not yet settled at that point remain math.MaxInt64.
func WithTarget(id string) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options initialized for the given source:
// no target, no predecessor map, no distance cap.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		ReturnPath:  false,
		MaxDistance: math.MaxInt64,
	}
}
