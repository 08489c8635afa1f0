// Package search holds the plumbing shared by every search strategy: the
// Result value, functional Options with hooks, eager input validation, the
// goal set and path reconstruction.
//
// A search that exhausts its fringe is not an error. It returns a Result with
// Found == false; errors are reserved for invalid input, cancellation and
// exhausted expansion budgets.
package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathsearch/core"
)

// Sentinel errors for search execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrEmptyGraph is returned when the graph has no edges.
	ErrEmptyGraph = core.ErrEmptyGraph

	// ErrNodeNotFound is returned when the start or a goal is absent; the
	// returned error names the missing ID.
	ErrNodeNotFound = core.ErrVertexNotFound

	// ErrNoGoals is returned when the goal list is empty.
	ErrNoGoals = errors.New("search: no goal nodes")

	// ErrExpansionLimit is returned when WithMaxExpansions is exceeded.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Result is the outcome of one search.
//
//   - Found: false means the fringe was exhausted; Cost and Path are then zero.
//   - Cost:  sum of edge weights along Path.
//   - Path:  start … goal, inclusive.
//   - Expanded: number of nodes whose neighbors were examined.
type Result struct {
	Found    bool
	Cost     int64
	Path     []string
	Expanded int
}

// NotFound returns the terminal "no goal reachable" result.
func NotFound(expanded int) Result {
	return Result{Expanded: expanded}
}

// Success returns a found result.
func Success(cost int64, path []string, expanded int) Result {
	return Result{Found: true, Cost: cost, Path: path, Expanded: expanded}
}

// Goal returns the last node of the path, or "" when not found.
func (r Result) Goal() string {
	if !r.Found || len(r.Path) == 0 {
		return ""
	}

	return r.Path[len(r.Path)-1]
}

// String renders "cost=3 path=A→C→D" or "not found".
func (r Result) String() string {
	if !r.Found {
		return "not found"
	}

	return fmt.Sprintf("cost=%d path=%s", r.Cost, strings.Join(r.Path, "→"))
}
