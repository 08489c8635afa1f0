// Package heuristic supplies remaining-cost estimates for A*.
//
// The reference provider is ShortestPath: the exact Dijkstra distance from a
// candidate node to the targeted goal. Because it is exact it is admissible
// and consistent, so A* driven by it returns UCS-optimal costs.
//
// A provider reports ErrNoHeuristicPath when the two nodes are disconnected.
// What the search does with that is a FailurePolicy decision: TreatAsInfinite
// (default) deprioritizes the node, Abort surfaces the error to the caller.
package heuristic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/fringe"
)

// Sentinel errors for heuristic evaluation.
var (
	// ErrNoHeuristicPath indicates that no path connects the two nodes.
	ErrNoHeuristicPath = errors.New("heuristic: no path between nodes")

	// ErrNilGraph indicates a nil graph was passed to a provider.
	ErrNilGraph = errors.New("heuristic: graph is nil")

	// ErrStaleTable indicates a Table is queried with a graph other than the
	// one (or the revision) it was built from.
	ErrStaleTable = errors.New("heuristic: table does not match graph")

	// ErrUnknownPolicy indicates an unrecognized failure policy name.
	ErrUnknownPolicy = errors.New("heuristic: unknown failure policy")
)

// Provider estimates the remaining cost from one node to another.
type Provider interface {
	Estimate(g *core.Graph, from, to string) (int64, error)
}

// Func adapts an ordinary function to Provider.
type Func func(g *core.Graph, from, to string) (int64, error)

// Estimate calls f(g, from, to).
func (f Func) Estimate(g *core.Graph, from, to string) (int64, error) {
	return f(g, from, to)
}

// FailurePolicy decides how a search reacts to ErrNoHeuristicPath.
type FailurePolicy int

const (
	// TreatAsInfinite turns a failed estimate into fringe.Infinity.
	TreatAsInfinite FailurePolicy = iota
	// Abort stops the search and returns the error.
	Abort
)

// String returns the policy name as accepted by ParseFailurePolicy.
func (p FailurePolicy) String() string {
	switch p {
	case TreatAsInfinite:
		return "infinite"
	case Abort:
		return "abort"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParseFailurePolicy maps "infinite" or "abort" (case-insensitive) to a policy.
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "infinite", "inf", "":
		return TreatAsInfinite, nil
	case "abort":
		return Abort, nil
	default:
		return TreatAsInfinite, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Resolve evaluates p and applies policy to a disconnected-pair failure.
// Other errors are always returned.
func Resolve(p Provider, policy FailurePolicy, g *core.Graph, from, to string) (int64, error) {
	h, err := p.Estimate(g, from, to)
	if err == nil {
		return h, nil
	}
	if errors.Is(err, ErrNoHeuristicPath) && policy == TreatAsInfinite {
		return fringe.Infinity, nil
	}

	return 0, err
}
