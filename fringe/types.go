// Package fringe provides the pluggable ordering policies over pending search
// states: FIFO, LIFO, min-cost, min-estimate and min-(cost+estimate).
package fringe

import (
	"fmt"
	"math"
)

// Infinity is the cost or estimate used for "unreachable".
const Infinity int64 = math.MaxInt64

// Policy selects the order in which entries leave a Fringe.
type Policy int

const (
	// FIFO pops the oldest entry first (BFS).
	FIFO Policy = iota
	// LIFO pops the newest entry first (DFS, Greedy).
	LIFO
	// MinCost pops the entry with the smallest accumulated Cost (UCS).
	MinCost
	// MinEstimate pops the entry with the smallest Estimate.
	MinEstimate
	// MinTotal pops the entry with the smallest Cost+Estimate (A*).
	MinTotal
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case FIFO:
		return "fifo"
	case LIFO:
		return "lifo"
	case MinCost:
		return "min-cost"
	case MinEstimate:
		return "min-estimate"
	case MinTotal:
		return "min-total"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Entry is one pending search state.
//
// Path is optional: queue-based strategies carry it, back-pointer strategies
// leave it nil and rebuild the path on success.
type Entry struct {
	Node     string
	Cost     int64
	Estimate int64
	Path     []string
}

// Total returns Cost+Estimate, saturating at Infinity.
func (e Entry) Total() int64 {
	return SaturatingAdd(e.Cost, e.Estimate)
}

// Fringe is the frontier of not-yet-expanded states.
type Fringe interface {
	// Push adds an entry.
	Push(e Entry)
	// Pop removes the next entry under the policy; ok is false when empty.
	Pop() (e Entry, ok bool)
	// Len reports the number of pending entries.
	Len() int
	// Policy reports the ordering policy.
	Policy() Policy
}

// New returns an empty Fringe for the policy. Unknown policies fall back to FIFO.
func New(p Policy) Fringe {
	switch p {
	case LIFO:
		return &stack{}
	case MinCost, MinEstimate, MinTotal:
		return newPriority(p)
	default:
		return &queue{}
	}
}

// SaturatingAdd returns a+b for non-negative operands, clamped to Infinity.
func SaturatingAdd(a, b int64) int64 {
	if a >= Infinity-b {
		return Infinity
	}

	return a + b
}
