package search

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/core"
)

// GoalSet is the set of acceptable terminal nodes.
type GoalSet map[string]struct{}

// NewGoalSet builds a set from ids; duplicates collapse.
func NewGoalSet(ids ...string) GoalSet {
	gs := make(GoalSet, len(ids))
	for _, id := range ids {
		gs[id] = struct{}{}
	}

	return gs
}

// Contains reports membership.
func (gs GoalSet) Contains(id string) bool {
	_, ok := gs[id]

	return ok
}

// Validate checks the search input before any fringe work, in order:
//  1. g non-nil (ErrGraphNil).
//  2. g has at least one edge (ErrEmptyGraph).
//  3. goals non-empty (ErrNoGoals).
//  4. start and every goal exist (ErrNodeNotFound, naming the ID).
func Validate(g *core.Graph, start string, goals []string) (GoalSet, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.EdgeCount() == 0 {
		return nil, ErrEmptyGraph
	}
	if len(goals) == 0 {
		return nil, ErrNoGoals
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: start %q", ErrNodeNotFound, start)
	}
	for _, id := range goals {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%w: goal %q", ErrNodeNotFound, id)
		}
	}

	return NewGoalSet(goals...), nil
}
