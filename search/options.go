package search

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pathsearch/heuristic"
)

// Option configures a search via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by Build.
type Option func(*Options)

// Options holds parameters and callbacks shared by all strategies.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per loop iteration.
	Ctx context.Context

	// OnExpand is called when a node is expanded, with its accumulated cost.
	OnExpand func(id string, cost int64)

	// OnPush is called whenever an entry enters the fringe.
	OnPush func(id string, cost int64)

	// MaxExpansions, if > 0, aborts with ErrExpansionLimit once that many
	// nodes have been expanded without reaching a goal.
	MaxExpansions int

	// Heuristic is consulted by A* only.
	Heuristic heuristic.Provider

	// HeuristicFailure decides how A* treats ErrNoHeuristicPath.
	HeuristicFailure heuristic.FailurePolicy

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no-op hooks
//   - no expansion limit
//   - the ShortestPath heuristic, failures treated as infinite.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		OnExpand:         func(string, int64) {},
		OnPush:           func(string, int64) {},
		Heuristic:        heuristic.ShortestPath(),
		HeuristicFailure: heuristic.TreatAsInfinite,
	}
}

// Build applies opts over DefaultOptions.
func Build(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers a callback run for every expanded node.
func WithOnExpand(fn func(id string, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnPush registers a callback run for every fringe insertion.
func WithOnPush(fn func(id string, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithMaxExpansions bounds the number of expansions.
//
//	n > 0: limit to n
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithHeuristic replaces the A* heuristic provider.
func WithHeuristic(p heuristic.Provider) Option {
	return func(o *Options) {
		if p != nil {
			o.Heuristic = p
		}
	}
}

// WithHeuristicFailure sets the policy for disconnected heuristic queries.
func WithHeuristicFailure(p heuristic.FailurePolicy) Option {
	return func(o *Options) {
		switch p {
		case heuristic.TreatAsInfinite, heuristic.Abort:
			o.HeuristicFailure = p
		default:
			o.err = fmt.Errorf("%w: unknown heuristic failure policy %d", ErrOptionViolation, int(p))
		}
	}
}

// Step is called by a strategy before expanding its next node. It reports
// cancellation and the expansion budget.
func (o *Options) Step(expanded int) error {
	select {
	case <-o.Ctx.Done():
		return o.Ctx.Err()
	default:
	}
	if o.MaxExpansions > 0 && expanded >= o.MaxExpansions {
		return fmt.Errorf("%w: %d", ErrExpansionLimit, o.MaxExpansions)
	}

	return nil
}
