// Package engine is the single entry point over the five search strategies:
// Run dispatches by Algorithm, and Engine adds structured logging, Prometheus
// metrics and a concurrent side-by-side Compare.
//
// Engine values hold no per-search state; one Engine may serve any number of
// concurrent searches over graphs that are not being mutated.
package engine

import (
	"context"
	"time"

	"github.com/inconshreveable/log15"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/search"
)

// Engine wraps Run with logging and metrics.
type Engine struct {
	log     log15.Logger
	metrics *Metrics
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. Every search logs at debug level; individual
// expansions are logged at debug level too, so keep the handler filtered.
func WithLogger(l log15.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithMetrics enables Prometheus collectors.
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// New returns an Engine that discards logs and records no metrics unless
// configured otherwise.
func New(opts ...Option) *Engine {
	l := log15.New("module", "engine")
	l.SetHandler(log15.DiscardHandler())
	e := &Engine{log: l}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Search runs alg with ctx installed as the cancellation context. A
// caller-supplied OnExpand hook still fires; the engine chains its own
// logging hook after it.
func (e *Engine) Search(ctx context.Context, g *core.Graph, alg Algorithm, start string, goals []string, opts ...search.Option) (search.Result, error) {
	log := e.log.New("alg", alg.String(), "start", start, "goals", goals)

	user, err := search.Build(opts...)
	if err != nil {
		return search.Result{}, err
	}
	all := make([]search.Option, 0, len(opts)+2)
	all = append(all, search.WithContext(ctx))
	all = append(all, opts...)
	all = append(all, search.WithOnExpand(func(id string, cost int64) {
		user.OnExpand(id, cost)
		log.Debug("expand", "node", id, "cost", cost)
	}))

	log.Debug("search started")
	began := time.Now()
	res, err := Run(g, alg, start, goals, all...)
	elapsed := time.Since(began)
	e.metrics.observe(alg, res, err, elapsed.Seconds())

	switch {
	case err != nil:
		log.Debug("search failed", "err", err, "elapsed", elapsed)
	case res.Found:
		log.Debug("search finished", "cost", res.Cost, "path", res.Path, "expanded", res.Expanded, "elapsed", elapsed)
	default:
		log.Debug("search exhausted", "expanded", res.Expanded, "elapsed", elapsed)
	}

	return res, err
}

// Comparison is one row of Compare output.
type Comparison struct {
	Algorithm Algorithm
	Result    search.Result
	Elapsed   time.Duration
}

// Compare runs each algorithm in algs (all of them when empty) concurrently on
// the same graph. Rows keep the order of algs. The first error cancels the
// remaining searches and is returned.
//
// Hooks passed in opts are invoked from several goroutines at once.
func (e *Engine) Compare(ctx context.Context, g *core.Graph, start string, goals []string, algs []Algorithm, opts ...search.Option) ([]Comparison, error) {
	if len(algs) == 0 {
		algs = Algorithms()
	}
	// Fail fast on input errors once instead of once per goroutine.
	if _, err := search.Validate(g, start, goals); err != nil {
		return nil, err
	}

	rows := make([]Comparison, len(algs))
	eg, gctx := errgroup.WithContext(ctx)
	for i, alg := range algs {
		eg.Go(func() error {
			began := time.Now()
			res, err := e.Search(gctx, g, alg, start, goals, opts...)
			if err != nil {
				return err
			}
			rows[i] = Comparison{Algorithm: alg, Result: res, Elapsed: time.Since(began)}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return rows, nil
}
