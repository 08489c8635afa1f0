package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/engine"
	"github.com/katalvlaran/pathsearch/heuristic"
	"github.com/katalvlaran/pathsearch/parse"
	"github.com/katalvlaran/pathsearch/search"
)

var errConflictingInput = errors.New("use either --file or --edges/--start/--goals, not both")

// problemFlags are shared by search and compare.
type problemFlags struct {
	File  string `short:"f" type:"existingfile" placeholder:"PATH" help:"YAML problem file"`
	Edges string `short:"e" placeholder:"A,B=1+B,C=2" help:"Edges as node,node=weight joined by '+'"`
	Start string `short:"s" help:"Start node"`
	Goals string `short:"g" placeholder:"A,B,..." help:"Comma separated goal nodes"`
}

// problem is a parsed, ready to search request.
type problem struct {
	graph     *core.Graph
	start     string
	goals     []string
	algorithm string
}

// load reads the problem from the file or from the inline flags.
func (f problemFlags) load(directed bool) (*problem, error) {
	if f.File != "" {
		if f.Edges != "" || f.Start != "" || f.Goals != "" {
			return nil, errConflictingInput
		}
		p, err := parse.LoadProblem(f.File)
		if err != nil {
			return nil, err
		}
		g, err := p.Graph()
		if err != nil {
			return nil, err
		}

		return &problem{graph: g, start: p.Start, goals: p.Goals, algorithm: p.Algorithm}, nil
	}

	return buildProblem(f.Edges, f.Start, f.Goals, directed)
}

func buildProblem(edgeText, startText, goalText string, directed bool) (*problem, error) {
	edges, err := parse.Edges(edgeText)
	if err != nil {
		return nil, err
	}
	start, err := parse.Start(startText)
	if err != nil {
		return nil, err
	}
	goals, err := parse.Goals(goalText)
	if err != nil {
		return nil, err
	}
	g, err := core.FromEdges(edges, core.WithDirected(directed))
	if err != nil {
		return nil, err
	}

	return &problem{graph: g, start: start, goals: goals}, nil
}

// algorithmOr picks the flag value, then the problem file's, then BFS.
func (p *problem) algorithmOr(flag string) (engine.Algorithm, error) {
	switch {
	case flag != "":
		return engine.ParseAlgorithm(flag)
	case p.algorithm != "":
		return engine.ParseAlgorithm(p.algorithm)
	default:
		return engine.BFS, nil
	}
}

// searchOptions turns the global flags into search options for g.
func (rt *runtime) searchOptions(g *core.Graph) ([]search.Option, error) {
	var provider heuristic.Provider
	switch rt.heuristic {
	case "", "shortest-path":
		provider = heuristic.ShortestPath()
	case "zero":
		provider = heuristic.Zero()
	case "table":
		t, err := heuristic.NewTable(g)
		if err != nil {
			return nil, err
		}
		provider = t
	default:
		return nil, fmt.Errorf("unknown heuristic %q", rt.heuristic)
	}
	// A table lookup is already O(1).
	if rt.cacheSize > 0 && rt.heuristic != "table" {
		c, err := heuristic.NewCached(provider, rt.cacheSize)
		if err != nil {
			return nil, err
		}
		provider = c
	}

	return []search.Option{
		search.WithHeuristic(provider),
		search.WithHeuristicFailure(rt.failure),
		search.WithMaxExpansions(rt.maxExpansions),
	}, nil
}
