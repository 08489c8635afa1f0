package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/engine"
	"github.com/katalvlaran/pathsearch/parse"
)

type promptCmd struct {
	Dot string `placeholder:"PATH" help:"Write the graph and result as Graphviz DOT to PATH ('-' for stdout)"`
}

func (c *promptCmd) Run(rt *runtime) error {
	return rt.prompt(c.Dot)
}

// prompt asks for edges, start, goals and algorithm in turn. Invalid
// answers are reported and asked again; end of input aborts.
func (rt *runtime) prompt(dot string) error {
	sc := bufio.NewScanner(rt.in)

	edges, err := ask(sc, rt.out, "Enter edges with weights as (node,node=weight+node,node=weight): ", parse.Edges)
	if err != nil {
		return err
	}
	g, err := core.FromEdges(edges, core.WithDirected(rt.directed))
	if err != nil {
		return err
	}
	start, err := ask(sc, rt.out, "Enter start node: ", func(s string) (string, error) {
		s, err := parse.Start(s)
		if err == nil && !g.HasVertex(s) {
			err = fmt.Errorf("node %q is not in the graph", s)
		}
		return s, err
	})
	if err != nil {
		return err
	}
	goals, err := ask(sc, rt.out, "Enter goal nodes (i.e, A,B,C,...): ", parse.Goals)
	if err != nil {
		return err
	}
	alg, err := ask(sc, rt.out, "Select search algorithm [BFS, DFS, UCS, Greedy, A*] (default BFS): ", func(s string) (engine.Algorithm, error) {
		if strings.TrimSpace(s) == "" {
			return engine.BFS, nil
		}
		return engine.ParseAlgorithm(s)
	})
	if err != nil {
		return err
	}

	return rt.solve(&problem{graph: g, start: start, goals: goals}, alg, dot)
}

// errAborted is returned when input ends before every question is answered.
var errAborted = errors.New("input ended before the problem was complete")

// ask repeats question until parseFn accepts a line.
func ask[T any](sc *bufio.Scanner, out io.Writer, question string, parseFn func(string) (T, error)) (T, error) {
	var zero T
	for {
		fmt.Fprint(out, question)
		if !sc.Scan() {
			fmt.Fprintln(out)
			if err := sc.Err(); err != nil {
				return zero, err
			}
			return zero, errAborted
		}
		v, err := parseFn(sc.Text())
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(out, "Invalid input: %v\n", err)
	}
}
