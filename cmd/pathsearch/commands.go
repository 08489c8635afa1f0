package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/pathsearch/engine"
	"github.com/katalvlaran/pathsearch/render"
	"github.com/katalvlaran/pathsearch/search"
)

// errNoPath makes the process exit non-zero when the search exhausts.
var errNoPath = errors.New("failed to reach goal nodes")

type searchCmd struct {
	problemFlags
	Algorithm string `short:"a" help:"BFS, DFS, UCS, Greedy or A* (default: the problem file's, else BFS)" env:"PATHSEARCH_ALGORITHM"`
	Dot       string `placeholder:"PATH" help:"Write the graph and result as Graphviz DOT to PATH ('-' for stdout)"`
}

func (c *searchCmd) Run(rt *runtime) error {
	p, err := c.load(rt.directed)
	if err != nil {
		return err
	}
	alg, err := p.algorithmOr(c.Algorithm)
	if err != nil {
		return err
	}

	return rt.solve(p, alg, c.Dot)
}

// solve runs one search, prints it the way the prompt always has, and
// optionally renders it.
func (rt *runtime) solve(p *problem, alg engine.Algorithm, dot string) error {
	opts, err := rt.searchOptions(p.graph)
	if err != nil {
		return err
	}
	ctx, cancel := rt.searchContext()
	defer cancel()

	res, err := rt.engine.Search(ctx, p.graph, alg, p.start, p.goals, opts...)
	if err != nil {
		return err
	}
	printResult(rt.out, res)

	if dot != "" {
		if err := writeDOT(dot, rt.out, p, res, alg); err != nil {
			return err
		}
	}
	if !res.Found {
		return errNoPath
	}

	return nil
}

func printResult(w io.Writer, res search.Result) {
	if !res.Found {
		fmt.Fprintln(w, "Failed to reach goal nodes")
		return
	}
	fmt.Fprintf(w, "Path: %s\n", strings.Join(res.Path, " -> "))
	fmt.Fprintf(w, "Cost: %d\n", res.Cost)
}

func writeDOT(path string, stdout io.Writer, p *problem, res search.Result, alg engine.Algorithm) error {
	if path == "-" {
		return render.DOT(stdout, p.graph, p.start, p.goals, res, alg.String())
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.DOT(f, p.graph, p.start, p.goals, res, alg.String()); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

type compareCmd struct {
	problemFlags
	Algorithms []string `short:"a" sep:"," placeholder:"BFS,UCS,..." help:"Algorithms to run (default: all)"`
}

func (c *compareCmd) Run(rt *runtime) error {
	p, err := c.load(rt.directed)
	if err != nil {
		return err
	}
	algs := make([]engine.Algorithm, 0, len(c.Algorithms))
	for _, name := range c.Algorithms {
		alg, err := engine.ParseAlgorithm(name)
		if err != nil {
			return err
		}
		algs = append(algs, alg)
	}
	opts, err := rt.searchOptions(p.graph)
	if err != nil {
		return err
	}
	ctx, cancel := rt.searchContext()
	defer cancel()

	rows, err := rt.engine.Compare(ctx, p.graph, p.start, p.goals, algs, opts...)
	if err != nil {
		return err
	}
	printComparison(rt.out, rows)

	return nil
}

func printComparison(w io.Writer, rows []engine.Comparison) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tCOST\tEXPANDED\tPATH")
	for _, row := range rows {
		cost, path := "-", "no path"
		if row.Result.Found {
			cost = fmt.Sprint(row.Result.Cost)
			path = strings.Join(row.Result.Path, " -> ")
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", row.Algorithm, cost, row.Result.Expanded, path)
	}
	tw.Flush()
}
