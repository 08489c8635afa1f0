// Package render draws a graph and a search result as Graphviz DOT.
//
// The colour scheme marks the start node red, goal nodes green and every
// other node light blue. Edges on the found path are orange; the rest are
// black. Every edge is labelled with its weight and the graph label carries
// the algorithm, the cost and the path.
//
// Output is deterministic: nodes appear in first-seen order and edges in
// insertion order, so rendered files diff cleanly.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/search"
)

// Colours used by DOT.
const (
	StartColor = "red"
	GoalColor  = "green"
	NodeColor  = "lightblue"
	PathColor  = "orange"
	EdgeColor  = "black"
)

// DOT writes g to w. title names the algorithm; res may be a not-found
// result, in which case no edge is highlighted.
func DOT(w io.Writer, g *core.Graph, start string, goals []string, res search.Result, title string) error {
	if g == nil {
		return search.ErrGraphNil
	}

	isGoal := make(map[string]bool, len(goals))
	for _, id := range goals {
		isGoal[id] = true
	}
	onPath := pathEdges(res.Path, g.Directed())

	kind, arrow := "graph", "--"
	if g.Directed() {
		kind, arrow = "digraph", "->"
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s pathsearch {\n", kind)
	fmt.Fprintf(bw, "\tlabel=%s;\n", quote(label(title, res)))
	fmt.Fprintf(bw, "\tlabelloc=t;\n")
	fmt.Fprintf(bw, "\tnode [style=filled];\n")

	for _, id := range g.Vertices() {
		color := NodeColor
		switch {
		case id == start:
			color = StartColor
		case isGoal[id]:
			color = GoalColor
		}
		fmt.Fprintf(bw, "\t%s [fillcolor=%s];\n", quote(id), color)
	}
	for _, e := range g.Edges() {
		color := EdgeColor
		if onPath[[2]string{e.From, e.To}] {
			color = PathColor
		}
		fmt.Fprintf(bw, "\t%s %s %s [label=%d, color=%s];\n", quote(e.From), arrow, quote(e.To), e.Weight, color)
	}
	fmt.Fprintf(bw, "}\n")

	return bw.Flush()
}

// label is the caption shown above the drawing.
func label(title string, res search.Result) string {
	if !res.Found {
		return fmt.Sprintf("%s: no path", title)
	}

	return fmt.Sprintf("%s: cost=%d path=%s", title, res.Cost, strings.Join(res.Path, " -> "))
}

// pathEdges returns the set of consecutive path pairs. Undirected pairs are
// recorded both ways so the stored edge orientation does not matter.
func pathEdges(path []string, directed bool) map[[2]string]bool {
	out := make(map[[2]string]bool, 2*len(path))
	for i := 1; i < len(path); i++ {
		out[[2]string{path[i-1], path[i]}] = true
		if !directed {
			out[[2]string{path[i], path[i-1]}] = true
		}
	}

	return out
}

// idEscaper escapes backslashes and quotes in a single pass so an ID can
// neither end its string early nor form a Graphviz escape. Line breaks become \n.
var idEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\r\n", `\n`, "\n", `\n`, "\r", `\n`)

// quote renders s as a DOT quoted ID.
func quote(s string) string {
	return `"` + idEscaper.Replace(s) + `"`
}
