package greedy_test

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/greedy"
)

func ExampleSearch() {
	g, _ := core.FromEdges([]core.Edge{
		{From: "A", To: "B", Weight: 2},
		{From: "A", To: "C", Weight: 1},
		{From: "B", To: "D", Weight: 3},
	})

	res, _ := greedy.Search(g, "A", []string{"D", "C"})
	fmt.Println(res)
	// Output:
	// cost=1 path=A→C
}
