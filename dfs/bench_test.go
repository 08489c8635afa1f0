package dfs_test

import (
	"testing"

	"github.com/katalvlaran/pathsearch/builder"
	"github.com/katalvlaran/pathsearch/dfs"
)

// BenchmarkDFS_Grid measures DFS corner to corner on a 40×40 grid.
func BenchmarkDFS_Grid(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(40, 40))
	if err != nil {
		b.Fatal(err)
	}
	goal := []string{builder.GridID(39, 39)}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Search(g, builder.GridID(0, 0), goal)
	}
}
