package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/centraliser/bfs"
	"github.com/katalvlaran/centraliser/core"
)

// ExampleBFSResult_WordTo recovers the labels of a shortest path.
func ExampleBFSResult_WordTo() {
	g := core.NewFunctionalGraph(4)
	_, _ = g.AddEdge(0, 1, 7)
	_, _ = g.AddEdge(1, 2, 8)
	_, _ = g.AddEdge(0, 3, 9)
	_, _ = g.AddEdge(3, 2, 9)

	res, _ := bfs.BFS(g, 0)
	word, _ := res.WordTo(2)
	fmt.Println(res.Order, word)
	// Output:
	// [0 1 3 2] [7 8]
}
