package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/centraliser/core"
	"github.com/katalvlaran/centraliser/dfs"
)

// ExampleStronglyConnectedComponents shows the components of the functional
// graph of the transformation [1, 2, 3, 2]: 0 → 1 → 2 ⇄ 3.
func ExampleStronglyConnectedComponents() {
	g := core.NewFunctionalGraph(4)
	for i, img := range []int{1, 2, 3, 2} {
		_, _ = g.AddEdge(i, img, 0)
	}

	comps, err := dfs.StronglyConnectedComponents(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(comps)

	// Output:
	// [[0] [1] [2 3]]
}
