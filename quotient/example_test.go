package quotient_test

import (
	"fmt"

	"github.com/katalvlaran/centraliser/quotient"
	"github.com/katalvlaran/centraliser/transformation"
)

// ExampleBar shows the orbit quotient of a single generator and the lift
// of that generator to its blocks.
func ExampleBar() {
	a := transformation.MustNew(1, 2, 3, 2)
	p, err := quotient.Bar(4, []transformation.Transformation{a})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.Blocks())

	l, _ := quotient.LiftOf(a, p)
	fmt.Println(l.Transformation(), l.WellDefined())
	// Output:
	// [[0] [1] [2 3]]
	// Transformation([1, 2, 2]) true
}
