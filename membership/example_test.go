package membership_test

import (
	"fmt"

	"github.com/katalvlaran/centraliser/membership"
	"github.com/katalvlaran/centraliser/transformation"
)

func ExampleDecide() {
	a := transformation.MustNew(1, 2, 3, 2)
	res, err := membership.Decide(transformation.MustNew(2, 3, 2, 3), []transformation.Transformation{a})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Member, res.Stage, res.Factorisation)

	res, _ = membership.Decide(transformation.Identity(4), []transformation.Transformation{a})
	fmt.Println(res.Member, res.Stage)
	// Output:
	// true quotient-witness [0 0]
	// false quotient
}
