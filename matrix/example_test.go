package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvlsolve/matrix"
)

// ExampleAugment builds [A | b] and applies one elimination step by hand.
func ExampleAugment() {
	a, _ := matrix.NewDenseFromRows([][]float64{{2, 1}, {1, -1}})
	aug, _ := matrix.Augment(a, []float64{5, 1})

	_ = aug.DivideRow(0, 2)
	_ = aug.SubScaledRow(1, 0, 1)
	fmt.Print(aug)

	// Output:
	// [1, 0.5, 2.5]
	// [0, -1.5, -1.5]
}

// ExampleMatVec evaluates A·x for a candidate solution.
func ExampleMatVec() {
	a, _ := matrix.NewDenseFromRows([][]float64{{2, 1}, {1, -1}})
	y, _ := matrix.MatVec(a, []float64{2, 1})
	fmt.Println(y)

	// Output:
	// [5 1]
}
