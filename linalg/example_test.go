package linalg

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-optkit/grid"
)

func ExampleNewPowerMethod() {
	// Scaling by 3 has spectral radius 3.
	op := OperatorFunc(func(x *grid.Grid) *grid.Grid {
		return x.Scale(3)
	})

	pm := NewPowerMethod(op, 2, 2)
	fmt.Printf("%.0f %t\n", pm.SpecRad(), pm.Converged())
	// Output:
	// 3 true
}

func ExampleGramSchmidt() {
	m := grid.FromRows([][]float64{{3, 1}, {2, 2}})

	orth, _, _ := GramSchmidt(m, Orthogonal)
	fmt.Printf("%.1f\n", orth.Data)
	// Output:
	// [3.0 1.0 -0.4 1.2]
}

func ExampleRotate() {
	g := grid.FromRows([][]float64{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}})

	out, _ := Rotate(g, math.Pi/2)
	fmt.Println(out.Row(0))
	// Output:
	// [2 5 8]
}
