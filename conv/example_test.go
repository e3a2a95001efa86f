package conv

import (
	"fmt"

	"github.com/cwbudde/algo-optkit/grid"
)

func ExampleConvolve() {
	image := grid.FromRows([][]float64{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}})
	kernel := image.AddScalar(1)

	out, _ := Convolve(image, kernel, MethodWrap)
	fmt.Println(out.Row(0))
	// Output:
	// [210 201 210]
}

func ExampleParseMethod() {
	m, _ := ParseMethod("bounded")
	fmt.Println(m)
	// Output:
	// bounded
}
