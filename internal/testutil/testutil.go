// Package testutil provides deterministic fixture generators shared by
// package tests.
package testutil

import "github.com/cwbudde/algo-optkit/grid"

// Sequential returns a rows x cols grid filled with 0, 1, 2, ... in
// row-major order.
func Sequential(rows, cols int) *grid.Grid {
	g := grid.New(rows, cols)
	for i := range g.Data {
		g.Data[i] = float64(i)
	}

	return g
}

// SequentialStack returns a stack filled with 0, 1, 2, ... across the
// whole backing array, so slice k continues where slice k-1 ended.
func SequentialStack(slices, rows, cols int) *grid.Stack {
	s := grid.NewStack(slices, rows, cols)
	for i := range s.Data {
		s.Data[i] = float64(i)
	}

	return s
}
