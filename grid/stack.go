package grid

import "fmt"

// Stack is a batch of same-shaped 2-D grids indexed along a leading axis.
// The backing array is contiguous; Slice returns O(1) views into it.
type Stack struct {
	Slices, Rows, Cols int
	Data               []float64
}

// NewStack returns a zero-valued stack with the given dimensions.
// Panics if any dimension is not positive.
func NewStack(slices, rows, cols int) *Stack {
	if slices <= 0 || rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("grid: non-positive stack dimensions %dx%dx%d", slices, rows, cols))
	}

	return &Stack{Slices: slices, Rows: rows, Cols: cols, Data: make([]float64, slices*rows*cols)}
}

// StackOf builds a stack by copying the given grids, which must all share
// the same shape.
func StackOf(grids ...*Grid) (*Stack, error) {
	if len(grids) == 0 {
		return nil, ErrEmpty
	}

	s := NewStack(len(grids), grids[0].Rows, grids[0].Cols)
	for i, g := range grids {
		if !g.SameShape(grids[0]) {
			return nil, ErrShapeMismatch
		}

		copy(s.Slice(i).Data, g.Data)
	}

	return s, nil
}

// Slice returns the i-th 2-D slice as a view aliasing the stack's backing
// array. Mutating the view mutates the stack.
func (s *Stack) Slice(i int) *Grid {
	n := s.Rows * s.Cols

	return &Grid{Rows: s.Rows, Cols: s.Cols, Data: s.Data[i*n : (i+1)*n]}
}

// Clone returns a deep copy of the stack.
func (s *Stack) Clone() *Stack {
	out := NewStack(s.Slices, s.Rows, s.Cols)
	copy(out.Data, s.Data)

	return out
}

// SameShape reports whether s and t have identical dimensions.
func (s *Stack) SameShape(t *Stack) bool {
	return s.Slices == t.Slices && s.Rows == t.Rows && s.Cols == t.Cols
}

// AddScalar returns s with the scalar v added to every element.
func (s *Stack) AddScalar(v float64) *Stack {
	out := NewStack(s.Slices, s.Rows, s.Cols)
	for i, x := range s.Data {
		out.Data[i] = x + v
	}

	return out
}
