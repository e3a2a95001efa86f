// Package grid provides dense row-major 2-D arrays and 3-D slice stacks
// used as the common value type across the toolkit.
//
// Grids are treated as immutable inputs: every operation returns a newly
// allocated result and never mutates its arguments. Shape checks are
// strict; there is no broadcasting.
package grid

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by grid operations.
var (
	ErrShapeMismatch = errors.New("grid: shape mismatch")
	ErrEmpty         = errors.New("grid: empty input")
)

// Grid is a dense 2-D array of float64 values in row-major order.
type Grid struct {
	Rows, Cols int
	Data       []float64
}

// New returns a zero-valued grid with the given dimensions.
// Panics if rows or cols is not positive.
func New(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("grid: non-positive dimensions %dx%d", rows, cols))
	}

	return &Grid{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}
}

// FromRows builds a grid from a slice of equal-length rows.
// Panics if rows is empty or ragged.
func FromRows(rows [][]float64) *Grid {
	if len(rows) == 0 || len(rows[0]) == 0 {
		panic("grid: empty rows")
	}

	g := New(len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != g.Cols {
			panic(fmt.Sprintf("grid: ragged row %d: %d values, want %d", i, len(row), g.Cols))
		}

		copy(g.Row(i), row)
	}

	return g
}

// Random returns a grid filled with uniform [0, 1) draws from rng.
// The caller controls reproducibility through the seed of rng.
func Random(rows, cols int, rng *rand.Rand) *Grid {
	g := New(rows, cols)
	for i := range g.Data {
		g.Data[i] = rng.Float64()
	}

	return g
}

// At returns the element at row i, column j.
func (g *Grid) At(i, j int) float64 {
	return g.Data[i*g.Cols+j]
}

// Set stores v at row i, column j.
func (g *Grid) Set(i, j int, v float64) {
	g.Data[i*g.Cols+j] = v
}

// Row returns the i-th row as a slice aliasing the grid's backing array.
func (g *Grid) Row(i int) []float64 {
	return g.Data[i*g.Cols : (i+1)*g.Cols]
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := New(g.Rows, g.Cols)
	copy(out.Data, g.Data)

	return out
}

// SameShape reports whether g and h have identical dimensions.
func (g *Grid) SameShape(h *Grid) bool {
	return g.Rows == h.Rows && g.Cols == h.Cols
}

// Scale returns g multiplied by the scalar s.
func (g *Grid) Scale(s float64) *Grid {
	out := New(g.Rows, g.Cols)
	vecmath.ScaleBlock(out.Data, g.Data, s)

	return out
}

// AddScalar returns g with the scalar v added to every element.
func (g *Grid) AddScalar(v float64) *Grid {
	out := New(g.Rows, g.Cols)
	for i, x := range g.Data {
		out.Data[i] = x + v
	}

	return out
}

// Rot180 returns the grid rotated by 180 degrees (point reflection).
func (g *Grid) Rot180() *Grid {
	out := New(g.Rows, g.Cols)
	n := len(g.Data)
	for i, x := range g.Data {
		out.Data[n-1-i] = x
	}

	return out
}

// Norm returns the L2 (Frobenius) norm of the grid.
func (g *Grid) Norm() float64 {
	return math.Sqrt(vecmath.DotProduct(g.Data, g.Data))
}

// Sum returns the sum of all elements.
func (g *Grid) Sum() float64 {
	return vecmath.Sum(g.Data)
}

// MaxAbs returns the largest absolute element value.
func (g *Grid) MaxAbs() float64 {
	return vecmath.MaxAbs(g.Data)
}

// Max returns the largest element value.
func (g *Grid) Max() float64 {
	m := g.Data[0]
	for _, x := range g.Data[1:] {
		if x > m {
			m = x
		}
	}

	return m
}

// Min returns the smallest element value.
func (g *Grid) Min() float64 {
	m := g.Data[0]
	for _, x := range g.Data[1:] {
		if x < m {
			m = x
		}
	}

	return m
}

// Add returns the element-wise sum a + b.
func Add(a, b *Grid) (*Grid, error) {
	if !a.SameShape(b) {
		return nil, ErrShapeMismatch
	}

	out := New(a.Rows, a.Cols)
	vecmath.AddBlock(out.Data, a.Data, b.Data)

	return out, nil
}

// Sub returns the element-wise difference a - b.
func Sub(a, b *Grid) (*Grid, error) {
	if !a.SameShape(b) {
		return nil, ErrShapeMismatch
	}

	out := New(a.Rows, a.Cols)
	for i := range out.Data {
		out.Data[i] = a.Data[i] - b.Data[i]
	}

	return out, nil
}

// Mul returns the element-wise (Hadamard) product a * b.
func Mul(a, b *Grid) (*Grid, error) {
	if !a.SameShape(b) {
		return nil, ErrShapeMismatch
	}

	out := New(a.Rows, a.Cols)
	vecmath.MulBlock(out.Data, a.Data, b.Data)

	return out, nil
}

// Dot returns the element-wise inner product of a and b.
func Dot(a, b *Grid) (float64, error) {
	if !a.SameShape(b) {
		return 0, ErrShapeMismatch
	}

	return vecmath.DotProduct(a.Data, b.Data), nil
}
