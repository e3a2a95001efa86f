package linalg

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-optkit/grid"
)

// NuclearNorm returns the sum of the singular values (trace norm) of m.
func NuclearNorm(m *grid.Grid) (float64, error) {
	dense := mat.NewDense(m.Rows, m.Cols, append([]float64(nil), m.Data...))

	var svd mat.SVD
	if ok := svd.Factorize(dense, mat.SVDNone); !ok {
		return 0, ErrSVDFailed
	}

	var sum float64
	for _, s := range svd.Values(nil) {
		sum += s
	}

	return sum, nil
}

// Project returns the component of b along a, scaled back onto a:
// (a.b / a.a) * a. Behavior with a zero a is undefined.
func Project(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, ErrLengthMismatch
	}

	scale := vecmath.DotProduct(a, b) / vecmath.DotProduct(a, a)
	out := make([]float64, len(a))
	vecmath.ScaleBlock(out, a, scale)

	return out, nil
}

// RotMatrix returns the 2x2 counter-clockwise rotation matrix for angle
// radians.
func RotMatrix(angle float64) *grid.Grid {
	c, s := math.Cos(angle), math.Sin(angle)

	return grid.FromRows([][]float64{
		{c, -s},
		{s, c},
	})
}

// Rotate rotates a square grid by angle radians about its center using
// nearest-neighbor resampling consistent with [RotMatrix]. Each cell's
// centered index is rotated, truncated toward zero, and wrapped
// periodically, so a rotation by pi/2 on integer-valued data is an exact
// 90 degree counter-clockwise turn.
func Rotate(data *grid.Grid, angle float64) (*grid.Grid, error) {
	if data.Rows != data.Cols {
		return nil, ErrNotSquare
	}

	n := data.Rows
	shift := (n - 1) / 2
	r := RotMatrix(angle)

	// Round the matrix entries so cardinal angles map integer coordinates
	// exactly; truncation would otherwise shift cells whose rotated index
	// lands a few ulps below an integer.
	r00, r01 := round10(r.At(0, 0)), round10(r.At(0, 1))
	r10, r11 := round10(r.At(1, 0)), round10(r.At(1, 1))

	out := grid.New(n, n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			u, v := float64(i-shift), float64(j-shift)

			ti := wrapIndex(int(u*r00+v*r10)+shift, n)
			tj := wrapIndex(int(u*r01+v*r11)+shift, n)

			out.Set(i, j, data.At(ti, tj))
		}
	}

	return out, nil
}

// round10 rounds x to 10 decimal places.
func round10(x float64) float64 {
	return math.Round(x*1e10) / 1e10
}

// wrapIndex maps an index into [0, n) with periodic wrapping.
func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}

	return i
}
