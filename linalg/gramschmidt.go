package linalg

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-optkit/grid"
)

// Errors returned by matrix functions.
var (
	ErrInvalidReturnOpt = errors.New("linalg: unrecognized return option")
	ErrNotSquare        = errors.New("linalg: input must be square")
	ErrLengthMismatch   = errors.New("linalg: vector length mismatch")
	ErrSVDFailed        = errors.New("linalg: svd failed to converge")
)

// ReturnOpt selects which Gram-Schmidt outputs are produced.
type ReturnOpt int

const (
	// Orthonormal returns unit-norm orthogonal rows.
	Orthonormal ReturnOpt = iota

	// Orthogonal returns the unnormalized orthogonal rows.
	Orthogonal

	// Both returns the orthogonal and the orthonormal result.
	Both
)

// zeroRowTol is the relative threshold below which a residual row is
// considered linearly dependent and pinned to exact zero.
const zeroRowTol = 1e-12

// GramSchmidt orthogonalizes the rows of m with the classical
// Gram-Schmidt procedure. Row i of the orthogonal output is row i of the
// input minus its projections onto the previously orthogonalized rows.
//
// Rows whose residual vanishes to rounding noise (relative to the input
// row norm) are preserved as exact zero rows in both outputs; the
// normalize pass never divides by a vanishing norm.
//
// Depending on opt, the first return value (orthogonal), the second
// (orthonormal), or both are populated; the other is nil.
func GramSchmidt(m *grid.Grid, opt ReturnOpt) (*grid.Grid, *grid.Grid, error) {
	switch opt {
	case Orthonormal, Orthogonal, Both:
	default:
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidReturnOpt, int(opt))
	}

	orth := grid.New(m.Rows, m.Cols)

	for i := 0; i < m.Rows; i++ {
		row := m.Row(i)
		w := orth.Row(i)
		copy(w, row)

		for q := 0; q < i; q++ {
			qRow := orth.Row(q)

			qq := vecmath.DotProduct(qRow, qRow)
			if qq == 0 {
				continue
			}

			c := vecmath.DotProduct(qRow, row) / qq
			for k := range w {
				w[k] -= c * qRow[k]
			}
		}

		rowNorm := math.Sqrt(vecmath.DotProduct(row, row))
		wNorm := math.Sqrt(vecmath.DotProduct(w, w))

		if wNorm <= zeroRowTol*rowNorm {
			for k := range w {
				w[k] = 0
			}
		}
	}

	if opt == Orthogonal {
		return orth, nil, nil
	}

	onrm := grid.New(m.Rows, m.Cols)

	for i := 0; i < m.Rows; i++ {
		src := orth.Row(i)

		norm := math.Sqrt(vecmath.DotProduct(src, src))
		if norm == 0 {
			continue
		}

		vecmath.ScaleBlock(onrm.Row(i), src, 1/norm)
	}

	if opt == Both {
		return orth, onrm, nil
	}

	return nil, onrm, nil
}
