package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-optkit/grid"
)

// convolveBoundedDirect computes zero-boundary linear convolution by
// direct spatial accumulation. Kernel taps falling outside the image
// contribute nothing.
func convolveBoundedDirect(image, kernel *grid.Grid) *grid.Grid {
	out := grid.New(image.Rows, image.Cols)
	cr, cc := kernel.Rows/2, kernel.Cols/2

	for i := 0; i < image.Rows; i++ {
		for j := 0; j < image.Cols; j++ {
			var acc float64

			for u := 0; u < kernel.Rows; u++ {
				si := i + cr - u
				if si < 0 || si >= image.Rows {
					continue
				}

				for v := 0; v < kernel.Cols; v++ {
					sj := j + cc - v
					if sj < 0 || sj >= image.Cols {
						continue
					}

					acc += kernel.At(u, v) * image.At(si, sj)
				}
			}

			out.Set(i, j, acc)
		}
	}

	return out
}

// convolveBoundedFFT computes the same zero-boundary linear convolution
// through power-of-2 padded FFTs, then crops the central window. Used for
// large kernels where direct accumulation is too slow.
func convolveBoundedFFT(image, kernel *grid.Grid) (*grid.Grid, error) {
	fullRows := image.Rows + kernel.Rows - 1
	fullCols := image.Cols + kernel.Cols - 1
	padRows := nextPowerOf2(fullRows)
	padCols := nextPowerOf2(fullCols)

	rowPlan, err := algofft.NewPlan64(padCols)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	colPlan, err := algofft.NewPlan64(padRows)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	a := embedComplex(image, padRows, padCols)
	b := embedComplex(kernel, padRows, padCols)

	if err := fft2Plan(a, padRows, padCols, rowPlan, colPlan, false); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	if err := fft2Plan(b, padRows, padCols, rowPlan, colPlan, false); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	for i := range a {
		a[i] *= b[i]
	}

	if err := fft2Plan(a, padRows, padCols, rowPlan, colPlan, true); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	// Crop the "same" window of the full linear convolution.
	cr, cc := kernel.Rows/2, kernel.Cols/2
	out := grid.New(image.Rows, image.Cols)

	for i := 0; i < image.Rows; i++ {
		for j := 0; j < image.Cols; j++ {
			out.Set(i, j, real(a[(i+cr)*padCols+j+cc]))
		}
	}

	return out, nil
}

// embedComplex zero-pads a grid into the top-left corner of a
// padRows x padCols complex array.
func embedComplex(g *grid.Grid, padRows, padCols int) []complex128 {
	out := make([]complex128, padRows*padCols)
	for i := 0; i < g.Rows; i++ {
		for j := 0; j < g.Cols; j++ {
			out[i*padCols+j] = complex(g.At(i, j), 0)
		}
	}

	return out
}

// fft2Plan transforms data in place using algo-fft plans, rows first then
// columns. The inverse transform is normalized by the plans themselves.
func fft2Plan(data []complex128, rows, cols int, rowPlan, colPlan *algofft.Plan[complex128], inverse bool) error {
	for r := 0; r < rows; r++ {
		row := data[r*cols : (r+1)*cols]

		var err error
		if inverse {
			err = rowPlan.Inverse(row, row)
		} else {
			err = rowPlan.Forward(row, row)
		}

		if err != nil {
			return err
		}
	}

	col := make([]complex128, rows)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			col[r] = data[r*cols+c]
		}

		var err error
		if inverse {
			err = colPlan.Inverse(col, col)
		} else {
			err = colPlan.Forward(col, col)
		}

		if err != nil {
			return err
		}

		for r := 0; r < rows; r++ {
			data[r*cols+c] = col[r]
		}
	}

	return nil
}
