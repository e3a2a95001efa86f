package conv

import (
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-optkit/grid"
)

// convolveWrap computes circular convolution via the frequency domain.
// The kernel is embedded in an image-sized array with its center shifted
// to the origin, so the convolution theorem applies directly at the exact
// image size (no power-of-2 padding).
func convolveWrap(image, kernel *grid.Grid) (*grid.Grid, error) {
	rows, cols := image.Rows, image.Cols
	if kernel.Rows > rows || kernel.Cols > cols {
		return nil, ErrKernelTooLarge
	}

	cr, cc := kernel.Rows/2, kernel.Cols/2

	// Kernel tap at offset (u-cr, v-cc) from the center lands at the
	// wrapped position of that offset.
	k := make([]complex128, rows*cols)
	for u := 0; u < kernel.Rows; u++ {
		ti := wrapIndex(u-cr, rows)
		for v := 0; v < kernel.Cols; v++ {
			tj := wrapIndex(v-cc, cols)
			k[ti*cols+tj] = complex(kernel.At(u, v), 0)
		}
	}

	img := make([]complex128, rows*cols)
	for i, v := range image.Data {
		img[i] = complex(v, 0)
	}

	rowFFT := fourier.NewCmplxFFT(cols)
	colFFT := fourier.NewCmplxFFT(rows)

	fft2(img, rows, cols, rowFFT, colFFT, false)
	fft2(k, rows, cols, rowFFT, colFFT, false)

	for i := range img {
		img[i] *= k[i]
	}

	fft2(img, rows, cols, rowFFT, colFFT, true)

	// Coefficients followed by Sequence scales by the transform length.
	out := grid.New(rows, cols)
	scale := 1 / float64(rows*cols)
	for i := range out.Data {
		out.Data[i] = real(img[i]) * scale
	}

	return out, nil
}

// fft2 transforms data in place, rows first then columns.
func fft2(data []complex128, rows, cols int, rowFFT, colFFT *fourier.CmplxFFT, inverse bool) {
	buf := make([]complex128, cols)
	for r := 0; r < rows; r++ {
		row := data[r*cols : (r+1)*cols]
		if inverse {
			rowFFT.Sequence(buf, row)
		} else {
			rowFFT.Coefficients(buf, row)
		}

		copy(row, buf)
	}

	colIn := make([]complex128, rows)
	colOut := make([]complex128, rows)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			colIn[r] = data[r*cols+c]
		}

		if inverse {
			colFFT.Sequence(colOut, colIn)
		} else {
			colFFT.Coefficients(colOut, colIn)
		}

		for r := 0; r < rows; r++ {
			data[r*cols+c] = colOut[r]
		}
	}
}

// wrapIndex maps an offset into [0, n) with periodic wrapping.
func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}

	return i
}
