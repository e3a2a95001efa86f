// Package stats provides the image-quality and robust-statistics
// primitives used by the outer optimization loops: Gaussian kernel
// synthesis, median absolute deviation and the derived noise-sigma
// estimate, mean-squared-error, and peak signal-to-noise ratio in two
// conventions, with stack-averaged variants.
package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-optkit/grid"
)

// Errors returned by stats functions.
var (
	ErrInvalidNorm       = errors.New("stats: unrecognized kernel normalization")
	ErrInvalidPSNRMethod = errors.New("stats: unrecognized psnr method")
	ErrInvalidShape      = errors.New("stats: kernel dimensions must be positive")
	ErrInvalidSigma      = errors.New("stats: sigma must be positive")
)

// Norm selects how a synthesized Gaussian kernel is normalized.
type Norm int

const (
	// NormMax scales the kernel so its peak value is exactly 1.
	NormMax Norm = iota

	// NormSum scales the kernel so its values sum to 1.
	NormSum

	// NormNone leaves the standard Gaussian density values untouched.
	NormNone
)

// GaussianKernel synthesizes a rows x cols Gaussian with standard
// deviation sigma, centered at the array midpoint ((rows-1)/2, (cols-1)/2).
// The kernel is the separable product of 1-D normal densities.
func GaussianKernel(rows, cols int, sigma float64, norm Norm) (*grid.Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidShape, rows, cols)
	}

	if sigma <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidSigma, sigma)
	}

	switch norm {
	case NormMax, NormSum, NormNone:
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidNorm, int(norm))
	}

	rowCenter := float64(rows-1) / 2
	colCenter := float64(cols-1) / 2

	k := grid.New(rows, cols)
	for i := 0; i < rows; i++ {
		rowDensity := normPDF(float64(i)-rowCenter, sigma)
		for j := 0; j < cols; j++ {
			k.Set(i, j, rowDensity*normPDF(float64(j)-colCenter, sigma))
		}
	}

	switch norm {
	case NormMax:
		return k.Scale(1 / k.Max()), nil
	case NormSum:
		return k.Scale(1 / k.Sum()), nil
	default:
		return k, nil
	}
}

// normPDF is the 1-D normal density with mean zero.
func normPDF(x, sigma float64) float64 {
	t := x / sigma

	return math.Exp(-0.5*t*t) / (sigma * math.Sqrt(2*math.Pi))
}

// MAD returns the median absolute deviation of all elements:
// median(|x - median(x)|).
func MAD(g *grid.Grid) float64 {
	med := median(append([]float64(nil), g.Data...))

	dev := make([]float64, len(g.Data))
	for i, x := range g.Data {
		dev[i] = math.Abs(x - med)
	}

	return median(dev)
}

// madToSigma maps the MAD of Gaussian noise to its standard deviation.
const madToSigma = 1.4826

// SigmaMAD returns the robust noise-sigma estimate 1.4826 * MAD.
func SigmaMAD(g *grid.Grid) float64 {
	return madToSigma * MAD(g)
}

// median sorts xs in place and returns its median, averaging the two
// central order statistics for even counts.
func median(xs []float64) float64 {
	sort.Float64s(xs)

	n := len(xs)
	if n%2 == 1 {
		return xs[n/2]
	}

	return 0.5 * (xs[n/2-1] + xs[n/2])
}

// MSE returns the mean of squared element-wise differences between two
// same-shaped grids.
func MSE(a, b *grid.Grid) (float64, error) {
	if !a.SameShape(b) {
		return 0, fmt.Errorf("stats: mse: %w", grid.ErrShapeMismatch)
	}

	var sum float64
	for i := range a.Data {
		d := a.Data[i] - b.Data[i]
		sum += d * d
	}

	return sum / float64(len(a.Data)), nil
}

// MSEStack returns the mean squared error averaged over corresponding
// slices of two same-shaped stacks.
func MSEStack(a, b *grid.Stack) (float64, error) {
	if !a.SameShape(b) {
		return 0, fmt.Errorf("stats: mse stack: %w", grid.ErrShapeMismatch)
	}

	var sum float64

	for i := 0; i < a.Slices; i++ {
		mse, err := MSE(a.Slice(i), b.Slice(i))
		if err != nil {
			return 0, err
		}

		sum += mse
	}

	return sum / float64(a.Slices), nil
}

// PSNRMethod selects the peak convention used by PSNR.
type PSNRMethod int

const (
	// PSNRStarck uses the dynamic range (max - min) of the reference
	// array as the peak, the convention of the astronomical toolkit this
	// package derives from.
	PSNRStarck PSNRMethod = iota

	// PSNRWiki uses the 8-bit maximum value 255 as the peak.
	PSNRWiki
)

// peak8Bit is the maximum representable value of 8-bit image data, used
// by the PSNRWiki convention regardless of the actual dynamic range.
const peak8Bit = 255

// PSNR returns the peak signal-to-noise ratio 20*log10(peak/sqrt(mse))
// between a reference array and a distorted one. The peak depends on the
// method; see [PSNRStarck] and [PSNRWiki]. Identical inputs yield +Inf.
func PSNR(reference, distorted *grid.Grid, method PSNRMethod) (float64, error) {
	mse, err := MSE(reference, distorted)
	if err != nil {
		return 0, fmt.Errorf("stats: psnr: %w", err)
	}

	var peak float64

	switch method {
	case PSNRStarck:
		peak = reference.Max() - reference.Min()
	case PSNRWiki:
		peak = peak8Bit
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidPSNRMethod, int(method))
	}

	return 20 * math.Log10(peak/math.Sqrt(mse)), nil
}

// PSNRStack returns the mean Starck PSNR across corresponding slices of
// two same-shaped stacks.
func PSNRStack(reference, distorted *grid.Stack) (float64, error) {
	if !reference.SameShape(distorted) {
		return 0, fmt.Errorf("stats: psnr stack: %w", grid.ErrShapeMismatch)
	}

	var sum float64

	for i := 0; i < reference.Slices; i++ {
		p, err := PSNR(reference.Slice(i), distorted.Slice(i), PSNRStarck)
		if err != nil {
			return 0, err
		}

		sum += p
	}

	return sum / float64(reference.Slices), nil
}
