package conv

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-optkit/grid"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput     = errors.New("conv: empty image")
	ErrEmptyKernel    = errors.New("conv: empty kernel")
	ErrInvalidMethod  = errors.New("conv: unrecognized method")
	ErrKernelTooLarge = errors.New("conv: kernel larger than image")
)

// Method selects the convolution backend and its boundary convention.
type Method int

const (
	// MethodWrap computes circular convolution in the frequency domain.
	// The image is treated as periodic at its edges.
	MethodWrap Method = iota

	// MethodBounded computes linear convolution in the spatial domain
	// with a zero boundary, returning the central ("same") window.
	MethodBounded
)

// String returns the textual name of the method.
func (m Method) String() string {
	switch m {
	case MethodWrap:
		return "wrap"
	case MethodBounded:
		return "bounded"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod converts a method name to a Method value.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "wrap":
		return MethodWrap, nil
	case "bounded":
		return MethodBounded, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMethod, s)
	}
}

// directThreshold is the kernel tap count above which the bounded backend
// switches from direct accumulation to the FFT path.
const directThreshold = 64

// Convolve computes the 2-D convolution of image with kernel using the
// selected backend. The result has the same shape as image. The kernel
// center is at element (kr/2, kc/2).
func Convolve(image, kernel *grid.Grid, method Method) (*grid.Grid, error) {
	if image == nil || len(image.Data) == 0 {
		return nil, ErrEmptyInput
	}

	if kernel == nil || len(kernel.Data) == 0 {
		return nil, ErrEmptyKernel
	}

	switch method {
	case MethodWrap:
		return convolveWrap(image, kernel)
	case MethodBounded:
		if kernel.Rows*kernel.Cols < directThreshold {
			return convolveBoundedDirect(image, kernel), nil
		}

		return convolveBoundedFFT(image, kernel)
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidMethod, int(method))
	}
}

// ConvolveStack convolves each image slice with the corresponding kernel
// slice using the frequency-domain backend. If rotKernel is true, each
// kernel slice is rotated by 180 degrees before use.
func ConvolveStack(images, kernels *grid.Stack, rotKernel bool) (*grid.Stack, error) {
	if images == nil || len(images.Data) == 0 {
		return nil, ErrEmptyInput
	}

	if kernels == nil || len(kernels.Data) == 0 {
		return nil, ErrEmptyKernel
	}

	if images.Slices != kernels.Slices {
		return nil, fmt.Errorf("conv: stack lengths %d and %d: %w",
			images.Slices, kernels.Slices, grid.ErrShapeMismatch)
	}

	out := grid.NewStack(images.Slices, images.Rows, images.Cols)

	for i := 0; i < images.Slices; i++ {
		kernel := kernels.Slice(i)
		if rotKernel {
			kernel = kernel.Rot180()
		}

		res, err := convolveWrap(images.Slice(i), kernel)
		if err != nil {
			return nil, fmt.Errorf("conv: slice %d: %w", i, err)
		}

		copy(out.Slice(i).Data, res.Data)
	}

	return out, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
