// Package conv provides 2-D convolution of images with kernels.
//
// Two backends with deliberately different boundary conventions are
// offered:
//
//   - [MethodWrap]: frequency-domain circular convolution. The image is
//     treated as periodic, so kernel taps that fall off one edge wrap
//     around to the opposite edge.
//   - [MethodBounded]: spatial linear convolution with a zero boundary.
//     Kernel taps that fall outside the image contribute nothing, so
//     values near the edges are attenuated.
//
// Away from the edges the two backends agree to numerical tolerance.
// Callers pick the boundary semantics explicitly; there is no default.
//
// # Usage
//
// For a single image/kernel pair:
//
//	result, err := conv.Convolve(image, kernel, conv.MethodWrap)
//
// For batches of independent slices, use the stack variant, which applies
// the frequency-domain backend slice-wise:
//
//	result, err := conv.ConvolveStack(images, kernels, false)
//
// Passing rotKernel=true rotates each kernel slice by 180 degrees before
// use, turning the correlation-style kernel orientation into a true
// convolution.
//
// # Algorithm Selection
//
// [MethodBounded] uses direct spatial accumulation for small kernels and
// switches to an FFT-based zero-padded path for kernels of 64 taps or
// more. Both paths produce the same result up to floating-point rounding.
package conv
