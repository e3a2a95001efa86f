package conv

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-optkit/grid"
)

func BenchmarkConvolveWrap(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	sizes := []int{16, 64, 256}
	for _, n := range sizes {
		image := grid.Random(n, n, rng)
		kernel := grid.Random(5, 5, rng)
		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * n * 8))

			for range b.N {
				if _, err := Convolve(image, kernel, MethodWrap); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkConvolveBoundedDirect(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	sizes := []int{16, 64, 256}
	for _, n := range sizes {
		image := grid.Random(n, n, rng)
		kernel := grid.Random(5, 5, rng)
		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * n * 8))

			for range b.N {
				if _, err := Convolve(image, kernel, MethodBounded); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkConvolveBoundedFFT(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	sizes := []int{64, 256}
	for _, n := range sizes {
		image := grid.Random(n, n, rng)
		// 11x11 exceeds the direct-path tap threshold.
		kernel := grid.Random(11, 11, rng)
		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * n * 8))

			for range b.N {
				if _, err := Convolve(image, kernel, MethodBounded); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
