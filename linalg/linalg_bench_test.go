package linalg

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/cwbudde/algo-optkit/grid"
)

func BenchmarkGramSchmidt(b *testing.B) {
	sizes := []int{8, 32, 128}
	for _, n := range sizes {
		m := grid.Random(n, n, rand.New(rand.NewSource(1)))
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()

			for range b.N {
				if _, _, err := GramSchmidt(m, Both); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkNuclearNorm(b *testing.B) {
	sizes := []int{8, 32, 128}
	for _, n := range sizes {
		m := grid.Random(n, n, rand.New(rand.NewSource(1)))
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()

			for range b.N {
				if _, err := NuclearNorm(m); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkPowerMethod(b *testing.B) {
	sizes := []int{8, 32}
	for _, n := range sizes {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()

			for range b.N {
				NewPowerMethod(gramOperator(), n, n)
			}
		})
	}
}
