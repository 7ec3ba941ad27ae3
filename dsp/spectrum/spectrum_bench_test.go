package spectrum

import (
	"math"
	"math/cmplx"
	"testing"
)

var benchSizes = []struct {
	name string
	size int
}{
	{"256", 256},
	{"1K", 1024},
	{"4K", 4096},
}

func benchResponse(n int) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		w := math.Pi * float64(i) / float64(n)
		out[i] = 1 / (1 - 0.9*cmplx.Exp(complex(0, -w)))
	}
	return out
}

func BenchmarkMagnitude(b *testing.B) {
	for _, testCase := range benchSizes {
		b.Run(testCase.name, func(b *testing.B) {
			in := benchResponse(testCase.size)
			b.SetBytes(int64(testCase.size * 16))
			b.ResetTimer()

			for range b.N {
				_ = Magnitude(in)
			}
		})
	}
}

func BenchmarkMagnitudeDB(b *testing.B) {
	for _, testCase := range benchSizes {
		b.Run(testCase.name, func(b *testing.B) {
			in := benchResponse(testCase.size)
			b.ResetTimer()

			for range b.N {
				_, _ = MagnitudeDB(in, -400)
			}
		})
	}
}

func BenchmarkUnwrapPhase(b *testing.B) {
	for _, testCase := range benchSizes {
		b.Run(testCase.name, func(b *testing.B) {
			phase := Phase(benchResponse(testCase.size))
			b.ResetTimer()

			for range b.N {
				_ = UnwrapPhase(phase)
			}
		})
	}
}
