package biquad_test

import (
	"fmt"

	"github.com/cwbudde/algo-filterscope/dsp/filter/biquad"
	"github.com/cwbudde/algo-filterscope/dsp/filter/zpk"
)

func ExampleFromZPK() {
	f := zpk.ZPK{
		Zeros: []complex128{-1, -1},
		Poles: []complex128{complex(0.5, 0.3), complex(0.5, -0.3)},
		Gain:  0.1,
	}

	sections, err := biquad.FromZPK(f)
	if err != nil {
		panic(err)
	}
	for _, s := range sections {
		fmt.Printf("b = [%.2f %.2f %.2f]  a = [1 %.2f %.2f]\n", s.B0, s.B1, s.B2, s.A1, s.A2)
	}
	// Output:
	// b = [0.10 0.20 0.10]  a = [1 -1.00 0.34]
}

func ExampleCoefficients_MagnitudeDB() {
	c := biquad.Coefficients{
		B0: 0.25, B1: 0.5, B2: 0.25,
		A1: -0.2, A2: 0.04,
	}

	sr := 48000.0
	for _, freq := range []float64{100, 1000, 10000, 20000} {
		db := c.MagnitudeDB(freq, sr)
		fmt.Printf("%6.0f Hz: %+.2f dB\n", freq, db)
	}
	// Output:
	//    100 Hz: +1.51 dB
	//   1000 Hz: +1.47 dB
	//  10000 Hz: -3.39 dB
	//  20000 Hz: -25.07 dB
}

func ExampleRoots() {
	sections := []biquad.Coefficients{
		{B0: 1, B1: -0.6, B2: 0.25, A1: -1.4, A2: 0.53},
		{B0: 1, B1: -0.2, B2: 0.0, A1: -0.8, A2: 0.0},
	}

	zeros, poles := biquad.Roots(sections)
	for _, z := range zeros {
		fmt.Printf("zero %.2f%+.2fi\n", real(z), imag(z))
	}
	for _, p := range poles {
		fmt.Printf("pole %.2f%+.2fi\n", real(p), imag(p))
	}
	// Output:
	// zero 0.30+0.40i
	// zero 0.30-0.40i
	// zero 0.20+0.00i
	// pole 0.70+0.20i
	// pole 0.70-0.20i
	// pole 0.80+0.00i
}
