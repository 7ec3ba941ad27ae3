package iir_test

import (
	"fmt"

	"github.com/cwbudde/algo-filterscope/dsp/filter/design/prototype"
	"github.com/cwbudde/algo-filterscope/dsp/filter/iir"
)

func ExampleDesign() {
	f, err := iir.Design(iir.Spec{
		SampleRate: 48000,
		Order:      2,
		Band:       iir.Lowpass,
		Design:     prototype.FamilyButterworth,
		LowCutoff:  1000,
	})
	if err != nil {
		panic(err)
	}

	fmt.Printf("b = %.6f\n", f.Numerator)
	fmt.Printf("a = %.6f\n", f.Denominator)
	for _, p := range f.Poles {
		fmt.Printf("pole %.4f%+.4fi\n", real(p), imag(p))
	}
	// Output:
	// b = [0.003916 0.007832 0.003916]
	// a = [1.000000 -1.815341 0.831006]
	// pole 0.9077+0.0845i
	// pole 0.9077-0.0845i
}

func ExampleAnalyze() {
	a, err := iir.Analyze(iir.Spec{
		SampleRate:       48000,
		Order:            3,
		Band:             iir.Bandpass,
		Design:           prototype.FamilyElliptic,
		LowCutoff:        500,
		HighCutoff:       3000,
		PassbandRippleDB: 0.1,
		StopbandAttenDB:  60,
	}, iir.WithPoints(512))
	if err != nil {
		panic(err)
	}

	fmt.Println("order:", a.Filter.Order())
	fmt.Println("stable:", a.Filter.Stable())
	fmt.Println("points:", a.Curve.Len())
	fmt.Println("degraded:", a.Degraded())
	// Output:
	// order: 6
	// stable: true
	// points: 512
	// degraded: false
}
