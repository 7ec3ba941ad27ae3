package poly_test

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-filterscope/dsp/poly"
)

func ExampleFromRoots() {
	p := poly.FromRoots([]complex128{complex(0, 1), complex(0, -1), -2})
	c, ok := poly.Real(p, 0)

	fmt.Println(c, ok)
	fmt.Printf("%.1f\n", cmplx.Abs(poly.Eval(p, -2)))
	// Output:
	// [1 2 1 2] true
	// 0.0
}
