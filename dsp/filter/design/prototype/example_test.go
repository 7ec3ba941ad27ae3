package prototype_test

import (
	"fmt"

	"github.com/cwbudde/algo-filterscope/dsp/filter/design/prototype"
)

func ExampleNew() {
	proto, err := prototype.New(prototype.FamilyButterworth, prototype.Params{Order: 3})
	if err != nil {
		panic(err)
	}
	for _, p := range proto.Poles {
		fmt.Printf("%.4f\n", p)
	}
	fmt.Println("gain", proto.Gain)
	// Output:
	// (-0.5000+0.8660i)
	// (-0.5000-0.8660i)
	// (-1.0000+0.0000i)
	// gain 1
}

func ExampleReverseBessel() {
	fmt.Println(prototype.ReverseBessel(3))
	// Output: [1 6 15 15]
}
