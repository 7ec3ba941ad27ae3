package prototype

import (
	"math"

	"github.com/cwbudde/algo-filterscope/dsp/filter/zpk"
)

// Butterworth returns the maximally flat prototype: order poles evenly
// spaced on the left half of the unit circle, no zeros, unity gain.
func Butterworth(p Params) (zpk.ZPK, error) {
	if err := validateOrder(p.Order); err != nil {
		return zpk.ZPK{}, err
	}

	n := p.Order
	poles := make([]complex128, 0, n)
	for k := range n / 2 {
		theta := math.Pi * float64(2*k+1) / float64(2*n)
		pole := complex(-math.Sin(theta), math.Cos(theta))
		poles = append(poles, pole, complex(real(pole), -imag(pole)))
	}
	if n%2 != 0 {
		poles = append(poles, -1)
	}

	return zpk.ZPK{Poles: poles, Gain: 1}, nil
}
