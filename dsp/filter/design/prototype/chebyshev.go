package prototype

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-filterscope/dsp/core"
	"github.com/cwbudde/algo-filterscope/dsp/filter/zpk"
)

// chebyshevPoles returns the order poles on the ellipse
//
//	-sinh(mu)*sin(phi_k) + j*cosh(mu)*cos(phi_k),  phi_k = pi*(2k+1)/(2*order)
//
// as conjugate pairs followed by the real pole for odd orders.
func chebyshevPoles(order int, mu float64) []complex128 {
	sh, ch := math.Sinh(mu), math.Cosh(mu)

	poles := make([]complex128, 0, order)
	for k := range order / 2 {
		phi := math.Pi * float64(2*k+1) / float64(2*order)
		pole := complex(-sh*math.Sin(phi), ch*math.Cos(phi))
		poles = append(poles, pole, complex(real(pole), -imag(pole)))
	}
	if order%2 != 0 {
		poles = append(poles, complex(-sh, 0))
	}
	return poles
}

// Chebyshev1 returns the equiripple-passband prototype. The magnitude
// ripples between 0 and -PassbandRippleDB up to 1 rad/s.
func Chebyshev1(p Params) (zpk.ZPK, error) {
	if err := validateOrder(p.Order); err != nil {
		return zpk.ZPK{}, err
	}
	if err := validateDB("passband ripple", p.PassbandRippleDB); err != nil {
		return zpk.ZPK{}, err
	}

	epsSq := core.PowerDBMinusOne(p.PassbandRippleDB)
	mu := math.Asinh(1/math.Sqrt(epsSq)) / float64(p.Order)

	poles := chebyshevPoles(p.Order, mu)
	gain := gainFromRoots(nil, poles)
	if p.Order%2 == 0 {
		gain /= math.Sqrt(1 + epsSq)
	}

	return zpk.ZPK{Poles: poles, Gain: gain}, nil
}

// Chebyshev2 returns the equiripple-stopband (inverse Chebyshev) prototype.
// The stopband starts at 1 rad/s with StopbandAttenDB of attenuation.
func Chebyshev2(p Params) (zpk.ZPK, error) {
	if err := validateOrder(p.Order); err != nil {
		return zpk.ZPK{}, err
	}
	if err := validateDB("stopband attenuation", p.StopbandAttenDB); err != nil {
		return zpk.ZPK{}, err
	}

	n := p.Order
	mu := math.Asinh(math.Sqrt(core.PowerDBMinusOne(p.StopbandAttenDB))) / float64(n)

	zeros := make([]complex128, 0, n-n%2)
	for k := range n / 2 {
		phi := math.Pi * float64(2*k+1) / float64(2*n)
		w := 1 / math.Cos(phi)
		zeros = append(zeros, complex(0, w), complex(0, -w))
	}

	// invert the type I poles, keeping pairs exactly conjugate
	poles := chebyshevPoles(n, mu)
	for i := 0; i+1 < len(poles); i += 2 {
		q := 1 / poles[i]
		poles[i], poles[i+1] = q, cmplx.Conj(q)
	}
	if n%2 != 0 {
		poles[n-1] = complex(1/real(poles[n-1]), 0)
	}

	return zpk.ZPK{Zeros: zeros, Poles: poles, Gain: gainFromRoots(zeros, poles)}, nil
}
