package prototype

import (
	"math"
	"math/cmplx"

	"github.com/pkg/errors"

	"github.com/cwbudde/algo-filterscope/dsp/core"
	"github.com/cwbudde/algo-filterscope/dsp/filter/zpk"
	"github.com/cwbudde/algo-filterscope/internal/ellipticmath"
)

const ellipticEps = 2e-16

// minSelectivityComplement bounds 1-m from below. Past it the stopband edge
// 1/sqrt(m) sits within 5e-10 of the passband edge and the passband ripple
// is no longer met in float64.
const minSelectivityComplement = 1e-9

// Elliptic returns the Cauer prototype with PassbandRippleDB of equiripple
// up to 1 rad/s and at least StopbandAttenDB of attenuation in the
// stopband. StopbandAttenDB must exceed PassbandRippleDB, and by enough for
// the order: attenuation barely above the ripple at high order (0.15 dB
// over 0.1 dB at order 7, say) needs a transition band narrower than
// float64 resolves and is rejected with ErrInvalidParams.
//
// The selectivity parameter follows from the degree equation; zeros and
// poles are placed with the Jacobi elliptic functions.
func Elliptic(p Params) (zpk.ZPK, error) {
	if err := validateOrder(p.Order); err != nil {
		return zpk.ZPK{}, err
	}
	if err := validateDB("passband ripple", p.PassbandRippleDB); err != nil {
		return zpk.ZPK{}, err
	}
	if err := validateDB("stopband attenuation", p.StopbandAttenDB); err != nil {
		return zpk.ZPK{}, err
	}
	if p.StopbandAttenDB <= p.PassbandRippleDB {
		return zpk.ZPK{}, errors.Wrapf(ErrInvalidParams,
			"stopband attenuation %g dB must exceed passband ripple %g dB",
			p.StopbandAttenDB, p.PassbandRippleDB)
	}

	n := p.Order
	epsSq := core.PowerDBMinusOne(p.PassbandRippleDB)

	if n == 1 {
		pole := -math.Sqrt(1 / epsSq)
		return zpk.ZPK{Poles: []complex128{complex(pole, 0)}, Gain: -pole}, nil
	}

	eps := math.Sqrt(epsSq)
	ck1Sq := discrimination(p.PassbandRippleDB, p.StopbandAttenDB)
	if !(ck1Sq > 0 && ck1Sq < 1) {
		return zpk.ZPK{}, errors.Wrapf(ErrInvalidParams,
			"ripple %g dB and attenuation %g dB give no realizable elliptic filter",
			p.PassbandRippleDB, p.StopbandAttenDB)
	}

	m := selectivity(n, p.PassbandRippleDB, p.StopbandAttenDB)
	if math.IsNaN(m) {
		return zpk.ZPK{}, errors.Wrapf(ErrInvalidParams, "degree equation has no solution for order %d", n)
	}
	if !(1-m >= minSelectivityComplement) {
		return zpk.ZPK{}, errors.Wrapf(ErrInvalidParams,
			"order %d leaves no transition band between %g dB ripple and %g dB attenuation",
			n, p.PassbandRippleDB, p.StopbandAttenDB)
	}
	capK := ellipticmath.K(m)
	sqrtM := math.Sqrt(m)

	r := ellipticmath.ArcSC1(1/eps, ck1Sq)
	if math.IsNaN(r) {
		return zpk.ZPK{}, errors.Wrapf(ErrInvalidParams,
			"cannot place poles for ripple %g dB", p.PassbandRippleDB)
	}
	v0 := capK * r / (float64(n) * ellipticmath.K(ck1Sq))
	sv, cv, dv := ellipticmath.JacobiComplement(v0, m)

	var zeros, poles []complex128
	var realPole []complex128
	for j := 1 - n%2; j < n; j += 2 {
		s, c, d := ellipticmath.Jacobi(float64(j)*capK/float64(n), m)

		if math.Abs(s) > ellipticEps {
			w := 1 / (sqrtM * s)
			zeros = append(zeros, complex(0, w), complex(0, -w))
		}

		den := 1 - (d*sv)*(d*sv)
		pole := -complex(c*d*sv*cv, s*dv) / complex(den, 0)
		if math.Abs(imag(pole)) > ellipticEps*cmplx.Abs(pole) {
			poles = append(poles, pole, cmplx.Conj(pole))
		} else {
			realPole = append(realPole, complex(real(pole), 0))
		}
	}
	poles = append(poles, realPole...)

	gain := gainFromRoots(zeros, poles)
	if n%2 == 0 {
		gain /= math.Sqrt(1 + epsSq)
	}

	return zpk.ZPK{Zeros: zeros, Poles: poles, Gain: gain}, nil
}

// discrimination returns the squared discrimination factor
// (10^(rp/10)-1) / (10^(rs/10)-1).
func discrimination(rp, rs float64) float64 {
	return core.PowerDBMinusOne(rp) / core.PowerDBMinusOne(rs)
}

// selectivity returns the squared selectivity factor m of an order n
// filter; the stopband begins at 1/sqrt(m) rad/s.
func selectivity(n int, rp, rs float64) float64 {
	return ellipticmath.Degree(n, discrimination(rp, rs))
}
