package prototype

import (
	"math"
	"math/cmplx"

	"github.com/pkg/errors"

	"github.com/cwbudde/algo-filterscope/dsp/filter/zpk"
	"github.com/cwbudde/algo-filterscope/dsp/poly"
	"github.com/cwbudde/algo-filterscope/internal/polyroot"
)

const (
	magnitudeBisectIter = 200
	magnitudeBisectTol  = 1e-15
)

// ReverseBessel returns the reverse Bessel polynomial theta_n in descending
// powers, built with the recurrence
//
//	theta_n(s) = (2n-1)*theta_{n-1}(s) + s^2*theta_{n-2}(s)
//
// from theta_0 = 1 and theta_1 = s + 1. The coefficients are integers and
// exact in float64 for n <= MaxOrder.
func ReverseBessel(n int) []float64 {
	prev := []float64{1}
	if n <= 0 {
		return prev
	}
	cur := []float64{1, 1}
	for k := 2; k <= n; k++ {
		next := make([]float64, k+1)
		// s^2*theta_{k-2} occupies the leading k-1 coefficients.
		copy(next, prev)
		off := len(next) - len(cur)
		for i, c := range cur {
			next[off+i] += float64(2*k-1) * c
		}
		prev, cur = cur, next
	}
	return cur
}

// Bessel returns the Bessel-Thomson prototype: the poles are the roots of
// the reverse Bessel polynomial, with the frequency scale picked by
// p.BesselNorm. The DC gain is 1 for every normalization.
//
// The returned error may wrap polyroot.ErrNotConverged, in which case the
// prototype holds the best available roots.
func Bessel(p Params) (zpk.ZPK, error) {
	if err := validateOrder(p.Order); err != nil {
		return zpk.ZPK{}, err
	}

	theta := ReverseBessel(p.Order)
	roots, rootErr := polyroot.Roots(poly.FromReal(theta))
	if rootErr != nil && !errors.Is(rootErr, polyroot.ErrNotConverged) {
		return zpk.ZPK{}, errors.Wrap(rootErr, "bessel poles")
	}

	// theta(0) = prod(-p) for the monic polynomial; delay normalization.
	proto := zpk.ZPK{Poles: roots, Gain: theta[len(theta)-1]}

	switch p.BesselNorm {
	case BesselDelay:
	case BesselPhase:
		proto = scaleFrequency(proto, math.Pow(proto.Gain, 1/float64(p.Order)))
	case BesselMagnitude:
		proto = scaleFrequency(proto, magnitudeCutoff(proto))
	default:
		return zpk.ZPK{}, errors.Wrapf(ErrInvalidParams, "unknown bessel normalization %d", int(p.BesselNorm))
	}

	if rootErr != nil {
		return proto, errors.Wrap(rootErr, "bessel poles")
	}
	return proto, nil
}

// scaleFrequency maps H(s) to H(s*w) for an all-pole prototype, moving the
// frequency w to 1 rad/s while keeping the DC gain.
func scaleFrequency(f zpk.ZPK, w float64) zpk.ZPK {
	poles := make([]complex128, len(f.Poles))
	for i, p := range f.Poles {
		poles[i] = p / complex(w, 0)
	}
	return zpk.ZPK{Poles: poles, Gain: gainFromRoots(nil, poles)}
}

// magnitudeCutoff returns the angular frequency where |H(jw)|^2 = 1/2 by
// bisection. Bessel magnitude decreases monotonically, so the bracket is
// found by doubling.
func magnitudeCutoff(f zpk.ZPK) float64 {
	below := func(w float64) bool {
		h := cmplx.Abs(f.AnalogResponse(w))
		return h*h < 0.5
	}

	lo, hi := 0.0, 1.0
	for i := 0; i < 64 && !below(hi); i++ {
		lo, hi = hi, 2*hi
	}

	for i := 0; i < magnitudeBisectIter && hi-lo > magnitudeBisectTol*hi; i++ {
		mid := (lo + hi) / 2
		if below(mid) {
			hi = mid
		} else {
			lo = mid
		}
	}
	return (lo + hi) / 2
}
