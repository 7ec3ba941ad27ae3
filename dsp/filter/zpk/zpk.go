package zpk

import (
	"math/cmplx"

	"github.com/pkg/errors"
	"github.com/tphakala/simd/f64"

	"github.com/cwbudde/algo-filterscope/dsp/poly"
)

// ErrNotReal is returned when the roots are not closed under conjugation, so
// the expanded polynomial has significant imaginary coefficients.
var ErrNotReal = errors.New("zpk: expanded coefficients are not real")

// ZPK is the factored transfer function
//
//	H(x) = Gain * prod(x - Zeros[i]) / prod(x - Poles[j])
//
// where x is s for analog filters and z for digital ones.
type ZPK struct {
	Zeros []complex128
	Poles []complex128
	Gain  float64
}

// Clone returns a deep copy of f.
func (f ZPK) Clone() ZPK {
	return ZPK{
		Zeros: append([]complex128(nil), f.Zeros...),
		Poles: append([]complex128(nil), f.Poles...),
		Gain:  f.Gain,
	}
}

// RelativeDegree returns the number of zeros at infinity, len(Poles) -
// len(Zeros).
func (f ZPK) RelativeDegree() int {
	return len(f.Poles) - len(f.Zeros)
}

// Response evaluates H at the complex point x as a product of root factors.
// Evaluating at a pole yields an infinite result.
func (f ZPK) Response(x complex128) complex128 {
	h := complex(f.Gain, 0)
	for _, z := range f.Zeros {
		h *= x - z
	}
	for _, p := range f.Poles {
		d := x - p
		if d == 0 {
			return cmplx.Inf()
		}
		h /= d
	}
	return h
}

// AnalogResponse evaluates an s-plane filter at s = jw.
func (f ZPK) AnalogResponse(w float64) complex128 {
	return f.Response(complex(0, w))
}

// DigitalResponse evaluates a z-plane filter at z = exp(j*omega), omega in
// radians per sample.
func (f ZPK) DigitalResponse(omega float64) complex128 {
	return f.Response(cmplx.Exp(complex(0, omega)))
}

// Coefficients expands f into real numerator and denominator coefficients in
// descending powers. The denominator is monic. Imaginary round-off is
// clipped; ErrNotReal is returned when it is not round-off.
func (f ZPK) Coefficients() (b, a []float64, err error) {
	b, ok := poly.Real(poly.FromRoots(f.Zeros), poly.DefaultRealTol)
	if !ok {
		return nil, nil, errors.Wrap(ErrNotReal, "numerator")
	}
	a, ok = poly.Real(poly.FromRoots(f.Poles), poly.DefaultRealTol)
	if !ok {
		return nil, nil, errors.Wrap(ErrNotReal, "denominator")
	}

	f64.Scale(b, b, f.Gain)
	if a[0] != 1 {
		f64.Scale(b, b, 1/a[0])
		f64.Scale(a, a, 1/a[0])
	}
	return b, a, nil
}
