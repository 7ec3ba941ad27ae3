package iir

import (
	"math/cmplx"

	"github.com/pkg/errors"

	"github.com/cwbudde/algo-filterscope/dsp/filter/biquad"
	"github.com/cwbudde/algo-filterscope/dsp/filter/zpk"
	"github.com/cwbudde/algo-filterscope/dsp/poly"
	"github.com/cwbudde/algo-filterscope/internal/polyroot"
)

// Filter is a designed digital filter,
//
//	H(z) = (b0 + b1*z^-1 + ... + bN*z^-N) / (1 + a1*z^-1 + ... + aN*z^-N)
//	     = Gain * prod(z - Zeros[i]) / prod(z - Poles[j]).
//
// Numerator and Denominator have equal length and Denominator[0] is 1.
type Filter struct {
	Numerator   []float64
	Denominator []float64
	Zeros       []complex128
	Poles       []complex128
	Gain        float64

	Analog    zpk.ZPK // band-transformed analog filter
	Prototype zpk.ZPK // normalized lowpass prototype

	// Warnings holds non-fatal conditions hit while designing.
	Warnings []error
}

// Order returns the digital filter order, the degree of the denominator.
func (f *Filter) Order() int {
	return len(f.Denominator) - 1
}

// ZPK returns the digital filter in factored form.
func (f *Filter) ZPK() zpk.ZPK {
	return zpk.ZPK{Zeros: f.Zeros, Poles: f.Poles, Gain: f.Gain}.Clone()
}

// Stable reports whether every pole lies strictly inside the unit circle.
func (f *Filter) Stable() bool {
	for _, p := range f.Poles {
		if !(cmplx.Abs(p) < 1) {
			return false
		}
	}
	return true
}

// Sections returns the filter as a cascade of second-order sections.
func (f *Filter) Sections() ([]biquad.Coefficients, error) {
	return biquad.FromZPK(f.ZPK())
}

// ExtractRoots recovers zeros and poles from the expanded coefficients. The
// result is what a caller holding only Numerator and Denominator would see;
// comparing it with Zeros and Poles measures the precision lost in the
// expansion.
//
// An error wrapping ErrRootsNotConverged comes with best-effort roots.
func (f *Filter) ExtractRoots() (zeros, poles []complex128, err error) {
	zeros, zErr := findRoots(poly.FromReal(f.Numerator))
	poles, pErr := findRoots(poly.FromReal(f.Denominator))

	for _, e := range []struct {
		what string
		err  error
	}{{"zeros", zErr}, {"poles", pErr}} {
		switch {
		case e.err == nil:
		case errors.Is(e.err, polyroot.ErrNotConverged):
			if err == nil {
				err = errors.Wrap(ErrRootsNotConverged, e.what)
			}
		default:
			return nil, nil, errors.Wrap(e.err, e.what)
		}
	}
	return zeros, poles, err
}
