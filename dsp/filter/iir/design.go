package iir

import (
	"math/cmplx"

	"github.com/pkg/errors"

	"github.com/cwbudde/algo-filterscope/dsp/filter/design/prototype"
	"github.com/cwbudde/algo-filterscope/dsp/filter/design/transform"
	"github.com/cwbudde/algo-filterscope/dsp/filter/zpk"
	"github.com/cwbudde/algo-filterscope/internal/polyroot"
)

// newPrototype and findRoots are replaced in tests to drive the
// non-convergence paths.
var (
	newPrototype = prototype.New
	findRoots    = polyroot.Roots
)

// Design builds the digital filter described by spec.
//
// The returned error wraps ErrInvalidSpec when spec is rejected; no filter
// is returned then. Non-fatal conditions are collected in
// Filter.Warnings.
func Design(spec Spec) (*Filter, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	var warnings []error

	proto, err := newPrototype(spec.Design, spec.params())
	switch {
	case err == nil:
	case errors.Is(err, polyroot.ErrNotConverged):
		warnings = append(warnings, errors.Wrapf(ErrRootsNotConverged, "%s prototype poles", spec.Design))
	case errors.Is(err, prototype.ErrInvalidParams):
		return nil, errors.Wrap(ErrInvalidSpec, err.Error())
	default:
		return nil, errors.Wrapf(err, "%s prototype", spec.Design)
	}

	analog, err := bandTransform(proto, spec)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidSpec, err.Error())
	}

	digital, err := transform.Bilinear(analog, spec.SampleRate)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidSpec, err.Error())
	}
	digital.Zeros = polyroot.SortConjugates(digital.Zeros, polyroot.ConjugateTol)
	digital.Poles = polyroot.SortConjugates(digital.Poles, polyroot.ConjugateTol)

	b, a, err := digital.Coefficients()
	if err != nil {
		return nil, errors.Wrap(err, "expanding coefficients")
	}

	f := &Filter{
		Numerator:   b,
		Denominator: a,
		Zeros:       digital.Zeros,
		Poles:       digital.Poles,
		Gain:        digital.Gain,
		Analog:      analog,
		Prototype:   proto,
		Warnings:    warnings,
	}

	for _, p := range f.Poles {
		if !(cmplx.Abs(p) < 1) {
			f.Warnings = append(f.Warnings,
				errors.Wrapf(ErrNumericDegeneracy, "pole %v on or outside the unit circle", p))
			break
		}
	}
	return f, nil
}

// bandTransform maps the prototype to the requested band at the prewarped
// cutoffs.
func bandTransform(proto zpk.ZPK, spec Spec) (zpk.ZPK, error) {
	wLow := transform.Prewarp(spec.LowCutoff, spec.SampleRate)
	wHigh := transform.Prewarp(spec.HighCutoff, spec.SampleRate)

	switch spec.Band {
	case Lowpass:
		return transform.LowpassToLowpass(proto, wLow)
	case Highpass:
		return transform.LowpassToHighpass(proto, wHigh)
	case Bandpass:
		wo, bw := transform.CenterAndWidth(wLow, wHigh)
		return transform.LowpassToBandpass(proto, wo, bw)
	case Bandstop:
		wo, bw := transform.CenterAndWidth(wLow, wHigh)
		return transform.LowpassToBandstop(proto, wo, bw)
	default:
		return zpk.ZPK{}, errors.Errorf("unknown band type %d", int(spec.Band))
	}
}
