package iir

import (
	"github.com/pkg/errors"

	"github.com/cwbudde/algo-filterscope/dsp/core"
	"github.com/cwbudde/algo-filterscope/dsp/filter/design/prototype"
)

// MaxOrder is the highest supported prototype order. Bandpass and bandstop
// filters have twice as many poles.
const MaxOrder = prototype.MaxOrder

// Spec describes the filter to design.
//
// Lowpass filters use LowCutoff as their edge and highpass filters use
// HighCutoff. Ripple and attenuation are read only by the families that
// need them; BesselNorm only by Bessel designs.
type Spec struct {
	SampleRate       float64 // Hz
	Order            int     // prototype order, 1..MaxOrder
	Band             BandType
	Design           prototype.Family
	LowCutoff        float64 // Hz
	HighCutoff       float64 // Hz
	PassbandRippleDB float64 // chebyshev1, elliptic
	StopbandAttenDB  float64 // chebyshev2, elliptic
	BesselNorm       prototype.BesselNorm
}

// Validate checks ranges and required fields. Every failure wraps
// ErrInvalidSpec.
func (s Spec) Validate() error {
	if !positiveFinite(s.SampleRate) {
		return errors.Wrapf(ErrInvalidSpec, "sample rate must be positive and finite: %g", s.SampleRate)
	}
	if s.Order < 1 || s.Order > MaxOrder {
		return errors.Wrapf(ErrInvalidSpec, "order %d outside [1,%d]", s.Order, MaxOrder)
	}
	if !s.Band.Valid() {
		return errors.Wrapf(ErrInvalidSpec, "unknown band type %d", int(s.Band))
	}
	if !s.Design.Valid() {
		return errors.Wrapf(ErrInvalidSpec, "unknown design family %d", int(s.Design))
	}

	nyquist := s.SampleRate / 2
	if !(s.LowCutoff > 0 && s.LowCutoff < nyquist) {
		return errors.Wrapf(ErrInvalidSpec, "low cutoff %g Hz outside (0, %g)", s.LowCutoff, nyquist)
	}
	switch {
	case s.Band == Highpass:
		if !(s.HighCutoff > 0 && s.HighCutoff < nyquist) {
			return errors.Wrapf(ErrInvalidSpec, "high cutoff %g Hz outside (0, %g)", s.HighCutoff, nyquist)
		}
	case s.Band.TwoEdges():
		if !(s.HighCutoff > s.LowCutoff && s.HighCutoff < nyquist) {
			return errors.Wrapf(ErrInvalidSpec, "high cutoff %g Hz outside (%g, %g)", s.HighCutoff, s.LowCutoff, nyquist)
		}
	}

	if s.Design.UsesPassbandRipple() && !positiveFinite(s.PassbandRippleDB) {
		return errors.Wrapf(ErrInvalidSpec, "passband ripple must be positive: %g dB", s.PassbandRippleDB)
	}
	if s.Design.UsesStopbandAtten() && !positiveFinite(s.StopbandAttenDB) {
		return errors.Wrapf(ErrInvalidSpec, "stopband attenuation must be positive: %g dB", s.StopbandAttenDB)
	}
	if s.Design == prototype.FamilyElliptic && !(s.StopbandAttenDB > s.PassbandRippleDB) {
		return errors.Wrapf(ErrInvalidSpec, "stopband attenuation %g dB must exceed passband ripple %g dB",
			s.StopbandAttenDB, s.PassbandRippleDB)
	}
	if s.Design == prototype.FamilyBessel && (s.BesselNorm < prototype.BesselDelay || s.BesselNorm > prototype.BesselMagnitude) {
		return errors.Wrapf(ErrInvalidSpec, "unknown bessel normalization %d", int(s.BesselNorm))
	}
	return nil
}

// params returns the prototype parameters, dropping the fields the family
// ignores.
func (s Spec) params() prototype.Params {
	p := prototype.Params{Order: s.Order}
	if s.Design.UsesPassbandRipple() {
		p.PassbandRippleDB = s.PassbandRippleDB
	}
	if s.Design.UsesStopbandAtten() {
		p.StopbandAttenDB = s.StopbandAttenDB
	}
	if s.Design == prototype.FamilyBessel {
		p.BesselNorm = s.BesselNorm
	}
	return p
}

func positiveFinite(v float64) bool {
	return v > 0 && core.IsFinite(v)
}
