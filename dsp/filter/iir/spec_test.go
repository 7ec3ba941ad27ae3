package iir

import (
	"math"
	"testing"

	"github.com/pkg/errors"

	"github.com/cwbudde/algo-filterscope/dsp/filter/design/prototype"
)

func validSpec() Spec {
	return Spec{
		SampleRate:       48000,
		Order:            4,
		Band:             Bandpass,
		Design:           prototype.FamilyElliptic,
		LowCutoff:        500,
		HighCutoff:       5000,
		PassbandRippleDB: 0.1,
		StopbandAttenDB:  60,
	}
}

func TestSpecValidate_Valid(t *testing.T) {
	if err := validSpec().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// ripple fields are ignored for families that do not use them
	s := validSpec()
	s.Design = prototype.FamilyButterworth
	s.PassbandRippleDB, s.StopbandAttenDB = -1, math.NaN()
	if err := s.Validate(); err != nil {
		t.Fatalf("butterworth with unused ripple fields: %v", err)
	}

	// lowpass ignores the high cutoff
	s = validSpec()
	s.Band = Lowpass
	s.HighCutoff = 0
	if err := s.Validate(); err != nil {
		t.Fatalf("lowpass without high cutoff: %v", err)
	}
}

func TestSpecValidate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Spec)
	}{
		{"zero sample rate", func(s *Spec) { s.SampleRate = 0 }},
		{"infinite sample rate", func(s *Spec) { s.SampleRate = math.Inf(1) }},
		{"order zero", func(s *Spec) { s.Order = 0 }},
		{"order too high", func(s *Spec) { s.Order = MaxOrder + 1 }},
		{"unknown band", func(s *Spec) { s.Band = BandType(9) }},
		{"unknown design", func(s *Spec) { s.Design = prototype.Family(-1) }},
		{"low cutoff zero", func(s *Spec) { s.LowCutoff = 0 }},
		{"low cutoff at nyquist", func(s *Spec) { s.Band = Lowpass; s.LowCutoff = 24000 }},
		{"low cutoff above nyquist", func(s *Spec) { s.Band = Lowpass; s.LowCutoff = 30000 }},
		{"low cutoff NaN", func(s *Spec) { s.LowCutoff = math.NaN() }},
		{"high below low", func(s *Spec) { s.HighCutoff = 400 }},
		{"high equals low", func(s *Spec) { s.HighCutoff = s.LowCutoff }},
		{"high at nyquist", func(s *Spec) { s.HighCutoff = 24000 }},
		{"highpass edge above nyquist", func(s *Spec) { s.Band = Highpass; s.HighCutoff = 25000 }},
		{"missing ripple", func(s *Spec) { s.PassbandRippleDB = 0 }},
		{"negative attenuation", func(s *Spec) { s.StopbandAttenDB = -3 }},
		{"attenuation below ripple", func(s *Spec) { s.PassbandRippleDB, s.StopbandAttenDB = 3, 2 }},
		{"cheby1 without ripple", func(s *Spec) { s.Design = prototype.FamilyChebyshev1; s.PassbandRippleDB = 0 }},
		{"cheby2 without attenuation", func(s *Spec) { s.Design = prototype.FamilyChebyshev2; s.StopbandAttenDB = 0 }},
		{"bessel norm unknown", func(s *Spec) { s.Design = prototype.FamilyBessel; s.BesselNorm = 7 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSpec()
			tt.modify(&s)
			err := s.Validate()
			if !errors.Is(err, ErrInvalidSpec) {
				t.Fatalf("expected ErrInvalidSpec, got %v", err)
			}

			f, err := Design(s)
			if f != nil || !errors.Is(err, ErrInvalidSpec) {
				t.Fatalf("Design: expected nil filter and ErrInvalidSpec, got %v, %v", f, err)
			}
		})
	}
}

func TestBandType_StringParse(t *testing.T) {
	for _, b := range BandTypes() {
		got, err := ParseBandType(b.String())
		if err != nil || got != b {
			t.Fatalf("ParseBandType(%q) = %v, %v", b.String(), got, err)
		}
	}

	for in, want := range map[string]BandType{"LP": Lowpass, " hp ": Highpass, "bp": Bandpass, "notch": Bandstop} {
		got, err := ParseBandType(in)
		if err != nil || got != want {
			t.Fatalf("ParseBandType(%q) = %v, %v; want %v", in, got, err, want)
		}
	}

	if _, err := ParseBandType("allpass"); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("expected ErrInvalidSpec, got %v", err)
	}
	if s := BandType(12).String(); s != "BandType(12)" {
		t.Fatalf("String() = %q", s)
	}
}

func TestParseEvaluation(t *testing.T) {
	for in, want := range map[string]Evaluation{"polynomial": EvalPolynomial, "BA": EvalPolynomial, "factored": EvalFactored, "zpk": EvalFactored} {
		got, err := ParseEvaluation(in)
		if err != nil || got != want {
			t.Fatalf("ParseEvaluation(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseEvaluation("fft"); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("expected ErrInvalidSpec, got %v", err)
	}
}
