package analysis

import (
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-filterscope/dsp/core"
	"github.com/cwbudde/algo-filterscope/dsp/filter/biquad"
	"github.com/cwbudde/algo-filterscope/dsp/filter/design/prototype"
	"github.com/cwbudde/algo-filterscope/dsp/filter/iir"
)

// CoefficientDigits is the number of significant digits used for
// human-readable coefficients. Seventeen digits round-trip every float64.
const CoefficientDigits = 17

// Floats marshals to a JSON array in which NaN and infinite values are null.
type Floats []float64

// MarshalJSON implements json.Marshaler.
func (f Floats) MarshalJSON() ([]byte, error) {
	if f == nil {
		return []byte("null"), nil
	}
	buf := make([]byte, 0, 2+len(f)*20)
	buf = append(buf, '[')
	for i, v := range f {
		if i > 0 {
			buf = append(buf, ',')
		}
		if !core.IsFinite(v) {
			buf = append(buf, "null"...)
			continue
		}
		buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
	}
	return append(buf, ']'), nil
}

// Complex is a JSON-friendly complex number.
type Complex struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

func complexes(in []complex128) []Complex {
	out := make([]Complex, len(in))
	for i, c := range in {
		out[i] = Complex{Re: real(c), Im: imag(c)}
	}
	return out
}

// SpecSummary echoes the analyzed parameters.
type SpecSummary struct {
	SampleRate       float64 `json:"fs_hz"`
	Order            int     `json:"order"`
	Band             string  `json:"band"`
	Design           string  `json:"design"`
	LowCutoff        float64 `json:"low_hz"`
	HighCutoff       float64 `json:"high_hz"`
	PassbandRippleDB float64 `json:"rp_db,omitempty"`
	StopbandAttenDB  float64 `json:"rs_db,omitempty"`
	BesselNorm       string  `json:"bessel_norm,omitempty"`
}

// Curve holds the sampled response.
type Curve struct {
	Frequencies Floats `json:"frequencies_hz"`
	MagnitudeDB Floats `json:"magnitude_db"`
	PhaseDeg    Floats `json:"phase_deg"`
	GroupDelay  Floats `json:"group_delay_samples"`
}

// Section is one second-order section in b0 b1 b2 / 1 a1 a2 form.
type Section struct {
	B [3]float64 `json:"b"`
	A [3]float64 `json:"a"`
}

// Report is the outcome of one analysis run.
type Report struct {
	RunID           string      `json:"run_id"`
	Spec            SpecSummary `json:"spec"`
	Order           int         `json:"order"`
	Numerator       Floats      `json:"numerator"`
	Denominator     Floats      `json:"denominator"`
	Zeros           []Complex   `json:"zeros"`
	Poles           []Complex   `json:"poles"`
	Gain            float64     `json:"gain"`
	Stable          bool        `json:"stable"`
	Sections        []Section   `json:"sections,omitempty"`
	CoefficientText string      `json:"coefficient_text"`
	Curve           Curve       `json:"curve"`
	Warnings        []string    `json:"warnings,omitempty"`
}

func summarize(s iir.Spec) SpecSummary {
	sum := SpecSummary{
		SampleRate: s.SampleRate,
		Order:      s.Order,
		Band:       s.Band.String(),
		Design:     s.Design.String(),
		LowCutoff:  s.LowCutoff,
		HighCutoff: s.HighCutoff,
	}
	if s.Design.UsesPassbandRipple() {
		sum.PassbandRippleDB = s.PassbandRippleDB
	}
	if s.Design.UsesStopbandAtten() {
		sum.StopbandAttenDB = s.StopbandAttenDB
	}
	if s.Design == prototype.FamilyBessel {
		sum.BesselNorm = s.BesselNorm.String()
	}
	return sum
}

func newReport(runID string, spec iir.Spec, a *iir.Analysis,
	sections func(*iir.Filter) ([]biquad.Coefficients, error),
) *Report {
	f := a.Filter
	r := &Report{
		RunID:           runID,
		Spec:            summarize(spec),
		Order:           f.Order(),
		Numerator:       Floats(f.Numerator),
		Denominator:     Floats(f.Denominator),
		Zeros:           complexes(f.Zeros),
		Poles:           complexes(f.Poles),
		Gain:            f.Gain,
		Stable:          f.Stable(),
		CoefficientText: FormatCoefficients(f.Numerator, f.Denominator),
		Curve: Curve{
			Frequencies: a.Curve.Frequencies,
			MagnitudeDB: a.Curve.MagnitudeDB,
			PhaseDeg:    a.Curve.PhaseDeg,
			GroupDelay:  a.Curve.GroupDelay,
		},
	}

	if sos, err := sections(f); err == nil {
		r.Sections = sectionsOf(sos)
	} else {
		r.Warnings = append(r.Warnings, "sections: "+err.Error())
	}
	for _, w := range a.Warnings {
		r.Warnings = append(r.Warnings, w.Error())
	}
	return r
}

func sectionsOf(in []biquad.Coefficients) []Section {
	out := make([]Section, len(in))
	for i, c := range in {
		out[i] = Section{
			B: [3]float64{c.B0, c.B1, c.B2},
			A: [3]float64{1, c.A1, c.A2},
		}
	}
	return out
}

// FormatCoefficients renders the numerator and denominator one coefficient
// per line with CoefficientDigits significant digits:
//
//	b[0] =  3.9161266605473680e-03
//	...
//	a[0] =  1.0000000000000000e+00
func FormatCoefficients(b, a []float64) string {
	var sb strings.Builder
	write := func(name string, coeffs []float64) {
		for i, v := range coeffs {
			sb.WriteString(name)
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(i))
			sb.WriteString("] = ")
			if !math.Signbit(v) {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(v, 'e', CoefficientDigits-1, 64))
			sb.WriteByte('\n')
		}
	}
	write("b", b)
	write("a", a)
	return sb.String()
}
