package response

import (
	"math"
	"math/cmplx"

	"github.com/pkg/errors"

	"github.com/cwbudde/algo-filterscope/dsp/filter/zpk"
	"github.com/cwbudde/algo-filterscope/dsp/poly"
	"github.com/cwbudde/algo-filterscope/dsp/spectrum"
)

// MinMagnitudeDB is the floor applied to magnitudes of (numerically) zero
// response.
const MinMagnitudeDB = -400.0

// degenerateScale multiplies a polynomial's coefficient magnitude sum to
// give the level below which its value is treated as zero.
const degenerateScale = 10 * 2.220446049250313e-16

var (
	// ErrInvalidGrid is returned for unusable frequency grids.
	ErrInvalidGrid = errors.New("response: invalid frequency grid")
	// ErrInvalidFilter is returned for empty coefficient sets or a zero
	// leading denominator coefficient.
	ErrInvalidFilter = errors.New("response: invalid filter")
)

// Curve is a frequency response sampled on a grid. All slices have the
// same length.
type Curve struct {
	Frequencies []float64 // Hz, strictly increasing
	MagnitudeDB []float64 // clamped at MinMagnitudeDB
	PhaseDeg    []float64 // unwrapped
	GroupDelay  []float64 // samples, NaN where undefined

	// Degenerate counts the points carrying a sentinel value.
	Degenerate int
}

// Len returns the number of points.
func (c Curve) Len() int { return len(c.Frequencies) }

func newCurve(freqs []float64, h []complex128, gd []float64) Curve {
	mag, _ := spectrum.MagnitudeDB(h, MinMagnitudeDB)
	phase := spectrum.Degrees(spectrum.UnwrapPhase(spectrum.Phase(h)))

	degenerate := 0
	for i := range mag {
		if mag[i] == MinMagnitudeDB || math.IsNaN(mag[i]) || math.IsNaN(gd[i]) {
			degenerate++
		}
	}

	return Curve{
		Frequencies: append([]float64(nil), freqs...),
		MagnitudeDB: mag,
		PhaseDeg:    phase,
		GroupDelay:  gd,
		Degenerate:  degenerate,
	}
}

func validateCoefficients(b, a []float64) error {
	if len(b) == 0 || len(a) == 0 {
		return errors.Wrap(ErrInvalidFilter, "empty coefficients")
	}
	if a[0] == 0 {
		return errors.Wrap(ErrInvalidFilter, "leading denominator coefficient is zero")
	}
	return nil
}

// Evaluate samples H(z) = B(z)/A(z) at the frequencies freqs (Hz). b and a
// are in descending powers of z, i.e. b[k] multiplies z^-k.
func Evaluate(b, a, freqs []float64, sampleRate float64) (Curve, error) {
	if err := validateCoefficients(b, a); err != nil {
		return Curve{}, err
	}
	if err := validateFrequencies(freqs, sampleRate); err != nil {
		return Curve{}, err
	}

	h, gd := evaluatePoly(b, a, angular(freqs, sampleRate))
	return newCurve(freqs, h, gd), nil
}

// GroupDelay returns the group delay in samples of B/A at the angular
// frequencies omega (radians per sample):
//
//	gd = Re(z*A'(z)/A(z)) - Re(z*B'(z)/B(z)) - (len(a) - len(b))
//
// with A and B read as polynomials in positive powers of z. Points where
// |B| or |A| is below 10*eps times its coefficient magnitude sum are NaN.
func GroupDelay(b, a, omega []float64) []float64 {
	_, gd := evaluatePoly(b, a, omega)
	return gd
}

func evaluatePoly(b, a, omega []float64) ([]complex128, []float64) {
	pb, pa := poly.FromReal(b), poly.FromReal(a)
	bTol := degenerateScale * poly.AbsSum(pb)
	aTol := degenerateScale * poly.AbsSum(pa)
	shift := float64(len(a) - len(b))

	h := make([]complex128, len(omega))
	gd := make([]float64, len(omega))
	for i, w := range omega {
		z := cmplx.Exp(complex(0, w))
		bv, bd := poly.EvalDeriv(pb, z)
		av, ad := poly.EvalDeriv(pa, z)

		// sum b[k] z^-k = B(z) * z^-(len(b)-1)
		h[i] = bv / av * cmplx.Exp(complex(0, w*shift))

		if cmplx.Abs(bv) <= bTol || cmplx.Abs(av) <= aTol {
			gd[i] = math.NaN()
			continue
		}
		gd[i] = real(z*ad/av) - real(z*bd/bv) - shift
	}
	return h, gd
}

// EvaluateZPK samples a digital filter in factored form,
//
//	H(z) = Gain * prod(z - Zeros[i]) / prod(z - Poles[j]),
//
// with group delay sum Re(z/(z-p)) - sum Re(z/(z-q)) over poles p and zeros
// q. A grid point within 10*eps of a zero or pole has NaN group delay.
func EvaluateZPK(f zpk.ZPK, freqs []float64, sampleRate float64) (Curve, error) {
	if len(f.Poles) == 0 && len(f.Zeros) == 0 && f.Gain == 0 {
		return Curve{}, errors.Wrap(ErrInvalidFilter, "empty filter")
	}
	if err := validateFrequencies(freqs, sampleRate); err != nil {
		return Curve{}, err
	}

	omega := angular(freqs, sampleRate)
	h := make([]complex128, len(omega))
	gd := make([]float64, len(omega))
	for i, w := range omega {
		z := cmplx.Exp(complex(0, w))
		h[i] = f.Response(z)

		sum, ok := rootDelay(z, f.Poles)
		zsum, zok := rootDelay(z, f.Zeros)
		if !ok || !zok {
			gd[i] = math.NaN()
			continue
		}
		gd[i] = sum - zsum
	}
	return newCurve(freqs, h, gd), nil
}

// rootDelay returns sum Re(z/(z-r)); ok is false when z hits a root.
func rootDelay(z complex128, roots []complex128) (float64, bool) {
	sum := 0.0
	for _, r := range roots {
		d := z - r
		if cmplx.Abs(d) <= degenerateScale*math.Max(1, cmplx.Abs(r)) {
			return 0, false
		}
		sum += real(z / d)
	}
	return sum, true
}

func angular(freqs []float64, sampleRate float64) []float64 {
	out := make([]float64, len(freqs))
	for i, f := range freqs {
		out[i] = 2 * math.Pi * f / sampleRate
	}
	return out
}
