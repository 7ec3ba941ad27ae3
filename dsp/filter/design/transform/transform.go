package transform

import (
	"math"
	"math/cmplx"

	"github.com/pkg/errors"

	"github.com/cwbudde/algo-filterscope/dsp/filter/zpk"
)

// ErrDegenerate is returned for non-positive or non-finite frequencies and
// for roots that land on a singular point of a transform.
var ErrDegenerate = errors.New("transform: degenerate transform")

// Prewarp returns the analog angular frequency 2*fs*tan(pi*f/fs) that the
// bilinear transform maps to the digital frequency f (Hz).
func Prewarp(freqHz, sampleRate float64) float64 {
	return 2 * sampleRate * math.Tan(math.Pi*freqHz/sampleRate)
}

// CenterAndWidth returns the geometric center sqrt(wLow*wHigh) and the width
// wHigh-wLow of a band.
func CenterAndWidth(wLow, wHigh float64) (center, width float64) {
	return math.Sqrt(wLow * wHigh), wHigh - wLow
}

func checkFrequency(name string, w float64) error {
	if !(w > 0) || math.IsInf(w, 0) {
		return errors.Wrapf(ErrDegenerate, "%s must be positive and finite: %g", name, w)
	}
	return nil
}

// LowpassToLowpass moves the prototype cutoff from 1 rad/s to wo.
func LowpassToLowpass(f zpk.ZPK, wo float64) (zpk.ZPK, error) {
	if err := checkFrequency("cutoff", wo); err != nil {
		return zpk.ZPK{}, err
	}

	out := zpk.ZPK{
		Zeros: scaleRoots(f.Zeros, wo),
		Poles: scaleRoots(f.Poles, wo),
		Gain:  f.Gain * math.Pow(wo, float64(f.RelativeDegree())),
	}
	return out, nil
}

// LowpassToHighpass substitutes s -> wo/s. Zeros at infinity become zeros
// at the origin so numerator and denominator keep equal degree.
func LowpassToHighpass(f zpk.ZPK, wo float64) (zpk.ZPK, error) {
	if err := checkFrequency("cutoff", wo); err != nil {
		return zpk.ZPK{}, err
	}

	zeros, err := invertRoots("zero", f.Zeros, wo)
	if err != nil {
		return zpk.ZPK{}, err
	}
	poles, err := invertRoots("pole", f.Poles, wo)
	if err != nil {
		return zpk.ZPK{}, err
	}
	zeros = append(zeros, make([]complex128, f.RelativeDegree())...)

	return zpk.ZPK{Zeros: zeros, Poles: poles, Gain: f.Gain * negProdRatio(f.Zeros, f.Poles)}, nil
}

// LowpassToBandpass substitutes s -> (s^2 + wo^2)/(s*bw). Each root p
// splits into the two solutions of x^2 - p*bw*x + wo^2 = 0; zeros at
// infinity contribute zeros at the origin.
func LowpassToBandpass(f zpk.ZPK, wo, bw float64) (zpk.ZPK, error) {
	if err := checkFrequency("center", wo); err != nil {
		return zpk.ZPK{}, err
	}
	if err := checkFrequency("bandwidth", bw); err != nil {
		return zpk.ZPK{}, err
	}

	zeros := splitRoots(scaleRoots(f.Zeros, bw/2), wo)
	poles := splitRoots(scaleRoots(f.Poles, bw/2), wo)
	zeros = append(zeros, make([]complex128, f.RelativeDegree())...)

	gain := f.Gain * math.Pow(bw, float64(f.RelativeDegree()))
	return zpk.ZPK{Zeros: zeros, Poles: poles, Gain: gain}, nil
}

// LowpassToBandstop substitutes s -> s*bw/(s^2 + wo^2). Each root p splits
// into the solutions of x^2 - (bw/p)*x + wo^2 = 0; zeros at infinity
// become zero pairs at +-j*wo.
func LowpassToBandstop(f zpk.ZPK, wo, bw float64) (zpk.ZPK, error) {
	if err := checkFrequency("center", wo); err != nil {
		return zpk.ZPK{}, err
	}
	if err := checkFrequency("bandwidth", bw); err != nil {
		return zpk.ZPK{}, err
	}

	invZ, err := invertRoots("zero", f.Zeros, bw/2)
	if err != nil {
		return zpk.ZPK{}, err
	}
	invP, err := invertRoots("pole", f.Poles, bw/2)
	if err != nil {
		return zpk.ZPK{}, err
	}

	zeros := splitRoots(invZ, wo)
	poles := splitRoots(invP, wo)
	for range f.RelativeDegree() {
		zeros = append(zeros, complex(0, wo), complex(0, -wo))
	}

	return zpk.ZPK{Zeros: zeros, Poles: poles, Gain: f.Gain * negProdRatio(f.Zeros, f.Poles)}, nil
}

// Bilinear maps an analog filter to the z-plane with
// z = (2fs + s)/(2fs - s). Zeros at infinity map to z = -1, and the gain is
// chosen so that corresponding analog and digital frequencies have equal
// response.
func Bilinear(f zpk.ZPK, sampleRate float64) (zpk.ZPK, error) {
	if err := checkFrequency("sample rate", sampleRate); err != nil {
		return zpk.ZPK{}, err
	}
	fs2 := complex(2*sampleRate, 0)

	mapRoots := func(kind string, roots []complex128) ([]complex128, complex128, error) {
		out := make([]complex128, len(roots))
		prod := complex(1, 0)
		for i, r := range roots {
			d := fs2 - r
			if d == 0 || cmplx.IsInf(r) || cmplx.IsNaN(r) {
				return nil, 0, errors.Wrapf(ErrDegenerate, "analog %s %v maps to infinity", kind, r)
			}
			out[i] = (fs2 + r) / d
			prod *= d
		}
		return out, prod, nil
	}

	zeros, zProd, err := mapRoots("zero", f.Zeros)
	if err != nil {
		return zpk.ZPK{}, err
	}
	poles, pProd, err := mapRoots("pole", f.Poles)
	if err != nil {
		return zpk.ZPK{}, err
	}
	for range f.RelativeDegree() {
		zeros = append(zeros, -1)
	}

	return zpk.ZPK{Zeros: zeros, Poles: poles, Gain: f.Gain * real(zProd/pProd)}, nil
}

func scaleRoots(roots []complex128, w float64) []complex128 {
	out := make([]complex128, len(roots))
	for i, r := range roots {
		out[i] = r * complex(w, 0)
	}
	return out
}

// invertRoots returns w/r for every root.
func invertRoots(kind string, roots []complex128, w float64) ([]complex128, error) {
	out := make([]complex128, len(roots))
	for i, r := range roots {
		if r == 0 {
			return nil, errors.Wrapf(ErrDegenerate, "%s at the origin cannot be inverted", kind)
		}
		out[i] = complex(w, 0) / r
	}
	return out, nil
}

// splitRoots returns the two solutions of r^2 - 2*x*r + wo^2 = 0 for every
// root x. The larger one is x +- sqrt(x^2 - wo^2) with the sign that avoids
// cancellation, the smaller follows from r1*r2 = wo^2.
func splitRoots(roots []complex128, wo float64) []complex128 {
	out := make([]complex128, 2*len(roots))
	wo2 := complex(wo*wo, 0)
	for i, x := range roots {
		d := cmplx.Sqrt(x*x - wo2)
		r1 := x + d
		if r2 := x - d; cmplx.Abs(r2) > cmplx.Abs(r1) {
			r1 = r2
		}
		out[i] = r1
		out[len(roots)+i] = wo2 / r1
	}
	return out
}

// negProdRatio returns Re(prod(-z)/prod(-p)).
func negProdRatio(zeros, poles []complex128) float64 {
	num := complex(1, 0)
	for _, z := range zeros {
		num *= -z
	}
	den := complex(1, 0)
	for _, p := range poles {
		den *= -p
	}
	return real(num / den)
}
