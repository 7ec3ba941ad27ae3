package response

import (
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Uniform evaluates B/A at the n frequencies k*sampleRate/(2n) with four
// zero-padded FFTs of length 2n: of b, a and of the index-weighted
// sequences k*b[k] and k*a[k], which give the group delay as
//
//	gd = Re(FFT(k*b)/FFT(b)) - Re(FFT(k*a)/FFT(a)).
//
// n must be a power of two with 2n >= max(len(b), len(a)).
func Uniform(b, a []float64, sampleRate float64, n int) (Curve, error) {
	if err := validateCoefficients(b, a); err != nil {
		return Curve{}, err
	}
	if n < 1 || n&(n-1) != 0 {
		return Curve{}, errors.Wrapf(ErrInvalidGrid, "point count must be a power of two: %d", n)
	}
	size := 2 * n
	if size < len(b) || size < len(a) {
		return Curve{}, errors.Wrapf(ErrInvalidGrid, "%d points too few for %d coefficients", n, max(len(b), len(a)))
	}
	freqs, err := LinearGrid(sampleRate, n)
	if err != nil {
		return Curve{}, err
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return Curve{}, errors.Wrap(err, "fft plan")
	}

	transform := func(coeffs []float64, weighted bool) ([]complex128, error) {
		src := make([]complex128, size)
		for k, c := range coeffs {
			if weighted {
				c *= float64(k)
			}
			src[k] = complex(c, 0)
		}
		dst := make([]complex128, size)
		if err := plan.Forward(dst, src); err != nil {
			return nil, errors.Wrap(err, "fft")
		}
		return dst, nil
	}

	var spectra [4][]complex128
	for i, in := range []struct {
		coeffs   []float64
		weighted bool
	}{{b, false}, {a, false}, {b, true}, {a, true}} {
		if spectra[i], err = transform(in.coeffs, in.weighted); err != nil {
			return Curve{}, err
		}
	}
	bs, as, bw, aw := spectra[0], spectra[1], spectra[2], spectra[3]

	bTol := degenerateScale * floats.Norm(b, 1)
	aTol := degenerateScale * floats.Norm(a, 1)

	h := make([]complex128, n)
	gd := make([]float64, n)
	for k := range n {
		h[k] = bs[k] / as[k]
		if cmplx.Abs(bs[k]) <= bTol || cmplx.Abs(as[k]) <= aTol {
			gd[k] = math.NaN()
			continue
		}
		gd[k] = real(bw[k]/bs[k]) - real(aw[k]/as[k])
	}
	return newCurve(freqs, h, gd), nil
}
