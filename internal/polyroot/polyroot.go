// Package polyroot finds the roots of polynomials with real or complex
// coefficients.
//
// [Roots] is the general entry point: real-coefficient polynomials go
// through the eigenvalues of their companion matrix, complex ones through
// Durand-Kerner iteration, and every root is then polished with Newton
// steps on the original polynomial. All iteration is bounded. When the
// result does not meet the residual tolerance the best available roots are
// returned together with [ErrNotConverged].
package polyroot

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-filterscope/dsp/core"
	"github.com/cwbudde/algo-filterscope/dsp/poly"
)

var (
	// ErrDegeneratePolynomial is returned for the zero polynomial or
	// non-finite coefficients. No roots are returned with it.
	ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

	// ErrNotConverged reports that the returned roots are a best-effort
	// approximation. The roots are still usable for display.
	ErrNotConverged = errors.New("polyroot: root finding did not converge")
)

const (
	// MaxDegree bounds the polynomial degree accepted by Roots.
	MaxDegree = 64

	dkMaxIter     = 500
	dkTol         = 1e-12
	polishMaxIter = 8

	// residualTol is the accepted backward error |p(r)| / sum(|c_i|*|r|^i).
	residualTol = 1e-9
)

// Roots returns all roots of p (descending power order) with multiplicity.
//
// Leading zero coefficients are ignored and trailing zero coefficients are
// returned as exact roots at the origin. For real-coefficient input the
// result is made exactly conjugate-symmetric and sorted so that each complex
// root with positive imaginary part is followed by its conjugate; real roots
// come last in ascending order.
func Roots(p poly.Poly) ([]complex128, error) {
	p = p.Trim()
	if len(p) == 0 || (len(p) == 1 && p[0] == 0) {
		return nil, ErrDegeneratePolynomial
	}
	for _, c := range p {
		if cmplx.IsNaN(c) || cmplx.IsInf(c) {
			return nil, ErrDegeneratePolynomial
		}
	}
	if p.Degree() > MaxDegree {
		return nil, errors.Wrapf(ErrDegeneratePolynomial, "degree %d exceeds %d", p.Degree(), MaxDegree)
	}

	zeroRoots := 0
	for len(p) > 1 && p[len(p)-1] == 0 {
		p = p[:len(p)-1]
		zeroRoots++
	}

	_, isReal := poly.Real(p, 1e-14)

	var (
		roots []complex128
		err   error
	)
	switch {
	case len(p) == 1:
	case len(p) == 2:
		roots = []complex128{-p[1] / p[0]}
	case isReal:
		roots, err = companionRoots(p)
		if err != nil {
			roots, err = DurandKerner(p)
		}
	default:
		roots, err = DurandKerner(p)
	}
	if roots == nil && err != nil {
		return nil, err
	}

	for i := range roots {
		roots[i] = polish(p, roots[i])
	}

	if isReal {
		roots = SortConjugates(roots, ConjugateTol)
	}
	for range zeroRoots {
		roots = append(roots, 0)
	}

	if err == nil && !withinResidual(p, roots[:len(roots)-zeroRoots]) {
		err = ErrNotConverged
	}
	return roots, err
}

// companionRoots computes the eigenvalues of the companion matrix of p.
func companionRoots(p poly.Poly) ([]complex128, error) {
	n := p.Degree()
	lead := real(p[0])
	data := make([]float64, n*n)
	for j := range n {
		data[j] = -real(p[j+1]) / lead
	}
	for i := 1; i < n; i++ {
		data[i*n+i-1] = 1
	}

	var eig mat.Eigen
	if ok := eig.Factorize(mat.NewDense(n, n, data), mat.EigenNone); !ok {
		return nil, ErrNotConverged
	}
	return eig.Values(nil), nil
}

// polish refines r with Newton steps on p. The refined root is kept only if
// it does not increase the residual, so clustered roots are never pushed
// away from their cluster.
func polish(p poly.Poly, r complex128) complex128 {
	best := r
	bestRes := cmplx.Abs(poly.Eval(p, r))
	for range polishMaxIter {
		v, d := poly.EvalDeriv(p, r)
		if v == 0 || d == 0 {
			break
		}
		step := v / d
		r -= step
		if res := cmplx.Abs(poly.Eval(p, r)); res <= bestRes {
			best, bestRes = r, res
		}
		if cmplx.Abs(step) <= 4*epsilon*math.Max(1, cmplx.Abs(r)) {
			break
		}
	}
	return best
}

const epsilon = 2.220446049250313e-16

func withinResidual(p poly.Poly, roots []complex128) bool {
	for _, r := range roots {
		if cmplx.IsNaN(r) || cmplx.IsInf(r) {
			return false
		}
		ar := cmplx.Abs(r)
		scale, pow := 0.0, 1.0
		for i := len(p) - 1; i >= 0; i-- {
			scale += cmplx.Abs(p[i]) * pow
			pow *= ar
		}
		if cmplx.Abs(poly.Eval(p, r)) > residualTol*scale {
			return false
		}
	}
	return true
}

// DurandKerner finds all roots of a polynomial using the Durand-Kerner
// (Weierstrass) simultaneous iteration method. Coefficients are in descending
// power order: coeff[0]*z^n + coeff[1]*z^(n-1) + ... + coeff[n].
//
// The iteration count is capped. If the corrections have not settled by
// then, the current approximation is returned with ErrNotConverged.
//
func DurandKerner(coeff poly.Poly) ([]complex128, error) {
	return durandKerner(coeff, dkMaxIter)
}

//nolint:cyclop
func durandKerner(coeff poly.Poly, maxIter int) ([]complex128, error) {
	if len(coeff) < 2 {
		return nil, ErrDegeneratePolynomial
	}

	lead := coeff[0]
	if lead == 0 {
		return nil, ErrDegeneratePolynomial
	}

	n := len(coeff) - 1
	norm := poly.Scale(coeff, 1/lead)

	radius := 0.0
	for i := 1; i <= n; i++ {
		if r := cmplx.Abs(norm[i]); r > radius {
			radius = r
		}
	}

	if radius < 1 {
		radius = 1
	}

	roots := make([]complex128, n)
	for i := range n {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.3
		r := radius * (1 + 0.1*float64(i)/float64(n))
		roots[i] = cmplx.Rect(r, angle)
	}

	for range maxIter {
		maxDelta := 0.0

		for i := range n {
			den := complex(1, 0)

			for j := range n {
				if i == j {
					continue
				}

				den *= roots[i] - roots[j]
			}

			if den == 0 {
				roots[i] += complex(1e-10, 1e-10)
				continue
			}

			delta := poly.Eval(norm, roots[i]) / den

			roots[i] -= delta
			if d := cmplx.Abs(delta); d > maxDelta {
				maxDelta = d
			}
		}

		if maxDelta < dkTol {
			return roots, nil
		}
	}

	if withinResidual(norm, roots) {
		return roots, nil
	}

	return roots, ErrNotConverged
}

// ConjugateTol is the relative tolerance for conjugate pair matching.
const ConjugateTol = 1e-7

// IsConjugate checks whether a and b are complex conjugates within tolerance.
func IsConjugate(a, b complex128, tol float64) bool {
	return core.NearlyEqual(real(a), real(b), tol) && core.NearlyEqual(imag(a), -imag(b), tol)
}

// SortConjugates returns roots reordered into conjugate pairs. Roots whose
// imaginary part is within tol of zero are snapped onto the real axis; each
// remaining root is paired with its closest conjugate partner and the pair
// is made exactly symmetric by averaging. Pairs come first (positive
// imaginary part leading, ordered by real part), then real roots in
// ascending order. A root without a partner is kept as is after the pairs.
func SortConjugates(roots []complex128, tol float64) []complex128 {
	var (
		pairs   [][2]complex128
		reals   []complex128
		singles []complex128
	)

	used := make([]bool, len(roots))
	for i, r := range roots {
		if used[i] {
			continue
		}
		used[i] = true

		if math.Abs(imag(r)) <= tol*math.Max(1, cmplx.Abs(r)) {
			reals = append(reals, complex(real(r), 0))
			continue
		}

		target := cmplx.Conj(r)
		best, bestDist := -1, math.MaxFloat64
		for j := i + 1; j < len(roots); j++ {
			if used[j] {
				continue
			}
			if d := cmplx.Abs(roots[j] - target); d < bestDist {
				best, bestDist = j, d
			}
		}

		if best == -1 || !IsConjugate(r, roots[best], math.Sqrt(tol)) {
			singles = append(singles, r)
			continue
		}
		used[best] = true

		re := (real(r) + real(roots[best])) / 2
		im := math.Abs(imag(r)-imag(roots[best])) / 2
		pairs = append(pairs, [2]complex128{complex(re, im), complex(re, -im)})
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return real(pairs[i][0]) < real(pairs[j][0])
	})
	sort.SliceStable(reals, func(i, j int) bool {
		return real(reals[i]) < real(reals[j])
	})

	out := make([]complex128, 0, len(roots))
	for _, p := range pairs {
		out = append(out, p[0], p[1])
	}
	out = append(out, reals...)
	return append(out, singles...)
}
