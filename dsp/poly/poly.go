package poly

import (
	"math"
	"math/cmplx"
)

// Poly is a polynomial with complex coefficients in descending power order.
type Poly []complex128

// DefaultRealTol is the relative tolerance below which imaginary parts are
// treated as round-off when converting to real coefficients.
const DefaultRealTol = 1e-9

// FromReal converts real coefficients to a Poly.
func FromReal(c []float64) Poly {
	out := make(Poly, len(c))
	for i, v := range c {
		out[i] = complex(v, 0)
	}
	return out
}

// Degree returns the polynomial degree. The zero polynomial has degree -1.
func (p Poly) Degree() int {
	return len(p) - 1
}

// Clone returns a copy of p.
func (p Poly) Clone() Poly {
	return append(Poly(nil), p...)
}

// Trim removes leading zero coefficients. At least one coefficient is kept
// for a non-empty input.
func (p Poly) Trim() Poly {
	i := 0
	for i < len(p)-1 && p[i] == 0 {
		i++
	}
	return p[i:].Clone()
}

// Mul returns the product p*q (the convolution of the coefficient slices).
func Mul(p, q Poly) Poly {
	if len(p) == 0 || len(q) == 0 {
		return nil
	}

	out := make(Poly, len(p)+len(q)-1)
	for i, a := range p {
		if a == 0 {
			continue
		}
		for j, b := range q {
			out[i+j] += a * b
		}
	}
	return out
}

// Scale returns k*p.
func Scale(p Poly, k complex128) Poly {
	out := make(Poly, len(p))
	for i, c := range p {
		out[i] = k * c
	}
	return out
}

// Eval evaluates p at x using Horner's method.
func Eval(p Poly, x complex128) complex128 {
	if len(p) == 0 {
		return 0
	}

	v := p[0]
	for i := 1; i < len(p); i++ {
		v = v*x + p[i]
	}
	return v
}

// EvalDeriv evaluates p and its first derivative at x in a single Horner
// pass.
func EvalDeriv(p Poly, x complex128) (complex128, complex128) {
	if len(p) == 0 {
		return 0, 0
	}

	v := p[0]
	var d complex128
	for i := 1; i < len(p); i++ {
		d = d*x + v
		v = v*x + p[i]
	}
	return v, d
}

// Deriv returns the derivative polynomial p'.
func Deriv(p Poly) Poly {
	n := len(p) - 1
	if n <= 0 {
		return Poly{0}
	}

	out := make(Poly, n)
	for i := range n {
		out[i] = p[i] * complex(float64(n-i), 0)
	}
	return out
}

// FromRoots returns the monic polynomial whose roots are roots, built by
// multiplying the (x - r) factors one at a time. An empty root set yields
// the constant polynomial 1.
func FromRoots(roots []complex128) Poly {
	out := make(Poly, 1, len(roots)+1)
	out[0] = 1
	for _, r := range roots {
		out = append(out, 0)
		for i := len(out) - 1; i > 0; i-- {
			out[i] -= r * out[i-1]
		}
	}
	return out
}

// Real returns the real parts of p. Imaginary parts are clipped to zero;
// ok is false when any of them exceeds tol relative to the largest
// coefficient magnitude, which happens when the roots p was built from were
// not closed under conjugation.
func Real(p Poly, tol float64) ([]float64, bool) {
	if tol <= 0 {
		tol = DefaultRealTol
	}

	scale := 0.0
	for _, c := range p {
		scale = math.Max(scale, cmplx.Abs(c))
	}
	if scale == 0 {
		scale = 1
	}

	ok := true
	out := make([]float64, len(p))
	for i, c := range p {
		if math.Abs(imag(c)) > tol*scale {
			ok = false
		}
		out[i] = real(c)
	}
	return out, ok
}

// AbsSum returns the sum of the coefficient magnitudes, a bound on |p(x)|
// for |x| <= 1 and the scale of its evaluation round-off.
func AbsSum(p Poly) float64 {
	s := 0.0
	for _, c := range p {
		s += cmplx.Abs(c)
	}
	return s
}
