// Package poly provides arithmetic on polynomials with complex coefficients.
//
// A [Poly] stores coefficients in descending power order, matching the
// numerator/denominator convention of transfer functions:
//
//	p(x) = p[0]*x^n + p[1]*x^(n-1) + ... + p[n]
//
// The zero-length Poly is the zero polynomial. All functions return new
// slices and never modify their inputs.
package poly
