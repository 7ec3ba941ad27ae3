// Package ellipticmath implements the Jacobi elliptic functions and complete
// elliptic integrals needed by the elliptic (Cauer) prototype.
//
// Functions take the parameter m = k^2 rather than the modulus k. Where the
// complementary parameter 1-m is small, callers pass it directly
// ([KComplement], [JacobiComplement]) so no precision is lost forming 1-m.
//
// All iterations are Landen/AGM recurrences with quadratic convergence and a
// hard iteration cap.
package ellipticmath

import (
	"math"
	"math/cmplx"
)

const (
	maxLanden = 32
	landenTol = 1e-18

	machEp = 1.11022302462515654042e-16

	// ArcImagTol bounds the real part tolerated when inverting sc on the
	// imaginary axis.
	ArcImagTol = 1e-7
)

// Landen returns the descending Landen sequence of moduli k_1, k_2, ... for
// the modulus k, stopping once the modulus underflows the tolerance.
func Landen(k float64) []float64 {
	if k <= 0 || k >= 1 {
		return nil
	}
	return landen(k, math.Sqrt((1-k)*(1+k)))
}

// landen runs the sequence from a modulus and its exact complement, which
// keeps the recurrence accurate for moduli close to 1.
func landen(k, kc float64) []float64 {
	var v []float64
	for i := 0; i < maxLanden && k > landenTol; i++ {
		if kc > 0.5 {
			t := k / (1 + kc)
			k = t * t
		} else {
			k = (1 - kc) / (1 + kc)
		}
		kc = 2 * math.Sqrt(kc) / (1 + kc)
		v = append(v, k)
	}
	return v
}

func landenK(v []float64) float64 {
	prod := 1.0
	for _, x := range v {
		prod *= 1 + x
	}
	return prod * math.Pi / 2
}

// K returns the complete elliptic integral of the first kind K(m).
func K(m float64) float64 {
	switch {
	case math.IsNaN(m) || m < 0 || m > 1:
		return math.NaN()
	case m == 1:
		return math.Inf(1)
	}
	return landenK(landen(math.Sqrt(m), math.Sqrt(1-m)))
}

// KComplement returns K(1-mc) computed from mc without forming 1-mc.
func KComplement(mc float64) float64 {
	switch {
	case math.IsNaN(mc) || mc < 0 || mc > 1:
		return math.NaN()
	case mc == 0:
		return math.Inf(1)
	}
	return landenK(landen(math.Sqrt(1-mc), math.Sqrt(mc)))
}

// Jacobi returns sn(u|m), cn(u|m) and dn(u|m) for real u and 0 <= m <= 1.
func Jacobi(u, m float64) (sn, cn, dn float64) {
	return jacobi(u, m, 1-m)
}

// JacobiComplement returns sn, cn and dn for the parameter 1-mc.
func JacobiComplement(u, mc float64) (sn, cn, dn float64) {
	return jacobi(u, 1-mc, mc)
}

// jacobi evaluates the functions through the descending AGM scale followed
// by the backward amplitude recurrence.
func jacobi(u, m, mc float64) (float64, float64, float64) {
	if math.IsNaN(m) || m < 0 || m > 1 || math.IsNaN(u) {
		nan := math.NaN()
		return nan, nan, nan
	}

	if m < 1e-9 {
		t := math.Sin(u)
		b := math.Cos(u)
		ai := 0.25 * m * (u - t*b)
		return t - ai*b, b + ai*t, 1 - 0.5*m*t*t
	}

	if mc <= 1e-10 {
		ai := 0.25 * mc
		b := math.Cosh(u)
		t := math.Tanh(u)
		phi := 1 / b
		twon := b * math.Sinh(u)
		sn := t + ai*(twon-u)/(b*b)
		ai *= t * phi
		return sn, phi - ai*(twon-u), phi + ai*(twon+u)
	}

	var a, c [maxAGM + 1]float64
	a[0] = 1
	b := math.Sqrt(mc)
	c[0] = math.Sqrt(m)
	twon := 1.0

	i := 0
	for math.Abs(c[i]/a[i]) > machEp && i < maxAGM {
		ai := a[i]
		i++
		c[i] = (ai - b) / 2
		t := math.Sqrt(ai * b)
		a[i] = (ai + b) / 2
		b = t
		twon *= 2
	}

	phi := twon * a[i] * u
	for ; i > 0; i-- {
		t := c[i] * math.Sin(phi) / a[i]
		phi = (math.Asin(t) + phi) / 2
	}

	sn := math.Sin(phi)
	cn := math.Cos(phi)

	// dn^2 = mc + m*cn^2 has no cancellation near m = 1.
	return sn, cn, math.Sqrt(mc + m*cn*cn)
}

const maxAGM = 12

// ArcSC1 returns the real u with sc(u | 1-m) = w, the inverse used to place
// the elliptic poles. It returns NaN when the inversion leaves the imaginary
// axis.
func ArcSC1(w, m float64) float64 {
	z := arcSN(complex(0, w), m)
	if math.Abs(real(z)) > ArcImagTol*math.Max(1, math.Abs(imag(z))) {
		return math.NaN()
	}
	return imag(z)
}

// arcSN inverts sn(z|m) for complex w by ascending through the Landen
// sequence, where the function becomes a sine.
func arcSN(w complex128, m float64) complex128 {
	if math.IsNaN(m) || m < 0 || m > 1 {
		return cmplx.NaN()
	}
	if m == 1 {
		return cmplx.Atanh(w)
	}

	k := math.Sqrt(m)
	ks := append([]float64{k}, landen(k, math.Sqrt(1-m))...)

	wn := w
	for i := range len(ks) - 1 {
		kw := complex(ks[i], 0) * wn
		den := complex(1+ks[i+1], 0) * (1 + cmplx.Sqrt((1-kw)*(1+kw)))
		if den == 0 {
			return cmplx.NaN()
		}
		wn = 2 * wn / den
	}

	return complex(landenK(ks[1:]), 0) * (2 / math.Pi) * cmplx.Asin(wn)
}

// Degree solves the degree equation for an order-n elliptic rational
// function: given the discrimination parameter m1 it returns the
// selectivity parameter m with K'(m)/K(m) = K'(m1)/(n*K(m1)), using the
// nome series.
func Degree(n int, m1 float64) float64 {
	if n <= 0 || !(m1 > 0 && m1 < 1) {
		return math.NaN()
	}

	k1 := K(m1)
	k1p := KComplement(m1)
	if !(k1 > 0) || !(k1p > 0) || math.IsInf(k1, 0) || math.IsInf(k1p, 0) {
		return math.NaN()
	}

	q1 := math.Exp(-math.Pi * k1p / k1)
	q := math.Pow(q1, 1/float64(n))

	const terms = 7
	num := 0.0
	for i := 0; i <= terms; i++ {
		num += math.Pow(q, float64(i*(i+1)))
	}
	den := 1.0
	for i := 1; i <= terms+1; i++ {
		den += 2 * math.Pow(q, float64(i*i))
	}

	return 16 * q * math.Pow(num/den, 4)
}
