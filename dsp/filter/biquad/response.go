package biquad

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-filterscope/dsp/core"
)

// ResponseAt evaluates H(e^jw) at w radians per sample.
func (c *Coefficients) ResponseAt(w float64) complex128 {
	z1 := cmplx.Rect(1, -w)
	z2 := z1 * z1
	num := complex(c.B0, 0) + complex(c.B1, 0)*z1 + complex(c.B2, 0)*z2
	den := 1 + complex(c.A1, 0)*z1 + complex(c.A2, 0)*z2
	return num / den
}

// Response evaluates H at freqHz for the given sample rate.
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	return c.ResponseAt(2 * math.Pi * freqHz / sampleRate)
}

// MagnitudeSquared returns |H(f)|^2 in closed form, without complex
// arithmetic.
func (c *Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	cw := 2 * math.Cos(2*math.Pi*freqHz/sampleRate)
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	num := (b0-b2)*(b0-b2) + b1*b1 + (b1*(b0+b2)+b0*b2*cw)*cw
	den := (1-a2)*(1-a2) + a1*a1 + (a1*(a2+1)+cw*a2)*cw
	return num / den
}

// MagnitudeDB returns 10*log10(|H(f)|^2); -Inf on a zero.
func (c *Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(freqHz, sampleRate))
}

// Phase returns arg H(f) in radians, wrapped to [-pi, pi].
func (c *Coefficients) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

// GroupDelayAt returns -d(arg H)/dw in samples at w radians per sample. It
// is NaN where the numerator or denominator vanishes.
func (c *Coefficients) GroupDelayAt(w float64) float64 {
	return delayTerm([3]float64{c.B0, c.B1, c.B2}, w) - delayTerm([3]float64{1, c.A1, c.A2}, w)
}

// delayTerm is Re(sum k*p[k]*z^-k / sum p[k]*z^-k) on the unit circle.
func delayTerm(p [3]float64, w float64) float64 {
	var s, ks complex128
	for k, v := range p {
		zk := cmplx.Rect(v, -float64(k)*w)
		s += zk
		ks += complex(float64(k), 0) * zk
	}
	if s == 0 {
		return math.NaN()
	}
	return real(ks / s)
}

// CascadeResponse returns the product of the section responses at freqHz.
func CascadeResponse(sections []Coefficients, freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	h := complex(1, 0)
	for i := range sections {
		h *= sections[i].ResponseAt(w)
	}
	return h
}

// CascadeMagnitudeDB returns the cascaded magnitude response in dB.
func CascadeMagnitudeDB(sections []Coefficients, freqHz, sampleRate float64) float64 {
	return core.LinearToDB(cmplx.Abs(CascadeResponse(sections, freqHz, sampleRate)))
}

// CascadeGroupDelay returns the group delay of the cascade in samples, the
// sum of the section delays.
func CascadeGroupDelay(sections []Coefficients, freqHz, sampleRate float64) float64 {
	w := 2 * math.Pi * freqHz / sampleRate
	var gd float64
	for i := range sections {
		gd += sections[i].GroupDelayAt(w)
	}
	return gd
}
