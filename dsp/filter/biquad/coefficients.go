package biquad

// Coefficients holds the transfer function of one second-order section,
//
//	H(z) = (B0 + B1*z^-1 + B2*z^-2) / (1 + A1*z^-1 + A2*z^-2).
//
// a0 is normalized to 1 and not stored. First-order sections have
// B2 = A2 = 0.
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Numerator returns [B0 B1 B2].
func (c *Coefficients) Numerator() []float64 {
	return []float64{c.B0, c.B1, c.B2}
}

// Denominator returns [1 A1 A2].
func (c *Coefficients) Denominator() []float64 {
	return []float64{1, c.A1, c.A2}
}
