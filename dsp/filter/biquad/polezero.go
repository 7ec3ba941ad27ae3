package biquad

import "math/cmplx"

// Poles returns the roots of z^2 + A1*z + A2. A first-order section has one
// pole at the origin.
func (c *Coefficients) Poles() [2]complex128 {
	return quadraticRoots(1, c.A1, c.A2)
}

// Zeros returns the roots of B0*z^2 + B1*z + B2. When B0 is zero the
// numerator is delayed and the second entry is 0.
func (c *Coefficients) Zeros() [2]complex128 {
	return quadraticRoots(c.B0, c.B1, c.B2)
}

// Roots returns the finite zeros and poles of a cascade in the z-plane,
// section by section. Roots at the origin that a section's numerator and
// denominator share cancel, so a first-order section contributes one pole.
func Roots(sections []Coefficients) (zeros, poles []complex128) {
	for i := range sections {
		c := &sections[i]
		z := finiteRoots(c.B0, c.B1, c.B2)
		p := finiteRoots(1, c.A1, c.A2)
		z, p = cancelOrigin(z, p)
		zeros = append(zeros, z...)
		poles = append(poles, p...)
	}
	return zeros, poles
}

func finiteRoots(a, b, c float64) []complex128 {
	switch {
	case a != 0 && c == 0:
		return []complex128{complex(-b/a, 0), 0}
	case a != 0:
		r := quadraticRoots(a, b, c)
		return r[:]
	case b != 0:
		return []complex128{complex(-c/b, 0)}
	default:
		return nil
	}
}

func cancelOrigin(zeros, poles []complex128) ([]complex128, []complex128) {
	for {
		zi, pi := indexOfZero(zeros), indexOfZero(poles)
		if zi < 0 || pi < 0 {
			return zeros, poles
		}
		zeros = append(zeros[:zi], zeros[zi+1:]...)
		poles = append(poles[:pi], poles[pi+1:]...)
	}
}

func indexOfZero(roots []complex128) int {
	for i, r := range roots {
		if r == 0 {
			return i
		}
	}
	return -1
}

func quadraticRoots(a, b, c float64) [2]complex128 {
	if a == 0 {
		if b == 0 {
			return [2]complex128{}
		}
		return [2]complex128{complex(-c/b, 0), 0}
	}

	sqrtD := cmplx.Sqrt(complex(b*b-4*a*c, 0))
	den := complex(2*a, 0)
	return [2]complex128{
		(-complex(b, 0) + sqrtD) / den,
		(-complex(b, 0) - sqrtD) / den,
	}
}
