package poly

import (
	"math"
	"math/cmplx"
	"testing"
)

func almostEqualC(a, b complex128, tol float64) bool {
	return cmplx.Abs(a-b) <= tol
}

func TestMul(t *testing.T) {
	// (x + 1)(x - 2) = x^2 - x - 2
	got := Mul(Poly{1, 1}, Poly{1, -2})
	want := Poly{1, -1, -2}
	if len(got) != len(want) {
		t.Fatalf("len=%d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("coeff %d: got %v, want %v", i, got[i], want[i])
		}
	}

	if Mul(nil, Poly{1}) != nil {
		t.Fatal("expected nil product with the zero polynomial")
	}
}

func TestMulComplex(t *testing.T) {
	// (x - j)(x + j) = x^2 + 1
	got := Mul(Poly{1, -1i}, Poly{1, 1i})
	want := Poly{1, 0, 1}
	for i := range want {
		if !almostEqualC(got[i], want[i], 1e-15) {
			t.Fatalf("coeff %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestEval(t *testing.T) {
	// p(x) = 2x^3 - 3x + 5, p(2) = 16 - 6 + 5 = 15
	p := Poly{2, 0, -3, 5}
	if got := Eval(p, 2); got != 15 {
		t.Fatalf("Eval = %v, want 15", got)
	}
	if got := Eval(nil, 3); got != 0 {
		t.Fatalf("Eval(zero) = %v, want 0", got)
	}
	// p(j) = -2j - 3j + 5 = 5 - 5j
	if got := Eval(p, 1i); !almostEqualC(got, 5-5i, 1e-15) {
		t.Fatalf("Eval(j) = %v, want 5-5j", got)
	}
}

func TestEvalDerivMatchesDeriv(t *testing.T) {
	p := Poly{1 + 2i, -3, 0.5i, 4, -1}
	dp := Deriv(p)
	for _, x := range []complex128{0, 1, -0.5 + 0.25i, 2i, cmplx.Exp(0.3i)} {
		v, d := EvalDeriv(p, x)
		if !almostEqualC(v, Eval(p, x), 1e-12) {
			t.Fatalf("x=%v: value %v, want %v", x, v, Eval(p, x))
		}
		if !almostEqualC(d, Eval(dp, x), 1e-12) {
			t.Fatalf("x=%v: derivative %v, want %v", x, d, Eval(dp, x))
		}
	}
}

func TestDerivConstant(t *testing.T) {
	d := Deriv(Poly{7})
	if len(d) != 1 || d[0] != 0 {
		t.Fatalf("Deriv(const) = %v, want [0]", d)
	}
}

func TestFromRoots(t *testing.T) {
	// roots 1, 2, 3 -> x^3 - 6x^2 + 11x - 6
	got := FromRoots([]complex128{1, 2, 3})
	want := Poly{1, -6, 11, -6}
	for i := range want {
		if !almostEqualC(got[i], want[i], 1e-12) {
			t.Fatalf("coeff %d: got %v, want %v", i, got[i], want[i])
		}
	}

	if p := FromRoots(nil); len(p) != 1 || p[0] != 1 {
		t.Fatalf("FromRoots(nil) = %v, want [1]", p)
	}
}

func TestFromRootsVanishesAtRoots(t *testing.T) {
	roots := []complex128{
		complex(-0.3, 0.8), complex(-0.3, -0.8),
		complex(0.9, 0.1), complex(0.9, -0.1),
		-1, -1, 0.25,
	}
	p := FromRoots(roots)
	if p.Degree() != len(roots) {
		t.Fatalf("degree=%d, want %d", p.Degree(), len(roots))
	}
	for i, r := range roots {
		if v := Eval(p, r); cmplx.Abs(v) > 1e-12 {
			t.Fatalf("root %d: p(%v) = %v, want 0", i, r, v)
		}
	}
}

func TestRealConjugateClosed(t *testing.T) {
	p := FromRoots([]complex128{complex(0.5, 0.5), complex(0.5, -0.5), -2})
	c, ok := Real(p, 0)
	if !ok {
		t.Fatalf("expected real coefficients, got %v", p)
	}
	// (x^2 - x + 0.5)(x + 2) = x^3 + x^2 - 1.5x + 1
	want := []float64{1, 1, -1.5, 1}
	for i := range want {
		if math.Abs(c[i]-want[i]) > 1e-12 {
			t.Fatalf("coeff %d: got %v, want %v", i, c[i], want[i])
		}
	}
}

func TestRealRejectsComplexCoefficients(t *testing.T) {
	p := FromRoots([]complex128{1i})
	c, ok := Real(p, 0)
	if ok {
		t.Fatal("expected ok=false for a non-conjugate root set")
	}
	if c[1] != 0 {
		t.Fatalf("imaginary part should be clipped, got real part %v", c[1])
	}
}

func TestTrim(t *testing.T) {
	got := Poly{0, 0, 1, 2}.Trim()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("Trim = %v, want [1 2]", got)
	}
	if z := (Poly{0, 0}).Trim(); len(z) != 1 {
		t.Fatalf("Trim(zeros) = %v, want one coefficient", z)
	}
}

func TestScaleAndAbsSum(t *testing.T) {
	p := Scale(Poly{1, -2, 3i}, 2)
	if p[0] != 2 || p[1] != -4 || p[2] != 6i {
		t.Fatalf("Scale = %v", p)
	}
	if got := AbsSum(p); math.Abs(got-12) > 1e-15 {
		t.Fatalf("AbsSum = %v, want 12", got)
	}
}

func TestFromReal(t *testing.T) {
	p := FromReal([]float64{1, -0.5})
	if p[0] != 1 || p[1] != -0.5 {
		t.Fatalf("FromReal = %v", p)
	}
}
