package spectrum

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/pkg/errors"
)

func TestMagnitudePhase(t *testing.T) {
	bins := []complex128{3 + 4i, -1 - 1i, 0}

	mag := Magnitude(bins)
	if len(mag) != len(bins) {
		t.Fatalf("Magnitude length mismatch: got=%d want=%d", len(mag), len(bins))
	}

	if math.Abs(mag[0]-5) > 1e-12 || math.Abs(mag[1]-math.Sqrt2) > 1e-12 || mag[2] != 0 {
		t.Fatalf("Magnitude=%v", mag)
	}

	phase := Phase(bins)
	if math.Abs(phase[0]-math.Atan2(4, 3)) > 1e-12 {
		t.Fatalf("Phase[0]=%f mismatch", phase[0])
	}
	if math.Abs(phase[1]+3*math.Pi/4) > 1e-12 {
		t.Fatalf("Phase[1]=%f mismatch", phase[1])
	}

	if Magnitude(nil) != nil || Phase(nil) != nil {
		t.Fatal("nil input must give nil output")
	}
}

func TestMagnitudeFromParts(t *testing.T) {
	re := []float64{3, -1, 0}
	im := []float64{4, -1, 0}
	dst := make([]float64, 3)
	MagnitudeFromParts(dst, re, im)

	if math.Abs(dst[0]-5) > 1e-12 {
		t.Fatalf("MagnitudeFromParts[0]=%f want=5", dst[0])
	}

	if math.Abs(dst[1]-math.Sqrt(2)) > 1e-12 {
		t.Fatalf("MagnitudeFromParts[1]=%f want=%f", dst[1], math.Sqrt(2))
	}

	if dst[2] != 0 {
		t.Fatalf("MagnitudeFromParts[2]=%f want=0", dst[2])
	}
}

func TestMagnitudeDB(t *testing.T) {
	db, floored := MagnitudeDB([]complex128{1, 0.1i, 0, 1e-30}, -400)
	want := []float64{0, -20, -400, -400}
	for i := range want {
		if math.Abs(db[i]-want[i]) > 1e-12 {
			t.Fatalf("MagnitudeDB=%v want=%v", db, want)
		}
	}
	if floored != 2 {
		t.Fatalf("floored=%d want=2", floored)
	}
}

func TestDegrees(t *testing.T) {
	got := Degrees([]float64{math.Pi, -math.Pi / 2, 0})
	want := []float64{180, -90, 0}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("Degrees=%v want=%v", got, want)
		}
	}
}

func TestUnwrapPhase(t *testing.T) {
	in := []float64{2.8, -2.7, -2.6}

	out := UnwrapPhase(in)
	if len(out) != len(in) {
		t.Fatalf("unwrap length mismatch")
	}

	if out[1] <= out[0] {
		t.Fatalf("expected increasing unwrapped phase: %v", out)
	}

	if math.Abs((out[1]-out[0])-(2*math.Pi-5.5)) > 1e-12 {
		t.Fatalf("unexpected unwrap delta: %f", out[1]-out[0])
	}
}

func TestUnwrapPhase_LinearPhaseRecovered(t *testing.T) {
	const delay = 12.5
	n := 512
	want := make([]float64, n)
	wrapped := make([]float64, n)
	for k := range n {
		w := math.Pi * float64(k) / float64(n)
		want[k] = -w * delay
		wrapped[k] = cmplx.Phase(cmplx.Exp(complex(0, want[k])))
	}

	got := UnwrapPhase(wrapped)
	for k := range got {
		if math.Abs(got[k]-want[k]) > 1e-9 {
			t.Fatalf("k=%d: got %v want %v", k, got[k], want[k])
		}
	}
}

func TestUnwrapPhase_MultiTurnJumpAndNaN(t *testing.T) {
	out := UnwrapPhase([]float64{0, 7, math.NaN(), 7.1})
	if math.Abs(out[1]-(7-2*math.Pi)) > 1e-12 {
		t.Fatalf("multi-turn jump not reduced: %v", out)
	}
	if !math.IsNaN(out[2]) {
		t.Fatalf("NaN not passed through: %v", out)
	}
	if math.Abs(out[3]-(7.1-2*math.Pi)) > 1e-12 {
		t.Fatalf("correction lost across NaN: %v", out)
	}
}

func TestGroupDelayFinite_QuadraticPhase(t *testing.T) {
	// phase = -(a*w + b*w^2) on a log grid: gd = a + 2*b*w exactly in the interior
	const a, b = 3.0, 0.75
	n := 64
	omega := make([]float64, n)
	phase := make([]float64, n)
	for i := range n {
		omega[i] = 1e-3 * math.Pow(1000, float64(i)/float64(n))
		phase[i] = -(a*omega[i] + b*omega[i]*omega[i])
	}

	gd, err := GroupDelayFinite(phase, omega)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < n-1; i++ {
		if want := a + 2*b*omega[i]; math.Abs(gd[i]-want) > 1e-9 {
			t.Fatalf("gd[%d]=%v want=%v", i, gd[i], want)
		}
	}
}

func TestGroupDelayFinite_LinearPhaseEndpoints(t *testing.T) {
	omega := []float64{0.1, 0.2, 0.4, 0.8}
	phase := make([]float64, len(omega))
	for i, w := range omega {
		phase[i] = -5 * w
	}
	gd, err := GroupDelayFinite(phase, omega)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range gd {
		if math.Abs(v-5) > 1e-12 {
			t.Fatalf("gd[%d]=%v want=5", i, v)
		}
	}
}

func TestGroupDelayFinite_Errors(t *testing.T) {
	cases := []struct {
		phase, omega []float64
	}{
		{[]float64{1}, []float64{1}},
		{[]float64{1, 2}, []float64{1}},
		{[]float64{1, 2}, []float64{1, 1}},
	}
	for _, tc := range cases {
		if _, err := GroupDelayFinite(tc.phase, tc.omega); !errors.Is(err, ErrGrid) {
			t.Fatalf("GroupDelayFinite(%v, %v): expected ErrGrid, got %v", tc.phase, tc.omega, err)
		}
	}
}
