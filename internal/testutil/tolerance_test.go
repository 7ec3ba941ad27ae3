package testutil

import (
	"math"
	"testing"
)

func TestMaxDeviation(t *testing.T) {
	a := []float64{1, 2, 3, 50}
	b := []float64{1, 2.1, 3, 0}
	mag := []float64{0, -3, -20, -150}

	d, i, err := MaxDeviation(a, b, mag, -100)
	if err != nil {
		t.Fatalf("MaxDeviation error: %v", err)
	}
	if i != 1 || math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxDeviation = %v at %d, want 0.1 at 1", d, i)
	}
}

func TestMaxDeviationSkipsNaN(t *testing.T) {
	nan := math.NaN()
	d, i, err := MaxDeviation([]float64{nan, 1}, []float64{0, 1}, []float64{0, 0}, -100)
	if err != nil {
		t.Fatalf("MaxDeviation error: %v", err)
	}
	if i != 1 || d != 0 {
		t.Fatalf("MaxDeviation = %v at %d, want 0 at 1", d, i)
	}

	_, i, _ = MaxDeviation([]float64{1}, []float64{2}, []float64{-200}, -100)
	if i != -1 {
		t.Fatalf("index = %d with no qualifying point, want -1", i)
	}
}

func TestMaxDeviationLengthMismatch(t *testing.T) {
	if _, _, err := MaxDeviation([]float64{1}, []float64{1, 2}, []float64{0}, 0); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestRequireSliceNearlyEqual_NaNPositions(t *testing.T) {
	nan := math.NaN()
	RequireSliceNearlyEqual(t, []float64{nan, 1}, []float64{nan, 1 + 1e-12}, 1e-9)
}
