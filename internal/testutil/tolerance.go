package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if the slices differ in length or any pair
// is more than eps apart. A NaN matches only another NaN, so undefined
// response points must line up.
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		gn, wn := math.IsNaN(got[i]), math.IsNaN(want[i])
		if gn || wn {
			if gn != wn {
				t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
			}
			continue
		}
		if d := math.Abs(got[i] - want[i]); d > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], d, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t testing.TB, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxDeviation returns the largest |a[i]-b[i]| and its index over the points
// where magDB[i] >= floorDB. Pairs containing a NaN are skipped. index is -1
// when no point qualifies.
//
// Stopband points are excluded because the evaluators only agree to a
// relative precision there.
func MaxDeviation(a, b, magDB []float64, floorDB float64) (maxDiff float64, index int, err error) {
	if len(a) != len(b) || len(a) != len(magDB) {
		return 0, -1, fmt.Errorf("length mismatch: %d, %d, %d", len(a), len(b), len(magDB))
	}
	index = -1
	for i := range a {
		if magDB[i] < floorDB || math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			continue
		}
		if d := math.Abs(a[i] - b[i]); index < 0 || d > maxDiff {
			maxDiff, index = d, i
		}
	}
	return maxDiff, index, nil
}
