package testutil

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"
)

// MaxRootError matches every wanted root with the nearest unused root of
// got and returns the largest distance, relative to max(1, |want|).
// Returns an error if the counts differ.
func MaxRootError(got, want []complex128) (float64, error) {
	if len(got) != len(want) {
		return 0, fmt.Errorf("root count mismatch: %d vs %d", len(got), len(want))
	}

	used := make([]bool, len(got))
	worst := 0.0
	for _, w := range want {
		best, bestDist := -1, math.Inf(1)
		for j, g := range got {
			if used[j] {
				continue
			}
			if d := cmplx.Abs(g - w); d < bestDist {
				best, bestDist = j, d
			}
		}
		if best < 0 {
			return math.Inf(1), nil
		}
		used[best] = true
		worst = math.Max(worst, bestDist/math.Max(1, cmplx.Abs(w)))
	}
	return worst, nil
}

// RequireRootsNear fails t unless got and want hold the same roots as a
// multiset within the relative tolerance eps.
func RequireRootsNear(t *testing.T, got, want []complex128, eps float64) {
	t.Helper()
	d, err := MaxRootError(got, want)
	if err != nil {
		t.Fatal(err)
	}
	if d > eps {
		t.Fatalf("roots differ by %v > eps %v\n got: %v\nwant: %v", d, eps, got, want)
	}
}

// RequireConjugateClosed fails t if a non-real root has no conjugate
// partner within eps. Roots with |imag| <= eps count as real.
func RequireConjugateClosed(t *testing.T, roots []complex128, eps float64) {
	t.Helper()
	used := make([]bool, len(roots))
	for i, r := range roots {
		if used[i] || math.Abs(imag(r)) <= eps {
			continue
		}
		found := false
		for j := range roots {
			if j == i || used[j] {
				continue
			}
			if cmplx.Abs(roots[j]-cmplx.Conj(r)) <= eps {
				used[i], used[j], found = true, true, true
				break
			}
		}
		if !found {
			t.Fatalf("root %v has no conjugate partner in %v", r, roots)
		}
	}
}
