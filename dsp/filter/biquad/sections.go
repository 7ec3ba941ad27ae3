package biquad

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/pkg/errors"

	"github.com/cwbudde/algo-filterscope/dsp/filter/zpk"
)

// ErrNonCausal is returned by FromZPK when a filter has more zeros than
// poles and cannot be written as a cascade of causal sections.
var ErrNonCausal = errors.New("biquad: more zeros than poles")

const (
	// realRootTol is the largest |imag| treated as a real root.
	realRootTol = 1e-12
	// pairTol is the relative distance within which two roots are conjugates.
	pairTol = 1e-7
)

// FromZPK splits a digital filter into second-order sections.
//
// Conjugate pole pairs each get one section; real poles are paired in
// ascending order. Every pole group takes the nearest remaining zero group
// and the sections are ordered so that poles closest to the unit circle come
// last. The overall gain is folded into the first section's numerator.
// Sections with fewer zeros than poles carry the surplus as a delay in the
// numerator.
func FromZPK(f zpk.ZPK) ([]Coefficients, error) {
	if len(f.Zeros) > len(f.Poles) {
		return nil, errors.Wrapf(ErrNonCausal, "%d zeros, %d poles", len(f.Zeros), len(f.Poles))
	}
	if len(f.Poles) == 0 {
		return []Coefficients{{B0: f.Gain}}, nil
	}

	pGroups, err := groupRoots(f.Poles)
	if err != nil {
		return nil, errors.Wrap(err, "poles")
	}
	zGroups, err := groupRoots(f.Zeros)
	if err != nil {
		return nil, errors.Wrap(err, "zeros")
	}

	// farthest from the unit circle first
	sort.SliceStable(pGroups, func(i, j int) bool {
		return unitCircleDistance(pGroups[i]) > unitCircleDistance(pGroups[j])
	})

	assigned := make([][]complex128, len(pGroups))
	used := make([]bool, len(zGroups))

	// A lone real pole must get a lone zero if there is one, otherwise a
	// zero pair could end up in a first-order section.
	for i, pg := range pGroups {
		if len(pg) != 1 {
			continue
		}
		for j, zg := range zGroups {
			if len(zg) == 1 {
				assigned[i] = zg
				used[j] = true
				break
			}
		}
	}

	// closest to the unit circle picks first
	for i := len(pGroups) - 1; i >= 0; i-- {
		pg := pGroups[i]
		if len(pg) == 1 {
			continue
		}
		best, bestDist := -1, math.Inf(1)
		for j, zg := range zGroups {
			if used[j] {
				continue
			}
			if d := cmplx.Abs(zg[0] - pg[0]); d < bestDist {
				best, bestDist = j, d
			}
		}
		if best >= 0 {
			assigned[i] = zGroups[best]
			used[best] = true
		}
	}

	out := make([]Coefficients, len(pGroups))
	for i, pg := range pGroups {
		out[i] = sectionFromRoots(assigned[i], pg)
	}

	out[0].B0 *= f.Gain
	out[0].B1 *= f.Gain
	out[0].B2 *= f.Gain

	return out, nil
}

// groupRoots splits roots into conjugate pairs, pairs of real roots and at
// most one lone real root, in that order.
func groupRoots(roots []complex128) ([][]complex128, error) {
	if len(roots) == 0 {
		return nil, nil
	}

	sorted := append([]complex128(nil), roots...)
	sort.Slice(sorted, func(i, j int) bool {
		if imag(sorted[i]) != imag(sorted[j]) {
			return imag(sorted[i]) > imag(sorted[j])
		}
		return real(sorted[i]) < real(sorted[j])
	})

	used := make([]bool, len(sorted))
	groups := make([][]complex128, 0, (len(sorted)+1)/2)
	reals := make([]complex128, 0, len(sorted))

	for i, r := range sorted {
		if used[i] {
			continue
		}
		used[i] = true

		if math.Abs(imag(r)) <= realRootTol*math.Max(1, cmplx.Abs(r)) {
			reals = append(reals, complex(real(r), 0))
			continue
		}

		target := cmplx.Conj(r)
		best, bestDist := -1, math.MaxFloat64
		for j, rr := range sorted {
			if used[j] {
				continue
			}
			if d := cmplx.Abs(rr - target); d < bestDist {
				best, bestDist = j, d
			}
		}
		if best < 0 || bestDist > pairTol*math.Max(1, cmplx.Abs(r)) {
			return nil, errors.Wrapf(zpk.ErrNotReal, "root %v has no conjugate", r)
		}
		used[best] = true
		groups = append(groups, []complex128{r, cmplx.Conj(r)})
	}

	sort.Slice(reals, func(i, j int) bool { return real(reals[i]) < real(reals[j]) })

	for i := 0; i+1 < len(reals); i += 2 {
		groups = append(groups, []complex128{reals[i], reals[i+1]})
	}
	if len(reals)%2 == 1 {
		groups = append(groups, []complex128{reals[len(reals)-1]})
	}

	return groups, nil
}

func unitCircleDistance(group []complex128) float64 {
	d := math.Inf(1)
	for _, r := range group {
		d = math.Min(d, math.Abs(1-cmplx.Abs(r)))
	}
	return d
}

func quadFromRoots(group []complex128) (float64, float64) {
	switch len(group) {
	case 0:
		return 0, 0
	case 1:
		return -real(group[0]), 0
	default:
		r1, r2 := group[0], group[1]
		return -real(r1 + r2), real(r1 * r2)
	}
}

// sectionFromRoots builds one section from up to two zeros and one or two
// poles. Missing zeros delay the numerator by one sample each.
func sectionFromRoots(zeros, poles []complex128) Coefficients {
	a1, a2 := quadFromRoots(poles)
	c1, c2 := quadFromRoots(zeros)

	num := [3]float64{}
	shift := len(poles) - len(zeros)
	taps := [3]float64{1, c1, c2}
	for i := 0; i <= len(zeros); i++ {
		num[i+shift] = taps[i]
	}

	return Coefficients{
		B0: num[0], B1: num[1], B2: num[2],
		A1: a1, A2: a2,
	}
}
