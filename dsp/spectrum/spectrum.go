package spectrum

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"
	"github.com/pkg/errors"
	"github.com/tphakala/simd/f64"

	"github.com/cwbudde/algo-filterscope/dsp/core"
)

// ErrGrid is returned for phase and frequency slices that cannot be
// differentiated.
var ErrGrid = errors.New("spectrum: invalid frequency grid")

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |H[k]| for each complex sample.
//
// The kernel is the SIMD magnitude from algo-vecmath. Scratch buffers are
// pooled, so in steady state this allocates only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// MagnitudeFromParts computes |H[k]| = sqrt(re[k]^2 + im[k]^2) into dst.
// All three slices must have the same length.
func MagnitudeFromParts(dst, re, im []float64) {
	vecmath.Magnitude(dst, re, im)
}

// MagnitudeDB returns 20*log10|H[k]| clamped below at floorDB, along with
// the number of samples that hit the floor. Samples whose magnitude is NaN
// stay NaN and are counted as well.
func MagnitudeDB(in []complex128, floorDB float64) ([]float64, int) {
	out := Magnitude(in)
	floored := 0
	for i, m := range out {
		db := core.LinearToDB(m)
		switch {
		case math.IsNaN(db):
			floored++
		case db < floorDB:
			db = floorDB
			floored++
		}
		out[i] = db
	}
	return out, floored
}

// Phase returns arg(H[k]) for each complex sample in radians.
func Phase(in []complex128) []float64 {
	if in == nil {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// Degrees converts radians to degrees.
func Degrees(rad []float64) []float64 {
	if rad == nil {
		return nil
	}
	out := make([]float64, len(rad))
	f64.Scale(out, rad, 180/math.Pi)
	return out
}

// UnwrapPhase returns a new phase slice in which every jump of pi or more
// between consecutive samples is reduced modulo 2*pi into (-pi, pi].
// Jumps spanning several turns are removed in one step. NaN samples are
// passed through and do not break the running correction.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}

	out := make([]float64, len(phase))
	offset := 0.0
	prev := math.NaN()
	for i, p := range phase {
		if math.IsNaN(p) {
			out[i] = p
			continue
		}
		if !math.IsNaN(prev) {
			if d := p - prev; math.Abs(d) >= math.Pi {
				offset += wrapToPi(d) - d
			}
		}
		out[i] = p + offset
		prev = p
	}
	return out
}

// wrapToPi maps d into [-pi, pi), mapping -pi to pi for positive d.
func wrapToPi(d float64) float64 {
	m := math.Mod(d+math.Pi, 2*math.Pi)
	if m < 0 {
		m += 2 * math.Pi
	}
	m -= math.Pi
	if m == -math.Pi && d > 0 {
		m = math.Pi
	}
	return m
}

// GroupDelayFinite estimates -d(phase)/d(omega) from unwrapped phase
// (radians) sampled at the strictly increasing angular frequencies omega
// (radians per sample). Interior points use the second order three-point
// formula for non-uniform spacing, the endpoints one-sided differences.
//
// The result is an approximation; it serves as a cross-check for the
// analytic group delay.
func GroupDelayFinite(unwrapped, omega []float64) ([]float64, error) {
	n := len(unwrapped)
	if n < 2 {
		return nil, errors.Wrapf(ErrGrid, "group delay requires at least 2 phase points: %d", n)
	}
	if len(omega) != n {
		return nil, errors.Wrapf(ErrGrid, "phase/frequency length mismatch: %d != %d", n, len(omega))
	}
	for i := 1; i < n; i++ {
		if !(omega[i] > omega[i-1]) {
			return nil, errors.Wrapf(ErrGrid, "frequencies must be strictly increasing at index %d", i)
		}
	}

	out := make([]float64, n)
	out[0] = -(unwrapped[1] - unwrapped[0]) / (omega[1] - omega[0])
	out[n-1] = -(unwrapped[n-1] - unwrapped[n-2]) / (omega[n-1] - omega[n-2])
	for i := 1; i < n-1; i++ {
		h1 := omega[i] - omega[i-1]
		h2 := omega[i+1] - omega[i]
		d := h1*h1*unwrapped[i+1] - h2*h2*unwrapped[i-1] + (h2*h2-h1*h1)*unwrapped[i]
		out[i] = -d / (h1 * h2 * (h1 + h2))
	}
	return out, nil
}
