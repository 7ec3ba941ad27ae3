package response

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Grid selects the spacing of the evaluation frequencies.
type Grid int

const (
	// GridLog spaces points logarithmically from a low bound toward
	// Nyquist.
	GridLog Grid = iota
	// GridLinear spaces points uniformly from DC toward Nyquist.
	GridLinear
)

func (g Grid) String() string {
	switch g {
	case GridLog:
		return "log"
	case GridLinear:
		return "linear"
	default:
		return "unknown"
	}
}

// ParseGrid parses "log" or "linear" ("lin").
func ParseGrid(s string) (Grid, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "log":
		return GridLog, nil
	case "linear", "lin":
		return GridLinear, nil
	default:
		return 0, errors.Wrapf(ErrInvalidGrid, "unknown grid %q", s)
	}
}

// LogGrid returns n frequencies (Hz) log-spaced from low toward
// sampleRate/2, excluding the Nyquist endpoint:
//
//	f[i] = low * (nyquist/low)^(i/n),  i = 0..n-1
func LogGrid(low, sampleRate float64, n int) ([]float64, error) {
	nyquist := sampleRate / 2
	if n < 1 {
		return nil, errors.Wrapf(ErrInvalidGrid, "point count must be >= 1: %d", n)
	}
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, errors.Wrapf(ErrInvalidGrid, "sample rate must be positive and finite: %g", sampleRate)
	}
	if !(low > 0 && low < nyquist) {
		return nil, errors.Wrapf(ErrInvalidGrid, "low bound %g Hz outside (0, %g)", low, nyquist)
	}

	grid := floats.LogSpan(make([]float64, n+1), low, nyquist)
	// LogSpan goes through exp(log(low)), which can land an ulp below low.
	grid[0] = low
	return grid[:n], nil
}

// LinearGrid returns the n frequencies k*sampleRate/(2n), k = 0..n-1.
func LinearGrid(sampleRate float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrInvalidGrid, "point count must be >= 1: %d", n)
	}
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, errors.Wrapf(ErrInvalidGrid, "sample rate must be positive and finite: %g", sampleRate)
	}

	grid := floats.Span(make([]float64, n+1), 0, sampleRate/2)
	return grid[:n], nil
}

func validateFrequencies(freqs []float64, sampleRate float64) error {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return errors.Wrapf(ErrInvalidGrid, "sample rate must be positive and finite: %g", sampleRate)
	}
	if len(freqs) == 0 {
		return errors.Wrap(ErrInvalidGrid, "empty frequency grid")
	}
	for i, f := range freqs {
		if !(f >= 0 && f <= sampleRate/2) {
			return errors.Wrapf(ErrInvalidGrid, "frequency %g Hz at index %d outside [0, %g]", f, i, sampleRate/2)
		}
		if i > 0 && !(f > freqs[i-1]) {
			return errors.Wrapf(ErrInvalidGrid, "frequencies must be strictly increasing at index %d", i)
		}
	}
	return nil
}
