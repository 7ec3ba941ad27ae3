package iir

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/cwbudde/algo-filterscope/dsp/filter/response"
)

const (
	// DefaultPoints is the reference grid resolution.
	DefaultPoints = 1024
	// MaxPoints bounds the grid size.
	MaxPoints = 1 << 20

	// defaultLowBoundRatio places the first log grid point four decades
	// below Nyquist.
	defaultLowBoundRatio = 1e-4
)

// Evaluation selects how the response is computed.
type Evaluation int

const (
	// EvalPolynomial evaluates the expanded coefficients with Horner's
	// method.
	EvalPolynomial Evaluation = iota
	// EvalFactored evaluates products over poles and zeros, which keeps its
	// accuracy at high orders where the expanded coefficients do not.
	EvalFactored

	numEvaluations
)

var evaluationNames = [numEvaluations]string{
	EvalPolynomial: "polynomial",
	EvalFactored:   "factored",
}

func (e Evaluation) String() string {
	if e < 0 || e >= numEvaluations {
		return "Evaluation(" + strconv.Itoa(int(e)) + ")"
	}
	return evaluationNames[e]
}

// ParseEvaluation parses "polynomial" ("ba") or "factored" ("zpk").
func ParseEvaluation(s string) (Evaluation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "polynomial", "ba":
		return EvalPolynomial, nil
	case "factored", "zpk":
		return EvalFactored, nil
	}
	return 0, errors.Wrapf(ErrInvalidSpec, "unknown evaluation %q", s)
}

// Option configures Analyze.
type Option func(*analyzeConfig) error

type analyzeConfig struct {
	points     int
	lowBound   float64 // 0 selects the default
	grid       response.Grid
	evaluation Evaluation
}

func defaultAnalyzeConfig() analyzeConfig {
	return analyzeConfig{
		points:     DefaultPoints,
		grid:       response.GridLog,
		evaluation: EvalPolynomial,
	}
}

// WithPoints sets the number of grid points.
func WithPoints(n int) Option {
	return func(cfg *analyzeConfig) error {
		if n < 2 || n > MaxPoints {
			return errors.Wrapf(ErrInvalidSpec, "point count %d outside [2,%d]", n, MaxPoints)
		}
		cfg.points = n
		return nil
	}
}

// WithLowBound sets the first frequency (Hz) of the log grid. The default is
// sampleRate/2 * 1e-4.
func WithLowBound(hz float64) Option {
	return func(cfg *analyzeConfig) error {
		if !(hz > 0) || math.IsInf(hz, 0) {
			return errors.Wrapf(ErrInvalidSpec, "low bound must be positive and finite: %g", hz)
		}
		cfg.lowBound = hz
		return nil
	}
}

// WithGrid selects log or linear frequency spacing.
func WithGrid(g response.Grid) Option {
	return func(cfg *analyzeConfig) error {
		if g != response.GridLog && g != response.GridLinear {
			return errors.Wrapf(ErrInvalidSpec, "unknown grid %d", int(g))
		}
		cfg.grid = g
		return nil
	}
}

// WithEvaluation selects polynomial or factored evaluation.
func WithEvaluation(e Evaluation) Option {
	return func(cfg *analyzeConfig) error {
		if e < 0 || e >= numEvaluations {
			return errors.Wrapf(ErrInvalidSpec, "unknown evaluation %d", int(e))
		}
		cfg.evaluation = e
		return nil
	}
}
