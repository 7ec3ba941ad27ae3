package iir

import (
	"github.com/pkg/errors"

	"github.com/cwbudde/algo-filterscope/dsp/filter/response"
)

// Analysis pairs a designed filter with its sampled response.
type Analysis struct {
	Filter *Filter
	Curve  response.Curve

	// Warnings holds the filter's design warnings followed by those of the
	// response evaluation.
	Warnings []error
}

// Degraded reports whether the result carries any warning.
func (a *Analysis) Degraded() bool {
	return len(a.Warnings) > 0
}

// Analyze designs the filter and samples its response. By default the
// grid has DefaultPoints log-spaced frequencies from sampleRate/2*1e-4 up to,
// but excluding, Nyquist, and the expanded coefficients are evaluated.
func Analyze(spec Spec, opts ...Option) (*Analysis, error) {
	cfg := defaultAnalyzeConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	f, err := Design(spec)
	if err != nil {
		return nil, err
	}

	curve, err := evaluate(f, spec.SampleRate, cfg)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidSpec, err.Error())
	}

	warnings := append([]error(nil), f.Warnings...)
	if curve.Degenerate > 0 {
		warnings = append(warnings, errors.Wrapf(ErrNumericDegeneracy,
			"%d of %d response points undefined", curve.Degenerate, curve.Len()))
	}

	return &Analysis{Filter: f, Curve: curve, Warnings: warnings}, nil
}

func evaluate(f *Filter, sampleRate float64, cfg analyzeConfig) (response.Curve, error) {
	if cfg.grid == response.GridLinear && cfg.evaluation == EvalPolynomial && isPowerOfTwo(cfg.points) {
		return response.Uniform(f.Numerator, f.Denominator, sampleRate, cfg.points)
	}

	var (
		freqs []float64
		err   error
	)
	switch cfg.grid {
	case response.GridLinear:
		freqs, err = response.LinearGrid(sampleRate, cfg.points)
	default:
		low := cfg.lowBound
		if low == 0 {
			low = sampleRate / 2 * defaultLowBoundRatio
		}
		freqs, err = response.LogGrid(low, sampleRate, cfg.points)
	}
	if err != nil {
		return response.Curve{}, err
	}

	if cfg.evaluation == EvalFactored {
		return response.EvaluateZPK(f.ZPK(), freqs, sampleRate)
	}
	return response.Evaluate(f.Numerator, f.Denominator, freqs, sampleRate)
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
