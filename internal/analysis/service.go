package analysis

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-filterscope/dsp/filter/biquad"
	"github.com/cwbudde/algo-filterscope/dsp/filter/iir"
)

// Request is one analysis job.
type Request struct {
	Spec    iir.Spec
	Options []iir.Option
}

// Service runs analyses. It holds no per-request state and may be shared
// between goroutines.
type Service struct {
	log      zerolog.Logger
	now      func() time.Time
	sections func(*iir.Filter) ([]biquad.Coefficients, error)
}

// NewService returns a Service that logs through logger.
func NewService(logger zerolog.Logger) *Service {
	return &Service{log: logger, now: time.Now, sections: (*iir.Filter).Sections}
}

// Run analyzes req and builds its report. The report of a degraded result
// carries the warnings; errors are returned only when no result exists,
// wrapping iir.ErrInvalidSpec for rejected input.
func (s *Service) Run(ctx context.Context, req Request) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "analysis canceled")
	}

	runID := uuid.New().String()
	logger := s.log.With().
		Str("run_id", runID).
		Str("design", req.Spec.Design.String()).
		Str("band", req.Spec.Band.String()).
		Int("order", req.Spec.Order).
		Float64("fs_hz", req.Spec.SampleRate).
		Logger()

	start := s.now()
	a, err := iir.Analyze(req.Spec, req.Options...)
	elapsed := s.now().Sub(start)
	if err != nil {
		if errors.Is(err, iir.ErrInvalidSpec) {
			logger.Debug().Err(err).Msg("analysis rejected")
		} else {
			logger.Error().Err(err).Msg("analysis failed")
		}
		return nil, err
	}

	report := newReport(runID, req.Spec, a, s.sections)

	if len(report.Warnings) > 0 {
		logger.Warn().
			Strs("warnings", report.Warnings).
			Dur("elapsed", elapsed).
			Msg("analysis degraded")
	} else {
		logger.Info().
			Int("points", a.Curve.Len()).
			Bool("stable", report.Stable).
			Dur("elapsed", elapsed).
			Msg("analysis complete")
	}
	return report, nil
}
