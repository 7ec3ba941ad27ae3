// Command filterscope designs an IIR filter and prints its coefficients,
// poles and zeros, and frequency response.
//
// Usage:
//
//	filterscope [flags]
//
// Every flag can also be set through a FILTERSCOPE_* environment variable
// (FILTERSCOPE_FS_HZ, FILTERSCOPE_DESIGN, ...) or a filterscope.yaml file.
//
// Examples:
//
//	filterscope --band lowpass --design butterworth --order 4 --low-hz 1000
//	filterscope --design elliptic --order 3 --low-hz 500 --high-hz 3000 --rp-db 0.1 --rs-db 60
//	filterscope --format json --points 256 > response.json
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/cmplx"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/cwbudde/algo-filterscope/dsp/filter/iir"
	"github.com/cwbudde/algo-filterscope/internal/analysis"
	"github.com/cwbudde/algo-filterscope/internal/config"
)

const (
	exitOK = iota
	exitFailure
	exitUsage
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := config.Flags("filterscope")
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: filterscope [flags]\n\n")
		fmt.Fprintf(stderr, "Designs an IIR filter and prints its response.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).With().Timestamp().Logger()

	cfg, err := config.Load(flags)
	if err != nil {
		logger.Error().Err(err).Msg("loading configuration")
		return exitUsage
	}
	lvl, err := cfg.Level()
	if err != nil {
		logger.Error().Err(err).Msg("invalid log level")
		return exitUsage
	}
	logger = logger.Level(lvl)

	spec, err := cfg.Spec()
	if err != nil {
		logger.Error().Err(err).Msg("invalid parameters")
		return exitUsage
	}
	opts, err := cfg.Options()
	if err != nil {
		logger.Error().Err(err).Msg("invalid parameters")
		return exitUsage
	}

	report, err := analysis.NewService(logger).Run(context.Background(), analysis.Request{Spec: spec, Options: opts})
	if err != nil {
		logger.Error().Err(err).Msg("analysis failed")
		if errors.Is(err, iir.ErrInvalidSpec) {
			return exitUsage
		}
		return exitFailure
	}

	if cfg.JSON() {
		err = writeJSON(stdout, report)
	} else {
		err = writeText(stdout, report)
	}
	if err != nil {
		logger.Error().Err(err).Msg("writing output")
		return exitFailure
	}
	return exitOK
}

func writeJSON(w io.Writer, r *analysis.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(r), "encoding report")
}

func writeText(w io.Writer, r *analysis.Report) error {
	s := r.Spec
	fmt.Fprintf(w, "%s %s, order %d, fs %g Hz\n", s.Design, s.Band, s.Order, s.SampleRate)
	fmt.Fprintf(w, "digital order %d, gain %.17g, stable %t\n", r.Order, r.Gain, r.Stable)
	for _, warning := range r.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}

	fmt.Fprintf(w, "\nCoefficients\n%s", r.CoefficientText)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\nKind\tRe\tIm\t|r|\n")
	for _, root := range []struct {
		kind  string
		roots []analysis.Complex
	}{{"zero", r.Zeros}, {"pole", r.Poles}} {
		for _, c := range root.roots {
			fmt.Fprintf(tw, "%s\t% .10f\t% .10f\t%.10f\n", root.kind, c.Re, c.Im, abs(c))
		}
	}
	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "writing roots")
	}

	if len(r.Sections) > 0 {
		fmt.Fprintf(tw, "\nSection\tb0\tb1\tb2\ta1\ta2\n")
		for i, sec := range r.Sections {
			fmt.Fprintf(tw, "%d\t% .10e\t% .10e\t% .10e\t% .10e\t% .10e\n",
				i, sec.B[0], sec.B[1], sec.B[2], sec.A[1], sec.A[2])
		}
		if err := tw.Flush(); err != nil {
			return errors.Wrap(err, "writing sections")
		}
	}

	c := r.Curve
	fmt.Fprintf(tw, "\nFrequency [Hz]\tMagnitude [dB]\tPhase [deg]\tGroup delay [samples]\n")
	for i := range c.Frequencies {
		fmt.Fprintf(tw, "%.4f\t%.4f\t%.4f\t%.4f\n", c.Frequencies[i], c.MagnitudeDB[i], c.PhaseDeg[i], c.GroupDelay[i])
	}
	return errors.Wrap(tw.Flush(), "writing curve")
}

func abs(c analysis.Complex) float64 {
	return cmplx.Abs(complex(c.Re, c.Im))
}
