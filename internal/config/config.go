// Package config loads front-end settings from flags, the environment and
// an optional config file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-filterscope/dsp/filter/design/prototype"
	"github.com/cwbudde/algo-filterscope/dsp/filter/iir"
	"github.com/cwbudde/algo-filterscope/dsp/filter/response"
)

// EnvPrefix prefixes every environment variable, e.g. FILTERSCOPE_FS_HZ.
const EnvPrefix = "FILTERSCOPE"

// ErrInvalidConfig is wrapped by every conversion failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the analysis parameters and front-end settings.
type Config struct {
	SampleRate       float64 `mapstructure:"fs_hz"`
	Order            int     `mapstructure:"order"`
	LowCutoff        float64 `mapstructure:"low_hz"`
	HighCutoff       float64 `mapstructure:"high_hz"`
	PassbandRippleDB float64 `mapstructure:"rp_db"`
	StopbandAttenDB  float64 `mapstructure:"rs_db"`
	Band             string  `mapstructure:"band"`
	Design           string  `mapstructure:"design"`
	BesselNorm       string  `mapstructure:"bessel_norm"`

	Points     int     `mapstructure:"points"`
	Grid       string  `mapstructure:"grid"`
	LowBound   float64 `mapstructure:"low_bound_hz"` // 0 selects fs/2*1e-4
	Evaluation string  `mapstructure:"evaluation"`

	Format   string `mapstructure:"format"`
	LogLevel string `mapstructure:"log_level"`
}

type setting struct {
	key, flag, usage string
	def              any
}

// settings mirror the dashboard inputs and their defaults.
var settings = []setting{
	{"fs_hz", "fs-hz", "sample rate in Hz", 48000.0},
	{"order", "order", "prototype order (1-12)", 2},
	{"low_hz", "low-hz", "low cutoff in Hz (lowpass edge)", 500.0},
	{"high_hz", "high-hz", "high cutoff in Hz (highpass edge)", 5000.0},
	{"rp_db", "rp-db", "passband ripple in dB (chebyshev1, elliptic)", 0.1},
	{"rs_db", "rs-db", "stopband attenuation in dB (chebyshev2, elliptic)", 60.0},
	{"band", "band", "lowpass, highpass, bandpass or bandstop", "bandpass"},
	{"design", "design", "butterworth, chebyshev1, chebyshev2, elliptic or bessel", "butterworth"},
	{"bessel_norm", "bessel-norm", "bessel normalization: delay, phase or magnitude", "delay"},
	{"points", "points", "number of response points", iir.DefaultPoints},
	{"grid", "grid", "frequency spacing: log or linear", "log"},
	{"low_bound_hz", "low-bound-hz", "first log grid frequency in Hz (0 = fs/2*1e-4)", 0.0},
	{"evaluation", "evaluation", "response evaluation: polynomial or factored", "polynomial"},
	{"format", "format", "output format: text or json", "text"},
	{"log_level", "log-level", "log level: debug, info, warn or error", "info"},
}

// Flags returns a flag set carrying every setting plus --config.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "config file (yaml, toml or json)")
	for _, s := range settings {
		switch d := s.def.(type) {
		case float64:
			fs.Float64(s.flag, d, s.usage)
		case int:
			fs.Int(s.flag, d, s.usage)
		case string:
			fs.String(s.flag, d, s.usage)
		}
	}
	return fs
}

// Load resolves the configuration. Precedence: flags set on the command
// line, FILTERSCOPE_* environment, config file, defaults. flags may be nil.
//
// Without --config, filterscope.{yaml,toml,json} is looked up in the working
// directory and in $HOME/.config/filterscope; a missing file is not an
// error.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	for _, s := range settings {
		v.SetDefault(s.key, s.def)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if flags != nil {
		for _, s := range settings {
			if f := flags.Lookup(s.flag); f != nil {
				if err := v.BindPFlag(s.key, f); err != nil {
					return nil, errors.Wrapf(err, "binding flag %s", s.flag)
				}
			}
		}
	}

	var path string
	if flags != nil {
		if f := flags.Lookup("config"); f != nil {
			path = f.Value.String()
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", path)
		}
	} else {
		v.SetConfigName("filterscope")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "filterscope"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.Wrap(err, "reading config file")
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding configuration")
	}
	return &cfg, nil
}

// FromMap applies params over the defaults. Keys are the config file keys
// (fs_hz, band, ...). The environment and config files are not consulted.
func FromMap(params map[string]any) (*Config, error) {
	v := viper.New()
	for _, s := range settings {
		v.SetDefault(s.key, s.def)
	}
	if err := v.MergeConfigMap(params); err != nil {
		return nil, errors.Wrap(err, "merging parameters")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(ErrInvalidConfig, err.Error())
	}
	return &cfg, nil
}

// Spec converts the analysis parameters without validating them.
func (c *Config) Spec() (iir.Spec, error) {
	band, err := iir.ParseBandType(c.Band)
	if err != nil {
		return iir.Spec{}, errors.Wrap(ErrInvalidConfig, err.Error())
	}
	design, err := prototype.ParseFamily(c.Design)
	if err != nil {
		return iir.Spec{}, errors.Wrap(ErrInvalidConfig, err.Error())
	}
	norm, err := prototype.ParseBesselNorm(c.BesselNorm)
	if err != nil {
		return iir.Spec{}, errors.Wrap(ErrInvalidConfig, err.Error())
	}

	return iir.Spec{
		SampleRate:       c.SampleRate,
		Order:            c.Order,
		Band:             band,
		Design:           design,
		LowCutoff:        c.LowCutoff,
		HighCutoff:       c.HighCutoff,
		PassbandRippleDB: c.PassbandRippleDB,
		StopbandAttenDB:  c.StopbandAttenDB,
		BesselNorm:       norm,
	}, nil
}

// Options converts the grid and evaluation settings.
func (c *Config) Options() ([]iir.Option, error) {
	grid, err := response.ParseGrid(c.Grid)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidConfig, err.Error())
	}
	eval, err := iir.ParseEvaluation(c.Evaluation)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidConfig, err.Error())
	}

	opts := []iir.Option{iir.WithPoints(c.Points), iir.WithGrid(grid), iir.WithEvaluation(eval)}
	if c.LowBound != 0 {
		opts = append(opts, iir.WithLowBound(c.LowBound))
	}
	return opts, nil
}

// Level parses LogLevel.
func (c *Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel)))
	if err != nil {
		return zerolog.NoLevel, errors.Wrap(ErrInvalidConfig, err.Error())
	}
	return lvl, nil
}

// JSON reports whether machine-readable output was requested.
func (c *Config) JSON() bool {
	return strings.EqualFold(strings.TrimSpace(c.Format), "json")
}
