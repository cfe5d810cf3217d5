// 18 Oct 2026

// Package config collects the scoring and screening settings from
// defaults, an optional config file, SEQSCREEN_ environment variables
// and command line flags, in increasing order of priority. Viper does
// the merging.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/andrew-torda/seqscreen/pkg/submat"
	"github.com/andrew-torda/seqscreen/pkg/swat"
)

// Keys, which are also the flag names.
const (
	KeySigma       = "sigma"
	KeyMatch       = "match"
	KeyMismatch    = "mismatch"
	KeyCutoff      = "cutoff"
	KeyMatrix      = "matrix"
	KeyThreads     = "threads"
	KeyBothStrands = "both-strands"
	KeyMetricsFile = "metrics-file"
	KeyQuiet       = "quiet"
)

const EnvPrefix = "SEQSCREEN"

// Config is everything the aligner and screener need to be told.
type Config struct {
	Sigma       float32 // cost of each gap position
	Match       float32
	Mismatch    float32
	Cutoff      float32 // screening threshold
	Matrix      string  // builtin matrix name or file, overrides Match/Mismatch
	Threads     int
	BothStrands bool
	MetricsFile string
	Quiet       bool
}

var ErrInvalid = errors.New("invalid configuration")

// SetDefaults puts the defaults into v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeySigma, 3.0)
	v.SetDefault(KeyMatch, 1.0)
	v.SetDefault(KeyMismatch, -2.0)
	v.SetDefault(KeyCutoff, 6.0)
	v.SetDefault(KeyMatrix, "")
	v.SetDefault(KeyThreads, runtime.NumCPU())
	v.SetDefault(KeyBothStrands, true)
	v.SetDefault(KeyMetricsFile, "")
	v.SetDefault(KeyQuiet, false)
}

// New returns a viper with the defaults set and environment
// variables switched on, so SEQSCREEN_BOTH_STRANDS=false works.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// AddFlags puts the scoring flags on a flag set. Flags have the same
// names as the keys and their defaults.
func AddFlags(fs *pflag.FlagSet) {
	fs.Float32(KeySigma, 3, "gap penalty, per position")
	fs.Float32(KeyMatch, 1, "score for identical symbols")
	fs.Float32(KeyMismatch, -2, "score for different symbols")
	fs.Float32(KeyCutoff, 6, "a read is flagged if any local alignment scores at least this")
	fs.String(KeyMatrix, "", "substitution matrix, builtin ("+strings.Join(submat.Builtins(), ", ")+") or a file")
}

// ReadFile reads a config file into v. The format comes from the
// file extension (yaml, toml, json, ...). An empty name is not an error.
func ReadFile(v *viper.Viper, fname string) error {
	if fname == "" {
		return nil
	}
	v.SetConfigFile(fname)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config file %s: %w", fname, err)
	}
	return nil
}

// Load pulls a Config out of v and checks it.
func Load(v *viper.Viper) (Config, error) {
	c := Config{
		Sigma:       float32(v.GetFloat64(KeySigma)),
		Match:       float32(v.GetFloat64(KeyMatch)),
		Mismatch:    float32(v.GetFloat64(KeyMismatch)),
		Cutoff:      float32(v.GetFloat64(KeyCutoff)),
		Matrix:      v.GetString(KeyMatrix),
		Threads:     v.GetInt(KeyThreads),
		BothStrands: v.GetBool(KeyBothStrands),
		MetricsFile: v.GetString(KeyMetricsFile),
		Quiet:       v.GetBool(KeyQuiet),
	}
	return c, c.Validate()
}

// Validate complains about settings that make no sense. A gap
// penalty of zero or less lets gaps grow for free.
func (c Config) Validate() error {
	var errs []error
	if c.Sigma <= 0 {
		errs = append(errs, fmt.Errorf("%w: sigma must be positive, got %g", ErrInvalid, c.Sigma))
	}
	if c.Threads < 1 {
		errs = append(errs, fmt.Errorf("%w: need at least one thread, got %d", ErrInvalid, c.Threads))
	}
	if c.Matrix == "" && c.Match <= 0 {
		errs = append(errs, fmt.Errorf("%w: match score must be positive, got %g", ErrInvalid, c.Match))
	}
	return errors.Join(errs...)
}

// Scorer returns the substitution matrix if one was named, otherwise
// match/mismatch scoring.
func (c Config) Scorer() (swat.Scorer, error) {
	if c.Matrix == "" {
		return swat.Ident{Match: c.Match, Mismatch: c.Mismatch}, nil
	}
	return submat.Load(c.Matrix)
}
