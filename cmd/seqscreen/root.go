// 18 Oct 2026

package main

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/andrew-torda/seqscreen/pkg/config"
	"github.com/andrew-torda/seqscreen/pkg/metrics"
	"github.com/andrew-torda/seqscreen/pkg/swat"
)

var errUsage = errors.New("usage")

// app is what the subcommands share. It is filled in by prepare,
// after the flags are parsed.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	scr     swat.Scorer
	log     *log.Logger
}

func (a *app) infof(format string, v ...any) { a.log.Printf("[INFO] "+format, v...) }
func (a *app) warnf(format string, v ...any) { a.log.Printf("[WARN] "+format, v...) }

// prepare merges flags, environment and config file, then checks the
// result. Bad settings are a usage error.
func (a *app) prepare(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := config.ReadFile(a.v, a.cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	a.cfg = cfg
	w := cmd.ErrOrStderr()
	if cfg.Quiet {
		w = io.Discard
	}
	a.log = log.New(w, "", 0)
	if a.cfgFile != "" {
		a.infof("using config file %s", a.v.ConfigFileUsed())
	}
	if a.scr, err = cfg.Scorer(); err != nil {
		return err
	}
	return nil
}

// writeMetrics writes the metrics file, if one was asked for.
func (a *app) writeMetrics() error {
	if a.cfg.MetricsFile == "" {
		return nil
	}
	if err := metrics.WriteFile(a.cfg.MetricsFile); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	return nil
}

// nArgs is cobra.ExactArgs, but the error is a usage error.
func nArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w: %s wants %d arguments, got %d", errUsage, cmd.Name(), n, len(args))
		}
		return nil
	}
}

// unknownCmd catches anything left over on the root command, which can
// only be a misspelt subcommand.
func unknownCmd(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	if sugg := cmd.SuggestionsFor(args[0]); len(sugg) > 0 {
		return fmt.Errorf("%w: unknown command %q, did you mean %q?", errUsage, args[0], sugg[0])
	}
	return fmt.Errorf("%w: unknown command %q for %q", errUsage, args[0], cmd.Name())
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: config.New()}
	root := &cobra.Command{
		Use:           "seqscreen",
		Short:         "Smith-Waterman alignments and contamination screening",
		Long:          "Align pairs of sequences or screen reads against contaminants with Smith-Waterman local alignments.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          unknownCmd,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.prepare(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (yaml, toml or json)")
	pf.Bool(config.KeyQuiet, false, "no progress bar and no log messages")
	pf.String(config.KeyMetricsFile, "", "write prometheus metrics to this file at the end")
	config.AddFlags(pf)

	root.AddCommand(newAlignCmd(a), newScreenCmd(a), newRandseqCmd(), newCountCmd())
	return root
}
