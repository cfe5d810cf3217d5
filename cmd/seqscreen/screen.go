package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/andrew-torda/seqscreen/pkg/config"
	"github.com/andrew-torda/seqscreen/pkg/screen"
	"github.com/andrew-torda/seqscreen/pkg/seq"
)

type screenFlags struct {
	out, report string
}

// outFile creates fname for writing. An empty name gives a writer that
// throws everything away, "-" is standard output.
func outFile(fname string, stdout io.Writer) (*bufio.Writer, func() error, error) {
	switch fname {
	case "":
		return bufio.NewWriter(io.Discard), func() error { return nil }, nil
	case "-":
		return bufio.NewWriter(stdout), func() error { return nil }, nil
	}
	fp, err := os.Create(fname)
	if err != nil {
		return nil, nil, err
	}
	return bufio.NewWriter(fp), fp.Close, nil
}

// newBar gives a progress bar for n reads, or a spinner if n is not
// known.
func (a *app) newBar(n int, w io.Writer) *progressbar.ProgressBar {
	if a.cfg.Quiet {
		w = io.Discard
	}
	return progressbar.NewOptions(n,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("screening"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetItsString("reads"),
		progressbar.OptionShowIts(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(w) }),
	)
}

// total counts the reads first so the bar has an end. Not for stdin.
func (a *app) total(fname string) int {
	if a.cfg.Quiet || fname == "-" || fname == "" {
		return -1
	}
	n, err := seq.Count(fname)
	if err != nil {
		return -1 // the real read will report it
	}
	return n
}

func (a *app) screen(cmd *cobra.Command, f *screenFlags, readFile, contamFile string) error {
	contams, err := seq.Readfile(contamFile)
	if err != nil {
		return err
	}
	if err := contams.Upper(); err != nil {
		return fmt.Errorf("%s: %w", contamFile, err)
	}
	a.infof("%d contaminants from %s", contams.GetNSeq(), contamFile)
	if a.cfg.Cutoff <= 0 {
		a.warnf("cutoff %g is not positive, every read will be flagged", a.cfg.Cutoff)
	}

	out, closeOut, err := outFile(f.out, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closeOut()
	report, closeReport, err := outFile(f.report, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closeReport()
	fmt.Fprintf(report, "read\tcontaminant\tstrand\n")

	bar := a.newBar(a.total(readFile), cmd.ErrOrStderr())
	src := func(fn func(seq.Seq) error) error {
		return screen.FromFile(readFile)(func(s seq.Seq) error {
			if err := s.Upper(); err != nil {
				return err
			}
			return fn(s)
		})
	}
	p := screen.Params{
		Scorer:      a.scr,
		Sigma:       a.cfg.Sigma,
		Cutoff:      a.cfg.Cutoff,
		BothStrands: a.cfg.BothStrands,
		Threads:     a.cfg.Threads,
	}
	cslc := contams.GetSeqSlc()
	stats, err := screen.Run(cmd.Context(), p, src, cslc, func(v screen.Verdict) error {
		bar.Add(1)
		if !v.Hit {
			_, err := fmt.Fprintln(out, v.Read.String())
			return err
		}
		_, err := fmt.Fprintf(report, "%s\t%s\t%c\n", v.Read.Id(), cslc[v.Contam].Id(), v.Strand)
		return err
	})
	bar.Finish()
	if err != nil {
		return err
	}
	if err := out.Flush(); err != nil {
		return err
	}
	if err := report.Flush(); err != nil {
		return err
	}
	if err := closeOut(); err != nil {
		return err
	}
	if err := closeReport(); err != nil {
		return err
	}
	a.infof("%d reads, %d flagged", stats.Reads, stats.Flagged)
	return a.writeMetrics()
}

func newScreenCmd(a *app) *cobra.Command {
	var f screenFlags
	cmd := &cobra.Command{
		Use:   "screen [flags] reads contaminants",
		Short: "Flag reads with a local alignment to a contaminant",
		Long: `Each read is aligned to each contaminant, stopping at the first
alignment which reaches the cutoff. Reads can be fasta or fastq, gzipped
or not. "-" reads from standard input.`,
		Args: nArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.screen(cmd, &f, args[0], args[1])
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.out, "out", "", "write the reads which pass here in fasta format (\"-\" for stdout)")
	fl.StringVar(&f.report, "report", "-", "tab separated list of flagged reads")
	fl.Int(config.KeyThreads, runtime.NumCPU(), "number of goroutines screening reads")
	fl.Bool(config.KeyBothStrands, true, "also screen the reverse complement of each read")
	return cmd
}
