package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/seqscreen/pkg/metrics"
	"github.com/andrew-torda/seqscreen/pkg/seq"
	"github.com/andrew-torda/seqscreen/pkg/swat"
)

var errStop = errors.New("stop")

// firstSeq returns the first sequence in a file.
func firstSeq(fname string) ([]byte, error) {
	var s []byte
	err := seq.EachFile(fname, func(r seq.Seq) error {
		s = r.GetSeq()
		return errStop
	})
	if errors.Is(err, errStop) {
		err = nil
	}
	return s, err
}

type alignFlags struct {
	file1, file2 string
	width        int
}

// seqs works out where the two sequences come from. Each one is either
// a file or the next command line argument.
func (f *alignFlags) seqs(args []string) ([][]byte, error) {
	var ret [][]byte
	for _, fname := range []string{f.file1, f.file2} {
		if fname != "" {
			s, err := firstSeq(fname)
			if err != nil {
				return nil, err
			}
			ret = append(ret, s)
			continue
		}
		if len(args) == 0 {
			return nil, fmt.Errorf("%w: need two sequences, from arguments or --file1/--file2", errUsage)
		}
		ret, args = append(ret, []byte(args[0])), args[1:]
	}
	if len(args) != 0 {
		return nil, fmt.Errorf("%w: too many arguments %q", errUsage, args)
	}
	return ret, nil
}

func newAlignCmd(a *app) *cobra.Command {
	var f alignFlags
	cmd := &cobra.Command{
		Use:   "align [flags] [seq1] [seq2]",
		Short: "Print the best local alignment of two sequences",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.seqs(args)
			if err != nil {
				return err
			}
			r, err := swat.Align(s[0], s[1], a.scr, a.cfg.Sigma)
			if err != nil {
				return err
			}
			metrics.Register()
			metrics.ObserveScore(r.Score)
			if err := r.Fprint(cmd.OutOrStdout(), f.width); err != nil {
				return err
			}
			return a.writeMetrics()
		},
	}
	cmd.Flags().StringVar(&f.file1, "file1", "", "take the first sequence from this file")
	cmd.Flags().StringVar(&f.file2, "file2", "", "take the second sequence from this file")
	cmd.Flags().IntVar(&f.width, "width", 60, "columns per line of alignment")
	return cmd
}
