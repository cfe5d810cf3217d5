package main

import (
	"bufio"
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/seqscreen/pkg/seq"
	. "github.com/andrew-torda/seqscreen/pkg/seq/common"
)

// count writes the identifier and length of each sequence, without
// gaps, for a spreadsheet. With total, only the number of sequences.
func count(cmd *cobra.Command, fnames []string, total bool) error {
	w := bufio.NewWriter(cmd.OutOrStdout())
	for _, fname := range fnames {
		if total {
			n, err := seq.Count(fname)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%d\n", fname, n)
			continue
		}
		err := seq.EachFile(fname, func(s seq.Seq) error {
			ngap := bytes.Count(s.GetSeq(), []byte{GapChar})
			_, err := fmt.Fprintf(w, "%s\t%d\n", s.Id(), s.Len()-ngap)
			return err
		})
		if err != nil {
			return err
		}
	}
	return w.Flush()
}

func newCountCmd() *cobra.Command {
	var total bool
	cmd := &cobra.Command{
		Use:   "count [flags] file...",
		Short: "List sequence lengths, or count the sequences in files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("%w: no files given", errUsage)
			}
			return count(cmd, args, total)
		},
	}
	cmd.Flags().BoolVar(&total, "total", false, "only print the number of sequences in each file")
	return cmd
}
