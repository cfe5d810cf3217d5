package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/seqscreen/pkg/randseq"
)

func newRandseqCmd() *cobra.Command {
	var (
		args    randseq.RandSeqArgs
		out     string
		frag    string
		fragSeq string
	)
	args.Cmmt = "rand"
	cmd := &cobra.Command{
		Use:   "randseq [flags] nseq length",
		Short: "Write random DNA sequences, some with a fragment planted",
		Args:  nArgs(2),
		RunE: func(cmd *cobra.Command, pos []string) error {
			const emsg = "%w: failed converting %s to positive integer"
			nseq, err := strconv.ParseUint(pos[0], 10, 32)
			if err != nil {
				return fmt.Errorf(emsg, errUsage, pos[0])
			}
			length, err := strconv.ParseUint(pos[1], 10, 32)
			if err != nil {
				return fmt.Errorf(emsg, errUsage, pos[1])
			}
			args.Nseq, args.Len = int(nseq), int(length)
			switch {
			case fragSeq != "":
				args.Frag = []byte(fragSeq)
			case frag != "":
				if args.Frag, err = firstSeq(frag); err != nil {
					return err
				}
			}
			args.Wrtr = cmd.OutOrStdout()
			if out != "" && out != "-" {
				fp, err := os.Create(out)
				if err != nil {
					return err
				}
				defer fp.Close()
				args.Wrtr = fp
				if err := randseq.RandSeqMain(&args); err != nil {
					return err
				}
				return fp.Close()
			}
			return randseq.RandSeqMain(&args)
		},
	}
	const iseed int64 = 1637
	fl := cmd.Flags()
	fl.Int64VarP(&args.Iseed, "seed", "r", iseed, "random number seed")
	fl.StringVarP(&out, "out", "o", "", "output file, default standard output")
	fl.StringVar(&args.Cmmt, "cmmt", args.Cmmt, "comment at the start of each sequence")
	fl.StringVar(&frag, "frag", "", "plant the first sequence from this file")
	fl.StringVar(&fragSeq, "frag-seq", "", "plant this sequence")
	fl.Float32Var(&args.FracFrag, "frac", 0.1, "fraction of sequences which get the fragment")
	return cmd
}
