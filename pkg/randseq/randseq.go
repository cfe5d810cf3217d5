// 31 July 2020

// Package randseq makes random sequences for testing and benchmarking.
// Sequences can be mutated and can have a fragment (a contaminant)
// planted in them, so screening has something to find.
package randseq

import (
	"fmt"
	"io"
	"math/rand"
	"sync"
)

// DNA is the alphabet we use unless told otherwise.
var DNA = []byte("ACGT")

// New returns a random sequence of length n over alfbt.
func New(rnd *rand.Rand, alfbt []byte, n int) []byte {
	ret := make([]byte, n)
	l := len(alfbt)
	for i := range ret {
		ret[i] = alfbt[rnd.Intn(l)]
	}
	return ret
}

// Mutate changes about frac of the positions in s, in place, always to a
// different symbol. It returns the number of sites changed.
func Mutate(rnd *rand.Rand, alfbt []byte, frac float32, s []byte) int {
	if len(alfbt) < 2 {
		return 0
	}
	n := 0
	for i, c := range s {
		if rnd.Float32() >= frac {
			continue
		}
		d := c
		for d == c {
			d = alfbt[rnd.Intn(len(alfbt))]
		}
		s[i] = d
		n++
	}
	return n
}

// Implant overwrites a randomly placed stretch of s with frag and
// returns where it went. If frag is longer than s, only the start of
// frag is used.
func Implant(rnd *rand.Rand, s, frag []byte) int {
	if len(frag) >= len(s) {
		copy(s, frag)
		return 0
	}
	pos := rnd.Intn(len(s) - len(frag) + 1)
	copy(s[pos:], frag)
	return pos
}

// RandSeqArgs is the set of arguments passed to the main function
type RandSeqArgs struct {
	Iseed    int64     // random number seed
	Wrtr     io.Writer // where we write to
	Cmmt     string    // Comment for the sequences
	Nseq     int       // number of sequences
	Len      int       // Length of sequences
	Frag     []byte    // planted in some sequences if not empty
	FracFrag float32   // fraction of sequences which get Frag
}

const cPerLine = 60

type rseq struct {
	s       []byte
	planted bool
}

// writeseq takes sequences from sChan and writes them in fasta format.
// n is the number of the sequence, so the output has comment lines
// ">something 1", ">something 2"... Planted sequences are marked.
func writeseq(sChan <-chan rseq, args *RandSeqArgs, wg *sync.WaitGroup, errp *error) {
	defer wg.Done()
	width := len(fmt.Sprintf("%d", args.Nseq))
	var i int
	for r := range sChan {
		if *errp != nil {
			continue // drain, so the sender does not block
		}
		i++
		mark := ""
		if r.planted {
			mark = " planted"
		}
		if _, err := fmt.Fprintf(args.Wrtr, ">%s %0*d%s\n", args.Cmmt, width, i, mark); err != nil {
			*errp = err
			continue
		}
		s := r.s
		for ; len(s) > cPerLine; s = s[cPerLine:] {
			if _, err := fmt.Fprintf(args.Wrtr, "%s\n", s[:cPerLine]); err != nil {
				*errp = err
			}
		}
		if _, err := fmt.Fprintf(args.Wrtr, "%s\n", s); err != nil {
			*errp = err
		}
	}
}

// RandSeqMain generates the sequences and writes them to args.Wrtr.
func RandSeqMain(args *RandSeqArgs) error {
	if args.Nseq < 0 || args.Len < 0 {
		return fmt.Errorf("randseq: negative number of sequences (%d) or length (%d)", args.Nseq, args.Len)
	}
	rnd := rand.New(rand.NewSource(args.Iseed))
	sChan := make(chan rseq)
	var wg sync.WaitGroup
	var err error
	wg.Add(1)
	go writeseq(sChan, args, &wg, &err)
	for i := 0; i < args.Nseq; i++ {
		r := rseq{s: New(rnd, DNA, args.Len)}
		if len(args.Frag) > 0 && rnd.Float32() < args.FracFrag {
			Implant(rnd, r.s, args.Frag)
			r.planted = true
		}
		sChan <- r
	}
	close(sChan)
	wg.Wait()
	return err
}
