// 20 Dec 2017

// Package seq reads the sequences that get aligned or screened. They
// usually begin their lives in fasta format, or fastq if they are reads
// from a sequencer, often gzipped. Both formats are read by the same
// functions and the caller does not have to say which it is.
package seq

import (
	"fmt"
	"strings"
)

// Seq is one sequence with its comment line. For fastq input, Qual has
// the quality string, otherwise it is nil.
type Seq struct {
	cmmt string
	seq  []byte
	qual []byte
}

// New makes a sequence from a comment and the symbols.
func New(cmmt string, s []byte) Seq { return Seq{cmmt: cmmt, seq: s} }

// GetSeq returns the sequence as the original byte slice
func (s Seq) GetSeq() []byte { return s.seq }

// GetCmmt returns the comment, without the leading ">" or "@"
func (s Seq) GetCmmt() string { return s.cmmt }

// GetQual returns the fastq quality line, nil for fasta input.
func (s Seq) GetQual() []byte { return s.qual }

// Len is the number of symbols
func (s Seq) Len() int { return len(s.seq) }

// Id returns the first word in the comment which is usually the
// identifier. It is empty if the comment is.
func (s Seq) Id() string {
	if f := strings.Fields(s.cmmt); len(f) > 0 {
		return f[0]
	}
	return ""
}

// Upper changes a sequence to upper case, in place.
// It only works with bytes, not runes.
// It returns an error if it meets a symbol it does
// not like (value 128 or higher).
func (s *Seq) Upper() error {
	const diff = 'a' - 'A'
	const symerr = "bad sym \"%c\" at position %d starting \"%s\""
	for i, c := range s.seq {
		if c >= MaxSym {
			return fmt.Errorf(symerr, c, i, trimStr(s.cmmt, 40))
		}
		if 'a' <= c && c <= 'z' {
			s.seq[i] -= diff
		}
	}
	return nil
}

// String returns a sequence in fasta format, with its comment at
// the start.
func (s Seq) String() string {
	return fmt.Sprintf("%c%s\n%s", cmmtChar, s.cmmt, s.seq)
}

// We only read ascii characters, so anything from here up is not valid.
const MaxSym byte = 128

// trimStr trims a string to n bytes if it is longer
func trimStr(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// SeqGrp is a group of sequences, in the order they were read.
type SeqGrp struct {
	seqs []Seq
}

// GetNSeq returns the number of sequences
func (seqgrp *SeqGrp) GetNSeq() int { return len(seqgrp.seqs) }

// GetSeqSlc returns the slice of sequences
func (seqgrp *SeqGrp) GetSeqSlc() []Seq { return seqgrp.seqs }

// Add appends a sequence to the group.
func (seqgrp *SeqGrp) Add(s Seq) { seqgrp.seqs = append(seqgrp.seqs, s) }

// Upper uppercases all the members of a group of sequences.
func (seqgrp *SeqGrp) Upper() error {
	for i := range seqgrp.seqs {
		if err := seqgrp.seqs[i].Upper(); err != nil {
			return err
		}
	}
	return nil
}

// Str2SeqGrp takes some strings and returns them as a seqgrp.
// prefix is an optional argument. Sequences need names/comments. If
// prefix is not given, sequences will be called "s0", "s1", ...
func Str2SeqGrp(sIn []string, prefix ...string) *SeqGrp {
	base := "s"
	if prefix != nil {
		base = prefix[0]
	}
	seqgrp := new(SeqGrp)
	for i, s := range sIn {
		seqgrp.Add(Seq{cmmt: fmt.Sprint(base, i), seq: []byte(s)})
	}
	return seqgrp
}
