// Reader for fasta and fastq format files.

package seq

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// A record starts with one of these.
const (
	cmmtChar  = '>' // fasta
	fastqChar = '@' // fastq
	plusChar  = '+' // fastq line between sequence and quality
)

// ErrNoSeqs is returned when the input has no sequences at all.
var ErrNoSeqs = errors.New("no sequences found")

const defaultReadSize = 64 * 1024

type lexer struct {
	rdr   *bufio.Reader
	emit  func(Seq) error
	buf   []byte // current line, reused
	cmmt  string // comment of the record being read
	seq   []byte // partial sequence
	nline int
	nseq  int
	err   error
}

type stateFn func(*lexer) stateFn

// line returns the next line without its line ending. The slice is only
// good until the next call. ok is false at the end of input or on error.
func (l *lexer) line() ([]byte, bool) {
	l.buf = l.buf[:0]
	for {
		b, err := l.rdr.ReadSlice('\n')
		l.buf = append(l.buf, b...)
		switch err {
		case nil:
			l.nline++
			return bytes.TrimRight(l.buf, "\r\n"), true
		case bufio.ErrBufferFull: // Very long line, keep going
			continue
		case io.EOF:
			if len(l.buf) == 0 {
				return nil, false
			}
			l.nline++
			return bytes.TrimRight(l.buf, "\r\n"), true
		default:
			l.err = err
			return nil, false
		}
	}
}

// nonBlank returns the next line that is not empty or white space.
func (l *lexer) nonBlank() ([]byte, bool) {
	for {
		b, ok := l.line()
		if !ok || len(bytes.TrimSpace(b)) > 0 {
			return b, ok
		}
	}
}

// errorf records a format error. If reading has already failed, that
// error is kept, since a short record is what a failed read looks like.
func (l *lexer) errorf(format string, a ...any) stateFn {
	if l.err != nil {
		return nil
	}
	l.err = fmt.Errorf("line %d: "+format, append([]any{l.nline}, a...)...)
	return nil
}

// send passes a finished record to the caller. It returns false if
// the caller wants us to stop.
func (l *lexer) send(s Seq) bool {
	l.nseq++
	if err := l.emit(s); err != nil {
		l.err = err
		return false
	}
	return true
}

// appendNoWhite appends b to dst, leaving out white space.
func appendNoWhite(dst, b []byte) []byte {
	for _, c := range b {
		switch c {
		case ' ', '\t', '\r', '\v', '\f':
		default:
			dst = append(dst, c)
		}
	}
	return dst
}

// gstart looks at the first line to decide what the format is.
func gstart(l *lexer) stateFn {
	b, ok := l.nonBlank()
	if !ok {
		return nil
	}
	b = bytes.TrimSpace(b)
	switch b[0] {
	case cmmtChar:
		l.cmmt = string(b[1:])
		return gfasta
	case fastqChar:
		l.cmmt = string(b[1:])
		return gfastq
	}
	return l.errorf("expected '%c' or '%c' at start of file, got %q", cmmtChar, fastqChar, trimStr(string(b), 40))
}

// gfasta reads sequence lines until the next comment or the end.
func gfasta(l *lexer) stateFn {
	for {
		b, ok := l.line()
		if !ok {
			if l.err == nil {
				l.send(Seq{cmmt: l.cmmt, seq: l.seq})
			}
			return nil
		}
		if len(b) > 0 && b[0] == cmmtChar {
			s := Seq{cmmt: l.cmmt, seq: l.seq}
			l.cmmt, l.seq = string(b[1:]), nil
			if !l.send(s) {
				return nil
			}
			continue
		}
		l.seq = appendNoWhite(l.seq, b)
	}
}

// gfastq reads the three lines after an '@' header.
func gfastq(l *lexer) stateFn {
	b, ok := l.line()
	if !ok {
		return l.errorf("fastq record %q has no sequence", l.cmmt)
	}
	s := Seq{cmmt: l.cmmt, seq: appendNoWhite(nil, b)}
	if b, ok = l.line(); !ok || len(b) == 0 || b[0] != plusChar {
		return l.errorf("fastq record %q, expected '%c' line", l.cmmt, plusChar)
	}
	if b, ok = l.line(); !ok {
		return l.errorf("fastq record %q has no quality line", l.cmmt)
	}
	s.qual = append([]byte(nil), bytes.TrimSpace(b)...)
	if len(s.qual) != len(s.seq) {
		return l.errorf("fastq record %q, sequence length %d, quality length %d", l.cmmt, len(s.seq), len(s.qual))
	}
	if !l.send(s) {
		return nil
	}
	if b, ok = l.nonBlank(); !ok {
		return nil
	}
	b = bytes.TrimSpace(b)
	if b[0] != fastqChar {
		return l.errorf("expected '%c' to start fastq record, got %q", fastqChar, trimStr(string(b), 40))
	}
	l.cmmt = string(b[1:])
	return gfastq
}

// Each reads fasta or fastq from rdr and calls fn for every record in
// the order they come. It stops at the first error from fn or from
// reading. The format is decided by the first character.
// Empty sequences are allowed in fasta, but no records at all is
// ErrNoSeqs.
func Each(rdr io.Reader, fn func(Seq) error) error {
	l := lexer{rdr: bufio.NewReaderSize(rdr, defaultReadSize), emit: fn}
	for state := gstart; state != nil; {
		state = state(&l)
	}
	if l.err == nil && l.nseq == 0 {
		l.err = ErrNoSeqs
	}
	return l.err
}

// ReadSeqs reads all the sequences from rdr and appends them to seqgrp.
func ReadSeqs(rdr io.Reader, seqgrp *SeqGrp) error {
	return Each(rdr, func(s Seq) error {
		seqgrp.Add(s)
		return nil
	})
}
