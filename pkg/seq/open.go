// 3 Aug 2020

package seq

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// fpGzip is what Open returns. Close shuts the decompressor (if there
// is one) and then the underlying file.
type fpGzip struct {
	fp   io.Closer
	rdr  io.Reader // what we actually read from
	zrdr *gzip.Reader
}

// Read makes sure we read from the decompressed stream if there is one.
func (fc *fpGzip) Read(p []byte) (int, error) { return fc.rdr.Read(p) }

// Close closes the decompressor, then the underlying file.
func (fc *fpGzip) Close() error {
	var e1 error
	if fc.zrdr != nil {
		e1 = fc.zrdr.Close()
	}
	return errors.Join(e1, fc.fp.Close())
}

// isGzip looks at the first two bytes for the gzip magic number.
func isGzip(b []byte) bool { return len(b) >= 2 && b[0] == 0x1f && b[1] == 0x8b }

// wrapMaybe decides if the stream is compressed and wraps it if
// necessary. We peek instead of seeking, so it works on pipes.
func wrapMaybe(rdr io.Reader, closer io.Closer) (*fpGzip, error) {
	br := bufio.NewReader(rdr)
	fc := &fpGzip{fp: closer, rdr: br}
	magic, _ := br.Peek(2)
	if !isGzip(magic) {
		return fc, nil
	}
	zrdr, err := gzip.NewReader(br)
	if err != nil {
		return nil, err
	}
	fc.zrdr, fc.rdr = zrdr, zrdr
	return fc, nil
}

// Open opens a sequence file for reading and decompresses it on the
// fly if it is gzipped. "" and "-" mean standard input.
func Open(fname string) (io.ReadCloser, error) {
	if fname == "" || fname == "-" {
		fc, err := wrapMaybe(os.Stdin, io.NopCloser(os.Stdin))
		if err != nil {
			return nil, err
		}
		return fc, nil
	}
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	fc, err := wrapMaybe(fp, fp)
	if err != nil {
		fp.Close()
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return fc, nil
}

// EachFile calls fn for every sequence in a file, as Each does.
// Regular files are memory mapped. Anything else (stdin, pipes) is read
// as a stream. Compressed files work either way.
func EachFile(fname string, fn func(Seq) error) error {
	if err := eachFile(fname, fn); err != nil {
		if fname == "" || fname == "-" {
			fname = "stdin"
		}
		return fmt.Errorf("reading %s: %w", fname, err)
	}
	return nil
}

func eachFile(fname string, fn func(Seq) error) error {
	if fname == "" || fname == "-" {
		return eachStream(fname, fn)
	}
	fi, err := os.Stat(fname)
	if err != nil {
		return err
	}
	if !fi.Mode().IsRegular() {
		return eachStream(fname, fn)
	}
	return eachMapped(fname, fi.Size(), fn)
}

func eachStream(fname string, fn func(Seq) error) error {
	fp, err := Open(fname)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Each(fp, fn)
}

// eachMapped maps the file and reads from the mapping. Sequences are
// copied out by the reader, so nothing points into the mapping after
// we unmap it.
func eachMapped(fname string, size int64, fn func(Seq) error) error {
	if size == 0 {
		return ErrNoSeqs // can not map a zero length file
	}
	fp, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer fp.Close()
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return err
	}
	defer mm.Unmap()
	var rdr io.Reader = bytes.NewReader(mm)
	if isGzip(mm) {
		zrdr, err := gzip.NewReader(rdr)
		if err != nil {
			return err
		}
		defer zrdr.Close()
		rdr = zrdr
	}
	return Each(rdr, fn)
}

// Readfile takes a filename and reads all the sequences from it.
func Readfile(fname string) (*SeqGrp, error) {
	seqgrp := new(SeqGrp)
	err := EachFile(fname, func(s Seq) error {
		seqgrp.Add(s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seqgrp, nil
}

// Count returns the number of records in a file. It reads the whole
// file, so it is only worth it when you want a total before starting,
// as for a progress bar.
func Count(fname string) (int, error) {
	n := 0
	err := EachFile(fname, func(Seq) error {
		n++
		return nil
	})
	return n, err
}
