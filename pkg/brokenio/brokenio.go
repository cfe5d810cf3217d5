// brokenio is a wrapper around an io.Reader which goes wrong on
// purpose, so tests can check that read errors get through the fasta
// reader and the screening pipeline to the caller.
// Typical use: You get a reader from a file, a compressed source or
// a string. You write
//     reader = brokenio.NewReader(reader, 100)
// and the first 100 bytes come through as before. After that every
// Read returns ErrBroken.

package brokenio

import (
	"errors"
	"fmt"
	"io"
)

// ErrBroken is returned once the reader has run out of good bytes.
var ErrBroken = errors.New("brokenio: artificial read failure")

// BrknRdr passes through a set number of bytes and then fails.
type BrknRdr struct {
	rdr_orig io.Reader // Wrapped reader
	nGood    int       // how many bytes we let through
	nByte    int       // how many we have let through so far
	nCalled  int
	verbose  bool
}

// NewReader returns a reader which fails after nGood bytes.
// A negative nGood means never fail.
func NewReader(rIn io.Reader, nGood int) *BrknRdr {
	return &BrknRdr{rdr_orig: rIn, nGood: nGood}
}

// SetVerbose sets the verbosity flag to true or false
func (r *BrknRdr) SetVerbose(newV bool) { r.verbose = newV }

// Read passes the call on until nGood bytes have been read, after
// which it returns ErrBroken. The Read that crosses the limit is cut
// short and returns the error along with the good bytes.
func (r *BrknRdr) Read(p []byte) (int, error) {
	r.nCalled++
	if r.nGood < 0 {
		n, err := r.rdr_orig.Read(p)
		r.nByte += n
		return n, err
	}
	left := r.nGood - r.nByte
	if left <= 0 {
		return 0, ErrBroken
	}
	if len(p) > left {
		p = p[:left]
	}
	n, err := r.rdr_orig.Read(p)
	r.nByte += n
	if err == nil && r.nByte >= r.nGood {
		err = ErrBroken
	}
	return n, err
}

// Close closes the wrapped reader if it can be closed.
func (r *BrknRdr) Close() error {
	if r.verbose {
		fmt.Println("Closing", r.nCalled, "calls and", r.nByte, "bytes")
	}
	if c, ok := r.rdr_orig.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
