// 18 Oct 2026

// Package swat does Smith-Waterman local alignments with a linear gap
// penalty. Every gap position costs sigma, there is no separate opening
// cost.
// There are two ways in.
//  1. Align builds the full matrix and walks back to give you the
//     alignment and its score. This costs len(s1) x len(s2) space.
//  2. ExistsAbove and Screen only tell you whether some local alignment
//     reaches a cutoff. They keep one or two rows and stop as soon as
//     the cutoff is reached. This is what you want for screening reads
//     against contaminants.
//
// Scoring is whatever the caller passes in as a Scorer. Nothing is kept
// between calls, so calls can be run in parallel.
package swat

import (
	"fmt"
	"io"
	"strings"

	. "github.com/andrew-torda/seqscreen/pkg/seq/common"
)

// Result is one optimal local alignment.
// Al1 and Al2 are the same length and contain GapChar where one sequence
// has nothing opposite the other. Start and End are the aligned region
// of each sequence, counting from zero, End not included, so
// s1[Start1:End1] is Al1 with the gaps taken out.
type Result struct {
	Score        float32
	Al1, Al2     string
	Start1, End1 int
	Start2, End2 int
}

// Align is BuildMatrix followed by Reconstruct.
// Empty sequences or sequences with nothing in common are not an error.
// They give a score of zero and empty strings.
// The only error is ErrBacktrack, which should not happen.
func Align(s1, s2 []byte, scr Scorer, sigma float32) (Result, error) {
	fmat := BuildMatrix(s1, s2, scr, sigma)
	return Reconstruct(fmat, s1, s2, scr, sigma)
}

// midline marks identical aligned pairs with '|', other pairs with '.'
// and positions opposite gaps with a space.
func (r Result) midline() string {
	var b strings.Builder
	b.Grow(len(r.Al1))
	for i := 0; i < len(r.Al1) && i < len(r.Al2); i++ {
		c, d := r.Al1[i], r.Al2[i]
		switch {
		case c == GapChar || d == GapChar:
			b.WriteByte(' ')
		case c == d:
			b.WriteByte('|')
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}

// Fprint writes the alignment to w in blocks of width columns, with the
// starting position (from 1) of each line in front of it.
func (r Result) Fprint(w io.Writer, width int) error {
	if width < 1 {
		width = 60
	}
	if _, err := fmt.Fprintf(w, "score %g  s1 %d-%d  s2 %d-%d\n",
		r.Score, r.Start1+1, r.End1, r.Start2+1, r.End2); err != nil {
		return err
	}
	mid := r.midline()
	p1, p2 := r.Start1, r.Start2
	for k := 0; k < len(r.Al1); k += width {
		end := min(k+width, len(r.Al1))
		a, b := r.Al1[k:end], r.Al2[k:end]
		_, err := fmt.Fprintf(w, "%8d %s\n%8s %s\n%8d %s\n\n", p1+1, a, "", mid[k:end], p2+1, b)
		if err != nil {
			return err
		}
		p1 += len(a) - strings.Count(a, string(GapChar))
		p2 += len(b) - strings.Count(b, string(GapChar))
	}
	return nil
}

// String returns the alignment laid out by Fprint, 60 columns wide.
func (r Result) String() string {
	var b strings.Builder
	r.Fprint(&b, 60)
	return b.String()
}
