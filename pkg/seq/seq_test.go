package seq_test

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/seqscreen/pkg/brokenio"
	. "github.com/andrew-torda/seqscreen/pkg/seq"
	"github.com/andrew-torda/seqscreen/pkg/seq/common"
)

const fasta = `> s1 first one
ACGT
acgt

>s2
GG G
>empty
>s4
T
`

const fastq = `@r1 some read
ACGTAC
+
IIIIII

@r2
GG
+r2
#I
`

func collect(t *testing.T, s string) []Seq {
	t.Helper()
	var seqs []Seq
	err := Each(strings.NewReader(s), func(s Seq) error {
		seqs = append(seqs, s)
		return nil
	})
	require.NoError(t, err)
	return seqs
}

func TestFasta(t *testing.T) {
	seqs := collect(t, fasta)
	require.Len(t, seqs, 4)
	assert.Equal(t, "ACGTacgt", string(seqs[0].GetSeq()))
	assert.Equal(t, " s1 first one", seqs[0].GetCmmt())
	assert.Equal(t, "s1", seqs[0].Id())
	assert.Equal(t, "GGG", string(seqs[1].GetSeq()))
	assert.Equal(t, 0, seqs[2].Len(), "empty fasta record")
	assert.Equal(t, "empty", seqs[2].Id())
	assert.Equal(t, "T", string(seqs[3].GetSeq()))
	assert.Nil(t, seqs[0].GetQual())
}

func TestFastq(t *testing.T) {
	seqs := collect(t, fastq)
	require.Len(t, seqs, 2)
	assert.Equal(t, "ACGTAC", string(seqs[0].GetSeq()))
	assert.Equal(t, "IIIIII", string(seqs[0].GetQual()))
	assert.Equal(t, "r1", seqs[0].Id())
	assert.Equal(t, "#I", string(seqs[1].GetQual()))
}

func TestCRLF(t *testing.T) {
	seqs := collect(t, ">a\r\nAC\r\nGT\r\n")
	require.Len(t, seqs, 1)
	assert.Equal(t, "ACGT", string(seqs[0].GetSeq()))
}

func TestLongLine(t *testing.T) {
	long := strings.Repeat("ACGT", 50000)
	seqs := collect(t, ">long\n"+long+"\n>short\nA")
	require.Len(t, seqs, 2)
	assert.Equal(t, long, string(seqs[0].GetSeq()))
	assert.Equal(t, "A", string(seqs[1].GetSeq()))
}

func TestBad(t *testing.T) {
	bad := []struct {
		name, in string
	}{
		{"no header", "ACGT\n>s1\nAC\n"},
		{"short quality", "@r1\nACGT\n+\nIII\n"},
		{"no plus", "@r1\nACGT\nIIII\n"},
		{"truncated", "@r1\nACGT\n+\n"},
		{"fasta after fastq", "@r1\nAC\n+\nII\n>s2\nAC\n"},
	}
	for _, tt := range bad {
		err := Each(strings.NewReader(tt.in), func(Seq) error { return nil })
		assert.Error(t, err, tt.name)
	}
}

func TestNoSeqs(t *testing.T) {
	for _, s := range []string{"", "\n\n", "  \n"} {
		err := Each(strings.NewReader(s), func(Seq) error { return nil })
		assert.ErrorIs(t, err, ErrNoSeqs, "input %q", s)
	}
}

func TestStopEarly(t *testing.T) {
	stop := errors.New("stop")
	n := 0
	err := Each(strings.NewReader(fasta), func(Seq) error {
		n++
		if n == 2 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, n)
}

// Read errors part way through the input have to come back out.
func TestBrokenReader(t *testing.T) {
	for _, ngood := range []int{0, 5, 12, len(fasta) - 1} {
		rdr := brokenio.NewReader(strings.NewReader(fasta), ngood)
		err := Each(rdr, func(Seq) error { return nil })
		assert.ErrorIs(t, err, brokenio.ErrBroken, "fasta failing after %d bytes", ngood)
	}
	// Failing in each of the four lines of a fastq record must not look
	// like a badly formed record.
	const fq = "@r1\nACGTAC\n+\nIIIIII\n@r2\nGGGG\n+\nIIII\n"
	for _, ngood := range []int{2, 6, 12, 14, 22, 26, 30, len(fq) - 1} {
		rdr := brokenio.NewReader(strings.NewReader(fq), ngood)
		err := Each(rdr, func(Seq) error { return nil })
		assert.ErrorIs(t, err, brokenio.ErrBroken, "fastq failing after %d bytes", ngood)
	}
}

// A gzipped fastq file cut short is a read error, not a format error.
func TestTruncatedGz(t *testing.T) {
	fname, err := common.WrtTempGz(strings.Repeat(fastq, 200))
	require.NoError(t, err)
	defer os.Remove(fname)
	b, err := os.ReadFile(fname)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(fname, b[:len(b)/2], 0o644))
	_, err = Readfile(fname)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestFiles(t *testing.T) {
	plain, err := common.WrtTemp(fasta)
	require.NoError(t, err)
	defer os.Remove(plain)
	gz, err := common.WrtTempGz(fastq)
	require.NoError(t, err)
	defer os.Remove(gz)

	seqgrp, err := Readfile(plain)
	require.NoError(t, err)
	assert.Equal(t, 4, seqgrp.GetNSeq())

	seqgrp, err = Readfile(gz)
	require.NoError(t, err)
	require.Equal(t, 2, seqgrp.GetNSeq())
	assert.Equal(t, "GG", string(seqgrp.GetSeqSlc()[1].GetSeq()))

	fp, err := Open(gz)
	require.NoError(t, err)
	seqgrp = new(SeqGrp)
	require.NoError(t, ReadSeqs(fp, seqgrp))
	require.NoError(t, fp.Close())
	assert.Equal(t, 2, seqgrp.GetNSeq())
}

func TestFileErrors(t *testing.T) {
	empty, err := common.WrtTemp("")
	require.NoError(t, err)
	defer os.Remove(empty)
	_, err = Readfile(empty)
	assert.ErrorIs(t, err, ErrNoSeqs)
	assert.Contains(t, err.Error(), empty)

	_, err = Readfile(empty + "_not_there")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestUpper(t *testing.T) {
	seqgrp := Str2SeqGrp([]string{"acgT", "xyz"})
	require.NoError(t, seqgrp.Upper())
	assert.Equal(t, "ACGT", string(seqgrp.GetSeqSlc()[0].GetSeq()))
	assert.Equal(t, "XYZ", string(seqgrp.GetSeqSlc()[1].GetSeq()))
	assert.Equal(t, "s1", seqgrp.GetSeqSlc()[1].GetCmmt())

	s := New("bad", []byte{'a', 200})
	assert.Error(t, s.Upper())
	assert.Equal(t, ">bad\nA\xc8", s.String())
}

func TestRevComp(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"A", "T"},
		{"ACGTN", "NACGT"},
		{"acgRY", "RYcgt"},
		{"AC-GU", "AC-GT"},
		{"XZ", "NN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, string(RevComp([]byte(tt.in))), tt.in)
	}
	s := []byte("GATTACA")
	assert.Equal(t, "GATTACA", string(RevComp(RevComp(s))))
}
