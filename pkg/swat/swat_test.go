package swat_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/andrew-torda/seqscreen/pkg/swat"
)

func rev(s string) string {
	t := []byte(s)
	for i, j := 0, len(t)-1; i < j; i, j = i+1, j-1 {
		t[i], t[j] = t[j], t[i]
	}
	return string(t)
}

// TestWorked checks every cell of a small matrix worked out by hand.
func TestWorked(t *testing.T) {
	s1, s2 := []byte("ACGT"), []byte("AGT")
	scr := swat.Ident{Match: 2, Mismatch: -1}
	const sigma = 1
	want := [][]float32{
		{0, 0, 0, 0},
		{0, 2, 1, 0},
		{0, 1, 1, 0},
		{0, 0, 3, 2},
		{0, 0, 2, 5},
	}
	fmat := swat.BuildMatrix(s1, s2, scr, sigma)
	if nr, nc := fmat.Size(); nr != 5 || nc != 4 {
		t.Fatal("matrix size wanted 5 x 4, got", nr, nc)
	}
	for i, row := range want {
		for j, w := range row {
			if got := fmat.Mat[i][j]; got != w {
				t.Errorf("cell %d %d wanted %v got %v", i, j, w, got)
			}
		}
	}
	if m := swat.MaxScore(fmat); m != 5 {
		t.Fatal("max score wanted 5, got", m)
	}
	r, err := swat.Reconstruct(fmat, s1, s2, scr, sigma)
	if err != nil {
		t.Fatal(err)
	}
	if r.Score != 5 || r.Al1 != "ACGT" || r.Al2 != "A-GT" {
		t.Fatalf("got score %v al1 %q al2 %q", r.Score, r.Al1, r.Al2)
	}
	if r.Start1 != 0 || r.End1 != 4 || r.Start2 != 0 || r.End2 != 3 {
		t.Fatalf("bad coordinates %+v", r)
	}
	for _, x := range []struct {
		cutoff float32
		exp    bool
	}{{4, true}, {5, true}, {6, false}} {
		if got := swat.ExistsAbove(s1, s2, scr, sigma, x.cutoff); got != x.exp {
			t.Error("ExistsAbove cutoff", x.cutoff, "wanted", x.exp)
		}
		if got := swat.Screen(s1, s2, scr, sigma, x.cutoff); got != x.exp {
			t.Error("Screen cutoff", x.cutoff, "wanted", x.exp)
		}
	}
}

var testpairs = []struct {
	s1, s2   string
	scr      swat.Ident
	sigma    float32
	scr_exp  float32
	al1, al2 string // empty if we only check the score
}{
	{"ACGT", "AGT", swat.Ident{Match: 2, Mismatch: -1}, 1, 5, "ACGT", "A-GT"},
	{"TGTTACGG", "GGTTGACTA", swat.Ident{Match: 3, Mismatch: -3}, 2, 13, "GTT-AC", "GTTGAC"},
	{"AAAGGG", "TTAAAAGGGGTT", swat.Ident{Match: 1, Mismatch: -1}, 5, 6, "AAAGGG", "AAAGGG"},
	{"a", "a", swat.Ident{Match: 5, Mismatch: 2}, 1, 5, "a", "a"},
	{"abc", "xyz", swat.Ident{Match: 5, Mismatch: -1}, 1, 0, "", ""},
	{"abcde", "abe", swat.Ident{Match: 5, Mismatch: -2}, 1, 13, "abcde", "ab--e"},
	{"xabc", "aby", swat.Ident{Match: 5, Mismatch: -1}, 1, 10, "ab", "ab"},
	{"GATTACA", "GATTACA", swat.Simple, 3, 7, "GATTACA", "GATTACA"},
}

// TestTable runs through the pairs. The score must not change if the
// sequences are swapped or both are reversed.
func TestTable(t *testing.T) {
	for _, x := range testpairs {
		s1, s2 := []byte(x.s1), []byte(x.s2)
		r, err := swat.Align(s1, s2, x.scr, x.sigma)
		if err != nil {
			t.Fatal(x.s1, x.s2, err)
		}
		if r.Score != x.scr_exp {
			t.Fatal("Wrong score while aligning\n", x.s1, "and", x.s2, "Expected", x.scr_exp, "got", r.Score)
		}
		if r.Al1 != x.al1 || r.Al2 != x.al2 {
			t.Fatalf("aligning %s %s wanted\n%s\n%s\ngot\n%s\n%s", x.s1, x.s2, x.al1, x.al2, r.Al1, r.Al2)
		}
		r2, _ := swat.Align(s2, s1, x.scr, x.sigma)
		r3, _ := swat.Align([]byte(rev(x.s2)), []byte(rev(x.s1)), x.scr, x.sigma)
		if r2.Score != r.Score || r3.Score != r.Score {
			t.Fatal("swapped or reversed scores differ", x.s1, x.s2, r.Score, r2.Score, r3.Score)
		}
	}
}

// TestEmpty checks that empty sequences are fine and score zero.
func TestEmpty(t *testing.T) {
	for _, s := range []string{"", "A", "ACGTACGT"} {
		for _, p := range [][2]string{{"", s}, {s, ""}} {
			r, err := swat.Align([]byte(p[0]), []byte(p[1]), swat.Simple, 3)
			if err != nil {
				t.Fatal(err)
			}
			if r.Score != 0 || r.Al1 != "" || r.Al2 != "" {
				t.Fatalf("%q %q gave %+v", p[0], p[1], r)
			}
			if swat.ExistsAbove([]byte(p[0]), []byte(p[1]), swat.Simple, 3, 1) {
				t.Fatal("empty sequence reached cutoff 1")
			}
			if !swat.Screen([]byte(p[0]), []byte(p[1]), swat.Simple, 3, 0) {
				t.Fatal("cutoff 0 must always be reached")
			}
		}
	}
}

// TestIdentity aligns sequences with themselves.
func TestIdentity(t *testing.T) {
	seqs := []string{"A", "ACGT", "TTTTTTTT", "ACGTTGCAACGTAGGA", "acdefghiklmnpqrstvwy"}
	for _, mm := range []float32{-3, -1, 0} {
		scr := swat.Ident{Match: 3, Mismatch: mm}
		for _, s := range seqs {
			r, err := swat.Align([]byte(s), []byte(s), scr, 2)
			if err != nil {
				t.Fatal(err)
			}
			if r.Score != float32(3*len(s)) {
				t.Fatal(s, "wanted score", 3*len(s), "got", r.Score)
			}
			if r.Al1 != s || r.Al2 != s {
				t.Fatalf("%s aligned with itself gave %s %s", s, r.Al1, r.Al2)
			}
		}
	}
}

// TestBacktrackError gives Reconstruct a matrix made with a different
// scoring scheme.
func TestBacktrackError(t *testing.T) {
	s1, s2 := []byte("ACGT"), []byte("AGT")
	fmat := swat.BuildMatrix(s1, s2, swat.Ident{Match: 2, Mismatch: -1}, 1)
	_, err := swat.Reconstruct(fmat, s1, s2, swat.Ident{Match: 3, Mismatch: -1}, 1)
	if !errors.Is(err, swat.ErrBacktrack) {
		t.Fatal("wanted ErrBacktrack, got", err)
	}
	_, err = swat.Reconstruct(fmat, s1, s2[:2], swat.Ident{Match: 2, Mismatch: -1}, 1)
	if !errors.Is(err, swat.ErrBacktrack) {
		t.Fatal("wrong sized matrix wanted ErrBacktrack, got", err)
	}
}

// TestScoreFunc checks a closure can be used for scoring and that it
// is used in the traceback, not only in filling the matrix.
func TestScoreFunc(t *testing.T) {
	purine := func(c byte) bool { return c == 'A' || c == 'G' }
	scr := swat.ScoreFunc(func(a, b byte) float32 {
		switch {
		case a == b:
			return 2
		case purine(a) == purine(b):
			return 1
		}
		return -2
	})
	r, err := swat.Align([]byte("TTAGCC"), []byte("GGGACT"), scr, 2)
	if err != nil {
		t.Fatal(err)
	}
	if r.Score <= 0 {
		t.Fatal("expected a positive score, got", r.Score)
	}
	if got := swat.ExistsAbove([]byte("TTAGCC"), []byte("GGGACT"), scr, 2, r.Score); !got {
		t.Fatal("ExistsAbove did not reach the alignment score", r.Score)
	}
}

func TestPrint(t *testing.T) {
	r, err := swat.Align([]byte("TGTTACGG"), []byte("GGTTGACTA"), swat.Ident{Match: 3, Mismatch: -3}, 2)
	if err != nil {
		t.Fatal(err)
	}
	s := r.String()
	for _, want := range []string{"score 13", "s1 2-6", "s2 2-7", "GTT-AC", "||| ||", "GTTGAC"} {
		if !strings.Contains(s, want) {
			t.Errorf("printed alignment lacks %q\n%s", want, s)
		}
	}
	var b strings.Builder
	if err := r.Fprint(&b, 4); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(b.String(), "\n\n"); n != 2 {
		t.Fatal("width 4 on 6 columns should give 2 blocks, got", n, "\n", b.String())
	}
}
