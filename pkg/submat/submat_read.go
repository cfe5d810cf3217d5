// 23 Feb 2018
// Read a substitution matrix. The format is the one from the BLAST
// distribution. '#' starts a comment. The first line is the alphabet,
// then one line per symbol with the symbol first and then its scores.

package submat

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/andrew-torda/matrix"
)

// Submat is a substitution matrix. It implements swat.Scorer.
type Submat struct {
	mat    *matrix.FMatrix2d
	cmap   [128]int8
	minScr float32 // what unknown symbols get
}

const notset int8 = -1

//go:embed data/*.txt
var builtin embed.FS

// String prints out a substitution matrix. Useful during debugging.
func (submat *Submat) String() string {
	var b strings.Builder
	var syms []byte
	for c := range submat.cmap {
		if submat.cmap[c] != notset && (c < 'a' || c > 'z') {
			syms = append(syms, byte(c))
		}
	}
	fmt.Fprintf(&b, "%4s", " ")
	for _, c := range syms {
		fmt.Fprintf(&b, "%4c", c)
	}
	b.WriteByte('\n')
	for _, c := range syms {
		fmt.Fprintf(&b, "%4c", c)
		for _, d := range syms {
			fmt.Fprintf(&b, "%4.0f", submat.Score(c, d))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// CmmtScanner is a wrapper around bufio.Scanner that will ignore anything
// after a comment character and remove leading and trailing white space.
type CmmtScanner struct {
	bufio.Scanner
	cmmt byte // Comment character
}

// NewCmmtScanner is a wrapper around scanner, but
//   - jumps over blank lines
//   - removes leading spaces
//   - removes anything after a comment character
func NewCmmtScanner(r io.Reader, cmmt byte) *CmmtScanner {
	s := bufio.NewScanner(r)
	return &CmmtScanner{*s, cmmt}
}

// CBytes presents exactly the same interface as scanner.Bytes, but
// has to do a bit more work.
// Before returning, we remove anything after the comment symbol and
// strip leading and trailing white space.
// If this leaves us with an empty string, we call Scan again.
// Like the Bytes function, this works directly in the i/o buffer
// and does not allocate any memory.
func (s *CmmtScanner) CBytes() []byte {
	ok := true
	for b := s.Bytes(); ok; ok, b = s.Scan(), s.Bytes() {
		if i := bytes.IndexByte(b, s.cmmt); i != -1 {
			b = b[:i]
		}
		b = bytes.TrimSpace(b)
		if len(b) > 0 {
			return b
		}
	}
	return nil
}

// alfbtLine reads the first non-comment line. It lists the allowed
// characters and each field has to be one character long.
// Lower case versions of letters get the same index as upper case.
func alfbtLine(inline []byte, submat *Submat) (int, error) {
	cmap := submat.cmap[:]
	for i := range cmap {
		cmap[i] = notset
	}
	f := bytes.Fields(inline)
	if len(f) == 0 {
		return 0, fmt.Errorf("no alphabet line")
	}
	for i, c := range f {
		if len(c) != 1 {
			return 0, fmt.Errorf("expected a single character, got %q", c)
		}
		if c[0] >= 128 {
			return 0, fmt.Errorf("non-ascii character in %q", inline)
		}
		cmap[c[0]] = int8(i)
	}
	for i, c := range f { // If not set, set both upper and lower case
		l := bytes.ToLower(c)[0]
		u := bytes.ToUpper(c)[0]
		if cmap[l] == notset {
			cmap[l] = int8(i)
		}
		if cmap[u] == notset {
			cmap[u] = int8(i)
		}
	}
	return len(f), nil
}

// ReadFrom reads a substitution matrix from rdr. name is only used in
// error messages.
func ReadFrom(rdr io.Reader, name string) (*Submat, error) {
	submat := new(Submat)
	r := "reading matrix from " + name
	scnr := NewCmmtScanner(rdr, '#')
	scnr.Scan()
	n_alfbt, err := alfbtLine(scnr.CBytes(), submat)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r, err)
	}
	submat.mat = matrix.NewFMatrix2d(n_alfbt, n_alfbt)
	seen := make([]bool, n_alfbt)
	nc := 0
	first := true
	for scnr.Scan() {
		line := scnr.CBytes()
		if line == nil {
			break
		}
		fields := bytes.Fields(line)
		if len(fields) != n_alfbt+1 {
			return nil, fmt.Errorf("%s: wrong number of items on line:\n%s", r, line)
		}
		c := fields[0]
		if len(c) != 1 || c[0] >= 128 || submat.cmap[c[0]] == notset {
			return nil, fmt.Errorf("%s: invalid character on line %s", r, line)
		}
		i := submat.cmap[c[0]]
		if seen[i] {
			return nil, fmt.Errorf("%s: %c appears twice", r, c[0])
		}
		seen[i] = true
		for j := 0; j < n_alfbt; j++ {
			f, err := strconv.ParseFloat(string(fields[j+1]), 32)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", r, err)
			}
			x := float32(f)
			submat.mat.Mat[i][j] = x
			if first || x < submat.minScr {
				submat.minScr, first = x, false
			}
		}
		nc++
	}
	if err := scnr.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", r, err)
	}
	if nc != n_alfbt {
		return nil, fmt.Errorf("%s: %d symbols but %d lines", r, n_alfbt, nc)
	}
	return submat, nil
}

// Read will read a substitution matrix from a filename.
func Read(fname string) (*Submat, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ReadFrom(fp, fname)
}

// Builtins lists the names of the matrices compiled in.
func Builtins() []string {
	ents, _ := builtin.ReadDir("data")
	var names []string
	for _, e := range ents {
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(names)
	return names
}

// Builtin returns one of the compiled in matrices, "blosum62" or "dna".
func Builtin(name string) (*Submat, error) {
	fp, err := builtin.Open("data/" + strings.ToLower(name) + ".txt")
	if err != nil {
		return nil, fmt.Errorf("no builtin matrix %q, have %v", name, Builtins())
	}
	defer fp.Close()
	return ReadFrom(fp, name)
}

// Load treats name as a builtin matrix if there is one, otherwise as a
// file name.
func Load(name string) (*Submat, error) {
	for _, b := range Builtins() {
		if strings.EqualFold(b, name) {
			return Builtin(b)
		}
	}
	return Read(name)
}

// Score returns the similarity score of bytes a and b. Symbols which
// are not in the matrix get the lowest score in the matrix.
func (submat *Submat) Score(a, b byte) float32 {
	if a >= 128 || b >= 128 {
		return submat.minScr
	}
	i, j := submat.cmap[a], submat.cmap[b]
	if i == notset || j == notset {
		return submat.minScr
	}
	return submat.mat.Mat[i][j]
}
