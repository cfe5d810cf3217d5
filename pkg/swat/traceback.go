package swat

import (
	"errors"
	"fmt"

	"github.com/andrew-torda/matrix"
	. "github.com/andrew-torda/seqscreen/pkg/seq/common"
)

// ErrBacktrack means a cell could not be derived from any of its
// neighbours. The matrix was not built by BuildMatrix with the same
// sequences, Scorer and sigma. It is a programming error, not bad data.
var ErrBacktrack = errors.New("backtracking error")

// reverse flips a slice in place.
func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// Reconstruct walks back from the best cell of fmat to recover one
// optimal local alignment of s1 and s2. scr and sigma must be what was
// given to BuildMatrix.
// The walk starts at the first maximum (row by row) and stops at a
// zero. At each step the moves are tried in a fixed order: diagonal,
// then up (a symbol of s1 against a gap), then left (a gap against a
// symbol of s2). The first one which reproduces the cell value is taken.
func Reconstruct(fmat *matrix.FMatrix2d, s1, s2 []byte, scr Scorer, sigma float32) (Result, error) {
	if nr, nc := fmat.Size(); nr != len(s1)+1 || nc != len(s2)+1 {
		return Result{}, fmt.Errorf("%w: matrix is %d x %d, sequence lengths %d and %d",
			ErrBacktrack, nr, nc, len(s1), len(s2))
	}
	mat := fmat.Mat
	max_i, max_j := maxCell(mat)
	r := Result{Score: mat[max_i][max_j], End1: max_i, End2: max_j}

	bigger := max_i     //     Longest possible alignment is
	if max_j > bigger { // every symbol against a gap, but
		bigger = max_j //  guess at the longer one + 10 %
	}
	al1 := make([]byte, 0, bigger+bigger/10)
	al2 := make([]byte, 0, bigger+bigger/10)

	i, j := max_i, max_j
	for mat[i][j] > 0 {
		here := mat[i][j]
		switch {
		case i > 0 && j > 0 && here == mat[i-1][j-1]+scr.Score(s1[i-1], s2[j-1]):
			al1 = append(al1, s1[i-1])
			al2 = append(al2, s2[j-1])
			i--
			j--
		case i > 0 && here == mat[i-1][j]-sigma:
			al1 = append(al1, s1[i-1])
			al2 = append(al2, GapChar)
			i--
		case j > 0 && here == mat[i][j-1]-sigma:
			al1 = append(al1, GapChar)
			al2 = append(al2, s2[j-1])
			j--
		default:
			return Result{}, fmt.Errorf("%w at row %d column %d, value %v", ErrBacktrack, i, j, here)
		}
	}
	reverse(al1)
	reverse(al2)
	r.Start1, r.Start2 = i, j
	r.Al1, r.Al2 = string(al1), string(al2)
	return r, nil
}
