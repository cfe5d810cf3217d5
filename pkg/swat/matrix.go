package swat

import (
	"github.com/andrew-torda/matrix"
)

// cell is the Smith-Waterman recurrence for one position. left, up and
// diag are M[i][j-1], M[i-1][j] and M[i-1][j-1]. scr is the score of
// the pair of symbols meeting at (i, j).
func cell(left, up, diag, scr, sigma float32) float32 {
	return max(left-sigma, up-sigma, diag+scr, 0)
}

// BuildMatrix fills out the local alignment matrix for s1 and s2.
// The matrix is (len(s1)+1) x (len(s2)+1). Row 0 and column 0 stay zero,
// so no cell is ever negative. We walk along each row, left to right,
// with rows running over s1.
// Any pair of sequences is fine, including empty ones.
func BuildMatrix(s1, s2 []byte, scr Scorer, sigma float32) *matrix.FMatrix2d {
	fmat := matrix.NewFMatrix2d(len(s1)+1, len(s2)+1)
	mat := fmat.Mat
	for i := 1; i <= len(s1); i++ {
		prev, cur := mat[i-1], mat[i]
		a := s1[i-1]
		for j := 1; j <= len(s2); j++ {
			cur[j] = cell(cur[j-1], prev[j], prev[j-1], scr.Score(a, s2[j-1]), sigma)
		}
	}
	return fmat
}

// maxCell returns the position of the biggest value in the matrix.
// Ties go to the first one seen when walking row by row, so the answer
// does not depend on anything but the matrix contents.
func maxCell(mat [][]float32) (max_i, max_j int) {
	max_scr := mat[0][0]
	for i, row := range mat {
		for j, v := range row {
			if v > max_scr {
				max_scr = v
				max_i, max_j = i, j
			}
		}
	}
	return max_i, max_j
}

// MaxScore returns the biggest value in a matrix made by BuildMatrix.
func MaxScore(fmat *matrix.FMatrix2d) float32 {
	i, j := maxCell(fmat.Mat)
	return fmat.Mat[i][j]
}
