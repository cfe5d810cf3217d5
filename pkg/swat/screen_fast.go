//go:build !purego

package swat

// screenAt is the fast version of firstAbove. The scores of a symbol
// from s1 against all of s2 are worked out the first time the symbol
// is seen, so the inner loop is a slice lookup instead of an interface
// call. There is one row, overwritten in place. diag carries
// M[i-1][j-1] and left carries M[i][j-1].
// The walk order is that of firstAbove and it must stay that way.
func screenAt(s1, s2 []byte, scr Scorer, sigma, cutoff float32) (int, int, bool) {
	if cutoff <= 0 {
		return 0, 0, true
	}
	var prof [256][]float32
	row := make([]float32, len(s2)+1)
	for i := 1; i <= len(s1); i++ {
		a := s1[i-1]
		p := prof[a]
		if p == nil {
			p = make([]float32, len(s2))
			for j, b := range s2 {
				p[j] = scr.Score(a, b)
			}
			prof[a] = p
		}
		var diag, left float32
		for j, s := range p {
			up := row[j+1]
			v := max(left-sigma, up-sigma, diag+s, 0)
			if v >= cutoff {
				return i, j + 1, true
			}
			row[j+1] = v
			diag, left = up, v
		}
	}
	return 0, 0, false
}
