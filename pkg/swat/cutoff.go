package swat

// ExistsAbove says whether any local alignment of s1 and s2 scores at
// least cutoff. It runs the same recurrence as BuildMatrix, in the same
// order, but only keeps two rows and stops at the first cell that gets
// to cutoff. It is the reference for Screen.
//
// M[0][0] is zero and is the first cell in the walk, so a cutoff of
// zero or less is always reached, even by empty sequences.
func ExistsAbove(s1, s2 []byte, scr Scorer, sigma, cutoff float32) bool {
	_, _, ok := firstAbove(s1, s2, scr, sigma, cutoff)
	return ok
}

// Screen answers the same question as ExistsAbove and visits cells in
// the same order, so it stops at the same cell. Unless built with the
// purego tag, it uses a faster loop which does not call the Scorer for
// every cell.
func Screen(s1, s2 []byte, scr Scorer, sigma, cutoff float32) bool {
	_, _, ok := screenAt(s1, s2, scr, sigma, cutoff)
	return ok
}

// firstAbove returns the first cell, walking row by row, whose value is
// at least cutoff.
func firstAbove(s1, s2 []byte, scr Scorer, sigma, cutoff float32) (int, int, bool) {
	if cutoff <= 0 {
		return 0, 0, true
	}
	prev := make([]float32, len(s2)+1) // column zero is never written,
	cur := make([]float32, len(s2)+1)  // so it stays at zero
	for i := 1; i <= len(s1); i++ {
		a := s1[i-1]
		for j := 1; j <= len(s2); j++ {
			v := cell(cur[j-1], prev[j], prev[j-1], scr.Score(a, s2[j-1]), sigma)
			if v >= cutoff {
				return i, j, true
			}
			cur[j] = v
		}
		prev, cur = cur, prev
	}
	return 0, 0, false
}
