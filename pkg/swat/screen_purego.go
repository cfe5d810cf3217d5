//go:build purego

package swat

func screenAt(s1, s2 []byte, scr Scorer, sigma, cutoff float32) (int, int, bool) {
	return firstAbove(s1, s2, scr, sigma, cutoff)
}
