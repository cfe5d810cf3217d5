package seq

// complement maps each nucleotide (IUPAC codes included) to its
// complement. Case is kept. Anything we do not know becomes N.
var complement = func() (c [256]byte) {
	for i := range c {
		c[i] = 'N'
	}
	pairs := []string{"AT", "CG", "RY", "KM", "BV", "DH", "SS", "WW", "NN", "UA"}
	for _, p := range pairs {
		a, b := p[0], p[1]
		c[a], c[a+'a'-'A'] = b, b+'a'-'A'
		if p != "UA" {
			c[b], c[b+'a'-'A'] = a, a+'a'-'A'
		}
	}
	c['-'] = '-'
	return c
}()

// RevComp returns the reverse complement of a nucleotide sequence in a
// new slice.
func RevComp(s []byte) []byte {
	n := len(s)
	out := make([]byte, n)
	for i, b := range s {
		out[n-1-i] = complement[b]
	}
	return out
}
