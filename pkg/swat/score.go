package swat

// Scorer says how similar two symbols are. Implementations must be pure
// and defined for every pair of symbols that can turn up in the
// sequences. A substitution matrix (package submat) is a Scorer, as is
// Ident.
type Scorer interface {
	Score(a, b byte) float32
}

// ScoreFunc lets a plain function or closure act as a Scorer.
type ScoreFunc func(a, b byte) float32

// Score calls f.
func (f ScoreFunc) Score(a, b byte) float32 { return f(a, b) }

// Ident scores by identity. Identical bytes get Match, anything else
// gets Mismatch. Case matters, so upper case sequences first if that is
// what you want.
type Ident struct {
	Match    float32 // matched characters
	Mismatch float32 // mismatched
}

// Score implements Scorer.
func (m Ident) Score(a, b byte) float32 {
	if a == b {
		return m.Match
	}
	return m.Mismatch
}

// Simple is +1 for a match and -2 for a mismatch. It is a reasonable
// default for screening nucleotide reads.
var Simple = Ident{Match: 1, Mismatch: -2}
