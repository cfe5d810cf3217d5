package submat_test

import (
	"fmt"

	"github.com/andrew-torda/seqscreen/pkg/submat"
	"github.com/andrew-torda/seqscreen/pkg/swat"
)

func Example_scoreSeqs() {
	seqs := []string{"acdefgacdefg", "cdefgacsfg", "cdefgactg", "cdefgacwg"}
	substMat, err := submat.Read("testdata/blosum62.txt")
	if err != nil {
		fmt.Print(err)
		return
	}
	for i, s := range seqs {
		for j := i + 1; j < len(seqs); j++ {
			t := seqs[j]
			found := swat.Screen([]byte(s), []byte(t), substMat, 2, 30)
			fmt.Println(i, j, found)
		}
	}
}
