package swat_test

import (
	"fmt"
	"os"

	"github.com/andrew-torda/seqscreen/pkg/swat"
)

func ExampleAlign() {
	scr := swat.Ident{Match: 2, Mismatch: -1}
	r, err := swat.Align([]byte("ACGT"), []byte("AGT"), scr, 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	r.Fprint(os.Stdout, 60)
	// Output:
	// score 5  s1 1-4  s2 1-3
	//        1 ACGT
	//          | ||
	//        1 A-GT
}

func ExampleScreen() {
	s1, s2 := []byte("ACGT"), []byte("AGT")
	scr := swat.Ident{Match: 2, Mismatch: -1}
	fmt.Println(swat.Screen(s1, s2, scr, 1, 4), swat.Screen(s1, s2, scr, 1, 6))
	// Output: true false
}
