// 18 Oct 2026

package main

import (
	"errors"
	"fmt"
	"os"

	. "github.com/andrew-torda/seqscreen/pkg/seq/common"
)

// exitCode maps an error from a command to the exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, errUsage):
		return ExitUsageError
	}
	return ExitFailure
}

func main() {
	root := newRootCmd(os.Stdout, os.Stderr)
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "seqscreen:", err)
	}
	os.Exit(exitCode(err))
}
