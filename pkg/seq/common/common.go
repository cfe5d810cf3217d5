// 29 Apr 2020

// Package common holds the few constants shared by the sequence
// readers, the aligner and the command line tools, plus helpers for
// tests that need sequence files on disk.
package common

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

const GapChar byte = '-' // a minus sign is always used for gaps

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
// The caller removes the file.
func WrtTemp(s string) (string, error) {
	return wrtTemp(s, "_del_me_testing", false)
}

// WrtTempGz is WrtTemp, but the contents are gzip compressed and the
// name ends in .gz, so readers will decompress it.
func WrtTempGz(s string) (string, error) {
	return wrtTemp(s, "_del_me_testing*.gz", true)
}

func wrtTemp(s, pattern string, compress bool) (string, error) {
	f_tmp, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}
	defer f_tmp.Close()
	var w io.Writer = f_tmp
	var zw *gzip.Writer
	if compress {
		zw = gzip.NewWriter(f_tmp)
		w = zw
	}
	if _, err := io.WriteString(w, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v: %w", f_tmp.Name(), err)
	}
	if zw != nil {
		if err := zw.Close(); err != nil {
			return "", fmt.Errorf("closing compressor on %v: %w", f_tmp.Name(), err)
		}
	}
	return f_tmp.Name(), nil
}
