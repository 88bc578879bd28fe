//go:build !unix

package mmap

import (
	"io"
	"os"
)

// Fallback for platforms without a wired mmap syscall: read the file into
// memory. Callers see the same read-only semantics.
func mapFile(f *os.File, size int) ([]byte, error) {
	data := make([]byte, size)
	if _, err := io.ReadFull(io.NewSectionReader(f, 0, int64(size)), data); err != nil {
		return nil, err
	}
	return data, nil
}

func unmapFile([]byte) error { return nil }
