//go:build !unix

package storage

import "os"

func readable(path string) bool {
	return probe(path, os.O_RDONLY)
}

func writable(path string) bool {
	return probe(path, os.O_WRONLY)
}

// probe opens path with flag and closes it again. Directories cannot be
// opened for writing, so they report as not writable here.
func probe(path string, flag int) bool {
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
