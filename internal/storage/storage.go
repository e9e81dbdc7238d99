package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

const defaultFileMode fs.FileMode = 0o644

var (
	// ErrNotFound indicates the target path does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrNotReadable indicates the target exists but cannot be read by this process.
	ErrNotReadable = errors.New("file is not readable")
	// ErrNotWritable indicates the target exists but cannot be written by this process.
	ErrNotWritable = errors.New("file is not writable")
)

// Storage provides whole-file access to the files being rewritten.
type Storage interface {
	Check(path string) error
	Read(path string) (string, error)
	Write(path, content string) error
}

// FileStorage accesses files on the local filesystem.
type FileStorage struct{}

// NewFileStorage returns storage backed by the local filesystem.
func NewFileStorage() *FileStorage {
	return &FileStorage{}
}

// Check verifies, in order, that path exists, is readable and is writable.
// The first failing condition is returned as ErrNotFound, ErrNotReadable or
// ErrNotWritable. Any stat failure counts as not found, including a path
// whose parent is a regular file.
func (s *FileStorage) Check(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if !readable(path) {
		return ErrNotReadable
	}
	if !writable(path) {
		return ErrNotWritable
	}
	return nil
}

// Read returns the full content of path.
func (s *FileStorage) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(data), nil
}

// Write replaces the full content of path. An existing file keeps its mode.
func (s *FileStorage) Write(path, content string) error {
	if err := os.WriteFile(path, []byte(content), defaultFileMode); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
