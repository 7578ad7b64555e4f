// Package storage defines the byte-stream file access the splitter and joiner are built on.
package storage

import (
	"io"
)

//go:generate go tool moq -out mocks/storage_mock.go -pkg mocks . Storage

// Storage is the file abstraction consumed by split, join and verify.
// Names are paths as given by the user; implementations must not rewrite them.
type Storage interface {
	// Open opens name for reading and returns its size in bytes.
	Open(name string) (io.ReadCloser, int64, error)
	// Create creates name for writing, truncating any existing file.
	Create(name string) (io.WriteCloser, error)
	// CreateNew creates name for writing and fails with an error matching fs.ErrExist
	// if something already exists at that path.
	CreateNew(name string) (io.WriteCloser, error)
	// ReadFile returns the whole content of name.
	ReadFile(name string) ([]byte, error)
	// Remove deletes name.
	Remove(name string) error
}
