// Package localstorage provides local file system storage implementation.
package localstorage

import (
	"fmt"
	"io"
	"os"

	"github.com/sgaunet/filesplit/pkg/constants"
)

// LocalStorage implements storage interface for local file system.
type LocalStorage struct {
	perm os.FileMode
}

// NewLocalStorage creates a new LocalStorage instance.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{
		perm: constants.DefaultFilePermission,
	}
}

// Open opens name for reading and returns its size.
func (s *LocalStorage) Open(name string) (io.ReadCloser, int64, error) {
	f, err := os.Open(name) //nolint:gosec // G304: path is provided by the operator
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open file %s: %w", name, err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, 0, fmt.Errorf("failed to stat file %s: %w", name, err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, 0, fmt.Errorf("failed to open file %s: is a directory", name) //nolint:err113 // includes path
	}
	return f, info.Size(), nil
}

// Create creates or truncates name.
func (s *LocalStorage) Create(name string) (io.WriteCloser, error) {
	//nolint:gosec // G304: path is provided by the operator
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, s.perm)
	if err != nil {
		return nil, fmt.Errorf("failed to create file %s: %w", name, err)
	}
	return f, nil
}

// CreateNew creates name and fails if it already exists.
func (s *LocalStorage) CreateNew(name string) (io.WriteCloser, error) {
	//nolint:gosec // G304: path is provided by the operator
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, s.perm)
	if err != nil {
		return nil, fmt.Errorf("failed to create file %s: %w", name, err)
	}
	return f, nil
}

// ReadFile loads the whole file in memory.
func (s *LocalStorage) ReadFile(name string) ([]byte, error) {
	data, err := os.ReadFile(name) //nolint:gosec // G304: path comes from a manifest chosen by the operator
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", name, err)
	}
	return data, nil
}

// Remove deletes name.
func (s *LocalStorage) Remove(name string) error {
	if err := os.Remove(name); err != nil {
		return fmt.Errorf("failed to remove file %s: %w", name, err)
	}
	return nil
}
