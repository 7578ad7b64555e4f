// Package join checks chunk files against a split manifest and optionally reassembles the original file.
package join

import (
	"fmt"
	"time"

	"github.com/sgaunet/filesplit/pkg/errkind"
)

var (
	// ErrOpenManifest is returned when the manifest cannot be opened.
	ErrOpenManifest = fmt.Errorf("%w: unable to open split file", errkind.ErrIO)
	// ErrOutputExists is returned when join would overwrite an existing file.
	ErrOutputExists = fmt.Errorf("%w: output already exists", errkind.ErrIO)
	// ErrCreateOutput is returned when the output file cannot be created.
	ErrCreateOutput = fmt.Errorf("%w: unable to create output file", errkind.ErrIO)
	// ErrLoadChunk is returned when a chunk file cannot be read.
	ErrLoadChunk = fmt.Errorf("%w: unable to load chunk file", errkind.ErrIO)
	// ErrWriteOutput is returned when appending to the output fails (out of space?).
	ErrWriteOutput = fmt.Errorf("%w: error writing output file", errkind.ErrIO)
)

// IntegrityError reports a chunk whose content does not match its manifest digest.
type IntegrityError struct {
	// File is the chunk file path.
	File string
	// Expected is the digest recorded in the manifest.
	Expected string
	// Computed is the digest of the chunk as read from disk.
	Computed string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("file '%s' has incorrect hash (expected %s, computed %s)", e.File, e.Expected, e.Computed)
}

// Unwrap makes errors.Is(err, errkind.ErrIntegrity) true.
func (e *IntegrityError) Unwrap() error {
	return errkind.ErrIntegrity
}

// Result represents the outcome of a successful join or verify.
type Result struct {
	// OutputPath is the resolved path of the original file.
	// For verify nothing is written there.
	OutputPath string
	// Written is true when the output file was created.
	Written bool
	// Metrics contains quantitative metrics.
	Metrics Metrics
}

// Metrics tracks quantitative join/verify metrics.
type Metrics struct {
	// ChunksVerified is the number of chunks whose digest matched.
	ChunksVerified int
	// BytesVerified is the total size of the verified chunks.
	BytesVerified int64
	// BytesWritten is the number of bytes appended to the output file.
	BytesWritten int64
	// Duration is the wall time of the operation.
	Duration time.Duration
}
