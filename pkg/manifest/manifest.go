// Package manifest reads and writes the line-oriented split manifest.
//
// A manifest looks like:
//
//	splitfile=<original base file name>
//	splitsize=<chunk size in bytes>
//	hash=<40 hex digest> file=<chunk file name>
//	...
//
// One hash line per chunk, in reconstruction order.
package manifest

import (
	"fmt"

	"github.com/sgaunet/filesplit/pkg/errkind"
)

const (
	fileKey    = "splitfile="
	sizeKey    = "splitsize="
	hashKey    = "hash="
	fileSepKey = " file="
)

// Header holds the two leading manifest lines.
type Header struct {
	// Name is the base file name of the original file.
	Name string
	// ChunkSize is the chunk size in bytes used by the split.
	ChunkSize int64
}

// Record describes one chunk.
type Record struct {
	// Index is the zero-based position of the record, which is also its reconstruction order.
	Index int
	// Digest is the hexadecimal SHA-1 of the chunk content.
	Digest string
	// File is the chunk file name, relative to the manifest's directory.
	File string
}

// FormatError reports a manifest line that does not match the expected layout.
type FormatError struct {
	// Line is the 1-based line number, or the line that was expected when input ended early.
	Line int
	// Text is the offending line with its line terminator removed.
	Text string
	// Reason says what was expected.
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("corrupt or incomplete split file at line %d (%s): %q", e.Line, e.Reason, e.Text)
}

// Unwrap makes errors.Is(err, errkind.ErrFormat) true.
func (e *FormatError) Unwrap() error {
	return errkind.ErrFormat
}
