package manifest

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sgaunet/filesplit/pkg/digest"
)

var (
	// ErrHeaderWritten is returned when WriteHeader is called twice.
	ErrHeaderWritten = errors.New("manifest header already written")
	// ErrHeaderMissing is returned when a record is written or read before the header.
	ErrHeaderMissing = errors.New("manifest header not processed")
	// ErrInvalidField is returned when a value cannot be represented on a single manifest line.
	ErrInvalidField = errors.New("invalid manifest field")
)

// Writer emits a manifest line by line so records can be appended while chunks are produced.
type Writer struct {
	w      io.Writer
	header bool
}

// NewWriter returns a Writer writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteHeader writes the splitfile and splitsize lines.
func (mw *Writer) WriteHeader(h Header) error {
	if mw.header {
		return ErrHeaderWritten
	}
	if err := CheckName(h.Name); err != nil {
		return err
	}
	if h.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk size %d", ErrInvalidField, h.ChunkSize)
	}
	if _, err := fmt.Fprintf(mw.w, "%s%s\n%s%d\n", fileKey, h.Name, sizeKey, h.ChunkSize); err != nil {
		return fmt.Errorf("failed to write manifest header: %w", err)
	}
	mw.header = true
	return nil
}

// WriteRecord appends one hash line. Records must be written in reconstruction order.
func (mw *Writer) WriteRecord(r Record) error {
	if !mw.header {
		return ErrHeaderMissing
	}
	if !digest.Valid(r.Digest) {
		return fmt.Errorf("%w: digest %q", ErrInvalidField, r.Digest)
	}
	if err := CheckName(r.File); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(mw.w, "%s%s%s%s\n", hashKey, r.Digest, fileSepKey, r.File); err != nil {
		return fmt.Errorf("failed to write manifest record %d: %w", r.Index, err)
	}
	return nil
}

// checkName rejects names the reader could not give back unchanged.
func CheckName(name string) error {
	if name == "" || strings.TrimSpace(name) != name || strings.ContainsAny(name, "\r\n") {
		return fmt.Errorf("%w: name %q", ErrInvalidField, name)
	}
	return nil
}
