package manifest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sgaunet/filesplit/pkg/digest"
	"github.com/sgaunet/filesplit/pkg/errkind"
)

// Reader parses a manifest incrementally. Call ReadHeader once, then Next until io.EOF.
type Reader struct {
	scanner *bufio.Scanner
	line    int
	index   int
	header  bool
}

// NewReader returns a Reader reading from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// ReadHeader parses the splitfile and splitsize lines.
func (mr *Reader) ReadHeader() (Header, error) {
	var h Header
	text, err := mr.readLine("splitfile header")
	if err != nil {
		return h, err
	}
	name, ok := strings.CutPrefix(text, fileKey)
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return h, &FormatError{Line: mr.line, Text: text, Reason: "expected splitfile=<name>"}
	}

	text, err = mr.readLine("splitsize header")
	if err != nil {
		return h, err
	}
	sizeText, ok := strings.CutPrefix(text, sizeKey)
	if !ok {
		return h, &FormatError{Line: mr.line, Text: text, Reason: "expected splitsize=<integer>"}
	}
	size, err := strconv.ParseInt(strings.TrimSpace(sizeText), 10, 64)
	if err != nil || size <= 0 {
		return h, &FormatError{Line: mr.line, Text: text, Reason: "expected a positive splitsize"}
	}

	mr.header = true
	h.Name = name
	h.ChunkSize = size
	return h, nil
}

// Next returns the next chunk record, or io.EOF once the manifest is exhausted.
func (mr *Reader) Next() (Record, error) {
	if !mr.header {
		return Record{}, ErrHeaderMissing
	}
	if !mr.scanner.Scan() {
		if err := mr.scanErr(); err != nil {
			return Record{}, err
		}
		return Record{}, io.EOF
	}
	mr.line++
	text := strings.TrimRight(mr.scanner.Text(), "\r")

	rest, ok := strings.CutPrefix(text, hashKey)
	if !ok || len(rest) < digest.Length {
		return Record{}, &FormatError{Line: mr.line, Text: text, Reason: "expected hash=<40 hex chars>"}
	}
	hash := rest[:digest.Length]
	if !digest.Valid(hash) {
		return Record{}, &FormatError{Line: mr.line, Text: text, Reason: "hash is not 40 hex chars"}
	}
	file, ok := strings.CutPrefix(rest[digest.Length:], fileSepKey)
	file = strings.TrimSpace(file)
	if !ok || file == "" {
		return Record{}, &FormatError{Line: mr.line, Text: text, Reason: "expected file=<name> after hash"}
	}

	r := Record{Index: mr.index, Digest: hash, File: file}
	mr.index++
	return r, nil
}

func (mr *Reader) readLine(what string) (string, error) {
	if !mr.scanner.Scan() {
		if err := mr.scanErr(); err != nil {
			return "", err
		}
		return "", &FormatError{Line: mr.line + 1, Reason: "missing " + what}
	}
	mr.line++
	return strings.TrimRight(mr.scanner.Text(), "\r"), nil
}

// scanErr classifies a scanner failure: an overlong line is a format problem, anything else is I/O.
func (mr *Reader) scanErr() error {
	err := mr.scanner.Err()
	if err == nil {
		return nil
	}
	if errors.Is(err, bufio.ErrTooLong) {
		return &FormatError{Line: mr.line + 1, Reason: "line too long"}
	}
	return fmt.Errorf("%w: failed to read manifest: %w", errkind.ErrIO, err)
}
