// Package errkind defines the four error kinds every filesplit failure belongs to.
//
// Specific errors wrap exactly one kind, so callers can branch with errors.Is
// without knowing every individual sentinel.
package errkind

import "errors"

var (
	// ErrConfig is wrapped by invalid requests detected before any file is created:
	// chunk size out of range, source shorter than one chunk, too many parts.
	ErrConfig = errors.New("configuration error")
	// ErrIO is wrapped by open, create, read, write and remove failures.
	ErrIO = errors.New("i/o error")
	// ErrFormat is wrapped by manifest lines that do not match the expected layout.
	ErrFormat = errors.New("format error")
	// ErrIntegrity is wrapped by chunk digest mismatches.
	ErrIntegrity = errors.New("integrity error")
)

var kinds = []error{ErrConfig, ErrIO, ErrFormat, ErrIntegrity}

// Of returns the kind err wraps, or nil if it wraps none of them.
func Of(err error) error {
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
