package storage

import (
	"os"
	"path/filepath"
)

// BaseName returns the text after the last path separator of p, or p itself when
// it has none. Unlike filepath.Base it does not clean p, so "dir/" yields "".
func BaseName(p string) string {
	return p[lastSeparator(p)+1:]
}

// DirPrefix returns p up to and including its last path separator, or "" when p
// has none. Prepending it to a sibling name yields that sibling's path.
func DirPrefix(p string) string {
	return p[:lastSeparator(p)+1]
}

func lastSeparator(p string) int {
	for i := len(p) - 1; i >= 0; i-- {
		if os.IsPathSeparator(p[i]) {
			return i
		}
	}
	return -1
}

// SamePath reports whether a and b name the same location once made absolute and
// cleaned. Links are not resolved.
func SamePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
