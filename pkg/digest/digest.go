// Package digest computes the chunk fingerprints recorded in split manifests.
package digest

import (
	"crypto/sha1" //nolint:gosec // SHA-1 is the manifest format's digest, used for corruption detection only
	"encoding/hex"
	"strings"
)

// Length is the number of hexadecimal characters in a digest (160 bits).
const Length = sha1.Size * 2

// Compute returns the uppercase hexadecimal SHA-1 of data.
func Compute(data []byte) string {
	sum := sha1.Sum(data) //nolint:gosec // see import
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// Valid reports whether s is a well-formed digest: Length hexadecimal characters of either case.
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// Equal compares two digests ignoring hexadecimal letter case.
func Equal(a, b string) bool {
	return strings.EqualFold(a, b)
}
