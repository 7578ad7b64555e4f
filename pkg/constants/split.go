package constants

// Chunking Policy
//
// These bound the size and number of chunk files produced by a split.
const (
	// DefaultChunkSizeMB is the chunk size used when none is given on the command line
	// or in the configuration.
	DefaultChunkSizeMB = 100

	// MaxChunkSizeMB is the largest accepted chunk size.
	// A whole chunk is held in memory during split, join and verify.
	MaxChunkSizeMB = 500

	// MaxChunkSize is MaxChunkSizeMB expressed in bytes.
	MaxChunkSize = MaxChunkSizeMB * MB

	// MaxParts is the maximum number of chunk files a single split may produce.
	// Part suffixes are three decimal digits, so 000-999.
	MaxParts = 1000
)

// File Naming
//
// A split of base path "dir/name" produces "dir/name.split" and "dir/name.000", "dir/name.001", ...
const (
	// ManifestExtension is appended to the base path to name the manifest file.
	ManifestExtension = ".split"

	// PartSuffixFormat formats a zero-based part index as the chunk file suffix.
	PartSuffixFormat = "%03d"
)
