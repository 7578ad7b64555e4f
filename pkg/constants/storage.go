package constants

// Size Constants
//
// Standard binary size units (powers of 1024, not 1000).
const (
	// KB is one kilobyte (1,024 bytes).
	KB = 1024

	// MB is one megabyte (1,024 kilobytes = 1,048,576 bytes).
	MB = 1024 * KB
)

// File Permissions
//
// Standard Unix file permission constants.
const (
	// DefaultFilePermission is the default permission mode for created files (rw-r--r--).
	// Owner can read/write, group/others can read.
	DefaultFilePermission = 0644
)
