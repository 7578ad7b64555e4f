package constants

// CLI Output Formatting
//
// These constants control the visual formatting of CLI output.
const (
	// SeparatorWidth is the character width of console separators/dividers.
	// Used to frame the effective configuration printed by "filesplit config".
	SeparatorWidth = 50

	// FatalErrorPrefix prefixes every fatal error printed on stderr.
	FatalErrorPrefix = "Fatal error: "
)
