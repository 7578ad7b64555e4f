// Package constants provides centralized configuration constants for the filesplit project.
//
// This package consolidates the limits, sizes and naming conventions shared by the
// splitter, the joiner and the command line into a single source of truth.
//
// Organization:
//   - split.go: chunking policy (default and maximum chunk size, part cap, file naming)
//   - storage.go: size units and file permissions
//   - output.go: CLI output formatting constants
//
// Modifying Constants:
// The chunking policy and naming constants are part of the on-disk format. A manifest
// written with one set of values must stay readable by every other build, so changing
// them is a format change, not a tuning knob.
package constants
