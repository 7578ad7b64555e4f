package constants_test

import (
	"testing"

	"github.com/sgaunet/filesplit/pkg/constants"
)

func TestChunkingPolicy(t *testing.T) {
	tests := []struct {
		name     string
		constant int
		expected int
	}{
		{"DefaultChunkSizeMB", constants.DefaultChunkSizeMB, 100},
		{"MaxChunkSizeMB", constants.MaxChunkSizeMB, 500},
		{"MaxChunkSize", constants.MaxChunkSize, 500 * 1024 * 1024},
		{"MaxParts", constants.MaxParts, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.constant != tt.expected {
				t.Errorf("%s = %d, want %d", tt.name, tt.constant, tt.expected)
			}
		})
	}
}

func TestSizeConstants(t *testing.T) {
	tests := []struct {
		name     string
		constant int
		expected int
	}{
		{"KB", constants.KB, 1024},
		{"MB", constants.MB, 1024 * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.constant != tt.expected {
				t.Errorf("%s = %d, want %d", tt.name, tt.constant, tt.expected)
			}
		})
	}
}

func TestDefaultChunkSizeWithinCap(t *testing.T) {
	if constants.DefaultChunkSizeMB > constants.MaxChunkSizeMB {
		t.Error("DefaultChunkSizeMB should not exceed MaxChunkSizeMB")
	}
}

func TestFileNamingConstants(t *testing.T) {
	if constants.ManifestExtension != ".split" {
		t.Errorf("ManifestExtension = %s, want .split", constants.ManifestExtension)
	}
	if constants.PartSuffixFormat != "%03d" {
		t.Errorf("PartSuffixFormat = %s, want %%03d", constants.PartSuffixFormat)
	}
}

func TestFilePermissionConstants(t *testing.T) {
	if constants.DefaultFilePermission != 0644 {
		t.Errorf("DefaultFilePermission = %o, want 0644", constants.DefaultFilePermission)
	}
}
