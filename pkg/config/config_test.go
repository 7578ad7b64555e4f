package config_test

import (
	"testing"

	"github.com/sgaunet/filesplit/pkg/config"
	"github.com/sgaunet/filesplit/pkg/constants"
	"github.com/sgaunet/filesplit/pkg/errkind"
	"github.com/stretchr/testify/require"
)

func TestNewConfigFromFile(t *testing.T) {
	t.Run("normal case", func(t *testing.T) {
		cfg, err := config.NewConfigFromFile("testdata/good-cfg.yaml")
		require.NoError(t, err)
		require.NotNil(t, cfg)
		require.Equal(t, 250, cfg.ChunkSizeMB)
		require.Equal(t, "debug", cfg.DebugLevel)
		require.True(t, cfg.NoLogTime)
		require.Equal(t, "echo presplit %INPUTFILE%", cfg.Hooks.PreSplit)
		require.Equal(t, "echo postsplit %MANIFEST%", cfg.Hooks.PostSplit)
		require.Equal(t, "echo postjoin %OUTPUTFILE%", cfg.Hooks.PostJoin)
		require.NoError(t, cfg.Validate())
	})
	t.Run("defaults fill missing fields", func(t *testing.T) {
		cfg, err := config.NewConfigFromFile("testdata/partial-cfg.yaml")
		require.NoError(t, err)
		require.Equal(t, 100, cfg.ChunkSizeMB)
		require.Equal(t, "warn", cfg.DebugLevel)
		require.False(t, cfg.NoLogTime)
	})
	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("CHUNKSIZEMB", "42")
		cfg, err := config.NewConfigFromFile("testdata/good-cfg.yaml")
		require.NoError(t, err)
		require.Equal(t, 42, cfg.ChunkSizeMB)
	})
	t.Run("file not found", func(t *testing.T) {
		_, err := config.NewConfigFromFile("testdata/unknown.yaml")
		require.Error(t, err)
		require.ErrorIs(t, err, errkind.ErrConfig)
	})
	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.NewConfigFromFile("testdata/invalid-cfg.yaml")
		require.Error(t, err)
	})
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Run("valid environment variables", func(t *testing.T) {
		t.Setenv("CHUNKSIZEMB", "10")
		t.Setenv("DEBUGLEVEL", "error")
		t.Setenv("NOLOGTIME", "true")
		t.Setenv("PRESPLIT", "echo pre")
		t.Setenv("POSTSPLIT", "echo post %MANIFEST%")
		t.Setenv("POSTJOIN", "echo joined %OUTPUTFILE%")

		cfg, err := config.NewConfigFromEnv()
		require.NoError(t, err)
		require.NotNil(t, cfg)
		require.Equal(t, 10, cfg.ChunkSizeMB)
		require.Equal(t, "error", cfg.DebugLevel)
		require.True(t, cfg.NoLogTime)
		require.Equal(t, "echo pre", cfg.Hooks.PreSplit)
		require.Equal(t, "echo post %MANIFEST%", cfg.Hooks.PostSplit)
		require.Equal(t, "echo joined %OUTPUTFILE%", cfg.Hooks.PostJoin)
	})
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.NewConfigFromEnv()
		require.NoError(t, err)
		require.Equal(t, constants.DefaultChunkSizeMB, cfg.ChunkSizeMB)
		require.Equal(t, "info", cfg.DebugLevel)
		require.NoError(t, cfg.Validate())
	})
	t.Run("invalid integer", func(t *testing.T) {
		t.Setenv("CHUNKSIZEMB", "ten")
		_, err := config.NewConfigFromEnv()
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr error
	}{
		{"minimum", config.Config{ChunkSizeMB: 1, DebugLevel: "info"}, nil},
		{"maximum", config.Config{ChunkSizeMB: 500, DebugLevel: "warn"}, nil},
		{"zero chunk size", config.Config{ChunkSizeMB: 0, DebugLevel: "info"}, config.ErrInvalidChunkSize},
		{"negative chunk size", config.Config{ChunkSizeMB: -5, DebugLevel: "info"}, config.ErrInvalidChunkSize},
		{"chunk size above cap", config.Config{ChunkSizeMB: 501, DebugLevel: "info"}, config.ErrInvalidChunkSize},
		{"unknown level", config.Config{ChunkSizeMB: 100, DebugLevel: "trace"}, config.ErrInvalidDebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			require.ErrorIs(t, err, errkind.ErrConfig)
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := config.Config{ChunkSizeMB: 0, DebugLevel: "loud"}
	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalidChunkSize)
	require.ErrorIs(t, err, config.ErrInvalidDebugLevel)
}

func TestString(t *testing.T) {
	cfg := config.Config{ChunkSizeMB: 100, DebugLevel: "info"}
	out := cfg.String()
	require.Contains(t, out, "chunkSizeMB: 100")
	require.Contains(t, out, "debugLevel: info")
	require.Contains(t, out, "hooks:")
}
